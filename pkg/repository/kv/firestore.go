package kv

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const defaultCollection = "kv"

// Firestore is a Store keeping one document per key in a collection
type Firestore struct {
	client     *firestore.Client
	collection string
}

var _ Store = &Firestore{}

// FirestoreOption configures a Firestore store
type FirestoreOption func(*Firestore)

// WithCollection overrides the collection name
func WithCollection(name string) FirestoreOption {
	return func(f *Firestore) {
		f.collection = name
	}
}

type kvDocument struct {
	Value string `firestore:"value"`
}

// NewFirestore creates a Firestore-backed store
func NewFirestore(ctx context.Context, projectID string, opts ...FirestoreOption) (*Firestore, error) {
	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client", goerr.V("projectID", projectID))
	}

	f := &Firestore{
		client:     client,
		collection: defaultCollection,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

func (f *Firestore) Get(ctx context.Context, key string) (string, bool, error) {
	doc, err := f.client.Collection(f.collection).Doc(key).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return "", false, nil
		}
		return "", false, goerr.Wrap(err, "failed to get value from firestore", goerr.V("key", key))
	}

	var data kvDocument
	if err := doc.DataTo(&data); err != nil {
		return "", false, goerr.Wrap(err, "failed to unmarshal value document", goerr.V("key", key))
	}
	return data.Value, true, nil
}

func (f *Firestore) Set(ctx context.Context, key, value string) error {
	docRef := f.client.Collection(f.collection).Doc(key)
	if _, err := docRef.Set(ctx, kvDocument{Value: value}); err != nil {
		return goerr.Wrap(err, "failed to set value in firestore", goerr.V("key", key))
	}
	return nil
}

func (f *Firestore) Delete(ctx context.Context, key string) error {
	if _, err := f.client.Collection(f.collection).Doc(key).Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete value from firestore", goerr.V("key", key))
	}
	return nil
}

func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}
