package config

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/promptdeck/promptdeck/pkg/domain/interfaces"
	"github.com/promptdeck/promptdeck/pkg/repository"
	"github.com/promptdeck/promptdeck/pkg/repository/kv"
	"github.com/promptdeck/promptdeck/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Repository holds CLI flags for storage backend configuration
type Repository struct {
	backend    string
	dataDir    string
	projectID  string
	collection string
}

// Flags returns CLI flags for repository configuration
func (r *Repository) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "backend",
			Usage:       "Storage backend (file, memory or firestore)",
			Value:       "file",
			Sources:     cli.EnvVars("PROMPTDECK_BACKEND"),
			Destination: &r.backend,
		},
		&cli.StringFlag{
			Name:        "data-dir",
			Usage:       "Data directory for the file backend",
			Value:       "./data",
			Sources:     cli.EnvVars("PROMPTDECK_DATA_DIR"),
			Destination: &r.dataDir,
		},
		&cli.StringFlag{
			Name:        "firestore-project-id",
			Usage:       "Firestore project ID (required when using firestore backend)",
			Sources:     cli.EnvVars("PROMPTDECK_FIRESTORE_PROJECT_ID"),
			Destination: &r.projectID,
		},
		&cli.StringFlag{
			Name:        "firestore-collection",
			Usage:       "Firestore collection holding the key-value documents",
			Sources:     cli.EnvVars("PROMPTDECK_FIRESTORE_COLLECTION"),
			Destination: &r.collection,
		},
	}
}

// Configure initializes the repository for the configured backend.
// The caller is responsible for calling Close() on the returned repository.
func (r *Repository) Configure(ctx context.Context) (interfaces.Repository, error) {
	switch r.backend {
	case "file":
		store, err := kv.NewFile(r.dataDir)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to initialize file store")
		}
		logging.Default().Info("Using file storage", "dir", r.dataDir)
		return repository.New(store), nil

	case "memory":
		logging.Default().Info("Using in-memory storage (data is lost on exit)")
		return repository.New(kv.NewMemory()), nil

	case "firestore":
		if r.projectID == "" {
			return nil, goerr.New("firestore-project-id is required when using firestore backend")
		}
		var opts []kv.FirestoreOption
		if r.collection != "" {
			opts = append(opts, kv.WithCollection(r.collection))
		}
		store, err := kv.NewFirestore(ctx, r.projectID, opts...)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to initialize firestore store")
		}
		logging.Default().Info("Using Firestore storage",
			"project_id", r.projectID,
			"collection", r.collection,
		)
		return repository.New(store), nil

	default:
		return nil, goerr.New("invalid storage backend", goerr.V("backend", r.backend))
	}
}
