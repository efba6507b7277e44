package usecase

import (
	"encoding/base64"
	"encoding/json"
	"net/url"

	"github.com/m-mizutani/goerr/v2"
	"github.com/promptdeck/promptdeck/pkg/domain/model"
)

// shareVersion tags every encoded share payload
const shareVersion = "1.0"

// SharePayload is the portable subset of an agent carried by a share code.
// ID, creation time and cached stats are intentionally dropped.
type SharePayload struct {
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Model          string  `json:"model"`
	PromptTemplate string  `json:"promptTemplate"`
	Temperature    float64 `json:"temperature"`
	Version        string  `json:"version"`
}

// EncodeShareCode serializes an agent's shareable fields into an opaque
// token: JSON, percent-escaped, then base64.
func EncodeShareCode(agent *model.Agent) (string, error) {
	payload := SharePayload{
		Name:           agent.Name,
		Description:    agent.Description,
		Model:          agent.Model,
		PromptTemplate: agent.PromptTemplate,
		Temperature:    agent.Temperature,
		Version:        shareVersion,
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return "", goerr.Wrap(err, "failed to encode share payload")
	}

	return base64.StdEncoding.EncodeToString([]byte(url.QueryEscape(string(data)))), nil
}

// DecodeShareCode reverses EncodeShareCode. Any decoding failure or a
// payload missing name, model or prompt template yields ErrInvalidShareCode.
func DecodeShareCode(code string) (*SharePayload, error) {
	escaped, err := base64.StdEncoding.DecodeString(code)
	if err != nil {
		return nil, goerr.Wrap(ErrInvalidShareCode, "share code is not valid base64")
	}

	raw, err := url.QueryUnescape(string(escaped))
	if err != nil {
		return nil, goerr.Wrap(ErrInvalidShareCode, "share code is not percent-escaped")
	}

	var payload SharePayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, goerr.Wrap(ErrInvalidShareCode, "share code is not valid JSON")
	}

	if payload.Name == "" || payload.Model == "" || payload.PromptTemplate == "" {
		return nil, goerr.Wrap(ErrInvalidShareCode, "share code is missing required agent fields")
	}

	return &payload, nil
}

// ShareURL builds an import link for an agent against the configured base URL
func (uc *UseCases) ShareURL(agent *model.Agent) (string, error) {
	code, err := EncodeShareCode(agent)
	if err != nil {
		return "", err
	}

	u, err := url.Parse(uc.baseURL)
	if err != nil {
		return "", goerr.Wrap(err, "invalid base URL", goerr.V("baseURL", uc.baseURL))
	}

	q := u.Query()
	q.Set("import", code)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
