package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/promptdeck/promptdeck/pkg/domain/model"
)

// Export snapshots all agents and execution logs into one portable
// document
func (uc *UseCases) Export(ctx context.Context) (*model.ExportDocument, error) {
	agents, err := uc.repo.Agent().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list agents for export")
	}
	logs, err := uc.repo.Log().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list logs for export")
	}

	return &model.ExportDocument{
		Agents:     agents,
		Logs:       logs,
		ExportedAt: time.Now(),
	}, nil
}

// Import replaces all agents and execution logs with the document's
// contents. Conversations are left untouched.
func (uc *UseCases) Import(ctx context.Context, doc *model.ExportDocument) error {
	if doc == nil {
		return goerr.New("import document is nil")
	}

	for _, agent := range doc.Agents {
		if err := agent.Validate(); err != nil {
			return goerr.Wrap(err, "invalid agent in import document", goerr.V("agentID", agent.ID))
		}
	}

	if err := uc.repo.Agent().ReplaceAll(ctx, doc.Agents); err != nil {
		return goerr.Wrap(err, "failed to import agents")
	}
	if err := uc.repo.Log().ReplaceAll(ctx, doc.Logs); err != nil {
		return goerr.Wrap(err, "failed to import logs")
	}
	return nil
}
