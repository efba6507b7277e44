package interfaces

import (
	"context"

	"github.com/promptdeck/promptdeck/pkg/domain/model"
)

// LogRepository defines the interface for execution log persistence.
// Entries are ordered most-recent-first and capped; the oldest entries are
// dropped silently on overflow.
type LogRepository interface {
	// Append prepends a log entry and truncates to the retention cap
	Append(ctx context.Context, result *model.ExecutionResult) error

	// List retrieves all retained entries, most recent first
	List(ctx context.Context) ([]*model.ExecutionResult, error)

	// ReplaceAll swaps the full log list (bulk import), applying the cap
	ReplaceAll(ctx context.Context, results []*model.ExecutionResult) error
}
