package deletion

import (
	"context"

	"gallery/internal/core/deletion"
)

// DeletionLedger is the outbound port for the scheduled-deletion table.
// The table stays small; All reads it whole.
type DeletionLedger interface {
	All(ctx context.Context) ([]*deletion.ScheduledDeletion, error)
	// Remove is idempotent: removing an absent cronid is not an error.
	Remove(ctx context.Context, cronID int64) error
}
