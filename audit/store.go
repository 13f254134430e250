package audit

import (
	"context"
	"time"

	"github.com/xraph/veto/id"
)

// Store defines persistence operations for decision audit records.
type Store interface {
	// RecordDecision persists a new decision record.
	RecordDecision(ctx context.Context, e *Entry) error

	// GetDecision retrieves a decision record by ID.
	GetDecision(ctx context.Context, auditID id.AuditID) (*Entry, error)

	// ListDecisions returns decision records matching the filter, newest
	// first.
	ListDecisions(ctx context.Context, filter *QueryFilter) ([]*Entry, error)

	// CountDecisions returns the number of records matching the filter.
	CountDecisions(ctx context.Context, filter *QueryFilter) (int64, error)

	// PurgeDecisions removes decision records older than the given time.
	PurgeDecisions(ctx context.Context, before time.Time) (int64, error)
}
