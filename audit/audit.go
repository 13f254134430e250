// Package audit defines the decision audit Entry entity.
package audit

import (
	"time"

	"github.com/xraph/veto/id"
)

// Entry is a single authorization decision audit record.
type Entry struct {
	ID         id.AuditID `json:"id" db:"id"`
	Actor      string     `json:"actor" db:"actor"`
	IsUser     bool       `json:"is_user" db:"is_user"`
	Action     string     `json:"action" db:"action"`
	Resource   string     `json:"resource" db:"resource"`
	Decision   string     `json:"decision" db:"decision"`
	Reason     string     `json:"reason,omitempty" db:"reason"`
	Snapshot   string     `json:"snapshot" db:"snapshot"`
	EvalTimeNs int64      `json:"eval_time_ns" db:"eval_time_ns"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
}

// QueryFilter contains filters for querying decision records.
type QueryFilter struct {
	Actor    string     `json:"actor,omitempty"`
	Action   string     `json:"action,omitempty"`
	Resource string     `json:"resource,omitempty"`
	Decision string     `json:"decision,omitempty"`
	Snapshot string     `json:"snapshot,omitempty"`
	After    *time.Time `json:"after,omitempty"`
	Before   *time.Time `json:"before,omitempty"`
	Limit    int        `json:"limit,omitempty"`
	Offset   int        `json:"offset,omitempty"`
}
