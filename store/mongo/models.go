package mongo

import (
	"time"

	"github.com/xraph/grove"

	"github.com/xraph/veto/audit"
	"github.com/xraph/veto/id"
)

type entryModel struct {
	grove.BaseModel `grove:"table:veto_decisions"`
	ID              string    `grove:"id,pk"         bson:"_id"`
	Actor           string    `grove:"actor"         bson:"actor"`
	IsUser          bool      `grove:"is_user"       bson:"is_user"`
	Action          string    `grove:"action"        bson:"action"`
	Resource        string    `grove:"resource"      bson:"resource"`
	Decision        string    `grove:"decision"      bson:"decision"`
	Reason          string    `grove:"reason"        bson:"reason"`
	Snapshot        string    `grove:"snapshot"      bson:"snapshot"`
	EvalTimeNs      int64     `grove:"eval_time_ns"  bson:"eval_time_ns"`
	CreatedAt       time.Time `grove:"created_at"    bson:"created_at"`
}

func entryToModel(e *audit.Entry) *entryModel {
	return &entryModel{
		ID:         e.ID.String(),
		Actor:      e.Actor,
		IsUser:     e.IsUser,
		Action:     e.Action,
		Resource:   e.Resource,
		Decision:   e.Decision,
		Reason:     e.Reason,
		Snapshot:   e.Snapshot,
		EvalTimeNs: e.EvalTimeNs,
		CreatedAt:  e.CreatedAt,
	}
}

func entryFromModel(m *entryModel) *audit.Entry {
	aid, _ := id.ParseAuditID(m.ID) //nolint:errcheck // stored IDs are always valid
	return &audit.Entry{
		ID:         aid,
		Actor:      m.Actor,
		IsUser:     m.IsUser,
		Action:     m.Action,
		Resource:   m.Resource,
		Decision:   m.Decision,
		Reason:     m.Reason,
		Snapshot:   m.Snapshot,
		EvalTimeNs: m.EvalTimeNs,
		CreatedAt:  m.CreatedAt,
	}
}
