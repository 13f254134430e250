// Package mongo provides a MongoDB implementation of the veto audit store
// using grove ORM.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	mongod "go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/xraph/grove"
	"github.com/xraph/grove/drivers/mongodriver"

	"github.com/xraph/veto/audit"
	"github.com/xraph/veto/id"
	"github.com/xraph/veto/store"
)

// colDecisions is the collection holding recorded authorization decisions.
const colDecisions = "veto_decisions"

// Compile-time interface check.
var _ store.Store = (*Store)(nil)

// errNotFound is the sentinel for missing entries.
var errNotFound = fmt.Errorf("not found")

// Store is a MongoDB implementation of the veto audit store.
type Store struct {
	db  *grove.DB
	mdb *mongodriver.MongoDB
}

// New creates a new MongoDB store backed by Grove ORM.
func New(db *grove.DB) *Store {
	return &Store{
		db:  db,
		mdb: mongodriver.Unwrap(db),
	}
}

// Migrate creates indexes for the decision collection.
func (s *Store) Migrate(ctx context.Context) error {
	models := migrationIndexes()
	if len(models) == 0 {
		return nil
	}
	_, err := s.mdb.Collection(colDecisions).Indexes().CreateMany(ctx, models)
	if err != nil {
		return fmt.Errorf("veto/mongo: migrate %s indexes: %w", colDecisions, err)
	}
	return nil
}

// Ping verifies the database connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// isNoDocuments checks if an error wraps mongo.ErrNoDocuments.
func isNoDocuments(err error) bool {
	return errors.Is(err, mongod.ErrNoDocuments)
}

// migrationIndexes returns the index definitions for the decision collection.
func migrationIndexes() []mongod.IndexModel {
	return []mongod.IndexModel{
		{Keys: bson.D{{Key: "actor", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "decision", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "snapshot", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}
}

// decisionFilter translates an audit query filter into a bson document.
func decisionFilter(filter *audit.QueryFilter) bson.M {
	f := bson.M{}
	if filter == nil {
		return f
	}
	if filter.Actor != "" {
		f["actor"] = filter.Actor
	}
	if filter.Action != "" {
		f["action"] = filter.Action
	}
	if filter.Resource != "" {
		f["resource"] = filter.Resource
	}
	if filter.Decision != "" {
		f["decision"] = filter.Decision
	}
	if filter.Snapshot != "" {
		f["snapshot"] = filter.Snapshot
	}
	if filter.After != nil || filter.Before != nil {
		dateFilter := bson.M{}
		if filter.After != nil {
			dateFilter["$gte"] = *filter.After
		}
		if filter.Before != nil {
			dateFilter["$lte"] = *filter.Before
		}
		f["created_at"] = dateFilter
	}
	return f
}

func (s *Store) RecordDecision(ctx context.Context, e *audit.Entry) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	m := entryToModel(e)
	if _, err := s.mdb.NewInsert(m).Exec(ctx); err != nil {
		return fmt.Errorf("veto: record decision: %w", err)
	}
	return nil
}

func (s *Store) GetDecision(ctx context.Context, auditID id.AuditID) (*audit.Entry, error) {
	var m entryModel
	err := s.mdb.NewFind(&m).
		Filter(bson.M{"_id": auditID.String()}).
		Scan(ctx)
	if err != nil {
		if isNoDocuments(err) {
			return nil, fmt.Errorf("decision %s: %w", auditID, errNotFound)
		}
		return nil, fmt.Errorf("veto: get decision: %w", err)
	}
	return entryFromModel(&m), nil
}

func (s *Store) ListDecisions(ctx context.Context, filter *audit.QueryFilter) ([]*audit.Entry, error) {
	var models []entryModel
	q := s.mdb.NewFind(&models).
		Filter(decisionFilter(filter)).
		Sort(bson.D{{Key: "created_at", Value: -1}})
	if filter != nil {
		if filter.Limit > 0 {
			q = q.Limit(int64(filter.Limit))
		}
		if filter.Offset > 0 {
			q = q.Skip(int64(filter.Offset))
		}
	}
	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("veto: list decisions: %w", err)
	}
	result := make([]*audit.Entry, len(models))
	for i := range models {
		result[i] = entryFromModel(&models[i])
	}
	return result, nil
}

func (s *Store) CountDecisions(ctx context.Context, filter *audit.QueryFilter) (int64, error) {
	count, err := s.mdb.NewFind((*entryModel)(nil)).
		Filter(decisionFilter(filter)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("veto: count decisions: %w", err)
	}
	return count, nil
}

func (s *Store) PurgeDecisions(ctx context.Context, before time.Time) (int64, error) {
	res, err := s.mdb.NewDelete((*entryModel)(nil)).
		Many().
		Filter(bson.M{"created_at": bson.M{"$lt": before}}).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("veto: purge decisions: %w", err)
	}
	return res.DeletedCount(), nil
}
