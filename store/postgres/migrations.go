package postgres

import (
	"context"

	"github.com/xraph/grove/migrate"
)

// Migrations is the grove migration group for the veto audit store
// (PostgreSQL).
var Migrations = migrate.NewGroup("veto")

func init() {
	Migrations.MustRegister(
		&migrate.Migration{
			Name:    "create_decisions",
			Version: "20250101000001",
			Up: func(ctx context.Context, exec migrate.Executor) error {
				_, err := exec.Exec(ctx, `
CREATE TABLE IF NOT EXISTS veto_decisions (
    id              TEXT PRIMARY KEY,
    actor           TEXT NOT NULL,
    is_user         BOOLEAN NOT NULL DEFAULT FALSE,
    action          TEXT NOT NULL,
    resource        TEXT NOT NULL,
    decision        TEXT NOT NULL,
    reason          TEXT NOT NULL DEFAULT '',
    snapshot        TEXT NOT NULL DEFAULT '',
    eval_time_ns    BIGINT NOT NULL DEFAULT 0,
    created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_veto_decisions_actor ON veto_decisions (actor, created_at);
CREATE INDEX IF NOT EXISTS idx_veto_decisions_decision ON veto_decisions (decision, created_at);
CREATE INDEX IF NOT EXISTS idx_veto_decisions_created ON veto_decisions (created_at);
`)
				return err
			},
			Down: func(ctx context.Context, exec migrate.Executor) error {
				_, err := exec.Exec(ctx, `DROP TABLE IF EXISTS veto_decisions`)
				return err
			},
		},
	)
}
