package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/hashicorp/go-hclog"
)

// sentinelTable is created by the final step. Every step is idempotent, so a
// run interrupted after any earlier step is completed on the next start.
const sentinelTable = "cv_analytics"

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_extension_pgcrypto",
		SQL:  `CREATE EXTENSION IF NOT EXISTS "pgcrypto";`,
	},
	{
		Name: "create_table_cvs",
		SQL: `CREATE TABLE IF NOT EXISTS cvs (
  id             UUID        PRIMARY KEY DEFAULT gen_random_uuid(),
  owner_id       TEXT        NOT NULL,
  title          TEXT        NOT NULL,
  personal_info  JSONB       NOT NULL DEFAULT '{}'::jsonb,
  education      JSONB       NOT NULL DEFAULT '[]'::jsonb,
  experience     JSONB       NOT NULL DEFAULT '[]'::jsonb,
  skills         JSONB       NOT NULL DEFAULT '[]'::jsonb,
  projects       JSONB       NOT NULL DEFAULT '[]'::jsonb,
  certifications JSONB       NOT NULL DEFAULT '[]'::jsonb,
  template_id    TEXT        NOT NULL DEFAULT 'modern',
  customization  JSONB       NOT NULL DEFAULT '{}'::jsonb,
  photo_key      TEXT,
  is_public      BOOLEAN     NOT NULL DEFAULT false,
  slug           TEXT        UNIQUE,
  version        INTEGER     NOT NULL DEFAULT 1 CHECK (version >= 1),
  created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
  CONSTRAINT cvs_slug_iff_public CHECK ((is_public AND slug IS NOT NULL) OR (NOT is_public AND slug IS NULL))
);`,
	},
	{
		Name: "create_index_cvs_owner_updated",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_cvs_owner_updated ON cvs (owner_id, updated_at DESC);`,
	},
	{
		Name: "create_table_cv_analytics",
		SQL: `CREATE TABLE IF NOT EXISTS cv_analytics (
  cv_id          UUID        PRIMARY KEY REFERENCES cvs (id) ON DELETE CASCADE,
  views          BIGINT      NOT NULL DEFAULT 0 CHECK (views >= 0),
  downloads      BIGINT      NOT NULL DEFAULT 0 CHECK (downloads >= 0),
  shares         BIGINT      NOT NULL DEFAULT 0 CHECK (shares >= 0),
  last_viewed_at TIMESTAMPTZ,
  created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
}

// EnsureMigrated checks if the sentinel table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, log hclog.Logger, dbHost string) error {
	start := time.Now()
	log = log.With("component", "database", "db_host", dbHost)

	log.Info("db_migration_check", "status", "starting")

	var exists bool
	query := "SELECT to_regclass('public." + sentinelTable + "') IS NOT NULL"
	err := db.QueryRowContext(ctx, query).Scan(&exists)
	if err != nil {
		log.Error("db_migration_failed",
			"status", "error",
			"error_message", fmt.Sprintf("failed to check sentinel table: %v", err),
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info("db_migration_skip",
			"status", "success",
			"msg", "schema already exists, skipping migration",
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return nil
	}

	log.Info("db_migration_start", "status", "in_progress")

	for _, step := range steps {
		stepStart := time.Now()
		_, err := db.ExecContext(ctx, step.SQL)
		if err != nil {
			log.Error("db_migration_failed",
				"status", "error",
				"migration_step", step.Name,
				"error_message", err.Error(),
				"duration_ms", time.Since(start).Milliseconds(),
				"step_duration_ms", time.Since(stepStart).Milliseconds(),
			)
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Info("db_migration_step",
			"status", "success",
			"migration_step", step.Name,
			"step_duration_ms", time.Since(stepStart).Milliseconds(),
		)
	}

	log.Info("db_migration_success",
		"status", "success",
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return nil
}
