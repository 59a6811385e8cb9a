package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // driver: pgx
	_ "modernc.org/sqlite"             // driver: sqlite
)

type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

// Open opens a DB and ensures schema exists.
func Open(ctx context.Context, driver Driver, dsn string) (*sql.DB, error) {
	var drvName string
	switch driver {
	case DriverSQLite:
		drvName = "sqlite" // modernc driver
		if dsn == "" {
			dsn = "file:peppypick.db?cache=shared&mode=rwc&_pragma=busy_timeout(5000)"
		}
	case DriverPostgres:
		drvName = "pgx" // pgx stdlib driver
		if dsn == "" {
			dsn = "postgres://localhost:5432/peppypick?sslmode=disable"
		}
	default:
		return nil, fmt.Errorf("unsupported driver: %s", driver)
	}

	db, err := sql.Open(drvName, dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	if err := ensureSchema(ctx, db, driver); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(ctx context.Context, db *sql.DB, driver Driver) error {
	var schema string
	switch driver {
	case DriverSQLite:
		schema = schemaSQLite
	case DriverPostgres:
		schema = schemaPostgres
	}
	_, err := db.ExecContext(ctx, schema)
	return err
}

const schemaSQLite = `
PRAGMA foreign_keys=ON;

CREATE TABLE IF NOT EXISTS companies (
  comp_id TEXT PRIMARY KEY,
  comp_name TEXT NOT NULL,
  company_logo BLOB
);

CREATE TABLE IF NOT EXISTS jobs (
  job_id TEXT PRIMARY KEY,
  comp_id TEXT NOT NULL REFERENCES companies(comp_id) ON DELETE CASCADE,
  job_title TEXT NOT NULL,
  created_date INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS applied_candidates (
  cand_id TEXT PRIMARY KEY,
  job_id TEXT NOT NULL REFERENCES jobs(job_id) ON DELETE CASCADE,
  home_address TEXT,
  created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS responses (
  resp_id TEXT PRIMARY KEY,
  resp_job_id TEXT NOT NULL REFERENCES jobs(job_id) ON DELETE CASCADE,
  resp_user_id TEXT NOT NULL,
  report_card TEXT,                 -- JSON report document
  resp_video_aws_nums TEXT,         -- JSON emotion frame array
  resp_test_writing_score TEXT,     -- JSON writing-test score object
  resp_test_writing TEXT,           -- writing submission body
  tab_switch_count INTEGER NOT NULL DEFAULT 0,
  resp_video_resp TEXT,
  resp_screen_recording_s3 TEXT,
  final_score REAL,
  resp_date INTEGER NOT NULL
);
`

const schemaPostgres = `
CREATE TABLE IF NOT EXISTS companies (
  comp_id TEXT PRIMARY KEY,
  comp_name TEXT NOT NULL,
  company_logo BYTEA
);

CREATE TABLE IF NOT EXISTS jobs (
  job_id TEXT PRIMARY KEY,
  comp_id TEXT NOT NULL REFERENCES companies(comp_id) ON DELETE CASCADE,
  job_title TEXT NOT NULL,
  created_date BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS applied_candidates (
  cand_id TEXT PRIMARY KEY,
  job_id TEXT NOT NULL REFERENCES jobs(job_id) ON DELETE CASCADE,
  home_address TEXT,
  created_at BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS responses (
  resp_id TEXT PRIMARY KEY,
  resp_job_id TEXT NOT NULL REFERENCES jobs(job_id) ON DELETE CASCADE,
  resp_user_id TEXT NOT NULL,
  report_card TEXT,
  resp_video_aws_nums TEXT,
  resp_test_writing_score TEXT,
  resp_test_writing TEXT,
  tab_switch_count INTEGER NOT NULL DEFAULT 0,
  resp_video_resp TEXT,
  resp_screen_recording_s3 TEXT,
  final_score DOUBLE PRECISION,
  resp_date BIGINT NOT NULL
);
`
