package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"revos/internal/analytics"
)

// PostgresArchiver appends confirmed imports to an import_archive table.
// Unlike the session store, the archive is append-only: it records every
// committed collection for later auditing, it is never read back by the
// dashboard.
type PostgresArchiver struct {
	db *sql.DB
}

// NewPostgresArchiver opens a connection, runs the schema migration and
// returns a ready archiver.
func NewPostgresArchiver(dsn string) (*PostgresArchiver, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	for i := 0; i < 5; i++ {
		if err = db.Ping(); err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: ping failed after retries: %w", err)
	}

	pa := &PostgresArchiver{db: db}
	if err := pa.migrate(); err != nil {
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}
	return pa, nil
}

func (pa *PostgresArchiver) migrate() error {
	_, err := pa.db.Exec(`
		CREATE TABLE IF NOT EXISTS import_archive (
			id          SERIAL PRIMARY KEY,
			imported_at TIMESTAMPTZ   NOT NULL DEFAULT NOW(),
			channel     TEXT          NOT NULL,
			rate_plan   TEXT          NOT NULL,
			commission  NUMERIC(14,2) NOT NULL DEFAULT 0,
			revenue     NUMERIC(14,2) NOT NULL DEFAULT 0,
			cancel_rate NUMERIC(6,4)  NOT NULL DEFAULT 0,
			lead_time   NUMERIC(8,2),
			property    TEXT,
			stay_date   DATE
		);

		CREATE INDEX IF NOT EXISTS idx_import_archive_channel ON import_archive(channel);
		CREATE INDEX IF NOT EXISTS idx_import_archive_date    ON import_archive(imported_at);
	`)
	return err
}

// Archive batch-inserts one committed collection.
func (pa *PostgresArchiver) Archive(rows []analytics.TopProblem) error {
	if len(rows) == 0 {
		return nil
	}

	const batchSize = 50
	for i := 0; i < len(rows); i += batchSize {
		end := i + batchSize
		if end > len(rows) {
			end = len(rows)
		}
		if err := pa.insertBatch(rows[i:end]); err != nil {
			return err
		}
	}
	return nil
}

func (pa *PostgresArchiver) insertBatch(batch []analytics.TopProblem) error {
	const cols = 8
	valueStrings := make([]string, 0, len(batch))
	valueArgs := make([]interface{}, 0, len(batch)*cols)

	for idx, r := range batch {
		base := idx * cols
		valueStrings = append(valueStrings,
			fmt.Sprintf("($%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d)",
				base+1, base+2, base+3, base+4, base+5, base+6, base+7, base+8))

		var lead interface{}
		if r.LeadTime != nil {
			lead = *r.LeadTime
		}
		var property interface{}
		if r.Property != "" {
			property = r.Property
		}
		var stayDate interface{}
		if r.Date != "" {
			stayDate = r.Date
		}

		valueArgs = append(valueArgs,
			r.Channel, r.RatePlan, r.Commission, r.Revenue, r.CancelRate,
			lead, property, stayDate)
	}

	query := fmt.Sprintf(`
		INSERT INTO import_archive (channel, rate_plan, commission, revenue, cancel_rate, lead_time, property, stay_date)
		VALUES %s
	`, strings.Join(valueStrings, ","))

	_, err := pa.db.Exec(query, valueArgs...)
	if err != nil {
		return fmt.Errorf("postgres: insert batch: %w", err)
	}
	return nil
}

func (pa *PostgresArchiver) Close() error {
	return pa.db.Close()
}
