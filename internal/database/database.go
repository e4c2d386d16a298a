package database

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/vincentbai/domtrace-agent/internal/models"
	_ "modernc.org/sqlite" // CGO-free SQLite
)

type Database struct {
	db *sql.DB
}

func NewDatabase(databasePath string) (*Database, error) {
	// WAL + busy timeout to avoid "database is locked"
	db, err := sql.Open("sqlite", databasePath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := createTables(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Database{db: db}, nil
}

func createTables(db *sql.DB) error {
	_, err := db.Exec(`
	CREATE TABLE IF NOT EXISTS records(
	  id          INTEGER PRIMARY KEY,
	  session_id  TEXT    NOT NULL,
	  ts_utc      INTEGER NOT NULL,
	  ts_iso      TEXT    NOT NULL,
	  url         TEXT    NOT NULL,
	  title       TEXT,
	  type        TEXT    NOT NULL,
	  record_json TEXT    NOT NULL CHECK (json_valid(record_json))
	);
	CREATE INDEX IF NOT EXISTS idx_records_ts      ON records(ts_utc);
	CREATE INDEX IF NOT EXISTS idx_records_type    ON records(type);
	CREATE INDEX IF NOT EXISTS idx_records_url     ON records(url);
	CREATE INDEX IF NOT EXISTS idx_records_session ON records(session_id);
	`)
	if err != nil {
		return fmt.Errorf("failed to create database tables: %w", err)
	}
	return nil
}

func (d *Database) Close() error {
	return d.db.Close()
}

// ValidateRecord checks the envelope only. Event types are not whitelisted:
// any type serializes, unrecognized ones just carry no class fields.
func (d *Database) ValidateRecord(record models.StoredRecord) error {
	if record.URL == "" {
		return fmt.Errorf("URL cannot be empty")
	}
	if record.Type == "" {
		return fmt.Errorf("Type cannot be empty")
	}
	if record.TSUTC <= 0 {
		return fmt.Errorf("timestamp must be positive")
	}
	return nil
}

func (d *Database) InsertRecords(sessionID string, records []models.StoredRecord) error {
	transaction, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	statement, err := transaction.Prepare(`INSERT INTO records(session_id, ts_utc, ts_iso, url, title, type, record_json) VALUES(?,?,?,?,?,?,json(?))`)
	if err != nil {
		_ = transaction.Rollback()
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer statement.Close()

	for _, record := range records {
		if err := d.ValidateRecord(record); err != nil {
			_ = transaction.Rollback()
			return fmt.Errorf("invalid record: %w", err)
		}

		jsonData, err := json.Marshal(record.Record)
		if err != nil {
			_ = transaction.Rollback()
			return fmt.Errorf("failed to marshal record: %w", err)
		}
		if _, err := statement.Exec(sessionID, record.TSUTC, record.TSISO, record.URL, record.Title, record.Type, string(jsonData)); err != nil {
			_ = transaction.Rollback()
			return fmt.Errorf("failed to execute statement: %w", err)
		}
	}
	if err := transaction.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// CountRecords reports how many records a session has stored; an empty
// sessionID counts every session.
func (d *Database) CountRecords(sessionID string) (int64, error) {
	var count int64
	var err error
	if sessionID == "" {
		err = d.db.QueryRow(`SELECT COUNT(*) FROM records`).Scan(&count)
	} else {
		err = d.db.QueryRow(`SELECT COUNT(*) FROM records WHERE session_id = ?`, sessionID).Scan(&count)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return count, nil
}
