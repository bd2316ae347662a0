package sqlite

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// No table carries a uniqueness constraint on its business key: duplicate
// usernames and duplicate (username, competition_id) sign-ups are storable.
const schema = `
CREATE TABLE IF NOT EXISTS credential (
	username TEXT NOT NULL,
	password TEXT NOT NULL,
	created_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS profile (
	id TEXT PRIMARY KEY,
	username TEXT NOT NULL,
	password TEXT NOT NULL,
	phone TEXT NOT NULL DEFAULT '',
	class_id TEXT NOT NULL DEFAULT '',
	college TEXT NOT NULL DEFAULT '',
	score_number TEXT NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS signup (
	id TEXT PRIMARY KEY,
	username TEXT NOT NULL,
	competition_id TEXT NOT NULL,
	competition TEXT NOT NULL DEFAULT '',
	is_sign_up INTEGER NOT NULL DEFAULT 1,
	phone TEXT NOT NULL DEFAULT '',
	class_id TEXT NOT NULL DEFAULT '',
	college TEXT NOT NULL DEFAULT '',
	score_number TEXT NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS admin (
	name TEXT NOT NULL,
	password TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS document (
	id TEXT PRIMARY KEY,
	collection TEXT NOT NULL,
	body TEXT NOT NULL, -- JSON object
	created_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_credential_username ON credential(username);
CREATE INDEX IF NOT EXISTS idx_profile_username ON profile(username);
CREATE INDEX IF NOT EXISTS idx_signup_user_competition ON signup(username, competition_id);
CREATE INDEX IF NOT EXISTS idx_document_collection ON document(collection);
`

const memoryPath = ":memory:"

type DB struct {
	*sqlx.DB
}

func New(dbPath string) (*DB, error) {
	db, err := sqlx.Connect("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Every pooled connection to ":memory:" would open its own empty database.
	if dbPath == memoryPath {
		db.SetMaxOpenConns(1)
	} else {
		// Enable WAL mode so readers do not block the writer
		if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &DB{db}, nil
}

// Wrap adapts an existing sqlx handle without touching its schema.
func Wrap(db *sqlx.DB) *DB {
	return &DB{db}
}

func (db *DB) Close() error {
	return db.DB.Close()
}
