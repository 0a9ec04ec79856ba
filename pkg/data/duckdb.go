package data

import (
	"database/sql"
	"log"
	"os"
	"path/filepath"

	_ "github.com/marcboeker/go-duckdb/v2"
)

// Storage keys. Each key is read and written independently; there is no
// transactional grouping across keys.
const (
	KeyAuthToken   = "auth_token"
	KeyUserProfile = "user_profile"
	KeyCartItems   = "cart_items"
)

func InitDuckDB(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key VARCHAR PRIMARY KEY,
		value VARCHAR NOT NULL
	)`); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// Repository is a key-value store over DuckDB. Values are JSON documents
// owned by the callers; the repository never inspects them.
type Repository struct {
	db *sql.DB
}

var duckDB *sql.DB

func NewDuckDBRepository(path string) *Repository {
	if duckDB == nil {
		db, err := InitDuckDB(path)
		if err != nil {
			log.Fatal(err)
		}
		duckDB = db
	}

	return &Repository{db: duckDB}
}

// NewRepository wraps an already-open database. Used by tests and anywhere
// the singleton is not wanted.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Get returns the stored value for key. The second result is false when the
// key is absent.
func (r *Repository) Get(key string) ([]byte, bool, error) {
	var value string
	err := r.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(value), true, nil
}

// Put stores value under key, replacing any previous value.
func (r *Repository) Put(key string, value []byte) error {
	_, err := r.db.Exec(
		`INSERT OR REPLACE INTO kv (key, value) VALUES (?, ?)`,
		key, string(value),
	)
	return err
}

// Delete removes key. Deleting an absent key is not an error.
func (r *Repository) Delete(key string) error {
	_, err := r.db.Exec(`DELETE FROM kv WHERE key = ?`, key)
	return err
}

func (r *Repository) Close() error {
	return r.db.Close()
}
