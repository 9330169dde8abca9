package db

import (
	"database/sql"
	_ "embed"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/Atharvmulik/taskkeeper/internal/models"
)

//go:embed schema.sql
var schema string

const (
	keyLastPriority = "last_priority"
	keyLastCategory = "last_category"
)

// DB wraps the local settings database
type DB struct {
	*sql.DB
}

// New opens (creating if needed) the settings database at path and initializes the schema
func New(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	// Initialize schema
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	return &DB{db}, nil
}

// GetSetting retrieves a setting value by key, "" if unset
func (db *DB) GetSetting(key string) (string, error) {
	var value string
	err := db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return value, err
}

// SetSetting sets a setting value
func (db *DB) SetSetting(key, value string) error {
	_, err := db.Exec(`
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, value)
	return err
}

// FormDefaults returns the priority and category last used in the input form.
// Missing or unreadable values fall back to Medium and Study.
func (db *DB) FormDefaults() (models.Priority, models.Category) {
	priority, category := models.PriorityMedium, models.CategoryStudy

	if v, err := db.GetSetting(keyLastPriority); err == nil && v != "" {
		if p, err := models.ParsePriority(v); err == nil {
			priority = p
		}
	}
	if v, err := db.GetSetting(keyLastCategory); err == nil && v != "" {
		if c, err := models.ParseCategory(v); err == nil {
			category = c
		}
	}
	return priority, category
}

// SaveFormDefaults remembers the priority and category for the next run
func (db *DB) SaveFormDefaults(priority models.Priority, category models.Category) error {
	if err := db.SetSetting(keyLastPriority, priority.String()); err != nil {
		return err
	}
	return db.SetSetting(keyLastCategory, string(category))
}
