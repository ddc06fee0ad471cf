// Package db stores operator preferences in a local sqlite file. It never
// holds patient measurements.
package db

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// Setting names.
const (
	SettingColor         = "color"
	SettingStrictNumbers = "strict_numbers"
)

// Settings are the stored preferences with defaults applied.
type Settings struct {
	Color         bool
	StrictNumbers bool
}

// DefaultSettings reproduces the tool's behaviour before anything is stored.
func DefaultSettings() Settings {
	return Settings{Color: true, StrictNumbers: true}
}

type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// DefaultPath returns ~/.config/bmichart/bmichart.db.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("error getting home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "bmichart", "bmichart.db"), nil
}

// InitDB opens the store at dbPath, creating the file and applying schema
// versions as needed.
func InitDB(dbPath string, logger *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("error creating directory: %w", err)
	}

	conn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	s := &Store{db: conn, logger: logger}
	if err := s.checkAndUpdateSchema(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("error checking and updating schema: %w", err)
	}

	logger.Debug("Settings database initialized.", "path", dbPath)
	return s, nil
}

func (s *Store) checkAndUpdateSchema() error {
	// The first schema creates schema_version itself.
	if _, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS schema_version (
		version INTEGER PRIMARY KEY,
		applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`); err != nil {
		return fmt.Errorf("error creating schema_version table: %w", err)
	}

	var currentVersion int
	err := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("error checking schema version: %w", err)
	}

	schemaVersions := []struct {
		version int
		schema  string
	}{
		{1, "schema/001_settings.sql"},
	}

	for _, sv := range schemaVersions {
		if sv.version <= currentVersion {
			continue
		}

		schemaContent, err := schemaFS.ReadFile(sv.schema)
		if err != nil {
			return fmt.Errorf("error reading schema file %s: %w", sv.schema, err)
		}

		tx, err := s.db.Begin()
		if err != nil {
			return fmt.Errorf("error starting transaction: %w", err)
		}
		if _, err := tx.Exec(string(schemaContent)); err != nil {
			tx.Rollback()
			return fmt.Errorf("error applying schema version %d: %w", sv.version, err)
		}
		if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", sv.version); err != nil {
			tx.Rollback()
			return fmt.Errorf("error updating schema version: %w", err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("error committing schema version %d: %w", sv.version, err)
		}

		s.logger.Debug("Applied schema version.", "version", sv.version)
	}

	return nil
}

// SchemaVersion returns the highest applied schema version.
func (s *Store) SchemaVersion() (int, error) {
	var v int
	if err := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&v); err != nil {
		return 0, fmt.Errorf("error checking schema version: %w", err)
	}
	return v, nil
}

func (s *Store) SetSetting(name, value string) error {
	query := `INSERT OR REPLACE INTO settings (name, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP);`
	if _, err := s.db.Exec(query, name, value); err != nil {
		s.logger.Error("Error setting value.", "setting", name, "error", err)
		return fmt.Errorf("failed to set %s: %w", name, err)
	}
	s.logger.Debug("Setting stored.", "setting", name, "value", value)
	return nil
}

// getSetting returns the stored value, or "" with ok=false when unset.
func (s *Store) getSetting(name string) (value string, ok bool, err error) {
	query := `SELECT value FROM settings WHERE name = ?;`
	err = s.db.QueryRow(query, name).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get %s: %w", name, err)
	}
	return value, true, nil
}

func (s *Store) GetAllSettings() (map[string]string, error) {
	rows, err := s.db.Query(`SELECT name, value FROM settings;`)
	if err != nil {
		return nil, fmt.Errorf("error querying settings: %w", err)
	}
	defer rows.Close()

	all := make(map[string]string)
	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			return nil, fmt.Errorf("error scanning setting row: %w", err)
		}
		all[name] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after scanning rows: %w", err)
	}
	return all, nil
}

func (s *Store) deleteSetting(name string) error {
	if _, err := s.db.Exec(`DELETE FROM settings WHERE name = ?;`, name); err != nil {
		return fmt.Errorf("failed to delete %s: %w", name, err)
	}
	return nil
}

// Load reads the stored settings over DefaultSettings. Unparsable values
// are logged and ignored.
func (s *Store) Load() (Settings, error) {
	settings := DefaultSettings()

	all, err := s.GetAllSettings()
	if err != nil {
		return settings, err
	}

	for name, target := range map[string]*bool{
		SettingColor:         &settings.Color,
		SettingStrictNumbers: &settings.StrictNumbers,
	} {
		raw, ok := all[name]
		if !ok {
			continue
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			s.logger.Warn("Ignoring invalid stored setting.", "setting", name, "value", raw)
			continue
		}
		*target = v
	}

	return settings, nil
}

// Save stores every field of settings.
func (s *Store) Save(settings Settings) error {
	if err := s.SetSetting(SettingColor, strconv.FormatBool(settings.Color)); err != nil {
		return err
	}
	return s.SetSetting(SettingStrictNumbers, strconv.FormatBool(settings.StrictNumbers))
}

// FlushDB removes all stored settings.
func (s *Store) FlushDB() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM settings;`); err != nil {
		return fmt.Errorf("error clearing settings: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	s.logger.Debug("Settings flushed.")
	return nil
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("error closing database: %w", err)
	}
	return nil
}
