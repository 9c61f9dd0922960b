package state

import (
	"database/sql"
	"fmt"

	// sqlite driver registration
	_ "github.com/mattn/go-sqlite3"
)

// Store persists per-plugin option bits across sessions, keyed by the
// plugin's save identifier. Never touched from the real-time thread.
type Store struct {
	db *sql.DB
}

// OpenStore opens (creating if needed) a settings database at path.
// Use ":memory:" for an ephemeral store.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open settings store: %w", err)
	}
	const schema = `
CREATE TABLE IF NOT EXISTS plugin_settings (
	identifier TEXT    NOT NULL,
	option     INTEGER NOT NULL,
	enabled    INTEGER NOT NULL,
	PRIMARY KEY (identifier, option)
);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init settings store: %w", err)
	}
	return &Store{db: db}, nil
}

// SaveSetting records whether one option bit is enabled for a plugin.
func (s *Store) SaveSetting(identifier string, option uint32, on bool) error {
	enabled := 0
	if on {
		enabled = 1
	}
	_, err := s.db.Exec(`
INSERT INTO plugin_settings (identifier, option, enabled) VALUES (?, ?, ?)
ON CONFLICT (identifier, option) DO UPDATE SET enabled = excluded.enabled`,
		identifier, option, enabled)
	if err != nil {
		return fmt.Errorf("save setting %#x for %q: %w", option, identifier, err)
	}
	return nil
}

// LoadSetting returns whether one option bit was saved as enabled.
// ok is false when no setting was ever saved for that bit.
func (s *Store) LoadSetting(identifier string, option uint32) (on, ok bool, err error) {
	var enabled int
	err = s.db.QueryRow(`
SELECT enabled FROM plugin_settings WHERE identifier = ? AND option = ?`,
		identifier, option).Scan(&enabled)
	if err == sql.ErrNoRows {
		return false, false, nil
	}
	if err != nil {
		return false, false, fmt.Errorf("load setting %#x for %q: %w", option, identifier, err)
	}
	return enabled != 0, true, nil
}

// LoadOptions returns the OR of all option bits saved as enabled for a
// plugin.
func (s *Store) LoadOptions(identifier string) (uint32, error) {
	rows, err := s.db.Query(`
SELECT option FROM plugin_settings WHERE identifier = ? AND enabled = 1`, identifier)
	if err != nil {
		return 0, fmt.Errorf("load options for %q: %w", identifier, err)
	}
	defer rows.Close()

	var options uint32
	for rows.Next() {
		var option uint32
		if err := rows.Scan(&option); err != nil {
			return 0, err
		}
		options |= option
	}
	return options, rows.Err()
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
