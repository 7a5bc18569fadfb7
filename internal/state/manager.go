package state

import (
	"database/sql"
	"strings"
	"time"

	"github.com/exaroton/exaroton-go/internal/errors"
	"github.com/exaroton/exaroton-go/internal/interfaces"
	_ "github.com/mattn/go-sqlite3"
)

// Manager implements the StateStore interface on a SQLite database
type Manager struct {
	db *sql.DB
}

// NewManager creates a new state manager instance
func NewManager() *Manager {
	return &Manager{}
}

// Initialize creates and initializes the SQLite database with the required schema
func (m *Manager) Initialize(dbPath string) error {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return errors.NewGenericError("failed to open state database", err)
	}

	m.db = db

	// Test the database connection to detect corruption early
	if err := m.db.Ping(); err != nil {
		m.db.Close()
		return errors.NewGenericError("state database is corrupted or inaccessible", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS profiles (
		name TEXT PRIMARY KEY,
		api_key TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL
	);

	CREATE TABLE IF NOT EXISTS server_cache (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		address TEXT NOT NULL,
		status TEXT NOT NULL,
		motd TEXT NOT NULL,
		fetched_at TIMESTAMP NOT NULL
	);

	CREATE TABLE IF NOT EXISTS command_history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		server_id TEXT NOT NULL,
		command TEXT NOT NULL,
		executed_at TIMESTAMP NOT NULL
	);
	`

	if _, err := m.db.Exec(schema); err != nil {
		m.db.Close()
		if isCorruptionError(err) {
			return errors.NewGenericError("state database is corrupted and cannot be initialized", err)
		}
		return errors.NewGenericError("failed to create state database schema", err)
	}

	return nil
}

// SaveProfile stores or replaces a credential profile
func (m *Manager) SaveProfile(name, apiKey string) error {
	_, err := m.db.Exec(
		`INSERT INTO profiles (name, api_key, created_at) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET api_key = excluded.api_key`,
		name, apiKey, time.Now().UTC(),
	)
	if err != nil {
		return errors.NewGenericError("failed to save profile", err)
	}
	return nil
}

// GetProfile returns a stored profile, or nil if it does not exist
func (m *Manager) GetProfile(name string) (*interfaces.Profile, error) {
	row := m.db.QueryRow(`SELECT name, api_key, created_at FROM profiles WHERE name = ?`, name)

	var profile interfaces.Profile
	if err := row.Scan(&profile.Name, &profile.APIKey, &profile.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.NewGenericError("failed to read profile", err)
	}
	return &profile, nil
}

// DeleteProfile removes a stored profile
func (m *Manager) DeleteProfile(name string) error {
	if _, err := m.db.Exec(`DELETE FROM profiles WHERE name = ?`, name); err != nil {
		return errors.NewGenericError("failed to delete profile", err)
	}
	return nil
}

// ListProfiles returns all stored profiles sorted by name
func (m *Manager) ListProfiles() ([]interfaces.Profile, error) {
	rows, err := m.db.Query(`SELECT name, api_key, created_at FROM profiles ORDER BY name`)
	if err != nil {
		return nil, errors.NewGenericError("failed to list profiles", err)
	}
	defer rows.Close()

	var profiles []interfaces.Profile
	for rows.Next() {
		var profile interfaces.Profile
		if err := rows.Scan(&profile.Name, &profile.APIKey, &profile.CreatedAt); err != nil {
			return nil, errors.NewGenericError("failed to scan profile", err)
		}
		profiles = append(profiles, profile)
	}
	return profiles, rows.Err()
}

// CacheServers replaces the server cache with the given snapshot
func (m *Manager) CacheServers(servers []interfaces.CachedServer) error {
	tx, err := m.db.Begin()
	if err != nil {
		return errors.NewGenericError("failed to begin cache transaction", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM server_cache`); err != nil {
		return errors.NewGenericError("failed to clear server cache", err)
	}

	now := time.Now().UTC()
	for _, server := range servers {
		_, err := tx.Exec(
			`INSERT INTO server_cache (id, name, address, status, motd, fetched_at) VALUES (?, ?, ?, ?, ?, ?)`,
			server.ID, server.Name, server.Address, server.Status, server.MOTD, now,
		)
		if err != nil {
			return errors.NewGenericError("failed to cache server", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.NewGenericError("failed to commit server cache", err)
	}
	return nil
}

// CachedServers returns the cached snapshot if it is younger than maxAge.
// An empty result means the cache is stale or was never filled.
func (m *Manager) CachedServers(maxAge time.Duration) ([]interfaces.CachedServer, error) {
	cutoff := time.Now().UTC().Add(-maxAge)
	rows, err := m.db.Query(
		`SELECT id, name, address, status, motd, fetched_at FROM server_cache WHERE fetched_at > ? ORDER BY name`,
		cutoff,
	)
	if err != nil {
		return nil, errors.NewGenericError("failed to read server cache", err)
	}
	defer rows.Close()

	var servers []interfaces.CachedServer
	for rows.Next() {
		var server interfaces.CachedServer
		if err := rows.Scan(&server.ID, &server.Name, &server.Address, &server.Status, &server.MOTD, &server.FetchedAt); err != nil {
			return nil, errors.NewGenericError("failed to scan cached server", err)
		}
		servers = append(servers, server)
	}
	return servers, rows.Err()
}

// RecordCommand appends a console command to the history
func (m *Manager) RecordCommand(serverID, command string) error {
	_, err := m.db.Exec(
		`INSERT INTO command_history (server_id, command, executed_at) VALUES (?, ?, ?)`,
		serverID, command, time.Now().UTC(),
	)
	if err != nil {
		return errors.NewGenericError("failed to record command", err)
	}
	return nil
}

// CommandHistory returns the most recent console commands for a server,
// oldest first
func (m *Manager) CommandHistory(serverID string, limit int) ([]string, error) {
	rows, err := m.db.Query(
		`SELECT command FROM (
			SELECT id, command FROM command_history WHERE server_id = ? ORDER BY id DESC LIMIT ?
		 ) ORDER BY id ASC`,
		serverID, limit,
	)
	if err != nil {
		return nil, errors.NewGenericError("failed to read command history", err)
	}
	defer rows.Close()

	var commands []string
	for rows.Next() {
		var command string
		if err := rows.Scan(&command); err != nil {
			return nil, errors.NewGenericError("failed to scan command", err)
		}
		commands = append(commands, command)
	}
	return commands, rows.Err()
}

// Close closes the database connection
func (m *Manager) Close() error {
	if m.db != nil {
		return m.db.Close()
	}
	return nil
}

// isCorruptionError checks if an error indicates database corruption
func isCorruptionError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "database disk image is malformed") ||
		strings.Contains(msg, "file is not a database") ||
		strings.Contains(msg, "database corruption")
}
