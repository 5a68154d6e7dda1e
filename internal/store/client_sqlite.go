package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/udash/udash/internal/config"
	"github.com/udash/udash/internal/logger"
)

const (
	createLocalSchema = `CREATE TABLE IF NOT EXISTS last_login (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		username TEXT NOT NULL,
		saved_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`

	saveLastUsername = `INSERT INTO last_login (id, username, saved_at)
    VALUES (1, $1, CURRENT_TIMESTAMP)
    ON CONFLICT (id) DO UPDATE SET username = excluded.username, saved_at = excluded.saved_at;`

	getLastUsername = `SELECT username FROM last_login WHERE id = 1;`
)

// localSQLiteStore remembers the last successfully used username between
// client runs so the login form can pre-fill it. Purely a convenience:
// losing the file costs nothing but a few keystrokes.
type localSQLiteStore struct {
	db     *sql.DB
	logger *logger.Logger
}

// NewLocalStore opens (creating if necessary) the client's SQLite file and
// ensures the schema exists. An empty path places the file next to the
// executable.
func NewLocalStore(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (LocalStore, error) {
	path := cfg.Path
	if path == "" {
		execPath, err := os.Executable()
		if err != nil {
			return nil, fmt.Errorf("error resolving executable path: %w", err)
		}
		path = filepath.Join(filepath.Dir(execPath), "udash-client.db")
	}

	if err := createLocalDBFileIfNotExists(path); err != nil {
		log.Err(err).Str("func", "NewLocalStore").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file")
	}

	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		log.Err(err).Str("func", "NewLocalStore").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB")
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewLocalStore").Msg("error connecting database (ping)")
		return nil, err
	}

	if _, err = conn.ExecContext(ctx, createLocalSchema); err != nil {
		log.Err(err).Str("func", "NewLocalStore").Msg("error creating local schema")
		return nil, fmt.Errorf("error creating local schema: %w", err)
	}

	return &localSQLiteStore{db: conn, logger: log}, nil
}

func (s *localSQLiteStore) SaveLastUsername(ctx context.Context, username string) error {
	if _, err := s.db.ExecContext(ctx, saveLastUsername, username); err != nil {
		s.logger.Err(err).Str("func", "*localSQLiteStore.SaveLastUsername").Msg("error saving last username")
		return fmt.Errorf("error saving last username: %w", err)
	}
	return nil
}

func (s *localSQLiteStore) LastUsername(ctx context.Context) (string, error) {
	var username string
	err := s.db.QueryRowContext(ctx, getLastUsername).Scan(&username)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrLastUsernameNotFound
	}
	if err != nil {
		s.logger.Err(err).Str("func", "*localSQLiteStore.LastUsername").Msg("error reading last username")
		return "", fmt.Errorf("error reading last username: %w", err)
	}
	return username, nil
}

func (s *localSQLiteStore) Close() error {
	return s.db.Close()
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	return nil
}
