package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/jmoiron/sqlx"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// ErrDuplicateKey returned when an insert violates a primary key or a unique index
var ErrDuplicateKey = errors.New("duplicate key")

// ErrClosed returned for operations on a closed store
var ErrClosed = errors.New("store closed")

// StorageError wraps failures of the underlying database
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return fmt.Sprintf("failed to %s: %v", e.Op, e.Err) }

// Unwrap returns the underlying error
func (e *StorageError) Unwrap() error { return e.Err }

// Store is a SQLite-backed collection store. It is safe for concurrent use.
type Store struct {
	path string
	seed []Job

	once sync.Once
	mu   sync.RWMutex // guards db and err, set once by open and reset by Close
	db   *sqlx.DB
	err  error
}

// New makes a store for the given database file. The file is opened lazily on first use.
// A nil seed means the embedded catalog is used to populate a fresh jobs collection.
func New(path string, seed []Job) *Store {
	return &Store{path: path, seed: seed}
}

// Open initializes the store if it isn't yet. Safe to call repeatedly and concurrently,
// all callers get the result of the same initialization.
func (s *Store) Open(ctx context.Context) error {
	_, err := s.conn(ctx)
	return err
}

// Close closes the database connection. A store that was never opened becomes unusable.
func (s *Store) Close() error {
	s.once.Do(func() {}) // never opened, nothing to initialize anymore

	s.mu.Lock()
	db := s.db
	s.db, s.err = nil, ErrClosed
	s.mu.Unlock()
	if db == nil {
		return nil
	}
	return db.Close()
}

func (s *Store) conn(ctx context.Context) (*sqlx.DB, error) {
	s.once.Do(func() {
		db, err := s.open(ctx)
		if err != nil {
			log.Printf("[WARN] can't open store %s, %v", s.path, err)
		}
		s.mu.Lock()
		s.db, s.err = db, err
		s.mu.Unlock()
	})

	s.mu.RLock()
	db, err := s.db, s.err
	s.mu.RUnlock()
	if err != nil {
		if errors.Is(err, ErrClosed) {
			return nil, err
		}
		return nil, &StorageError{Op: "open store", Err: err}
	}
	if db == nil {
		return nil, ErrClosed
	}
	return db, nil
}

func (s *Store) open(ctx context.Context) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// single connection serializes access and keeps pragmas effective for every query
	db.SetMaxOpenConns(1)

	// initialization must not be cut short by the caller's context, otherwise all later callers fail
	initCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 30*time.Second)
	defer cancel()

	// enable WAL mode for better concurrency
	if _, err := db.ExecContext(initCtx, "PRAGMA journal_mode=WAL"); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return nil, fmt.Errorf("failed to set WAL mode: %w (also failed to close db: %v)", err, closeErr)
		}
		return nil, fmt.Errorf("failed to set WAL mode: %w", err)
	}

	if err := s.initialize(initCtx, db); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return nil, fmt.Errorf("%w (also failed to close db: %v)", err, closeErr)
		}
		return nil, err
	}
	log.Printf("[DEBUG] store opened, %s", s.path)
	return db, nil
}

// initialize creates the schema and seeds jobs if the jobs table didn't exist before.
// Everything runs in one transaction, so a failed seed leaves no jobs table behind.
func (s *Store) initialize(ctx context.Context, db *sqlx.DB) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	var jobsTables int
	if err := tx.GetContext(ctx, &jobsTables,
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='jobs'"); err != nil {
		return fmt.Errorf("failed to check jobs table: %w", err)
	}

	queries := []string{
		`CREATE TABLE IF NOT EXISTS users (
			username TEXT PRIMARY KEY,
			password TEXT NOT NULL,
			user_type TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS seeker_profiles (
			username TEXT PRIMARY KEY,
			name TEXT NOT NULL DEFAULT '',
			email TEXT NOT NULL DEFAULT '',
			phone TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			skills TEXT NOT NULL DEFAULT '[]',
			profile_picture TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS provider_profiles (
			username TEXT PRIMARY KEY,
			name TEXT NOT NULL DEFAULT '',
			email TEXT NOT NULL DEFAULT '',
			phone TEXT NOT NULL DEFAULT '',
			company TEXT NOT NULL DEFAULT '',
			profile_picture TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS jobs (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			company TEXT NOT NULL,
			location TEXT NOT NULL,
			description TEXT NOT NULL,
			skills TEXT NOT NULL DEFAULT '[]',
			type TEXT NOT NULL,
			posted_date TEXT NOT NULL,
			provider_username TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS applications (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			job_id TEXT NOT NULL,
			seeker_username TEXT NOT NULL,
			applied_at INTEGER
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_applications_job_seeker ON applications(job_id, seeker_username)`,
		`CREATE INDEX IF NOT EXISTS idx_applications_job_id ON applications(job_id)`,
		`CREATE TABLE IF NOT EXISTS notifications (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			provider_username TEXT NOT NULL,
			job_id TEXT NOT NULL,
			job_title TEXT NOT NULL,
			seeker_username TEXT NOT NULL,
			timestamp INTEGER NOT NULL,
			read BOOLEAN NOT NULL DEFAULT 0
		)`,
		`CREATE INDEX IF NOT EXISTS idx_notifications_provider ON notifications(provider_username)`,
	}

	for _, query := range queries {
		if _, err := tx.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}
	}

	if jobsTables == 0 {
		seed := s.seed
		if seed == nil {
			if seed, err = DefaultSeed(); err != nil {
				return err
			}
		}
		for _, job := range seed {
			if err := insertJob(ctx, tx, job); err != nil {
				return fmt.Errorf("failed to seed job %s: %w", job.ID, err)
			}
		}
		log.Printf("[INFO] jobs collection created and seeded with %d jobs", len(seed))
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// isDuplicate checks if err is a unique or primary key constraint violation
func isDuplicate(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	return se.Code()&0xff == sqlite3.SQLITE_CONSTRAINT && strings.Contains(se.Error(), "UNIQUE")
}

// writeErr converts insert errors to ErrDuplicateKey or StorageError
func writeErr(op string, err error) error {
	if isDuplicate(err) {
		return fmt.Errorf("failed to %s: %w", op, ErrDuplicateKey)
	}
	return &StorageError{Op: op, Err: err}
}
