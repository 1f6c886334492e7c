package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ruralroots/jobboard/app/enums"
)

// AddUser inserts a new user, fails with ErrDuplicateKey if the username is taken
func (s *Store) AddUser(ctx context.Context, user User) error {
	db, err := s.conn(ctx)
	if err != nil {
		return err
	}
	if err := insertUser(ctx, db, user); err != nil {
		return writeErr(fmt.Sprintf("add user %q", user.Username), err)
	}
	return nil
}

// GetUser returns user by username, nil if not found
func (s *Store) GetUser(ctx context.Context, username string) (*User, error) {
	db, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}
	var user User
	err = db.GetContext(ctx, &user, "SELECT username, password, user_type FROM users WHERE username = ?", username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, &StorageError{Op: fmt.Sprintf("get user %q", username), Err: err}
	}
	return &user, nil
}

// CreateAccount inserts the user and the profile matching its type in a single transaction.
// Exactly one of seeker and provider is used, picked by user.Type.
// Nothing is written if the username is taken.
func (s *Store) CreateAccount(ctx context.Context, user User, seeker SeekerProfile, provider ProviderProfile) error {
	db, err := s.conn(ctx)
	if err != nil {
		return err
	}
	op := fmt.Sprintf("create account %q", user.Username)

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return &StorageError{Op: op, Err: err}
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if err := insertUser(ctx, tx, user); err != nil {
		return writeErr(op, err)
	}

	switch user.Type {
	case enums.UserTypeSeeker:
		seeker.Username = user.Username
		err = execSeekerProfile(ctx, tx, "INSERT", seeker)
	case enums.UserTypeProvider:
		provider.Username = user.Username
		err = execProviderProfile(ctx, tx, "INSERT", provider)
	default:
		err = fmt.Errorf("unknown user type %q", user.Type)
	}
	if err != nil {
		return writeErr(op, err)
	}

	if err := tx.Commit(); err != nil {
		return &StorageError{Op: op, Err: err}
	}
	return nil
}

// AddSeekerProfile inserts a seeker profile, fails with ErrDuplicateKey if one exists
func (s *Store) AddSeekerProfile(ctx context.Context, p SeekerProfile) error {
	db, err := s.conn(ctx)
	if err != nil {
		return err
	}
	if err := execSeekerProfile(ctx, db, "INSERT", p); err != nil {
		return writeErr(fmt.Sprintf("add seeker profile %q", p.Username), err)
	}
	return nil
}

// PutSeekerProfile inserts or replaces a seeker profile
func (s *Store) PutSeekerProfile(ctx context.Context, p SeekerProfile) error {
	db, err := s.conn(ctx)
	if err != nil {
		return err
	}
	if err := execSeekerProfile(ctx, db, "INSERT OR REPLACE", p); err != nil {
		return &StorageError{Op: fmt.Sprintf("put seeker profile %q", p.Username), Err: err}
	}
	return nil
}

// GetSeekerProfile returns seeker profile by username, nil if not found
func (s *Store) GetSeekerProfile(ctx context.Context, username string) (*SeekerProfile, error) {
	db, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}
	var p SeekerProfile
	err = db.GetContext(ctx, &p, `SELECT username, name, email, phone, description, skills, profile_picture
		FROM seeker_profiles WHERE username = ?`, username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, &StorageError{Op: fmt.Sprintf("get seeker profile %q", username), Err: err}
	}
	return &p, nil
}

// AddProviderProfile inserts a provider profile, fails with ErrDuplicateKey if one exists
func (s *Store) AddProviderProfile(ctx context.Context, p ProviderProfile) error {
	db, err := s.conn(ctx)
	if err != nil {
		return err
	}
	if err := execProviderProfile(ctx, db, "INSERT", p); err != nil {
		return writeErr(fmt.Sprintf("add provider profile %q", p.Username), err)
	}
	return nil
}

// PutProviderProfile inserts or replaces a provider profile
func (s *Store) PutProviderProfile(ctx context.Context, p ProviderProfile) error {
	db, err := s.conn(ctx)
	if err != nil {
		return err
	}
	if err := execProviderProfile(ctx, db, "INSERT OR REPLACE", p); err != nil {
		return &StorageError{Op: fmt.Sprintf("put provider profile %q", p.Username), Err: err}
	}
	return nil
}

// GetProviderProfile returns provider profile by username, nil if not found
func (s *Store) GetProviderProfile(ctx context.Context, username string) (*ProviderProfile, error) {
	db, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}
	var p ProviderProfile
	err = db.GetContext(ctx, &p, `SELECT username, name, email, phone, company, profile_picture
		FROM provider_profiles WHERE username = ?`, username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, &StorageError{Op: fmt.Sprintf("get provider profile %q", username), Err: err}
	}
	return &p, nil
}

func insertUser(ctx context.Context, ex sqlx.ExecerContext, user User) error {
	_, err := ex.ExecContext(ctx, "INSERT INTO users (username, password, user_type) VALUES (?, ?, ?)",
		user.Username, user.Password, user.Type)
	return err
}

// execSeekerProfile writes profile with the given verb, "INSERT" or "INSERT OR REPLACE"
func execSeekerProfile(ctx context.Context, ex sqlx.ExecerContext, verb string, p SeekerProfile) error {
	_, err := ex.ExecContext(ctx, verb+` INTO seeker_profiles
		(username, name, email, phone, description, skills, profile_picture)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.Username, p.Name, p.Email, p.Phone, p.Description, p.Skills, p.ProfilePicture)
	return err
}

// execProviderProfile writes profile with the given verb, "INSERT" or "INSERT OR REPLACE"
func execProviderProfile(ctx context.Context, ex sqlx.ExecerContext, verb string, p ProviderProfile) error {
	_, err := ex.ExecContext(ctx, verb+` INTO provider_profiles
		(username, name, email, phone, company, profile_picture)
		VALUES (?, ?, ?, ?, ?, ?)`,
		p.Username, p.Name, p.Email, p.Phone, p.Company, p.ProfilePicture)
	return err
}
