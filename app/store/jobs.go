package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const jobColumns = "id, title, company, location, description, skills, type, posted_date, provider_username"

// AddJob inserts a job, fails with ErrDuplicateKey if the id exists
func (s *Store) AddJob(ctx context.Context, job Job) error {
	db, err := s.conn(ctx)
	if err != nil {
		return err
	}
	if err := insertJob(ctx, db, job); err != nil {
		return writeErr(fmt.Sprintf("add job %s", job.ID), err)
	}
	return nil
}

// GetJob returns job by id, nil if not found
func (s *Store) GetJob(ctx context.Context, id string) (*Job, error) {
	db, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}
	var job Job
	err = db.GetContext(ctx, &job, "SELECT "+jobColumns+" FROM jobs WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, &StorageError{Op: fmt.Sprintf("get job %s", id), Err: err}
	}
	return &job, nil
}

// ListJobs returns all jobs in insertion order
func (s *Store) ListJobs(ctx context.Context) ([]Job, error) {
	db, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}
	jobs := []Job{}
	if err := db.SelectContext(ctx, &jobs, "SELECT "+jobColumns+" FROM jobs ORDER BY rowid"); err != nil {
		return nil, &StorageError{Op: "query jobs", Err: err}
	}
	return jobs, nil
}

func insertJob(ctx context.Context, ex sqlx.ExecerContext, job Job) error {
	_, err := ex.ExecContext(ctx, "INSERT INTO jobs ("+jobColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
		job.ID, job.Title, job.Company, job.Location, job.Description, job.Skills, job.Type,
		job.PostedDate, job.ProviderUsername)
	return err
}
