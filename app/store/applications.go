package store

import (
	"context"
	"fmt"
)

// AddApplication inserts an application. Fails with ErrDuplicateKey if the seeker already
// applied for the job. Returns the generated id.
func (s *Store) AddApplication(ctx context.Context, app Application) (int64, error) {
	db, err := s.conn(ctx)
	if err != nil {
		return 0, err
	}
	res, err := db.ExecContext(ctx, "INSERT INTO applications (job_id, seeker_username, applied_at) VALUES (?, ?, ?)",
		app.JobID, app.SeekerUsername, app.AppliedAt.UnixMilli())
	if err != nil {
		return 0, writeErr(fmt.Sprintf("add application for job %s by %q", app.JobID, app.SeekerUsername), err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, &StorageError{Op: "get application id", Err: err}
	}
	return id, nil
}

// SubmitApplication inserts the application and the provider notification in one transaction.
// Fails with ErrDuplicateKey, writing nothing, if the seeker already applied for the job.
// Returns the id of the created notification.
func (s *Store) SubmitApplication(ctx context.Context, app Application, n Notification) (int64, error) {
	db, err := s.conn(ctx)
	if err != nil {
		return 0, err
	}
	op := fmt.Sprintf("submit application for job %s by %q", app.JobID, app.SeekerUsername)

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, &StorageError{Op: op, Err: err}
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err = tx.ExecContext(ctx, "INSERT INTO applications (job_id, seeker_username, applied_at) VALUES (?, ?, ?)",
		app.JobID, app.SeekerUsername, app.AppliedAt.UnixMilli()); err != nil {
		return 0, writeErr(op, err)
	}

	res, err := tx.ExecContext(ctx, `INSERT INTO notifications
		(provider_username, job_id, job_title, seeker_username, timestamp, read) VALUES (?, ?, ?, ?, ?, ?)`,
		n.ProviderUsername, n.JobID, n.JobTitle, n.SeekerUsername, n.Timestamp.UnixMilli(), n.Read)
	if err != nil {
		return 0, writeErr(op, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, &StorageError{Op: op, Err: err}
	}

	if err := tx.Commit(); err != nil {
		return 0, &StorageError{Op: op, Err: err}
	}
	return id, nil
}

// CountApplications counts applications on the unique (job, seeker) index, 0 or 1
func (s *Store) CountApplications(ctx context.Context, jobID, seekerUsername string) (int, error) {
	db, err := s.conn(ctx)
	if err != nil {
		return 0, err
	}
	var count int
	if err := db.GetContext(ctx, &count, "SELECT COUNT(*) FROM applications INDEXED BY idx_applications_job_seeker "+
		"WHERE job_id = ? AND seeker_username = ?", jobID, seekerUsername); err != nil {
		return 0, &StorageError{Op: "count applications", Err: err}
	}
	return count, nil
}

// ApplicantsForJob returns usernames of seekers applied for the job, in application order
func (s *Store) ApplicantsForJob(ctx context.Context, jobID string) ([]string, error) {
	db, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}
	res := []string{}
	if err := db.SelectContext(ctx, &res, "SELECT seeker_username FROM applications "+
		"WHERE job_id = ? ORDER BY id", jobID); err != nil {
		return nil, &StorageError{Op: fmt.Sprintf("query applicants for job %s", jobID), Err: err}
	}
	return res, nil
}
