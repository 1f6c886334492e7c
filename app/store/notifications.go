package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	log "github.com/go-pkgz/lgr"
	"github.com/jmoiron/sqlx"
)

const notificationColumns = "id, provider_username, job_id, job_title, seeker_username, timestamp, read"

// AddNotification inserts a notification and returns its generated id. n.ID is ignored.
func (s *Store) AddNotification(ctx context.Context, n Notification) (int64, error) {
	db, err := s.conn(ctx)
	if err != nil {
		return 0, err
	}
	res, err := db.ExecContext(ctx, `INSERT INTO notifications
		(provider_username, job_id, job_title, seeker_username, timestamp, read) VALUES (?, ?, ?, ?, ?, ?)`,
		n.ProviderUsername, n.JobID, n.JobTitle, n.SeekerUsername, n.Timestamp.UnixMilli(), n.Read)
	if err != nil {
		return 0, writeErr("add notification", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, &StorageError{Op: "get notification id", Err: err}
	}
	return id, nil
}

// GetNotification returns notification by id, nil if not found
func (s *Store) GetNotification(ctx context.Context, id int64) (*Notification, error) {
	db, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}
	n, err := getNotification(ctx, db, id)
	if err != nil {
		return nil, &StorageError{Op: fmt.Sprintf("get notification %d", id), Err: err}
	}
	return n, nil
}

// PutNotification inserts or updates a notification by id
func (s *Store) PutNotification(ctx context.Context, n Notification) error {
	db, err := s.conn(ctx)
	if err != nil {
		return err
	}
	if err := putNotification(ctx, db, n); err != nil {
		return &StorageError{Op: fmt.Sprintf("put notification %d", n.ID), Err: err}
	}
	return nil
}

// NotificationsByProvider returns all notifications of the provider in insertion order
func (s *Store) NotificationsByProvider(ctx context.Context, provider string) ([]Notification, error) {
	return s.queryNotifications(ctx, provider, false)
}

// UnreadNotifications returns unread notifications of the provider in insertion order
func (s *Store) UnreadNotifications(ctx context.Context, provider string) ([]Notification, error) {
	return s.queryNotifications(ctx, provider, true)
}

// MarkNotificationsRead loads each notification, sets it read and writes it back, all in one transaction.
// Ids of missing notifications are skipped.
func (s *Store) MarkNotificationsRead(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	db, err := s.conn(ctx)
	if err != nil {
		return err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return &StorageError{Op: "mark notifications read", Err: err}
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	for _, id := range ids {
		n, err := getNotification(ctx, tx, id)
		if err != nil {
			return &StorageError{Op: fmt.Sprintf("get notification %d", id), Err: err}
		}
		if n == nil {
			log.Printf("[DEBUG] notification %d not found, skipped", id)
			continue
		}
		if n.Read {
			continue
		}
		n.Read = true
		if err := putNotification(ctx, tx, *n); err != nil {
			return &StorageError{Op: fmt.Sprintf("put notification %d", id), Err: err}
		}
	}

	if err := tx.Commit(); err != nil {
		return &StorageError{Op: "mark notifications read", Err: err}
	}
	return nil
}

func (s *Store) queryNotifications(ctx context.Context, provider string, unreadOnly bool) ([]Notification, error) {
	db, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}
	query := "SELECT " + notificationColumns + " FROM notifications WHERE provider_username = ?"
	if unreadOnly {
		query += " AND read = 0"
	}
	var rows []notificationRow
	if err := db.SelectContext(ctx, &rows, query+" ORDER BY id", provider); err != nil {
		return nil, &StorageError{Op: fmt.Sprintf("query notifications of %q", provider), Err: err}
	}
	res := make([]Notification, 0, len(rows))
	for _, r := range rows {
		res = append(res, r.notification())
	}
	return res, nil
}

func getNotification(ctx context.Context, q sqlx.QueryerContext, id int64) (*Notification, error) {
	var row notificationRow
	err := sqlx.GetContext(ctx, q, &row, "SELECT "+notificationColumns+" FROM notifications WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	n := row.notification()
	return &n, nil
}

func putNotification(ctx context.Context, ex sqlx.ExecerContext, n Notification) error {
	_, err := ex.ExecContext(ctx, `INSERT INTO notifications
		(id, provider_username, job_id, job_title, seeker_username, timestamp, read) VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET provider_username = excluded.provider_username, job_id = excluded.job_id,
		job_title = excluded.job_title, seeker_username = excluded.seeker_username,
		timestamp = excluded.timestamp, read = excluded.read`,
		n.ID, n.ProviderUsername, n.JobID, n.JobTitle, n.SeekerUsername, n.Timestamp.UnixMilli(), n.Read)
	return err
}
