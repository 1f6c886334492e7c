// Package board implements the job and notification manager. It keeps the job catalog and the
// unread notifications of the signed-in provider cached in memory and mediates job creation,
// applications and notification read state against the store. Every mutation is followed by
// a fresh read from the store, caches are never patched in place.
package board

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/syncs"
	"github.com/google/uuid"

	"github.com/ruralroots/jobboard/app/enums"
	"github.com/ruralroots/jobboard/app/store"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store

// Store is the subset of store.Store used by Manager
type Store interface {
	ListJobs(ctx context.Context) ([]store.Job, error)
	AddJob(ctx context.Context, job store.Job) error
	GetJob(ctx context.Context, id string) (*store.Job, error)
	CountApplications(ctx context.Context, jobID, seekerUsername string) (int, error)
	SubmitApplication(ctx context.Context, app store.Application, n store.Notification) (int64, error)
	ApplicantsForJob(ctx context.Context, jobID string) ([]string, error)
	UnreadNotifications(ctx context.Context, provider string) ([]store.Notification, error)
	NotificationsByProvider(ctx context.Context, provider string) ([]store.Notification, error)
	MarkNotificationsRead(ctx context.Context, ids []int64) error
}

// ErrInvalidJob returned by AddJob for a job without title or type
var ErrInvalidJob = errors.New("invalid job")

// Manager caches jobs and unread notifications. Safe for concurrent use.
type Manager struct {
	store Store
	now   func() time.Time

	mu            sync.RWMutex
	jobs          []store.Job
	provider      string // owner of cached notifications, empty if none
	notifications []store.Notification
}

// NewManager makes a manager with empty caches, call Load to fill them
func NewManager(st Store) *Manager {
	return &Manager{store: st, now: time.Now, jobs: []store.Job{}, notifications: []store.Notification{}}
}

// Load fills the job cache and, for non-empty provider, the unread notifications cache.
// Both are read concurrently.
func (m *Manager) Load(ctx context.Context, provider string) error {
	var errMu sync.Mutex
	var errs []error
	addErr := func(err error) {
		errMu.Lock()
		errs = append(errs, err)
		errMu.Unlock()
	}

	gr := syncs.NewSizedGroup(2)
	gr.Go(func(context.Context) {
		if err := m.refreshJobs(ctx); err != nil {
			addErr(err)
		}
	})
	gr.Go(func(context.Context) {
		if err := m.FetchNotifications(ctx, provider); err != nil {
			addErr(err)
		}
	})
	gr.Wait()

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("failed to load board: %w", err)
	}
	log.Printf("[DEBUG] board loaded, %d jobs, %d unread notifications", len(m.Jobs()), len(m.Notifications()))
	return nil
}

// Jobs returns all cached jobs in insertion order
func (m *Manager) Jobs() []store.Job {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res := make([]store.Job, len(m.jobs))
	copy(res, m.jobs)
	return res
}

// JobsByType returns cached jobs of the given type
func (m *Manager) JobsByType(t enums.JobType) []store.Job {
	return m.filterJobs(func(j store.Job) bool { return j.Type == t })
}

// JobsByProvider returns cached jobs posted by the provider
func (m *Manager) JobsByProvider(provider string) []store.Job {
	return m.filterJobs(func(j store.Job) bool { return j.ProviderUsername == provider })
}

// AddJob stores a new job and reloads the job cache. Empty id gets a generated one,
// empty posted date is set to today. Returns the job as stored.
func (m *Manager) AddJob(ctx context.Context, job store.Job) (store.Job, error) {
	if job.Title == "" || job.Type.String() == "" {
		return store.Job{}, fmt.Errorf("job %q: %w", job.Title, ErrInvalidJob)
	}
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	if job.PostedDate == "" {
		job.PostedDate = m.now().Format(time.DateOnly)
	}
	if job.Skills == nil {
		job.Skills = store.Skills{}
	}
	if err := m.store.AddJob(ctx, job); err != nil {
		return store.Job{}, fmt.Errorf("failed to add job %s: %w", job.ID, err)
	}
	log.Printf("[INFO] job %s %q added by %q", job.ID, job.Title, job.ProviderUsername)
	if err := m.refreshJobs(ctx); err != nil {
		return job, err
	}
	return job, nil
}

// JobByID returns job from the store, nil if not found
func (m *Manager) JobByID(ctx context.Context, id string) (*store.Job, error) {
	job, err := m.store.GetJob(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get job %s: %w", id, err)
	}
	return job, nil
}

// Apply submits the seeker's application for the job and notifies the job provider.
// Applying twice is not an error, the outcome reports the seeker already applied.
func (m *Manager) Apply(ctx context.Context, job store.Job, seeker string) (enums.ApplyOutcome, error) {
	applied, err := m.HasApplied(ctx, job.ID, seeker)
	if err != nil {
		return enums.ApplyOutcome{}, err
	}
	if applied {
		log.Printf("[DEBUG] %q already applied for job %s", seeker, job.ID)
		return enums.ApplyOutcomeAlreadyApplied, nil
	}

	ts := m.now()
	app := store.Application{JobID: job.ID, SeekerUsername: seeker, AppliedAt: ts}
	n := store.Notification{ProviderUsername: job.ProviderUsername, JobID: job.ID, JobTitle: job.Title,
		SeekerUsername: seeker, Timestamp: ts}
	id, err := m.store.SubmitApplication(ctx, app, n)
	if errors.Is(err, store.ErrDuplicateKey) {
		// lost the race with another submission of the same seeker
		log.Printf("[DEBUG] duplicate application of %q for job %s rejected by store", seeker, job.ID)
		return enums.ApplyOutcomeAlreadyApplied, nil
	}
	if err != nil {
		return enums.ApplyOutcome{}, fmt.Errorf("failed to apply for job %s: %w", job.ID, err)
	}
	log.Printf("[INFO] %q applied for job %s, notification %d for %q", seeker, job.ID, id, job.ProviderUsername)

	if m.cachedProvider() == job.ProviderUsername {
		if err := m.FetchNotifications(ctx, job.ProviderUsername); err != nil {
			log.Printf("[WARN] can't refresh notifications of %q, %v", job.ProviderUsername, err)
		}
	}
	return enums.ApplyOutcomeApplied, nil
}

// HasApplied checks if the seeker applied for the job
func (m *Manager) HasApplied(ctx context.Context, jobID, seeker string) (bool, error) {
	count, err := m.store.CountApplications(ctx, jobID, seeker)
	if err != nil {
		return false, fmt.Errorf("failed to check application for job %s: %w", jobID, err)
	}
	return count > 0, nil
}

// Applicants returns usernames of seekers applied for the job, empty if none
func (m *Manager) Applicants(ctx context.Context, jobID string) ([]string, error) {
	res, err := m.store.ApplicantsForJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to get applicants for job %s: %w", jobID, err)
	}
	if res == nil {
		res = []string{}
	}
	return res, nil
}

// FetchNotifications loads unread notifications of the provider into the cache.
// Empty provider clears the cache.
func (m *Manager) FetchNotifications(ctx context.Context, provider string) error {
	if provider == "" {
		m.mu.Lock()
		m.provider, m.notifications = "", []store.Notification{}
		m.mu.Unlock()
		return nil
	}
	res, err := m.store.UnreadNotifications(ctx, provider)
	if err != nil {
		return fmt.Errorf("failed to fetch notifications of %q: %w", provider, err)
	}
	if res == nil {
		res = []store.Notification{}
	}
	m.mu.Lock()
	m.provider, m.notifications = provider, res
	m.mu.Unlock()
	return nil
}

// Notifications returns cached unread notifications
func (m *Manager) Notifications() []store.Notification {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res := make([]store.Notification, len(m.notifications))
	copy(res, m.notifications)
	return res
}

// NotificationsForProvider returns all notifications of the provider, newest first.
// Notifications with the same timestamp are ordered by id, higher first.
func (m *Manager) NotificationsForProvider(ctx context.Context, provider string) ([]store.Notification, error) {
	res, err := m.store.NotificationsByProvider(ctx, provider)
	if err != nil {
		return nil, fmt.Errorf("failed to get notifications of %q: %w", provider, err)
	}
	if res == nil {
		res = []store.Notification{}
	}
	sort.SliceStable(res, func(i, j int) bool {
		if !res[i].Timestamp.Equal(res[j].Timestamp) {
			return res[i].Timestamp.After(res[j].Timestamp)
		}
		return res[i].ID > res[j].ID
	})
	return res, nil
}

// MarkRead marks notifications read and refetches the unread cache. Unknown ids are skipped.
func (m *Manager) MarkRead(ctx context.Context, ids []int64) error {
	if err := m.store.MarkNotificationsRead(ctx, ids); err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	if provider := m.cachedProvider(); provider != "" {
		return m.FetchNotifications(ctx, provider)
	}
	return nil
}

func (m *Manager) refreshJobs(ctx context.Context) error {
	jobs, err := m.store.ListJobs(ctx)
	if err != nil {
		return fmt.Errorf("failed to refresh jobs: %w", err)
	}
	if jobs == nil {
		jobs = []store.Job{}
	}
	m.mu.Lock()
	m.jobs = jobs
	m.mu.Unlock()
	return nil
}

func (m *Manager) filterJobs(fn func(store.Job) bool) []store.Job {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res := []store.Job{}
	for _, j := range m.jobs {
		if fn(j) {
			res = append(res, j)
		}
	}
	return res
}

func (m *Manager) cachedProvider() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.provider
}
