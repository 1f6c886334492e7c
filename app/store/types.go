package store

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ruralroots/jobboard/app/enums"
)

// User is a registered account. Password keeps a bcrypt hash, never the clear text.
type User struct {
	Username string         `db:"username" json:"username"`
	Password string         `db:"password" json:"-"`
	Type     enums.UserType `db:"user_type" json:"userType"`
}

// SeekerProfile is the profile of a job seeker, keyed by username
type SeekerProfile struct {
	Username       string `db:"username" json:"username"`
	Name           string `db:"name" json:"name"`
	Email          string `db:"email" json:"email"`
	Phone          string `db:"phone" json:"phone"`
	Description    string `db:"description" json:"description"`
	Skills         Skills `db:"skills" json:"skills"`
	ProfilePicture string `db:"profile_picture" json:"profilePicture"` // opaque data URL
}

// ProviderProfile is the profile of a job provider, keyed by username
type ProviderProfile struct {
	Username       string `db:"username" json:"username"`
	Name           string `db:"name" json:"name"`
	Email          string `db:"email" json:"email"`
	Phone          string `db:"phone" json:"phone"`
	Company        string `db:"company" json:"company"`
	ProfilePicture string `db:"profile_picture" json:"profilePicture"`
}

// Job is a job posting. Immutable once stored.
type Job struct {
	ID               string        `db:"id" json:"id" yaml:"id"`
	Title            string        `db:"title" json:"title" yaml:"title"`
	Company          string        `db:"company" json:"company" yaml:"company"`
	Location         string        `db:"location" json:"location" yaml:"location"`
	Description      string        `db:"description" json:"description" yaml:"description"`
	Skills           Skills        `db:"skills" json:"skills" yaml:"skills"`
	Type             enums.JobType `db:"type" json:"type" yaml:"type"`
	PostedDate       string        `db:"posted_date" json:"postedDate" yaml:"posted_date"` // YYYY-MM-DD
	ProviderUsername string        `db:"provider_username" json:"providerUsername" yaml:"provider"`
}

// Application records a seeker applying for a job. (JobID, SeekerUsername) is unique.
type Application struct {
	ID             int64
	JobID          string
	SeekerUsername string
	AppliedAt      time.Time
}

// Notification tells a provider about a new applicant
type Notification struct {
	ID               int64     `json:"id"`
	ProviderUsername string    `json:"providerUsername"`
	JobID            string    `json:"jobId"`
	JobTitle         string    `json:"jobTitle"`
	SeekerUsername   string    `json:"seekerUsername"`
	Timestamp        time.Time `json:"timestamp"`
	Read             bool      `json:"read"`
}

// notificationRow is the stored form of Notification, timestamp kept as unix milliseconds
type notificationRow struct {
	ID               int64  `db:"id"`
	ProviderUsername string `db:"provider_username"`
	JobID            string `db:"job_id"`
	JobTitle         string `db:"job_title"`
	SeekerUsername   string `db:"seeker_username"`
	Timestamp        int64  `db:"timestamp"`
	Read             bool   `db:"read"`
}

func (r notificationRow) notification() Notification {
	return Notification{
		ID:               r.ID,
		ProviderUsername: r.ProviderUsername,
		JobID:            r.JobID,
		JobTitle:         r.JobTitle,
		SeekerUsername:   r.SeekerUsername,
		Timestamp:        time.UnixMilli(r.Timestamp),
		Read:             r.Read,
	}
}

// Skills is an ordered list of skills, stored as a JSON array
type Skills []string

// Value implements driver.Valuer
func (s Skills) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	data, err := json.Marshal([]string(s))
	if err != nil {
		return nil, fmt.Errorf("can't marshal skills: %w", err)
	}
	return string(data), nil
}

// Scan implements sql.Scanner
func (s *Skills) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*s = Skills{}
		return nil
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		return fmt.Errorf("can't scan %T into skills", src)
	}
	res := Skills{}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &res); err != nil {
			return fmt.Errorf("can't unmarshal skills: %w", err)
		}
	}
	if res == nil { // stored "null"
		res = Skills{}
	}
	*s = res
	return nil
}
