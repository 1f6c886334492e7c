// Package enums provides type-safe enumeration types shared by the store, the managers and the web API.
//
// Enum types are defined as unexported integer types in this file. Each has an exported struct
// counterpart with a name and an ordinal value, in the shape produced by go-pkgz/enum: String()
// for representation, Parse* for string-to-enum conversion, Scan/Value for SQL storage and
// MarshalText/UnmarshalText for JSON and YAML.
//
// UserType and SessionState (the *_enum.go files) can be regenerated from the definitions below:
//
//	go generate ./app/enums
//
// jobType and applyOutcome are written by hand, their textual names ("full-time",
// "already-applied") are not derivable from Go identifiers.
//
// Usage:
//
//	role := enums.UserTypeSeeker
//	fmt.Println(role.String()) // "seeker"
//
//	jt, err := enums.ParseJobType("part-time")
//	if err != nil {
//	    // handle invalid input
//	}
package enums

import (
	"database/sql/driver"
	"fmt"
)

//go:generate go run github.com/go-pkgz/enum@latest -type userType -lower
//go:generate go run github.com/go-pkgz/enum@latest -type sessionState -lower

// userType is the role a user signs up with
type userType int

const (
	userTypeSeeker userType = iota
	userTypeProvider
)

// sessionState is the state of the identity manager
type sessionState int

const (
	sessionStateAnonymous sessionState = iota
	sessionStateAuthenticating
	sessionStateAuthenticated
)

// jobType is the employment type of a job posting, exported as JobType
type jobType int

const (
	jobTypeFullTime jobType = iota
	jobTypePartTime
)

// applyOutcome is the result of an application attempt, exported as ApplyOutcome
type applyOutcome int

const (
	applyOutcomeApplied applyOutcome = iota
	applyOutcomeAlreadyApplied
)

// enumValue is the common representation of all enums in this package
type enumValue struct {
	name  string
	value int
}

func parseEnum(kind, v string, values []enumValue) (enumValue, error) {
	for _, ev := range values {
		if ev.name == v {
			return ev, nil
		}
	}
	return enumValue{}, fmt.Errorf("invalid %s: %q", kind, v)
}

func scanEnum(kind string, src any, values []enumValue) (enumValue, error) {
	if src == nil {
		return enumValue{}, nil
	}
	switch v := src.(type) {
	case string:
		return parseEnum(kind, v, values)
	case []byte:
		return parseEnum(kind, string(v), values)
	default:
		return enumValue{}, fmt.Errorf("can't scan %T into %s", src, kind)
	}
}

// JobType is the employment type of a job posting
type JobType struct{ enumValue }

// job types
var (
	JobTypeFullTime = JobType{enumValue{name: "full-time", value: int(jobTypeFullTime)}}
	JobTypePartTime = JobType{enumValue{name: "part-time", value: int(jobTypePartTime)}}
)

// JobTypeValues lists all job types
var JobTypeValues = []JobType{JobTypeFullTime, JobTypePartTime}

var jobTypeRaw = []enumValue{JobTypeFullTime.enumValue, JobTypePartTime.enumValue}

func (e JobType) String() string { return e.name }

// ParseJobType converts string to JobType
func ParseJobType(v string) (JobType, error) {
	ev, err := parseEnum("job type", v, jobTypeRaw)
	return JobType{ev}, err
}

// MarshalText implements encoding.TextMarshaler
func (e JobType) MarshalText() ([]byte, error) { return []byte(e.name), nil }

// UnmarshalText implements encoding.TextUnmarshaler
func (e *JobType) UnmarshalText(text []byte) error {
	v, err := ParseJobType(string(text))
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// Value implements driver.Valuer
func (e JobType) Value() (driver.Value, error) { return e.name, nil }

// Scan implements sql.Scanner
func (e *JobType) Scan(src any) error {
	ev, err := scanEnum("job type", src, jobTypeRaw)
	if err != nil {
		return err
	}
	*e = JobType{ev}
	return nil
}

// ApplyOutcome is the user-facing result of an application attempt
type ApplyOutcome struct{ enumValue }

// apply outcomes
var (
	ApplyOutcomeApplied        = ApplyOutcome{enumValue{name: "applied", value: int(applyOutcomeApplied)}}
	ApplyOutcomeAlreadyApplied = ApplyOutcome{enumValue{name: "already-applied", value: int(applyOutcomeAlreadyApplied)}}
)

func (e ApplyOutcome) String() string { return e.name }

// MarshalText implements encoding.TextMarshaler
func (e ApplyOutcome) MarshalText() ([]byte, error) { return []byte(e.name), nil }
