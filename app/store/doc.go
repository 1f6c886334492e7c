// Package store provides the local persistent storage of the job board.
// It keeps users, role profiles, jobs, applications and notifications in named
// collections backed by a single SQLite file (WAL mode), with primary keys,
// secondary indexes and a unique (job, seeker) constraint on applications.
// The store opens itself lazily on first use and seeds the jobs collection once.
package store
