package storage

import "revos/internal/analytics"

// Archiver keeps a history of confirmed imports outside the session store.
type Archiver interface {
	Archive(rows []analytics.TopProblem) error
	Close() error
}

// NopArchiver is used when no archive backend is configured.
type NopArchiver struct{}

func (NopArchiver) Archive([]analytics.TopProblem) error { return nil }
func (NopArchiver) Close() error                         { return nil }
