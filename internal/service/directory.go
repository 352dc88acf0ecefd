package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/campusapps/studentdir/internal/data"
	"github.com/campusapps/studentdir/internal/domain/model"
	"github.com/campusapps/studentdir/internal/ports"
)

// FetchError wraps a directory read failure. It is non-fatal: the caller
// reports it and keeps the previous (or empty) listing on screen.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string { return fmt.Sprintf("load student directory: %v", e.Err) }

func (e *FetchError) Unwrap() error { return e.Err }

// DirectoryEntry is one row of the student directory with its 1-based
// display index.
type DirectoryEntry struct {
	Index int `json:"index"`
	model.StudentProfile
}

// DirectoryListing is the result of one directory query.
type DirectoryListing struct {
	Total    int              `json:"total"`
	Students []DirectoryEntry `json:"students"`
}

// DirectoryServiceOptions groups dependencies for DirectoryService.
type DirectoryServiceOptions struct {
	Students ports.StudentRepository
	Logger   *slog.Logger
}

// DirectoryService serves the read-only student directory.
type DirectoryService struct {
	students ports.StudentRepository
	logger   *slog.Logger
}

// NewDirectoryService constructs a new DirectoryService.
func NewDirectoryService(opts DirectoryServiceOptions) *DirectoryService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &DirectoryService{students: opts.Students, logger: logger}
}

// ListStudents issues one query and returns every profile ordered by name
// ascending, each with its 1-based display index. An empty store is a
// valid, distinct state: an empty listing, not an error. Queries are not
// de-duplicated; concurrent refreshes complete independently and the later
// resolution wins on screen.
func (s *DirectoryService) ListStudents(ctx context.Context) (*DirectoryListing, error) {
	profiles, err := s.students.ListOrderedByName(ctx)
	if err != nil {
		return nil, &FetchError{Err: err}
	}

	entries := make([]DirectoryEntry, len(profiles))
	for i, p := range profiles {
		entries[i] = DirectoryEntry{Index: i + 1, StudentProfile: *p}
	}
	return &DirectoryListing{Total: len(entries), Students: entries}, nil
}

// GetProfile fetches the profile for a signed-in user. An absent record is
// not an error: the caller renders placeholders for it.
func (s *DirectoryService) GetProfile(ctx context.Context, userID string) (*model.StudentProfile, error) {
	profile, err := s.students.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, data.ErrStudentNotFound) {
			s.logger.InfoContext(ctx, "no profile record for user", "user_id", userID)
			return nil, nil
		}
		return nil, &FetchError{Err: err}
	}
	return profile, nil
}
