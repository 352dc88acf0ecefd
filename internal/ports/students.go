package ports

import (
	"context"

	"github.com/campusapps/studentdir/internal/domain/model"
)

// StudentRepository persists and reads student profile records in the
// document store. Records are keyed by identity user id.
type StudentRepository interface {
	// Put inserts a new profile. The record is written exactly once, at
	// sign-up time; there is no update path.
	Put(ctx context.Context, profile *model.StudentProfile) error

	// GetByID fetches one profile by its identity key.
	GetByID(ctx context.Context, id string) (*model.StudentProfile, error)

	// ListOrderedByName returns every profile ordered by name ascending,
	// case-sensitive. An empty store yields an empty slice, not an error.
	ListOrderedByName(ctx context.Context) ([]*model.StudentProfile, error)
}
