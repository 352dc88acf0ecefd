package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/campusapps/studentdir/internal/data/pgxutil"
	"github.com/campusapps/studentdir/internal/domain/model"
	"github.com/campusapps/studentdir/internal/ports"
)

// StudentRepo provides database operations for student profiles.
//
// Profiles are insert-only: the application never updates or deletes a
// record after registration. NIM values are deliberately not unique.
type StudentRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

var _ ports.StudentRepository = (*StudentRepo)(nil)

// NewStudentRepo creates a new StudentRepo with real time provider.
func NewStudentRepo(db *sql.DB) *StudentRepo {
	return &StudentRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewStudentRepoWithTimeProvider creates a new StudentRepo with a custom time provider (useful for tests).
func NewStudentRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *StudentRepo {
	return &StudentRepo{DB: db, timeProvider: tp}
}

// Put inserts a new student profile keyed by the identity user id.
// A zero CreatedAt is filled with the current time.
func (r *StudentRepo) Put(ctx context.Context, profile *model.StudentProfile) error {
	if profile == nil {
		return errors.New("student profile is required")
	}
	if strings.TrimSpace(profile.ID) == "" {
		return errors.New("student profile id is required")
	}
	if strings.TrimSpace(profile.Name) == "" {
		return errors.New("student profile name is required")
	}

	createdAt := profile.CreatedAt
	if createdAt.IsZero() {
		createdAt = r.timeProvider.Now().UTC()
	}

	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		_, execErr := conn.Exec(ctx, `
			INSERT INTO students (id, name, nim, email, created_at)
			VALUES ($1, $2, $3, $4, $5)
		`,
			profile.ID,
			strings.TrimSpace(profile.Name),
			profile.NIM,
			profile.Email,
			createdAt,
		)
		return execErr
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrStudentExists
		}
		return fmt.Errorf("insert student profile: %w", err)
	}

	profile.CreatedAt = createdAt
	return nil
}

// GetByID retrieves a student profile by its identity key.
func (r *StudentRepo) GetByID(ctx context.Context, id string) (*model.StudentProfile, error) {
	var out model.StudentProfile
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, queryErr := conn.Query(ctx, studentGetByIDQuery, id)
		if queryErr != nil {
			return queryErr
		}
		defer rows.Close()
		var collectErr error
		out, collectErr = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.StudentProfile])
		return collectErr
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to get student profile: %w", err)
	}
	return &out, nil
}

// ListOrderedByName retrieves all student profiles ordered by name
// ascending. Ordering uses the C collation so comparison is bytewise and
// case-sensitive, matching the document store the records originate from.
func (r *StudentRepo) ListOrderedByName(ctx context.Context) ([]*model.StudentProfile, error) {
	var rowsOut []model.StudentProfile
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, queryErr := conn.Query(ctx, studentListQuery)
		if queryErr != nil {
			return queryErr
		}
		defer rows.Close()
		var collectErr error
		rowsOut, collectErr = pgx.CollectRows(rows, pgx.RowToStructByName[model.StudentProfile])
		return collectErr
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list student profiles: %w", err)
	}

	res := make([]*model.StudentProfile, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// SQL query constants for static queries.
const (
	studentGetByIDQuery = `
		SELECT id, name, nim, email, created_at
		FROM students
		WHERE id = $1`

	studentListQuery = `
		SELECT id, name, nim, email, created_at
		FROM students
		ORDER BY name COLLATE "C" ASC`
)
