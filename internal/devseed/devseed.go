// Package devseed populates a development database with sample student
// profiles so the directory screen has data on first boot.
package devseed

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/campusapps/studentdir/internal/data"
	"github.com/campusapps/studentdir/internal/domain/model"
)

// seedStudents are the sample directory entries for development instances.
// IDs are stable so reseeding is idempotent.
var seedStudents = []model.StudentProfile{
	{ID: "dev-seed-0001", Name: "Agus Pratama", NIM: "2110511001", Email: "agus.pratama@student.example.ac.id"},
	{ID: "dev-seed-0002", Name: "Budi Santoso", NIM: "2110511002", Email: "budi.santoso@student.example.ac.id"},
	{ID: "dev-seed-0003", Name: "Citra Lestari", NIM: "2110511003", Email: "citra.lestari@student.example.ac.id"},
	{ID: "dev-seed-0004", Name: "Dewi Anggraini", NIM: "2110511004", Email: "dewi.anggraini@student.example.ac.id"},
	{ID: "dev-seed-0005", Name: "Eko Wibowo", NIM: "2110511005", Email: "eko.wibowo@student.example.ac.id"},
}

// Run inserts the sample profiles, skipping any that already exist.
func Run(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	repo := data.NewStudentRepo(db)

	failures := 0
	for i := range seedStudents {
		profile := seedStudents[i]
		if err := repo.Put(ctx, &profile); err != nil {
			if errors.Is(err, data.ErrStudentExists) {
				continue
			}
			logger.WarnContext(ctx, "failed to seed student", "id", profile.ID, "error", err)
			failures++
			continue
		}
		logger.InfoContext(ctx, "seeded student", "id", profile.ID, "name", profile.Name)
	}

	if failures > 0 {
		return fmt.Errorf("%d seed errors; check logs", failures)
	}
	return nil
}
