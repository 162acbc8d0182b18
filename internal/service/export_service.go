package service

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/pillpal/pillpal-api/internal/domain"
	"github.com/pillpal/pillpal-api/internal/repository"
)

// ExportWindowDays is the lookback for the adherence CSV export.
const ExportWindowDays = 30

// ExportService streams dosing history as CSV.
type ExportService interface {
	WriteAdherenceCSV(ctx context.Context, userID uuid.UUID, w io.Writer) error
}

type exportService struct {
	doseRepo repository.DoseRepository
	medRepo  repository.MedicationRepository
	userRepo repository.UserRepository
}

func NewExportService(
	doseRepo repository.DoseRepository,
	medRepo repository.MedicationRepository,
	userRepo repository.UserRepository,
) ExportService {
	return &exportService{
		doseRepo: doseRepo,
		medRepo:  medRepo,
		userRepo: userRepo,
	}
}

func (s *exportService) WriteAdherenceCSV(ctx context.Context, userID uuid.UUID, w io.Writer) error {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}

	now := time.Now().UTC()
	from := now.AddDate(0, 0, -ExportWindowDays)
	doses, err := s.doseRepo.ListScheduledBetween(ctx, userID, from, now)
	if err != nil {
		return err
	}

	// Resolve medication names once; a missing name degrades to the ID.
	names := make(map[uuid.UUID]string)
	if meds, err := s.medRepo.ListByUser(ctx, userID); err == nil {
		for _, med := range meds {
			names[med.ID] = med.Name
		}
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "medication", "scheduled_at", "status", "taken_at", "on_time"}); err != nil {
		return err
	}

	for _, dose := range doses {
		name := names[dose.MedicationID]
		if name == "" {
			name = dose.MedicationID.String()
		}

		takenAt := ""
		onTime := "false"
		if dose.TakenAt != nil {
			takenAt = dose.TakenAt.UTC().Format(time.RFC3339)
			// Within an hour of schedule counts as on time.
			diff := dose.TakenAt.Sub(dose.ScheduledAt)
			if diff < 0 {
				diff = -diff
			}
			onTime = strconv.FormatBool(diff <= time.Hour)
		}

		record := []string{
			dose.ScheduledAt.UTC().Format("2006-01-02"),
			name,
			dose.ScheduledAt.UTC().Format(time.RFC3339),
			string(dose.Status),
			takenAt,
			onTime,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
