package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/pillpal/pillpal-api/internal/domain"
	"gorm.io/gorm"
)

const seededDays = 14

// Run seeds the database with sample users, medications, and dose
// history. Safe to call multiple times.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.User{}, &domain.Medication{}, &domain.Dose{}, &domain.Alert{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	phone := "+420777123456"
	users := []domain.User{
		{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Name: "Rita Hayes", Role: domain.RolePatient, Timezone: "Europe/Prague", Phone: &phone},
		{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Name: "Tomas Novak", Role: domain.RolePatient, Timezone: "America/New_York"},
		{ID: uuid.MustParse("33333333-3333-3333-3333-333333333333"), Name: "Jana Dvorak", Role: domain.RoleCaregiver, Timezone: "Europe/Prague"},
	}

	for _, user := range users {
		if err := db.Where("id = ?", user.ID).FirstOrCreate(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", user.ID, err)
		}
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for _, user := range users {
		if user.Role != domain.RolePatient {
			continue
		}
		if err := seedRegimenForUser(db, user, rng); err != nil {
			return err
		}
	}

	log.Println("Seed completed")
	return nil
}

func seedRegimenForUser(db *gorm.DB, user domain.User, rng *rand.Rand) error {
	meds := []domain.Medication{
		{UserID: user.ID, Name: "Metformin", Times: "08:00,20:00"},
		{UserID: user.ID, Name: "Lisinopril", Times: "08:00"},
	}
	strength := []string{"500mg", "10mg"}

	for i := range meds {
		meds[i].StrengthText = &strength[i]
		if err := db.Where("user_id = ? AND name = ?", user.ID, meds[i].Name).
			FirstOrCreate(&meds[i]).Error; err != nil {
			return fmt.Errorf("failed to create medication %s: %w", meds[i].Name, err)
		}
	}

	now := time.Now().UTC()
	for dayOffset := 0; dayOffset < seededDays; dayOffset++ {
		date := now.AddDate(0, 0, -dayOffset)
		for _, med := range meds {
			for _, hhmm := range med.TimesList() {
				var hour, minute int
				fmt.Sscanf(hhmm, "%d:%d", &hour, &minute)
				scheduledAt := time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, time.UTC)

				dose := domain.Dose{
					UserID:       user.ID,
					MedicationID: med.ID,
					ScheduledAt:  scheduledAt,
					Status:       seededStatus(rng, scheduledAt, now),
				}
				if dose.Status == domain.DoseStatusTaken {
					takenAt := scheduledAt.Add(time.Duration(rng.Intn(45)) * time.Minute)
					dose.TakenAt = &takenAt
				}

				err := db.Where("user_id = ? AND medication_id = ? AND scheduled_at = ?",
					user.ID, med.ID, scheduledAt).FirstOrCreate(&dose).Error
				if err != nil {
					return fmt.Errorf("failed to create dose: %w", err)
				}
			}
		}
	}
	return nil
}

// seededStatus skews toward taken with occasional misses and snoozes,
// so the risk and insights endpoints have realistic data to chew on.
func seededStatus(rng *rand.Rand, scheduledAt, now time.Time) domain.DoseStatus {
	if scheduledAt.After(now) {
		return domain.DoseStatusPending
	}
	roll := rng.Float32()
	switch {
	case roll < 0.75:
		return domain.DoseStatusTaken
	case roll < 0.85:
		return domain.DoseStatusSnoozed
	case roll < 0.93:
		return domain.DoseStatusSkipped
	default:
		return domain.DoseStatusMissed
	}
}
