package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/pillpal/pillpal-api/internal/domain"
	"github.com/pillpal/pillpal-api/internal/repository"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	// FeatureWindowDays is the lookback for adherence features and insights.
	FeatureWindowDays = 7

	// Short lookbacks for the recency features.
	missWindow   = 48 * time.Hour
	snoozeWindow = 24 * time.Hour
)

// FeatureService derives the adherence feature vector for one user as of
// a given instant. It never fails: any store read that errors degrades to
// zero/default values and is reported in the Degraded list.
type FeatureService interface {
	Compute(ctx context.Context, userID uuid.UUID, now time.Time) domain.FeatureComputation
}

type featureService struct {
	doseRepo  repository.DoseRepository
	medRepo   repository.MedicationRepository
	alertRepo repository.AlertRepository
}

// NewFeatureService creates a new FeatureService.
func NewFeatureService(
	doseRepo repository.DoseRepository,
	medRepo repository.MedicationRepository,
	alertRepo repository.AlertRepository,
) FeatureService {
	return &featureService{
		doseRepo:  doseRepo,
		medRepo:   medRepo,
		alertRepo: alertRepo,
	}
}

func (s *featureService) Compute(ctx context.Context, userID uuid.UUID, now time.Time) domain.FeatureComputation {
	tracer := otel.Tracer("pillpal-api/features")
	ctx, span := tracer.Start(ctx, "FeatureService.Compute",
		trace.WithAttributes(
			attribute.String("user.id", userID.String()),
			attribute.String("features.now", now.Format(time.RFC3339)),
		),
	)
	defer span.End()

	now = now.UTC()
	var degraded []string

	// 7-day dose window: scheduled_at >= now-7d, no upper bound.
	windowStart := now.Add(-FeatureWindowDays * 24 * time.Hour)
	window, err := s.doseRepo.ListScheduledSince(ctx, userID, windowStart)
	if err != nil {
		window = nil
		degraded = append(degraded, "doses_7d")
	}

	// Today's schedule, [start, end] of the current UTC calendar day.
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24*time.Hour - time.Nanosecond)
	todays, err := s.doseRepo.ListScheduledBetween(ctx, userID, dayStart, dayEnd)
	if err != nil {
		todays = nil
		degraded = append(degraded, "doses_today")
	}

	complexity, err := s.medRepo.CountByUser(ctx, userID)
	if err != nil {
		complexity = 0
		degraded = append(degraded, "medications")
	}

	acks, err := s.alertRepo.CountAckedSince(ctx, windowStart)
	if err != nil {
		acks = 0
		degraded = append(degraded, "acknowledgements")
	}

	features := domain.FeatureVector{
		Adherence7d:       adherenceFraction(window),
		StreakTakenDays:   streakTakenDays(window, now),
		Misses48h:         countMisses(window, now.Add(-missWindow)),
		Snoozes24h:        countSnoozes(window, now.Add(-snoozeWindow)),
		DoseCountToday:    len(todays),
		NowBlock:          domain.TimeBlockForHour(now.Hour()),
		Weekday:           int(now.Weekday()),
		Complexity:        complexity,
		AgeBand:           "unknown",
		LastTakenDeltaMin: lastTakenDeltaMin(window, now),
		TimeToNextMin:     timeToNextMin(window, now),
		CaregiverAck7d:    acks,
	}

	result := domain.FeatureComputation{
		Features: features,
		Degraded: degraded,
	}

	span.SetAttributes(attribute.Int("features.window_doses", len(window)))
	if len(degraded) > 0 {
		span.SetAttributes(attribute.StringSlice("features.degraded", degraded))
	}
	if outputJSON, err := json.Marshal(result); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outputJSON)))
	}

	return result
}

// adherenceFraction is the fraction of window doses with status=taken,
// 0 on an empty window.
func adherenceFraction(window []domain.Dose) float64 {
	if len(window) == 0 {
		return 0.0
	}
	taken := 0
	for _, d := range window {
		if d.Status == domain.DoseStatusTaken {
			taken++
		}
	}
	return float64(taken) / float64(len(window))
}

// streakTakenDays computes the trailing run of perfect-adherence days.
// The window is partitioned into UTC calendar-day buckets and walked
// oldest to newest over the 7-day span ending today; a day extends the
// run only if it has at least one dose and every dose that day was taken.
// Empty or imperfect days reset the counter, so the final value is the
// run ending at the most recent day, never a historical maximum.
func streakTakenDays(window []domain.Dose, now time.Time) int {
	byDay := make(map[string][]domain.Dose)
	for _, d := range window {
		key := d.ScheduledAt.UTC().Format("2006-01-02")
		byDay[key] = append(byDay[key], d)
	}

	streak := 0
	for offset := FeatureWindowDays - 1; offset >= 0; offset-- {
		key := now.AddDate(0, 0, -offset).Format("2006-01-02")
		day := byDay[key]
		if len(day) == 0 {
			streak = 0
			continue
		}
		perfect := true
		for _, d := range day {
			if d.Status != domain.DoseStatusTaken {
				perfect = false
				break
			}
		}
		if perfect {
			streak++
		} else {
			streak = 0
		}
	}
	return streak
}

func countMisses(window []domain.Dose, since time.Time) int {
	count := 0
	for _, d := range window {
		if d.Status.IsMiss() && !d.ScheduledAt.Before(since) {
			count++
		}
	}
	return count
}

func countSnoozes(window []domain.Dose, since time.Time) int {
	count := 0
	for _, d := range window {
		if d.Status == domain.DoseStatusSnoozed && !d.ScheduledAt.Before(since) {
			count++
		}
	}
	return count
}

// lastTakenDeltaMin is minutes since the most recently taken dose, using
// taken_at when recorded and scheduled_at otherwise. Nil when the window
// has no taken doses.
func lastTakenDeltaMin(window []domain.Dose, now time.Time) *int {
	var latest *time.Time
	for _, d := range window {
		if d.Status != domain.DoseStatusTaken {
			continue
		}
		at := d.ScheduledAt
		if d.TakenAt != nil {
			at = *d.TakenAt
		}
		if latest == nil || at.After(*latest) {
			t := at
			latest = &t
		}
	}
	if latest == nil {
		return nil
	}
	delta := int(now.Sub(*latest).Minutes())
	return &delta
}

// timeToNextMin is minutes until the earliest pending or snoozed dose.
// Negative when that dose is already overdue; nil when none exists.
func timeToNextMin(window []domain.Dose, now time.Time) *int {
	var earliest *time.Time
	for _, d := range window {
		if d.Status != domain.DoseStatusPending && d.Status != domain.DoseStatusSnoozed {
			continue
		}
		if earliest == nil || d.ScheduledAt.Before(*earliest) {
			t := d.ScheduledAt
			earliest = &t
		}
	}
	if earliest == nil {
		return nil
	}
	delta := int(earliest.Sub(now).Minutes())
	return &delta
}
