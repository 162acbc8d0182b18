package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/pillpal/pillpal-api/internal/domain"
	"github.com/pillpal/pillpal-api/internal/llm"
	"github.com/pillpal/pillpal-api/internal/repository"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const fallbackInsightsTitle = "Adherence insights"

// InsightsService builds the 7-day adherence insights card.
type InsightsService interface {
	// Generate creates adherence insights for a user.
	Generate(ctx context.Context, userID uuid.UUID) (*domain.RiskInsightsResponse, error)
}

type insightsService struct {
	featureService FeatureService
	llmClient      llm.RiskLLM
	doseRepo       repository.DoseRepository
	userRepo       repository.UserRepository
}

// NewInsightsService creates a new InsightsService.
func NewInsightsService(
	featureService FeatureService,
	llmClient llm.RiskLLM,
	doseRepo repository.DoseRepository,
	userRepo repository.UserRepository,
) InsightsService {
	return &insightsService{
		featureService: featureService,
		llmClient:      llmClient,
		doseRepo:       doseRepo,
		userRepo:       userRepo,
	}
}

func (s *insightsService) Generate(ctx context.Context, userID uuid.UUID) (*domain.RiskInsightsResponse, error) {
	// Validate user exists
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	tracer := otel.Tracer("pillpal-api/insights")
	ctx, span := tracer.Start(ctx, "InsightsService.Generate",
		trace.WithAttributes(attribute.String("user.id", userID.String())),
	)
	defer span.End()

	now := time.Now().UTC()

	// Same raw window as the feature aggregator; store failure degrades
	// to an empty series rather than failing the card.
	windowStart := now.Add(-FeatureWindowDays * 24 * time.Hour)
	window, err := s.doseRepo.ListScheduledSince(ctx, userID, windowStart)
	if err != nil {
		log.Printf("insights dose window unavailable, using empty series: %v", err)
		window = nil
	}

	series := buildInsightsSeries(window, now)
	computation := s.featureService.Compute(ctx, userID, now)

	narrativeCtx := &domain.NarrativeContext{
		Features:         computation.Features,
		RecentDays:       series.RecentDays,
		TopSnoozeWindows: series.TopSnoozeWindows,
		Summary: fmt.Sprintf("adherence_7d=%.2f misses_7d=%d snoozes_7d=%d streak=%d",
			computation.Features.Adherence7d, series.Misses7d, series.Snoozes7d,
			computation.Features.StreakTakenDays),
	}

	if inputJSON, err := json.Marshal(narrativeCtx); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.input", string(inputJSON)))
	}

	narrative := s.narrateWithFallback(ctx, narrativeCtx)

	response := &domain.RiskInsightsResponse{
		Title:            narrative.Title,
		Highlights:       narrative.Highlights,
		Advice:           narrative.Advice,
		NextBestAction:   narrative.NextBestAction,
		Misses7d:         series.Misses7d,
		Snoozes7d:        series.Snoozes7d,
		TopMissedBlock:   series.TopMissedBlock,
		RecentDays:       series.RecentDays,
		TopSnoozeWindows: series.TopSnoozeWindows,
	}

	if outputJSON, err := json.Marshal(response); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outputJSON)))
	}

	return response, nil
}

func (s *insightsService) narrateWithFallback(ctx context.Context, narrativeCtx *domain.NarrativeContext) *domain.NarrativeOutput {
	if s.llmClient != nil {
		output, err := s.llmClient.Narrate(ctx, narrativeCtx)
		if err == nil && output != nil && output.Title != "" {
			if len(output.Highlights) > 4 {
				output.Highlights = output.Highlights[:4]
			}
			return output
		}
		if err != nil {
			log.Printf("insights narrator unavailable, using static card: %v", err)
		}
	}
	return staticInsightCard()
}

// staticInsightCard is the fixed fallback card used when the narrative
// generator is unavailable. It must never fail.
func staticInsightCard() *domain.NarrativeOutput {
	return &domain.NarrativeOutput{
		Title:          fallbackInsightsTitle,
		Highlights:     []string{"Your 7-day adherence summary is ready below."},
		Advice:         "Log each dose right when you take it to keep your history accurate.",
		NextBestAction: "Review today's remaining doses in the schedule.",
	}
}

// buildInsightsSeries aggregates the 7-day dose window into the daily
// adherence series and the bucketed snooze/miss statistics.
func buildInsightsSeries(window []domain.Dose, now time.Time) domain.InsightsSeries {
	series := domain.InsightsSeries{
		RecentDays:       buildDailySeries(window, now),
		TopSnoozeWindows: topSnoozeWindows(window),
		TopMissedBlock:   topMissedBlock(window),
	}
	for _, d := range window {
		if d.Status.IsMiss() {
			series.Misses7d++
		}
		if d.Status == domain.DoseStatusSnoozed {
			series.Snoozes7d++
		}
	}
	return series
}

// buildDailySeries produces exactly 7 entries covering the 7 consecutive
// UTC calendar days ending today, oldest first. Days without doses get
// adherence_pct=0.
func buildDailySeries(window []domain.Dose, now time.Time) []domain.AdherenceDay {
	type dayCount struct {
		taken int
		total int
	}
	byDay := make(map[string]*dayCount)
	for _, d := range window {
		key := d.ScheduledAt.UTC().Format("2006-01-02")
		counts := byDay[key]
		if counts == nil {
			counts = &dayCount{}
			byDay[key] = counts
		}
		counts.total++
		if d.Status == domain.DoseStatusTaken {
			counts.taken++
		}
	}

	days := make([]domain.AdherenceDay, 0, FeatureWindowDays)
	for offset := FeatureWindowDays - 1; offset >= 0; offset-- {
		key := now.UTC().AddDate(0, 0, -offset).Format("2006-01-02")
		pct := 0
		if counts := byDay[key]; counts != nil && counts.total > 0 {
			pct = int(math.Round(100 * float64(counts.taken) / float64(counts.total)))
		}
		days = append(days, domain.AdherenceDay{Date: key, AdherencePct: pct})
	}
	return days
}

// topSnoozeWindows ranks time-of-day buckets by snooze count descending,
// ties broken by the order buckets were first encountered, top 3.
func topSnoozeWindows(window []domain.Dose) []domain.TimeBlock {
	counts := make(map[domain.TimeBlock]int)
	var order []domain.TimeBlock
	for _, d := range window {
		if d.Status != domain.DoseStatusSnoozed {
			continue
		}
		block := domain.TimeBlockForHour(d.ScheduledAt.UTC().Hour())
		if _, seen := counts[block]; !seen {
			order = append(order, block)
		}
		counts[block]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > 3 {
		order = order[:3]
	}
	if order == nil {
		order = []domain.TimeBlock{}
	}
	return order
}

// topMissedBlock returns the bucket with the most skipped/missed doses,
// or nil when the window has no misses.
func topMissedBlock(window []domain.Dose) *domain.TimeBlock {
	counts := make(map[domain.TimeBlock]int)
	var order []domain.TimeBlock
	for _, d := range window {
		if !d.Status.IsMiss() {
			continue
		}
		block := domain.TimeBlockForHour(d.ScheduledAt.UTC().Hour())
		if _, seen := counts[block]; !seen {
			order = append(order, block)
		}
		counts[block]++
	}
	if len(order) == 0 {
		return nil
	}

	top := order[0]
	for _, block := range order[1:] {
		if counts[block] > counts[top] {
			top = block
		}
	}
	return &top
}
