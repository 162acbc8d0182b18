package service

import (
	"context"
	"encoding/json"
	"log"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/pillpal/pillpal-api/internal/domain"
	"github.com/pillpal/pillpal-api/internal/llm"
	"github.com/pillpal/pillpal-api/internal/repository"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Bucket thresholds on the 0-100 score.
const (
	riskMediumThreshold = 35
	riskHighThreshold   = 65
)

const (
	heuristicRationale  = "Score derived locally from your recent dosing history."
	heuristicSuggestion = "Keep logging every dose so your risk estimate stays accurate."
)

// RiskService produces today's adherence risk for a user. The external
// scorer is tried first; any failure falls back to the deterministic
// heuristic, so a RiskResult is always returned for an existing user.
type RiskService interface {
	Today(ctx context.Context, userID uuid.UUID) (*domain.RiskResult, error)
}

type riskService struct {
	featureService FeatureService
	llmClient      llm.RiskLLM
	userRepo       repository.UserRepository
}

// NewRiskService creates a new RiskService.
func NewRiskService(featureService FeatureService, llmClient llm.RiskLLM, userRepo repository.UserRepository) RiskService {
	return &riskService{
		featureService: featureService,
		llmClient:      llmClient,
		userRepo:       userRepo,
	}
}

func (s *riskService) Today(ctx context.Context, userID uuid.UUID) (*domain.RiskResult, error) {
	// Validate user exists
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	tracer := otel.Tracer("pillpal-api/risk")
	ctx, span := tracer.Start(ctx, "RiskService.Today",
		trace.WithAttributes(attribute.String("user.id", userID.String())),
	)
	defer span.End()

	computation := s.featureService.Compute(ctx, userID, time.Now().UTC())
	features := computation.Features

	if inputJSON, err := json.Marshal(computation); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.input", string(inputJSON)))
	}

	result := s.scoreWithFallback(ctx, &features)

	span.SetAttributes(
		attribute.Int("risk.score", result.Score),
		attribute.String("risk.bucket", string(result.Bucket)),
	)
	if outputJSON, err := json.Marshal(result); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outputJSON)))
	}

	return result, nil
}

func (s *riskService) scoreWithFallback(ctx context.Context, features *domain.FeatureVector) *domain.RiskResult {
	if s.llmClient != nil {
		result, err := s.llmClient.ScoreRisk(ctx, features)
		if err == nil && result != nil {
			return coerceRiskResult(result)
		}
		if err != nil {
			log.Printf("risk scorer unavailable, using heuristic: %v", err)
		}
	}
	return scoreHeuristic(features)
}

// scoreHeuristic is the deterministic fallback: a hand-rolled logistic
// model over the feature vector. It cannot fail; every input field is a
// validated numeric with a safe default.
//
// The dose-count and complexity terms are floored at zero: an empty
// history yields z=1.8 (score 86, high), never a negative offset.
func scoreHeuristic(f *domain.FeatureVector) *domain.RiskResult {
	z := 1.8 * (1 - f.Adherence7d)
	z += 0.8 * float64(minInt(f.Misses48h, 3))
	z += 0.4 * float64(minInt(f.Snoozes24h, 4))
	z += 0.25 * float64(maxInt(f.DoseCountToday-2, 0))
	z += 0.15 * float64(maxInt(f.Complexity-2, 0))
	if f.NowBlock == domain.BlockEvening || f.NowBlock == domain.BlockNight {
		z += 0.25
	}
	if f.CaregiverAck7d > 0 {
		z += 0.6
	}

	p := 1.0 / (1.0 + math.Exp(-z))
	score := clampScore(int(math.Round(p * 100)))

	return &domain.RiskResult{
		Score:               score,
		Bucket:              bucketForScore(score),
		Rationale:           heuristicRationale,
		Suggestion:          heuristicSuggestion,
		ContributingFactors: []string{"heuristic_fallback"},
	}
}

// coerceRiskResult normalizes an external scorer response: out-of-range
// scores are clamped into [0,100] and unrecognized buckets collapse to low.
func coerceRiskResult(r *domain.RiskResult) *domain.RiskResult {
	r.Score = clampScore(r.Score)
	switch r.Bucket {
	case domain.RiskLow, domain.RiskMedium, domain.RiskHigh:
	default:
		r.Bucket = domain.RiskLow
	}
	if r.ContributingFactors == nil {
		r.ContributingFactors = []string{}
	}
	return r
}

func bucketForScore(score int) domain.RiskBucket {
	switch {
	case score < riskMediumThreshold:
		return domain.RiskLow
	case score < riskHighThreshold:
		return domain.RiskMedium
	default:
		return domain.RiskHigh
	}
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
