package domain

// TimeBlock is a coarse time-of-day bucket used for scheduling context
// and snooze/miss pattern ranking.
// @Description Time-of-day bucket: morning [5,12), midday [12,17), evening [17,21), night otherwise.
type TimeBlock string

const (
	BlockMorning TimeBlock = "morning"
	BlockMidday  TimeBlock = "midday"
	BlockEvening TimeBlock = "evening"
	BlockNight   TimeBlock = "night"
)

// TimeBlockForHour maps an hour of day (0-23) to its TimeBlock.
func TimeBlockForHour(hour int) TimeBlock {
	switch {
	case hour >= 5 && hour < 12:
		return BlockMorning
	case hour >= 12 && hour < 17:
		return BlockMidday
	case hour >= 17 && hour < 21:
		return BlockEvening
	default:
		return BlockNight
	}
}

// RiskBucket is the three-level classification derived from a risk score.
// @Description Risk classification: low (<35), medium (<65), high (>=65).
type RiskBucket string

const (
	RiskLow    RiskBucket = "low"
	RiskMedium RiskBucket = "medium"
	RiskHigh   RiskBucket = "high"
)

// FeatureVector is the compact adherence snapshot computed for one user
// "as of now". It is a pure function of the current instant and the dose
// records inside the lookback windows; it is recomputed per request and
// never persisted.
// @Description Adherence feature snapshot used for risk scoring.
type FeatureVector struct {
	// Fraction of last-7-day doses with status=taken (0 on an empty window)
	Adherence7d float64 `json:"adherence_7d" example:"0.86"`
	// Trailing run of perfect-adherence days ending at the most recent day in the window
	StreakTakenDays int `json:"streak_taken_days" example:"3"`
	// Skipped or missed doses scheduled within the last 48 hours
	Misses48h int `json:"misses_48h" example:"1"`
	// Snoozed doses within the last 24 hours
	Snoozes24h int `json:"snoozes_24h" example:"0"`
	// Doses scheduled within the current UTC calendar day
	DoseCountToday int `json:"dose_count_today" example:"2"`
	// Time-of-day bucket of the current hour
	NowBlock TimeBlock `json:"now_block" example:"evening"`
	// Current UTC weekday, Go numbering (Sunday=0); narration passthrough only
	Weekday int `json:"weekday" example:"2"`
	// Count of distinct active medications
	Complexity int `json:"complexity" example:"3"`
	// Always "unknown": no age source exists, field kept for scorer compatibility
	AgeBand string `json:"age_band" example:"unknown"`
	// Minutes since the most recently taken dose, nil when none exists
	LastTakenDeltaMin *int `json:"last_taken_delta_min,omitempty" example:"95"`
	// Minutes until the nearest pending/snoozed dose (negative when overdue), nil when none
	TimeToNextMin *int `json:"time_to_next_min,omitempty" example:"140"`
	// Alert acknowledgements in the last 7 days (system-wide)
	CaregiverAck7d int `json:"caregiver_ack_7d" example:"0"`
}

// FeatureComputation is the aggregator's result. Degraded lists the store
// reads that failed and fell back to zero/default values, so the fail-open
// policy is visible to callers instead of being swallowed.
type FeatureComputation struct {
	Features FeatureVector `json:"features"`
	Degraded []string      `json:"degraded,omitempty"`
}

// RiskResult is the scored adherence risk for one user, either from the
// external scorer or the local heuristic fallback.
// @Description Adherence risk score with classification and guidance.
type RiskResult struct {
	// Risk score from 0 (no concern) to 100
	Score int `json:"score_0_100" example:"42"`
	// Risk classification
	Bucket RiskBucket `json:"bucket" example:"medium"`
	// Short explanation of the score
	Rationale string `json:"rationale" example:"Recent misses are pushing risk up."`
	// One actionable suggestion
	Suggestion string `json:"suggestion" example:"Set a reminder for your evening dose."`
	// Factors that drove the score, most significant first
	ContributingFactors []string `json:"contributing_factors" example:"misses_48h,adherence_7d"`
}
