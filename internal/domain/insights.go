package domain

// AdherenceDay is one entry of the 7-day adherence series.
// @Description Daily adherence percentage for one UTC calendar day.
type AdherenceDay struct {
	// Calendar day in YYYY-MM-DD form (UTC)
	Date string `json:"date" example:"2024-01-15"`
	// Rounded percentage of that day's doses taken (0 for days without doses)
	AdherencePct int `json:"adherence_pct" example:"75"`
}

// InsightsSeries is the aggregation the narrative generator works from:
// a 7-day adherence series plus bucketed snooze/miss statistics.
type InsightsSeries struct {
	// Exactly 7 entries, oldest to newest, ending today
	RecentDays []AdherenceDay `json:"recent_days"`
	// Up to 3 time-of-day buckets ranked by snooze count descending
	TopSnoozeWindows []TimeBlock `json:"top_snooze_windows"`
	// Bucket with the most skipped/missed doses, nil when there are none
	TopMissedBlock *TimeBlock `json:"top_missed_block,omitempty"`
	// Skipped or missed doses in the 7-day window
	Misses7d int `json:"misses_7d"`
	// Snoozed doses in the 7-day window
	Snoozes7d int `json:"snoozes_7d"`
}

// NarrativeContext is the context object sent to the narrative generator.
// @Description Context data for LLM insight narration.
type NarrativeContext struct {
	Features         FeatureVector  `json:"features"`
	RecentDays       []AdherenceDay `json:"recent_days"`
	TopSnoozeWindows []TimeBlock    `json:"top_snooze_windows"`
	Summary          string         `json:"summary"`
}

// NarrativeOutput is the structured output from the narrative generator.
// @Description LLM-generated adherence narrative.
type NarrativeOutput struct {
	// Card title
	Title string `json:"title" example:"Adherence insights"`
	// Up to 4 short highlight lines
	Highlights []string `json:"highlights" example:"[\"You kept a 3-day streak going\"]"`
	// One piece of behavioral advice
	Advice string `json:"advice" example:"Your evening doses slip most often; pair them with dinner."`
	// The single most useful next step
	NextBestAction string `json:"next_best_action" example:"Snooze less, ask your caregiver to check in at 8pm."`
}

// NotifyInsightsResponse reports the outcome of sending the insights SMS.
// @Description Result of the insights SMS delivery.
type NotifyInsightsResponse struct {
	Success bool `json:"success"`
	// Twilio message SID, present on success
	Sid string `json:"sid,omitempty" example:"SM9f1c6c2b3a5d4e8f"`
}

// RiskInsightsResponse is the response for the risk insights endpoint:
// the series-derived summary merged with the narrative fields.
// @Description Adherence insights: narrative card plus 7-day summary statistics.
type RiskInsightsResponse struct {
	Title          string   `json:"title" example:"Adherence insights"`
	Highlights     []string `json:"highlights"`
	Advice         string   `json:"advice"`
	NextBestAction string   `json:"next_best_action"`
	// Skipped or missed doses in the last 7 days
	Misses7d int `json:"misses_7d" example:"2"`
	// Snoozed doses in the last 7 days
	Snoozes7d int `json:"snoozes_7d" example:"1"`
	// Bucket with the most misses, omitted when there are none
	TopMissedBlock *TimeBlock `json:"top_missed_block,omitempty" example:"evening"`
	// 7-day adherence series, oldest first
	RecentDays []AdherenceDay `json:"recent_days"`
	// Snooze-heavy time-of-day buckets, most frequent first
	TopSnoozeWindows []TimeBlock `json:"top_snooze_windows"`
	// Trace ID for feedback (only present when tracing is enabled)
	TraceID string `json:"trace_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
}
