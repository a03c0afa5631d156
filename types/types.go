package types

import "time"

// ClassificationResult is the outcome of one triage call. Score is rounded
// to 2 decimals and never exceeds 0.99; downstream consumers compare it
// against certainty thresholds, so the cap is part of the contract.
type ClassificationResult struct {
	Priority          Priority `json:"priority"`
	Score             float64  `json:"score"`
	Reason            string   `json:"reason"`
	SuggestedCategory Category `json:"suggested_category"`
}

// ResourcePrediction maps a disaster scenario to estimated relief
// quantities. Derived purely from its inputs; it has no persisted identity.
type ResourcePrediction struct {
	DisasterType       DisasterType   `json:"disaster_type"`
	AffectedPopulation int            `json:"affected_population"`
	Quantities         map[string]int `json:"quantities"`
	Status             string         `json:"status"`
	Note               string         `json:"note,omitempty"`
}

const (
	PredictionStatusPredicted = "predicted"
	PredictionStatusFallback  = "fallback"
)

// ChatReply is a stateless answer to a single assistant query. No
// conversation memory is kept on this side.
type ChatReply struct {
	Response         string    `json:"response"`
	Confidence       float64   `json:"confidence"`
	Sources          []string  `json:"sources"`
	SuggestedActions []string  `json:"suggested_actions"`
	Timestamp        time.Time `json:"timestamp"`
}

// NotificationEvent exists only for the duration of a dispatch call. If the
// target room has no members the event is simply dropped; durable
// notification records are the caller's responsibility.
type NotificationEvent struct {
	TargetRoom string      `json:"target_room"`
	Event      string      `json:"event"`
	Payload    interface{} `json:"payload"`
	EmittedAt  time.Time   `json:"emitted_at"`
}
