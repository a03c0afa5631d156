package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Failure classes for the outbound call. All of them collapse to a
// fallback; they only differ in the observability record.
var (
	errBadStatus = errors.New("classifier service returned non-OK status")
	errMalformed = errors.New("malformed classifier response")
)

// Wire shapes of the external classifier service.

type prioritizeRequest struct {
	Title          string                 `json:"title"`
	Description    string                 `json:"description"`
	Category       string                 `json:"category"`
	Location       string                 `json:"location,omitempty"`
	Timestamp      string                 `json:"timestamp,omitempty"`
	HistoricalData map[string]interface{} `json:"historical_data,omitempty"`
}

type prioritizeResponse struct {
	Priority          string  `json:"priority"`
	Score             float64 `json:"score"`
	Reason            string  `json:"reason"`
	SuggestedCategory string  `json:"suggested_category"`
}

type predictResourcesRequest struct {
	DisasterType       string `json:"disaster_type"`
	AffectedPopulation int    `json:"affected_population"`
	Location           string `json:"location,omitempty"`
	HistoricalPatterns bool   `json:"historical_patterns"`
}

type chatServiceRequest struct {
	Message string      `json:"message"`
	Context chatContext `json:"context"`
}

type chatContext struct {
	UserID    string `json:"user_id,omitempty"`
	Role      string `json:"role,omitempty"`
	Language  string `json:"language,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

type chatServiceResponse struct {
	Response         string   `json:"response"`
	Confidence       float64  `json:"confidence"`
	Sources          []string `json:"sources"`
	SuggestedActions []string `json:"suggested_actions"`
	Timestamp        string   `json:"timestamp"`
}

// post issues one JSON POST against the classifier service and decodes the
// body into out. The gateway's http.Client timeout bounds the whole call.
func (g *Gateway) post(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s", errBadStatus, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", errMalformed, err)
	}
	return nil
}
