// Package classifier arbitrates between the external classification service
// and the deterministic local fallbacks. Its headline contract: triage
// never blocks past the configured timeout and never fails outward -- every
// operation returns a usable value.
package classifier

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"go-lifeline/chatbot"
	"go-lifeline/metrics"
	"go-lifeline/resources"
	"go-lifeline/triage"
	"go-lifeline/types"
)

// DefaultTimeout bounds the single outbound call per operation.
const DefaultTimeout = 5 * time.Second

// ChatProvider is an alternative remote assistant consulted when the
// classifier service's chat endpoint fails. Its own failure falls through
// to the canned matcher.
type ChatProvider interface {
	Chat(ctx context.Context, req ChatRequest) (types.ChatReply, error)
}

// Gateway owns the external call, the timeout, and the fallback decision.
type Gateway struct {
	baseURL      string
	client       *http.Client
	chatProvider ChatProvider
}

type Option func(*Gateway)

// WithChatProvider installs a secondary remote chat backend.
func WithChatProvider(p ChatProvider) Option {
	return func(g *Gateway) { g.chatProvider = p }
}

// WithHTTPClient replaces the underlying client, mainly for tests.
func WithHTTPClient(c *http.Client) Option {
	return func(g *Gateway) { g.client = c }
}

func New(baseURL string, timeout time.Duration, opts ...Option) *Gateway {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	g := &Gateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ClassifyRequest is the triage input plus caller-supplied context for the
// external model.
type ClassifyRequest struct {
	Request        types.ServiceRequest
	HistoricalData map[string]interface{}
}

// PredictRequest asks for resource estimates for a disaster scenario.
type PredictRequest struct {
	DisasterType       types.DisasterType
	AffectedPopulation int
	Location           string
	HistoricalPatterns bool
}

// ChatRequest is one stateless assistant query.
type ChatRequest struct {
	Message  string
	UserID   string
	Role     string
	Language string
}

// ClassifyPriority returns the external classification when the service
// answers in time with a well-formed body, and the keyword fallback
// otherwise. It never returns an error.
func (g *Gateway) ClassifyPriority(ctx context.Context, req ClassifyRequest) types.ClassificationResult {
	var resp prioritizeResponse
	err := g.post(ctx, "/api/prioritize", prioritizeRequest{
		Title:          req.Request.Title,
		Description:    req.Request.Description,
		Category:       string(req.Request.Category),
		Location:       req.Request.Location,
		Timestamp:      req.Request.Timestamp,
		HistoricalData: req.HistoricalData,
	}, &resp)
	if err == nil {
		if result, ok := classificationFromWire(resp); ok {
			g.recordOutcome("classify", "external", nil)
			return result
		}
		err = errMalformed
	}

	g.recordOutcome("classify", "fallback", err)
	return triage.Classify(req.Request.Title, req.Request.Description, req.Request.Category)
}

// PredictResources returns the external prediction or the guideline table.
// It never returns an error.
func (g *Gateway) PredictResources(ctx context.Context, req PredictRequest) types.ResourcePrediction {
	var quantities map[string]int
	err := g.post(ctx, "/api/predict-resources", predictResourcesRequest{
		DisasterType:       string(req.DisasterType),
		AffectedPopulation: req.AffectedPopulation,
		Location:           req.Location,
		HistoricalPatterns: req.HistoricalPatterns,
	}, &quantities)
	if err == nil && wellFormedQuantities(quantities) {
		g.recordOutcome("predict", "external", nil)
		return types.ResourcePrediction{
			DisasterType:       req.DisasterType,
			AffectedPopulation: req.AffectedPopulation,
			Quantities:         quantities,
			Status:             types.PredictionStatusPredicted,
		}
	}
	if err == nil {
		err = errMalformed
	}

	g.recordOutcome("predict", "fallback", err)
	return resources.Predict(req.DisasterType, req.AffectedPopulation)
}

// Chat tries the classifier service, then the configured chat provider,
// then the canned matcher. It never returns an error.
func (g *Gateway) Chat(ctx context.Context, req ChatRequest) types.ChatReply {
	var resp chatServiceResponse
	err := g.post(ctx, "/api/chat", chatServiceRequest{
		Message: req.Message,
		Context: chatContext{
			UserID:    req.UserID,
			Role:      req.Role,
			Language:  req.Language,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		},
	}, &resp)
	if err == nil && strings.TrimSpace(resp.Response) != "" {
		g.recordOutcome("chat", "external", nil)
		return chatReplyFromWire(resp)
	}
	if err == nil {
		err = errMalformed
	}
	g.recordOutcome("chat", "fallback", err)

	if g.chatProvider != nil {
		reply, perr := g.chatProvider.Chat(ctx, req)
		if perr == nil {
			metrics.TriageCalls.WithLabelValues("chat", "provider").Inc()
			return reply
		}
		log.Printf("[classifier] chat provider failed, using canned replies: %v", perr)
	}

	return chatbot.Match(req.Message)
}

// recordOutcome writes the external-vs-fallback observability record.
func (g *Gateway) recordOutcome(op, source string, err error) {
	metrics.TriageCalls.WithLabelValues(op, source).Inc()
	if source == "external" {
		return
	}
	reason := failureReason(err)
	metrics.FallbackReasons.WithLabelValues(op, reason).Inc()
	log.Printf("[classifier] %s fell back to local engine (%s): %v", op, reason, err)
}

// failureReason buckets a classifier failure for metrics. The caller can't
// tell these apart -- all of them trigger the same fallback.
func failureReason(err error) string {
	switch {
	case err == nil:
		return "unknown"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, errMalformed):
		return "malformed"
	case errors.Is(err, errBadStatus):
		return "bad_status"
	default:
		var netErr interface{ Timeout() bool }
		if errors.As(err, &netErr) && netErr.Timeout() {
			return "timeout"
		}
		return "unavailable"
	}
}

// classificationFromWire validates and converts an external classification.
// Anything outside the known priority set or score range counts as a
// malformed response.
func classificationFromWire(resp prioritizeResponse) (types.ClassificationResult, bool) {
	priority := types.Priority(strings.ToUpper(strings.TrimSpace(resp.Priority)))
	switch priority {
	case types.PriorityUrgent, types.PriorityHigh, types.PriorityMedium, types.PriorityLow:
	default:
		return types.ClassificationResult{}, false
	}
	if resp.Score < 0 || resp.Score > 1 {
		return types.ClassificationResult{}, false
	}
	return types.ClassificationResult{
		Priority:          priority,
		Score:             resp.Score,
		Reason:            resp.Reason,
		SuggestedCategory: types.Category(resp.SuggestedCategory),
	}, true
}

func wellFormedQuantities(quantities map[string]int) bool {
	if len(quantities) == 0 {
		return false
	}
	for _, qty := range quantities {
		if qty < 0 {
			return false
		}
	}
	return true
}

func chatReplyFromWire(resp chatServiceResponse) types.ChatReply {
	reply := types.ChatReply{
		Response:         resp.Response,
		Confidence:       resp.Confidence,
		Sources:          resp.Sources,
		SuggestedActions: resp.SuggestedActions,
		Timestamp:        time.Now().UTC(),
	}
	if ts, err := time.Parse(time.RFC3339, resp.Timestamp); err == nil {
		reply.Timestamp = ts
	}
	if reply.Sources == nil {
		reply.Sources = []string{}
	}
	if reply.SuggestedActions == nil {
		reply.SuggestedActions = []string{}
	}
	return reply
}
