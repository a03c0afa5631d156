// Package chatbot answers assistant queries from a fixed ordered list of
// canned replies. It backs the chat operation when the external service is
// unreachable; no conversation state is kept.
package chatbot

import (
	"strings"
	"time"

	"go-lifeline/types"
)

// Match scans the entry list in order and returns the first entry whose
// trigger substrings appear in the query. Confidences are fixed per entry,
// never computed. Unmatched queries get a generic low-confidence reply.
func Match(query string) types.ChatReply {
	q := strings.ToLower(query)

	for _, e := range entries {
		for _, pattern := range e.patterns {
			if strings.Contains(q, pattern) {
				return types.ChatReply{
					Response:         e.response,
					Confidence:       e.confidence,
					Sources:          append([]string(nil), e.sources...),
					SuggestedActions: append([]string(nil), e.actions...),
					Timestamp:        time.Now().UTC(),
				}
			}
		}
	}

	return types.ChatReply{
		Response:         defaultResponse,
		Confidence:       defaultConfidence,
		Sources:          []string{},
		SuggestedActions: append([]string(nil), defaultActions...),
		Timestamp:        time.Now().UTC(),
	}
}
