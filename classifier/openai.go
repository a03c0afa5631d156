package classifier

import (
	"context"
	"errors"
	"time"

	"github.com/sashabaranov/go-openai"

	"go-lifeline/types"
)

const assistantSystemPrompt = "You are a community assistance helper for a local aid platform. " +
	"Answer briefly and practically, in the user's language, about requesting help, " +
	"emergency procedures, food, medical and shelter assistance. " +
	"Never give medical diagnoses; for life-threatening situations always point to 911."

const providerConfidence = 0.85

// OpenAIProvider answers chat queries through the OpenAI API when the
// classifier service is down. It keeps no conversation memory.
type OpenAIProvider struct {
	client *openai.Client
	model  string
}

func NewOpenAIProvider(apiKey string) *OpenAIProvider {
	return &OpenAIProvider{
		client: openai.NewClient(apiKey),
		model:  openai.GPT3Dot5Turbo,
	}
}

func (p *OpenAIProvider) Chat(ctx context.Context, req ChatRequest) (types.ChatReply, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: assistantSystemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: req.Message,
			},
		},
		MaxTokens: 300,
	})
	if err != nil {
		return types.ChatReply{}, err
	}
	if len(resp.Choices) == 0 {
		return types.ChatReply{}, errors.New("openai returned no choices")
	}

	return types.ChatReply{
		Response:         resp.Choices[0].Message.Content,
		Confidence:       providerConfidence,
		Sources:          []string{"AI assistant"},
		SuggestedActions: []string{},
		Timestamp:        time.Now().UTC(),
	}, nil
}
