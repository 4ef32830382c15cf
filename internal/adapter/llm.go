package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/complyra/claimshield/internal/config"
	"github.com/complyra/claimshield/internal/logger"
	"github.com/complyra/claimshield/models"
	"github.com/go-resty/resty/v2"
)

// chatCompletionsPath is the OpenAI-compatible completion endpoint,
// relative to the configured base URL.
const chatCompletionsPath = "/v1/chat/completions"

// advocateSystemPrompt frames the assistant for every drafting request.
const advocateSystemPrompt = "You are a legal advocate specializing in medical billing disputes."

type llmClient struct {
	client *resty.Client
	model  string
	logger *logger.Logger
}

// NewLLMClient constructs an [LLMClient] for the configured chat-completion
// provider.
func NewLLMClient(cfg config.LLM, log *logger.Logger) LLMClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = time.Minute
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(timeout).
		SetAuthToken(cfg.APIKey)

	return &llmClient{
		client: cli,
		model:  cfg.Model,
		logger: log,
	}
}

// DraftAppealLetter sends the fixed system/user prompt pair with the
// extracted bill text and returns the first completion choice's content.
// The output is not validated or retried; the letter is presented to the
// user for review before saving.
func (l *llmClient) DraftAppealLetter(ctx context.Context, extractedText string) (string, error) {
	log := logger.FromContext(ctx)

	reqBody := models.ChatRequest{
		Model: l.model,
		Messages: []models.ChatMessage{
			{Role: "system", Content: advocateSystemPrompt},
			{Role: "user", Content: "Draft a No Surprises Act appeal for: " + extractedText},
		},
	}

	resp, err := l.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(reqBody).
		Post(chatCompletionsPath)
	if err != nil {
		log.Err(err).Msg("chat-completion request failed")
		return "", fmt.Errorf("%w: %w", ErrLLMFailed, err)
	}

	if resp.StatusCode() != http.StatusOK {
		log.Error().Int("status", resp.StatusCode()).Msg("chat-completion provider returned non-OK status")
		return "", fmt.Errorf("%w: unexpected status %d", ErrLLMFailed, resp.StatusCode())
	}

	var parsed models.ChatResponse
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
		log.Err(err).Msg("error decoding chat-completion response")
		return "", fmt.Errorf("%w: decoding response: %w", ErrLLMFailed, err)
	}

	if len(parsed.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	return parsed.Choices[0].Message.Content, nil
}
