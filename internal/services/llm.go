package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-logr/logr"
	openai "github.com/sashabaranov/go-openai"

	"postcraft-backend/internal/config"
	"postcraft-backend/internal/models"
)

// ErrNotConfigured is returned when Complete is called without a provider
// credential. Handlers check Live first, so hitting this means a wiring bug.
var ErrNotConfigured = errors.New("LLM service is not configured (missing API key)")

// ProviderError wraps a non-success response from the chat-completion
// provider. Handlers report it to clients as a generic 500; the status and
// body stay in the logs.
type ProviderError struct {
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider returned status %d: %s", e.StatusCode, e.Body)
}

// LLMService handles chat-completion calls to the OpenAI API.
type LLMService struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	log     logr.Logger
}

// NewLLMService creates the provider client. Without an API key the service
// still constructs, but Live reports false and the routes run in mock mode.
func NewLLMService(cfg *config.Config, log logr.Logger) *LLMService {
	s := &LLMService{
		model:   cfg.OpenAIModel,
		timeout: cfg.ProviderTimeout,
		log:     log,
	}

	if cfg.OpenAIAPIKey == "" {
		return s
	}

	clientConfig := openai.DefaultConfig(cfg.OpenAIAPIKey)
	if cfg.OpenAIBaseURL != "" {
		clientConfig.BaseURL = cfg.OpenAIBaseURL
	}
	s.client = openai.NewClientWithConfig(clientConfig)

	return s
}

// Live reports whether a provider credential is configured.
func (s *LLMService) Live() bool {
	return s.client != nil
}

// Complete issues one chat-completion call and returns the first choice's
// text, trimmed. A well-formed reply with no choices yields an empty string,
// not an error. Provider failures are not retried.
func (s *LLMService) Complete(ctx context.Context, messages []models.ChatMessage, opts models.GenerationOptions) (string, error) {
	if s.client == nil {
		return "", ErrNotConfigured
	}

	openaiMessages := make([]openai.ChatCompletionMessage, len(messages))
	for i, msg := range messages {
		openaiMessages[i] = openai.ChatCompletionMessage{
			Role:    msg.Role,
			Content: msg.Content,
		}
	}

	req := openai.ChatCompletionRequest{
		Model:     s.model,
		Messages:  openaiMessages,
		MaxTokens: opts.MaxTokens,
	}
	if opts.Temperature != nil {
		req.Temperature = *opts.Temperature
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.client.CreateChatCompletion(ctx, req)
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			s.log.Error(err, "provider request failed",
				"status", apiErr.HTTPStatusCode, "model", s.model, "messages", len(messages))
			return "", &ProviderError{StatusCode: apiErr.HTTPStatusCode, Body: apiErr.Message}
		}
		var reqErr *openai.RequestError
		if errors.As(err, &reqErr) {
			s.log.Error(err, "provider request failed",
				"status", reqErr.HTTPStatusCode, "model", s.model, "messages", len(messages))
			return "", &ProviderError{StatusCode: reqErr.HTTPStatusCode, Body: string(reqErr.Body)}
		}
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// ExtractField pulls the named string field out of a model reply that should
// be a minimal JSON object. Models wrap JSON in code fences or ignore the
// format entirely, so on any decode failure the raw reply is returned as the
// value itself. This is a recovery path, not an error.
func ExtractField(raw, field string) string {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var obj map[string]interface{}
	if err := json.Unmarshal([]byte(cleaned), &obj); err != nil {
		return raw
	}

	if val, ok := obj[field].(string); ok {
		return val
	}
	return raw
}
