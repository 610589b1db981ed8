package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/hirebyte/hr-assistant/internal/logger"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

const (
	defaultModel        = "gemini-2.5-flash"
	defaultMaxLogLength = 200
	retryDelay          = 2 * time.Second
)

// replyTemperature keeps answers factual but not robotic.
const replyTemperature float32 = 0.4

var sleep = time.Sleep

// System instructions per locale. The assistant's language is set here, not
// by the orchestrator; the model is only nudged, never guaranteed.
var systemInstructions = map[string]string{
	"en": "You are a recruiting assistant. Answer concisely in English.",
	"fr": "Tu es un assistant RH. Réponds en français, de façon concise.",
	"ar": "أنت مساعد للموارد البشرية. أجب بالعربية وباختصار.",
}

// contentGenerator is the slice of the genai client the assistant needs.
type contentGenerator interface {
	generate(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type apiGenerator struct {
	client *genai.Client
}

func (g *apiGenerator) generate(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	return g.client.Models.GenerateContent(ctx, model, contents, cfg)
}

// Assistant produces freeform recruiting replies through the Gemini API.
type Assistant struct {
	generator  contentGenerator
	model      string
	maxRetries int
	maxLogLen  int
	logger     *zap.Logger
}

// New creates an Assistant configured for the Gemini API backend.
func New(ctx context.Context, apiKey, model string, maxRetries, maxLogLength int, log *zap.Logger) (*Assistant, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}
	if maxRetries <= 0 {
		maxRetries = 1
	}
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	return &Assistant{
		generator:  &apiGenerator{client: client},
		model:      model,
		maxRetries: maxRetries,
		maxLogLen:  maxLogLength,
		logger:     log,
	}, nil
}

// Reply sends the user message with the locale's system instruction and
// returns the first textual response, retrying transient API failures.
func (a *Assistant) Reply(ctx context.Context, message, locale string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", errors.New("message must not be empty")
	}

	sys, ok := systemInstructions[locale]
	if !ok {
		sys = systemInstructions["en"]
	}

	temperature := replyTemperature
	cfg := &genai.GenerateContentConfig{
		Temperature: &temperature,
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: sys}},
		},
	}

	a.logger.Debug("gemini reply request",
		zap.String("model", a.model),
		zap.String("locale", locale),
		zap.Int("message_length", utf8.RuneCountInString(message)),
		zap.String("message_preview", logger.TruncateForLog(message, a.maxLogLen)),
	)

	var lastErr error
	for attempt := 1; attempt <= a.maxRetries; attempt++ {
		resp, err := a.generator.generate(ctx, a.model, genai.Text(message), cfg)
		if err != nil {
			lastErr = err
			if !retryable(err) || attempt == a.maxRetries {
				break
			}
			a.logger.Warn("gemini request failed, retrying",
				zap.Int("attempt", attempt),
				zap.Error(err),
			)
			sleep(retryDelay)
			continue
		}

		reply := collectText(resp)
		if reply == "" {
			return "", errors.New("gemini api returned empty response")
		}

		a.logger.Debug("gemini reply response",
			zap.Int("reply_length", utf8.RuneCountInString(reply)),
			zap.String("reply_preview", logger.TruncateForLog(reply, a.maxLogLen)),
		)

		return reply, nil
	}

	return "", fmt.Errorf("generate content: %w", lastErr)
}

func collectText(resp *genai.GenerateContentResponse) string {
	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(text)
		}
	}
	return strings.TrimSpace(builder.String())
}

func retryable(err error) bool {
	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Code == http.StatusTooManyRequests || apiErr.Code >= http.StatusInternalServerError
}
