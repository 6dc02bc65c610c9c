package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/pageza/lista/backend/config"
	"github.com/pageza/lista/backend/internal/metrics"
	"github.com/pageza/lista/backend/internal/types"
)

const extractionTemperature = 0.3

// RecipeExtractor is implemented by LLMService and by test doubles
type RecipeExtractor interface {
	HasCredentials() bool
	ExtractRecipe(ctx context.Context, ocrText string, variant Variant) (*types.ExtractionResult, error)
}

// LLMService handles interactions with the OpenAI chat completion API
type LLMService struct {
	apiKey string
	apiURL string
	model  string
	client *http.Client
}

// NewLLMService creates a new LLMService from the application config
func NewLLMService(cfg *config.Config) *LLMService {
	return &LLMService{
		apiKey: cfg.OpenAIAPIKey,
		apiURL: cfg.OpenAIAPIURL,
		model:  cfg.OpenAIModel,
		client: &http.Client{Timeout: cfg.LLMTimeout},
	}
}

// Message represents a message in the chat
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request represents a request to the chat completion API
type Request struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// HasCredentials reports whether an API key is configured
func (s *LLMService) HasCredentials() bool {
	return s.apiKey != ""
}

// ExtractRecipe sends OCR text to the model and parses the recipe it returns
func (s *LLMService) ExtractRecipe(ctx context.Context, ocrText string, variant Variant) (*types.ExtractionResult, error) {
	if !s.HasCredentials() {
		return nil, ErrMissingAPIKey
	}

	messages, maxTokens, err := buildMessages(variant, ocrText)
	if err != nil {
		return nil, err
	}

	content, err := s.complete(ctx, Request{
		Model:       s.model,
		Messages:    messages,
		Temperature: extractionTemperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return nil, err
	}

	return ParseExtraction(content)
}

// complete performs one chat completion call and returns the reply text
func (s *LLMService) complete(ctx context.Context, reqBody Request) (string, error) {
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		metrics.UpstreamDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()
	metrics.UpstreamDuration.WithLabelValues(strconv.Itoa(resp.StatusCode)).Observe(time.Since(start).Seconds())

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr errorResponse
		// An unparseable error body still yields an UpstreamError with the status.
		_ = json.Unmarshal(body, &apiErr)
		slog.Warn("OpenAI request failed", "status", resp.StatusCode, "body", string(body))
		return "", &UpstreamError{StatusCode: resp.StatusCode, Message: apiErr.Error.Message}
	}

	slog.Debug("OpenAI raw response", "body", string(body))

	var result completionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(result.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	return result.Choices[0].Message.Content, nil
}
