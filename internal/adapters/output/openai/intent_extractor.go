package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"stocksentry/configs"
	"stocksentry/internal/domain"
	"stocksentry/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// Compile-time check to ensure IntentExtractorAdapter implements IntentExtractor interface
var _ output.IntentExtractor = (*IntentExtractorAdapter)(nil)

const systemPrompt = "You are a helpful assistant. Extract the stock ticker symbol from the below User Input. Return the Response in JSON Format with key as stock_ticker_symbol"

// Retry configuration constants - three attempts with exponential backoff,
// starting at 4s and capped at 10s
const (
	maxRetryAttempts  = 3
	initialDelay      = 4 * time.Second
	maxDelay          = 10 * time.Second
	backoffMultiplier = 2
)

const (
	defaultBaseURL = "https://api.openai.com"
	defaultModel   = "gpt-3.5-turbo"
	defaultTimeout = 10 * time.Second
	temperature    = 0.3
	maxTokens      = 60
)

// IntentExtractorAdapter struct - Output adapter for an OpenAI-compatible
// chat-completions API, used to extract a stock ticker from combined text
type IntentExtractorAdapter struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string

	// overridable in tests
	maxAttempts int
	firstDelay  time.Duration
	delayCap    time.Duration
}

// NewIntentExtractorAdapter func - Creates new intent extractor adapter
func NewIntentExtractorAdapter(config configs.OpenAI) *IntentExtractorAdapter {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	model := config.Model
	if model == "" {
		model = defaultModel
	}

	timeout := time.Duration(config.Timeout) * time.Second
	if config.Timeout <= 0 {
		timeout = defaultTimeout
	}

	httpClient := &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   10 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 100,
			IdleConnTimeout:     90 * time.Second,
		},
	}

	adapter := &IntentExtractorAdapter{
		httpClient:  httpClient,
		baseURL:     baseURL,
		apiKey:      config.APIKey,
		model:       model,
		maxAttempts: maxRetryAttempts,
		firstDelay:  initialDelay,
		delayCap:    maxDelay,
	}

	logrus.Infof("Intent extractor initialized with base URL: %s, model: %s, timeout: %v", baseURL, model, timeout)

	return adapter
}

// ExtractIntent sends the combined transcript text to the completion
// provider and parses the ticker symbol out of the model's JSON reply.
// Transport failures, provider errors and malformed response bodies are all
// retried; exhaustion surfaces as domain.ErrProviderUnavailable. A reply
// whose content is not the expected JSON object is recovered to a negative
// intent, never an error.
func (a *IntentExtractorAdapter) ExtractIntent(ctx context.Context, text string) (domain.IntentResult, error) {
	content, err := a.completeWithRetry(ctx, text)
	if err != nil {
		return domain.NoIntent(), err
	}

	content = cleanJSONResponse(content)
	if content == "" {
		return domain.NoIntent(), nil
	}

	var parsed struct {
		StockTickerSymbol string `json:"stock_ticker_symbol"`
	}
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		logrus.Warnf("Failed to decode ticker JSON from model output: %v, content: %s", err, content)
		return domain.NoIntent(), nil
	}

	symbol := strings.ToUpper(strings.TrimSpace(parsed.StockTickerSymbol))
	if symbol == "" {
		return domain.NoIntent(), nil
	}

	return domain.IntentResult{Intent: domain.IntentYes, Symbol: symbol}, nil
}

// completeWithRetry executes the chat completion with exponential backoff.
// Every failure mode counts against the attempt budget: network errors,
// non-2xx statuses and undecodable bodies alike.
func (a *IntentExtractorAdapter) completeWithRetry(ctx context.Context, text string) (string, error) {
	var lastErr error
	delay := a.firstDelay

	for attempt := 1; attempt <= a.maxAttempts; attempt++ {
		content, err := a.complete(ctx, text)
		if err == nil {
			return content, nil
		}
		lastErr = err
		logrus.Warnf("Completion attempt %d/%d failed: %v, retrying in %v", attempt, a.maxAttempts, err, delay)

		if attempt < a.maxAttempts {
			select {
			case <-ctx.Done():
				return "", fmt.Errorf("context cancelled: %w", ctx.Err())
			case <-time.After(delay):
			}

			delay = delay * backoffMultiplier
			if delay > a.delayCap {
				delay = a.delayCap
			}
		}
	}

	return "", fmt.Errorf("%w: %v after %d attempts", domain.ErrProviderUnavailable, lastErr, a.maxAttempts)
}

// complete performs one chat-completion round trip.
func (a *IntentExtractorAdapter) complete(ctx context.Context, text string) (string, error) {
	temp := temperature
	reqBody := chatCompletionAPIRequest{
		Model: a.model,
		Messages: []chatMessageAPI{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: text},
		},
		Temperature: &temp,
		MaxTokens:   maxTokens,
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1/chat/completions", a.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if a.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+a.apiKey)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("provider error: status %d - %s", resp.StatusCode, string(body))
	}

	var apiResp chatCompletionAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return "", fmt.Errorf("failed to parse completion response: %w", err)
	}

	if len(apiResp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	return strings.TrimSpace(apiResp.Choices[0].Message.Content), nil
}

// cleanJSONResponse strips markdown code fences some models wrap around
// JSON output.
func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}

// API request/response structures for the OpenAI-compatible API

// chatMessageAPI represents a message in the API request
type chatMessageAPI struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatCompletionAPIRequest represents the request body for chat completions
type chatCompletionAPIRequest struct {
	Model       string           `json:"model"`
	Messages    []chatMessageAPI `json:"messages"`
	Temperature *float64         `json:"temperature,omitempty"`
	MaxTokens   int              `json:"max_tokens,omitempty"`
}

// chatCompletionAPIResponse represents the response from chat completions
type chatCompletionAPIResponse struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Created int64  `json:"created"`
	Model   string `json:"model"`
	Choices []struct {
		Index   int `json:"index"`
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}
