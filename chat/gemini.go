// Package chat relays support-widget messages to the hosted Gemini model.
// There is no local reasoning: sessions are stored, messages are forwarded,
// replies are stored back.
package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"travel-booking-webapp/model"

	"go.uber.org/zap"
)

const (
	geminiBaseURL      = "https://generativelanguage.googleapis.com/v1beta"
	geminiMaxRetries   = 3
	geminiInitialDelay = 1 * time.Second
)

// FallbackReply is returned when the model cannot be reached; chat support
// degrades instead of erroring, matching the rest of the product.
const FallbackReply = "Sorry, our assistant is unavailable right now. Please try again in a moment or contact support@tournet.example."

type GeminiClient struct {
	apiKey     string
	model      string
	baseURL    string
	retryDelay time.Duration
	client     *http.Client
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

type geminiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

func NewGeminiClient(apiKey, modelName string) *GeminiClient {
	return &GeminiClient{
		apiKey:     apiKey,
		model:      modelName,
		baseURL:    geminiBaseURL,
		retryDelay: geminiInitialDelay,
		client:     &http.Client{Timeout: 30 * time.Second},
	}
}

// NewGeminiClientWithBaseURL points the client at a fake backend and shrinks
// the retry delay so tests do not sleep.
func NewGeminiClientWithBaseURL(apiKey, modelName, baseURL string) *GeminiClient {
	c := NewGeminiClient(apiKey, modelName)
	c.baseURL = baseURL
	c.retryDelay = 10 * time.Millisecond
	return c
}

// Reply sends the session history plus the new user message and returns the
// model's answer. Retries transient failures with exponential backoff.
func (c *GeminiClient) Reply(ctx context.Context, history []model.ChatMessage, userMessage string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("gemini api key is not configured")
	}

	contents := make([]geminiContent, 0, len(history)+1)
	for _, msg := range history {
		role := "user"
		if msg.Role == model.ChatRoleAssistant {
			role = "model"
		}
		contents = append(contents, geminiContent{
			Role:  role,
			Parts: []geminiPart{{Text: msg.Content}},
		})
	}
	contents = append(contents, geminiContent{
		Role:  "user",
		Parts: []geminiPart{{Text: userMessage}},
	})

	var lastErr error
	delay := c.retryDelay

	for attempt := 0; attempt < geminiMaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(delay):
			}
			delay *= 2
		}

		reply, retryable, err := c.generate(ctx, geminiRequest{Contents: contents})
		if err == nil {
			return reply, nil
		}
		lastErr = err
		if !retryable {
			break
		}
		zap.L().Warn("gemini request failed, retrying",
			zap.Int("attempt", attempt+1),
			zap.Error(err))
	}

	return "", lastErr
}

func (c *GeminiClient) generate(ctx context.Context, reqBody geminiRequest) (string, bool, error) {
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", false, fmt.Errorf("cannot serialize gemini request: %v", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", false, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", true, fmt.Errorf("gemini request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", true, fmt.Errorf("cannot read gemini response: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr geminiError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Message != "" {
			retryable := resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500
			return "", retryable, fmt.Errorf("gemini api error (%v): %v", apiErr.Error.Status, apiErr.Error.Message)
		}
		return "", resp.StatusCode >= 500, fmt.Errorf("gemini api returned status %v", resp.StatusCode)
	}

	var parsed geminiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", false, fmt.Errorf("cannot parse gemini response: %v", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", false, fmt.Errorf("gemini returned no candidates")
	}

	return parsed.Candidates[0].Content.Parts[0].Text, false, nil
}
