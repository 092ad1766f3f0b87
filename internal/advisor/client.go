package advisor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/goccy/go-json"

	"ig-advisor-go/internal/logger"
)

// ErrNotConfigured is returned when no gateway is set and mock mode is off.
var ErrNotConfigured = errors.New("llm gateway not configured")

// Advisor turns a rendered account prompt into advice text.
type Advisor interface {
	Advise(ctx context.Context, prompt string) (string, error)
}

type Config struct {
	GatewayURL string
	Model      string
	APIKey     string
	UseMock    bool
	// HTTPTimeout bounds a single attempt, MaxRetryTime all attempts.
	HTTPTimeout  time.Duration
	MaxRetryTime time.Duration
}

var _ Advisor = (*Client)(nil)

// Client talks to an OpenAI style chat completions gateway.
type Client struct {
	cfg  Config
	http *http.Client
	log  *logger.Logger
}

func New(cfg Config) *Client {
	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = 25 * time.Second
	}
	if cfg.MaxRetryTime <= 0 {
		cfg.MaxRetryTime = 45 * time.Second
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.HTTPTimeout},
		log:  logger.New().Component("advisor"),
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Advise sends the prompt and returns choices[0].message.content. Server
// errors and transport failures are retried with exponential backoff;
// 4xx responses are not.
func (c *Client) Advise(ctx context.Context, prompt string) (string, error) {
	if c.cfg.UseMock {
		c.log.Info("mock LLM mode ON - returning deterministic advice")
		return MockAdvice, nil
	}
	if c.cfg.GatewayURL == "" {
		return "", ErrNotConfigured
	}

	data, err := json.Marshal(chatRequest{
		Model:       c.cfg.Model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: 0.2,
	})
	if err != nil {
		return "", fmt.Errorf("marshal llm request: %w", err)
	}
	c.log.WithField("payload_len", len(data)).Debug("LLM request payload")

	var advice string
	var lastErr error

	op := func() error {
		attemptCtx, cancel := context.WithTimeout(ctx, c.cfg.HTTPTimeout)
		defer cancel()

		req, err := http.NewRequestWithContext(attemptCtx, http.MethodPost, c.cfg.GatewayURL, bytes.NewReader(data))
		if err != nil {
			lastErr = err
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")
		if c.cfg.APIKey != "" {
			req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
		}

		resp, err := c.http.Do(req)
		if err != nil {
			lastErr = err
			c.log.WithError(err).Warn("llm request failed")
			return err
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			lastErr = fmt.Errorf("read llm response: %w", err)
			return lastErr
		}
		c.log.WithField("http_status", resp.StatusCode).Debug("llm response received")

		switch {
		case resp.StatusCode >= 400 && resp.StatusCode < 500:
			lastErr = fmt.Errorf("llm gateway rejected request: %d %s", resp.StatusCode, snippet(body))
			return backoff.Permanent(lastErr)
		case resp.StatusCode >= 500:
			lastErr = fmt.Errorf("llm server error: %d %s", resp.StatusCode, snippet(body))
			return lastErr
		}

		content, err := extractContent(body)
		if err != nil {
			lastErr = err
			return lastErr
		}
		advice = content
		lastErr = nil
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = c.cfg.MaxRetryTime

	if err := backoff.Retry(op, backoff.WithContext(b, ctx)); err != nil {
		if lastErr == nil {
			lastErr = err
		}
		return "", fmt.Errorf("llm advice failed: %w", lastErr)
	}
	return advice, nil
}

// extractContent reads choices[0].message.content.
func extractContent(body []byte) (string, error) {
	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("parse llm response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", errors.New("llm response has no choices")
	}
	content := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if content == "" {
		return "", errors.New("llm response content is empty")
	}
	return content, nil
}

func snippet(body []byte) string {
	const limit = 200
	s := strings.TrimSpace(string(body))
	if len(s) > limit {
		return s[:limit] + "..."
	}
	return s
}
