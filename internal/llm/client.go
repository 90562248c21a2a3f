// Package llm talks to an OpenAI-compatible chat-completion endpoint.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/songwish/apiserver/config"
	"github.com/songwish/apiserver/internal/upstream"
)

const (
	defaultTimeout = 30 * time.Second

	// Low temperature keeps repeated generations close to deterministic.
	completionTemperature = 0.2

	roleUser = "user"
)

// Client calls the chat-completions API of an OpenAI-compatible provider.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewClient constructs a Client from config.
func NewClient(cfg config.LLMConfig) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = strings.TrimRight(config.DefaultLLMBaseURL, "/")
	}
	model := cfg.Model
	if model == "" {
		model = config.DefaultLLMModel
	}

	return &Client{
		baseURL:    baseURL,
		apiKey:     cfg.APIKey,
		model:      model,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Temperature float64       `json:"temperature"`
	Messages    []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends prompt as a single user-role message and returns the first
// choice's content, trimmed of surrounding whitespace.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:       c.model,
		Temperature: completionTemperature,
		Messages:    []chatMessage{{Role: roleUser, Content: prompt}},
	})
	if err != nil {
		return "", err
	}

	url := c.baseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", upstream.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return "", fmt.Errorf("%w: completion status %d", upstream.ErrUnavailable, resp.StatusCode)
	}

	var decoded chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("%w: %v", upstream.ErrBadPayload, err)
	}
	if len(decoded.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices", upstream.ErrBadPayload)
	}

	content := strings.TrimSpace(decoded.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("%w: empty completion", upstream.ErrBadPayload)
	}
	return content, nil
}
