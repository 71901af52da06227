// Package llm is a minimal OpenAI API client covering the three call shapes
// this application needs: a one-shot chat completion, a streaming chat
// completion, and a moderation check.
package llm

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.openai.com/v1"

// Client talks to an OpenAI-compatible API with a single credential.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL points the client at a different API host. Used by tests and
// compatible gateways.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(url, "/")
	}
}

// WithHTTPClient swaps the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a client for the given API key.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ChatRequest is one system+user chat completion call.
type ChatRequest struct {
	Model       string
	System      string
	User        string
	MaxTokens   int
	Temperature float64
}

// Wire types for the chat completions endpoint.

type apiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type apiRequest struct {
	Model       string       `json:"model"`
	Messages    []apiMessage `json:"messages"`
	MaxTokens   int          `json:"max_tokens,omitempty"`
	Temperature float64      `json:"temperature"`
	Stream      bool         `json:"stream,omitempty"`
}

type apiResponse struct {
	Choices []struct {
		Message apiMessage `json:"message"`
	} `json:"choices"`
}

type streamResponse struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
		FinishReason *string `json:"finish_reason"`
	} `json:"choices"`
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// errorMessage extracts the API's reported message from an error body,
// falling back to the raw status.
func errorMessage(status int, body []byte) string {
	var e apiError
	if err := json.Unmarshal(body, &e); err == nil && e.Error.Message != "" {
		return e.Error.Message
	}
	return fmt.Sprintf("API error: status %d", status)
}

func (c *Client) post(ctx context.Context, path string, payload any) (*http.Response, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	return resp, nil
}

// Complete sends a non-streaming completion and returns the trimmed text.
func (c *Client) Complete(ctx context.Context, req ChatRequest) (string, error) {
	resp, err := c.post(ctx, "/chat/completions", apiRequest{
		Model: req.Model,
		Messages: []apiMessage{
			{Role: "system", Content: req.System},
			{Role: "user", Content: req.User},
		},
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	})
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%s", errorMessage(resp.StatusCode, body))
	}

	var out apiResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("response contained no choices")
	}
	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}

// StreamChunk is one fragment of a streamed completion. A chunk with a
// non-nil Err terminates the stream.
type StreamChunk struct {
	Text string
	Err  error
}

// Stream sends a streaming completion and returns a channel of text
// fragments. An error before the first byte is returned directly; errors
// mid-stream are delivered as the final chunk. The channel is closed when
// the stream ends. Cancelling ctx tears down the transport.
func (c *Client) Stream(ctx context.Context, req ChatRequest) (<-chan StreamChunk, error) {
	resp, err := c.post(ctx, "/chat/completions", apiRequest{
		Model: req.Model,
		Messages: []apiMessage{
			{Role: "system", Content: req.System},
			{Role: "user", Content: req.User},
		},
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
		Stream:      true,
	})
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, fmt.Errorf("%s", errorMessage(resp.StatusCode, body))
	}

	ch := make(chan StreamChunk)
	go func() {
		defer resp.Body.Close()
		defer close(ch)

		reader := bufio.NewReader(resp.Body)
		for {
			line, err := reader.ReadBytes('\n')
			if err != nil {
				if err != io.EOF {
					ch <- StreamChunk{Err: fmt.Errorf("stream read failed: %w", err)}
				}
				return
			}

			line = bytes.TrimSpace(line)
			if !bytes.HasPrefix(line, []byte("data: ")) {
				continue
			}
			line = bytes.TrimPrefix(line, []byte("data: "))
			if string(line) == "[DONE]" {
				return
			}

			var sr streamResponse
			if err := json.Unmarshal(line, &sr); err != nil {
				continue
			}
			if len(sr.Choices) == 0 {
				continue
			}
			if text := sr.Choices[0].Delta.Content; text != "" {
				select {
				case ch <- StreamChunk{Text: text}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return ch, nil
}

// Moderation is the outcome of a content-safety check.
type Moderation struct {
	Flagged    bool
	Categories []string
}

type moderationResponse struct {
	Results []struct {
		Flagged    bool            `json:"flagged"`
		Categories map[string]bool `json:"categories"`
	} `json:"results"`
}

// Moderate runs input through the moderations endpoint and returns the
// triggered category names sorted alphabetically.
func (c *Client) Moderate(ctx context.Context, input string) (Moderation, error) {
	resp, err := c.post(ctx, "/moderations", map[string]string{"input": input})
	if err != nil {
		return Moderation{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Moderation{}, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return Moderation{}, fmt.Errorf("%s", errorMessage(resp.StatusCode, body))
	}

	var out moderationResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return Moderation{}, fmt.Errorf("failed to parse response: %w", err)
	}
	if len(out.Results) == 0 {
		return Moderation{}, fmt.Errorf("response contained no results")
	}

	result := out.Results[0]
	if !result.Flagged {
		return Moderation{}, nil
	}

	categories := make([]string, 0, len(result.Categories))
	for name, triggered := range result.Categories {
		if triggered {
			categories = append(categories, name)
		}
	}
	sort.Strings(categories)
	return Moderation{Flagged: true, Categories: categories}, nil
}
