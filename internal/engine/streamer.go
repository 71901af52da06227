package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/alienxp03/splitdecision/internal/core"
	"github.com/alienxp03/splitdecision/internal/gate"
	"github.com/alienxp03/splitdecision/internal/llm"
	"github.com/alienxp03/splitdecision/internal/prompt"
)

// DirectStreamer calls the OpenAI API with the caller's own key.
type DirectStreamer struct {
	client *llm.Client
}

// NewDirectStreamer wraps an LLM client as a Streamer.
func NewDirectStreamer(client *llm.Client) *DirectStreamer {
	return &DirectStreamer{client: client}
}

// Stream resolves the request into prompt parameters and streams the
// completion.
func (d *DirectStreamer) Stream(ctx context.Context, req core.StreamRequest) (<-chan StreamEvent, error) {
	params := prompt.Resolve(req)

	chunks, err := d.client.Stream(ctx, llm.ChatRequest{
		Model:       params.Model,
		System:      params.System,
		User:        params.User,
		MaxTokens:   params.MaxTokens,
		Temperature: params.Temperature,
	})
	if err != nil {
		return nil, err
	}

	events := make(chan StreamEvent)
	go func() {
		defer close(events)
		for chunk := range chunks {
			events <- StreamEvent{Text: chunk.Text, Err: chunk.Err}
		}
	}()
	return events, nil
}

// ProxyStreamer sends stream requests to a SplitDecision server, which holds
// the shared key and applies rate limiting.
type ProxyStreamer struct {
	baseURL    string
	httpClient *http.Client
}

// NewProxyStreamer creates a Streamer backed by the server at baseURL.
func NewProxyStreamer(baseURL string) *ProxyStreamer {
	return &ProxyStreamer{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

// Stream posts the request to the server's stream endpoint and forwards the
// chunked plain-text response.
func (p *ProxyStreamer) Stream(ctx context.Context, req core.StreamRequest) (<-chan StreamEvent, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/api/stream", bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%s", serverErrorMessage(resp.StatusCode, body))
	}

	events := make(chan StreamEvent)
	go func() {
		defer resp.Body.Close()
		defer close(events)

		buf := make([]byte, 4096)
		for {
			n, err := resp.Body.Read(buf)
			if n > 0 {
				select {
				case events <- StreamEvent{Text: string(buf[:n])}:
				case <-ctx.Done():
					return
				}
			}
			if err != nil {
				if err != io.EOF {
					events <- StreamEvent{Err: fmt.Errorf("stream read failed: %w", err)}
				}
				return
			}
		}
	}()
	return events, nil
}

// serverErrorMessage extracts the server's JSON error field, falling back to
// a generic message per status.
func serverErrorMessage(status int, body []byte) string {
	var e struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &e); err == nil && e.Error != "" {
		return e.Error
	}
	return fmt.Sprintf("server error: status %d", status)
}

// DirectValidator runs the input gate against the OpenAI API directly.
type DirectValidator struct {
	gate *gate.Gate
}

// NewDirectValidator wraps a gate as a Validator.
func NewDirectValidator(g *gate.Gate) *DirectValidator {
	return &DirectValidator{gate: g}
}

func (d *DirectValidator) Check(ctx context.Context, optionA, optionB string) (gate.Result, error) {
	return d.gate.Check(ctx, optionA, optionB)
}

// ProxyValidator asks a SplitDecision server to validate the input pair.
type ProxyValidator struct {
	baseURL    string
	httpClient *http.Client
}

// NewProxyValidator creates a Validator backed by the server at baseURL.
func NewProxyValidator(baseURL string) *ProxyValidator {
	return &ProxyValidator{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (p *ProxyValidator) Check(ctx context.Context, optionA, optionB string) (gate.Result, error) {
	payload, err := json.Marshal(map[string]string{
		"optionA": optionA,
		"optionB": optionB,
	})
	if err != nil {
		return gate.Result{}, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/api/validate", bytes.NewReader(payload))
	if err != nil {
		return gate.Result{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return gate.Result{}, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return gate.Result{}, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return gate.Result{}, fmt.Errorf("%s", serverErrorMessage(resp.StatusCode, body))
	}

	var result gate.Result
	if err := json.Unmarshal(body, &result); err != nil {
		return gate.Result{}, fmt.Errorf("failed to parse response: %w", err)
	}
	return result, nil
}
