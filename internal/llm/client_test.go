package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestComplete(t *testing.T) {
	var gotAuth string
	var gotReq apiRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		fmt.Fprint(w, `{"choices":[{"message":{"role":"assistant","content":"  hello there  "}}]}`)
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))
	got, err := client.Complete(context.Background(), ChatRequest{
		Model:       "gpt-4o-mini",
		System:      "sys",
		User:        "usr",
		MaxTokens:   60,
		Temperature: 0.5,
	})
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if got != "hello there" {
		t.Errorf("expected trimmed content, got %q", got)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("expected bearer auth, got %q", gotAuth)
	}
	if gotReq.Stream {
		t.Error("expected stream=false for Complete")
	}
	if len(gotReq.Messages) != 2 || gotReq.Messages[0].Role != "system" || gotReq.Messages[1].Role != "user" {
		t.Errorf("unexpected messages: %+v", gotReq.Messages)
	}
	if gotReq.MaxTokens != 60 {
		t.Errorf("expected max_tokens 60, got %d", gotReq.MaxTokens)
	}
}

func TestCompleteAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error":{"message":"Incorrect API key provided"}}`)
	}))
	defer server.Close()

	client := NewClient("bad-key", WithBaseURL(server.URL))
	_, err := client.Complete(context.Background(), ChatRequest{Model: "gpt-4o-mini", User: "x"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "Incorrect API key provided") {
		t.Errorf("expected API message in error, got %v", err)
	}
}

func TestStream(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req apiRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if !req.Stream {
			t.Error("expected stream=true")
		}

		w.Header().Set("Content-Type", "text/event-stream")
		flusher := w.(http.Flusher)
		for _, text := range []string{"Hel", "lo", " world"} {
			fmt.Fprintf(w, "data: {\"choices\":[{\"delta\":{\"content\":%q}}]}\n\n", text)
			flusher.Flush()
		}
		fmt.Fprint(w, "data: {\"choices\":[{\"delta\":{}}]}\n\n")
		fmt.Fprint(w, "data: [DONE]\n\n")
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))
	ch, err := client.Stream(context.Background(), ChatRequest{Model: "gpt-4o-mini", User: "x"})
	if err != nil {
		t.Fatalf("Stream failed: %v", err)
	}

	var got strings.Builder
	for chunk := range ch {
		if chunk.Err != nil {
			t.Fatalf("unexpected stream error: %v", chunk.Err)
		}
		got.WriteString(chunk.Text)
	}
	if got.String() != "Hello world" {
		t.Errorf("expected %q, got %q", "Hello world", got.String())
	}
}

func TestStreamErrorBeforeFirstByte(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `{"error":{"message":"Rate limit reached"}}`)
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))
	_, err := client.Stream(context.Background(), ChatRequest{Model: "gpt-4o-mini", User: "x"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "Rate limit reached") {
		t.Errorf("expected API message in error, got %v", err)
	}
}

func TestModerate(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		flagged    bool
		categories []string
	}{
		{
			name:    "clean input",
			body:    `{"results":[{"flagged":false,"categories":{}}]}`,
			flagged: false,
		},
		{
			name:       "flagged sorts categories",
			body:       `{"results":[{"flagged":true,"categories":{"violence":true,"harassment/threatening":true,"self_harm":false}}]}`,
			flagged:    true,
			categories: []string{"harassment/threatening", "violence"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/moderations" {
					t.Errorf("unexpected path %q", r.URL.Path)
				}
				fmt.Fprint(w, tt.body)
			}))
			defer server.Close()

			client := NewClient("test-key", WithBaseURL(server.URL))
			got, err := client.Moderate(context.Background(), "some input")
			if err != nil {
				t.Fatalf("Moderate failed: %v", err)
			}
			if got.Flagged != tt.flagged {
				t.Errorf("expected flagged=%v, got %v", tt.flagged, got.Flagged)
			}
			if len(got.Categories) != len(tt.categories) {
				t.Fatalf("expected categories %v, got %v", tt.categories, got.Categories)
			}
			for i, c := range tt.categories {
				if got.Categories[i] != c {
					t.Errorf("expected categories %v, got %v", tt.categories, got.Categories)
					break
				}
			}
		})
	}
}
