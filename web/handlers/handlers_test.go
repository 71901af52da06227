package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/alienxp03/splitdecision/internal/core"
	"github.com/alienxp03/splitdecision/internal/gate"
	"github.com/alienxp03/splitdecision/internal/history"
	"github.com/alienxp03/splitdecision/internal/llm"
	"github.com/alienxp03/splitdecision/internal/ratelimit"
)

// fakeOpenAI pretends to be the upstream API: moderation always passes,
// completions answer "VALID", and streams replay streamText.
func fakeOpenAI(t *testing.T, streamText []string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/moderations":
			fmt.Fprint(w, `{"results":[{"flagged":false,"categories":{}}]}`)
		case "/chat/completions":
			var req struct {
				Stream bool `json:"stream"`
			}
			json.NewDecoder(r.Body).Decode(&req)
			if !req.Stream {
				fmt.Fprint(w, `{"choices":[{"message":{"role":"assistant","content":"VALID"}}]}`)
				return
			}
			flusher := w.(http.Flusher)
			for _, text := range streamText {
				fmt.Fprintf(w, "data: {\"choices\":[{\"delta\":{\"content\":%q}}]}\n\n", text)
				flusher.Flush()
			}
			fmt.Fprint(w, "data: [DONE]\n\n")
		default:
			t.Errorf("unexpected upstream path %q", r.URL.Path)
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

type testDeps struct {
	handler *Handler
	limiter *ratelimit.Limiter
	store   history.Store
}

func setupTest(t *testing.T, limit int) *testDeps {
	t.Helper()

	upstream := fakeOpenAI(t, []string{"Hello ", "world"})
	client := llm.NewClient("test-key", llm.WithBaseURL(upstream.URL))

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	limiter := ratelimit.New(rdb, limit)
	store := history.NewRedisStore(rdb)
	g := gate.New(client, "", nil)

	return &testDeps{
		handler: New(client, g, limiter, store, "", nil),
		limiter: limiter,
		store:   store,
	}
}

func doJSON(t *testing.T, router http.Handler, method, path string, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Forwarded-For", "1.2.3.4")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestValidate(t *testing.T) {
	deps := setupTest(t, 50)
	router := deps.handler.Router()

	w := doJSON(t, router, http.MethodPost, "/api/validate", `{"optionA":"pizza","optionB":"tacos"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var result gate.Result
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !result.Valid {
		t.Errorf("expected valid result, got %+v", result)
	}
}

func TestValidateMissingOptions(t *testing.T) {
	deps := setupTest(t, 50)
	router := deps.handler.Router()

	w := doJSON(t, router, http.MethodPost, "/api/validate", `{"optionA":"  ","optionB":"tacos"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestValidateNoServerKey(t *testing.T) {
	h := New(nil, nil, nil, nil, "", nil)
	router := h.Router()

	w := doJSON(t, router, http.MethodPost, "/api/validate", `{"optionA":"a","optionB":"b"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), errNoServerKey) {
		t.Errorf("expected no-key message, got %s", w.Body.String())
	}
}

func TestStream(t *testing.T) {
	deps := setupTest(t, 50)
	router := deps.handler.Router()

	body := `{"type":"agent","agentKey":"analyst","theme":"default","roundNum":1,"optionA":"pizza","optionB":"tacos"}`
	w := doJSON(t, router, http.MethodPost, "/api/stream", body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if got := w.Body.String(); got != "Hello world" {
		t.Errorf("expected streamed text, got %q", got)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("expected text/plain response, got %q", ct)
	}
}

func TestStreamInvalidRequest(t *testing.T) {
	deps := setupTest(t, 50)
	router := deps.handler.Router()

	tests := []struct {
		name string
		body string
	}{
		{"missing options", `{"type":"verdict"}`},
		{"unknown agent", `{"type":"agent","agentKey":"oracle","roundNum":1,"optionA":"a","optionB":"b"}`},
		{"bad round", `{"type":"agent","agentKey":"analyst","roundNum":3,"optionA":"a","optionB":"b"}`},
		{"unknown type", `{"type":"summary","optionA":"a","optionB":"b"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, router, http.MethodPost, "/api/stream", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestStreamUpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"model overloaded"}}`, http.StatusServiceUnavailable)
	}))
	t.Cleanup(upstream.Close)

	client := llm.NewClient("test-key", llm.WithBaseURL(upstream.URL))
	h := New(client, nil, nil, nil, "", nil)

	body := `{"type":"agent","agentKey":"analyst","theme":"default","roundNum":1,"optionA":"pizza","optionB":"tacos"}`
	w := doJSON(t, h.Router(), http.MethodPost, "/api/stream", body)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d: %s", w.Code, w.Body.String())
	}
}

func TestStreamNoFreeTier(t *testing.T) {
	h := New(nil, nil, nil, nil, "", nil)
	router := h.Router()

	w := doJSON(t, router, http.MethodPost, "/api/stream", `{"type":"verdict","optionA":"a","optionB":"b"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), errFreeTierMissing) {
		t.Errorf("expected free-tier message, got %s", w.Body.String())
	}
}

func TestStreamRateLimited(t *testing.T) {
	deps := setupTest(t, 1)
	router := deps.handler.Router()

	body := `{"type":"verdict","optionA":"pizza","optionB":"tacos"}`
	if w := doJSON(t, router, http.MethodPost, "/api/stream", body); w.Code != http.StatusOK {
		t.Fatalf("first request should pass, got %d", w.Code)
	}

	w := doJSON(t, router, http.MethodPost, "/api/stream", body)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), errRateLimited) {
		t.Errorf("expected rate limit message, got %s", w.Body.String())
	}
}

func TestRateLimitKeyedByForwardedFor(t *testing.T) {
	deps := setupTest(t, 1)
	router := deps.handler.Router()

	body := `{"type":"verdict","optionA":"pizza","optionB":"tacos"}`

	req := httptest.NewRequest(http.MethodPost, "/api/stream", strings.NewReader(body))
	req.Header.Set("X-Forwarded-For", "9.9.9.9, 10.0.0.1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	// A different client still has quota.
	req = httptest.NewRequest(http.MethodPost, "/api/stream", strings.NewReader(body))
	req.Header.Set("X-Forwarded-For", "8.8.8.8")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("expected separate quota per client, got %d", w.Code)
	}
}

func TestComparisonsEmpty(t *testing.T) {
	deps := setupTest(t, 50)
	router := deps.handler.Router()

	w := doJSON(t, router, http.MethodGet, "/api/comparisons", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := strings.TrimSpace(w.Body.String()); got != "[]" {
		t.Errorf("expected empty array, got %s", got)
	}
}

func TestComparisonsStoreErrorReturnsEmpty(t *testing.T) {
	upstream := fakeOpenAI(t, nil)
	client := llm.NewClient("test-key", llm.WithBaseURL(upstream.URL))

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	mr.Close()

	h := New(client, nil, nil, history.NewRedisStore(rdb), "", nil)
	w := doJSON(t, h.Router(), http.MethodGet, "/api/comparisons", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 despite store failure, got %d", w.Code)
	}
	if got := strings.TrimSpace(w.Body.String()); got != "[]" {
		t.Errorf("expected empty array, got %s", got)
	}
}

func TestSaveComparison(t *testing.T) {
	deps := setupTest(t, 50)
	router := deps.handler.Router()

	body := `{"optionA":"pizza","optionB":"tacos","theme":"default","winner":"pizza","confidence":80}`
	w := doJSON(t, router, http.MethodPost, "/api/comparisons", body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"ok":true`) {
		t.Errorf("expected ok response, got %s", w.Body.String())
	}

	w = doJSON(t, router, http.MethodGet, "/api/comparisons", "")
	var records []core.ComparisonRecord
	if err := json.Unmarshal(w.Body.Bytes(), &records); err != nil {
		t.Fatalf("failed to decode records: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Category != "General" {
		t.Errorf("expected default category, got %q", records[0].Category)
	}
}

func TestComparisonsLimit(t *testing.T) {
	deps := setupTest(t, 50)
	router := deps.handler.Router()

	for i := 0; i < 3; i++ {
		body := fmt.Sprintf(`{"optionA":"a-%d","optionB":"b-%d","theme":"default","winner":"a-%d","confidence":80}`, i, i, i)
		if w := doJSON(t, router, http.MethodPost, "/api/comparisons", body); w.Code != http.StatusOK {
			t.Fatalf("save failed with %d: %s", w.Code, w.Body.String())
		}
	}

	w := doJSON(t, router, http.MethodGet, "/api/comparisons?limit=2", "")
	var records []core.ComparisonRecord
	if err := json.Unmarshal(w.Body.Bytes(), &records); err != nil {
		t.Fatalf("failed to decode records: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].OptionA != "a-2" {
		t.Errorf("expected newest record first, got %q", records[0].OptionA)
	}
}

func TestSaveComparisonStampsTimestamp(t *testing.T) {
	deps := setupTest(t, 50)
	router := deps.handler.Router()

	before := time.Now().UnixMilli()
	body := `{"optionA":"pizza","optionB":"tacos","theme":"default","winner":"pizza","confidence":80,"timestamp":12345}`
	if w := doJSON(t, router, http.MethodPost, "/api/comparisons", body); w.Code != http.StatusOK {
		t.Fatalf("save failed with %d: %s", w.Code, w.Body.String())
	}

	w := doJSON(t, router, http.MethodGet, "/api/comparisons", "")
	var records []core.ComparisonRecord
	if err := json.Unmarshal(w.Body.Bytes(), &records); err != nil {
		t.Fatalf("failed to decode records: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Timestamp < before {
		t.Errorf("expected server-assigned timestamp, got %d", records[0].Timestamp)
	}
}

func TestSaveComparisonRejects(t *testing.T) {
	deps := setupTest(t, 50)
	router := deps.handler.Router()

	tests := []struct {
		name string
		body string
		want string
	}{
		{"missing fields", `{"optionA":"pizza"}`, "Missing required fields"},
		{"missing confidence", `{"optionA":"a","optionB":"b","theme":"default","winner":"a"}`, "Missing required fields"},
		{"invalid theme", `{"optionA":"a","optionB":"b","winner":"a","confidence":80,"theme":"bogus"}`, "Invalid theme"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, router, http.MethodPost, "/api/comparisons", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", w.Code)
			}
			if !strings.Contains(w.Body.String(), tt.want) {
				t.Errorf("expected %q, got %s", tt.want, w.Body.String())
			}
		})
	}
}

func TestThemesAndAgents(t *testing.T) {
	deps := setupTest(t, 50)
	router := deps.handler.Router()

	w := doJSON(t, router, http.MethodGet, "/api/themes", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var themes []struct {
		Key   string `json:"key"`
		Label string `json:"label"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &themes); err != nil {
		t.Fatalf("failed to decode themes: %v", err)
	}
	if len(themes) != 9 {
		t.Errorf("expected 9 themes, got %d", len(themes))
	}

	w = doJSON(t, router, http.MethodGet, "/api/agents", "")
	var agents []struct {
		Key  string `json:"key"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &agents); err != nil {
		t.Fatalf("failed to decode agents: %v", err)
	}
	if len(agents) != 4 {
		t.Errorf("expected 4 agents, got %d", len(agents))
	}
	if agents[0].Name != "The Analyst" {
		t.Errorf("expected canonical order, got first agent %q", agents[0].Name)
	}
}
