package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/alienxp03/splitdecision/internal/core"
	"github.com/alienxp03/splitdecision/internal/llm"
	"github.com/alienxp03/splitdecision/internal/prompt"
)

// handleStream runs one model call on the shared key and forwards the text
// as a chunked plain-text response. The client owns debate orchestration and
// calls this endpoint once per agent turn and once for the verdict.
func (h *Handler) handleStream(w http.ResponseWriter, r *http.Request) {
	if !h.checkRateLimit(w, r) {
		return
	}
	if h.client == nil {
		h.jsonError(w, errFreeTierMissing, http.StatusInternalServerError)
		return
	}

	var req core.StreamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		h.jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Model == "" {
		req.Model = h.model
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		h.logger.Error("streaming unsupported: ResponseWriter does not implement http.Flusher")
		h.jsonError(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	params := prompt.Resolve(req)
	chunks, err := h.client.Stream(r.Context(), llm.ChatRequest{
		Model:       params.Model,
		System:      params.System,
		User:        params.User,
		MaxTokens:   params.MaxTokens,
		Temperature: params.Temperature,
	})
	if err != nil {
		h.logger.Error("stream start failed", "error", err, "type", req.Type, "agent", req.AgentKey)
		h.jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)

	for chunk := range chunks {
		if chunk.Err != nil {
			// Headers are already sent; the best we can do is log and cut
			// the stream short.
			h.logger.Error("stream failed mid-flight", "error", chunk.Err, "type", req.Type, "agent", req.AgentKey)
			return
		}
		if _, err := fmt.Fprint(w, chunk.Text); err != nil {
			return
		}
		flusher.Flush()
	}
}
