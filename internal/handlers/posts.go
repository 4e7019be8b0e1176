package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-logr/logr"

	"postcraft-backend/internal/models"
	"postcraft-backend/internal/services"
	"postcraft-backend/internal/textutil"
)

// completionClient is the slice of LLMService the post routes need.
type completionClient interface {
	Live() bool
	Complete(ctx context.Context, messages []models.ChatMessage, opts models.GenerationOptions) (string, error)
}

type PostHandler struct {
	llm completionClient
	log logr.Logger
}

func NewPostHandler(llm completionClient, log logr.Logger) *PostHandler {
	return &PostHandler{
		llm: llm,
		log: log,
	}
}

// generation describes one AI route's live prompt and mock generator. The
// shared dispatcher picks a path based on credential presence.
type generation struct {
	field       string // the one field the model must return
	user        string
	maxTokens   int
	temperature *float32
	fallback    string // used when the extracted value is empty
	mock        func() string
}

// generate runs the shared mock-or-live flow and returns the normalized
// value plus whether the mock path produced it.
func (h *PostHandler) generate(ctx context.Context, g generation) (string, bool, error) {
	if !h.llm.Live() {
		return g.mock(), true, nil
	}

	messages := []models.ChatMessage{
		{Role: "system", Content: buildPostSystem()},
		{Role: "user", Content: g.user},
	}
	raw, err := h.llm.Complete(ctx, messages, models.GenerationOptions{
		MaxTokens:   g.maxTokens,
		Temperature: g.temperature,
	})
	if err != nil {
		return "", false, err
	}

	value := strings.TrimSpace(services.ExtractField(raw, g.field))
	if value == "" {
		value = g.fallback
	}
	return value, false, nil
}

func (h *PostHandler) Rewrite(w http.ResponseWriter, r *http.Request) {
	var req models.RewriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "text is required"})
		return
	}

	switch req.Mode {
	case "hook", "rephrase", "custom":
	default:
		req.Mode = "rephrase"
	}

	out, mocked, err := h.generate(r.Context(), generation{
		field:     "after",
		user:      buildRewritePrompt(req),
		maxTokens: 200,
		fallback:  textutil.Clamp(req.Text, textutil.TweetMax),
		mock:      func() string { return mockRewrite(req) },
	})
	if err != nil {
		h.log.Error(err, "rewrite failed", "mode", req.Mode)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Something went wrong"})
		return
	}

	after := textutil.Clamp(out, textutil.TweetMax)
	if req.Lowercase {
		after = strings.ToLower(after)
	}
	writeJSON(w, http.StatusOK, models.PostResponse{After: after, Mock: mocked})
}

func (h *PostHandler) Punchline(w http.ResponseWriter, r *http.Request) {
	var req models.PunchlineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "text is required"})
		return
	}

	temperature := float32(0.9)
	out, mocked, err := h.generate(r.Context(), generation{
		field:       "punchline",
		user:        buildPunchlinePrompt(req),
		maxTokens:   120,
		temperature: &temperature,
		fallback:    defaultPunchline,
		mock:        func() string { return mockPunchline(req.Vibe) },
	})
	if err != nil {
		h.log.Error(err, "punchline failed", "vibe", req.Vibe)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Something went wrong"})
		return
	}

	writeJSON(w, http.StatusOK, models.PunchlineResponse{
		Punchline: textutil.Clamp(out, textutil.TweetMax),
		Mock:      mocked,
	})
}

func (h *PostHandler) Compose(w http.ResponseWriter, r *http.Request) {
	var req models.ComposeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Topic) == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "topic is required"})
		return
	}

	temperature := float32(0.8)
	out, mocked, err := h.generate(r.Context(), generation{
		field:       "after",
		user:        buildComposePrompt(req),
		maxTokens:   200,
		temperature: &temperature,
		fallback:    textutil.Clamp(req.Topic, textutil.TweetMax),
		mock:        func() string { return mockCompose(req.Topic) },
	})
	if err != nil {
		h.log.Error(err, "compose failed")
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Something went wrong"})
		return
	}

	after := textutil.Clamp(out, textutil.TweetMax)
	if req.Lowercase {
		after = strings.ToLower(after)
	}
	writeJSON(w, http.StatusOK, models.PostResponse{After: after, Mock: mocked})
}

// Shared helpers

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
