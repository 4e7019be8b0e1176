package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/go-logr/logr"

	"postcraft-backend/internal/models"
	"postcraft-backend/internal/services"
	"postcraft-backend/internal/textutil"
)

// stubLLM counts calls and replays a canned reply or error.
type stubLLM struct {
	live  bool
	reply string
	err   error
	calls int
}

func (s *stubLLM) Live() bool { return s.live }

func (s *stubLLM) Complete(ctx context.Context, messages []models.ChatMessage, opts models.GenerationOptions) (string, error) {
	s.calls++
	return s.reply, s.err
}

func post(t *testing.T, h http.HandlerFunc, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	jsonBody, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("Failed to marshal request body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h(rr, req)
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.NewDecoder(rr.Body).Decode(out); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
}

func TestValidationRejectsMissingField(t *testing.T) {
	stub := &stubLLM{live: true}
	h := NewPostHandler(stub, logr.Discard())

	tests := []struct {
		name    string
		handler http.HandlerFunc
		body    interface{}
		wantErr string
	}{
		{"rewrite missing text", h.Rewrite, map[string]string{}, "text is required"},
		{"rewrite blank text", h.Rewrite, map[string]string{"text": "   "}, "text is required"},
		{"rewrite non-string text", h.Rewrite, map[string]interface{}{"text": 42}, "text is required"},
		{"punchline missing text", h.Punchline, map[string]string{"vibe": "direct"}, "text is required"},
		{"compose missing topic", h.Compose, map[string]string{}, "topic is required"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rr := post(t, tc.handler, tc.body)
			if rr.Code != http.StatusBadRequest {
				t.Fatalf("Expected 400, got %d", rr.Code)
			}
			var resp models.ErrorResponse
			decode(t, rr, &resp)
			if resp.Error != tc.wantErr {
				t.Errorf("Expected error %q, got %q", tc.wantErr, resp.Error)
			}
		})
	}

	if stub.calls != 0 {
		t.Errorf("Expected no provider calls for invalid input, got %d", stub.calls)
	}
}

func TestMockModeSkipsProvider(t *testing.T) {
	stub := &stubLLM{live: false}
	h := NewPostHandler(stub, logr.Discard())

	t.Run("rewrite", func(t *testing.T) {
		rr := post(t, h.Rewrite, map[string]string{"text": "ship it"})
		if rr.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", rr.Code)
		}
		var resp models.PostResponse
		decode(t, rr, &resp)
		if !resp.Mock {
			t.Error("Expected mock flag")
		}
		if resp.After == "" || utf8.RuneCountInString(resp.After) > textutil.TweetMax {
			t.Errorf("Expected non-empty bounded after, got %q", resp.After)
		}
	})

	t.Run("punchline", func(t *testing.T) {
		rr := post(t, h.Punchline, map[string]string{"text": "ship it"})
		if rr.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", rr.Code)
		}
		var resp models.PunchlineResponse
		decode(t, rr, &resp)
		if !resp.Mock || resp.Punchline == "" {
			t.Errorf("Expected mock punchline, got %+v", resp)
		}
	})

	t.Run("compose", func(t *testing.T) {
		rr := post(t, h.Compose, map[string]string{"topic": "coffee"})
		if rr.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", rr.Code)
		}
		var resp models.PostResponse
		decode(t, rr, &resp)
		if !resp.Mock || resp.After == "" {
			t.Errorf("Expected mock compose result, got %+v", resp)
		}
	})

	if stub.calls != 0 {
		t.Errorf("Expected no provider calls in mock mode, got %d", stub.calls)
	}
}

func TestMockPunchlineUsesVibeBank(t *testing.T) {
	h := NewPostHandler(&stubLLM{live: false}, logr.Discard())

	for i := 0; i < 10; i++ {
		rr := post(t, h.Punchline, map[string]string{"text": "ship it", "vibe": "direct"})
		var resp models.PunchlineResponse
		decode(t, rr, &resp)
		if !slices.Contains(punchlineBank["direct"], resp.Punchline) {
			t.Fatalf("Punchline %q not in the direct bank", resp.Punchline)
		}
	}
}

func TestMockPunchlineUnknownVibeFallsBack(t *testing.T) {
	for i := 0; i < 10; i++ {
		p := mockPunchline("galactic")
		if !slices.Contains(punchlineBank["direct"], p) {
			t.Fatalf("Unknown vibe should fall back to direct bank, got %q", p)
		}
	}
}

func TestMockComposeLowercaseContainsTopic(t *testing.T) {
	h := NewPostHandler(&stubLLM{live: false}, logr.Discard())

	rr := post(t, h.Compose, map[string]interface{}{"topic": "coffee", "lowercase": true})
	var resp models.PostResponse
	decode(t, rr, &resp)

	if !strings.Contains(resp.After, "coffee") {
		t.Errorf("Expected topic in output, got %q", resp.After)
	}
	if resp.After != strings.ToLower(resp.After) {
		t.Errorf("Expected lowercase output, got %q", resp.After)
	}
	if utf8.RuneCountInString(resp.After) > textutil.TweetMax {
		t.Errorf("Output exceeds %d characters", textutil.TweetMax)
	}
}

func TestLiveParsesFieldFromReply(t *testing.T) {
	stub := &stubLLM{live: true, reply: `{"after": "shipped, finally"}`}
	h := NewPostHandler(stub, logr.Discard())

	rr := post(t, h.Rewrite, map[string]string{"text": "we shipped"})
	var resp models.PostResponse
	decode(t, rr, &resp)

	if resp.After != "shipped, finally" {
		t.Errorf("Expected parsed field, got %q", resp.After)
	}
	if resp.Mock {
		t.Error("Live result must not carry the mock flag")
	}
	if stub.calls != 1 {
		t.Errorf("Expected exactly one provider call, got %d", stub.calls)
	}
}

func TestLiveMalformedReplyFallsBackToRaw(t *testing.T) {
	stub := &stubLLM{live: true, reply: "just a plain sentence, no JSON"}
	h := NewPostHandler(stub, logr.Discard())

	rr := post(t, h.Rewrite, map[string]string{"text": "we shipped"})
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200 for malformed reply, got %d", rr.Code)
	}

	var resp models.PostResponse
	decode(t, rr, &resp)
	if resp.After != "just a plain sentence, no JSON" {
		t.Errorf("Expected raw reply as value, got %q", resp.After)
	}
}

func TestLiveEmptyReplyFallsBackToInput(t *testing.T) {
	stub := &stubLLM{live: true, reply: ""}
	h := NewPostHandler(stub, logr.Discard())

	rr := post(t, h.Rewrite, map[string]string{"text": "original   text"})
	var resp models.PostResponse
	decode(t, rr, &resp)

	if resp.After != "original text" {
		t.Errorf("Expected clamped original input, got %q", resp.After)
	}
}

func TestLiveEmptyReplyPunchlineDefault(t *testing.T) {
	stub := &stubLLM{live: true, reply: `{"punchline": ""}`}
	h := NewPostHandler(stub, logr.Discard())

	rr := post(t, h.Punchline, map[string]string{"text": "ship it"})
	var resp models.PunchlineResponse
	decode(t, rr, &resp)

	if resp.Punchline != defaultPunchline {
		t.Errorf("Expected default punchline, got %q", resp.Punchline)
	}
}

func TestProviderErrorReturnsGeneric500(t *testing.T) {
	stub := &stubLLM{live: true, err: &services.ProviderError{StatusCode: 500, Body: "model overloaded"}}
	h := NewPostHandler(stub, logr.Discard())

	rr := post(t, h.Rewrite, map[string]string{"text": "we shipped"})
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("Expected 500, got %d", rr.Code)
	}

	body := rr.Body.String()
	var resp models.ErrorResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("Failed to decode 500 body: %v", err)
	}
	if resp.Error != "Something went wrong" {
		t.Errorf("Expected generic error, got %q", resp.Error)
	}
	if strings.Contains(body, "overloaded") {
		t.Error("Provider detail must not leak to the client")
	}
}

func TestRewriteOutputIsBounded(t *testing.T) {
	longReply := `{"after": "` + strings.Repeat("a", 500) + `"}`
	stub := &stubLLM{live: true, reply: longReply}
	h := NewPostHandler(stub, logr.Discard())

	rr := post(t, h.Rewrite, map[string]string{"text": "we shipped"})
	var resp models.PostResponse
	decode(t, rr, &resp)

	if n := utf8.RuneCountInString(resp.After); n > textutil.TweetMax {
		t.Errorf("Output has %d runes, want <= %d", n, textutil.TweetMax)
	}
}

func TestRewriteLowercaseFlag(t *testing.T) {
	stub := &stubLLM{live: true, reply: `{"after": "We Shipped It"}`}
	h := NewPostHandler(stub, logr.Discard())

	rr := post(t, h.Rewrite, map[string]interface{}{"text": "we shipped", "lowercase": true})
	var resp models.PostResponse
	decode(t, rr, &resp)

	if resp.After != "we shipped it" {
		t.Errorf("Expected lowercased output, got %q", resp.After)
	}
}
