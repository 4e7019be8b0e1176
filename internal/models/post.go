package models

// RewriteRequest is the payload for POST /api/rewrite.
type RewriteRequest struct {
	Text       string `json:"text"`
	Mode       string `json:"mode"` // "hook", "rephrase" or "custom"
	Lowercase  bool   `json:"lowercase"`
	CustomNote string `json:"customNote"`
}

// PunchlineRequest is the payload for POST /api/punchline.
type PunchlineRequest struct {
	Text string `json:"text"`
	Vibe string `json:"vibe"`
}

// ComposeRequest is the payload for POST /api/compose.
type ComposeRequest struct {
	Topic     string `json:"topic"`
	Lowercase bool   `json:"lowercase"`
}

// PostResponse carries a rewritten or composed post body. Mock is set when
// the text was generated locally instead of by the provider.
type PostResponse struct {
	After string `json:"after"`
	Mock  bool   `json:"mock,omitempty"`
}

type PunchlineResponse struct {
	Punchline string `json:"punchline"`
	Mock      bool   `json:"mock,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
