package models

// ChatMessage represents a single message in a conversation.
type ChatMessage struct {
	Role    string `json:"role"` // "system" or "user"
	Content string `json:"content"`
}

// GenerationOptions carries the provider generation parameters a route may
// set per call.
type GenerationOptions struct {
	MaxTokens   int
	Temperature *float32
}
