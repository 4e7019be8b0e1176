package handlers

import (
	"strings"

	"postcraft-backend/internal/models"
)

func buildPostSystem() string {
	var b strings.Builder

	b.WriteString("You write short social media posts.\n\n")
	b.WriteString("Rules:\n")
	b.WriteString("1. Stay under 280 characters.\n")
	b.WriteString("2. Plain text only. No hashtags, no emoji, no markdown.\n")
	b.WriteString("3. Keep the author's meaning and tone unless told otherwise.\n")
	b.WriteString("4. Return ONLY a valid JSON object. No preamble, no backticks.\n")

	return b.String()
}

func buildRewritePrompt(req models.RewriteRequest) string {
	var b strings.Builder

	switch req.Mode {
	case "hook":
		b.WriteString("Rewrite the post below as a scroll-stopping hook. Front-load the most surprising part.\n")
	case "custom":
		b.WriteString("Rewrite the post below.\n")
		if note := strings.TrimSpace(req.CustomNote); note != "" {
			b.WriteString("Instruction: " + note + "\n")
		}
	default:
		b.WriteString("Rephrase the post below so it reads better, keeping the meaning intact.\n")
	}

	if req.Lowercase {
		b.WriteString("Write entirely in lowercase.\n")
	}

	b.WriteString("\nReturn ONLY this JSON object: {\"after\": \"the rewritten post\"}\n")
	b.WriteString("\n---POST START---\n")
	b.WriteString(req.Text)
	b.WriteString("\n---POST END---\n")

	return b.String()
}

func buildPunchlinePrompt(req models.PunchlineRequest) string {
	var b strings.Builder

	b.WriteString("Write one short punchline that could close the post below. One sentence, no setup.\n")
	if vibe := strings.TrimSpace(req.Vibe); vibe != "" {
		b.WriteString("Vibe: " + vibe + "\n")
	}

	b.WriteString("\nReturn ONLY this JSON object: {\"punchline\": \"the punchline\"}\n")
	b.WriteString("\n---POST START---\n")
	b.WriteString(req.Text)
	b.WriteString("\n---POST END---\n")

	return b.String()
}

func buildComposePrompt(req models.ComposeRequest) string {
	var b strings.Builder

	b.WriteString("Write a single social media post about the topic below. Make it feel personal, not promotional.\n")
	if req.Lowercase {
		b.WriteString("Write entirely in lowercase.\n")
	}

	b.WriteString("\nReturn ONLY this JSON object: {\"after\": \"the post\"}\n")
	b.WriteString("\n---TOPIC START---\n")
	b.WriteString(req.Topic)
	b.WriteString("\n---TOPIC END---\n")

	return b.String()
}
