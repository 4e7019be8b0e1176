package handlers

import (
	"fmt"
	"math/rand"
	"strings"

	"postcraft-backend/internal/models"
	"postcraft-backend/internal/textutil"
)

// defaultPunchline is the fixed fallback when the live path returns nothing.
const defaultPunchline = "ship it and find out."

// punchlineBank holds four candidate closers per vibe. Unrecognized vibes
// fall back to "direct".
var punchlineBank = map[string][]string{
	"direct": {
		"stop overthinking it. ship.",
		"the answer was always just do the thing.",
		"done beats perfect, every single time.",
		"you already know what to do.",
	},
	"playful": {
		"anyway, back to pretending this was the plan.",
		"tell your group chat I said hi.",
		"this message brought to you by too much coffee.",
		"and yes, I will be taking zero questions.",
	},
	"spicy": {
		"and honestly? everyone else is doing it wrong.",
		"say it louder for the people in the back.",
		"the gatekeepers hate this one.",
		"block me if you must, I said what I said.",
	},
	"wholesome": {
		"proud of everyone out here trying.",
		"small steps still count.",
		"be kind to your past self, they got you here.",
		"someone needed to hear this today.",
	},
}

var rewriteLeads = []string{
	"real talk:",
	"okay but",
	"the more I sit with this:",
	"quick thought:",
}

var composeTemplates = []string{
	"been thinking about %s all week and honestly? it deserves more attention.",
	"unpopular opinion: %s is underrated.",
	"%s. that's it. that's the post.",
	"nobody tells you how much %s changes once you actually commit to it.",
}

func mockPunchline(vibe string) string {
	bank, ok := punchlineBank[strings.ToLower(strings.TrimSpace(vibe))]
	if !ok {
		bank = punchlineBank["direct"]
	}
	return bank[rand.Intn(len(bank))]
}

func mockRewrite(req models.RewriteRequest) string {
	switch req.Mode {
	case "hook":
		return textutil.LowercaseHook(req.Text)
	case "custom":
		if note := strings.TrimSpace(req.CustomNote); note != "" {
			return textutil.Clamp(req.Text+" ("+note+")", textutil.TweetMax)
		}
		return textutil.Clamp(req.Text, textutil.TweetMax)
	default:
		lead := rewriteLeads[rand.Intn(len(rewriteLeads))]
		return textutil.Clamp(lead+" "+req.Text, textutil.TweetMax)
	}
}

func mockCompose(topic string) string {
	tmpl := composeTemplates[rand.Intn(len(composeTemplates))]
	return textutil.Clamp(fmt.Sprintf(tmpl, topic), textutil.TweetMax)
}
