package textutil

import "strings"

// TweetMax is the maximum length of a post body, in characters.
const TweetMax = 280

const (
	hookPrefix = "hot take: "
	ellipsis   = "…"
)

// Clamp collapses whitespace runs to single spaces, trims both ends, and if
// the result is longer than max characters, truncates it and marks the cut
// with a single ellipsis. Counts runes, not bytes.
func Clamp(text string, max int) string {
	collapsed := strings.Join(strings.Fields(text), " ")
	runes := []rune(collapsed)
	if len(runes) <= max {
		return collapsed
	}
	if max < 1 {
		return ""
	}
	return string(runes[:max-1]) + ellipsis
}

// LowercaseHook lowercases the text, strips any leading run of whitespace or
// dash characters, prepends the hook phrase and clamps the result to TweetMax.
func LowercaseHook(text string) string {
	lowered := strings.ToLower(text)
	lowered = strings.TrimLeft(lowered, " \t\n\r-–—")
	return Clamp(hookPrefix+lowered, TweetMax)
}
