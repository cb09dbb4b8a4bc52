package intent

import (
	"regexp"
	"strings"
)

// Instruction phrases removed from reminders, tasks and notes, in order. Each
// pattern removes only its first occurrence, from what the previous ones left.
// "Add x to my tasks" therefore becomes "x to my s": task:? eats the "task"
// of "tasks" before "to my tasks?" gets its turn.
var (
	reminderPhrases = compilePhrases(`remind me to\s*`, `reminder:?\s*`)
	taskPhrases     = compilePhrases(`add\s*`, `task:?\s*`, `to my tasks?`, `todo:?\s*`, `to-do:?\s*`)
	notePhrases     = compilePhrases(`note:?\s*`, `remember:?\s*`, `save:?\s*`)
)

func compilePhrases(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(patterns))
	for i, pattern := range patterns {
		compiled[i] = regexp.MustCompile(`(?i)` + pattern)
	}
	return compiled
}

// stripPhrases applies each phrase removal once, in order, then trims.
func stripPhrases(text string, phrases []*regexp.Regexp) string {
	for _, phrase := range phrases {
		if loc := phrase.FindStringIndex(text); loc != nil {
			text = text[:loc[0]] + text[loc[1]:]
		}
	}
	return strings.TrimSpace(text)
}
