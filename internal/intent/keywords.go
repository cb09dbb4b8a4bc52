package intent

import "strings"

// Trigger words per intent, matched as substrings of the lower-cased message.
var (
	reminderKeywords = []string{"remind", "reminder"}
	spendVerbs       = []string{"spent", "cost", "paid"}
	taskKeywords     = []string{"task", "add", "todo", "to-do"}
	noteKeywords     = []string{"note", "remember", "save"}
)

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
