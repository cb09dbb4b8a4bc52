package intent

import (
	"strings"
	"time"

	"fjacquet/quicklog/internal/dateutils"
)

// relativeDates are tried in order and only the first match shifts the date.
var relativeDates = []struct {
	phrase string
	days   int
}{
	{"tomorrow", 1},
	{"next week", 7},
}

// resolveDate returns now shifted by the first relative phrase in normalized.
// Unrecognised phrases such as "next month" leave the date at now.
func resolveDate(normalized string, now time.Time) time.Time {
	for _, rd := range relativeDates {
		if strings.Contains(normalized, rd.phrase) {
			return dateutils.AddDays(now, rd.days)
		}
	}
	return now
}
