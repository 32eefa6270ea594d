package export

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// FormatDate renders a date as "Jan 2006" (three-letter English month plus
// year). A nil/zero date renders as an empty string, never an error.
func FormatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format("Jan 2006")
}

// FormatGrade renders a grade value with its minimal decimal representation:
// 8.50 -> "8.5", 75.00 -> "75".
func FormatGrade(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

var lineBreaks = regexp.MustCompile(`\r\n|\n|\r`)

// SplitBullets turns a rich-text description into one bullet per non-blank
// line. Inline markup is stripped, never copied verbatim into a document.
func SplitBullets(description string) []string {
	var out []string
	for _, line := range lineBreaks.Split(description, -1) {
		line = strings.TrimSpace(stripTags(line))
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

var tagPattern = regexp.MustCompile(`<[^>]*>`)

func stripTags(s string) string {
	return tagPattern.ReplaceAllString(s, "")
}

var disallowedFilename = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// SanitizeFilename derives a safe base filename from a resume title. Runs of
// disallowed characters collapse to a single underscore, then leading and
// trailing underscores are trimmed. Empty titles fall back to "resume".
func SanitizeFilename(title string) string {
	name := disallowedFilename.ReplaceAllString(title, "_")
	name = strings.Trim(name, "_")
	if name == "" {
		return "resume"
	}
	return name
}
