package highlight

import (
	"encoding/json"
	"regexp"
	"strings"
)

// sourceSeparators splits delimited citation lists: newlines, or semicolons
// and commas with optional surrounding whitespace.
var sourceSeparators = regexp.MustCompile(`\r?\n|\s*;\s*|\s*,\s*`)

// ParseSources parses a correction's citation field. The backend stores it
// either as a JSON array of strings or as a plain delimited string; the JSON
// attempt falls through to string splitting on any failure. Never errors.
func ParseSources(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}

	var parsed any
	if err := json.Unmarshal([]byte(raw), &parsed); err == nil {
		if arr, ok := parsed.([]any); ok {
			out := make([]string, 0, len(arr))
			for _, item := range arr {
				if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
					out = append(out, s)
				}
			}
			return out
		}
		// Parsed but not an array: treat as a delimited string below.
	}

	pieces := sourceSeparators.Split(raw, -1)
	out := make([]string, 0, len(pieces))
	for _, piece := range pieces {
		piece = strings.TrimSpace(piece)
		if piece != "" {
			out = append(out, piece)
		}
	}
	return out
}
