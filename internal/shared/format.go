package shared

import (
	"encoding/json"
	"fmt"
	"strings"
)

// FormatDuration renders a track duration in seconds as m:ss.
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// VisibilityString renders a playlist's public flag for display.
func VisibilityString(public bool) string {
	if public {
		return "Public"
	}
	return "Private"
}

// MarshalJSON serializes a value to JSON, optionally indented.
func MarshalJSON(v any, indent bool) ([]byte, error) {
	if indent {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// NormalizeTrackKey builds a case- and whitespace-insensitive lookup key from
// a track's title and artist for matching across services.
func NormalizeTrackKey(title, artist string) string {
	normalize := func(s string) string {
		s = strings.ToLower(strings.TrimSpace(s))
		return strings.Join(strings.Fields(s), " ")
	}
	return normalize(title) + "|" + normalize(artist)
}
