package engine

import (
	"strings"
	"unicode"
)

const (
	defaultBaseName = "youtube"
	maxBaseNameLen  = 120
	audioPrefix     = "[AUDIO] "
)

// SanitizeTitle reduces a caller-supplied title to a safe output file base
// name: letters, digits, space, dash, underscore and dot survive, everything
// else becomes a space, whitespace is collapsed and the result is capped at
// 120 runes. Titles that sanitize to nothing fall back to "youtube".
func SanitizeTitle(title string) string {
	cleaned := strings.TrimSpace(title)
	if cleaned == "" {
		return defaultBaseName
	}

	var b strings.Builder
	for _, r := range cleaned {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || strings.ContainsRune("-_. ", r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}

	collapsed := strings.Join(strings.Fields(b.String()), " ")
	if runes := []rune(collapsed); len(runes) > maxBaseNameLen {
		collapsed = strings.TrimSpace(string(runes[:maxBaseNameLen]))
	}
	if collapsed == "" {
		return defaultBaseName
	}
	return collapsed
}

// OutputBaseName derives the output file name (without extension) for a
// request. Audio downloads are prefixed so they sort next to their video
// counterparts in the download folder.
func OutputBaseName(title string, mode Mode) string {
	base := SanitizeTitle(title)
	if mode == ModeAudio {
		return audioPrefix + base
	}
	return base
}
