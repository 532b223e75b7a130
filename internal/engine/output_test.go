package engine

import (
	"strings"
	"testing"
)

func TestSanitizeTitle(t *testing.T) {
	cases := []struct {
		name  string
		title string
		want  string
	}{
		{"empty", "", "youtube"},
		{"whitespace only", "   \t ", "youtube"},
		{"plain", "My Holiday Video", "My Holiday Video"},
		{"keeps allowed punctuation", "mix_2024 - part.1", "mix_2024 - part.1"},
		{"strips special characters", `clip: "best" <of/2024>?`, "clip best of 2024"},
		{"collapses whitespace", "a    b\t\tc", "a b c"},
		{"symbols only", "///???***", "youtube"},
		{"unicode letters survive", "Été à Paris", "Été à Paris"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SanitizeTitle(tc.title); got != tc.want {
				t.Fatalf("SanitizeTitle(%q) = %q, want %q", tc.title, got, tc.want)
			}
		})
	}
}

func TestSanitizeTitleCapsLength(t *testing.T) {
	long := strings.Repeat("a", 500)
	got := SanitizeTitle(long)
	if len([]rune(got)) != 120 {
		t.Fatalf("expected 120 runes, got %d", len([]rune(got)))
	}
}

func TestOutputBaseName(t *testing.T) {
	if got := OutputBaseName("song", ModeAudio); got != "[AUDIO] song" {
		t.Fatalf("audio base name = %q", got)
	}
	if got := OutputBaseName("song", ModeVideo); got != "song" {
		t.Fatalf("video base name = %q", got)
	}
	if got := OutputBaseName("", ModeAudio); got != "[AUDIO] youtube" {
		t.Fatalf("audio fallback = %q", got)
	}
}

func TestParseMode(t *testing.T) {
	if ParseMode("audio") != ModeAudio {
		t.Fatal("audio not recognized")
	}
	if ParseMode("video") != ModeVideo {
		t.Fatal("video not recognized")
	}
	if ParseMode("") != ModeVideo {
		t.Fatal("empty mode should default to video")
	}
	if ParseMode("weird") != ModeVideo {
		t.Fatal("unknown mode should default to video")
	}
}
