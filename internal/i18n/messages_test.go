package i18n

import "testing"

func TestMessageFrench(t *testing.T) {
	if got := Message("fr", KeyDownloading); got != "Téléchargement…" {
		t.Fatalf("fr downloading = %q", got)
	}
	if got := Message("fr-CA", KeyFinished); got != "Téléchargement terminé" {
		t.Fatalf("fr-CA finished = %q", got)
	}
}

func TestMessageEnglish(t *testing.T) {
	if got := Message("en", KeyQueued); got != "Waiting…" {
		t.Fatalf("en queued = %q", got)
	}
	if got := Message("en-US", KeyProcessing); got != "Finalizing…" {
		t.Fatalf("en-US processing = %q", got)
	}
}

func TestMessageFallsBackToFrench(t *testing.T) {
	if got := Message("", KeyQueued); got != "En attente…" {
		t.Fatalf("empty locale queued = %q", got)
	}
	if got := Message("de", KeyQueued); got != "En attente…" {
		t.Fatalf("unsupported locale queued = %q", got)
	}
}
