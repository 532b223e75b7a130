// Package i18n renders the short human-readable job status messages. The
// browser extension this server pairs with historically shipped French
// strings, so French stays the fallback language.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys for job lifecycle states.
const (
	KeyQueued      = "job.queued"
	KeyDownloading = "job.downloading"
	KeyProcessing  = "job.processing"
	KeyFinished    = "job.finished"
)

var (
	supported = []language.Tag{language.French, language.English}
	matcher   = language.NewMatcher(supported)
	builder   = catalog.NewBuilder(catalog.Fallback(language.French))
)

func init() {
	set(language.French, KeyQueued, "En attente…")
	set(language.French, KeyDownloading, "Téléchargement…")
	set(language.French, KeyProcessing, "Finalisation…")
	set(language.French, KeyFinished, "Téléchargement terminé")

	set(language.English, KeyQueued, "Waiting…")
	set(language.English, KeyDownloading, "Downloading…")
	set(language.English, KeyProcessing, "Finalizing…")
	set(language.English, KeyFinished, "Download complete")
}

func set(tag language.Tag, key, msg string) {
	if err := builder.SetString(tag, key, msg); err != nil {
		panic(err)
	}
}

// Message renders the localized text for key in the closest supported
// locale. Unknown or empty locales resolve to French.
func Message(locale, key string) string {
	tag, _ := language.MatchStrings(matcher, locale)
	return message.NewPrinter(tag, message.Catalog(builder)).Sprintf(key)
}
