package moderation

import (
	"strings"

	"sharemyshows-live/contract"

	"github.com/abadojack/whatlanggo"
)

var _ contract.ILanguageDetector = LanguageDetector{}

// LanguageDetector tags chat messages with an ISO 639-1 code.
type LanguageDetector struct{}

// Detect returns an empty code when the guess is not reliable, which is common for short messages.
func (LanguageDetector) Detect(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	info := whatlanggo.Detect(text)
	if !info.IsReliable() {
		return ""
	}
	return info.Lang.Iso6391()
}
