package translation

import "strings"

// Detected language labels.
const (
	LanguageEnglish = "english"
	LanguageIgala   = "igala"
	LanguageUnknown = "unknown"
)

// Detector guesses the language of a text from dictionary hit counts.
type Detector struct {
	lexicon *Lexicon
}

// NewDetector creates a Detector over the given lexicon.
func NewDetector(lexicon *Lexicon) *Detector {
	return &Detector{lexicon: lexicon}
}

// Detect counts how many tokens appear on each side of the dictionary and
// returns the side with strictly more hits. Ties, including zero hits on
// both sides, and empty input return LanguageUnknown.
func (d *Detector) Detect(text string) string {
	if strings.TrimSpace(text) == "" {
		return LanguageUnknown
	}

	var englishHits, igalaHits int
	for _, word := range strings.Fields(strings.ToLower(text)) {
		if d.lexicon.Contains(word, DirectionForward) {
			englishHits++
		}
		if d.lexicon.Contains(word, DirectionReverse) {
			igalaHits++
		}
	}

	switch {
	case englishHits > igalaHits:
		return LanguageEnglish
	case igalaHits > englishHits:
		return LanguageIgala
	default:
		return LanguageUnknown
	}
}
