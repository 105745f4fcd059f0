package translation

import (
	"math"
	"strings"
	"time"
)

// TranslationResult is the outcome of translating a single text.
type TranslationResult struct {
	Original   string    `json:"original"`
	Translated string    `json:"translated"`
	Confidence float64   `json:"confidence"`
	Direction  Direction `json:"direction"`
	Timestamp  time.Time `json:"timestamp"`
}

// Translator substitutes tokens of a text using a lexicon.
// Translation is strictly per-token: no reordering, no morphology.
type Translator struct {
	lexicon *Lexicon
	now     func() time.Time
}

// NewTranslator creates a Translator over the given lexicon.
func NewTranslator(lexicon *Lexicon) *Translator {
	return &Translator{
		lexicon: lexicon,
		now:     time.Now,
	}
}

// TranslateSingle translates text in the given direction. Tokens missing from
// the dictionary pass through unchanged. Confidence is the percentage of
// tokens found in the dictionary, rounded to two decimal places. Empty or
// all-whitespace input returns an empty translation with zero confidence.
func (t *Translator) TranslateSingle(text string, direction Direction) TranslationResult {
	result := TranslationResult{
		Original:  text,
		Direction: direction,
		Timestamp: t.now(),
	}
	if strings.TrimSpace(text) == "" {
		return result
	}

	words := strings.Fields(strings.ToLower(text))
	translated := make([]string, len(words))
	found := 0
	for i, word := range words {
		mapped, ok := t.lexicon.Lookup(word, direction)
		if !ok {
			translated[i] = word
			continue
		}
		translated[i] = mapped
		found++
	}

	result.Translated = strings.Join(translated, " ")
	result.Confidence = round2(float64(found) / float64(len(words)) * 100)
	return result
}

// round2 rounds to two decimal places, half away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
