// Package synthetic builds random Igala phrases with English glosses from a
// part-of-speech tagged corpus. The output is training-style parallel data,
// not grammatical Igala: phrases follow two fixed word-order templates.
package synthetic

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/ojonugwa/igatrans/internal/corpus"
)

// Sentence is one generated phrase pair.
type Sentence struct {
	Igala   string `json:"igala"`
	English string `json:"english"`
}

// Generator draws random words by POS tag and fills phrase templates.
type Generator struct {
	byTag   map[string][]corpus.Entry
	english map[string]string
	rng     *rand.Rand
}

// NewGenerator indexes the tagged entries. The seed makes output
// reproducible; pass a time-based seed for varied results.
func NewGenerator(entries []corpus.Entry, seed int64) *Generator {
	byTag := make(map[string][]corpus.Entry)
	english := make(map[string]string, len(entries))
	for _, entry := range entries {
		for _, tag := range splitTags(entry.PartOfSpeech) {
			byTag[tag] = append(byTag[tag], entry)
		}
		// first-seen English gloss wins for a shared Igala word
		if _, ok := english[entry.Igala]; !ok && entry.Igala != "" {
			english[entry.Igala] = entry.English
		}
	}

	return &Generator{
		byTag:   byTag,
		english: english,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Generate attempts count phrase pairs. Iterations missing a word for any
// required tag produce nothing, so the result may be shorter than count.
func (g *Generator) Generate(count int) []Sentence {
	var sentences []Sentence
	for i := 0; i < count; i++ {
		adjective, okAdj := g.randomWord("JJ")
		noun1, okNoun1 := g.randomWord("NN")
		verb, okVerb := g.randomWord("VB")
		noun2, okNoun2 := g.randomWord("NN")
		if !okAdj || !okNoun1 || !okVerb || !okNoun2 {
			continue
		}

		var sentence Sentence
		if g.rng.Intn(2) == 0 {
			sentence.Igala = fmt.Sprintf("%s %s %s %s", adjective, noun1, verb, noun2)
			sentence.English = fmt.Sprintf("The %s %s %s the %s",
				g.gloss(adjective), g.gloss(noun1), g.gloss(verb), g.gloss(noun2))
		} else {
			sentence.Igala = fmt.Sprintf("%s %s %s", noun1, verb, noun2)
			sentence.English = fmt.Sprintf("The %s %s the %s",
				g.gloss(noun1), g.gloss(verb), g.gloss(noun2))
		}
		sentences = append(sentences, sentence)
	}
	return sentences
}

func (g *Generator) randomWord(tag string) (string, bool) {
	entries := g.byTag[tag]
	if len(entries) == 0 {
		return "", false
	}
	return entries[g.rng.Intn(len(entries))].Igala, true
}

func (g *Generator) gloss(igalaWord string) string {
	return g.english[igalaWord]
}

// splitTags breaks a stored tag string like "NN, VB" into individual tags.
func splitTags(tags string) []string {
	fields := strings.FieldsFunc(tags, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	result := make([]string, 0, len(fields))
	for _, field := range fields {
		if field != "" {
			result = append(result, field)
		}
	}
	return result
}
