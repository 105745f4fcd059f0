// Package translation implements dictionary-based word substitution between
// English and Igala, along with confidence scoring, language detection,
// prefix suggestions and back-translation quality assessment.
package translation

import (
	"sort"
	"strings"
)

// Direction identifies which side of the bilingual dictionary drives a translation.
type Direction string

const (
	// DirectionForward translates English into Igala.
	DirectionForward Direction = "en_to_ig"
	// DirectionReverse translates Igala into English.
	DirectionReverse Direction = "ig_to_en"
)

// Opposite returns the reverse of the given direction.
func (d Direction) Opposite() Direction {
	if d == DirectionForward {
		return DirectionReverse
	}
	return DirectionForward
}

// Valid reports whether d is one of the two supported directions.
func (d Direction) Valid() bool {
	return d == DirectionForward || d == DirectionReverse
}

// Pair is a single parallel corpus row before normalization.
type Pair struct {
	English string
	Igala   string
}

// Lexicon holds the two direction-specific lookup maps built from a parallel
// word list. It is immutable once built, so concurrent readers need no locking.
//
// The inverse map is derived from the deduplicated forward map. When two
// English words share one Igala translation, only the last-inserted English
// word survives in the inverse map. That collapse is inherent to the
// one-value-per-key model and is kept for compatibility with the scoring
// contract.
type Lexicon struct {
	forward map[string]string
	inverse map[string]string

	// key sets sorted ascending, precomputed for prefix suggestions
	forwardKeys []string
	inverseKeys []string
}

// NewLexicon normalizes the given pairs and builds the forward and inverse
// maps. Pairs with an empty side after trimming are dropped, as are exact
// duplicate normalized pairs. Later pairs overwrite earlier ones for the
// same English key. An empty pair list yields an empty, fully usable lexicon.
func NewLexicon(pairs []Pair) *Lexicon {
	forward := make(map[string]string, len(pairs))
	order := make([]string, 0, len(pairs))
	seen := make(map[Pair]struct{}, len(pairs))

	for _, pair := range pairs {
		english := strings.ToLower(strings.TrimSpace(pair.English))
		igala := strings.TrimSpace(pair.Igala)
		if english == "" || igala == "" {
			continue
		}

		normalized := Pair{English: english, Igala: igala}
		if _, ok := seen[normalized]; ok {
			continue
		}
		seen[normalized] = struct{}{}

		if _, ok := forward[english]; !ok {
			order = append(order, english)
		}
		forward[english] = igala
	}

	// Iterate in insertion order so inverse collisions resolve
	// deterministically to the last-inserted English key.
	inverse := make(map[string]string, len(forward))
	for _, english := range order {
		inverse[forward[english]] = english
	}

	return &Lexicon{
		forward:     forward,
		inverse:     inverse,
		forwardKeys: sortedKeys(forward),
		inverseKeys: sortedKeys(inverse),
	}
}

// Lookup returns the mapped word for the given direction and whether it was
// found. Missing words report found=false; the pass-through-on-miss policy is
// the caller's decision, not the lexicon's.
func (l *Lexicon) Lookup(word string, direction Direction) (string, bool) {
	mapped, ok := l.mapping(direction)[word]
	return mapped, ok
}

// Contains reports whether word is a key on the given direction's side.
func (l *Lexicon) Contains(word string, direction Direction) bool {
	_, ok := l.mapping(direction)[word]
	return ok
}

// Keys returns the sorted key set for the given direction's side.
// The returned slice is shared; callers must not modify it.
func (l *Lexicon) Keys(direction Direction) []string {
	if direction == DirectionForward {
		return l.forwardKeys
	}
	return l.inverseKeys
}

// Size returns the number of entries on the given direction's side.
func (l *Lexicon) Size(direction Direction) int {
	return len(l.mapping(direction))
}

func (l *Lexicon) mapping(direction Direction) map[string]string {
	if direction == DirectionForward {
		return l.forward
	}
	return l.inverse
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
