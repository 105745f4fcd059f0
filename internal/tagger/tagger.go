// Package tagger calls an external linguistic tagging service to annotate
// English words with part-of-speech tags. Tagging is plumbing around the
// translation core: the corpus carries tags only for the synthetic sentence
// generator, never for translation itself.
package tagger

import (
	"context"
	"strings"
)

//go:generate mockgen -source=tagger.go -destination=../mocks/tagger/mock_client.go -package=mock_tagger

// TaggedWord is one word with the tags the service assigned to its tokens.
type TaggedWord struct {
	Word string   `json:"word"`
	Tags []string `json:"tags"`
}

// TagString joins the tags the way the corpus CSV stores them.
func (t TaggedWord) TagString() string {
	return strings.Join(t.Tags, ", ")
}

// Client tags English words with part-of-speech information.
type Client interface {
	TagWords(ctx context.Context, words []string) ([]TaggedWord, error)
}
