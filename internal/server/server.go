// Package server exposes the translation engine over JSON HTTP.
package server

import (
	"log/slog"

	"github.com/ojonugwa/igatrans/internal/corpus"
	"github.com/ojonugwa/igatrans/internal/history"
	"github.com/ojonugwa/igatrans/internal/tagger"
	"github.com/ojonugwa/igatrans/internal/translation"
)

// Server holds the translation components behind the HTTP handlers.
// The tagger client and the repositories are optional; the matching
// endpoints return 503 when they are not configured.
type Server struct {
	translator *translation.Translator
	detector   *translation.Detector
	suggester  *translation.Suggester
	assessor   *translation.Assessor
	batch      *translation.Batch

	tagger       tagger.Client
	translations history.TranslationRepository
	favorites    history.FavoriteRepository
	entries      []corpus.Entry

	logger *slog.Logger
}

// Dependencies collects everything a Server needs. Lexicon is required,
// the rest may be left zero to disable the related endpoints.
type Dependencies struct {
	Lexicon      *translation.Lexicon
	Tagger       tagger.Client
	Translations history.TranslationRepository
	Favorites    history.FavoriteRepository
	Entries      []corpus.Entry
	Logger       *slog.Logger
}

// New wires a Server from its dependencies.
func New(deps Dependencies) *Server {
	translator := translation.NewTranslator(deps.Lexicon)
	assessor := translation.NewAssessor(translator)
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Server{
		translator:   translator,
		detector:     translation.NewDetector(deps.Lexicon),
		suggester:    translation.NewSuggester(deps.Lexicon),
		assessor:     assessor,
		batch:        translation.NewBatch(translator, assessor),
		tagger:       deps.Tagger,
		translations: deps.Translations,
		favorites:    deps.Favorites,
		entries:      deps.Entries,
		logger:       logger,
	}
}
