package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/ojonugwa/igatrans/internal/corpus"
	"github.com/ojonugwa/igatrans/internal/history"
	"github.com/ojonugwa/igatrans/internal/synthetic"
	"github.com/ojonugwa/igatrans/internal/translation"
)

const defaultHistoryLimit = 20

// Handler builds the route table. The bare /translate route is kept for
// clients that predate the /api/v1 prefix.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/v1/translate", s.handleTranslate)
	mux.HandleFunc("POST /translate", s.handleTranslate)
	mux.HandleFunc("POST /api/v1/translate/batch", s.handleTranslateBatch)
	mux.HandleFunc("POST /api/v1/back-translate", s.handleBackTranslate)
	mux.HandleFunc("POST /api/v1/back-translate/batch", s.handleBackTranslateBatch)
	mux.HandleFunc("POST /api/v1/detect", s.handleDetect)
	mux.HandleFunc("GET /api/v1/suggest", s.handleSuggest)
	mux.HandleFunc("GET /api/v1/history", s.handleHistory)
	mux.HandleFunc("GET /api/v1/favorites", s.handleFavoritesList)
	mux.HandleFunc("GET /api/v1/favorites/{english}", s.handleFavoritesLookup)
	mux.HandleFunc("POST /api/v1/favorites", s.handleFavoritesAdd)
	mux.HandleFunc("DELETE /api/v1/favorites/{id}", s.handleFavoritesDelete)
	mux.HandleFunc("POST /api/v1/corpus/tag", s.handleCorpusTag)
	mux.HandleFunc("POST /api/v1/synthetic", s.handleSynthetic)
	mux.HandleFunc("GET /health", s.handleHealth)

	return mux
}

type translateRequest struct {
	Text      string `json:"text"`
	Direction string `json:"direction"`
}

type batchRequest struct {
	Texts     []string `json:"texts"`
	Direction string   `json:"direction"`
}

func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	direction, ok := parseDirection(req.Direction)
	if !ok {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown direction %q", req.Direction))
		return
	}

	result := s.translator.TranslateSingle(req.Text, direction)
	s.recordTranslation(r, result)
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleTranslateBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	direction, ok := parseDirection(req.Direction)
	if !ok {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown direction %q", req.Direction))
		return
	}

	s.writeJSON(w, http.StatusOK, s.batch.TranslateBatch(req.Texts, direction))
}

func (s *Server) handleBackTranslate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	direction, ok := parseDirection(req.Direction)
	if !ok {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown direction %q", req.Direction))
		return
	}

	s.writeJSON(w, http.StatusOK, s.assessor.BackTranslate(req.Text, direction))
}

func (s *Server) handleBackTranslateBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	direction, ok := parseDirection(req.Direction)
	if !ok {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown direction %q", req.Direction))
		return
	}

	s.writeJSON(w, http.StatusOK, s.batch.BackTranslateBatch(req.Texts, direction))
}

func (s *Server) handleDetect(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]string{
		"language": s.detector.Detect(req.Text),
	})
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	limit := 10
	if raw := query.Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		limit = parsed
	}

	suggestions := s.suggester.Suggest(query.Get("partial"), query.Get("language"), limit)
	if suggestions == nil {
		suggestions = []string{}
	}
	s.writeJSON(w, http.StatusOK, map[string][]string{"suggestions": suggestions})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if s.translations == nil {
		s.writeError(w, http.StatusServiceUnavailable, "history storage is not configured")
		return
	}

	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			s.writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	records, err := s.translations.FindRecent(r.Context(), limit)
	if err != nil {
		s.logger.Error("failed to load translation history", "error", err)
		s.writeError(w, http.StatusInternalServerError, "failed to load history")
		return
	}
	if records == nil {
		records = []history.TranslationRecord{}
	}
	s.writeJSON(w, http.StatusOK, map[string][]history.TranslationRecord{"history": records})
}

func (s *Server) handleFavoritesList(w http.ResponseWriter, r *http.Request) {
	if s.favorites == nil {
		s.writeError(w, http.StatusServiceUnavailable, "favorites storage is not configured")
		return
	}

	favorites, err := s.favorites.FindAll(r.Context())
	if err != nil {
		s.logger.Error("failed to load favorites", "error", err)
		s.writeError(w, http.StatusInternalServerError, "failed to load favorites")
		return
	}
	if favorites == nil {
		favorites = []history.FavoriteWord{}
	}
	s.writeJSON(w, http.StatusOK, map[string][]history.FavoriteWord{"favorites": favorites})
}

func (s *Server) handleFavoritesLookup(w http.ResponseWriter, r *http.Request) {
	if s.favorites == nil {
		s.writeError(w, http.StatusServiceUnavailable, "favorites storage is not configured")
		return
	}

	english := r.PathValue("english")
	favorite, err := s.favorites.FindByEnglish(r.Context(), english)
	if err != nil {
		s.logger.Error("failed to look up favorite", "error", err, "english", english)
		s.writeError(w, http.StatusInternalServerError, "failed to look up favorite")
		return
	}
	if favorite == nil {
		s.writeError(w, http.StatusNotFound, fmt.Sprintf("no favorite for %q", english))
		return
	}
	s.writeJSON(w, http.StatusOK, favorite)
}

func (s *Server) handleFavoritesAdd(w http.ResponseWriter, r *http.Request) {
	if s.favorites == nil {
		s.writeError(w, http.StatusServiceUnavailable, "favorites storage is not configured")
		return
	}

	var favorite history.FavoriteWord
	if err := json.NewDecoder(r.Body).Decode(&favorite); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if favorite.English == "" || favorite.Igala == "" {
		s.writeError(w, http.StatusBadRequest, "english and igala are required")
		return
	}

	if err := s.favorites.Upsert(r.Context(), &favorite); err != nil {
		s.logger.Error("failed to save favorite", "error", err)
		s.writeError(w, http.StatusInternalServerError, "failed to save favorite")
		return
	}
	s.writeJSON(w, http.StatusCreated, favorite)
}

func (s *Server) handleFavoritesDelete(w http.ResponseWriter, r *http.Request) {
	if s.favorites == nil {
		s.writeError(w, http.StatusServiceUnavailable, "favorites storage is not configured")
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "id must be an integer")
		return
	}

	if err := s.favorites.Delete(r.Context(), id); err != nil {
		s.logger.Error("failed to delete favorite", "error", err, "id", id)
		s.writeError(w, http.StatusInternalServerError, "failed to delete favorite")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleCorpusTag accepts a dictionary CSV upload, tags every English word
// through the part-of-speech service and returns the tagged CSV.
func (s *Server) handleCorpusTag(w http.ResponseWriter, r *http.Request) {
	if s.tagger == nil {
		s.writeError(w, http.StatusServiceUnavailable, "tagging service is not configured")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "file upload is required")
		return
	}
	defer func() {
		_ = file.Close()
	}()

	entries, err := corpus.ReadCSV(file)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid CSV: %v", err))
		return
	}

	words := make([]string, 0, len(entries))
	for _, entry := range entries {
		words = append(words, entry.English)
	}

	tagged, err := s.tagger.TagWords(r.Context(), words)
	if err != nil {
		s.logger.Error("failed to tag words", "error", err)
		s.writeError(w, http.StatusBadGateway, "tagging service failed")
		return
	}

	for i := range entries {
		entries[i].PartOfSpeech = tagged[i].TagString()
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="tagged_dictionary.csv"`)
	if err := corpus.WriteCSV(w, entries); err != nil {
		s.logger.Error("failed to write tagged CSV", "error", err)
	}
}

func (s *Server) handleSynthetic(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Count int   `json:"count"`
		Seed  int64 `json:"seed"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Count <= 0 {
		s.writeError(w, http.StatusBadRequest, "count must be a positive integer")
		return
	}

	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	sentences := synthetic.NewGenerator(s.entries, seed).Generate(req.Count)
	if sentences == nil {
		sentences = []synthetic.Sentence{}
	}
	s.writeJSON(w, http.StatusOK, map[string][]synthetic.Sentence{"sentences": sentences})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// recordTranslation stores the result when history is configured. Failures
// are logged, not surfaced: a dead database should not break translation.
func (s *Server) recordTranslation(r *http.Request, result translation.TranslationResult) {
	if s.translations == nil || result.Original == "" {
		return
	}

	record := history.TranslationRecord{
		Original:   result.Original,
		Translated: result.Translated,
		Confidence: result.Confidence,
		Direction:  string(result.Direction),
	}
	if err := s.translations.Create(r.Context(), &record); err != nil {
		s.logger.Warn("failed to record translation", "error", err)
	}
}

func parseDirection(raw string) (translation.Direction, bool) {
	direction := translation.Direction(raw)
	return direction, direction.Valid()
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}
