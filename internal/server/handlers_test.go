package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ojonugwa/igatrans/internal/corpus"
	"github.com/ojonugwa/igatrans/internal/history"
	mock_history "github.com/ojonugwa/igatrans/internal/mocks/history"
	mock_tagger "github.com/ojonugwa/igatrans/internal/mocks/tagger"
	"github.com/ojonugwa/igatrans/internal/tagger"
	"github.com/ojonugwa/igatrans/internal/translation"
)

func newTestLexicon() *translation.Lexicon {
	return translation.NewLexicon([]translation.Pair{
		{English: "hello", Igala: "sannu"},
		{English: "world", Igala: "aiye"},
	})
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	request := httptest.NewRequest(method, path, reader)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

func TestServer_HandleTranslate(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		body           map[string]any
		wantStatus     int
		wantTranslated string
		wantConfidence float64
	}{
		{
			name:           "full coverage",
			path:           "/api/v1/translate",
			body:           map[string]any{"text": "Hello World", "direction": "en_to_ig"},
			wantStatus:     http.StatusOK,
			wantTranslated: "sannu aiye",
			wantConfidence: 100.0,
		},
		{
			name:           "partial coverage passes unknown words through",
			path:           "/api/v1/translate",
			body:           map[string]any{"text": "hello there", "direction": "en_to_ig"},
			wantStatus:     http.StatusOK,
			wantTranslated: "sannu there",
			wantConfidence: 50.0,
		},
		{
			name:           "legacy route without prefix",
			path:           "/translate",
			body:           map[string]any{"text": "hello", "direction": "en_to_ig"},
			wantStatus:     http.StatusOK,
			wantTranslated: "sannu",
			wantConfidence: 100.0,
		},
		{
			name:           "reverse direction",
			path:           "/api/v1/translate",
			body:           map[string]any{"text": "sannu", "direction": "ig_to_en"},
			wantStatus:     http.StatusOK,
			wantTranslated: "hello",
			wantConfidence: 100.0,
		},
		{
			name:       "unknown direction",
			path:       "/api/v1/translate",
			body:       map[string]any{"text": "hello", "direction": "en_to_fr"},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := New(Dependencies{Lexicon: newTestLexicon()}).Handler()

			recorder := doJSON(t, handler, http.MethodPost, tt.path, tt.body)
			require.Equal(t, tt.wantStatus, recorder.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}

			var result translation.TranslationResult
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &result))
			assert.Equal(t, tt.wantTranslated, result.Translated)
			assert.Equal(t, tt.wantConfidence, result.Confidence)
		})
	}
}

func TestServer_HandleTranslate_RecordsHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_history.NewMockTranslationRepository(ctrl)
	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, record *history.TranslationRecord) error {
			assert.Equal(t, "hello world", record.Original)
			assert.Equal(t, "sannu aiye", record.Translated)
			assert.Equal(t, 100.0, record.Confidence)
			assert.Equal(t, "en_to_ig", record.Direction)
			return nil
		})

	handler := New(Dependencies{Lexicon: newTestLexicon(), Translations: repo}).Handler()

	recorder := doJSON(t, handler, http.MethodPost, "/api/v1/translate",
		map[string]any{"text": "hello world", "direction": "en_to_ig"})
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestServer_HandleTranslate_HistoryFailureDoesNotBreakResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_history.NewMockTranslationRepository(ctrl)
	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("connection refused"))

	handler := New(Dependencies{Lexicon: newTestLexicon(), Translations: repo}).Handler()

	recorder := doJSON(t, handler, http.MethodPost, "/api/v1/translate",
		map[string]any{"text": "hello", "direction": "en_to_ig"})
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestServer_HandleTranslateBatch(t *testing.T) {
	handler := New(Dependencies{Lexicon: newTestLexicon()}).Handler()

	recorder := doJSON(t, handler, http.MethodPost, "/api/v1/translate/batch",
		map[string]any{"texts": []string{"hello world", "hello there"}, "direction": "en_to_ig"})
	require.Equal(t, http.StatusOK, recorder.Code)

	var summary translation.BatchSummary
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &summary))
	assert.Equal(t, 2, summary.TotalTranslations)
	assert.InDelta(t, 75.0, summary.AverageConfidence, 1e-6)
	require.Len(t, summary.Results, 2)
	assert.Equal(t, "sannu aiye", summary.Results[0].Translated)
}

func TestServer_HandleBackTranslate(t *testing.T) {
	handler := New(Dependencies{Lexicon: newTestLexicon()}).Handler()

	recorder := doJSON(t, handler, http.MethodPost, "/api/v1/back-translate",
		map[string]any{"text": "hello world", "direction": "en_to_ig"})
	require.Equal(t, http.StatusOK, recorder.Code)

	var result translation.BackTranslationResult
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &result))
	assert.Equal(t, "sannu aiye", result.ForwardTranslation)
	assert.Equal(t, "hello world", result.BackTranslation)
	assert.Equal(t, translation.QualityExcellent, result.OverallQuality.Level)
}

func TestServer_HandleBackTranslateBatch(t *testing.T) {
	handler := New(Dependencies{Lexicon: newTestLexicon()}).Handler()

	recorder := doJSON(t, handler, http.MethodPost, "/api/v1/back-translate/batch",
		map[string]any{"texts": []string{"hello world"}, "direction": "en_to_ig"})
	require.Equal(t, http.StatusOK, recorder.Code)

	var summary translation.BackTranslationSummary
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &summary))
	assert.Equal(t, 1, summary.TotalTexts)
	assert.Equal(t, 1, summary.QualityDistribution[translation.QualityExcellent])
	assert.Equal(t, 0, summary.QualityDistribution[translation.QualityPoor])
}

func TestServer_HandleDetect(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "english text", text: "hello world", want: translation.LanguageEnglish},
		{name: "igala text", text: "sannu aiye", want: translation.LanguageIgala},
		{name: "unknown text", text: "xyzzy", want: translation.LanguageUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := New(Dependencies{Lexicon: newTestLexicon()}).Handler()

			recorder := doJSON(t, handler, http.MethodPost, "/api/v1/detect",
				map[string]any{"text": tt.text})
			require.Equal(t, http.StatusOK, recorder.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			assert.Equal(t, tt.want, body["language"])
		})
	}
}

func TestServer_HandleSuggest(t *testing.T) {
	handler := New(Dependencies{Lexicon: newTestLexicon()}).Handler()

	recorder := doJSON(t, handler, http.MethodGet,
		"/api/v1/suggest?partial=hel&language=english&limit=5", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var body map[string][]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, []string{"hello"}, body["suggestions"])
}

func TestServer_HandleSuggest_EmptyPartial(t *testing.T) {
	handler := New(Dependencies{Lexicon: newTestLexicon()}).Handler()

	recorder := doJSON(t, handler, http.MethodGet, "/api/v1/suggest?language=english", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var body map[string][]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Empty(t, body["suggestions"])
	assert.NotNil(t, body["suggestions"])
}

func TestServer_HandleHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_history.NewMockTranslationRepository(ctrl)
	repo.EXPECT().
		FindRecent(gomock.Any(), 20).
		Return([]history.TranslationRecord{
			{ID: 1, Original: "hello", Translated: "sannu", Confidence: 100.0, Direction: "en_to_ig"},
		}, nil)

	handler := New(Dependencies{Lexicon: newTestLexicon(), Translations: repo}).Handler()

	recorder := doJSON(t, handler, http.MethodGet, "/api/v1/history", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var body map[string][]history.TranslationRecord
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Len(t, body["history"], 1)
	assert.Equal(t, "sannu", body["history"][0].Translated)
}

func TestServer_HandleHistory_NotConfigured(t *testing.T) {
	handler := New(Dependencies{Lexicon: newTestLexicon()}).Handler()

	recorder := doJSON(t, handler, http.MethodGet, "/api/v1/history", nil)
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
}

func TestServer_HandleFavorites(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_history.NewMockFavoriteRepository(ctrl)
	repo.EXPECT().
		Upsert(gomock.Any(), &history.FavoriteWord{English: "hello", Igala: "sannu"}).
		Return(nil)
	repo.EXPECT().
		FindAll(gomock.Any()).
		Return([]history.FavoriteWord{{ID: 1, English: "hello", Igala: "sannu"}}, nil)
	repo.EXPECT().
		Delete(gomock.Any(), int64(1)).
		Return(nil)

	handler := New(Dependencies{Lexicon: newTestLexicon(), Favorites: repo}).Handler()

	recorder := doJSON(t, handler, http.MethodPost, "/api/v1/favorites",
		map[string]any{"english": "hello", "igala": "sannu"})
	assert.Equal(t, http.StatusCreated, recorder.Code)

	recorder = doJSON(t, handler, http.MethodGet, "/api/v1/favorites", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	var body map[string][]history.FavoriteWord
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Len(t, body["favorites"], 1)
	assert.Equal(t, "hello", body["favorites"][0].English)

	recorder = doJSON(t, handler, http.MethodDelete, "/api/v1/favorites/1", nil)
	assert.Equal(t, http.StatusNoContent, recorder.Code)
}

func TestServer_HandleFavoritesLookup(t *testing.T) {
	tests := []struct {
		name       string
		english    string
		setupMock  func(repo *mock_history.MockFavoriteRepository)
		wantStatus int
		wantIgala  string
	}{
		{
			name:    "found",
			english: "hello",
			setupMock: func(repo *mock_history.MockFavoriteRepository) {
				repo.EXPECT().
					FindByEnglish(gomock.Any(), "hello").
					Return(&history.FavoriteWord{ID: 1, English: "hello", Igala: "sannu"}, nil)
			},
			wantStatus: http.StatusOK,
			wantIgala:  "sannu",
		},
		{
			name:    "not found",
			english: "missing",
			setupMock: func(repo *mock_history.MockFavoriteRepository) {
				repo.EXPECT().
					FindByEnglish(gomock.Any(), "missing").
					Return(nil, nil)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:    "db error",
			english: "hello",
			setupMock: func(repo *mock_history.MockFavoriteRepository) {
				repo.EXPECT().
					FindByEnglish(gomock.Any(), "hello").
					Return(nil, fmt.Errorf("connection refused"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock_history.NewMockFavoriteRepository(ctrl)
			tt.setupMock(repo)

			handler := New(Dependencies{Lexicon: newTestLexicon(), Favorites: repo}).Handler()

			recorder := doJSON(t, handler, http.MethodGet, "/api/v1/favorites/"+tt.english, nil)
			require.Equal(t, tt.wantStatus, recorder.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}

			var favorite history.FavoriteWord
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &favorite))
			assert.Equal(t, tt.wantIgala, favorite.Igala)
		})
	}
}

func TestServer_HandleFavoritesAdd_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_history.NewMockFavoriteRepository(ctrl)

	handler := New(Dependencies{Lexicon: newTestLexicon(), Favorites: repo}).Handler()

	recorder := doJSON(t, handler, http.MethodPost, "/api/v1/favorites",
		map[string]any{"english": "hello"})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestServer_HandleCorpusTag(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock_tagger.NewMockClient(ctrl)
	client.EXPECT().
		TagWords(gomock.Any(), []string{"hello", "run"}).
		Return([]tagger.TaggedWord{
			{Word: "hello", Tags: []string{"UH"}},
			{Word: "run", Tags: []string{"VB", "NN"}},
		}, nil)

	handler := New(Dependencies{Lexicon: newTestLexicon(), Tagger: client}).Handler()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "dictionary.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte("English,Igala\nhello,sannu\nrun,gbà\n"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	request := httptest.NewRequest(http.MethodPost, "/api/v1/corpus/tag", &buf)
	request.Header.Set("Content-Type", writer.FormDataContentType())
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "text/csv", recorder.Header().Get("Content-Type"))

	entries, err := corpus.ReadCSV(strings.NewReader(recorder.Body.String()))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "UH", entries[0].PartOfSpeech)
	assert.Equal(t, "VB, NN", entries[1].PartOfSpeech)
}

func TestServer_HandleCorpusTag_NotConfigured(t *testing.T) {
	handler := New(Dependencies{Lexicon: newTestLexicon()}).Handler()

	recorder := doJSON(t, handler, http.MethodPost, "/api/v1/corpus/tag", nil)
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
}

func TestServer_HandleSynthetic(t *testing.T) {
	entries := []corpus.Entry{
		{English: "black", Igala: "édúdú", PartOfSpeech: "JJ"},
		{English: "stone", Igala: "òkwúta", PartOfSpeech: "NN"},
		{English: "eat", Igala: "jẹ", PartOfSpeech: "VB"},
	}
	handler := New(Dependencies{Lexicon: newTestLexicon(), Entries: entries}).Handler()

	recorder := doJSON(t, handler, http.MethodPost, "/api/v1/synthetic",
		map[string]any{"count": 5, "seed": 42})
	require.Equal(t, http.StatusOK, recorder.Code)

	var body map[string][]map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Len(t, body["sentences"], 5)
}

func TestServer_HandleSynthetic_InvalidCount(t *testing.T) {
	handler := New(Dependencies{Lexicon: newTestLexicon()}).Handler()

	recorder := doJSON(t, handler, http.MethodPost, "/api/v1/synthetic",
		map[string]any{"count": 0})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestServer_HandleHealth(t *testing.T) {
	handler := New(Dependencies{Lexicon: newTestLexicon()}).Handler()

	recorder := doJSON(t, handler, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}
