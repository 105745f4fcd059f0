package translation

import (
	"sort"
	"strings"
	"time"
)

// QualityLevel buckets an overall quality score.
type QualityLevel string

const (
	QualityExcellent QualityLevel = "Excellent"
	QualityGood      QualityLevel = "Good"
	QualityFair      QualityLevel = "Fair"
	QualityPoor      QualityLevel = "Poor"
)

// QualityLevels lists every level in descending order of quality.
var QualityLevels = []QualityLevel{QualityExcellent, QualityGood, QualityFair, QualityPoor}

// Level description strings are part of the outward-facing contract and must
// not change without a version bump of the result shape.
const (
	descriptionExcellent = "High-quality translation with good preservation of meaning"
	descriptionGood      = "Acceptable translation with minor meaning loss"
	descriptionFair      = "Translation may have some meaning distortion"
	descriptionPoor      = "Translation quality is low, manual review recommended"
)

// Recommendation strings, also contract-fixed.
const (
	RecommendationLowForward    = "Consider reviewing the forward translation - low dictionary coverage"
	RecommendationLowBack       = "Back translation has low confidence - may indicate translation issues"
	RecommendationLowSimilarity = "Low similarity between original and back-translated text - meaning may be lost"
	RecommendationLowOverall    = "Overall quality is below acceptable threshold - manual review recommended"
	RecommendationNoConcerns    = "Translation quality is good - no immediate concerns"
)

// QualityMetrics measures how much of the original text survives a round trip.
type QualityMetrics struct {
	SimilarityScore    float64  `json:"similarity_score"`
	WordOverlap        int      `json:"word_overlap"`
	TotalOriginalWords int      `json:"total_original_words"`
	PreservationRate   float64  `json:"preservation_rate"`
	OverlappingWords   []string `json:"overlapping_words"`
}

// OverallQuality is the categorized verdict over a back-translation.
type OverallQuality struct {
	OverallScore    float64      `json:"overall_score"`
	Level           QualityLevel `json:"quality_level"`
	Description     string       `json:"quality_description"`
	Recommendations []string     `json:"recommendations"`
}

// BackTranslationResult composes a forward translation, its back translation,
// and the derived quality verdict.
type BackTranslationResult struct {
	OriginalText       string         `json:"original_text"`
	ForwardTranslation string         `json:"forward_translation"`
	BackTranslation    string         `json:"back_translation"`
	ForwardConfidence  float64        `json:"forward_confidence"`
	BackConfidence     float64        `json:"back_confidence"`
	QualityMetrics     QualityMetrics `json:"quality_metrics"`
	OverallQuality     OverallQuality `json:"overall_quality"`
	SourceDirection    Direction      `json:"source_direction"`
	Timestamp          time.Time      `json:"timestamp"`
}

// Assessor estimates translation quality without a reference translation by
// translating forward, translating back, and comparing against the original.
type Assessor struct {
	translator *Translator
	now        func() time.Time
}

// NewAssessor creates an Assessor using the given translator for both legs.
func NewAssessor(translator *Translator) *Assessor {
	return &Assessor{
		translator: translator,
		now:        time.Now,
	}
}

// BackTranslate runs the full assessment pipeline for text starting in
// sourceDirection. Empty input short-circuits to a zero-valued result whose
// only recommendation is the default no-concerns message.
func (a *Assessor) BackTranslate(text string, sourceDirection Direction) BackTranslationResult {
	result := BackTranslationResult{
		OriginalText:    text,
		SourceDirection: sourceDirection,
		Timestamp:       a.now(),
	}
	if strings.TrimSpace(text) == "" {
		result.OverallQuality.Recommendations = []string{RecommendationNoConcerns}
		return result
	}

	forward := a.translator.TranslateSingle(text, sourceDirection)
	back := a.translator.TranslateSingle(forward.Translated, sourceDirection.Opposite())

	result.ForwardTranslation = forward.Translated
	result.BackTranslation = back.Translated
	result.ForwardConfidence = forward.Confidence
	result.BackConfidence = back.Confidence
	result.QualityMetrics = ScoreBackTranslation(text, back.Translated)
	result.OverallQuality = AssessQuality(forward.Confidence, back.Confidence, result.QualityMetrics.SimilarityScore)
	return result
}

// ScoreBackTranslation compares the original and back-translated texts as
// word sets: duplicates collapse and order is ignored. SimilarityScore and
// PreservationRate are numerically identical by construction; both are kept
// for interface compatibility.
func ScoreBackTranslation(original, backTranslated string) QualityMetrics {
	originalWords := wordSet(original)
	if len(originalWords) == 0 {
		return QualityMetrics{}
	}
	backWords := wordSet(backTranslated)

	var overlap []string
	for word := range originalWords {
		if _, ok := backWords[word]; ok {
			overlap = append(overlap, word)
		}
	}
	sort.Strings(overlap)

	rate := round2(float64(len(overlap)) / float64(len(originalWords)) * 100)
	return QualityMetrics{
		SimilarityScore:    rate,
		WordOverlap:        len(overlap),
		TotalOriginalWords: len(originalWords),
		PreservationRate:   rate,
		OverlappingWords:   overlap,
	}
}

// AssessQuality combines the three signals into a weighted score and buckets
// it. Weights (0.4/0.3/0.3) and thresholds (80/60/40, inclusive) are part of
// the outward-facing contract.
func AssessQuality(forwardConfidence, backConfidence, similarity float64) OverallQuality {
	overall := round2(0.4*forwardConfidence + 0.3*backConfidence + 0.3*similarity)

	quality := OverallQuality{OverallScore: overall}
	switch {
	case overall >= 80:
		quality.Level = QualityExcellent
		quality.Description = descriptionExcellent
	case overall >= 60:
		quality.Level = QualityGood
		quality.Description = descriptionGood
	case overall >= 40:
		quality.Level = QualityFair
		quality.Description = descriptionFair
	default:
		quality.Level = QualityPoor
		quality.Description = descriptionPoor
	}

	if forwardConfidence < 70 {
		quality.Recommendations = append(quality.Recommendations, RecommendationLowForward)
	}
	if backConfidence < 70 {
		quality.Recommendations = append(quality.Recommendations, RecommendationLowBack)
	}
	if similarity < 50 {
		quality.Recommendations = append(quality.Recommendations, RecommendationLowSimilarity)
	}
	if overall < 60 {
		quality.Recommendations = append(quality.Recommendations, RecommendationLowOverall)
	}
	if len(quality.Recommendations) == 0 {
		quality.Recommendations = []string{RecommendationNoConcerns}
	}
	return quality
}

func wordSet(text string) map[string]struct{} {
	words := strings.Fields(strings.ToLower(text))
	set := make(map[string]struct{}, len(words))
	for _, word := range words {
		set[word] = struct{}{}
	}
	return set
}
