package translation

// BatchSummary aggregates a batch of single translations.
type BatchSummary struct {
	Results           []TranslationResult `json:"results"`
	TotalTranslations int                 `json:"total_translations"`
	AverageConfidence float64             `json:"average_confidence"`
}

// BackTranslationSummary aggregates a batch of back-translation assessments.
type BackTranslationSummary struct {
	Results             []BackTranslationResult `json:"results"`
	TotalTexts          int                     `json:"total_texts"`
	AverageQualityScore float64                 `json:"average_quality_score"`
	QualityDistribution map[QualityLevel]int    `json:"quality_distribution"`
}

// Batch applies the translator and assessor across sequences of inputs and
// reduces the results. Items are processed in order; an empty input sequence
// produces an empty, zero-averaged summary rather than an error.
type Batch struct {
	translator *Translator
	assessor   *Assessor
}

// NewBatch creates a Batch over the given translator and assessor.
func NewBatch(translator *Translator, assessor *Assessor) *Batch {
	return &Batch{translator: translator, assessor: assessor}
}

// TranslateBatch translates every text in order and reports the arithmetic
// mean of the per-item confidences, zero for an empty batch.
func (b *Batch) TranslateBatch(texts []string, direction Direction) BatchSummary {
	results := make([]TranslationResult, 0, len(texts))
	var totalConfidence float64
	for _, text := range texts {
		result := b.translator.TranslateSingle(text, direction)
		results = append(results, result)
		totalConfidence += result.Confidence
	}

	summary := BatchSummary{
		Results:           results,
		TotalTranslations: len(results),
	}
	if len(results) > 0 {
		summary.AverageConfidence = totalConfidence / float64(len(results))
	}
	return summary
}

// BackTranslateBatch assesses every text in order and reports the mean
// overall score plus a count of results per quality level. Every level
// appears in the distribution even when its count is zero.
func (b *Batch) BackTranslateBatch(texts []string, sourceDirection Direction) BackTranslationSummary {
	results := make([]BackTranslationResult, 0, len(texts))
	distribution := make(map[QualityLevel]int, len(QualityLevels))
	for _, level := range QualityLevels {
		distribution[level] = 0
	}

	var totalScore float64
	for _, text := range texts {
		result := b.assessor.BackTranslate(text, sourceDirection)
		results = append(results, result)
		totalScore += result.OverallQuality.OverallScore
		if _, ok := distribution[result.OverallQuality.Level]; ok {
			distribution[result.OverallQuality.Level]++
		}
	}

	summary := BackTranslationSummary{
		Results:             results,
		TotalTexts:          len(results),
		QualityDistribution: distribution,
	}
	if len(results) > 0 {
		summary.AverageQualityScore = round2(totalScore / float64(len(results)))
	}
	return summary
}
