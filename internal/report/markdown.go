// Package report renders quality assessments as markdown and PDF documents.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ojonugwa/igatrans/internal/translation"
)

// BuildAssessment renders a single back-translation assessment as markdown.
func BuildAssessment(result translation.BackTranslationResult) string {
	var sb strings.Builder

	sb.WriteString("# Translation Quality Assessment\n\n")
	fmt.Fprintf(&sb, "Generated at %s\n\n", result.Timestamp.Format(time.RFC3339))

	sb.WriteString("## Texts\n\n")
	fmt.Fprintf(&sb, "- Original (%s): %s\n", result.SourceDirection, result.OriginalText)
	fmt.Fprintf(&sb, "- Forward translation: %s\n", result.ForwardTranslation)
	fmt.Fprintf(&sb, "- Back translation: %s\n\n", result.BackTranslation)

	sb.WriteString("## Scores\n\n")
	fmt.Fprintf(&sb, "| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(&sb, "| Forward confidence | %.2f |\n", result.ForwardConfidence)
	fmt.Fprintf(&sb, "| Back confidence | %.2f |\n", result.BackConfidence)
	fmt.Fprintf(&sb, "| Similarity | %.2f |\n", result.QualityMetrics.SimilarityScore)
	fmt.Fprintf(&sb, "| Word overlap | %d of %d |\n",
		result.QualityMetrics.WordOverlap, result.QualityMetrics.TotalOriginalWords)
	fmt.Fprintf(&sb, "| Overall | %.2f (%s) |\n\n",
		result.OverallQuality.OverallScore, result.OverallQuality.Level)

	fmt.Fprintf(&sb, "%s\n\n", result.OverallQuality.Description)

	sb.WriteString("## Recommendations\n\n")
	for _, recommendation := range result.OverallQuality.Recommendations {
		fmt.Fprintf(&sb, "- %s\n", recommendation)
	}

	return sb.String()
}

// BuildBatchSummary renders a batch assessment summary as markdown.
func BuildBatchSummary(summary translation.BackTranslationSummary) string {
	var sb strings.Builder

	sb.WriteString("# Batch Quality Assessment\n\n")
	fmt.Fprintf(&sb, "- Texts assessed: %d\n", summary.TotalTexts)
	fmt.Fprintf(&sb, "- Average quality score: %.2f\n\n", summary.AverageQualityScore)

	sb.WriteString("## Quality Distribution\n\n")
	fmt.Fprintf(&sb, "| Level | Count |\n|---|---|\n")
	for _, level := range translation.QualityLevels {
		fmt.Fprintf(&sb, "| %s | %d |\n", level, summary.QualityDistribution[level])
	}
	sb.WriteString("\n")

	for i, result := range summary.Results {
		fmt.Fprintf(&sb, "## Text %d: %s\n\n", i+1, result.OverallQuality.Level)
		fmt.Fprintf(&sb, "- Original: %s\n", result.OriginalText)
		fmt.Fprintf(&sb, "- Back translation: %s\n", result.BackTranslation)
		fmt.Fprintf(&sb, "- Overall score: %.2f\n\n", result.OverallQuality.OverallScore)
	}

	return strings.TrimRight(sb.String(), "\n") + "\n"
}

// Save writes markdown content under dir and returns the file path.
func Save(dir, name, content string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("os.MkdirAll(%s) > %w", dir, err)
	}

	path := filepath.Join(dir, name)
	if !strings.HasSuffix(path, ".md") {
		path += ".md"
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("os.WriteFile(%s) > %w", path, err)
	}
	return path, nil
}
