package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ojonugwa/igatrans/internal/report"
	"github.com/ojonugwa/igatrans/internal/translation"
)

func newAssessCommand() *cobra.Command {
	direction := directionValue(translation.DirectionForward)
	var reportName string
	var exportPDF bool
	var batchMode bool

	command := &cobra.Command{
		Use:   "assess [text]...",
		Short: "Assess translation quality through back-translation",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			lexicon, _, err := loadLexicon()
			if err != nil {
				return err
			}

			translator := translation.NewTranslator(lexicon)
			assessor := translation.NewAssessor(translator)

			var markdown string
			if batchMode {
				summary := translation.NewBatch(translator, assessor).
					BackTranslateBatch(args, translation.Direction(direction))
				displayBatchAssessment(summary)
				markdown = report.BuildBatchSummary(summary)
			} else {
				result := assessor.BackTranslate(joinedArgs(args), translation.Direction(direction))
				displayAssessment(result)
				markdown = report.BuildAssessment(result)
			}

			if reportName == "" {
				return nil
			}

			markdownPath, err := report.Save(cfg.Reports.Directory, reportName, markdown)
			if err != nil {
				return fmt.Errorf("report.Save() > %w", err)
			}
			fmt.Printf("Report written to %s\n", markdownPath)

			if exportPDF {
				pdfPath, err := report.ConvertMarkdownToPDF(markdownPath)
				if err != nil {
					return fmt.Errorf("report.ConvertMarkdownToPDF() > %w", err)
				}
				fmt.Printf("PDF written to %s\n", pdfPath)
			}
			return nil
		},
	}

	flags := command.Flags()
	flags.Var(&direction, "direction",
		fmt.Sprintf("Source direction. Possible values are %v",
			[]translation.Direction{translation.DirectionForward, translation.DirectionReverse}))
	flags.BoolVar(&batchMode, "batch", false, "Assess each argument as a separate text")
	flags.StringVar(&reportName, "report", "", "Write a markdown report with this name")
	flags.BoolVar(&exportPDF, "pdf", false, "Also convert the report to PDF")

	return command
}

func displayBatchAssessment(summary translation.BackTranslationSummary) {
	for _, result := range summary.Results {
		displayAssessment(result)
		fmt.Println()
	}
	fmt.Printf("Assessed %d texts, average quality score %.2f\n",
		summary.TotalTexts, summary.AverageQualityScore)
	for _, level := range translation.QualityLevels {
		fmt.Printf("  %s: %d\n", level, summary.QualityDistribution[level])
	}
}

func displayAssessment(result translation.BackTranslationResult) {
	fmt.Printf("Original: %s\n", result.OriginalText)
	fmt.Printf("Forward:  %s (%.2f%%)\n", result.ForwardTranslation, result.ForwardConfidence)
	fmt.Printf("Back:     %s (%.2f%%)\n", result.BackTranslation, result.BackConfidence)
	fmt.Printf("Similarity: %.2f%%\n", result.QualityMetrics.SimilarityScore)

	verdict := fmt.Sprintf("Overall: %.2f (%s)", result.OverallQuality.OverallScore, result.OverallQuality.Level)
	switch result.OverallQuality.Level {
	case translation.QualityExcellent, translation.QualityGood:
		color.Green(verdict)
	case translation.QualityFair:
		color.Yellow(verdict)
	default:
		color.Red(verdict)
	}

	fmt.Println(result.OverallQuality.Description)
	for _, recommendation := range result.OverallQuality.Recommendations {
		fmt.Printf("- %s\n", recommendation)
	}
}
