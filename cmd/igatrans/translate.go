package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ojonugwa/igatrans/internal/translation"
)

type directionValue translation.Direction

func (d *directionValue) Set(val string) error {
	direction := translation.Direction(val)
	if !direction.Valid() {
		return fmt.Errorf("invalid direction: %s. Possible values are %v", val,
			[]translation.Direction{translation.DirectionForward, translation.DirectionReverse})
	}
	*d = directionValue(direction)
	return nil
}

func (d directionValue) String() string {
	return string(d)
}

func (d *directionValue) Type() string {
	return "direction"
}

var _ pflag.Value = (*directionValue)(nil)

func newTranslateCommand() *cobra.Command {
	direction := directionValue(translation.DirectionForward)

	command := &cobra.Command{
		Use:   "translate [text]...",
		Short: "Translate text word by word between English and Igala",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lexicon, _, err := loadLexicon()
			if err != nil {
				return err
			}

			translator := translation.NewTranslator(lexicon)
			if len(args) == 1 {
				displayTranslation(translator.TranslateSingle(args[0], translation.Direction(direction)))
				return nil
			}

			assessor := translation.NewAssessor(translator)
			summary := translation.NewBatch(translator, assessor).
				TranslateBatch(args, translation.Direction(direction))
			for _, result := range summary.Results {
				displayTranslation(result)
			}
			fmt.Printf("\nTranslated %d texts, average confidence %.2f%%\n",
				summary.TotalTranslations, summary.AverageConfidence)
			return nil
		},
	}

	command.Flags().Var(&direction, "direction",
		fmt.Sprintf("Translation direction. Possible values are %v",
			[]translation.Direction{translation.DirectionForward, translation.DirectionReverse}))

	return command
}

func displayTranslation(result translation.TranslationResult) {
	fmt.Printf("%s => %s ", result.Original, result.Translated)
	confidenceColor(result.Confidence).Printf("(%.2f%%)\n", result.Confidence)
}

func confidenceColor(confidence float64) *color.Color {
	switch {
	case confidence >= 80:
		return color.New(color.FgGreen)
	case confidence >= 50:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}

func joinedArgs(args []string) string {
	return strings.Join(args, " ")
}
