package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ojonugwa/igatrans/internal/translation"
)

func newDetectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "detect [text]...",
		Short: "Detect whether text is English or Igala",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lexicon, _, err := loadLexicon()
			if err != nil {
				return err
			}

			language := translation.NewDetector(lexicon).Detect(joinedArgs(args))
			fmt.Println(language)
			return nil
		},
	}
}
