package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ojonugwa/igatrans/internal/translation"
)

func newSuggestCommand() *cobra.Command {
	var language string
	var limit int

	command := &cobra.Command{
		Use:   "suggest [partial]",
		Short: "Suggest dictionary words completing a partial word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lexicon, _, err := loadLexicon()
			if err != nil {
				return err
			}

			suggestions := translation.NewSuggester(lexicon).Suggest(args[0], language, limit)
			if len(suggestions) == 0 {
				fmt.Println("No suggestions found")
				return nil
			}
			for _, suggestion := range suggestions {
				fmt.Println(suggestion)
			}
			return nil
		},
	}

	flags := command.Flags()
	flags.StringVar(&language, "language", translation.LanguageEnglish,
		fmt.Sprintf("Dictionary side to search. Possible values are %v",
			[]string{translation.LanguageEnglish, translation.LanguageIgala}))
	flags.IntVar(&limit, "limit", 10, "Maximum number of suggestions")

	return command
}
