package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ojonugwa/igatrans/internal/corpus"
	"github.com/ojonugwa/igatrans/internal/synthetic"
	"github.com/ojonugwa/igatrans/internal/tagger"
)

func newCorpusCommand() *cobra.Command {
	corpusCommand := &cobra.Command{
		Use:   "corpus",
		Short: "Corpus maintenance commands",
	}

	corpusCommand.AddCommand(newCorpusTagCommand())
	corpusCommand.AddCommand(newCorpusSyntheticCommand())

	return corpusCommand
}

func newCorpusTagCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tag [input.csv] [output.csv]",
		Short: "Tag every English word in a dictionary CSV with its part of speech",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.Tagger.BaseURL == "" {
				return fmt.Errorf("TAGGER_BASE_URL environment variable is required")
			}

			entries, err := corpus.LoadFile(args[0])
			if err != nil {
				return fmt.Errorf("corpus.LoadFile(%s) > %w", args[0], err)
			}

			client := tagger.NewHTTPClient(cfg.Tagger.BaseURL, cfg.Tagger.APIKey,
				uint(cfg.Tagger.MaxAttempts))
			defer func() {
				_ = client.Close()
			}()

			words := make([]string, 0, len(entries))
			for _, entry := range entries {
				words = append(words, entry.English)
			}

			tagged, err := client.TagWords(cmd.Context(), words)
			if err != nil {
				return fmt.Errorf("client.TagWords() > %w", err)
			}
			for i := range entries {
				entries[i].PartOfSpeech = tagged[i].TagString()
			}

			output, err := os.Create(args[1])
			if err != nil {
				return fmt.Errorf("os.Create(%s) > %w", args[1], err)
			}
			defer func() {
				_ = output.Close()
			}()

			if err := corpus.WriteCSV(output, entries); err != nil {
				return fmt.Errorf("corpus.WriteCSV() > %w", err)
			}
			fmt.Printf("Tagged %d entries into %s\n", len(entries), args[1])
			return nil
		},
	}
}

func newCorpusSyntheticCommand() *cobra.Command {
	var count int
	var seed int64
	var outputPath string

	command := &cobra.Command{
		Use:   "synthetic",
		Short: "Generate synthetic parallel phrases from the tagged dictionary",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, entries, err := loadLexicon()
			if err != nil {
				return err
			}

			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			sentences := synthetic.NewGenerator(entries, seed).Generate(count)
			if len(sentences) == 0 {
				return fmt.Errorf("no phrases generated: the dictionary needs JJ, NN and VB tagged words")
			}

			if outputPath != "" {
				content, err := yaml.Marshal(sentences)
				if err != nil {
					return fmt.Errorf("yaml.Marshal() > %w", err)
				}
				if err := os.WriteFile(outputPath, content, 0644); err != nil {
					return fmt.Errorf("os.WriteFile(%s) > %w", outputPath, err)
				}
				fmt.Printf("Wrote %d phrases to %s\n", len(sentences), outputPath)
				return nil
			}

			for _, sentence := range sentences {
				fmt.Printf("%s => %s\n", sentence.Igala, sentence.English)
			}
			return nil
		},
	}

	flags := command.Flags()
	flags.IntVar(&count, "count", 10, "Number of phrases to generate")
	flags.Int64Var(&seed, "seed", 0, "Random seed, 0 uses the current time")
	flags.StringVar(&outputPath, "output", "", "Write phrases to a YAML file instead of stdout")

	return command
}
