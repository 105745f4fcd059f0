package main

import (
	"fmt"
	"strconv"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"github.com/ojonugwa/igatrans/internal/database"
	"github.com/ojonugwa/igatrans/internal/history"
)

func newHistoryCommand() *cobra.Command {
	historyCommand := &cobra.Command{
		Use:   "history",
		Short: "Translation history and favorite words",
	}

	historyCommand.AddCommand(newHistoryListCommand())
	historyCommand.AddCommand(newFavoritesCommand())

	return historyCommand
}

func openDatabase() (*sqlx.DB, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("database.Open() > %w", err)
	}
	return db, nil
}

func newHistoryListCommand() *cobra.Command {
	var limit int

	command := &cobra.Command{
		Use:   "list",
		Short: "Show recent translations",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDatabase()
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			records, err := history.NewDBTranslationRepository(db).FindRecent(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("repository.FindRecent() > %w", err)
			}
			if len(records) == 0 {
				fmt.Println("No translations recorded yet")
				return nil
			}
			for _, record := range records {
				fmt.Printf("%s  [%s] %s => %s ", record.CreatedAt.Format("2006-01-02 15:04"),
					record.Direction, record.Original, record.Translated)
				confidenceColor(record.Confidence).Printf("(%.2f%%)\n", record.Confidence)
			}
			return nil
		},
	}

	command.Flags().IntVar(&limit, "limit", 20, "Maximum number of records")

	return command
}

func newFavoritesCommand() *cobra.Command {
	favoritesCommand := &cobra.Command{
		Use:   "favorites",
		Short: "Manage favorite word pairs",
	}

	favoritesCommand.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Show all favorite word pairs",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDatabase()
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			favorites, err := history.NewDBFavoriteRepository(db).FindAll(cmd.Context())
			if err != nil {
				return fmt.Errorf("repository.FindAll() > %w", err)
			}
			if len(favorites) == 0 {
				fmt.Println("No favorites saved yet")
				return nil
			}
			for _, favorite := range favorites {
				fmt.Printf("%d\t%s => %s\n", favorite.ID, favorite.English, favorite.Igala)
			}
			return nil
		},
	})

	favoritesCommand.AddCommand(&cobra.Command{
		Use:   "add [english] [igala]",
		Short: "Save a favorite word pair",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDatabase()
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			favorite := history.FavoriteWord{English: args[0], Igala: args[1]}
			if err := history.NewDBFavoriteRepository(db).Upsert(cmd.Context(), &favorite); err != nil {
				return fmt.Errorf("repository.Upsert() > %w", err)
			}
			fmt.Printf("Saved %s => %s\n", favorite.English, favorite.Igala)
			return nil
		},
	})

	favoritesCommand.AddCommand(&cobra.Command{
		Use:   "remove [id]",
		Short: "Remove a favorite word pair by its ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("id must be an integer: %s", args[0])
			}

			db, err := openDatabase()
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			if err := history.NewDBFavoriteRepository(db).Delete(cmd.Context(), id); err != nil {
				return fmt.Errorf("repository.Delete() > %w", err)
			}
			fmt.Printf("Removed favorite %d\n", id)
			return nil
		},
	})

	return favoritesCommand
}
