// Package history persists translation history and favorite word pairs.
// The translation core never touches this package; the HTTP and CLI layers
// record results here after the fact.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// TranslationRecord is one stored translation call.
type TranslationRecord struct {
	ID         int64     `db:"id" json:"id"`
	Original   string    `db:"original" json:"original"`
	Translated string    `db:"translated" json:"translated"`
	Confidence float64   `db:"confidence" json:"confidence"`
	Direction  string    `db:"direction" json:"direction"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// FavoriteWord is a word pair a user starred.
type FavoriteWord struct {
	ID        int64     `db:"id" json:"id"`
	English   string    `db:"english" json:"english"`
	Igala     string    `db:"igala" json:"igala"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

//go:generate mockgen -source=repository.go -destination=../mocks/history/mock_repository.go -package=mock_history

// TranslationRepository defines operations for managing translation history.
type TranslationRepository interface {
	FindRecent(ctx context.Context, limit int) ([]TranslationRecord, error)
	Create(ctx context.Context, record *TranslationRecord) error
}

// FavoriteRepository defines operations for managing favorite words.
type FavoriteRepository interface {
	FindAll(ctx context.Context) ([]FavoriteWord, error)
	FindByEnglish(ctx context.Context, english string) (*FavoriteWord, error)
	Upsert(ctx context.Context, favorite *FavoriteWord) error
	Delete(ctx context.Context, id int64) error
}

// DBTranslationRepository implements TranslationRepository using MySQL.
type DBTranslationRepository struct {
	db *sqlx.DB
}

// NewDBTranslationRepository creates a new DBTranslationRepository.
func NewDBTranslationRepository(db *sqlx.DB) *DBTranslationRepository {
	return &DBTranslationRepository{db: db}
}

// FindRecent returns the most recent translation records, newest first.
func (r *DBTranslationRepository) FindRecent(ctx context.Context, limit int) ([]TranslationRecord, error) {
	var records []TranslationRecord
	if err := r.db.SelectContext(ctx, &records,
		"SELECT * FROM translation_logs ORDER BY created_at DESC, id DESC LIMIT ?", limit); err != nil {
		return nil, fmt.Errorf("db.SelectContext(translation_logs) > %w", err)
	}
	return records, nil
}

// Create inserts a new translation record and sets its ID.
func (r *DBTranslationRepository) Create(ctx context.Context, record *TranslationRecord) error {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO translation_logs (original, translated, confidence, direction)
		VALUES (?, ?, ?, ?)`,
		record.Original, record.Translated, record.Confidence, record.Direction)
	if err != nil {
		return fmt.Errorf("db.ExecContext(insert translation_log) > %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("result.LastInsertId() > %w", err)
	}
	record.ID = id
	return nil
}

// DBFavoriteRepository implements FavoriteRepository using MySQL.
type DBFavoriteRepository struct {
	db *sqlx.DB
}

// NewDBFavoriteRepository creates a new DBFavoriteRepository.
func NewDBFavoriteRepository(db *sqlx.DB) *DBFavoriteRepository {
	return &DBFavoriteRepository{db: db}
}

// FindAll returns all favorites ordered by English word.
func (r *DBFavoriteRepository) FindAll(ctx context.Context) ([]FavoriteWord, error) {
	var favorites []FavoriteWord
	if err := r.db.SelectContext(ctx, &favorites,
		"SELECT * FROM favorite_words ORDER BY english"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(favorite_words) > %w", err)
	}
	return favorites, nil
}

// FindByEnglish returns a favorite by its English word, or nil if not found.
func (r *DBFavoriteRepository) FindByEnglish(ctx context.Context, english string) (*FavoriteWord, error) {
	var favorite FavoriteWord
	err := r.db.GetContext(ctx, &favorite,
		"SELECT * FROM favorite_words WHERE english = ?", english)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(favorite_word) > %w", err)
	}
	return &favorite, nil
}

// Upsert inserts or updates a favorite word pair.
func (r *DBFavoriteRepository) Upsert(ctx context.Context, favorite *FavoriteWord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO favorite_words (english, igala)
		VALUES (?, ?)
		ON DUPLICATE KEY UPDATE igala = VALUES(igala)`,
		favorite.English, favorite.Igala)
	if err != nil {
		return fmt.Errorf("db.ExecContext(upsert favorite_word) > %w", err)
	}
	return nil
}

// Delete removes a favorite by ID.
func (r *DBFavoriteRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM favorite_words WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("db.ExecContext(delete favorite_word) > %w", err)
	}
	return nil
}
