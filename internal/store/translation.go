package store

import (
	"context"
	"fmt"

	"linguaflow/internal/database"
	"linguaflow/internal/model"

	"github.com/google/uuid"
)

func CreateTranslation(ctx context.Context, db database.DB, tr *model.Translation) (*model.Translation, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO translations (id, source_text, translated_text, source_lang, target_lang, user_id)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at`,
		tr.ID,
		tr.SourceText,
		tr.TranslatedText,
		tr.SourceLang,
		tr.TargetLang,
		tr.UserID,
	)
	if err := row.Scan(&tr.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateTranslation: %w", err)
	}
	return tr, nil
}

// ListTranslationsByUser returns the user's translations, newest first.
func ListTranslationsByUser(ctx context.Context, db database.DB, userID uuid.UUID) ([]model.Translation, error) {
	rows, err := db.Query(ctx,
		`SELECT id, source_text, translated_text, source_lang, target_lang, user_id, created_at
		 FROM translations
		 WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListTranslationsByUser: %w", err)
	}
	defer rows.Close()

	var out []model.Translation
	for rows.Next() {
		var tr model.Translation
		if err := rows.Scan(
			&tr.ID,
			&tr.SourceText,
			&tr.TranslatedText,
			&tr.SourceLang,
			&tr.TargetLang,
			&tr.UserID,
			&tr.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("ListTranslationsByUser: %w", err)
		}
		out = append(out, tr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListTranslationsByUser: %w", err)
	}
	return out, nil
}
