package model

import (
	"time"

	"github.com/google/uuid"
)

// ImageSourceSentinel is stored as the source text of image translations,
// where no literal source string exists.
const ImageSourceSentinel = "Image"

type Translation struct {
	ID             uuid.UUID `db:"id" json:"id"`
	SourceText     string    `db:"source_text" json:"source_text"`
	TranslatedText string    `db:"translated_text" json:"translated_text"`
	SourceLang     string    `db:"source_lang" json:"source_lang"`
	TargetLang     string    `db:"target_lang" json:"target_lang"`
	UserID         uuid.UUID `db:"user_id" json:"user_id"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}
