package api

import (
	"time"

	"github.com/google/uuid"
)

// swagger:model api.TranslationResponse
type TranslationResponse struct {
	ID             uuid.UUID `json:"id"`
	SourceText     string    `json:"source_text"`
	TranslatedText string    `json:"translated_text"`
	SourceLang     string    `json:"source_lang"`
	TargetLang     string    `json:"target_lang"`
	CreatedAt      time.Time `json:"created_at"`
}

// swagger:model api.TranslationsResponse
type TranslationsResponse struct {
	Translations []TranslationResponse `json:"translations"`
}
