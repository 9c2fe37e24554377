package api

// TranslateRequest carries either literal text or an image (data URI or
// URL); at least one must be present.
// swagger:model api.TranslateRequest
type TranslateRequest struct {
	Text           string `json:"text,omitempty" example:"hello"`
	Image          string `json:"image,omitempty" example:"data:image/jpeg;base64,/9j/4AAQ..."`
	TargetLanguage string `json:"target_language" validate:"required" example:"Spanish (Español)"`
}
