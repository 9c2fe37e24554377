package api

// swagger:model api.TranslateResponse
type TranslateResponse struct {
	TranslatedText string `json:"translated_text" example:"hola"`
}
