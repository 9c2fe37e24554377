package api

// swagger:model api.LanguageResponse
type LanguageResponse struct {
	Code  string `json:"code" example:"es"`
	Label string `json:"label" example:"Spanish"`
}
