package api

// swagger:model api.VoiceResponse
type VoiceResponse struct {
	Text     string `json:"text"`
	Language string `json:"language" example:"en"`
}
