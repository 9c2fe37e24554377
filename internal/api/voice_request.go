package api

// swagger:model api.VoiceRequest
type VoiceRequest struct {
	AudioURL string `json:"audio_url" validate:"required,url" example:"https://example.com/uploads/clip.wav"`
}
