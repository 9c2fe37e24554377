package api

// swagger:model api.ChatRequest
type ChatRequest struct {
	Message string `json:"message" validate:"required" example:"How do I say thank you in French?"`
}
