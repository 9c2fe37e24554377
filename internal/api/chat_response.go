package api

// swagger:model api.ChatResponse
type ChatResponse struct {
	Output string `json:"output"`
}
