package api

// swagger:model api.SignupRequest
type SignupRequest struct {
	Name     string `json:"name" example:"Alice"`
	Email    string `json:"email" validate:"required,email" example:"alice@example.com"`
	Password string `json:"password" validate:"required" example:"Secret123!"`
}
