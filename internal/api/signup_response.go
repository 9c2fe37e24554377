package api

// swagger:model api.SignupResponse
type SignupResponse struct {
	User UserResponse `json:"user"`
}
