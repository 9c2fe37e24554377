package api

// swagger:model api.LoginResponse
type LoginResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}
