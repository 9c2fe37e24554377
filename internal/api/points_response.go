package api

// swagger:model api.PointsResponse
type PointsResponse struct {
	Points int `json:"points" example:"40"`
}
