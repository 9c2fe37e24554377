package api

// swagger:model api.AwardPointsRequest
type AwardPointsRequest struct {
	Points int `json:"points" validate:"required,gt=0" example:"20"`
}
