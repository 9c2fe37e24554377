package auth

import (
	"errors"
	"net/http"
	"strings"

	"linguaflow/internal/api"
	"linguaflow/internal/database"
	"linguaflow/internal/model"
	"linguaflow/internal/service"
	"linguaflow/internal/store"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

var (
	hashPassword    = service.HashPassword
	comparePassword = service.ComparePassword
	createUser      = store.CreateUser
	getUserByEmail  = store.GetUserByEmail
)

func toUserResponse(u *model.User) api.UserResponse {
	return api.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Points:    u.Points,
		CreatedAt: u.CreatedAt,
	}
}

// SignupHandler 建立新帳號
// @Summary     Sign up
// @Description 接收註冊資料並建立新帳號 (Email 會自動轉小寫)
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body api.SignupRequest true "Signup payload"
// @Success     201 {object} api.SignupResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/signup [post]
func SignupHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.SignupRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		}

		// validator's required tag passes whitespace-only strings
		req.Email = strings.ToLower(strings.TrimSpace(req.Email))
		if req.Email == "" || strings.TrimSpace(req.Password) == "" {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "email and password are required"})
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to create account"})
		}

		user, err := createUser(c.Request().Context(), db, &model.User{
			ID:           uuid.New(),
			Name:         strings.TrimSpace(req.Name),
			Email:        req.Email,
			PasswordHash: hash,
		})
		if err != nil {
			if errors.Is(err, store.ErrDuplicateEmail) {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "email already registered"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to create account"})
		}

		return c.JSON(http.StatusCreated, api.SignupResponse{User: toUserResponse(user)})
	}
}
