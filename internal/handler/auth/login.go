package auth

import (
	"net/http"
	"strings"

	"linguaflow/internal/api"
	"linguaflow/internal/database"
	"linguaflow/internal/service"

	"github.com/labstack/echo/v4"
)

// LoginHandler 使用 Email/Password 驗證並回傳 JWT
// @Summary     Log in
// @Description 使用 Email 與 Password 進行驗證，回傳使用者與存取令牌
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body api.LoginRequest true "Login payload"
// @Success     200 {object} api.LoginResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/login [post]
func LoginHandler(db database.DB, tokens *service.TokenService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		}

		// "no such user" and "wrong password" must be indistinguishable
		user, err := getUserByEmail(c.Request().Context(), db, strings.ToLower(strings.TrimSpace(req.Email)))
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid credentials"})
		}
		if err := comparePassword(user.PasswordHash, req.Password); err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid credentials"})
		}

		token, err := tokens.Issue(*user)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to issue token"})
		}

		return c.JSON(http.StatusOK, api.LoginResponse{User: toUserResponse(user), Token: token})
	}
}
