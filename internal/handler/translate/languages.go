package translate

import (
	"net/http"

	"linguaflow/internal/api"
	"linguaflow/internal/service"

	"github.com/labstack/echo/v4"
)

// LanguagesHandler lists the supported translation targets.
// @Summary     List supported languages
// @Tags        translate
// @Produce     json
// @Success     200 {array} api.LanguageResponse
// @Router      /languages [get]
func LanguagesHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		supported := service.SupportedLanguages()
		resp := make([]api.LanguageResponse, 0, len(supported))
		for _, l := range supported {
			resp = append(resp, api.LanguageResponse{Code: l.Code, Label: l.Label})
		}
		return c.JSON(http.StatusOK, resp)
	}
}
