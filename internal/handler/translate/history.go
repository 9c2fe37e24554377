package translate

import (
	"net/http"

	"linguaflow/internal/api"
	"linguaflow/internal/database"
	"linguaflow/internal/middleware"
	"linguaflow/internal/store"

	"github.com/labstack/echo/v4"
)

var listTranslationsByUser = store.ListTranslationsByUser

// HistoryHandler 取得當前使用者的翻譯紀錄
// @Summary     List translation history
// @Description 回傳當前使用者的翻譯紀錄，依建立時間新到舊排序
// @Tags        translate
// @Produce     json
// @Success     200 {object} api.TranslationsResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /translations [get]
func HistoryHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := middleware.ClaimsFrom(c)
		if claims == nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		}

		translations, err := listTranslationsByUser(c.Request().Context(), db, claims.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to fetch translations"})
		}

		resp := api.TranslationsResponse{Translations: make([]api.TranslationResponse, 0, len(translations))}
		for _, tr := range translations {
			resp.Translations = append(resp.Translations, api.TranslationResponse{
				ID:             tr.ID,
				SourceText:     tr.SourceText,
				TranslatedText: tr.TranslatedText,
				SourceLang:     tr.SourceLang,
				TargetLang:     tr.TargetLang,
				CreatedAt:      tr.CreatedAt,
			})
		}
		return c.JSON(http.StatusOK, resp)
	}
}
