package voice

import (
	"net/http"
	"time"

	"linguaflow/internal/api"
	"linguaflow/internal/metrics"
	"linguaflow/internal/transcribe"

	"github.com/labstack/echo/v4"
)

// VoiceHandler 將語音轉為文字
// @Summary     Transcribe an audio clip
// @Description 將可公開存取的音訊 URL 轉成文字，並回傳偵測到的語言
// @Tags        voice
// @Accept      json
// @Produce     json
// @Param       body body api.VoiceRequest true "Voice payload"
// @Success     200 {object} api.VoiceResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /voice [post]
func VoiceHandler(tr transcribe.Transcriber) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.VoiceRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		}

		start := time.Now()
		result, err := tr.Transcribe(c.Request().Context(), req.AudioURL)
		metrics.UpstreamDurationSeconds.WithLabelValues("transcribe").Observe(time.Since(start).Seconds())
		if err != nil {
			c.Logger().Errorf("voice: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to process voice input"})
		}

		return c.JSON(http.StatusOK, api.VoiceResponse{Text: result.Text, Language: result.Language})
	}
}
