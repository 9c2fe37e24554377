package chat

import (
	"net/http"
	"strings"
	"time"

	"linguaflow/internal/api"
	"linguaflow/internal/genai"
	"linguaflow/internal/metrics"

	"github.com/labstack/echo/v4"
)

// ChatHandler 與生成模型自由對話
// @Summary     Chat with the language assistant
// @Tags        chat
// @Accept      json
// @Produce     json
// @Param       body body api.ChatRequest true "Chat payload"
// @Success     200 {object} api.ChatResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /chat [post]
func ChatHandler(gen genai.Generator) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.ChatRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		}
		if strings.TrimSpace(req.Message) == "" {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "prompt cannot be empty"})
		}

		start := time.Now()
		output, err := gen.GenerateText(c.Request().Context(), req.Message)
		metrics.UpstreamDurationSeconds.WithLabelValues("genai").Observe(time.Since(start).Seconds())
		if err != nil {
			c.Logger().Errorf("chat: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to generate response"})
		}

		return c.JSON(http.StatusOK, api.ChatResponse{Output: output})
	}
}
