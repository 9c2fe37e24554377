package translate

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"linguaflow/internal/api"
	"linguaflow/internal/cache"
	"linguaflow/internal/database"
	"linguaflow/internal/genai"
	"linguaflow/internal/history"
	"linguaflow/internal/metrics"
	"linguaflow/internal/middleware"
	"linguaflow/internal/model"
	"linguaflow/internal/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// history records assume the submitted text is English
	defaultSourceLang = "en"

	cacheTTL     = time.Hour
	maxImageSize = 8 << 20
)

// imageHTTPClient fetches image URLs referenced by translate requests.
var imageHTTPClient = &http.Client{Timeout: 15 * time.Second}

func textPrompt(label, text string) string {
	return fmt.Sprintf("Translate the following text to %s. Only provide the translation without any additional text or explanations:\n\n%s", label, text)
}

func imagePrompt(label string) string {
	return fmt.Sprintf(`Please translate the text in this image to %s. If there's no text in the image, please respond with "No text found in the image."`, label)
}

func cacheKey(text, code string) string {
	sum := sha256.Sum256([]byte(text + "\x00" + code))
	return "translate:" + hex.EncodeToString(sum[:])
}

// fetchImage resolves a data URI or a plain URL into raw bytes plus a MIME
// type for the multimodal request.
func fetchImage(ctx context.Context, image string) ([]byte, string, error) {
	if strings.HasPrefix(image, "data:") {
		meta, payload, ok := strings.Cut(image[len("data:"):], ",")
		if !ok {
			return nil, "", fmt.Errorf("malformed data URI")
		}
		mimeType := strings.TrimSuffix(meta, ";base64")
		if mimeType == "" {
			mimeType = "image/jpeg"
		}
		data, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, "", fmt.Errorf("decode data URI: %w", err)
		}
		return data, mimeType, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, image, nil)
	if err != nil {
		return nil, "", err
	}
	resp, err := imageHTTPClient.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("fetch image: status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageSize))
	if err != nil {
		return nil, "", err
	}
	mimeType := resp.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	return data, mimeType, nil
}

// TranslateHandler 翻譯文字或圖片
// @Summary     Translate text or an image
// @Description 將文字或圖片中的文字翻譯成目標語言；登入時會非同步寫入翻譯紀錄
// @Tags        translate
// @Accept      json
// @Produce     json
// @Param       body body api.TranslateRequest true "Translate payload"
// @Success     200 {object} api.TranslateResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /translate [post]
func TranslateHandler(db database.DB, cch cache.Cache, gen genai.Generator, rec *history.Recorder) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.TranslateRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		}

		req.Text = strings.TrimSpace(req.Text)
		if req.Text == "" && req.Image == "" {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "no text or image provided"})
		}

		lang, err := service.ResolveLanguage(req.TargetLanguage)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		}

		ctx := c.Request().Context()
		var translated string
		if req.Text != "" {
			translated, err = translateText(ctx, cch, gen, req.Text, lang)
		} else {
			translated, err = translateImage(ctx, gen, req.Image, lang)
		}
		if err != nil {
			c.Logger().Errorf("translate: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to translate"})
		}
		metrics.TranslationsTotal.Inc()

		// History is at-most-effort: a failed write never fails the response.
		if claims := middleware.ClaimsFrom(c); claims != nil {
			source := req.Text
			if source == "" {
				source = model.ImageSourceSentinel
			}
			rec.Record(model.Translation{
				ID:             uuid.New(),
				SourceText:     source,
				TranslatedText: translated,
				SourceLang:     defaultSourceLang,
				TargetLang:     lang.Label,
				UserID:         claims.UserID,
			})
		}

		return c.JSON(http.StatusOK, api.TranslateResponse{TranslatedText: translated})
	}
}

func translateText(ctx context.Context, cch cache.Cache, gen genai.Generator, text string, lang service.Language) (string, error) {
	key := cacheKey(text, lang.Code)
	if cached, err := cch.Get(ctx, key).Result(); err == nil {
		metrics.TranslationCacheHitsTotal.Inc()
		return cached, nil
	}

	start := time.Now()
	translated, err := gen.GenerateText(ctx, textPrompt(lang.Label, text))
	metrics.UpstreamDurationSeconds.WithLabelValues("genai").Observe(time.Since(start).Seconds())
	if err != nil {
		return "", err
	}

	// a failed cache write only costs the next caller a model round trip
	cch.Set(ctx, key, translated, cacheTTL)
	return translated, nil
}

func translateImage(ctx context.Context, gen genai.Generator, image string, lang service.Language) (string, error) {
	data, mimeType, err := fetchImage(ctx, image)
	if err != nil {
		return "", err
	}

	start := time.Now()
	translated, err := gen.GenerateFromImage(ctx, imagePrompt(lang.Label), mimeType, data)
	metrics.UpstreamDurationSeconds.WithLabelValues("genai").Observe(time.Since(start).Seconds())
	if err != nil {
		return "", err
	}
	return translated, nil
}
