package voice

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"linguaflow/internal/transcribe"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type errValidator struct{}

func (errValidator) Validate(i any) error { return errors.New("v") }

type okValidator struct{}

func (okValidator) Validate(i any) error { return nil }

func newJSONCtx(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestVoiceHandler(t *testing.T) {
	// validation failure
	e := echo.New()
	e.Validator = errValidator{}
	ctx, w := newJSONCtx(e, `{"audio_url":"not a url"}`)
	require.NoError(t, VoiceHandler(&transcribe.FakeTranscriber{})(ctx))
	require.Equal(t, http.StatusBadRequest, w.Code)

	e = echo.New()
	e.Validator = okValidator{}

	// transcriber failure
	tr := &transcribe.FakeTranscriber{
		TranscribeFn: func(ctx context.Context, audioURL string) (*transcribe.Result, error) {
			return nil, errors.New("upstream down")
		},
	}
	ctx, w = newJSONCtx(e, `{"audio_url":"https://example.com/a.wav"}`)
	require.NoError(t, VoiceHandler(tr)(ctx))
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), "failed to process voice input")
	require.NotContains(t, w.Body.String(), "upstream")

	// success
	tr = &transcribe.FakeTranscriber{
		TranscribeFn: func(ctx context.Context, audioURL string) (*transcribe.Result, error) {
			require.Equal(t, "https://example.com/a.wav", audioURL)
			return &transcribe.Result{Text: "hello world", Language: "en"}, nil
		},
	}
	ctx, w = newJSONCtx(e, `{"audio_url":"https://example.com/a.wav"}`)
	require.NoError(t, VoiceHandler(tr)(ctx))
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "hello world")
	require.Contains(t, w.Body.String(), `"language":"en"`)
}
