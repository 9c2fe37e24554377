package translate

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"linguaflow/internal/cache"
	"linguaflow/internal/database"
	"linguaflow/internal/genai"
	"linguaflow/internal/history"
	"linguaflow/internal/middleware"
	"linguaflow/internal/service"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type errBinder struct{}

func (errBinder) Bind(i any, c echo.Context) error { return errors.New("bind") }

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

type scanRow struct {
	fn func(dest ...any) error
}

func (r scanRow) Scan(dest ...any) error { return r.fn(dest...) }

// missCache behaves like an empty redis: every Get misses, Sets are recorded.
func missCache(sets *map[string]string) *cache.FakeCache {
	var mu sync.Mutex
	return &cache.FakeCache{
		GetFn: func(ctx context.Context, key string) *redis.StringCmd {
			return redis.NewStringResult("", redis.Nil)
		},
		SetFn: func(ctx context.Context, key string, value any, ttl time.Duration) *redis.StatusCmd {
			mu.Lock()
			defer mu.Unlock()
			if *sets == nil {
				*sets = map[string]string{}
			}
			(*sets)[key], _ = value.(string)
			return redis.NewStatusResult("OK", nil)
		},
	}
}

func TestCacheKey(t *testing.T) {
	require.True(t, strings.HasPrefix(cacheKey("hello", "es"), "translate:"))
	require.Equal(t, cacheKey("hello", "es"), cacheKey("hello", "es"))
	require.NotEqual(t, cacheKey("hello", "es"), cacheKey("hello", "fr"))
	require.NotEqual(t, cacheKey("hello", "es"), cacheKey("hellofr", "es"))
}

func TestFetchImageDataURI(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("png-bytes"))

	data, mimeType, err := fetchImage(context.Background(), "data:image/png;base64,"+payload)
	require.NoError(t, err)
	require.Equal(t, []byte("png-bytes"), data)
	require.Equal(t, "image/png", mimeType)

	_, mimeType, err = fetchImage(context.Background(), "data:;base64,"+payload)
	require.NoError(t, err)
	require.Equal(t, "image/jpeg", mimeType)

	_, _, err = fetchImage(context.Background(), "data:image/png;base64")
	require.Error(t, err)

	_, _, err = fetchImage(context.Background(), "data:image/png;base64,!!!")
	require.Error(t, err)
}

func TestFetchImageURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "image/webp")
		_, _ = w.Write([]byte("webp-bytes"))
	}))
	defer srv.Close()

	data, mimeType, err := fetchImage(context.Background(), srv.URL+"/photo.webp")
	require.NoError(t, err)
	require.Equal(t, []byte("webp-bytes"), data)
	require.Equal(t, "image/webp", mimeType)

	_, _, err = fetchImage(context.Background(), srv.URL+"/missing")
	require.Error(t, err)
}

func TestTranslateHandlerValidation(t *testing.T) {
	db := &database.FakeDB{}
	gen := &genai.FakeGenerator{}
	rec := history.NewRecorder(db, 1)
	defer rec.Close()

	e := echo.New()
	e.Binder = errBinder{}
	ctx, w := newJSONCtx(e, "")
	require.NoError(t, TranslateHandler(db, &cache.FakeCache{}, gen, rec)(ctx))
	require.Equal(t, http.StatusBadRequest, w.Code)

	e = echo.New()
	e.Validator = errValidator{}
	ctx, w = newJSONCtx(e, `{"text":"hi","target_language":"es"}`)
	require.NoError(t, TranslateHandler(db, &cache.FakeCache{}, gen, rec)(ctx))
	require.Equal(t, http.StatusBadRequest, w.Code)

	e = echo.New()
	e.Validator = okValidator{}

	// neither text nor image
	ctx, w = newJSONCtx(e, `{"text":"   ","target_language":"es"}`)
	require.NoError(t, TranslateHandler(db, &cache.FakeCache{}, gen, rec)(ctx))
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "no text or image")

	// unsupported language
	ctx, w = newJSONCtx(e, `{"text":"hi","target_language":"klingon"}`)
	require.NoError(t, TranslateHandler(db, &cache.FakeCache{}, gen, rec)(ctx))
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "unsupported target language")
}

func TestTranslateHandlerText(t *testing.T) {
	db := &database.FakeDB{}
	rec := history.NewRecorder(db, 1)
	defer rec.Close()

	e := echo.New()
	e.Validator = okValidator{}

	// cache hit skips the generator entirely
	cch := &cache.FakeCache{
		GetFn: func(ctx context.Context, key string) *redis.StringCmd {
			require.Equal(t, cacheKey("Hello", "es"), key)
			return redis.NewStringResult("Hola", nil)
		},
	}
	ctx, w := newJSONCtx(e, `{"text":"Hello","target_language":"Spanish (Español)"}`)
	require.NoError(t, TranslateHandler(db, cch, &genai.FakeGenerator{}, rec)(ctx))
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Hola")

	// cache miss calls the generator and stores the result
	var sets map[string]string
	gen := &genai.FakeGenerator{
		GenerateTextFn: func(ctx context.Context, prompt string) (string, error) {
			require.Contains(t, prompt, "Translate the following text to Spanish")
			require.Contains(t, prompt, "Hello")
			return "Hola", nil
		},
	}
	ctx, w = newJSONCtx(e, `{"text":"Hello","target_language":"es"}`)
	require.NoError(t, TranslateHandler(db, missCache(&sets), gen, rec)(ctx))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Hola", sets[cacheKey("Hello", "es")])

	// generator failure maps to a generic 500
	gen = &genai.FakeGenerator{
		GenerateTextFn: func(ctx context.Context, prompt string) (string, error) {
			return "", errors.New("quota exceeded")
		},
	}
	ctx, w = newJSONCtx(e, `{"text":"Hello","target_language":"es"}`)
	require.NoError(t, TranslateHandler(db, missCache(&sets), gen, rec)(ctx))
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), "failed to translate")
	require.NotContains(t, w.Body.String(), "quota")
}

func TestTranslateHandlerImage(t *testing.T) {
	db := &database.FakeDB{}
	rec := history.NewRecorder(db, 1)
	defer rec.Close()

	payload := base64.StdEncoding.EncodeToString([]byte("png-bytes"))
	gen := &genai.FakeGenerator{
		GenerateFromImageFn: func(ctx context.Context, prompt, mimeType string, data []byte) (string, error) {
			require.Contains(t, prompt, "translate the text in this image to German")
			require.Equal(t, "image/png", mimeType)
			require.Equal(t, []byte("png-bytes"), data)
			return "Hallo", nil
		},
	}

	e := echo.New()
	e.Validator = okValidator{}
	ctx, w := newJSONCtx(e, `{"image":"data:image/png;base64,`+payload+`","target_language":"de"}`)
	require.NoError(t, TranslateHandler(db, &cache.FakeCache{}, gen, rec)(ctx))
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Hallo")

	// unreadable image
	ctx, w = newJSONCtx(e, `{"image":"data:image/png;base64","target_language":"de"}`)
	require.NoError(t, TranslateHandler(db, &cache.FakeCache{}, gen, rec)(ctx))
	require.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestTranslateHandlerRecordsHistory(t *testing.T) {
	userID := uuid.New()

	var mu sync.Mutex
	var inserted []any
	done := make(chan struct{})
	db := &database.FakeDB{
		QueryRowFn: func(ctx context.Context, sql string, args ...any) pgx.Row {
			mu.Lock()
			inserted = args
			mu.Unlock()
			close(done)
			return scanRow{fn: func(dest ...any) error {
				*(dest[0].(*time.Time)) = time.Now()
				return nil
			}}
		},
	}
	rec := history.NewRecorder(db, 1)
	defer rec.Close()

	gen := &genai.FakeGenerator{
		GenerateTextFn: func(ctx context.Context, prompt string) (string, error) {
			return "Hola", nil
		},
	}

	e := echo.New()
	e.Validator = okValidator{}
	var sets map[string]string
	ctx, w := newJSONCtx(e, `{"text":"Hello","target_language":"es"}`)
	ctx.Set(middleware.ContextUserKey, &service.Claims{UserID: userID})
	require.NoError(t, TranslateHandler(db, missCache(&sets), gen, rec)(ctx))
	require.Equal(t, http.StatusOK, w.Code)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("history write never happened")
	}

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, inserted, 6)
	require.Equal(t, "Hello", inserted[1])
	require.Equal(t, "Hola", inserted[2])
	require.Equal(t, "en", inserted[3])
	require.Equal(t, "Spanish", inserted[4])
	require.Equal(t, userID, inserted[5])
}
