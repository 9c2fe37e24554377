package translate

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"linguaflow/internal/api"
	"linguaflow/internal/database"
	"linguaflow/internal/middleware"
	"linguaflow/internal/model"
	"linguaflow/internal/service"
	"linguaflow/internal/store"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestHistoryHandler(t *testing.T) {
	t.Cleanup(func() { listTranslationsByUser = store.ListTranslationsByUser })

	e := echo.New()
	db := &database.FakeDB{}

	// anonymous
	ctx, w := newJSONCtx(e, "")
	require.NoError(t, HistoryHandler(db)(ctx))
	require.Equal(t, http.StatusUnauthorized, w.Code)

	userID := uuid.New()

	// storage failure
	listTranslationsByUser = func(context.Context, database.DB, uuid.UUID) ([]model.Translation, error) {
		return nil, errors.New("boom")
	}
	ctx, w = newJSONCtx(e, "")
	ctx.Set(middleware.ContextUserKey, &service.Claims{UserID: userID})
	require.NoError(t, HistoryHandler(db)(ctx))
	require.Equal(t, http.StatusInternalServerError, w.Code)

	// success
	now := time.Now().UTC().Truncate(time.Second)
	listTranslationsByUser = func(ctx context.Context, db database.DB, id uuid.UUID) ([]model.Translation, error) {
		require.Equal(t, userID, id)
		return []model.Translation{
			{ID: uuid.New(), SourceText: "Hello", TranslatedText: "Hola", SourceLang: "en", TargetLang: "Spanish", UserID: id, CreatedAt: now},
		}, nil
	}
	ctx, w = newJSONCtx(e, "")
	ctx.Set(middleware.ContextUserKey, &service.Claims{UserID: userID})
	require.NoError(t, HistoryHandler(db)(ctx))
	require.Equal(t, http.StatusOK, w.Code)

	var resp api.TranslationsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Translations, 1)
	require.Equal(t, "Hola", resp.Translations[0].TranslatedText)

	// empty history serializes as an empty list, not null
	listTranslationsByUser = func(context.Context, database.DB, uuid.UUID) ([]model.Translation, error) {
		return nil, nil
	}
	ctx, w = newJSONCtx(e, "")
	ctx.Set(middleware.ContextUserKey, &service.Claims{UserID: userID})
	require.NoError(t, HistoryHandler(db)(ctx))
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"translations":[]`)
}
