package users

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"linguaflow/internal/api"
	"linguaflow/internal/cache"
	"linguaflow/internal/database"
	"linguaflow/internal/middleware"
	"linguaflow/internal/store"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const pointsCacheTTL = 5 * time.Minute

var (
	getUserPoints = store.GetUserPoints
	addUserPoints = store.AddUserPoints
)

func pointsCacheKey(userID uuid.UUID) string {
	return "points:" + userID.String()
}

// GetPointsHandler 取得當前使用者的點數
// @Summary     Get current user points
// @Tags        users
// @Produce     json
// @Success     200 {object} api.PointsResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /user/points [get]
func GetPointsHandler(db database.DB, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := middleware.ClaimsFrom(c)
		if claims == nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		}
		ctx := c.Request().Context()

		key := pointsCacheKey(claims.UserID)
		if cached, err := cch.Get(ctx, key).Result(); err == nil {
			if points, convErr := strconv.Atoi(cached); convErr == nil {
				return c.JSON(http.StatusOK, api.PointsResponse{Points: points})
			}
		}

		points, err := getUserPoints(ctx, db, claims.UserID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "user not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to fetch user points"})
		}

		cch.Set(ctx, key, strconv.Itoa(points), pointsCacheTTL)
		return c.JSON(http.StatusOK, api.PointsResponse{Points: points})
	}
}

// AwardPointsHandler 為當前使用者加點
// @Summary     Award points to the current user
// @Description 加點後回傳新的點數總額，並讓點數快取失效
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       body body api.AwardPointsRequest true "Points to add"
// @Success     200 {object} api.PointsResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /user/points [post]
func AwardPointsHandler(db database.DB, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := middleware.ClaimsFrom(c)
		if claims == nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		}

		var req api.AwardPointsRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		}

		ctx := c.Request().Context()
		points, err := addUserPoints(ctx, db, claims.UserID, req.Points)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "user not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to update points"})
		}

		cch.Del(ctx, pointsCacheKey(claims.UserID))
		return c.JSON(http.StatusOK, api.PointsResponse{Points: points})
	}
}
