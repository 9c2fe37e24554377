package router

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"linguaflow/internal/cache"
	"linguaflow/internal/database"
	"linguaflow/internal/genai"
	"linguaflow/internal/handler"
	"linguaflow/internal/handler/auth"
	"linguaflow/internal/handler/chat"
	"linguaflow/internal/handler/translate"
	"linguaflow/internal/handler/users"
	"linguaflow/internal/handler/voice"
	"linguaflow/internal/history"
	"linguaflow/internal/middleware"
	"linguaflow/internal/service"
	"linguaflow/internal/transcribe"
)

// Setup 註冊所有路由與中介層
func Setup(
	e *echo.Echo,
	db database.DB,
	cch cache.Cache,
	tokens *service.TokenService,
	gen genai.Generator,
	tr transcribe.Transcriber,
	rec *history.Recorder,
) {
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api", middleware.Instrument)

	api.GET("/ping", handler.PingHandler(db, cch), middleware.RequireAuth(tokens))

	api.POST("/auth/signup", auth.SignupHandler(db))
	api.POST("/auth/login", auth.LoginHandler(db, tokens))

	api.GET("/languages", translate.LanguagesHandler())
	api.POST("/translate", translate.TranslateHandler(db, cch, gen, rec), middleware.OptionalAuth(tokens))
	api.GET("/translations", translate.HistoryHandler(db), middleware.RequireAuth(tokens))

	api.GET("/user/points", users.GetPointsHandler(db, cch), middleware.RequireAuth(tokens))
	api.POST("/user/points", users.AwardPointsHandler(db, cch), middleware.RequireAuth(tokens))

	api.POST("/chat", chat.ChatHandler(gen))
	api.POST("/voice", voice.VoiceHandler(tr))
}
