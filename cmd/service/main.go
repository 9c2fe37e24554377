// @title        LinguaFlow API
// @version      1.0
// @description  語言學習與翻譯服務的後端 API 文件
// @host         localhost:8080
// @BasePath     /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"linguaflow/internal/cache"
	"linguaflow/internal/database"
	"linguaflow/internal/genai"
	"linguaflow/internal/history"
	"linguaflow/internal/metrics"
	"linguaflow/internal/router"
	"linguaflow/internal/service"
	"linguaflow/internal/transcribe"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"

	_ "linguaflow/docs" // swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	newPgxPool        = database.NewPgxPool
	newRedisClient    = cache.NewRedisClient
	runMigrationsFn   = database.RunMigrations
	registerMetricsFn = metrics.MustRegister
	startServer       = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc          = os.Exit
)

func run() error {
	// .env is a development convenience, absence is fine
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return fmt.Errorf("環境變數 DATABASE_URL 未設定")
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		return fmt.Errorf("環境變數 REDIS_ADDR 未設定")
	}
	redisIndex := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("無效的 REDIS_DB: %v", err)
		}
		redisIndex = i
	}
	redisPassword := os.Getenv("REDIS_PASSWORD")

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return fmt.Errorf("環境變數 JWT_SECRET 未設定")
	}

	geminiKey := os.Getenv("GEMINI_API_KEY")
	if geminiKey == "" {
		return fmt.Errorf("環境變數 GEMINI_API_KEY 未設定")
	}
	assemblyKey := os.Getenv("ASSEMBLYAI_API_KEY")

	workerCount := 1
	if v := os.Getenv("HISTORY_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return fmt.Errorf("無效的 HISTORY_WORKERS: %v", err)
		}
		workerCount = n
	}

	db, err := newPgxPool(context.Background(), dbURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %v", err)
	}
	defer db.Close()

	redis, err := newRedisClient(redisAddr, redisPassword, redisIndex)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %v", err)
	}
	defer redis.Close()

	if err := runMigrationsFn(dbURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %v", err)
	}

	tokens, err := service.NewTokenService(jwtSecret, service.AccessTokenTTL)
	if err != nil {
		return fmt.Errorf("Token 服務初始化失敗: %v", err)
	}

	rec := history.NewRecorder(db, workerCount)
	defer rec.Close()

	registerMetricsFn(prometheus.DefaultRegisterer)

	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	router.Setup(e, db, redis, tokens, genai.NewClient(geminiKey), transcribe.NewClient(assemblyKey), rec)

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return startServer(e, ":8080")
}

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
