package main

import (
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/gabo-gil-playground/multi-content-recognition/internal/config"
	"github.com/gabo-gil-playground/multi-content-recognition/internal/delivery"
	"github.com/gabo-gil-playground/multi-content-recognition/internal/domain"
	"github.com/gabo-gil-playground/multi-content-recognition/internal/infra"
	"github.com/gabo-gil-playground/multi-content-recognition/internal/ports"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {

	// LOGGER (bootstrap; rebuilt at the configured level below)
	zcore, _ := zap.NewProduction()
	zl := logger.NewZapLogger(zcore.Sugar())

	// CONFIG
	cfg, warn, err := config.Load()
	if err != nil {
		zl.Log(logger.LogEntry{
			Level:   "error",
			Message: "invalid configuration",
			Error:   err,
		})
		panic("configuration error: " + err.Error())
	}

	if lvl, err := zapcore.ParseLevel(cfg.LogLevel); err == nil {
		zcfg := zap.NewProductionConfig()
		zcfg.Level = zap.NewAtomicLevelAt(lvl)
		if leveled, err := zcfg.Build(); err == nil {
			zl = logger.NewZapLogger(leveled.Sugar())
		}
	}

	if warn != nil {
		zl.Log(logger.LogEntry{
			Level:   "warn",
			Message: warn.Error(),
		})
	}

	// VISION PROVIDER
	var vision ports.VisionDescriber
	switch cfg.VisionProvider {
	case config.ProviderGemini:
		vision = infra.NewGeminiVisionClient(cfg.VisionAPIKey, cfg.VisionModel)
	default:
		vision = infra.NewOpenAIVisionClient(cfg.VisionAPIKey, cfg.VisionProviderURL, cfg.VisionModel)
	}

	// SERVICES
	recognitionService := domain.NewRecognitionService(vision, zl)

	// HANDLERS
	hRecognition := delivery.NewRecognitionHandler(recognitionService, zl)

	// ROUTER
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Accept"},
		AllowCredentials: true,
	}))

	delivery.RegisterRoutes(r, hRecognition)

	zl.Log(logger.LogEntry{
		Level:   "info",
		Message: "server started",
		Fields: map[string]any{
			"addr":     cfg.Addr(),
			"provider": cfg.VisionProvider,
			"model":    cfg.VisionModel,
		},
	})

	if err := http.ListenAndServe(cfg.Addr(), r); err != nil {
		zl.Log(logger.LogEntry{
			Level:   "error",
			Message: "server crashed",
			Error:   err,
		})
	}
}
