package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/wellnest/backend/config"
	httpDelivery "github.com/wellnest/backend/internal/delivery/http"
	"github.com/wellnest/backend/internal/domain"
	"github.com/wellnest/backend/internal/infrastructure/fdc"
	"github.com/wellnest/backend/internal/infrastructure/store"
	"github.com/wellnest/backend/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	log := newLogger(cfg.Server.Environment)

	log.WithFields(logrus.Fields{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
	}).Info("starting wellnest backend v1.0.0")

	if cfg.FDC.APIKey == "DEMO_KEY" {
		log.Warn("using the public FDC demo key; expect tight rate limits (set WELLNEST_FDC_API_KEY)")
	}

	fdcClient := fdc.NewClient(cfg.FDC.APIKey, cfg.FDC.BaseURL, cfg.FDC.Timeout, log)
	profileStore := store.NewMemoryStore()

	searchService := usecase.NewSearchService(fdcClient, log)
	sessions := usecase.NewSessionManager(domain.DailyGoals{
		Calories: cfg.Goals.Calories,
		Protein:  cfg.Goals.Protein,
		Carbs:    cfg.Goals.Carbs,
		Fat:      cfg.Goals.Fat,
	}, cfg.Session.TTL)
	wellness := usecase.NewWellnessService(rand.New(rand.NewSource(time.Now().UnixNano())))

	debug := cfg.Server.Environment == "development"
	handler := httpDelivery.NewHandler(searchService, sessions, wellness, profileStore, log, debug)

	router := httpDelivery.SetupRouter(cfg, handler, log)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.WithField("addr", addr).Info("server listening")

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// newLogger builds the app logger; production logs JSON at info level,
// development logs text at debug level.
func newLogger(environment string) *logrus.Logger {
	log := logrus.New()
	if environment == "production" {
		log.SetFormatter(&logrus.JSONFormatter{})
		log.SetLevel(logrus.InfoLevel)
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}
