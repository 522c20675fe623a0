package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"price-prediction-service/internal/adapters/primary/http/handlers"
	"price-prediction-service/internal/adapters/primary/http/middleware"
	"price-prediction-service/internal/adapters/secondary/filestore"
	"price-prediction-service/internal/adapters/secondary/kube"
	"price-prediction-service/internal/adapters/secondary/postgres"
	"price-prediction-service/internal/adapters/secondary/prometheus"
	redisstore "price-prediction-service/internal/adapters/secondary/redis"
	"price-prediction-service/internal/config"
	ports "price-prediction-service/internal/core/ports/output"
	"price-prediction-service/internal/core/services"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)

	// Secondary Adapters
	source, closeSource, err := newArtifactSource(cfg)
	if err != nil {
		log.Fatalf("create artifact source: %v", err)
	}
	defer closeSource()

	var recorder ports.PredictionRecorder = ports.NopRecorder{}
	var metricsRecorder *prometheus.Recorder
	if cfg.Metrics.Enabled {
		metricsRecorder = prometheus.NewRecorder()
		recorder = metricsRecorder
		log.Info("prometheus metrics enabled")
	}

	// Core Services
	artifactStore := services.NewArtifactStore(source, recorder)
	realEstate := services.NewRealEstatePipeline(artifactStore)
	registry := services.NewDefaultRegistry(realEstate)
	predictionSvc := services.NewPredictionService(registry, realEstate, recorder)

	if cfg.Artifact.Preload {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Artifact.Timeout)
		if _, err := artifactStore.Load(ctx); err != nil {
			log.Warnf("model artifacts not loaded at startup (predictions will fail until fixed): %v", err)
		}
		cancel()
	}

	// Primary Adapter
	h := handlers.New(predictionSvc, artifactStore, cfg.Server.Environment)

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), middleware.CORS(cfg.CORS.AllowedOrigins), gin.Recovery())
	h.RegisterRoutes(router)
	if metricsRecorder != nil {
		router.GET("/metrics", gin.WrapH(metricsRecorder.Handler()))
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Infof("starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// SIGHUP reloads artifacts, SIGINT/SIGTERM shut down
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	for s := range sig {
		if s != syscall.SIGHUP {
			break
		}
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Artifact.Timeout)
		if err := artifactStore.Reload(ctx); err != nil {
			log.WithError(err).Error("reload model artifacts failed, keeping previous bundle")
		} else {
			log.Info("model artifacts reloaded")
		}
		cancel()
	}
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced shutdown: %v", err)
	}

	log.Info("server stopped")
}

// newArtifactSource picks the bundle location from ARTIFACT_SOURCE. The returned
// func releases whatever connection the source holds.
func newArtifactSource(cfg *config.Config) (ports.ArtifactSource, func(), error) {
	noop := func() {}

	switch cfg.Artifact.Source {
	case config.SourcePostgres:
		poolCfg, err := pgxpool.ParseConfig(cfg.Database.DSN())
		if err != nil {
			return nil, noop, fmt.Errorf("parse db config: %w", err)
		}
		poolCfg.MaxConns = int32(cfg.Database.MaxOpenConns)
		poolCfg.MinConns = int32(cfg.Database.MaxIdleConns)
		poolCfg.MaxConnLifetime = cfg.Database.ConnMaxLifetime

		pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
		if err != nil {
			return nil, noop, fmt.Errorf("create db pool: %w", err)
		}
		log.Info("artifact source: postgres")
		return postgres.NewArtifactRepository(pool, cfg.Artifact.Name), pool.Close, nil

	case config.SourceConfigMap:
		client, err := kube.NewDynamicClient(&cfg.Kubernetes)
		if err != nil {
			return nil, noop, err
		}
		log.Info("artifact source: kubernetes configmap")
		return kube.NewArtifactSource(client, cfg.Kubernetes.Namespace, cfg.Kubernetes.ConfigMap, cfg.Artifact.Name), noop, nil

	case config.SourceRedis:
		client := redisstore.NewClient(&cfg.Redis)
		log.Info("artifact source: redis")
		return redisstore.NewArtifactSource(client, cfg.Artifact.Name), func() { _ = client.Close() }, nil

	default:
		log.Info("artifact source: file")
		return filestore.NewArtifactSource(cfg.Artifact.Path), noop, nil
	}
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
