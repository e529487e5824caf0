package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"processos/cmd/internal/config"
	"processos/cmd/internal/domain/memory"
	"processos/cmd/internal/domain/sqlite"
	"processos/cmd/internal/domain/sqlite/repository"
	"processos/cmd/internal/http/handler"
	appmiddleware "processos/cmd/internal/http/middleware"
	"processos/cmd/internal/infrastructure/aws/parameters"
	"processos/cmd/internal/infrastructure/aws/storage"
	"processos/cmd/internal/infrastructure/snapshot"
	"processos/cmd/internal/service"
	"processos/cmd/internal/utils/validators"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

const (
	banner        = "Processos API"
	defaultRegion = "us-east-2"
)

func main() {
	ctx := context.Background()
	validate := validators.New()

	// Loads env vars depending on environment
	loadEnv(ctx)

	cfg, err := config.Load(validate)
	if err != nil {
		log.Fatalf("unable to load config, %v", err)
	}
	log.SetLevel(cfg.Log.GommonLevel())

	// The whole dataset is loaded before serving anything, a failure here aborts the startup
	src, closeSrc, err := newSnapshotSource(ctx, cfg.Snapshot)
	if err != nil {
		log.Fatalf("unable to open snapshot source, %v", err)
	}

	data, err := snapshot.Load(ctx, src, validate)
	closeSrc()
	if err != nil {
		log.Fatalf("unable to load snapshot, %v", err)
	}

	store, err := memory.NewProcessoStore(data.Content)
	if err != nil {
		log.Fatalf("unable to index snapshot, %v", err)
	}
	log.Infof("Loaded %d processos from %s", store.Count(), src)

	// Getting services
	processoService := service.NewProcessoService(store, validate)

	// Getting handlers
	processoRoutes := handler.NewProcessoRoute(processoService)
	utilRoutes := handler.NewUtilRoute(banner)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = handler.HTTPErrorHandler
	e.Logger.SetLevel(cfg.Log.GommonLevel())
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit("1M"))
	e.Use(appmiddleware.NewRequestID())
	e.Use(appmiddleware.NewRequestLogger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowCredentials: true,
	}))

	e.GET("/", utilRoutes.Root)

	// Processos
	e.GET("/processos", processoRoutes.ListProcessos)
	e.GET("/processos/:numeroProcesso", processoRoutes.GetProcesso)

	// Docker Compose healthcheck
	e.GET("/health", utilRoutes.HealthCheck)

	err = e.Start(fmt.Sprintf(":%d", cfg.Server.Port))
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server stopped, %v", err)
	}
}

func loadEnv(ctx context.Context) {
	if os.Getenv("GO_ENV") == config.EnvProduction {
		// AWS SSM Parameter Store
		region := os.Getenv("AWS_REGION")
		if region == "" {
			region = defaultRegion
		}

		if err := parameters.LoadEnv(ctx, region, parameters.ProdPrefix); err != nil {
			log.Fatalf("unable to load prod environment, %v", err)
		}
		return
	}

	// Loads from .env, which is optional for local runs
	err := godotenv.Load()
	if errors.Is(err, fs.ErrNotExist) {
		log.Debug("no .env file found, using the process environment")
		return
	}

	if err != nil {
		log.Fatalf("unable to load .env file, %v", err)
	}
}

// newSnapshotSource returns the configured source and a func releasing
// whatever it holds once the snapshot has been read.
func newSnapshotSource(ctx context.Context, cfg config.SnapshotConfig) (snapshot.Source, func(), error) {
	noop := func() {}

	switch cfg.Source {
	case config.SourceS3:
		region := cfg.S3Region
		if region == "" {
			region = defaultRegion
		}

		client, err := storage.NewStorageClient(ctx, region, cfg.S3Bucket)
		if err != nil {
			return nil, nil, err
		}
		return &snapshot.S3Source{Client: client, Bucket: cfg.S3Bucket, Key: cfg.S3Key}, noop, nil

	case config.SourceSQLite:
		db, err := sqlite.Init(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}

		closeDB := func() {
			if err := sqlite.Close(db); err != nil {
				log.Warnf("failed to close snapshot database: %v", err)
			}
		}
		return &snapshot.SQLiteSource{Repo: repository.NewSnapshotRepository(db), Name: cfg.Name}, closeDB, nil

	default:
		return &snapshot.FileSource{Path: cfg.Path}, noop, nil
	}
}
