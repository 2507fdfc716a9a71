package main

import (
	"net/http"
	"os"

	blobLocal "openadopt/internal/adapters/blob/local"
	blobMinio "openadopt/internal/adapters/blob/minio"
	pg "openadopt/internal/adapters/storage/postgres"
	"openadopt/internal/config"
	"openadopt/internal/platform/logger"
	"openadopt/internal/ports/blob"
	"openadopt/internal/router"
)

// @title OpenAdopt API
// @version 0.1.0
// @description Backend administrativo del servicio de adopción.
// @BasePath /
func main() {
	cfg, err := config.Read()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	storage, err := buildStorage(cfg)
	if err != nil {
		log.Error("failed to build blob storage", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	opts := router.Options{
		Config:  cfg,
		Log:     log,
		Storage: storage,
	}

	if cfg.DB.DSN != "" {
		db, err := pg.Open(cfg.DB.DSN)
		if err != nil {
			log.Error("failed to connect to postgres", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		defer db.Close()
		opts.DB = db
	} else {
		log.Warn("DB_DSN not set, using in-memory repositories", nil)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router.NewRouter(opts),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	log.Info("starting server", map[string]any{
		"addr":    srv.Addr,
		"storage": cfg.Storage.Backend,
	})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}

func buildStorage(cfg *config.Config) (blob.Storage, error) {
	switch cfg.Storage.Backend {
	case "minio":
		return blobMinio.New(blobMinio.Options{
			Endpoint:  cfg.Storage.Minio.Endpoint,
			AccessKey: cfg.Storage.Minio.AccessKey,
			SecretKey: cfg.Storage.Minio.SecretKey,
			Bucket:    cfg.Storage.Minio.Bucket,
			UseSSL:    cfg.Storage.Minio.UseSSL,
			PublicURL: cfg.Storage.Minio.PublicURL,
		})
	default:
		return blobLocal.New(cfg.Storage.LocalPath, cfg.Storage.LocalURL)
	}
}
