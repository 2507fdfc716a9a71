package router

import (
	"database/sql"
	"net/http"

	mem "openadopt/internal/adapters/storage/memory"
	pg "openadopt/internal/adapters/storage/postgres"
	"openadopt/internal/config"
	"openadopt/internal/domain/animals"
	"openadopt/internal/domain/users"
	"openadopt/internal/platform/logger"
	"openadopt/internal/ports/blob"

	_ "openadopt/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Config *config.Config
	Log    logger.Logger

	// Storage es el backend de blobs ya construido (local o minio).
	Storage blob.Storage

	// Opcional: si viene, usa Postgres. Si no, repos in-memory (dev/tests).
	DB *sql.DB

	// Overrides para tests: repos ya construidos (y seedeados).
	UsersRepo   users.Repository
	AnimalsRepo animals.Repository
}

func NewRouter(opts Options) http.Handler {
	cfg := opts.Config

	log := opts.Log
	if log == nil {
		log = logger.Nop{}
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	usersRepo := opts.UsersRepo
	animalsRepo := opts.AnimalsRepo
	switch {
	case usersRepo != nil && animalsRepo != nil:
		// repos inyectados, nada que construir
	case opts.DB != nil:
		usersRepo = pg.NewUsersRepo(opts.DB)
		animalsRepo = pg.NewAnimalsRepo(opts.DB)
	default:
		usersRepo = mem.NewUsersRepo()
		animalsRepo = mem.NewAnimalsRepo()
	}

	issuer := users.NewTokenIssuer(cfg.Auth.SecretKey, cfg.Auth.TokenExpiry)
	usersSvc := users.NewService(usersRepo, issuer)
	animalsSvc := animals.NewService(animalsRepo, cfg.Page.DefaultSize, cfg.Page.MaxSize)
	mediaSvc := animals.NewMedia(animalsRepo, opts.Storage, log, cfg.Uploads.MaxBytes, cfg.Uploads.MaxGalleryFiles)

	r.Use(users.AuthContext(usersSvc))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"Welcome to ` + cfg.AppName + ` API","version":"` + cfg.Version + `"}`))
	})

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	users.RegisterRoutes(r, usersSvc)
	animals.RegisterRoutes(r, animalsSvc, mediaSvc)

	// Con storage local servimos los uploads nosotros mismos.
	if cfg.Storage.Backend == "local" {
		fs := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.Storage.LocalPath)))
		r.Get("/uploads/*", fs.ServeHTTP)
	}

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}
