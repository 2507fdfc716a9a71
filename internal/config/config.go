package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

type (
	// Config agrupa toda la configuración del proceso, leída de env vars.
	Config struct {
		AppName   string `env:"APP_NAME" envDefault:"openadopt"`
		Version   string `env:"APP_VERSION" envDefault:"0.1.0"`
		LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
		LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

		Auth    AuthConfig       `envPrefix:"AUTH_"`
		DB      DBConfig         `envPrefix:"DB_"`
		Server  HTTPServerConfig `envPrefix:"HTTP_"`
		Page    PageConfig       `envPrefix:"PAGE_"`
		Storage StorageConfig    `envPrefix:"STORAGE_"`
		Uploads UploadsConfig    `envPrefix:"UPLOAD_"`
	}

	AuthConfig struct {
		// SecretKey firma los access tokens. Sin default a propósito.
		SecretKey     string        `env:"SECRET_KEY"`
		TokenExpiry   time.Duration `env:"TOKEN_EXPIRY" envDefault:"1440m"`
		TokenAudience string        `env:"TOKEN_AUDIENCE" envDefault:""`
	}

	DBConfig struct {
		// DSN vacío => repos in-memory (modo dev).
		DSN string `env:"DSN"`
	}

	HTTPServerConfig struct {
		Port         string        `env:"PORT" envDefault:"8080"`
		ReadTimeout  time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
		WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"30s"`
	}

	PageConfig struct {
		DefaultSize int `env:"DEFAULT_SIZE" envDefault:"50"`
		MaxSize     int `env:"MAX_SIZE" envDefault:"100"`
	}

	StorageConfig struct {
		// Backend: "local" | "minio"
		Backend   string `env:"BACKEND" envDefault:"local"`
		LocalPath string `env:"LOCAL_PATH" envDefault:"./uploads"`
		LocalURL  string `env:"LOCAL_URL" envDefault:"http://localhost:8080/uploads"`

		Minio MinioConfig `envPrefix:"MINIO_"`
	}

	MinioConfig struct {
		Endpoint  string `env:"ENDPOINT"`
		AccessKey string `env:"ACCESS_KEY"`
		SecretKey string `env:"SECRET_KEY"`
		Bucket    string `env:"BUCKET" envDefault:"openadopt"`
		UseSSL    bool   `env:"USE_SSL" envDefault:"true"`
		// PublicURL es la base con la que se construyen las URLs persistidas.
		PublicURL string `env:"PUBLIC_URL"`
	}

	UploadsConfig struct {
		MaxBytes        int64 `env:"MAX_BYTES" envDefault:"6291456"`
		MaxGalleryFiles int   `env:"MAX_GALLERY_FILES" envDefault:"10"`
	}
)

func Read() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return cfg, nil
}
