package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config contains gateway configuration parameters.
type Config struct {
	LogLevel       int      `env:"LOG_LEVEL" envDefault:"0"`
	Environment    string   `env:"ENVIRONMENT" envDefault:"development"`
	Debug          bool     `env:"DEBUG" envDefault:"false"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	HTTP      HTTP      `envPrefix:"HTTP_"`
	JWT       JWT       `envPrefix:"JWT_"`
	AI        AI        `envPrefix:"AI_"`
	Vision    Vision    `envPrefix:"VISION_"`
	Storage   Storage   `envPrefix:"MINIO_"`
	Telemetry Telemetry `envPrefix:"TELEMETRY_"`
	Limits    Limits    `envPrefix:"API_"`
}

// HTTP contains HTTP server parameters.
type HTTP struct {
	Port               string `env:"PORT" envDefault:"8000"`
	EnableHTTPS        bool   `env:"ENABLE_HTTPS" envDefault:"false"`
	CertFileName       string `env:"CERT_FILE_NAME" envDefault:"cert.pem"`
	PrivateKeyFileName string `env:"PRIVATE_KEY_FILE_NAME" envDefault:"key.pem"`
}

// JWT contains token issuance parameters.
type JWT struct {
	Secret    string        `env:"SECRET" envDefault:"devsecret"`
	AccessTTL time.Duration `env:"ACCESS_TTL" envDefault:"30m"`
}

// AI contains remote completion backend parameters. The backend is optional;
// when endpoint or key is empty the gateway serves deterministic fallbacks.
type AI struct {
	Endpoint   string `env:"ENDPOINT"`
	Key        string `env:"KEY"`
	Deployment string `env:"DEPLOYMENT" envDefault:"gpt-35-turbo"`
	APIVersion string `env:"API_VERSION" envDefault:"2024-02-15-preview"`
}

// Vision contains remote image-inference backend parameters. Optional.
type Vision struct {
	Endpoint string `env:"ENDPOINT"`
	Key      string `env:"KEY"`
}

// Storage contains object storage parameters. Optional; transaction logging
// is skipped when the endpoint is not set.
type Storage struct {
	Endpoint  string `env:"ENDPOINT"`
	AccessKey string `env:"ACCESS_KEY"`
	SecretKey string `env:"SECRET_KEY"`
	Bucket    string `env:"BUCKET_NAME" envDefault:"ai-api-logs"`
	UseSSL    bool   `env:"USE_SSL" envDefault:"false"`
}

// Telemetry contains telemetry sink parameters. Optional.
type Telemetry struct {
	Endpoint           string `env:"ENDPOINT"`
	InstrumentationKey string `env:"INSTRUMENTATION_KEY"`
}

// Limits contains request validation and timeout parameters.
type Limits struct {
	MaxTextLength  int           `env:"MAX_TEXT_LENGTH" envDefault:"5000"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
}

// NewConfig loads configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
