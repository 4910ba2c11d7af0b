package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type HTTP struct {
	Addr              string        `default:":8080" envconfig:"ADDR"`
	GinMode           string        `default:"debug" envconfig:"GIN_MODE"`
	ReadTimeout       time.Duration `default:"10s" envconfig:"READ_TIMEOUT"`
	WriteTimeout      time.Duration `default:"10s" envconfig:"WRITE_TIMEOUT"`
	ReadHeaderTimeout time.Duration `default:"5s" envconfig:"READ_HEADER_TIMEOUT"`
	IdleTimeout       time.Duration `default:"60s" envconfig:"IDLE_TIMEOUT"`
	GracefulTimeout   time.Duration `default:"5s" envconfig:"GRACEFUL_TIMEOUT"`
}

type Catalog struct {
	BaseURL      string        `default:"https://dummyjson.com" envconfig:"BASE_URL"`
	ProductLimit int           `default:"100" envconfig:"PRODUCT_LIMIT"`
	Timeout      time.Duration `default:"10s" envconfig:"TIMEOUT"`
}

type Cache struct {
	TTL time.Duration `default:"5m" envconfig:"TTL"`
}

type Store struct {
	Dir string `default:"./data" envconfig:"DIR"`
}

type Payment struct {
	BaseURL string        `default:"https://api.mercadopago.com" envconfig:"BASE_URL"`
	Token   string        `default:"" envconfig:"TOKEN"`
	CLPRate float64       `default:"950" envconfig:"CLP_RATE"`
	Timeout time.Duration `default:"15s" envconfig:"TIMEOUT"`
}

type Auth struct {
	BaseURL string        `default:"https://dummyjson.com" envconfig:"BASE_URL"`
	Timeout time.Duration `default:"10s" envconfig:"TIMEOUT"`
}

type Tracing struct {
	Enabled     bool    `default:"false" envconfig:"OTEL_ENABLED"`
	ServiceName string  `default:"storefront-app" envconfig:"OTEL_SERVICE_NAME"`
	Endpoint    string  `default:"jaeger:4318" envconfig:"OTEL_ENDPOINT"`
	SampleRatio float64 `default:"1" envconfig:"OTEL_SAMPLE_RATIO"`
}

type Logger struct {
	IsProd bool `default:"false" envconfig:"IS_PROD"`
}

type Config struct {
	HTTP    HTTP
	Catalog Catalog
	Cache   Cache
	Store   Store
	Payment Payment
	Auth    Auth
	Tracing Tracing
	Logger  Logger
}

// Load reads configuration from the environment with the SHOP prefix.
func Load() (Config, error) {
	return LoadWithPrefix("SHOP")
}

// LoadWithPrefix reads configuration under an arbitrary prefix;
// tests use unique prefixes to stay isolated from the real env.
func LoadWithPrefix(prefix string) (Config, error) {
	var c Config
	if err := envconfig.Process(prefix, &c); err != nil {
		return Config{}, err
	}
	return c, nil
}
