package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"max.ks1230/fx-converter/internal/entity/currency"
)

const DefaultFile = "data/config.yaml"

const (
	envAPIURL   = "FX_API_URL"
	envLocale   = "FX_LOCALE"
	envTGToken  = "FX_TELEGRAM_TOKEN"
	envMetrics  = "FX_METRICS_ADDR"
	envTracing  = "FX_TRACING_ENABLED"
	envDotFile  = ".env"
	defaultFrom = currency.USD
	defaultTo   = currency.PHP
)

type config struct {
	Telegram    TelegramConfig    `yaml:"telegram"`
	Frankfurter FrankfurterConfig `yaml:"frankfurter"`
	App         AppConfig         `yaml:"app"`
	Metrics     MetricsConfig     `yaml:"metrics"`
	Tracing     TracingConfig     `yaml:"tracing"`
}

type Service struct {
	config config
}

// New reads the YAML file at path. A missing file is not an error: the
// defaults are used and environment overrides still apply.
func New(path string) (*Service, error) {
	s := &Service{config: defaults()}

	if path == "" {
		path = DefaultFile
	}

	rawYAML, err := os.ReadFile(path)
	switch {
	case err == nil:
		err = yaml.Unmarshal(rawYAML, &s.config)
		if err != nil {
			return nil, errors.Wrap(err, "parsing yaml")
		}
	case os.IsNotExist(err):
	default:
		return nil, errors.Wrap(err, "reading config file")
	}

	// .env is optional
	_ = godotenv.Load(envDotFile)
	s.applyEnv()

	return s, nil
}

func defaults() config {
	return config{
		Frankfurter: FrankfurterConfig{
			URL:            DefaultBaseURL,
			TimeoutSeconds: 10,
		},
		App: AppConfig{
			From:       defaultFrom,
			To:         defaultTo,
			AmountText: "1",
			LocaleName: "en",
		},
		Tracing: TracingConfig{
			Service: "fx-converter",
		},
	}
}

func (s *Service) applyEnv() {
	if v, ok := lookup(envAPIURL); ok {
		s.config.Frankfurter.URL = v
	}
	if v, ok := lookup(envLocale); ok {
		s.config.App.LocaleName = v
	}
	if v, ok := lookup(envTGToken); ok {
		s.config.Telegram.ApiToken = v
	}
	if v, ok := lookup(envMetrics); ok {
		s.config.Metrics.Address = v
	}
	if v, ok := lookup(envTracing); ok {
		s.config.Tracing.On = strings.EqualFold(v, "true") || v == "1"
	}
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func (s *Service) Telegram() *TelegramConfig {
	return &s.config.Telegram
}

func (s *Service) Frankfurter() *FrankfurterConfig {
	return &s.config.Frankfurter
}

func (s *Service) App() *AppConfig {
	return &s.config.App
}

func (s *Service) Metrics() *MetricsConfig {
	return &s.config.Metrics
}

func (s *Service) Tracing() *TracingConfig {
	return &s.config.Tracing
}

func seconds(n int64) time.Duration {
	return time.Duration(n) * time.Second
}
