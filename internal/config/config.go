package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Game      Game      `yaml:"game"`
	HTTP      HTTP      `yaml:"http"`
	Log       Log       `yaml:"log"`
	Redis     Redis     `yaml:"redis"`
	Telemetry Telemetry `yaml:"telemetry"`
	Auth      Auth      `yaml:"auth"`
	Hub       Hub       `yaml:"hub"`
}

// Game holds the defaults offered by the console game.
type Game struct {
	Size int `yaml:"size" env:"TTT_BOARD_SIZE" env-default:"3"`
	Mode int `yaml:"mode" env:"TTT_MODE" env-default:"1"`
}

type HTTP struct {
	Addr string `yaml:"addr" env:"TTT_HTTP_ADDR" env-default:":8080"`
}

type Log struct {
	Level string `yaml:"level" env:"TTT_LOG_LEVEL" env-default:"info"`
	// File receives log records instead of stdout when set.
	File string `yaml:"file" env:"TTT_LOG_FILE"`
}

type Redis struct {
	Enabled bool   `yaml:"enabled" env:"TTT_REDIS_ENABLED" env-default:"false"`
	Addr    string `yaml:"addr" env:"REDIS_CONNSTRING" env-default:"localhost:6379"`
}

type Telemetry struct {
	// Endpoint of the OTLP gRPC collector. Empty disables OTLP export.
	Endpoint    string `yaml:"endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName string `yaml:"service-name" env:"OTEL_SERVICE_NAME" env-default:"nxn-tictactoe"`
	Stdout      bool   `yaml:"stdout" env:"TTT_TRACE_STDOUT" env-default:"false"`
}

type Auth struct {
	Secret   string        `yaml:"secret" env:"TTT_JWT_SECRET" env-default:"change-me"`
	TokenTTL time.Duration `yaml:"token-ttl" env:"TTT_TOKEN_TTL" env-default:"24h"`
}

type Hub struct {
	IdleTimeout   time.Duration `yaml:"idle-timeout" env:"TTT_IDLE_TIMEOUT" env-default:"30m"`
	SweepInterval time.Duration `yaml:"sweep-interval" env:"TTT_SWEEP_INTERVAL" env-default:"1m"`
}

// Load reads the YAML file at path, then applies environment overrides.
// An empty path reads the environment only.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	var err error
	if path == "" {
		err = cleanenv.ReadEnv(cfg)
	} else {
		err = cleanenv.ReadConfig(path, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}
	return cfg, nil
}

// MustLoad is like Load but panics on error.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}
