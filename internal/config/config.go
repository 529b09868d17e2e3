package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Addr         string   `yaml:"addr"`
	LogLevel     string   `yaml:"log_level"`
	PrettyLogs   bool     `yaml:"pretty_logs"`
	AllowOrigins []string `yaml:"allow_origins"`
}

func Default() Config {
	return Config{
		Addr:         ":3000",
		LogLevel:     "info",
		AllowOrigins: []string{"http://localhost:5173"},
	}
}

// Load reads the yaml file at path (if any) over the defaults, then applies
// CHECKERS_* environment overrides. A .env file in the working directory is
// loaded first when present.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file loaded")
	}

	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	cfg.Addr = getenv("CHECKERS_ADDR", cfg.Addr)
	cfg.LogLevel = getenv("CHECKERS_LOG_LEVEL", cfg.LogLevel)
	if origins := getenv("CHECKERS_ALLOW_ORIGINS", ""); origins != "" {
		cfg.AllowOrigins = splitList(origins)
	}
	return cfg, nil
}

// Origins renders AllowOrigins the way the cors middleware expects them.
func (c Config) Origins() string {
	return strings.Join(c.AllowOrigins, ", ")
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
