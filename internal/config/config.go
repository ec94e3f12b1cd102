package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"promob/internal/util"
)

type Config struct {
	OutputDir string

	DefaultDobradica []string
	DefaultCorredica []string

	LogLevel  string
	LogFormat string

	WarnNotSpec bool
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		OutputDir: getEnv("OUTPUT_DIR", filepath.Join(cwd, "out")),

		DefaultDobradica: getEnvList("PROMOB_DOBRADICA_DEFAULT", []string{"Blum Clip Top Blumotion"}),
		DefaultCorredica: getEnvList("PROMOB_CORREDICA_DEFAULT", []string{"Quadro/Invisível"}),

		LogLevel:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat: strings.ToLower(getEnv("LOG_FORMAT", "text")),

		WarnNotSpec: getEnvBool("PROMOB_WARN_NOT_SPEC", true),
	}

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return Config{}, fmt.Errorf("unsupported LOG_FORMAT: %s", cfg.LogFormat)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// getEnvList reads a comma-separated list. An explicitly empty variable
// yields an empty list, which disables the default.
func getEnvList(key string, fallback []string) []string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	return util.SplitList(value)
}

func getEnvBool(key string, fallback bool) bool {
	value := strings.ToLower(strings.TrimSpace(getEnv(key, "")))
	if value == "" {
		return fallback
	}
	if value == "1" || value == "true" || value == "yes" || value == "on" {
		return true
	}
	if value == "0" || value == "false" || value == "no" || value == "off" {
		return false
	}
	return fallback
}
