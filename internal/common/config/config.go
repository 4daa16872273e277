package config

import (
	"os"
	"time"

	"github.com/KarimovRD/fullstack-todo/backend/internal/common/constants"
)

type TodoConfig struct {
	HTTPPort       string
	CORSOrigin     string
	RequestTimeout time.Duration
}

func LoadTodoConfig() TodoConfig {
	return TodoConfig{
		HTTPPort:       getEnv("TODO_HTTP_PORT", constants.DefaultHTTPPort),
		CORSOrigin:     getEnv("CORS_ORIGIN", constants.DefaultCORSOrigin),
		RequestTimeout: getDurationEnv("TODO_REQUEST_TIMEOUT", constants.DefaultRequestTimeout),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
