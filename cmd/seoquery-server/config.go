package main

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
)

type ServerConfig struct {
	Env                Environment
	LogLevel           string
	ServerPort         string
	ConfigPath         string
	HttpTimeoutSeconds int
}

// HTTPTimeout is the page fetch timeout.
func (c ServerConfig) HTTPTimeout() time.Duration {
	return time.Duration(c.HttpTimeoutSeconds) * time.Second
}

func loadConfig() ServerConfig {
	_ = godotenv.Load()

	env := parseEnvironment(getEnv("APP_ENV", "development"))

	return ServerConfig{
		Env:                env,
		LogLevel:           getLogLevel(env),
		ServerPort:         getEnv("APP_SERVER_PORT", "8080"),
		ConfigPath:         getEnv("APP_CONFIG", ""),
		HttpTimeoutSeconds: getEnvInt("APP_HTTP_TIMEOUT_SECONDS", 30),
	}
}

func parseEnvironment(envStr string) Environment {
	env := Environment(strings.ToLower(envStr))

	switch env {
	case Development, Production:
		return env
	default:
		return Development
	}
}

func getLogLevel(env Environment) string {
	if env == Production {
		return getEnv("APP_LOG_LEVEL", "info")
	}

	return getEnv("APP_LOG_LEVEL", "debug")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
