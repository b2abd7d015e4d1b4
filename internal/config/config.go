// Package config resolves runtime settings and the weight
// configuration. Weight-sum validation lives here, on the caller side
// of the Scorer: the Scorer computes with whatever weights it is
// handed.
package config

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/abhisek/gradebook/internal/gradebook"
)

// Environment variable names. Flags take priority over these, these
// over the built-in defaults.
const (
	EnvWeights   = "GRADEBOOK_WEIGHTS"
	EnvLogLevel  = "GRADEBOOK_LOG_LEVEL"
	EnvLogFormat = "GRADEBOOK_LOG_FORMAT"
)

// Config holds the ambient CLI settings.
type Config struct {
	WeightsPath string
	LogLevel    string
	LogFormat   string
}

// Load reads configuration from environment variables with sensible
// defaults. It loads a .env file if present but does not fail if
// missing.
func Load() *Config {
	_ = godotenv.Load() // .env is optional

	return &Config{
		WeightsPath: os.Getenv(EnvWeights),
		LogLevel:    getEnv(EnvLogLevel, "info"),
		LogFormat:   getEnv(EnvLogFormat, "pretty"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// DefaultWeights is the out-of-the-box category weighting.
func DefaultWeights() gradebook.Weights {
	return gradebook.Weights{
		gradebook.ExamScoreColumn(1): 0.05,
		gradebook.ExamScoreColumn(2): 0.10,
		gradebook.ExamScoreColumn(3): 0.15,
		gradebook.ColQuizScore:       0.30,
		gradebook.ColHomeworkScore:   0.40,
	}
}
