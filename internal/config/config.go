package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
)

type AppConfig struct {
	Env                Environment
	LogLevel           string
	LogJSON            bool
	ServerPort         string
	RawBodyLog         bool
	HttpTimeoutSeconds int
}

type SummaryConfig struct {
	DefaultSentences int
	MaxSentences     int
	MaxInputBytes    int
}

// GraphConfig holds the random-walk constants. The iteration cap and
// tolerance bound the eigenvector variant only.
type GraphConfig struct {
	Damping       float64
	MaxIterations int
	Tolerance     float64
}

type AbstractiveConfig struct {
	URL        string
	Token      string
	BartModel  string
	T5Model    string
	MaxLength  int
	MinLength  int
	RetryCount int
}

type SourceConfig struct {
	SamplesPath  string
	UserAgent    string
	MaxFileBytes int
}

type Config struct {
	App         AppConfig
	Summary     SummaryConfig
	Graph       GraphConfig
	Abstractive AbstractiveConfig
	Source      SourceConfig
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	appEnv := getEnv("APP_ENV", "development")
	env := parseEnvironment(appEnv)

	logLevel := getLogLevel(env)

	return &Config{
		App: AppConfig{
			Env:                env,
			LogLevel:           logLevel,
			LogJSON:            getEnvBool("APP_LOG_JSON", env == Production),
			ServerPort:         getEnv("APP_SERVER_PORT", "8080"),
			RawBodyLog:         getEnvBool("APP_RAW_BODY_LOG", false),
			HttpTimeoutSeconds: getEnvInt("APP_HTTP_TIMEOUT_SECONDS", 30),
		},
		Summary: SummaryConfig{
			DefaultSentences: getEnvInt("SUMMARY_DEFAULT_SENTENCES", 5),
			MaxSentences:     getEnvInt("SUMMARY_MAX_SENTENCES", 50),
			MaxInputBytes:    getEnvInt("SUMMARY_MAX_INPUT_BYTES", 1<<20),
		},
		Graph: GraphConfig{
			Damping:       getEnvFloat("GRAPH_DAMPING", 0.85),
			MaxIterations: getEnvInt("GRAPH_MAX_ITERATIONS", 100),
			Tolerance:     getEnvFloat("GRAPH_TOLERANCE", 0.0001),
		},
		Abstractive: AbstractiveConfig{
			URL:        getEnv("ABSTRACTIVE_URL", "https://api-inference.huggingface.co/models"),
			Token:      getEnv("ABSTRACTIVE_TOKEN", ""),
			BartModel:  getEnv("ABSTRACTIVE_BART_MODEL", "facebook/bart-large-cnn"),
			T5Model:    getEnv("ABSTRACTIVE_T5_MODEL", "t5-small"),
			MaxLength:  getEnvInt("ABSTRACTIVE_MAX_LENGTH", 150),
			MinLength:  getEnvInt("ABSTRACTIVE_MIN_LENGTH", 50),
			RetryCount: getEnvInt("ABSTRACTIVE_RETRY_COUNT", 3),
		},
		Source: SourceConfig{
			SamplesPath:  getEnv("SOURCE_SAMPLES_PATH", ""),
			UserAgent:    getEnv("SOURCE_USER_AGENT", "digest/1.0 (+https://github.com/wgomg/digest)"),
			MaxFileBytes: getEnvInt("SOURCE_MAX_FILE_BYTES", 5<<20),
		},
	}, nil
}

func (c *Config) Validate() error {
	if c.Summary.DefaultSentences < 1 {
		return fmt.Errorf("SUMMARY_DEFAULT_SENTENCES must be at least 1")
	}
	if c.Summary.MaxSentences < c.Summary.DefaultSentences {
		return fmt.Errorf("SUMMARY_MAX_SENTENCES must not be lower than SUMMARY_DEFAULT_SENTENCES")
	}
	if c.Summary.MaxInputBytes <= 0 {
		return fmt.Errorf("SUMMARY_MAX_INPUT_BYTES must be positive")
	}
	if c.Graph.Damping <= 0 || c.Graph.Damping >= 1 {
		return fmt.Errorf("GRAPH_DAMPING must be between 0 and 1 (exclusive)")
	}
	if c.Graph.MaxIterations < 1 {
		return fmt.Errorf("GRAPH_MAX_ITERATIONS must be at least 1")
	}
	if c.Graph.Tolerance <= 0 {
		return fmt.Errorf("GRAPH_TOLERANCE must be positive")
	}
	if c.Abstractive.MinLength < 0 || c.Abstractive.MaxLength < 1 {
		return fmt.Errorf("ABSTRACTIVE_MIN_LENGTH and ABSTRACTIVE_MAX_LENGTH must be positive")
	}
	if c.Abstractive.MinLength > c.Abstractive.MaxLength {
		return fmt.Errorf("ABSTRACTIVE_MIN_LENGTH must not exceed ABSTRACTIVE_MAX_LENGTH")
	}
	return nil
}

// AbstractiveEnabled reports whether a hosted model endpoint is configured.
func (c *Config) AbstractiveEnabled() bool {
	return c.Abstractive.URL != "" && c.Abstractive.Token != ""
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

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
