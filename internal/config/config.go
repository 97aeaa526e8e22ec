package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Operations supported by the action.
const (
	OperationAdd     = "add"
	OperationRefresh = "refresh"
)

const (
	// DefaultTimeoutSeconds bounds the single API call. Indexing a large
	// library can take a long time, so the default is generous.
	DefaultTimeoutSeconds = 1800

	defaultServerURL = "https://github.com"
)

// Config holds all resolved inputs for one action run. It is built once at
// startup and never mutated afterwards; business logic reads it instead of
// the environment.
type Config struct {
	// Operation is always "add" or "refresh" after resolution.
	Operation string

	// LibraryName identifies an already-registered library ("/owner/name").
	LibraryName string

	// RepoURL is the documentation source repository for the add operation.
	RepoURL string

	// TimeoutSeconds bounds the API request.
	TimeoutSeconds int

	// GitHubRepository and GitHubServerURL are the ambient CI context used
	// only to auto-detect LibraryName and RepoURL when not given explicitly.
	GitHubRepository string
	GitHubServerURL  string

	// Logging configuration
	LogLevel string
}

// Overrides carries command-line values that take precedence over the
// INPUT_* environment. Empty fields leave the environment value alone.
type Overrides struct {
	Operation   string
	LibraryName string
	RepoURL     string
	Timeout     string
}

// New creates a Config from the INPUT_* environment variables and the
// ambient GitHub context, loading a .env file first if one is present.
// OS environment variables take precedence over .env file values.
func New() *Config {
	return NewWithOverrides(Overrides{})
}

// NewWithOverrides creates a Config the same way New does, applying the
// given command-line overrides before defaulting and auto-detection.
func NewWithOverrides(o Overrides) *Config {
	// Load .env file from the working directory (silently ignore if not found)
	envPath := filepath.Join(".", ".env")
	_ = godotenv.Load(envPath)

	cfg := &Config{
		Operation:        resolveOperation(firstNonEmpty(o.Operation, os.Getenv("INPUT_OPERATION"))),
		LibraryName:      strings.TrimSpace(firstNonEmpty(o.LibraryName, os.Getenv("INPUT_LIBRARY_NAME"))),
		RepoURL:          strings.TrimSpace(firstNonEmpty(o.RepoURL, os.Getenv("INPUT_REPO_URL"))),
		TimeoutSeconds:   resolveTimeout(firstNonEmpty(o.Timeout, os.Getenv("INPUT_TIMEOUT"))),
		GitHubRepository: os.Getenv("GITHUB_REPOSITORY"),
		GitHubServerURL:  getEnvOrDefault("GITHUB_SERVER_URL", defaultServerURL),
		LogLevel:         getEnvOrDefault("LOG_LEVEL", "INFO"),
	}

	// Auto-detect values if not provided. Explicit inputs always win.
	if cfg.LibraryName == "" && cfg.GitHubRepository != "" {
		cfg.LibraryName = "/" + cfg.GitHubRepository
	}
	if cfg.RepoURL == "" && cfg.GitHubRepository != "" {
		cfg.RepoURL = cfg.GitHubServerURL + "/" + cfg.GitHubRepository
	}

	return cfg
}

// Validate checks that the inputs required by the selected operation are
// present. It runs before any network activity; a failure aborts the run.
func (c *Config) Validate() error {
	// Resolution already coerces unknown operations to "refresh", so this
	// re-check only fires on a hand-built Config.
	if c.Operation != OperationAdd && c.Operation != OperationRefresh {
		return fmt.Errorf("invalid operation: %s. Must be 'add' or 'refresh'", c.Operation)
	}

	if c.Operation == OperationAdd && c.RepoURL == "" {
		return fmt.Errorf("repo-url is required for 'add' operation")
	}

	if c.Operation == OperationRefresh && c.LibraryName == "" {
		return fmt.Errorf("library-name is required for 'refresh' operation")
	}

	return nil
}

// resolveOperation normalizes the raw operation input. Anything other than
// the two known operations falls back to "refresh".
func resolveOperation(raw string) string {
	op := strings.ToLower(strings.TrimSpace(raw))
	switch op {
	case OperationAdd, OperationRefresh:
		return op
	default:
		return OperationRefresh
	}
}

// resolveTimeout parses the raw timeout input as integer seconds. Values
// that fail to parse or are not positive fall back to the default. No upper
// bound is enforced.
func resolveTimeout(raw string) int {
	seconds, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || seconds <= 0 {
		return DefaultTimeoutSeconds
	}
	return seconds
}

// getEnvOrDefault returns the value of an environment variable or a default value
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
