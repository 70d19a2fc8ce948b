/*
Package configs is responsible for loading and parsing the application's configuration settings.

It configures server parameters by reading operating system environment variables,
including the running environment, port, upload directory, CORS allowed origins,
and request body logging behavior.
*/
package configs

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// AppConfig contains all configuration parameters required for the application to run.
// All configuration values are loaded from environment variables.
type AppConfig struct {
	// General Server Settings
	Environment string
	Port        int

	// Storage Settings
	UploadDir string

	// Security Settings
	AllowedOrigins []string

	// Observability Settings
	LogRequestBodies bool
	LogBodyLimit     int64
}

// LoadConfig reads and parses the application configuration from environment variables.
// It provides default values for each configuration item and performs necessary type
// conversions and validation. It returns a pointer to the AppConfig struct and any
// error encountered.
func LoadConfig() (*AppConfig, error) {
	cfg := &AppConfig{}

	// --- General Server Settings ---
	// Environment
	cfg.Environment = os.Getenv("ENVIRONMENT")
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	// Port
	portStr := os.Getenv("PORT")
	if portStr == "" {
		portStr = "8080"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT environment variable: %w", err)
	}
	cfg.Port = port

	if cfg.Port < 1024 || cfg.Port > 65535 {
		return nil, fmt.Errorf("port number %d is outside the recommended range (%d-%d) to avoid privileged ports", cfg.Port, 1024, 65535)
	}

	// --- Storage Settings ---
	// Upload directory for stored documents
	cfg.UploadDir = os.Getenv("UPLOAD_DIR")
	if cfg.UploadDir == "" {
		cfg.UploadDir = "uploaded_documents"
	}

	// --- Security Settings ---
	// AllowedOrigins
	originsStr := os.Getenv("ALLOWED_ORIGINS")
	if originsStr != "" {
		origins := strings.Split(originsStr, ",")
		for _, origin := range origins {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
			}
		}
	} else {
		cfg.AllowedOrigins = []string{}
	}

	// --- Observability Settings ---
	// Request body logging is on by default but can be disabled where log
	// volume matters. Multipart bodies are never logged regardless.
	bodiesStr := os.Getenv("LOG_REQUEST_BODIES")
	if bodiesStr == "" {
		cfg.LogRequestBodies = true
	} else {
		logBodies, err := strconv.ParseBool(bodiesStr)
		if err != nil {
			return nil, fmt.Errorf("invalid LOG_REQUEST_BODIES environment variable: %w", err)
		}
		cfg.LogRequestBodies = logBodies
	}

	limitStr := os.Getenv("LOG_BODY_LIMIT")
	if limitStr == "" {
		limitStr = "4096"
	}
	limit, err := strconv.ParseInt(limitStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_BODY_LIMIT environment variable: %w", err)
	}
	if limit <= 0 {
		return nil, fmt.Errorf("LOG_BODY_LIMIT must be positive, got %d", limit)
	}
	cfg.LogBodyLimit = limit

	return cfg, nil
}
