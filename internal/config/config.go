// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Environment variable names recognised by the application.
const (
	// EnvAPIKey holds the Google Gen AI API key used by the generate command.
	EnvAPIKey = "GOOGLE_API_KEY"

	// EnvDataDir overrides the directory used for saved palettes.
	EnvDataDir = "HUEFORGE_DATA_DIR"

	// EnvGenAIModel overrides the Gemini model used for palette generation.
	EnvGenAIModel = "HUEFORGE_GENAI_MODEL"
)

// defaultGenAIModel is used when HUEFORGE_GENAI_MODEL is not set.
const defaultGenAIModel = "gemini-2.0-flash"

// Config holds the resolved application configuration.
type Config struct {
	// APIKey is the Google Gen AI API key. May be empty; the generate
	// command validates it at the point of use.
	APIKey string

	// DataDir is the directory for saved palette documents.
	DataDir string

	// GenAIModel is the Gemini model name for palette generation.
	GenAIModel string
}

// Load resolves configuration from the environment. A .env file in the
// working directory is loaded first if present; real environment variables
// take precedence over it.
func Load() (Config, error) {
	// Missing .env is the normal case, not an error.
	_ = godotenv.Load()

	dataDir := os.Getenv(EnvDataDir)
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("failed to determine home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".local", "share", "hueforge")
	}

	model := os.Getenv(EnvGenAIModel)
	if model == "" {
		model = defaultGenAIModel
	}

	return Config{
		APIKey:     os.Getenv(EnvAPIKey),
		DataDir:    dataDir,
		GenAIModel: model,
	}, nil
}
