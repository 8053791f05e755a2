package profile

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Profile is the configuration to start the main server.
type Profile struct {
	// Mode can be "prod" or "dev"
	Mode string
	// Addr is the binding address for the server
	Addr string
	// Port is the binding port for the server
	Port int
	// Data is the data directory holding the family document
	Data string
	// Version is the current version of the server
	Version string

	// OpenAIAPIKey enables the LLM chat and transcription endpoints.
	// Without it the server runs degraded: fallback suggestions only,
	// chat and speech disabled. Never logged, never persisted.
	OpenAIAPIKey string // OPENAI_API_KEY
	// OpenAIBaseURL overrides the endpoint base URL.
	OpenAIBaseURL string // FAMICHAT_OPENAI_BASE_URL
	// ChatModel is the chat model identifier (default: gpt-4o-mini).
	ChatModel string // FAMICHAT_CHAT_MODEL
	// STTModel is the speech-to-text model identifier (default: whisper-1).
	STTModel string // FAMICHAT_STT_MODEL
}

func (p *Profile) IsDev() bool {
	return p.Mode != "prod"
}

// IsAIEnabled returns true if an API key is configured.
func (p *Profile) IsAIEnabled() bool {
	return p.OpenAIAPIKey != ""
}

// FamilyDataPath returns the path of the persisted family document.
func (p *Profile) FamilyDataPath() string {
	return filepath.Join(p.Data, "family_data.json")
}

// getEnvOrDefault returns the environment variable value or the default value.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// FromEnv loads configuration from environment variables.
func (p *Profile) FromEnv() {
	p.OpenAIAPIKey = getEnvOrDefault("FAMICHAT_OPENAI_API_KEY", os.Getenv("OPENAI_API_KEY"))
	p.OpenAIBaseURL = getEnvOrDefault("FAMICHAT_OPENAI_BASE_URL", "https://api.openai.com/v1")
	p.ChatModel = getEnvOrDefault("FAMICHAT_CHAT_MODEL", "gpt-4o-mini")
	p.STTModel = getEnvOrDefault("FAMICHAT_STT_MODEL", "whisper-1")
}

func checkDataDir(dataDir string) (string, error) {
	// Convert to absolute path if relative path is supplied.
	if !filepath.IsAbs(dataDir) {
		relativeDir := filepath.Join(filepath.Dir(os.Args[0]), dataDir)
		absDir, err := filepath.Abs(relativeDir)
		if err != nil {
			return "", err
		}
		dataDir = absDir
	}

	// Trim trailing \ or / in case user supplies
	dataDir = strings.TrimRight(dataDir, "\\/")
	if _, err := os.Stat(dataDir); err != nil {
		return "", errors.Wrapf(err, "unable to access data folder %s", dataDir)
	}
	return dataDir, nil
}

func (p *Profile) Validate() error {
	if p.Mode != "dev" && p.Mode != "prod" {
		p.Mode = "dev"
	}

	if p.Data == "" {
		p.Data = "."
	}

	dataDir, err := checkDataDir(p.Data)
	if err != nil {
		return err
	}
	p.Data = dataDir

	return nil
}
