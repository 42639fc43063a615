package util

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Secrets struct {
	OpenAIApiKey string `json:"openaiApiKey"`
}

// LoadSecrets reads configuration from, in order of precedence, the
// environment (after loading a .env file when present) and a secrets JSON
// file. The narrative key may be absent; callers that need it must check.
func LoadSecrets() (*Secrets, error) {
	// .env is optional, same as the environments that never ship one
	_ = godotenv.Load()

	secrets := &Secrets{}

	secretsFile := "secrets.json"
	if os.Getenv("VERDANT_ENV") == "dev" {
		secretsFile = "secrets-dev.json"
	}
	if f, err := os.ReadFile(secretsFile); err == nil {
		if err := json.Unmarshal(f, secrets); err != nil {
			return nil, fmt.Errorf("could not parse %s: %w", secretsFile, err)
		}
	}

	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		secrets.OpenAIApiKey = key
	}

	return secrets, nil
}
