package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Environment variables read for identity and push credentials.
const (
	EnvUserName  = "GIT_USER_NAME"
	EnvUserEmail = "GIT_USER_EMAIL"
	EnvToken     = "GITHUB_TOKEN"
)

// LoadEnv loads variables from a .env file without overriding ones already
// set. With an empty path it tries ".env" in the working directory and
// silently does nothing when that file is absent. It returns the loaded path.
func LoadEnv(path string) (string, error) {
	if path == "" {
		if _, err := os.Stat(".env"); err != nil {
			return "", nil
		}
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		return "", fmt.Errorf("failed to load %s: %w", path, err)
	}
	return path, nil
}
