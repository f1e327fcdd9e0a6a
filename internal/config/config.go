package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// TokenEnv names the environment variable holding the GitHub token
	TokenEnv = "GITHUB_TOKEN"
	// BaseURLEnv names the environment variable overriding the GitHub API URL
	BaseURLEnv = "GITHUB_API_URL"

	DefaultInputPath = "./rename.csv"
	EnvFile          = ".env"
)

// ErrMissingToken is returned when no GitHub token is configured
var ErrMissingToken = errors.New(TokenEnv + " is required")

// Config holds everything a rename run needs. It is populated once at startup
// and passed explicitly to the components that use it.
type Config struct {
	Token      string
	InputPath  string
	BaseURL    string
	ReportPath string
}

// FromEnv fills the credential and base URL from the process environment,
// after loading a .env file from the working directory if one exists.
// Values already set on cfg win over the environment, and real environment
// variables win over .env entries.
func (c *Config) FromEnv() error {
	if err := godotenv.Load(EnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", EnvFile, err)
	}

	if c.Token == "" {
		c.Token = strings.TrimSpace(os.Getenv(TokenEnv))
	}
	if c.BaseURL == "" {
		c.BaseURL = strings.TrimSpace(os.Getenv(BaseURLEnv))
	}
	if c.InputPath == "" {
		c.InputPath = DefaultInputPath
	}
	return nil
}

// Validate checks the configuration before any file is read
func (c *Config) Validate() error {
	if c.Token == "" {
		return ErrMissingToken
	}
	if c.InputPath == "" {
		return fmt.Errorf("input path is required")
	}
	if c.BaseURL != "" {
		u, err := url.Parse(c.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid GitHub API URL %q", c.BaseURL)
		}
	}
	return nil
}
