package config

import (
	"fmt"
	"go/build"
	"os"
	"path/filepath"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/joho/godotenv"
)

const ServiceName = "gitbeam.commit.badge"

const (
	defaultPort      = "80"
	defaultGRPCPort  = "9090"
	defaultWebURL    = "https://github.com"
	defaultUserAgent = "github-user-commits-widget"
	defaultLogLevel  = "info"
)

type Secrets struct {
	Port            string `json:"PORT"`
	GRPCPort        string `json:"GRPC_PORT"`
	GitHubAPIURL    string `json:"GITHUB_API_URL"`
	GitHubWebURL    string `json:"GITHUB_WEB_URL"`
	GitHubToken     string `json:"GITHUB_TOKEN"`
	GitHubUserAgent string `json:"GITHUB_USER_AGENT"`
	LogLevel        string `json:"LOG_LEVEL"`
}

var ss Secrets

func init() {
	importPath := fmt.Sprintf("%s/config", ServiceName)
	p, err := build.Default.Import(importPath, "", build.FindOnly)
	if err == nil {
		env := filepath.Join(p.Dir, "../.env")
		_ = godotenv.Load(env)
	}

	ss = Load()
}

// Load reads Secrets from the process environment, falling back to defaults.
func Load() Secrets {
	s := Secrets{
		GitHubAPIURL: os.Getenv("GITHUB_API_URL"),
		GitHubToken:  os.Getenv("GITHUB_TOKEN"),
	}
	s.Port = getEnv("PORT", defaultPort)
	s.GRPCPort = getEnv("GRPC_PORT", defaultGRPCPort)
	s.GitHubWebURL = getEnv("GITHUB_WEB_URL", defaultWebURL)
	s.GitHubUserAgent = getEnv("GITHUB_USER_AGENT", defaultUserAgent)
	s.LogLevel = getEnv("LOG_LEVEL", defaultLogLevel)
	return s
}

func (s Secrets) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Port, validation.Required, is.Port),
		validation.Field(&s.GRPCPort, validation.Required, is.Port),
		validation.Field(&s.GitHubAPIURL, is.URL),
		validation.Field(&s.GitHubWebURL, validation.Required, is.URL),
		validation.Field(&s.GitHubUserAgent, validation.Required),
		validation.Field(&s.LogLevel, validation.In("panic", "fatal", "error", "warn", "warning", "info", "debug", "trace")),
	)
}

// GetSecrets is used to get value from the Secrets runtime.
func GetSecrets() Secrets {
	return ss
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
