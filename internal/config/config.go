package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/fr4nk3nst1ner/jobportal/internal/models"
	"github.com/fr4nk3nst1ner/jobportal/internal/utils"
)

// AppConfig represents the application configuration
type AppConfig struct {
	API      APIConfig      `yaml:"api"`
	Web      WebConfig      `yaml:"web"`
	Display  DisplayConfig  `yaml:"display"`
	Importer ImporterConfig `yaml:"importer"`
}

type APIConfig struct {
	BaseURL string `yaml:"base_url"` // Prefer JOBPORTAL_API_URL env var
}

type WebConfig struct {
	Port     int    `yaml:"port"`
	Username string `yaml:"username"` // Prefer WEB_USERNAME env var
	Password string `yaml:"password"` // Prefer WEB_PASSWORD env var
}

type DisplayConfig struct {
	DateFormat    string `yaml:"date_format"`
	RelativeDates bool   `yaml:"relative_dates"`
}

type ImporterConfig struct {
	SourceURL      string        `yaml:"source_url"`
	Limit          int           `yaml:"limit"`
	MaxRetries     int           `yaml:"max_retries"`
	RetryDelay     time.Duration `yaml:"retry_delay"`
	DefaultJobType string        `yaml:"default_job_type"`
}

// DefaultConfig returns the configuration used when no config file exists
func DefaultConfig() *AppConfig {
	return &AppConfig{
		API: APIConfig{
			BaseURL: "http://localhost:5000",
		},
		Web: WebConfig{
			Port: 8080,
		},
		Display: DisplayConfig{
			DateFormat:    utils.DefaultDateFormat,
			RelativeDates: true,
		},
		Importer: ImporterConfig{
			SourceURL:      "https://www.actuarylist.com",
			Limit:          10,
			MaxRetries:     3,
			RetryDelay:     time.Second,
			DefaultJobType: models.JobTypeFullTime,
		},
	}
}

// LoadConfig loads the configuration from path, falling back to defaults when
// the file does not exist. Values from .env and the environment override the file.
func LoadConfig(path string) (*AppConfig, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	cfg := DefaultConfig()

	if path == "" {
		path = FindConfigPath()
	}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Defaults only
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// FindConfigPath returns the first config file that exists
func FindConfigPath() string {
	paths := []string{
		os.Getenv("JOBPORTAL_CONFIG"),
		"config.yaml",
		"/etc/jobportal/config.yaml",
	}

	for _, p := range paths {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return "config.yaml"
}

func (c *AppConfig) applyEnv() {
	c.API.BaseURL = getEnvOrDefault("JOBPORTAL_API_URL", c.API.BaseURL)
	c.Web.Username = getEnvOrDefault("WEB_USERNAME", c.Web.Username)
	c.Web.Password = getEnvOrDefault("WEB_PASSWORD", c.Web.Password)
	if port, err := strconv.Atoi(os.Getenv("PORT")); err == nil {
		c.Web.Port = port
	}
}

// Validate validates the configuration
func (c *AppConfig) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("api base_url must be an absolute URL, got %q", c.API.BaseURL)
	}

	if c.Web.Port <= 0 || c.Web.Port > 65535 {
		return fmt.Errorf("web port must be between 1 and 65535, got %d", c.Web.Port)
	}

	if (c.Web.Username == "") != (c.Web.Password == "") {
		return fmt.Errorf("web username and password must be set together")
	}

	if c.Importer.Limit < 0 {
		return fmt.Errorf("importer limit cannot be negative")
	}

	if c.Importer.MaxRetries <= 0 {
		return fmt.Errorf("importer max_retries must be positive")
	}

	if c.Importer.RetryDelay < 0 {
		return fmt.Errorf("importer retry_delay cannot be negative")
	}

	if !models.IsValidJobType(c.Importer.DefaultJobType) {
		return fmt.Errorf("importer default_job_type %q is not a known job type", c.Importer.DefaultJobType)
	}

	return nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
