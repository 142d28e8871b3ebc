package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	JWT struct {
		Secret string `yaml:"secret"`
		TTL    int    `yaml:"ttl"` // minutes
	} `yaml:"jwt"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
	} `yaml:"email"`

	Storage struct {
		Type      string `yaml:"type"`       // local, s3
		BasePath  string `yaml:"base_path"`  // For local storage
		BaseURL   string `yaml:"base_url"`   // Public URL base
		Bucket    string `yaml:"bucket"`     // For S3
		AccessKey string `yaml:"access_key"` // For S3
		SecretKey string `yaml:"secret_key"` // For S3
		Endpoint  string `yaml:"endpoint"`   // For S3
		UseSSL    bool   `yaml:"use_ssl"`    // For S3
	} `yaml:"storage"`

	Upload struct {
		MaxSize      int64    `yaml:"max_size"`      // Max file size in bytes
		AllowedTypes []string `yaml:"allowed_types"` // Allowed MIME types
	} `yaml:"upload"`

	FrontendURL string `yaml:"frontend_url"`
}

// Load reads the configuration and returns it as an explicit struct.
// Collaborators receive it through their constructors; there is no
// package-level config state.
//
// When DATABASE_URL is set the whole config is built from environment
// variables (test mode). Otherwise it is parsed from the yaml file at
// CONFIG_PATH (default config/config.yaml), with a .env file loaded
// first if one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config

	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		cfg.Database.DSN = dsn
		cfg.Server.Env = os.Getenv("SERVER_ENV")
		cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
		cfg.JWT.Secret = os.Getenv("JWT_SECRET")
		cfg.JWT.TTL = 60

		cfg.Email.SMTPHost = "smtp.test.com"
		cfg.Email.SMTPPort = 587
		cfg.Email.FromEmail = "noreply@worknest.test"
		cfg.Email.FromName = "WorkNest"

		cfg.Storage.Type = "local"
		cfg.Storage.BasePath = "./uploads"
		cfg.Storage.BaseURL = "/files"

		cfg.Upload.MaxSize = 10 * 1024 * 1024 // 10MB
		cfg.Upload.AllowedTypes = DefaultAllowedTypes()

		cfg.FrontendURL = "http://localhost:3000"
		return &cfg, nil
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	f, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file at %s: %w", configPath, err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file at %s: %w", configPath, err)
	}

	if len(cfg.Upload.AllowedTypes) == 0 {
		cfg.Upload.AllowedTypes = DefaultAllowedTypes()
	}
	if cfg.Upload.MaxSize == 0 {
		cfg.Upload.MaxSize = 10 * 1024 * 1024
	}
	if cfg.JWT.TTL == 0 {
		cfg.JWT.TTL = 60
	}

	return &cfg, nil
}

// DefaultAllowedTypes is the MIME set accepted for resumes, cover letters
// and profile photos.
func DefaultAllowedTypes() []string {
	return []string{
		"application/pdf",
		"image/png",
		"image/jpeg",
		"image/webp",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	}
}
