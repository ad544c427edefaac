package config

import (
	"log"
	"os"
	"strconv"
	"strings"

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
		// AccessSecret signs session tokens, VerifySecret signs the short
		// account-verification tokens embedded in emails. They must differ.
		AccessSecret  string `yaml:"access_secret"`
		VerifySecret  string `yaml:"verify_secret"`
		AccessTTLMin  int    `yaml:"access_ttl_minutes"`
		VerifyTTLMin  int    `yaml:"verify_ttl_minutes"`
		CookieMaxAge  int    `yaml:"cookie_max_age_seconds"`
		CookieSecure  bool   `yaml:"cookie_secure"`
	} `yaml:"jwt"`

	Storage struct {
		Type      string `yaml:"type"`       // local, s3
		BasePath  string `yaml:"base_path"`  // for local storage
		BaseURL   string `yaml:"base_url"`   // public URL base
		Bucket    string `yaml:"bucket"`     // for S3-compatible stores
		Region    string `yaml:"region"`
		AccessKey string `yaml:"access_key"`
		SecretKey string `yaml:"secret_key"`
		Endpoint  string `yaml:"endpoint"` // custom S3 endpoint (R2 etc.)
	} `yaml:"storage"`

	Novu struct {
		APIKey  string `yaml:"api_key"`
		BaseURL string `yaml:"base_url"`
	} `yaml:"novu"`

	URLs struct {
		// Frontend is used for post-verification redirects, Backend for the
		// verification links embedded in notifications.
		Frontend string `yaml:"frontend"`
		Backend  string `yaml:"backend"`
	} `yaml:"urls"`

	CORS struct {
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"cors"`
}

var AppConfig *Config

// LoadConfig reads config.yaml unless DATABASE_URL is set, in which case the
// whole configuration comes from environment variables (test/deploy mode).
func LoadConfig() {
	var cfg Config

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	cfg.Database.DSN = dbURL
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.JWT.AccessSecret = os.Getenv("ACCESS_TOKEN_SECRET")
	cfg.JWT.VerifySecret = os.Getenv("VERIFY_ACCOUNT_SECRET")

	cfg.Storage.Type = getEnv("STORAGE_TYPE", "local")
	cfg.Storage.BasePath = getEnv("STORAGE_BASE_PATH", "./uploads")
	cfg.Storage.BaseURL = getEnv("STORAGE_BASE_URL", "/files")
	cfg.Storage.Bucket = os.Getenv("STORAGE_BUCKET")
	cfg.Storage.Region = os.Getenv("STORAGE_REGION")
	cfg.Storage.AccessKey = os.Getenv("STORAGE_ACCESS_KEY")
	cfg.Storage.SecretKey = os.Getenv("STORAGE_SECRET_KEY")
	cfg.Storage.Endpoint = os.Getenv("STORAGE_ENDPOINT")

	cfg.Novu.APIKey = os.Getenv("NOVU_API_KEY")
	cfg.Novu.BaseURL = getEnv("NOVU_BASE_URL", "https://api.novu.co")

	cfg.URLs.Frontend = os.Getenv("FRONTEND_URL")
	cfg.URLs.Backend = os.Getenv("BACKEND_URL")

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.CORS.AllowedOrigins = strings.Split(origins, ",")
	}

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 5500
	}
	if cfg.JWT.AccessTTLMin == 0 {
		cfg.JWT.AccessTTLMin = 180 // 3 hours
	}
	if cfg.JWT.VerifyTTLMin == 0 {
		cfg.JWT.VerifyTTLMin = 2
	}
	if cfg.JWT.CookieMaxAge == 0 {
		cfg.JWT.CookieMaxAge = 24 * 60 * 60
	}
	if cfg.Novu.BaseURL == "" {
		cfg.Novu.BaseURL = "https://api.novu.co"
	}
	if len(cfg.CORS.AllowedOrigins) == 0 {
		cfg.CORS.AllowedOrigins = []string{
			"http://localhost:5500",
			"http://127.0.0.1:3000",
			"http://localhost:3000",
			"http://localhost:5174",
			"https://kora-service.onrender.com",
			"https://kora-kappa.vercel.app",
			"https://kora-rentals.vercel.app",
		}
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
