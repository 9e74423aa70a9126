package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Log       LogConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	AI        AIConfig
	Storage   StorageConfig
	Tracing   TracingConfig   `mapstructure:"tracing"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

type ServerConfig struct {
	Port string
	Mode string
}

type LogConfig struct {
	File string `mapstructure:"file"`
}

type DatabaseConfig struct {
	// Driver is "mysql" or "sqlite".
	Driver     string `mapstructure:"driver"`
	Host       string
	Port       int
	User       string
	Password   string
	DBName     string
	Charset    string
	ParseTime  bool
	SQLitePath string `mapstructure:"sqlite_path"`
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type AIConfig struct {
	// Provider is "gemini" or "openai".
	Provider       string   `mapstructure:"provider"`
	BaseURL        string   `mapstructure:"base_url"`
	APIKey         string   `mapstructure:"api_key"`
	CredentialKey  string   `mapstructure:"credential_key"`
	Models         []string `mapstructure:"models"`
	TimeoutSeconds int      `mapstructure:"timeout_seconds"`
}

type StorageConfig struct {
	// Type is "none", "local", "minio" or "oss".
	Type          string `mapstructure:"type"`
	LocalPath     string `mapstructure:"local_path"`
	MinioEndpoint string `mapstructure:"minio_endpoint"`
	MinioAccessID string `mapstructure:"minio_access_key"`
	MinioSecret   string `mapstructure:"minio_secret_key"`
	MinioBucket   string `mapstructure:"minio_bucket"`
	MinioUseSSL   bool   `mapstructure:"minio_use_ssl"`
	OSSEndpoint   string `mapstructure:"oss_endpoint"`
	OSSAccessKey  string `mapstructure:"oss_access_key"`
	OSSSecretKey  string `mapstructure:"oss_secret_key"`
	OSSBucket     string `mapstructure:"oss_bucket"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("log.file", "logs/app.log")

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.charset", "utf8mb4")
	v.SetDefault("database.parsetime", true)
	v.SetDefault("database.sqlite_path", "data/tutor.db")

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)

	v.SetDefault("ai.provider", "gemini")
	v.SetDefault("ai.credential_key", "user_gemini_api_key")
	v.SetDefault("ai.models", []string{"gemini-3-flash-preview", "gemini-3-pro-preview", "gemini-2.5-flash"})
	v.SetDefault("ai.timeout_seconds", 120)

	v.SetDefault("storage.type", "none")
	v.SetDefault("storage.local_path", "storage")

	v.SetDefault("rate_limit.max_requests", 30)
	v.SetDefault("rate_limit.window_minutes", 1)
}

// LoadConfig reads config.yaml from path. A missing file is not an error;
// defaults and TUTOR_* environment variables still apply.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("TUTOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	// Database
	v.BindEnv("database.driver", "TUTOR_DATABASE_DRIVER")
	v.BindEnv("database.host", "TUTOR_DATABASE_HOST")
	v.BindEnv("database.port", "TUTOR_DATABASE_PORT")
	v.BindEnv("database.user", "TUTOR_DATABASE_USER")
	v.BindEnv("database.password", "TUTOR_DATABASE_PASSWORD")
	v.BindEnv("database.dbname", "TUTOR_DATABASE_NAME")
	v.BindEnv("database.sqlite_path", "TUTOR_SQLITE_PATH")

	// Redis
	v.BindEnv("redis.host", "TUTOR_REDIS_HOST")
	v.BindEnv("redis.port", "TUTOR_REDIS_PORT")
	v.BindEnv("redis.password", "TUTOR_REDIS_PASSWORD")

	// Server
	v.BindEnv("server.mode", "TUTOR_SERVER_MODE")
	v.BindEnv("server.port", "TUTOR_SERVER_PORT")

	// AI
	v.BindEnv("ai.provider", "TUTOR_AI_PROVIDER")
	v.BindEnv("ai.base_url", "TUTOR_AI_BASE_URL")
	v.BindEnv("ai.api_key", "TUTOR_AI_API_KEY")
	v.BindEnv("ai.models", "TUTOR_AI_MODELS")

	// Storage
	v.BindEnv("storage.type", "TUTOR_STORAGE_TYPE")
	v.BindEnv("storage.oss_endpoint", "TUTOR_OSS_ENDPOINT")
	v.BindEnv("storage.oss_access_key", "TUTOR_OSS_ACCESS_KEY")
	v.BindEnv("storage.oss_secret_key", "TUTOR_OSS_SECRET_KEY")
	v.BindEnv("storage.oss_bucket", "TUTOR_OSS_BUCKET")
	v.BindEnv("storage.minio_endpoint", "TUTOR_MINIO_ENDPOINT")
	v.BindEnv("storage.minio_access_key", "TUTOR_MINIO_ACCESS_KEY")
	v.BindEnv("storage.minio_secret_key", "TUTOR_MINIO_SECRET_KEY")
	v.BindEnv("storage.minio_bucket", "TUTOR_MINIO_BUCKET")

	// Tracing
	v.BindEnv("tracing.enabled", "TUTOR_TRACING_ENABLED")
	v.BindEnv("tracing.collector_endpoint", "TUTOR_TRACING_COLLECTOR_ENDPOINT")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	cfg.AI.Models = splitModels(cfg.AI.Models)

	if cfg.Storage.Type == "local" {
		if _, err := os.Stat(cfg.Storage.LocalPath); os.IsNotExist(err) {
			os.MkdirAll(cfg.Storage.LocalPath, 0755)
		}
	}

	return &cfg, nil
}

// splitModels accepts both a YAML list and a comma separated env value.
func splitModels(in []string) []string {
	var out []string
	for _, entry := range in {
		for _, m := range strings.Split(entry, ",") {
			if m = strings.TrimSpace(m); m != "" {
				out = append(out, m)
			}
		}
	}
	return out
}
