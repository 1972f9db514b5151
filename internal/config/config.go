package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	JWT    JWTConfig
	S3     S3Config
	Policy PolicyConfig
	CORS   CORSConfig
	Log    LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret             string        `mapstructure:"secret"`
	AccessTokenExpiry  time.Duration `mapstructure:"access_expiry"`
	RefreshTokenExpiry time.Duration `mapstructure:"refresh_expiry"`
	Issuer             string        `mapstructure:"issuer"`
}

// S3Config holds object-storage settings for uploaded document content.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// PolicyConfig holds access-policy settings. An empty RulePath uses the
// embedded default rule dataset.
type PolicyConfig struct {
	RulePath string `mapstructure:"rule_path"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the KLAGEDOK_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("KLAGEDOK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "klagedok")
	v.SetDefault("db.password", "klagedok_secret")
	v.SetDefault("db.name", "klagedok_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "15m")
	v.SetDefault("jwt.refresh_expiry", "168h")
	v.SetDefault("jwt.issuer", "klagedok")

	// S3 defaults
	v.SetDefault("s3.region", "eu-north-1")
	v.SetDefault("s3.bucket", "klagedok-documents")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.max_file_size_mb", 50)
	v.SetDefault("s3.presign_expiry", 3600)

	// Policy defaults (empty path selects the embedded rule dataset)
	v.SetDefault("policy.rule_path", "")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":          "KLAGEDOK_SERVER_PORT",
		"server.read_timeout":  "KLAGEDOK_SERVER_READ_TIMEOUT",
		"server.write_timeout": "KLAGEDOK_SERVER_WRITE_TIMEOUT",
		"server.environment":   "KLAGEDOK_SERVER_ENVIRONMENT",
		"db.host":              "KLAGEDOK_DB_HOST",
		"db.port":              "KLAGEDOK_DB_PORT",
		"db.user":              "KLAGEDOK_DB_USER",
		"db.password":          "KLAGEDOK_DB_PASSWORD",
		"db.name":              "KLAGEDOK_DB_NAME",
		"db.sslmode":           "KLAGEDOK_DB_SSLMODE",
		"db.max_open":          "KLAGEDOK_DB_MAX_OPEN",
		"db.max_idle":          "KLAGEDOK_DB_MAX_IDLE",
		"jwt.secret":           "KLAGEDOK_JWT_SECRET",
		"jwt.access_expiry":    "KLAGEDOK_JWT_ACCESS_EXPIRY",
		"jwt.refresh_expiry":   "KLAGEDOK_JWT_REFRESH_EXPIRY",
		"jwt.issuer":           "KLAGEDOK_JWT_ISSUER",
		"s3.region":            "KLAGEDOK_S3_REGION",
		"s3.bucket":            "KLAGEDOK_S3_BUCKET",
		"s3.endpoint":          "KLAGEDOK_S3_ENDPOINT",
		"s3.access_key":        "KLAGEDOK_S3_ACCESS_KEY",
		"s3.secret_key":        "KLAGEDOK_S3_SECRET_KEY",
		"s3.max_file_size_mb":  "KLAGEDOK_S3_MAX_FILE_SIZE_MB",
		"s3.presign_expiry":    "KLAGEDOK_S3_PRESIGN_EXPIRY",
		"policy.rule_path":     "KLAGEDOK_POLICY_RULE_PATH",
		"log.level":            "KLAGEDOK_LOG_LEVEL",
		"log.format":           "KLAGEDOK_LOG_FORMAT",
		"cors.allowed_origins": "KLAGEDOK_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Platform-assigned PORT wins unless the server port was set explicitly.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("KLAGEDOK_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret:             v.GetString("jwt.secret"),
		AccessTokenExpiry:  v.GetDuration("jwt.access_expiry"),
		RefreshTokenExpiry: v.GetDuration("jwt.refresh_expiry"),
		Issuer:             v.GetString("jwt.issuer"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		MaxFileSizeMB: v.GetInt64("s3.max_file_size_mb"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}
	cfg.Policy = PolicyConfig{
		RulePath: v.GetString("policy.rule_path"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	return cfg, nil
}
