package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Log     LogConfig
	CORS    CORSConfig
	Storage StorageConfig
	S3      S3Config
	Portals PortalsConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// IsProduction reports whether the server runs in the production environment.
func (s *ServerConfig) IsProduction() bool {
	return s.Environment == "production"
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Log formats.
const (
	LogFormatConsole = "console"
	LogFormatPlain   = "plain"
)

// GinMode maps the log level onto a gin mode. Only the debug level keeps gin's debug output.
func (l *LogConfig) GinMode() string {
	if strings.EqualFold(l.Level, "debug") {
		return "debug"
	}
	return "release"
}

// Flags returns the stdlib log flags for the format. Plain output carries no timestamp, for
// collectors that stamp lines themselves.
func (l *LogConfig) Flags() int {
	if strings.EqualFold(l.Format, LogFormatPlain) {
		return 0
	}
	return log.LstdFlags | log.Lmicroseconds
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Storage backends.
const (
	StorageLocal = "local"
	StorageS3    = "s3"
)

// StorageConfig selects where uploads and generated reports are kept.
type StorageConfig struct {
	Backend       string `mapstructure:"backend"`
	UploadDir     string `mapstructure:"upload_dir"`
	OutputDir     string `mapstructure:"output_dir"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
}

// MaxFileSize returns the upload limit in bytes.
func (s *StorageConfig) MaxFileSize() int64 {
	return s.MaxFileSizeMB * 1024 * 1024
}

// S3Config holds AWS S3 settings. UploadPrefix and OutputPrefix play the role of the local
// upload and output directories.
type S3Config struct {
	Region       string `mapstructure:"region"`
	Bucket       string `mapstructure:"bucket"`
	Endpoint     string `mapstructure:"endpoint"`
	AccessKey    string `mapstructure:"access_key"`
	SecretKey    string `mapstructure:"secret_key"`
	UploadPrefix string `mapstructure:"upload_prefix"`
	OutputPrefix string `mapstructure:"output_prefix"`
}

// PortalsConfig restricts which registered portal parsers accept uploads. Empty means all.
type PortalsConfig struct {
	Supported []string `mapstructure:"supported"`
}

// Load reads configuration from environment variables with the SELLERSUITE_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SELLERSUITE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":5000")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "60s")
	v.SetDefault("server.environment", "development")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", LogFormatConsole)

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173,http://127.0.0.1:5173")

	// Storage defaults
	v.SetDefault("storage.backend", StorageLocal)
	v.SetDefault("storage.upload_dir", "uploads")
	v.SetDefault("storage.output_dir", "outputs")
	v.SetDefault("storage.max_file_size_mb", 50)

	// S3 defaults
	v.SetDefault("s3.region", "ap-south-1")
	v.SetDefault("s3.bucket", "")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.upload_prefix", "uploads")
	v.SetDefault("s3.output_prefix", "outputs")

	// Portal defaults
	v.SetDefault("portals.supported", "")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":              "SELLERSUITE_SERVER_PORT",
		"server.read_timeout":      "SELLERSUITE_SERVER_READ_TIMEOUT",
		"server.write_timeout":     "SELLERSUITE_SERVER_WRITE_TIMEOUT",
		"server.environment":       "SELLERSUITE_SERVER_ENVIRONMENT",
		"log.level":                "SELLERSUITE_LOG_LEVEL",
		"log.format":               "SELLERSUITE_LOG_FORMAT",
		"cors.allowed_origins":     "SELLERSUITE_CORS_ALLOWED_ORIGINS",
		"storage.backend":          "SELLERSUITE_STORAGE_BACKEND",
		"storage.upload_dir":       "SELLERSUITE_STORAGE_UPLOAD_DIR",
		"storage.output_dir":       "SELLERSUITE_STORAGE_OUTPUT_DIR",
		"storage.max_file_size_mb": "SELLERSUITE_STORAGE_MAX_FILE_SIZE_MB",
		"s3.region":                "SELLERSUITE_S3_REGION",
		"s3.bucket":                "SELLERSUITE_S3_BUCKET",
		"s3.endpoint":              "SELLERSUITE_S3_ENDPOINT",
		"s3.access_key":            "SELLERSUITE_S3_ACCESS_KEY",
		"s3.secret_key":            "SELLERSUITE_S3_SECRET_KEY",
		"s3.upload_prefix":         "SELLERSUITE_S3_UPLOAD_PREFIX",
		"s3.output_prefix":         "SELLERSUITE_S3_OUTPUT_PREFIX",
		"portals.supported":        "SELLERSUITE_PORTALS_SUPPORTED",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if SELLERSUITE_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("SELLERSUITE_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: splitList(v.GetString("cors.allowed_origins")),
	}
	cfg.Storage = StorageConfig{
		Backend:       strings.ToLower(v.GetString("storage.backend")),
		UploadDir:     v.GetString("storage.upload_dir"),
		OutputDir:     v.GetString("storage.output_dir"),
		MaxFileSizeMB: v.GetInt64("storage.max_file_size_mb"),
	}
	cfg.S3 = S3Config{
		Region:       v.GetString("s3.region"),
		Bucket:       v.GetString("s3.bucket"),
		Endpoint:     v.GetString("s3.endpoint"),
		AccessKey:    v.GetString("s3.access_key"),
		SecretKey:    v.GetString("s3.secret_key"),
		UploadPrefix: v.GetString("s3.upload_prefix"),
		OutputPrefix: v.GetString("s3.output_prefix"),
	}
	var portals []string
	for _, p := range splitList(v.GetString("portals.supported")) {
		portals = append(portals, strings.ToLower(p))
	}
	cfg.Portals = PortalsConfig{Supported: portals}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage.Backend {
	case StorageLocal, StorageS3:
	default:
		return fmt.Errorf("config: unknown storage backend %q (want %q or %q)", c.Storage.Backend, StorageLocal, StorageS3)
	}
	switch strings.ToLower(c.Log.Format) {
	case LogFormatConsole, LogFormatPlain:
	default:
		return fmt.Errorf("config: unknown log format %q (want %q or %q)", c.Log.Format, LogFormatConsole, LogFormatPlain)
	}
	if c.Storage.MaxFileSizeMB <= 0 {
		return fmt.Errorf("config: storage.max_file_size_mb must be positive, got %d", c.Storage.MaxFileSizeMB)
	}
	if c.Storage.Backend == StorageS3 && c.S3.Bucket == "" {
		return fmt.Errorf("config: s3.bucket is required for the s3 storage backend")
	}
	return nil
}

// splitList parses a comma-separated string, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
