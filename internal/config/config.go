package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Log     LogConfig
	Storage StorageConfig
	S3      S3Config
	Data    DataConfig
	Match   MatchConfig
	Extract ExtractConfig
	CORS    CORSConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// StorageConfig selects and tunes the document store.
type StorageConfig struct {
	Provider      string `mapstructure:"provider"` // "local" or "s3"
	LocalDir      string `mapstructure:"local_dir"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
}

// S3Config holds AWS S3 settings for the s3 storage provider.
type S3Config struct {
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	KeyPrefix string `mapstructure:"key_prefix"`
}

// DataConfig points at the external data files consumed per run.
type DataConfig struct {
	ObjectsFile   string `mapstructure:"objects_file"`
	VendorMapFile string `mapstructure:"vendor_map_file"`
}

// MatchConfig tunes building resolution.
type MatchConfig struct {
	Threshold int `mapstructure:"threshold"`
}

// ExtractConfig tunes the line-oriented extraction heuristics.
type ExtractConfig struct {
	HeadLines         int      `mapstructure:"head_lines"`
	BuildingKeywords  []string `mapstructure:"building_keywords"`
	BuildingLookahead int      `mapstructure:"building_lookahead"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Load reads configuration from environment variables with the
// IMMODOK_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("IMMODOK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// Storage defaults
	v.SetDefault("storage.provider", "local")
	v.SetDefault("storage.local_dir", "tmp")
	v.SetDefault("storage.max_file_size_mb", 50)

	// S3 defaults
	v.SetDefault("s3.region", "eu-central-1")
	v.SetDefault("s3.bucket", "immodok-uploads")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.key_prefix", "documents")

	// Data defaults
	v.SetDefault("data.objects_file", "data/objects.csv")
	v.SetDefault("data.vendor_map_file", "data/vendor_map.json")

	// Match defaults
	v.SetDefault("match.threshold", 90)

	// Extract defaults
	v.SetDefault("extract.head_lines", 30)
	v.SetDefault("extract.building_keywords", "objekt,weg,liegenschaft,baustelle,leistungsort,adresse")
	v.SetDefault("extract.building_lookahead", 2)

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                "IMMODOK_SERVER_PORT",
		"server.read_timeout":        "IMMODOK_SERVER_READ_TIMEOUT",
		"server.write_timeout":       "IMMODOK_SERVER_WRITE_TIMEOUT",
		"server.environment":         "IMMODOK_SERVER_ENVIRONMENT",
		"log.level":                  "IMMODOK_LOG_LEVEL",
		"log.format":                 "IMMODOK_LOG_FORMAT",
		"storage.provider":           "IMMODOK_STORAGE_PROVIDER",
		"storage.local_dir":          "IMMODOK_STORAGE_LOCAL_DIR",
		"storage.max_file_size_mb":   "IMMODOK_STORAGE_MAX_FILE_SIZE_MB",
		"s3.region":                  "IMMODOK_S3_REGION",
		"s3.bucket":                  "IMMODOK_S3_BUCKET",
		"s3.endpoint":                "IMMODOK_S3_ENDPOINT",
		"s3.access_key":              "IMMODOK_S3_ACCESS_KEY",
		"s3.secret_key":              "IMMODOK_S3_SECRET_KEY",
		"s3.key_prefix":              "IMMODOK_S3_KEY_PREFIX",
		"data.objects_file":          "IMMODOK_DATA_OBJECTS_FILE",
		"data.vendor_map_file":       "IMMODOK_DATA_VENDOR_MAP_FILE",
		"match.threshold":            "IMMODOK_MATCH_THRESHOLD",
		"extract.head_lines":         "IMMODOK_EXTRACT_HEAD_LINES",
		"extract.building_keywords":  "IMMODOK_EXTRACT_BUILDING_KEYWORDS",
		"extract.building_lookahead": "IMMODOK_EXTRACT_BUILDING_LOOKAHEAD",
		"cors.allowed_origins":       "IMMODOK_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if
	// IMMODOK_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("IMMODOK_SERVER_PORT") == "" {
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
	cfg.Storage = StorageConfig{
		Provider:      v.GetString("storage.provider"),
		LocalDir:      v.GetString("storage.local_dir"),
		MaxFileSizeMB: v.GetInt64("storage.max_file_size_mb"),
	}
	cfg.S3 = S3Config{
		Region:    v.GetString("s3.region"),
		Bucket:    v.GetString("s3.bucket"),
		Endpoint:  v.GetString("s3.endpoint"),
		AccessKey: v.GetString("s3.access_key"),
		SecretKey: v.GetString("s3.secret_key"),
		KeyPrefix: v.GetString("s3.key_prefix"),
	}
	cfg.Data = DataConfig{
		ObjectsFile:   v.GetString("data.objects_file"),
		VendorMapFile: v.GetString("data.vendor_map_file"),
	}
	cfg.Match = MatchConfig{
		Threshold: v.GetInt("match.threshold"),
	}
	cfg.Extract = ExtractConfig{
		HeadLines:         v.GetInt("extract.head_lines"),
		BuildingKeywords:  splitList(v.GetString("extract.building_keywords")),
		BuildingLookahead: v.GetInt("extract.building_lookahead"),
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: splitList(v.GetString("cors.allowed_origins")),
	}

	return cfg, nil
}

// splitList parses a comma-separated value, dropping empty entries.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
