package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// StoreMode selects the backing sqlite database.
type StoreMode string

const (
	StoreModeFile   StoreMode = "file"   // Persistent database file (default)
	StoreModeMemory StoreMode = "memory" // Process-wide in-memory database, gone on exit
)

// ParseStoreMode validates a raw STORE_MODE value.
func ParseStoreMode(raw string) (StoreMode, error) {
	switch mode := StoreMode(strings.ToLower(strings.TrimSpace(raw))); mode {
	case StoreModeFile, StoreModeMemory:
		return mode, nil
	case "":
		return StoreModeFile, nil
	default:
		return "", fmt.Errorf("unknown store mode %q (expected %q or %q)", raw, StoreModeFile, StoreModeMemory)
	}
}

type (
	Config struct {
		HTTP
		Global
		Database
		API
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Mode     StoreMode
		Path     string // Only used in file mode
		LogLevel string // silent, error, warn, info
	}
	API struct {
		ReadOnly bool // Reject write methods on the books API
	}
)

// NewConfig reads configuration from the environment, after loading the
// optional dotenv file named by ENV_FILE (".env" when unset).
func NewConfig() (*Config, error) {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = DefaultEnvFile
	}
	if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
		log.Printf("WARNING: could not load %s: %v", envFile, err)
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8000)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("store_mode", string(StoreModeFile))
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("database_log_level", "warn")
	v.SetDefault("read_only", false)

	mode, err := ParseStoreMode(v.GetString("STORE_MODE"))
	if err != nil {
		return nil, err
	}

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Mode:     mode,
			Path:     v.GetString("DATABASE_PATH"),
			LogLevel: v.GetString("DATABASE_LOG_LEVEL"),
		},
		API: API{
			ReadOnly: v.GetBool("READ_ONLY"),
		},
	}, nil
}
