package config

const (
	// DefaultDatabasePath is the default path for the persistent books database
	DefaultDatabasePath = "./books.db"

	// DefaultEnvFile is loaded into the environment before reading config
	DefaultEnvFile = ".env"
)
