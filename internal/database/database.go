package database

import (
	"fmt"
	"log"
	"strings"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/bookcatalog/internal/config"
	"github.com/mrlokans/bookcatalog/internal/entities"
)

// memoryDSN names a shared-cache in-memory database so every pooled
// connection sees the same tables.
const memoryDSN = "file:books?mode=memory&cache=shared"

type Database struct {
	DB   *gorm.DB
	Mode config.StoreMode
}

// NewDatabase opens the books store selected by cfg.Mode and creates the
// books table when it does not exist yet.
func NewDatabase(cfg config.Database) (*Database, error) {
	dsn, err := dataSourceName(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(parseLogLevel(cfg.LogLevel)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql handle: %w", err)
	}
	if cfg.Mode == config.StoreModeMemory {
		// The in-memory database lives only while a connection holds it open,
		// so keep exactly one connection for the lifetime of the process.
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxLifetime(0)
		sqlDB.SetConnMaxIdleTime(0)
	}

	if err := db.AutoMigrate(&entities.Book{}); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	libVersion, _, _ := sqlite3.Version()
	if cfg.Mode == config.StoreModeMemory {
		log.Printf("Database initialized in memory with sqlite %s (contents are discarded on shutdown)", libVersion)
	} else {
		log.Printf("Database initialized successfully at %s with sqlite %s", cfg.Path, libVersion)
	}

	return &Database{DB: db, Mode: cfg.Mode}, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func dataSourceName(cfg config.Database) (string, error) {
	switch cfg.Mode {
	case config.StoreModeMemory:
		return memoryDSN, nil
	case config.StoreModeFile:
		if cfg.Path == "" {
			return "", fmt.Errorf("database path is required in %s mode", cfg.Mode)
		}
		return cfg.Path, nil
	default:
		return "", fmt.Errorf("unsupported store mode %q", cfg.Mode)
	}
}

func parseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
