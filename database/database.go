package database

import (
	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Gideon1107/cafe-and-wifi-api/config"
	"github.com/Gideon1107/cafe-and-wifi-api/model"
)

// Open connects to the configured database and migrates the cafes table.
// Postgres is used when a DSN is set; otherwise the local sqlite file keeps
// startup zero-config. Error translation is enabled so unique-index
// violations surface as gorm.ErrDuplicatedKey on both drivers.
func Open(cfg config.Config) (*gorm.DB, error) {
	dialector := sqlite.Open(cfg.SQLitePath)
	if cfg.DatabaseDSN != "" {
		dialector = postgres.Open(cfg.DatabaseDSN)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&model.Cafe{}); err != nil {
		return nil, err
	}

	return db, nil
}
