package database

import (
	"log"
	"os"
	"time"

	"pricebook-be/internal/constant"
	"pricebook-be/internal/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

func getLogger() logger.Interface {
	return logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
			Colorful:                  true,
		},
	)
}

func NewSqliteDB(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: getLogger(),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// A single connection serializes writes, sqlite returns SQLITE_BUSY
	// under concurrent writers otherwise.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// Migrate creates the schema and seeds the default catalog source location.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Group{},
		&model.GroupItem{},
		&model.Setting{},
	); err != nil {
		return err
	}

	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&model.Setting{
		Key:   constant.SourcePathSettingKey,
		Value: constant.DefaultSourcePath,
	}).Error
}
