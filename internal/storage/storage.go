package storage

import (
	"os"
	"sync"
	"time"

	"poststack-backend/internal/config"
	"poststack-backend/internal/util/logger"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

var log = logger.GetLogger()

var (
	db   *gorm.DB
	once sync.Once
)

// GetDb returns the shared database handle, connecting on first use.
func GetDb() *gorm.DB {
	once.Do(connect)
	return db
}

func connect() {
	gormConfig := &gorm.Config{
		Logger: gorm_logger.Default.LogMode(gorm_logger.Warn),
	}

	connection, err := gorm.Open(postgres.Open(config.GetEnv().DatabaseDsn), gormConfig)
	if err != nil {
		log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	sqlDb, err := connection.DB()
	if err != nil {
		log.Error("Failed to access underlying sql.DB", "error", err)
		os.Exit(1)
	}

	sqlDb.SetMaxOpenConns(25)
	sqlDb.SetMaxIdleConns(5)
	sqlDb.SetConnMaxLifetime(30 * time.Minute)

	db = connection
}
