package sql

import (
	"fmt"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	_queryTimeout = 5 * time.Second
	maxRetries    = 10
)

func NewPosgreORM(dsn string) (*DB, error) {
	pass, ok := os.LookupEnv("STATUS_REPORT_SERVER_POSTGRES_PASSWORD")
	if ok {
		dsn = fmt.Sprintf("%s password=%s", dsn, pass)
	}

	var (
		gormDB *gorm.DB
		err    error
	)
	for range maxRetries {
		gormDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		time.Sleep(5 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("imposible to connect to database after %d retries: %w", maxRetries, err)
	}

	return &DB{
		DB:                   gormDB,
		autoMigrationEnabled: true,
		timeout:              _queryTimeout,
		system:               "postgresql",
	}, nil
}
