package database

import (
	"fmt"
	"log"
	"os"
	"time"

	applogger "sales-assistant-bot/internal/pkg/logger"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type GormConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string

	// Log receives slow-query and error lines. Nil prints to stdout.
	Log applogger.ILogger
}

// DSN renders the libpq keyword/value connection string.
func (c GormConfig) DSN() string {
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.Host, c.User, c.Password, c.DBName, c.Port, sslMode)
}

// logWriter adapts ILogger to the Printf sink gorm's logger expects.
type logWriter struct {
	log applogger.ILogger
}

func (w logWriter) Printf(format string, args ...interface{}) {
	w.log.Warn("DATABASE", fmt.Sprintf(format, args...), nil)
}

func newGormLogger(l applogger.ILogger) logger.Interface {
	var writer logger.Writer = log.New(os.Stdout, "\r\n", log.LstdFlags)
	colorful := true
	if l != nil {
		writer = logWriter{log: l}
		colorful = false
	}
	return logger.New(writer, logger.Config{
		SlowThreshold:             500 * time.Millisecond,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
		ParameterizedQueries:      true,
		Colorful:                  colorful,
	})
}

// NewGormDB opens the catalog database with a small pool; the bot issues one
// query per search.
func NewGormDB(cfg GormConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: newGormLogger(cfg.Log),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}
