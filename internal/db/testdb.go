package db

import (
	"database/sql"
	"testing"

	"go.uber.org/zap"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewTest opens an isolated in-memory SQLite database with the full schema
// for use in tests. The connection is closed automatically when the test
// ends. AutoMigrate is used instead of the SQL migrations so the schema
// always matches the models under test.
func NewTest(tb testing.TB) *gorm.DB {
	tb.Helper()

	sqlDB, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		tb.Fatalf("open sqlite: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	database, err := gorm.Open(gormsqlite.Dialector{Conn: sqlDB}, &gorm.Config{
		Logger: newZapGORMLogger(zap.NewNop(), gormlogger.Silent),
	})
	if err != nil {
		tb.Fatalf("open gorm: %v", err)
	}

	if err := database.AutoMigrate(
		&Org{},
		&User{},
		&APIKey{},
		&Agent{},
		&Job{},
		&JobLog{},
		&Activity{},
		&ActivityReadStatus{},
		&QueuePause{},
		&ScheduleBinding{},
	); err != nil {
		tb.Fatalf("auto migrate: %v", err)
	}

	tb.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return database
}
