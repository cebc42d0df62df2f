package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type FinGoalContext string

const (
	DBContextURL FinGoalContext = "fingoal-backend-url"
)

// Connect opens the SQLite database at dsn, migrates the schema and
// registers the error translating callbacks.
func Connect(dsn string) (*gorm.DB, error) {
	config := &gorm.Config{
		Logger: &logger{
			Logger: log.Logger,
		},
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
	}

	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// This is done to prevent SQLITE_BUSY errors.
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	// Query callbacks
	err = db.Callback().Query().After("*").Register("fingoal:after_query", queryCallback)
	if err != nil {
		return nil, err
	}

	err = db.Callback().Query().After("*").Register("fingoal:after_query_general", generalCallback)
	if err != nil {
		return nil, err
	}

	// Create callbacks
	err = db.Callback().Create().After("*").Register("fingoal:after_create_general", generalCallback)
	if err != nil {
		return nil, err
	}

	// Delete callbacks
	err = db.Callback().Delete().After("*").Register("fingoal:after_delete_general", generalCallback)
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(Entry{})
	if err != nil {
		return nil, fmt.Errorf("error during DB migration: %w", err)
	}

	return db, nil
}

// queryCallback replaces the generic "no record" error with a more user
// friendly one
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		// Use the table name as information about the type of resource
		// and remove the plural "s"
		name := strings.ReplaceAll(db.Statement.Table, "_", " ")
		name = strings.TrimSuffix(name, "s")

		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, name)
	}
}

// generalCallback handles unspecified errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and we return a general message to users.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	// "sql: database is closed" is hard-coded in the sql module
	if db.Error.Error() == "sql: database is closed" || reflect.TypeOf(db.Error) == reflect.TypeOf(&go_sqlite.Error{}) {
		// We log the error and provide a general error message so that server admins can debug
		log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = ErrGeneral

		return
	}
}
