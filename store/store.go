// Package store is the app's on-device state: the auth session, the
// latest feed snapshot for offline rendering, and the avatar
// thumbnail cache index. One sqlite file holds all of it.
package store

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open opens (creating if needed) the state database at path and
// migrates the schema.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(&sqlite.Dialector{DSN: path}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	return db, db.AutoMigrate(AllTables()...)
}

// AllTables returns a slice of all tables in the state database.
func AllTables() []interface{} {
	return []interface{}{
		&Session{},
		&FeedSnapshot{},
		&Avatar{},
	}
}
