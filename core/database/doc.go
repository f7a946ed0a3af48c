// Package database provides the MySQL connection and schema management for
// the catalog entity store.
//
// Connect opens a pooled GORM connection with strict connection and I/O
// timeouts and verifies it with a ping. Error translation is enabled so
// uniqueness violations surface as gorm.ErrDuplicatedKey, which the import
// pipeline's upsert engine depends on.
//
// Migrate applies the entity schema (authors, books, editions, subjects,
// media assets) via GORM AutoMigrate at startup.
package database
