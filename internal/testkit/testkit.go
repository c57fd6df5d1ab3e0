// Package testkit holds shared fixtures for package tests.
package testkit

import (
	"context"
	"path/filepath"
	"testing"

	"holocron/internal/database"
	"holocron/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewSQLiteDB opens a migrated in-memory SQLite database with foreign keys
// enforced. The single connection keeps every query on the same memory store.
func NewSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open(sqlite.Open(database.WithForeignKeys(":memory:")))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sqlite handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := database.Migrate(context.Background(), db); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}
	return db
}

// NewSQLiteFileDB opens a migrated, file-backed SQLite database in a temp
// directory with up to conns open connections. WAL and a busy timeout let the
// connections run side by side; write transactions begin IMMEDIATE so they
// wait for the lock instead of failing on a stale snapshot.
func NewSQLiteFileDB(t *testing.T, conns int) *gorm.DB {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "holocron.db") +
		"?_journal_mode=WAL&_busy_timeout=5000&_txlock=immediate"
	db, err := database.Open(sqlite.Open(database.WithForeignKeys(dsn)))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sqlite handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(conns)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := database.Migrate(context.Background(), db); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}
	return db
}

// SeedUser inserts a user with a placeholder hash.
func SeedUser(t *testing.T, db *gorm.DB, username, email string) *models.User {
	t.Helper()
	u := &models.User{Username: username, Email: email, Password: "$2a$10$placeholder"}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

// SeedPlanet inserts a planet.
func SeedPlanet(t *testing.T, db *gorm.DB, name string) *models.Planet {
	t.Helper()
	p := &models.Planet{Name: name, Climate: "arid", Terrain: "desert", Population: "200000"}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("seed planet: %v", err)
	}
	return p
}

// SeedCharacter inserts a character.
func SeedCharacter(t *testing.T, db *gorm.DB, name string) *models.Character {
	t.Helper()
	c := &models.Character{Name: name, Gender: "male", Height: "172", Mass: "77"}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("seed character: %v", err)
	}
	return c
}
