package test

import (
	"database/sql"
	"log"
	"os"
	"path/filepath"
	"runtime"

	"todoweb/internal/adapter/database/sqlite"
)

// FindProjectRoot walks up from this file until it sees go.mod, so tests
// can locate migrations and templates regardless of working directory.
func FindProjectRoot() string {
	_, filename, _, _ := runtime.Caller(0)
	dir := filepath.Dir(filename)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)

		if parent == dir {
			break
		}

		dir = parent
	}

	if wd, err := os.Getwd(); err == nil {
		return wd
	}

	log.Fatal("could not find project root directory")
	return ""
}

// InitTestDB opens a migrated in-memory sqlite database. The pool is
// pinned to one connection so every query sees the same memory store.
func InitTestDB() *sqlite.DB {
	db, err := sql.Open("sqlite3", ":memory:")

	if err != nil {
		log.Fatal(err)
	}

	db.SetMaxOpenConns(1)

	migrationsPath := filepath.Join(FindProjectRoot(), "db", "migrations", "sqlite")

	if err := sqlite.RunMigrations(db, migrationsPath); err != nil {
		log.Fatal(err)
	}

	return sqlite.Wrap(db)
}

// TemplatesGlob points gin's renderer at the real templates in tests.
func TemplatesGlob() string {
	return filepath.Join(FindProjectRoot(), "web", "templates", "*.html")
}
