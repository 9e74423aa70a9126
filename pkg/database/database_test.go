package database

import (
	"testing"

	"adaptive_tutor_backend/internal/config"
)

func TestInitDBSQLiteMemory(t *testing.T) {
	db, err := InitDB(&config.DatabaseConfig{Driver: "sqlite", SQLitePath: ":memory:"}, false)
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	if !db.Migrator().HasTable("student_profiles") {
		t.Error("student_profiles table not migrated")
	}
}

func TestInitDBUnknownDriver(t *testing.T) {
	if _, err := InitDB(&config.DatabaseConfig{Driver: "oracle"}, false); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}
