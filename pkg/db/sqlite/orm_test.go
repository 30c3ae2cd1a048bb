package sqlite

import (
	"path/filepath"
	"testing"
)

func TestNewGormConnection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := NewGormConnection(path)
	if err != nil {
		t.Fatalf("NewGormConnection returned error: %v", err)
	}

	var fk int
	if err := db.Raw("PRAGMA foreign_keys").Scan(&fk).Error; err != nil {
		t.Fatalf("pragma query failed: %v", err)
	}
	if fk != 1 {
		t.Errorf("foreign_keys = %d, want 1", fk)
	}
}
