package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"adaptive_tutor_backend/internal/config"
)

func TestContentArchiveDisabledByDefault(t *testing.T) {
	a := NewContentArchive(&config.Config{Storage: config.StorageConfig{Type: "none"}})
	if a.Enabled() {
		t.Fatal("archive enabled for storage type none")
	}
	if url, err := a.Save(context.Background(), "p", "u", map[string]int{"a": 1}); err != nil || url != "" {
		t.Errorf("Save on disabled archive = %q, %v", url, err)
	}
}

func TestContentArchiveLocal(t *testing.T) {
	dir := t.TempDir()
	a := NewContentArchive(&config.Config{Storage: config.StorageConfig{Type: "local", LocalPath: dir}})

	url, err := a.Save(context.Background(), "p-1", "unit-1", map[string]string{"title": "Phân số"})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if url != "/archive/generated/p-1/unit-1.json" {
		t.Errorf("url = %q", url)
	}
	if _, err := os.Stat(filepath.Join(dir, "generated", "p-1", "unit-1.json")); err != nil {
		t.Errorf("file missing: %v", err)
	}

	if err := a.Provider.Delete(context.Background(), ArchiveObjectName("p-1", "unit-1")); err != nil {
		t.Errorf("Delete: %v", err)
	}
}

func TestArchiveObjectName(t *testing.T) {
	if got := ArchiveObjectName("abc", "exam-1"); got != "generated/abc/exam-1.json" {
		t.Errorf("ArchiveObjectName = %q", got)
	}
}
