package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// ///////////////////////////////////////////////
// Change Notification
// ///////////////////////////////////////////////

func TestWatcherFiresOnConfigWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, DefaultTOML, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	w, err := Watch(dir)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("[log]\nlevel = \"debug\"\n"), 0o644); err != nil {
		t.Fatalf("rewrite config: %v", err)
	}

	select {
	case <-w.Events():
	case <-time.After(5 * time.Second):
		t.Fatal("no event after config write")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := Watch(dir)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write unrelated file: %v", err)
	}

	select {
	case <-w.Events():
		t.Fatal("got event for unrelated file")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherCloseIdempotent(t *testing.T) {
	w, err := Watch(t.TempDir())
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	w.Close()
	w.Close() // must not panic
}
