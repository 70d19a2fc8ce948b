package document

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"actionapi/internal/pkg/errs"
)

func TestSave_RoundTrip(t *testing.T) {
	store := NewStore(t.TempDir())

	content := []byte{0x00, 0xff, 'a', 'b', 'c', '\n'}
	result, customErr := store.Save("doc.bin", content)
	if customErr != nil {
		t.Fatalf("unexpected error: %v", customErr)
	}

	if result.Filename != "doc.bin" {
		t.Fatalf("expected filename %q, got %q", "doc.bin", result.Filename)
	}
	if result.Status != StatusUploaded {
		t.Fatalf("expected status %q, got %q", StatusUploaded, result.Status)
	}

	got, err := os.ReadFile(filepath.Join(store.Root(), "doc.bin"))
	if err != nil {
		t.Fatalf("failed to read saved file: %v", err)
	}
	if string(got) != string(content) {
		t.Fatalf("saved content %q does not match input %q", got, content)
	}
}

func TestSave_CreatesRootLazily(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", "uploads")
	store := NewStore(root)

	if _, err := os.Stat(root); !os.IsNotExist(err) {
		t.Fatalf("root should not exist before the first save")
	}

	if _, customErr := store.Save("a.txt", []byte("x")); customErr != nil {
		t.Fatalf("unexpected error: %v", customErr)
	}

	if _, err := os.Stat(root); err != nil {
		t.Fatalf("root should exist after save: %v", err)
	}
}

func TestSave_OverwritesExistingFile(t *testing.T) {
	store := NewStore(t.TempDir())

	if _, customErr := store.Save("doc.txt", []byte("first")); customErr != nil {
		t.Fatalf("unexpected error: %v", customErr)
	}
	if _, customErr := store.Save("doc.txt", []byte("second")); customErr != nil {
		t.Fatalf("unexpected error: %v", customErr)
	}

	got, err := os.ReadFile(filepath.Join(store.Root(), "doc.txt"))
	if err != nil {
		t.Fatalf("failed to read saved file: %v", err)
	}
	if string(got) != "second" {
		t.Fatalf("expected last write to win, got %q", got)
	}
}

func TestSave_RejectsUnsafeFilenames(t *testing.T) {
	store := NewStore(t.TempDir())

	for _, name := range []string{
		"",
		"   ",
		".",
		"..",
		"../escape.txt",
		"a/b.txt",
		`a\b.txt`,
		"/etc/passwd",
		"../../etc/passwd",
	} {
		result, customErr := store.Save(name, []byte("x"))
		if customErr == nil {
			t.Fatalf("expected error for filename %q, got %+v", name, result)
		}
		if customErr.Code != errs.ErrInvalidFilename {
			t.Fatalf("expected code %d for filename %q, got %d", errs.ErrInvalidFilename, name, customErr.Code)
		}
	}

	entries, err := os.ReadDir(store.Root())
	if err == nil && len(entries) != 0 {
		t.Fatalf("no files should have been written, found %d entries", len(entries))
	}
}

func TestSave_LeavesNoTempFiles(t *testing.T) {
	store := NewStore(t.TempDir())

	if _, customErr := store.Save("doc.txt", []byte("payload")); customErr != nil {
		t.Fatalf("unexpected error: %v", customErr)
	}

	entries, err := os.ReadDir(store.Root())
	if err != nil {
		t.Fatalf("failed to read upload dir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "doc.txt" {
		t.Fatalf("expected only doc.txt in upload dir, got %v", entries)
	}
}

func TestSaveBase64_RoundTrip(t *testing.T) {
	store := NewStore(t.TempDir())

	encoded := base64.StdEncoding.EncodeToString([]byte("abc"))
	result, customErr := store.SaveBase64("t.txt", encoded)
	if customErr != nil {
		t.Fatalf("unexpected error: %v", customErr)
	}

	if result.Filename != "t.txt" || result.Status != StatusUploaded {
		t.Fatalf("unexpected result: %+v", result)
	}

	got, err := os.ReadFile(filepath.Join(store.Root(), "t.txt"))
	if err != nil {
		t.Fatalf("failed to read saved file: %v", err)
	}
	if string(got) != "abc" {
		t.Fatalf("expected exactly the bytes %q, got %q", "abc", got)
	}
}

func TestSaveBase64_MalformedPayloadFails(t *testing.T) {
	store := NewStore(t.TempDir())

	result, customErr := store.SaveBase64("t.txt", "not!!valid@@base64")
	if customErr == nil {
		t.Fatalf("expected error, got %+v", result)
	}

	if customErr.Code != errs.ErrFileDecodeFailed {
		t.Fatalf("expected code %d, got %d", errs.ErrFileDecodeFailed, customErr.Code)
	}

	if _, err := os.Stat(filepath.Join(store.Root(), "t.txt")); !os.IsNotExist(err) {
		t.Fatalf("no file should be written on decode failure")
	}
}
