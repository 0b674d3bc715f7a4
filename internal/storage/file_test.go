package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreMissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "nope.txt"))
	records, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("missing file should load as empty, got %v", records)
	}
}

func TestFileStoreSkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.txt")
	content := "900 alice 3\n" +
		"garbage\n" +
		"\n" +
		"abc bob 2\n" +
		"800 carol x\n" +
		"700 dave\n" +
		"600 erin 2\r\n" +
		"500 frank 1 extra\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	records, err := NewFileStore(path).Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 valid records, got %d: %v", len(records), records)
	}
	if records[0] != (Record{Score: 900, Name: "alice", Level: 3}) {
		t.Errorf("first record = %+v", records[0])
	}
	if records[1] != (Record{Score: 600, Name: "erin", Level: 2}) {
		t.Errorf("second record = %+v", records[1])
	}
}

func TestFileStoreSaveFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.txt")
	store := NewFileStore(path)

	records := []Record{
		{Score: 1200, Name: "zed", Level: 3},
		{Score: 40, Name: "amy", Level: 1},
	}
	if err := store.Save(records); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	expected := "1200 zed 3\n40 amy 1\n"
	if string(data) != expected {
		t.Errorf("file content = %q, expected %q", data, expected)
	}

	// Save overwrites
	if err := store.Save(records[:1]); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	data, _ = os.ReadFile(path)
	if string(data) != "1200 zed 3\n" {
		t.Errorf("Save should overwrite, got %q", data)
	}
}

func TestFileStoreCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "scores.txt")
	store := NewFileStore(path)
	if _, err := store.Update(Record{Score: 1, Name: "a", Level: 1}); err != nil {
		t.Fatalf("Update() failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("score file not created: %v", err)
	}
}

func TestFileStoreClosed(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "scores.txt"))
	store.Close()

	if _, err := store.Load(); !errors.Is(err, ErrClosed) {
		t.Errorf("Load() after Close = %v, expected ErrClosed", err)
	}
	if err := store.Save(nil); !errors.Is(err, ErrClosed) {
		t.Errorf("Save() after Close = %v, expected ErrClosed", err)
	}
}

func TestFileStoreDefaultPath(t *testing.T) {
	if got := NewFileStore("").Path(); got != DefaultScoreFile {
		t.Errorf("default path = %q, expected %q", got, DefaultScoreFile)
	}
}
