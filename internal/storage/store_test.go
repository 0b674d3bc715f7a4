package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestQualifies(t *testing.T) {
	full := make([]Record, 0, MaxRecords)
	for i := 0; i < MaxRecords; i++ {
		full = append(full, Record{Score: 1000 - i*100, Name: "p", Level: 1})
	}
	// full ends at 100

	tests := []struct {
		name     string
		records  []Record
		score    int
		expected bool
	}{
		{"empty table", nil, 0, true},
		{"free slot", full[:9], 1, true},
		{"beats last", full, 101, true},
		{"ties last", full, 100, false},
		{"below last", full, 50, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Qualifies(tc.records, tc.score); got != tc.expected {
				t.Errorf("Qualifies(%d) = %v, expected %v", tc.score, got, tc.expected)
			}
		})
	}
}

func TestInsertSortsAndTrims(t *testing.T) {
	var records []Record
	for i := 1; i <= 12; i++ {
		records = Insert(records, Record{Score: i * 10, Name: fmt.Sprintf("p%d", i), Level: 1})
	}

	if len(records) != MaxRecords {
		t.Fatalf("len = %d, expected %d", len(records), MaxRecords)
	}
	for i := 1; i < len(records); i++ {
		if records[i-1].Score < records[i].Score {
			t.Fatalf("records not descending at %d: %v", i, records)
		}
	}
	if records[0].Score != 120 || records[len(records)-1].Score != 30 {
		t.Errorf("expected 120..30, got %d..%d", records[0].Score, records[len(records)-1].Score)
	}
}

func TestInsertTiesKeepInsertionOrder(t *testing.T) {
	records := []Record{{Score: 50, Name: "first", Level: 1}}
	records = Insert(records, Record{Score: 50, Name: "second", Level: 2})
	records = Insert(records, Record{Score: 70, Name: "top", Level: 3})

	names := []string{records[0].Name, records[1].Name, records[2].Name}
	expected := []string{"top", "first", "second"}
	for i := range expected {
		if names[i] != expected[i] {
			t.Errorf("order = %v, expected %v", names, expected)
			break
		}
	}
}

func TestInsertDoesNotAliasInput(t *testing.T) {
	records := make([]Record, 1, 4)
	records[0] = Record{Score: 10, Name: "a", Level: 1}
	_ = Insert(records, Record{Score: 20, Name: "b", Level: 1})
	if records[0].Name != "a" {
		t.Error("Insert should not reorder the caller's slice")
	}
}

func TestBest(t *testing.T) {
	if Best(nil) != 0 {
		t.Error("Best of empty table should be 0")
	}
	if got := Best([]Record{{Score: 5}, {Score: 42}, {Score: 7}}); got != 42 {
		t.Errorf("Best = %d, expected 42", got)
	}
}

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"bob", "bob"},
		{"  bob  ", "bob"},
		{"mary jane", "mary_jane"},
		{"a \t b", "a_b"},
		{"", AnonymousName},
		{"   ", AnonymousName},
		{"abcdefghijklmnopqrstuvwxyz", "abcdefghijklmnopqrs"},
		{"ёжикёжикёжикёжикёжик", "ёжикёжикёжикёжикёжи"},
	}
	for _, tc := range tests {
		if got := SanitizeName(tc.in); got != tc.expected {
			t.Errorf("SanitizeName(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}

// Both backends must obey the same table rules.
func TestBackendsShareTableRules(t *testing.T) {
	backends := map[string]func(t *testing.T) Store{
		"file": func(t *testing.T) Store {
			return NewFileStore(filepath.Join(t.TempDir(), "scores.txt"))
		},
		"sqlite": func(t *testing.T) Store {
			s, err := OpenSQLite(filepath.Join(t.TempDir(), "scores.db"))
			if err != nil {
				t.Fatalf("OpenSQLite() failed: %v", err)
			}
			return s
		},
	}

	for name, open := range backends {
		t.Run(name, func(t *testing.T) {
			store := open(t)
			defer store.Close()

			records, err := store.Load()
			if err != nil {
				t.Fatalf("Load() on fresh store failed: %v", err)
			}
			if len(records) != 0 {
				t.Fatalf("fresh store should be empty, got %v", records)
			}

			for i := 1; i <= 11; i++ {
				if _, err := store.Update(Record{Score: i * 100, Name: fmt.Sprintf("p%d", i), Level: i}); err != nil {
					t.Fatalf("Update() failed: %v", err)
				}
			}
			// A tie with the current top goes after it
			records, err = store.Update(Record{Score: 1100, Name: "late", Level: 11})
			if err != nil {
				t.Fatalf("Update() failed: %v", err)
			}

			if len(records) != MaxRecords {
				t.Fatalf("len = %d, expected %d", len(records), MaxRecords)
			}
			if records[0].Name != "p11" || records[1].Name != "late" {
				t.Errorf("tie order wrong: %q, %q", records[0].Name, records[1].Name)
			}
			if last := records[len(records)-1]; last.Score != 300 {
				t.Errorf("lowest kept score = %d, expected 300", last.Score)
			}

			loaded, err := store.Load()
			if err != nil {
				t.Fatalf("Load() failed: %v", err)
			}
			if len(loaded) != len(records) {
				t.Fatalf("Load() returned %d records, expected %d", len(loaded), len(records))
			}
			for i := range loaded {
				if loaded[i].Score != records[i].Score || loaded[i].Name != records[i].Name || loaded[i].Level != records[i].Level {
					t.Errorf("record %d = %+v, expected %+v", i, loaded[i], records[i])
				}
			}
		})
	}
}

func TestBackendsSaveSortsAndTrims(t *testing.T) {
	backends := map[string]func(t *testing.T) Store{
		"file": func(t *testing.T) Store {
			return NewFileStore(filepath.Join(t.TempDir(), "scores.txt"))
		},
		"sqlite": func(t *testing.T) Store {
			s, err := OpenSQLite(filepath.Join(t.TempDir(), "scores.db"))
			if err != nil {
				t.Fatalf("OpenSQLite() failed: %v", err)
			}
			return s
		},
	}

	// Ascending input, one more than the table holds
	input := make([]Record, MaxRecords+1)
	for i := range input {
		input[i] = Record{Score: (i + 1) * 10, Name: fmt.Sprintf("p%d", i+1), Level: 1}
	}

	for name, open := range backends {
		t.Run(name, func(t *testing.T) {
			store := open(t)
			defer store.Close()

			if err := store.Save(input); err != nil {
				t.Fatalf("Save() failed: %v", err)
			}
			if input[0].Score != 10 {
				t.Error("Save should not reorder the caller's slice")
			}

			records, err := store.Load()
			if err != nil {
				t.Fatalf("Load() failed: %v", err)
			}
			if len(records) != MaxRecords {
				t.Fatalf("len = %d, expected %d", len(records), MaxRecords)
			}
			if records[0].Score != 110 || records[len(records)-1].Score != 20 {
				t.Errorf("table = %+v, expected 110 down to 20", records)
			}
		})
	}
}

func TestFileStoreLoadNormalizesHandEditedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.txt")
	var b strings.Builder
	// 12 lines, lowest first
	for i := 1; i <= 12; i++ {
		fmt.Fprintf(&b, "%d p%d 1\n", i*10, i)
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatal(err)
	}

	records, err := NewFileStore(path).Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(records) != MaxRecords {
		t.Fatalf("len = %d, expected %d", len(records), MaxRecords)
	}
	if records[0].Score != 120 || records[len(records)-1].Score != 30 {
		t.Errorf("table = %+v, expected 120 down to 30", records)
	}
	if Qualifies(records, 25) {
		t.Error("25 should not beat a full table whose lowest entry is 30")
	}
	if !Qualifies(records, 35) {
		t.Error("35 should beat the lowest entry of 30")
	}
}
