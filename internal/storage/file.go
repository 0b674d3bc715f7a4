package storage

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// DefaultScoreFile is the score file used when no path is given.
const DefaultScoreFile = "high_scores.txt"

// FileStore keeps the high-score table in a plain-text file.
type FileStore struct {
	mu     sync.Mutex
	path   string
	logger *log.Logger
	closed bool
}

// NewFileStore returns a store backed by path. The file is created on first save.
func NewFileStore(path string, opts ...Option) *FileStore {
	if path == "" {
		path = DefaultScoreFile
	}
	o := buildOptions(opts)
	return &FileStore{
		path:   path,
		logger: o.logger,
	}
}

// Path returns the score file location.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the score file. A missing file is an empty table.
func (s *FileStore) Load() ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrClosed
	}
	return s.load()
}

// Save overwrites the score file with the top MaxRecords of records, sorted.
func (s *FileStore) Save(records []Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	return s.save(records)
}

// Update inserts rec into the table on disk under one lock.
func (s *FileStore) Update(rec Record) ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrClosed
	}

	records, err := s.load()
	if err != nil {
		return nil, err
	}
	records = Insert(records, rec)
	if err := s.save(records); err != nil {
		return nil, err
	}
	return records, nil
}

// Close marks the store closed.
func (s *FileStore) Close() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	return nil
}

func (s *FileStore) load() ([]Record, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot read %s: %w", s.path, err)
	}

	records := []Record{}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		rec, ok := parseLine(line)
		if !ok {
			s.logger.Debug("skipping malformed score line", "file", s.path, "line", lineNo)
			continue
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("storage: cannot scan %s: %w", s.path, err)
	}
	// Hand-edited files may be unsorted or overlong
	return Normalize(records), nil
}

// parseLine splits "<score> <name> <level>" on single spaces into at most three fields.
func parseLine(line string) (Record, bool) {
	parts := strings.SplitN(line, " ", 3)
	if len(parts) != 3 {
		return Record{}, false
	}
	score, err := strconv.Atoi(parts[0])
	if err != nil {
		return Record{}, false
	}
	level, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return Record{}, false
	}
	return Record{Score: score, Name: parts[1], Level: level}, true
}

func (s *FileStore) save(records []Record) error {
	var buf bytes.Buffer
	for _, r := range Normalize(append([]Record(nil), records...)) {
		fmt.Fprintf(&buf, "%d %s %d\n", r.Score, r.Name, r.Level)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Write a sibling temp file and rename it over the target.
	tmp, err := os.CreateTemp(dir, ".scores-*")
	if err != nil {
		return fmt.Errorf("storage: cannot create temp file: %w", err)
	}
	tmpName := tmp.Name()
	_ = tmp.Chmod(0o644)
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("storage: cannot write scores: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("storage: cannot write scores: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("storage: cannot replace %s: %w", s.path, err)
	}
	return nil
}

var _ Store = (*FileStore)(nil)
