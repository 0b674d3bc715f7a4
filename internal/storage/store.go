// Package storage persists the scroller's top-10 high-score table.
//
// Two backends share the Store interface: FileStore keeps the plain-text
// score file ("<score> <name> <level>" per line) and SQLiteStore keeps the
// table in SQLite along with a history of finished runs.
package storage

import (
	"errors"
	"io"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/charmbracelet/log"
)

// MaxRecords is the size of the high-score table.
const MaxRecords = 10

// MaxNameLength is the longest name accepted into the table, in runes.
const MaxNameLength = 19

// AnonymousName replaces names that sanitize to nothing.
const AnonymousName = "anonymous"

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("storage: store is closed")

// Record is one high-score table entry.
type Record struct {
	Score int
	Name  string
	Level int
	RunID string // Not persisted by the file backend
}

// Store is a bounded, descending high-score table.
// Implementations are safe for concurrent use.
type Store interface {
	// Load returns the table sorted by descending score.
	// A store that was never written yields an empty table.
	Load() ([]Record, error)
	// Save replaces the whole table.
	Save(records []Record) error
	// Update inserts rec, trims the table and persists it.
	// It returns the resulting table.
	Update(rec Record) ([]Record, error)
	Close() error
}

// Run summarizes one finished game, qualifying or not.
type Run struct {
	ID       string
	Name     string
	Score    int
	Level    int
	Duration time.Duration
}

// Stats aggregates finished runs.
type Stats struct {
	Runs       int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	MaxLevel   int
	LastPlayed time.Time
}

// RunRecorder is implemented by stores that keep a run history.
type RunRecorder interface {
	RecordRun(run Run) error
	Stats() (Stats, error)
}

// Qualifies reports whether score earns a place in records.
// A table with free slots accepts any score; a full one requires beating its last entry.
func Qualifies(records []Record, score int) bool {
	if len(records) < MaxRecords {
		return true
	}
	return score > records[len(records)-1].Score
}

// Insert returns a new table with rec added, sorted by descending score
// and trimmed to MaxRecords. Equal scores keep insertion order.
func Insert(records []Record, rec Record) []Record {
	out := make([]Record, 0, len(records)+1)
	out = append(out, records...)
	out = append(out, rec)
	return Normalize(out)
}

// Normalize stable-sorts records by descending score and trims to MaxRecords.
func Normalize(records []Record) []Record {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Score > records[j].Score
	})
	if len(records) > MaxRecords {
		records = records[:MaxRecords]
	}
	return records
}

// Best returns the highest score in records, or 0 for an empty table.
func Best(records []Record) int {
	best := 0
	for _, r := range records {
		if r.Score > best {
			best = r.Score
		}
	}
	return best
}

// SanitizeName makes a player-typed name safe for the score file.
// Surrounding whitespace is trimmed, inner whitespace runs become "_",
// the result is cut to MaxNameLength runes and an empty name becomes AnonymousName.
func SanitizeName(name string) string {
	fields := strings.FieldsFunc(name, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsControl(r)
	})
	clean := strings.Join(fields, "_")
	if runes := []rune(clean); len(runes) > MaxNameLength {
		clean = string(runes[:MaxNameLength])
	}
	if clean == "" {
		return AnonymousName
	}
	return clean
}

// Option configures a store.
type Option func(*options)

type options struct {
	logger *log.Logger
}

// WithLogger sets the logger used for recoverable problems such as malformed lines.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
