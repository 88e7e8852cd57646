package statement

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/cleared-dev/stmt2csv/internal/model"
)

// Result is the outcome of scanning one text blob.
type Result struct {
	CSV          string // header plus one row per transaction, "\n" separated
	Transactions []model.Transaction
	Errors       []string // one per window that could not be transformed
}

// Scanner walks extracted statement text and collects transactions.
// It holds no per-scan state and may be shared.
type Scanner struct {
	layout   Layout
	location *time.Location
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithLocation sets the zone statement times are read in. Defaults to time.Local.
func WithLocation(loc *time.Location) Option {
	return func(s *Scanner) {
		if loc != nil {
			s.location = loc
		}
	}
}

// NewScanner creates a Scanner for layout.
func NewScanner(layout Layout, opts ...Option) *Scanner {
	s := &Scanner{layout: layout, location: time.Local}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Parse scans text with the default layout in the local zone.
func Parse(text string) Result {
	return NewScanner(DefaultLayout()).Scan(text)
}

// Layout returns the layout the scanner was built with.
func (s *Scanner) Layout() Layout {
	return s.layout
}

// Scan finds every date-anchored window after the start marker and
// transforms it. A missing start marker scans from the first line.
// Windows overlap; the date-anchor check and the banned-word filter keep
// them from producing duplicates.
func (s *Scanner) Scan(text string) Result {
	lines := strings.Split(text, "\n")
	delim := s.layout.delimiter()
	size := s.layout.windowSize()

	start := 0
	if marker := s.layout.StartMarker(); marker != "" {
		// indexOf semantics: not found gives -1, so scanning starts at 0.
		start = slices.Index(lines, marker) + 1
	}

	rows := []string{s.layout.Header()}
	var txns []model.Transaction
	var errs []string

	for i := start; i < len(lines); i++ {
		if !IsValidDate(lines[i]) {
			continue
		}
		window := lines[i:min(i+size, len(lines))]
		if s.isSummary(window) {
			continue
		}

		txn, err := TransformWindow(window, s.location)
		if err != nil {
			errs = append(errs, fmt.Sprintf("failed to parse data (%v): %s", err, strings.Join(window, " ")))
			continue
		}
		txns = append(txns, txn)
		rows = append(rows, strings.Join(txn.Fields(), delim))
	}

	return Result{
		CSV:          strings.Join(rows, "\n"),
		Transactions: txns,
		Errors:       errs,
	}
}

// isSummary reports whether window contains every banned word. A layout
// without banned words never matches.
func (s *Scanner) isSummary(window []string) bool {
	banned := s.layout.BannedWords()
	if len(banned) == 0 {
		return false
	}
	for _, w := range banned {
		if !slices.Contains(window, w) {
			return false
		}
	}
	return true
}
