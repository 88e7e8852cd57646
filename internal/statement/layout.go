// Package statement turns text extracted from a bank statement PDF into
// transaction rows.
package statement

import "fmt"

// MarkerKind names a class of literal lines a layout recognizes.
type MarkerKind string

const (
	// MarkerStart lines open the transaction table. Only the first is used.
	MarkerStart MarkerKind = "start"
	// MarkerBanned lines identify summary sections. A window holding all
	// of them is not a transaction.
	MarkerBanned MarkerKind = "banned"
)

const (
	DefaultDelimiter  = "~"
	DefaultWindowSize = 15
)

// Layout describes where transactions sit in one vendor's statement text.
type Layout struct {
	Name       string                  `yaml:"name"`
	Markers    map[MarkerKind][]string `yaml:"markers"`
	Delimiter  string                  `yaml:"delimiter,omitempty"`
	WindowSize int                     `yaml:"window_size,omitempty"`
}

// DefaultLayout matches statements whose transaction table is headed by a
// "Source/Destination" column.
func DefaultLayout() Layout {
	return Layout{
		Name: "default",
		Markers: map[MarkerKind][]string{
			MarkerStart: {"Source/Destination"},
			MarkerBanned: {
				"Previous Balance",
				"Total Incoming",
				"Total Outgoing",
				"Closing Balance",
				"Source/Destination",
				"Transaction Details",
			},
		},
		Delimiter:  DefaultDelimiter,
		WindowSize: DefaultWindowSize,
	}
}

// StartMarker returns the start marker, or "" when the layout has none.
func (l Layout) StartMarker() string {
	if m := l.Markers[MarkerStart]; len(m) > 0 {
		return m[0]
	}
	return ""
}

// BannedWords returns the summary-section markers.
func (l Layout) BannedWords() []string {
	return l.Markers[MarkerBanned]
}

// Header returns the CSV header row joined with the layout delimiter.
func (l Layout) Header() string {
	d := l.delimiter()
	return "date" + d + "title" + d + "amount" + d + "comment"
}

// Validate reports the first problem that would make the layout unusable.
func (l Layout) Validate() error {
	if l.Name == "" {
		return fmt.Errorf("layout has no name")
	}
	if l.WindowSize < 0 {
		return fmt.Errorf("layout %s: window_size %d is negative", l.Name, l.WindowSize)
	}
	for kind := range l.Markers {
		if kind != MarkerStart && kind != MarkerBanned {
			return fmt.Errorf("layout %s: unknown marker kind %q", l.Name, kind)
		}
	}
	return nil
}

// WithDefaults fills an unset delimiter and window size.
func (l Layout) WithDefaults() Layout {
	l.Delimiter = l.delimiter()
	l.WindowSize = l.windowSize()
	return l
}

func (l Layout) delimiter() string {
	if l.Delimiter == "" {
		return DefaultDelimiter
	}
	return l.Delimiter
}

func (l Layout) windowSize() int {
	if l.WindowSize <= 0 {
		return DefaultWindowSize
	}
	return l.WindowSize
}
