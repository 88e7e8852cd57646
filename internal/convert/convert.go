// Package convert runs one statement file through extraction, scanning and
// CSV output, reporting the outcome as data.
package convert

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/cleared-dev/stmt2csv/internal/extract"
	"github.com/cleared-dev/stmt2csv/internal/model"
	"github.com/cleared-dev/stmt2csv/internal/statement"
)

// ErrCancelled is returned by a Destination that declines to pick a path.
var ErrCancelled = errors.New("save operation cancelled")

// Response is the outcome of converting one file. Errors holds the
// per-window parse failures and is nil when extraction itself failed.
type Response struct {
	Input    string
	Success  bool
	SavePath string
	Error    string
	Errors   []string
	Summary  model.Summary
}

// Destination picks where the CSV is written, given a suggested path.
type Destination interface {
	Choose(suggested string) (string, error)
}

// FileDestination writes to Path, or to the suggestion when Path is empty.
// An existing file is only replaced when Force is set.
type FileDestination struct {
	Path  string
	Force bool
}

// Choose implements Destination.
func (d FileDestination) Choose(suggested string) (string, error) {
	path := d.Path
	if path == "" {
		path = suggested
	}
	if !d.Force {
		if _, err := os.Stat(path); err == nil {
			return "", fmt.Errorf("%s already exists: %w", path, ErrCancelled)
		}
	}
	return path, nil
}

// Service converts statement files with one scanner.
type Service struct {
	scanner   *statement.Scanner
	outputDir string
	log       *logrus.Logger
}

// NewService creates a Service. CSV paths are suggested inside outputDir.
func NewService(scanner *statement.Scanner, outputDir string, logger *logrus.Logger) *Service {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Service{scanner: scanner, outputDir: outputDir, log: logger}
}

// SetLogger replaces the service logger.
func (s *Service) SetLogger(logger *logrus.Logger) {
	s.log = logger
}

// SuggestPath returns outputDir/<input base name>.csv.
func SuggestPath(outputDir, input string) string {
	base := filepath.Base(input)
	return filepath.Join(outputDir, strings.TrimSuffix(base, filepath.Ext(base))+".csv")
}

// Convert extracts input, scans it and writes the CSV where dest says.
// Failures are reported in the Response, never returned.
func (s *Service) Convert(input string, dest Destination) Response {
	entry := s.log.WithField("input", input)

	ex, err := extract.ForPath(input)
	if err != nil {
		entry.WithError(err).Error("Unsupported input")
		return Response{Input: input, Error: err.Error()}
	}

	text, err := ex.Extract(input)
	if err != nil {
		entry.WithError(err).Error("Failed to extract text")
		return Response{Input: input, Error: err.Error()}
	}

	res := s.scanner.Scan(text)
	entry.WithFields(logrus.Fields{
		"layout":       s.scanner.Layout().Name,
		"transactions": len(res.Transactions),
		"errors":       len(res.Errors),
	}).Debug("Scanned statement")
	for _, msg := range res.Errors {
		entry.Debug(msg)
	}

	path, err := dest.Choose(SuggestPath(s.outputDir, input))
	if errors.Is(err, ErrCancelled) {
		entry.WithError(err).Warn("Save cancelled")
		return Response{Input: input, Error: ErrCancelled.Error(), Errors: res.Errors}
	}
	if err != nil {
		entry.WithError(err).Error("Failed to choose destination")
		return Response{Input: input, Error: err.Error()}
	}

	if err := writeCSV(path, res.CSV); err != nil {
		entry.WithError(err).Error("Failed to write CSV")
		return Response{Input: input, Error: err.Error()}
	}
	entry.WithField("output", path).Info("Wrote CSV")

	return Response{
		Input:    input,
		Success:  true,
		SavePath: path,
		Errors:   res.Errors,
		Summary:  model.Summarize(res.Transactions),
	}
}

func writeCSV(path, csv string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(csv), 0o644); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	return nil
}
