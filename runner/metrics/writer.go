// Package metrics records simulation results and writes them out as CSV.
package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// RoundRecord is one player's result for one round.
type RoundRecord struct {
	Round        int
	RequiredRoot int
	Player       string
	Score        int
}

// TotalRecord is one player's cumulative result for a whole run.
type TotalRecord struct {
	Player string
	Score  int
	Rounds int
}

// Writer stores result files under a timestamped subdirectory so repeated
// runs never clobber each other.
type Writer struct {
	baseDir string
}

func NewWriter(dir string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(dir, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	return &Writer{baseDir: baseDir}, nil
}

// Dir returns the directory this writer stores files in.
func (w *Writer) Dir() string {
	return w.baseDir
}

// WriteRoundRecords stores per-round scores in rounds.csv.
func (w *Writer) WriteRoundRecords(records []RoundRecord) error {
	path := filepath.Join(w.baseDir, "rounds.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create round records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"round", "required_root", "player", "score"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write round records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.Round),
			strconv.Itoa(record.RequiredRoot),
			record.Player,
			strconv.Itoa(record.Score),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write round record row: %w", err)
		}
	}

	return nil
}

// WriteTotals stores aggregate scores in totals.csv.
func (w *Writer) WriteTotals(totals []TotalRecord) error {
	path := filepath.Join(w.baseDir, "totals.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create totals file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"player", "score", "rounds"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write totals header: %w", err)
	}

	for _, total := range totals {
		row := []string{
			total.Player,
			strconv.Itoa(total.Score),
			strconv.Itoa(total.Rounds),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write totals row: %w", err)
		}
	}

	return nil
}
