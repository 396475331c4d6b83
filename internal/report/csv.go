package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/ryo246912/bb-qa-reviews/internal/models"
)

// Header is the fixed column header of the report
var Header = []string{"Repository", "PR ID", "Issue Key", "Issue Type", "Title", "URL", "QA Date"}

// NormalizeDate reduces an ISO-8601 timestamp to its calendar date; unparsable input is returned as is
func NormalizeDate(timestamp string) string {
	t, err := time.Parse(time.RFC3339Nano, timestamp)
	if err != nil {
		return timestamp
	}
	return t.Format(time.DateOnly)
}

// WriteCSV writes the header and one row per record
func WriteCSV(w io.Writer, records []models.ReviewRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.Repository,
			strconv.Itoa(r.PRID),
			r.IssueKey,
			r.IssueType,
			r.Title,
			r.URL,
			r.QADate,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row for PR #%d: %w", r.PRID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes records to path. With no records the file is left untouched.
func WriteFile(path string, records []models.ReviewRecord) error {
	if len(records) == 0 {
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	if err := WriteCSV(f, records); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close report: %w", err)
	}
	return nil
}
