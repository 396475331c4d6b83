package ui

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/ryo246912/bb-qa-reviews/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShouldWrite(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "existing.csv")
	require.NoError(t, os.WriteFile(existing, []byte("old"), 0o600))
	absent := filepath.Join(dir, "absent.csv")

	tests := []struct {
		name         string
		path         string
		force        bool
		interactive  bool
		confirmed    bool
		promptErr    error
		expected     bool
		expectPrompt bool
		expectError  bool
	}{
		{name: "force skips prompt", path: existing, force: true, interactive: true, expected: true},
		{name: "non-interactive overwrites", path: existing, interactive: false, expected: true},
		{name: "absent file", path: absent, interactive: true, expected: true},
		{name: "confirmed", path: existing, interactive: true, confirmed: true, expected: true, expectPrompt: true},
		{name: "declined", path: existing, interactive: true, confirmed: false, expected: false, expectPrompt: true},
		{name: "prompt error", path: existing, interactive: true, promptErr: errors.New("interrupt"), expectPrompt: true, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompter := &MockPrompter{Confirmed: tt.confirmed, ConfirmationError: tt.promptErr}

			ok, err := ShouldWrite(tt.path, tt.force, tt.interactive, prompter)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, ok)
			}
			assert.Equal(t, tt.expectPrompt, prompter.ConfirmOverwriteCalled)
			if tt.expectPrompt {
				assert.Equal(t, tt.path, prompter.LastPath)
			}
		})
	}
}

func TestPrintSummary(t *testing.T) {
	color.NoColor = true

	t.Run("no records", func(t *testing.T) {
		var buf bytes.Buffer
		PrintSummary(&buf, nil, "report.csv")
		assert.Equal(t, "\nNo QA reviews found.\n", buf.String())
	})

	t.Run("records", func(t *testing.T) {
		var buf bytes.Buffer
		PrintSummary(&buf, []models.ReviewRecord{{Repository: "api", PRID: 1, Title: "t", QADate: "2024-03-05"}}, "report.csv")
		assert.Contains(t, buf.String(), "api         #1")
		assert.Contains(t, buf.String(), "Success! Report generated: report.csv (1 records)")
	})
}

func TestPrintMatch(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	PrintMatch(&buf, 42, "ABC-1 Add login")
	assert.Equal(t, "[MATCH] PR #42: ABC-1 Add login\n", buf.String())
}
