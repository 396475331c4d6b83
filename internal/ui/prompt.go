package ui

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/mattn/go-isatty"
	"github.com/ryo246912/bb-qa-reviews/internal/models"
)

// ConfirmOverwrite asks whether an existing report may be replaced
func ConfirmOverwrite(path string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     fmt.Sprintf("%s already exists. Overwrite", path),
		IsConfirm: true,
	}

	if _, err := prompt.Run(); err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}
		return false, fmt.Errorf("prompt failed: %w", err)
	}
	return true, nil
}

// Interactive reports whether stdin is attached to a terminal
func Interactive() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ShouldWrite decides whether the report at path may be (over)written.
// Only an existing file in an interactive session without force asks the prompter.
func ShouldWrite(path string, force, interactive bool, prompter Prompter) (bool, error) {
	if force || !interactive {
		return true, nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return true, nil
	}
	return prompter.ConfirmOverwrite(path)
}

// PrintMatch prints one "[MATCH] PR #id: title" line
func PrintMatch(w io.Writer, prID int, title string) {
	fmt.Fprintf(w, "%s PR #%d: %s\n", color.CyanString("[MATCH]"), prID, title)
}

// PrintSummary prints the matched records and where they were written
func PrintSummary(w io.Writer, records []models.ReviewRecord, path string) {
	if len(records) == 0 {
		fmt.Fprintln(w, "\nNo QA reviews found.")
		return
	}

	fmt.Fprintln(w)
	for i, line := range FormatTable(records) {
		if i == 0 {
			line = color.New(color.Bold).Sprint(line)
		}
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w, color.GreenString("\nSuccess! Report generated: %s (%d records)", path, len(records)))
}
