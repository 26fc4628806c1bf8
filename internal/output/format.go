// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"taskmgr/internal/service"
)

const (
	// Separator is the rule printed around section headers.
	Separator = "------------"

	// DateLayout is how due dates are displayed.
	DateLayout = "2006-01-02"

	// NoDate is shown for tasks without a due date.
	NoDate = "N/A"

	detailIndent = "      "
)

// FormatHeader formats a section header.
func FormatHeader(w io.Writer, title string) {
	fmt.Fprintln(w, Separator)
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, Separator)
}

// FormatTask formats a task as two lines: number, check mark and title,
// then description, due date and status.
// Format: "{N:>4}  [{x| }] {TITLE}\n      Description: {D} | Due: {DATE} | Status: {S}\n"
func FormatTask(w io.Writer, num int, task service.Task) {
	mark := " "
	if task.Completed() {
		mark = "x"
	}
	fmt.Fprintf(w, "%4d  [%s] %s\n", num, mark, normalizeText(task.Title, "(untitled)"))
	fmt.Fprintf(w, "%sDescription: %s | Due: %s | Status: %s\n",
		detailIndent,
		normalizeText(task.Description, "-"),
		FormatDate(task.DueDate),
		normalizeText(task.Status, "unknown"),
	)
}

// FormatTasks formats a numbered task list.
func FormatTasks(w io.Writer, tasks []service.Task) {
	for i, task := range tasks {
		FormatTask(w, i+1, task)
	}
}

// FormatDate formats a due date, or N/A when unset.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return NoDate
	}
	return t.Format(DateLayout)
}

// normalizeText normalizes a field for single-line display.
// - Newlines are replaced with spaces
// - Empty or whitespace-only values become fallback
func normalizeText(s, fallback string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
