// Package output provides formatters for the interactive menu.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"todo/internal/service"
)

// MenuItem is one numbered entry of the main menu.
type MenuItem struct {
	Key   string
	Label string
}

// Printer writes user-facing text. Styling only applies when the
// destination is a color-capable terminal; otherwise output is plain.
type Printer struct {
	w     io.Writer
	title lipgloss.Style
}

// NewPrinter creates a Printer for w.
func NewPrinter(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:     w,
		title: r.NewStyle().Bold(true),
	}
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer {
	return p.w
}

// Println writes a single message line.
func (p *Printer) Println(msg string) {
	fmt.Fprintln(p.w, msg)
}

// Printf writes a formatted message followed by a newline.
func (p *Printer) Printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, format, args...)
	fmt.Fprintln(p.w)
}

// Banner writes the startup line naming the task file, then a blank line.
func (p *Printer) Banner(path string) {
	fmt.Fprintf(p.w, "%s (tasks saved to %s)\n\n", p.title.Render("Simple To-Do App"), path)
}

// Menu writes the option list.
// Format: "Choose an option:" then "  {KEY}. {LABEL}" per item.
func (p *Printer) Menu(items []MenuItem) {
	fmt.Fprintln(p.w, "Choose an option:")
	for _, item := range items {
		fmt.Fprintf(p.w, "  %s. %s\n", item.Key, item.Label)
	}
}

// TaskList writes the numbered listing, or a notice when there are no
// tasks. The listing is surrounded by blank lines.
func (p *Printer) TaskList(tasks []service.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(p.w, "No tasks available.")
		return
	}
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, p.title.Render("Your To Do List:"))
	for i, task := range tasks {
		FormatTask(p.w, i+1, task)
	}
	fmt.Fprintln(p.w)
}

// FormatTask formats a task line.
// Format: "{N}. {TEXT}\n" (1-based number, dot, space, text)
func FormatTask(w io.Writer, num int, task service.Task) {
	fmt.Fprintf(w, "%d. %s\n", num, normalizeText(task.Text))
}

// normalizeText keeps a task on one display line by replacing line
// breaks with spaces.
func normalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", " ")
	text = strings.ReplaceAll(text, "\r", " ")
	return strings.ReplaceAll(text, "\n", " ")
}
