package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"quizgen/internal/quiz"
)

// Renderer writes menus, summaries, and notices for the editor.
type Renderer struct {
	out     io.Writer
	noColor bool
}

// NewRenderer builds a renderer. Color is applied only when enabled.
func NewRenderer(out io.Writer, color bool) *Renderer {
	return &Renderer{out: out, noColor: !color}
}

// MenuItem is one numbered entry of a menu.
type MenuItem struct {
	Key   int
	Label string
}

// Banner prints the program banner.
func (r *Renderer) Banner() {
	fmt.Fprintln(r.out, stylize(" === [ JSquiz - Generator ] === ", r.noColor, lipgloss.Color("33")))
	fmt.Fprintln(r.out)
}

// Menu prints a titled list of numbered choices.
func (r *Renderer) Menu(title string, items []MenuItem) {
	fmt.Fprintln(r.out, stylize(" -- "+title+" -- ", r.noColor, lipgloss.Color("39")))
	for _, item := range items {
		fmt.Fprintf(r.out, " (%d) %s\n", item.Key, item.Label)
	}
}

// Notice prints an informational line prefixed with an arrow.
func (r *Renderer) Notice(format string, args ...any) {
	fmt.Fprintln(r.out, stylize("==> "+fmt.Sprintf(format, args...), r.noColor, lipgloss.Color("42")))
}

// Warn prints a warning line.
func (r *Renderer) Warn(format string, args ...any) {
	fmt.Fprintln(r.out, stylize(fmt.Sprintf(format, args...), r.noColor, lipgloss.Color("214")))
}

// Line prints a plain line.
func (r *Renderer) Line(format string, args ...any) {
	fmt.Fprintf(r.out, format+"\n", args...)
}

// Blank prints an empty line.
func (r *Renderer) Blank() {
	fmt.Fprintln(r.out)
}

// Aborted reports that the current operation was cancelled.
func (r *Renderer) Aborted() {
	fmt.Fprintln(r.out, stylize("Aborted!", r.noColor, lipgloss.Color("214")))
	fmt.Fprintln(r.out)
}

// Summary prints the quiz header and question list. With extensive set every
// question is followed by its answers.
func (r *Renderer) Summary(q quiz.Quiz, name string, extensive bool) {
	fmt.Fprintf(r.out, "Summary [ %s ]:\n", name)
	fmt.Fprintf(r.out, "  Title: %s\n", q.Title)
	fmt.Fprintf(r.out, "  # Groups: %d\n", q.Mode)
	fmt.Fprintf(r.out, "  # Questions: %d\n", len(q.Questions))
	for i, question := range q.Questions {
		fmt.Fprintf(r.out, "    %2d: %s\n", i+1, question.Text)
		if extensive {
			r.answers(question, false, 8)
		}
	}
}

// QuestionSummary prints one question with numbered answers.
func (r *Renderer) QuestionSummary(q quiz.Question, index int) {
	fmt.Fprintf(r.out, "Question #%d:\n", index)
	fmt.Fprintf(r.out, "  Text: %s\n", q.Text)
	fmt.Fprintf(r.out, "  # Answers: %d\n", len(q.Answers))
	r.answers(q, true, 4)
}

func (r *Renderer) answers(q quiz.Question, numbered bool, indent int) {
	pad := strings.Repeat(" ", indent)
	for i, answer := range q.Answers {
		sign := "-"
		if numbered {
			sign = fmt.Sprintf("%2d:", i+1)
		}
		line := fmt.Sprintf("%s%s %s", pad, sign, answer)
		if i+1 == q.Correct {
			line += " " + stylize("(X)", r.noColor, lipgloss.Color("42"))
		}
		fmt.Fprintln(r.out, line)
	}
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
