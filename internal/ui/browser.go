package ui

import (
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"quizgen/internal/quiz"
)

// Browser is a read-only Bubble Tea view over a quiz.
type Browser struct {
	quiz    quiz.Quiz
	name    string
	table   table.Model
	noColor bool
	height  int
}

// NewBrowser constructs a browser for a loaded quiz.
func NewBrowser(q quiz.Quiz, name string, color bool) Browser {
	t := table.New(
		table.WithColumns(browserColumns(80)),
		table.WithRows(questionRows(q)),
		table.WithFocused(true),
		table.WithHeight(max(min(len(q.Questions), 10), 1)),
	)
	t.SetStyles(tableStyles(!color))
	return Browser{quiz: q, name: name, table: t, noColor: !color}
}

// RunBrowser shows the browser on out until the user quits.
func RunBrowser(q quiz.Quiz, name string, color bool, in io.Reader, out io.Writer) error {
	program := tea.NewProgram(NewBrowser(q, name, color), tea.WithInput(in), tea.WithOutput(out), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

// Init has nothing to start.
func (b Browser) Init() tea.Cmd {
	return nil
}

// Update handles navigation keys and resizes.
func (b Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		b.height = typed.Height
		b.table.SetWidth(typed.Width)
		b.table.SetColumns(browserColumns(typed.Width))
		// header, summary, detail block, and footer take the remaining lines
		b.table.SetHeight(max(typed.Height-12, 1))
		return b, nil
	case tea.KeyMsg:
		switch typed.String() {
		case "q", "esc", "ctrl+c":
			return b, tea.Quit
		}
	}
	var cmd tea.Cmd
	b.table, cmd = b.table.Update(msg)
	return b, cmd
}

// View renders the question table and the answers of the selected question.
func (b Browser) View() string {
	header := stylize("Quiz [ "+b.name+" ] "+b.quiz.Title, b.noColor, lipgloss.Color("33"))
	summary := stylize("Groups: "+strconv.Itoa(b.quiz.Mode)+" | Questions: "+strconv.Itoa(len(b.quiz.Questions)), b.noColor, lipgloss.Color("242"))
	footer := stylize("up/down: select | q: quit", b.noColor, lipgloss.Color("244"))
	return lipgloss.JoinVertical(lipgloss.Left, header, summary, b.table.View(), b.detail(), footer)
}

// Selected returns the 1-based index of the highlighted question, or 0 when empty.
func (b Browser) Selected() int {
	if len(b.quiz.Questions) == 0 {
		return 0
	}
	return b.table.Cursor() + 1
}

func (b Browser) detail() string {
	index := b.Selected()
	if index == 0 {
		return "No questions."
	}
	question := b.quiz.Questions[index-1]
	lines := []string{"Question #" + strconv.Itoa(index) + ": " + question.Text}
	for i, answer := range question.Answers {
		line := "  " + strconv.Itoa(i+1) + ": " + answer
		if i+1 == question.Correct {
			line += " " + stylize("(X)", b.noColor, lipgloss.Color("42"))
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// questionRows converts questions into table rows.
func questionRows(q quiz.Quiz) []table.Row {
	rows := make([]table.Row, 0, len(q.Questions))
	for i, question := range q.Questions {
		rows = append(rows, table.Row{
			formatIndex(i),
			groupLabel(i, q.Mode),
			formatText(question.Text, 80),
			strconv.Itoa(len(question.Answers)),
			formatText(correctAnswer(question), 40),
		})
	}
	return rows
}

// browserColumns sizes columns for a terminal width.
func browserColumns(width int) []table.Column {
	text := max(width-4-7-6-6-24-10, 20)
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "Group", Width: 7},
		{Title: "Question", Width: text},
		{Title: "Answers", Width: 6},
		{Title: "Correct", Width: 24},
	}
}

// tableStyles returns table styles for the browser.
func tableStyles(noColor bool) table.Styles {
	styles := table.DefaultStyles()
	if noColor {
		styles.Selected = styles.Selected.UnsetForeground().UnsetBackground().Bold(true)
		return styles
	}
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	return styles
}

// groupLabel names the answer group a question falls to when groups take turns.
func groupLabel(index, mode int) string {
	if mode <= 1 {
		return "-"
	}
	return string(rune('A' + index%mode))
}

func correctAnswer(q quiz.Question) string {
	if q.Correct < 1 || q.Correct > len(q.Answers) {
		return ""
	}
	return q.Answers[q.Correct-1]
}

// formatIndex formats a 0-based question index for display.
func formatIndex(index int) string {
	if index+1 >= 10 {
		return strconv.Itoa(index + 1)
	}
	return "0" + strconv.Itoa(index+1)
}

// formatText collapses whitespace and truncates text for display.
func formatText(text string, limit int) string {
	normalized := strings.Join(strings.Fields(text), " ")
	if len(normalized) <= limit {
		return normalized
	}
	return normalized[:limit-3] + "..."
}
