package quiz

// Mode bounds for the number of answer groups.
const (
	MinMode     = 1
	MaxMode     = 4
	DefaultMode = 1
)

// Quiz is the document edited by quizgen.
type Quiz struct {
	Title     string     `json:"title"`
	Mode      int        `json:"mode"`
	Questions []Question `json:"questions"`
}

// Question represents a single quiz item with its answers and 1-based correct index.
type Question struct {
	Text    string   `json:"question"`
	Correct int      `json:"correct"`
	Answers []string `json:"answers"`
}

// New returns an empty quiz as created for a new file.
func New() Quiz {
	return Quiz{Mode: DefaultMode, Questions: []Question{}}
}

// NewQuestion builds a question whose single answer is marked correct.
func NewQuestion(text, firstAnswer string) Question {
	return Question{Text: text, Correct: 1, Answers: []string{firstAnswer}}
}

// Clone returns a deep copy of the question.
func (q Question) Clone() Question {
	answers := make([]string, len(q.Answers))
	copy(answers, q.Answers)
	q.Answers = answers
	return q
}

// Clone returns a deep copy of the quiz.
func (q Quiz) Clone() Quiz {
	questions := make([]Question, len(q.Questions))
	for i, question := range q.Questions {
		questions[i] = question.Clone()
	}
	q.Questions = questions
	return q
}

// Document is the presence-aware form of a stored quiz. Nil fields were absent.
type Document struct {
	Title     *string            `json:"title"`
	Mode      *int               `json:"mode"`
	Questions *[]DocumentQuestion `json:"questions"`
}

// DocumentQuestion is the presence-aware form of a stored question.
type DocumentQuestion struct {
	Text    *string   `json:"question"`
	Correct *int      `json:"correct"`
	Answers *[]string `json:"answers"`
}

// Document converts the quiz into its stored form with every field present.
func (q Quiz) Document() Document {
	title := q.Title
	mode := q.Mode
	questions := make([]DocumentQuestion, len(q.Questions))
	for i, question := range q.Questions {
		text := question.Text
		correct := question.Correct
		answers := append([]string{}, question.Answers...)
		questions[i] = DocumentQuestion{Text: &text, Correct: &correct, Answers: &answers}
	}
	return Document{Title: &title, Mode: &mode, Questions: &questions}
}

// Quiz converts a validated document into the in-memory model.
// A missing mode falls back to DefaultMode.
func (doc Document) Quiz() Quiz {
	out := New()
	if doc.Title != nil {
		out.Title = *doc.Title
	}
	if doc.Mode != nil {
		out.Mode = *doc.Mode
	}
	if doc.Questions == nil {
		return out
	}
	for _, raw := range *doc.Questions {
		var question Question
		if raw.Text != nil {
			question.Text = *raw.Text
		}
		if raw.Correct != nil {
			question.Correct = *raw.Correct
		}
		if raw.Answers != nil {
			question.Answers = append([]string{}, (*raw.Answers)...)
		}
		out.Questions = append(out.Questions, question)
	}
	return out
}
