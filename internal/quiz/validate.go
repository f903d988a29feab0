package quiz

import "fmt"

// IntegrityError describes the first problem found in a stored quiz.
type IntegrityError struct {
	// Question is the 0-based question index, or -1 for document-level fields.
	Question int
	Field    string
	Message  string
}

// Error returns a readable message for the integrity failure.
func (err *IntegrityError) Error() string {
	if err == nil {
		return ""
	}
	return err.Message
}

func documentIssue(field, message string) *IntegrityError {
	return &IntegrityError{Question: -1, Field: field, Message: message}
}

func questionIssue(index int, field, format string) *IntegrityError {
	return &IntegrityError{Question: index, Field: field, Message: fmt.Sprintf(format, index)}
}

// Validate runs the integrity check on a stored quiz and stops at the first failure.
// It returns nil when the document is usable.
func Validate(doc Document) error {
	if doc.Title == nil {
		return documentIssue("title", "Title is missing")
	}
	if doc.Questions == nil {
		return documentIssue("questions", "Missing questions")
	}
	for i, question := range *doc.Questions {
		if question.Text == nil {
			return questionIssue(i, "question", "Questiontitle for Question %d missing")
		}
		if question.Answers == nil || len(*question.Answers) == 0 {
			return questionIssue(i, "answers", "Answers for Question %d missing")
		}
		if question.Correct == nil || *question.Correct < 1 || *question.Correct > len(*question.Answers) {
			return questionIssue(i, "correct", "Correct answer for Question %d missing")
		}
	}
	return nil
}
