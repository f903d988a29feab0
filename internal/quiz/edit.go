package quiz

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange reports a 1-based index outside the current bounds.
var ErrIndexOutOfRange = errors.New("index out of range")

// ErrInvalidMode reports a group count outside MinMode..MaxMode.
var ErrInvalidMode = errors.New("invalid mode")

// ErrLastAnswer reports an attempt to remove the only remaining answer.
var ErrLastAnswer = errors.New("cannot remove the last answer")

// SetTitle replaces the quiz title.
func (q *Quiz) SetTitle(title string) {
	q.Title = title
}

// SetMode replaces the number of answer groups.
func (q *Quiz) SetMode(mode int) error {
	if mode < MinMode || mode > MaxMode {
		return fmt.Errorf("%w: %d (expected %d..%d)", ErrInvalidMode, mode, MinMode, MaxMode)
	}
	q.Mode = mode
	return nil
}

// Question returns a copy of the question at the 1-based index.
func (q *Quiz) Question(index int) (Question, error) {
	if index < 1 || index > len(q.Questions) {
		return Question{}, fmt.Errorf("%w: question %d not in 1..%d", ErrIndexOutOfRange, index, len(q.Questions))
	}
	return q.Questions[index-1].Clone(), nil
}

// InsertQuestion places question at the 1-based position, shifting later ones down.
func (q *Quiz) InsertQuestion(pos int, question Question) error {
	questions, err := insertAt(q.Questions, pos, question)
	if err != nil {
		return err
	}
	q.Questions = questions
	return nil
}

// TakeQuestion removes the question at the 1-based index and hands it to the caller.
func (q *Quiz) TakeQuestion(index int) (Question, error) {
	questions, removed, err := removeAt(q.Questions, index)
	if err != nil {
		return Question{}, err
	}
	q.Questions = questions
	return removed, nil
}

// RemoveQuestion deletes the question at the 1-based index.
func (q *Quiz) RemoveQuestion(index int) (Question, error) {
	return q.TakeQuestion(index)
}

// SetText replaces the question prompt.
func (q *Question) SetText(text string) {
	q.Text = text
}

// InsertAnswer places an answer at the 1-based position.
// Correct is left alone, so inserting before the correct answer moves the marker
// onto a different answer.
func (q *Question) InsertAnswer(pos int, text string) error {
	answers, err := insertAt(q.Answers, pos, text)
	if err != nil {
		return err
	}
	q.Answers = answers
	return nil
}

// SetAnswer replaces the answer at the 1-based index.
func (q *Question) SetAnswer(index int, text string) error {
	if index < 1 || index > len(q.Answers) {
		return fmt.Errorf("%w: answer %d not in 1..%d", ErrIndexOutOfRange, index, len(q.Answers))
	}
	q.Answers[index-1] = text
	return nil
}

// RemoveAnswer deletes the answer at the 1-based index and re-points Correct.
// correctReset is true when the removed answer was the correct one and the
// marker moved to the first answer.
func (q *Question) RemoveAnswer(index int) (removed string, correctReset bool, err error) {
	if len(q.Answers) <= 1 && index == 1 {
		return "", false, ErrLastAnswer
	}
	answers, removed, err := removeAt(q.Answers, index)
	if err != nil {
		return "", false, err
	}
	q.Answers = answers
	switch {
	case q.Correct > index:
		q.Correct--
	case q.Correct == index:
		q.Correct = 1
		correctReset = true
	}
	return removed, correctReset, nil
}

// SetCorrect marks the answer at the 1-based index as correct.
func (q *Question) SetCorrect(index int) error {
	if index < 1 || index > len(q.Answers) {
		return fmt.Errorf("%w: answer %d not in 1..%d", ErrIndexOutOfRange, index, len(q.Answers))
	}
	q.Correct = index
	return nil
}
