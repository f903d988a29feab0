package editor

import (
	"fmt"

	"quizgen/internal/quiz"
	"quizgen/internal/ui"
)

// Question menu choices.
const (
	QuestionShow         = 1
	QuestionEditText     = 3
	QuestionAddAnswer    = 4
	QuestionEditAnswer   = 5
	QuestionRemoveAnswer = 6
	QuestionSetCorrect   = 7
	QuestionDone         = 9
	QuestionAbort        = 0
)

// questionEditor holds the working copy of one question. changed starts true
// for new questions.
type questionEditor struct {
	session  *Session
	question quiz.Question
	index    int
	isNew    bool
	changed  bool
}

type questionTransition struct {
	label string
	run   func(*questionEditor) (Outcome, error)
}

var questionTransitions = []struct {
	key int
	questionTransition
}{
	{QuestionShow, questionTransition{"Show Question", (*questionEditor).show}},
	{QuestionEditText, questionTransition{"Edit Text", (*questionEditor).editText}},
	{QuestionAddAnswer, questionTransition{"Add Answer", (*questionEditor).addAnswer}},
	{QuestionEditAnswer, questionTransition{"Edit Answer", (*questionEditor).editAnswer}},
	{QuestionRemoveAnswer, questionTransition{"Remove Answer", (*questionEditor).removeAnswer}},
	{QuestionSetCorrect, questionTransition{"Set Correct Answer", (*questionEditor).setCorrect}},
	{QuestionDone, questionTransition{"Done...", (*questionEditor).done}},
	{QuestionAbort, questionTransition{"Abort...", (*questionEditor).abort}},
}

// editQuestionCopy runs the question menu on a working copy. The returned
// outcome is Commit or Discard; on Discard the caller keeps the prior value.
func (s *Session) editQuestionCopy(working quiz.Question, index int, isNew bool) (quiz.Question, Outcome, error) {
	editor := &questionEditor{session: s, question: working, index: index, isNew: isNew, changed: isNew}
	outcome, err := editor.run()
	if err != nil {
		return quiz.Question{}, Discard, err
	}
	return editor.question, outcome, nil
}

func (e *questionEditor) run() (Outcome, error) {
	s := e.session
	if !e.isNew {
		s.view.Blank()
		s.view.QuestionSummary(e.question, e.index)
		s.view.Blank()
	}
	for {
		items, table := e.menu()
		choice, err := s.readMenu(fmt.Sprintf("Edit Question #%d", e.index), items, QuestionAbort)
		if err != nil {
			return Discard, err
		}
		outcome, err := table[choice].run(e)
		if err != nil {
			if s.handled(err) {
				continue
			}
			return Discard, err
		}
		if outcome == Commit || outcome == Discard {
			return outcome, nil
		}
		s.view.Blank()
	}
}

// menu builds the current choices. Removing an answer is only offered while
// more than one answer remains.
func (e *questionEditor) menu() ([]ui.MenuItem, map[int]questionTransition) {
	items := make([]ui.MenuItem, 0, len(questionTransitions))
	table := make(map[int]questionTransition, len(questionTransitions))
	for _, entry := range questionTransitions {
		if entry.key == QuestionRemoveAnswer && len(e.question.Answers) < 2 {
			continue
		}
		items = append(items, ui.MenuItem{Key: entry.key, Label: entry.label})
		table[entry.key] = entry.questionTransition
	}
	return items, table
}

func (e *questionEditor) show() (Outcome, error) {
	e.session.view.Blank()
	e.session.view.QuestionSummary(e.question, e.index)
	return Continue, nil
}

func (e *questionEditor) editText() (Outcome, error) {
	e.session.view.Blank()
	text, err := e.session.prompt.String("Enter new Question: ")
	if err != nil {
		return Continue, err
	}
	e.question.SetText(text)
	e.changed = true
	return Continue, nil
}

func (e *questionEditor) addAnswer() (Outcome, error) {
	e.session.view.Blank()
	count := len(e.question.Answers)
	pos, err := e.session.prompt.Int(fmt.Sprintf("Position to add: (default %d) ", count+1), count+1, true)
	if err != nil {
		return Continue, err
	}
	text, err := e.session.prompt.String("Answer: ")
	if err != nil {
		return Continue, err
	}
	if err := e.question.InsertAnswer(quiz.ClampPosition(pos, count), text); err != nil {
		return Continue, err
	}
	e.changed = true
	return Continue, nil
}

func (e *questionEditor) editAnswer() (Outcome, error) {
	e.session.view.Blank()
	index, err := e.session.prompt.Range("Answer Number: ", len(e.question.Answers))
	if err != nil {
		return Continue, err
	}
	text, err := e.session.prompt.String("New Answer: ")
	if err != nil {
		return Continue, err
	}
	if err := e.question.SetAnswer(index, text); err != nil {
		return Continue, err
	}
	e.changed = true
	return Continue, nil
}

func (e *questionEditor) removeAnswer() (Outcome, error) {
	e.session.view.Blank()
	index, err := e.session.prompt.Range("Answer Number: ", len(e.question.Answers))
	if err != nil {
		return Continue, err
	}
	removed, reset, err := e.question.RemoveAnswer(index)
	if err != nil {
		return Continue, err
	}
	e.session.view.Notice("Deleted Answer #%d %q", index, removed)
	if reset {
		e.session.view.Notice("Deleted correct answer. Marked first as correct!")
	}
	e.changed = true
	return Continue, nil
}

func (e *questionEditor) setCorrect() (Outcome, error) {
	e.session.view.Blank()
	index, err := e.session.prompt.Range("Answer Number: ", len(e.question.Answers))
	if err != nil {
		return Continue, err
	}
	if err := e.question.SetCorrect(index); err != nil {
		return Continue, err
	}
	e.changed = true
	return Continue, nil
}

func (e *questionEditor) done() (Outcome, error) {
	return Commit, nil
}

func (e *questionEditor) abort() (Outcome, error) {
	if !e.changed {
		return Discard, nil
	}
	ok, err := e.session.confirmExit("Abort and discard changes?")
	if err != nil {
		return Continue, err
	}
	if ok {
		return Discard, nil
	}
	return Continue, nil
}
