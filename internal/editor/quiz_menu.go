package editor

import (
	"fmt"

	"go.uber.org/zap"

	"quizgen/internal/quiz"
	"quizgen/internal/ui"
)

// Outcome is the state a menu transition leads to.
type Outcome int

const (
	// Continue stays in the current menu.
	Continue Outcome = iota
	// Quit leaves the quiz menu and ends the session.
	Quit
	// Commit leaves the question menu keeping the working copy.
	Commit
	// Discard leaves the question menu restoring the prior question.
	Discard
)

// Quiz menu choices.
const (
	QuizOverview       = 1
	QuizCompleteList   = 2
	QuizEditTitle      = 3
	QuizAddQuestion    = 4
	QuizEditQuestion   = 5
	QuizRemoveQuestion = 6
	QuizChangeMode     = 7
	QuizSave           = 9
	QuizQuit           = 0
)

type quizTransition struct {
	label string
	run   func(*Session) (Outcome, error)
}

// quizTransitions is the transition table of the quiz menu, in display order.
var quizTransitions = []struct {
	key int
	quizTransition
}{
	{QuizOverview, quizTransition{"Short overview", (*Session).showOverview}},
	{QuizCompleteList, quizTransition{"Show complete List", (*Session).showCompleteList}},
	{QuizEditTitle, quizTransition{"Edit Title", (*Session).editTitle}},
	{QuizAddQuestion, quizTransition{"Add Question", (*Session).addQuestion}},
	{QuizEditQuestion, quizTransition{"Edit Question", (*Session).editQuestion}},
	{QuizRemoveQuestion, quizTransition{"Remove Question", (*Session).removeQuestion}},
	{QuizChangeMode, quizTransition{"Change Mode", (*Session).changeMode}},
	{QuizSave, quizTransition{"Save...", (*Session).save}},
	{QuizQuit, quizTransition{"Quit...", (*Session).quit}},
}

// Run drives the quiz menu until the user quits. It returns
// prompt.ErrInterrupted or ErrInputClosed when the session cannot go on.
func (s *Session) Run() error {
	items := make([]ui.MenuItem, len(quizTransitions))
	table := make(map[int]quizTransition, len(quizTransitions))
	for i, entry := range quizTransitions {
		items[i] = ui.MenuItem{Key: entry.key, Label: entry.label}
		table[entry.key] = entry.quizTransition
	}

	s.log.Info("session started", zap.Bool("dirty", s.Dirty))
	for {
		choice, err := s.readMenu(fmt.Sprintf("Edit [ %s ]", s.Name()), items, QuizQuit)
		if err != nil {
			return err
		}
		outcome, err := table[choice].run(s)
		if err != nil {
			if s.handled(err) {
				continue
			}
			s.log.Warn("session ended", zap.Error(err), zap.Bool("dirty", s.Dirty))
			return err
		}
		if outcome == Quit {
			s.log.Info("session ended", zap.Bool("dirty", s.Dirty))
			return nil
		}
		s.view.Blank()
	}
}

func (s *Session) showOverview() (Outcome, error) {
	s.view.Blank()
	s.view.Summary(s.Quiz, s.Path, false)
	return Continue, nil
}

func (s *Session) showCompleteList() (Outcome, error) {
	s.view.Blank()
	s.view.Summary(s.Quiz, s.Path, true)
	return Continue, nil
}

func (s *Session) editTitle() (Outcome, error) {
	s.view.Blank()
	title, err := s.prompt.String("Enter new Title: ")
	if err != nil {
		return Continue, err
	}
	s.Quiz.SetTitle(title)
	s.markDirty("title changed")
	return Continue, nil
}

func (s *Session) addQuestion() (Outcome, error) {
	s.view.Blank()
	count := len(s.Quiz.Questions)
	pos, err := s.prompt.Int(fmt.Sprintf("Position to add: (default %d) ", count+1), count+1, true)
	if err != nil {
		return Continue, err
	}
	pos = quiz.ClampPosition(pos, count)
	text, err := s.prompt.String("Question: ")
	if err != nil {
		return Continue, err
	}
	first, err := s.prompt.String("First answer: ")
	if err != nil {
		return Continue, err
	}
	s.view.Line("Set first answer to correct by default")
	s.view.Blank()

	edited, outcome, err := s.editQuestionCopy(quiz.NewQuestion(text, first), pos, true)
	if err != nil {
		return Continue, err
	}
	if outcome != Commit {
		s.log.Debug("new question discarded", zap.Int("position", pos))
		return Continue, nil
	}
	if err := s.Quiz.InsertQuestion(pos, edited); err != nil {
		return Continue, err
	}
	s.markDirty("question added", zap.Int("position", pos))
	return Continue, nil
}

func (s *Session) editQuestion() (Outcome, error) {
	s.view.Blank()
	if len(s.Quiz.Questions) == 0 {
		s.view.Line("No questions to edit.")
		return Continue, nil
	}
	index, err := s.prompt.Range("Question Number: ", len(s.Quiz.Questions))
	if err != nil {
		return Continue, err
	}
	original, err := s.Quiz.TakeQuestion(index)
	if err != nil {
		return Continue, err
	}
	edited, outcome, err := s.editQuestionCopy(original.Clone(), index, false)
	restore := original
	if err == nil && outcome == Commit {
		restore = edited
	}
	if insertErr := s.Quiz.InsertQuestion(index, restore); insertErr != nil {
		return Continue, insertErr
	}
	if err != nil {
		return Continue, err
	}
	if outcome == Commit {
		s.markDirty("question edited", zap.Int("index", index))
	}
	return Continue, nil
}

func (s *Session) removeQuestion() (Outcome, error) {
	s.view.Blank()
	if len(s.Quiz.Questions) == 0 {
		s.view.Line("No questions to remove.")
		return Continue, nil
	}
	index, err := s.prompt.Range("Question Number: ", len(s.Quiz.Questions))
	if err != nil {
		return Continue, err
	}
	removed, err := s.Quiz.RemoveQuestion(index)
	if err != nil {
		return Continue, err
	}
	s.view.Notice("Deleted Question #%d %q", index, removed.Text)
	s.markDirty("question removed", zap.Int("index", index))
	return Continue, nil
}

func (s *Session) changeMode() (Outcome, error) {
	s.view.Blank()
	mode, err := s.prompt.Choice("Group count: ", []int{1, 2, 3, 4})
	if err != nil {
		return Continue, err
	}
	if err := s.Quiz.SetMode(mode); err != nil {
		return Continue, err
	}
	s.view.Notice("Set Mode to %d Groups", mode)
	s.markDirty("mode changed", zap.Int("mode", mode))
	return Continue, nil
}

func (s *Session) save() (Outcome, error) {
	ok, err := s.prompt.YesNo("Save Changes?", false)
	if err != nil || !ok {
		return Continue, err
	}
	if err := s.store.Save(s.Path, s.Quiz); err != nil {
		s.view.Warn("Error: cannot save file: %v", err)
		s.log.Error("save failed", zap.Error(err))
		return Continue, nil
	}
	s.Dirty = false
	s.view.Notice("File saved!")
	s.log.Info("quiz saved", zap.Int("questions", len(s.Quiz.Questions)))
	return Continue, nil
}

func (s *Session) quit() (Outcome, error) {
	if !s.Dirty {
		return Quit, nil
	}
	s.view.Line("You have unsaved changes.")
	ok, err := s.confirmExit("Quit without saving?")
	if err != nil {
		return Continue, err
	}
	if ok {
		return Quit, nil
	}
	return Continue, nil
}
