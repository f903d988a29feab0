package editor

import (
	"errors"
	"path/filepath"

	"go.uber.org/zap"

	"quizgen/internal/prompt"
	"quizgen/internal/quiz"
	"quizgen/internal/ui"
)

// ErrInputClosed reports that input ended while a confirmation was required,
// so the session cannot continue.
var ErrInputClosed = errors.New("input closed with unsaved changes")

// Prompter asks the user for values. *prompt.Prompter implements it.
type Prompter interface {
	String(label string) (string, error)
	Int(label string, defaultValue int, nonNegative bool) (int, error)
	Choice(label string, choices []int) (int, error)
	Range(label string, count int) (int, error)
	YesNo(label string, defaultYes bool) (bool, error)
}

// Store persists a quiz.
type Store interface {
	Save(path string, q quiz.Quiz) error
}

// FileStore writes quizzes as indented JSON files.
type FileStore struct {
	Indent int
}

// Save overwrites path with the quiz.
func (store FileStore) Save(path string, q quiz.Quiz) error {
	return quiz.Save(path, q, store.Indent)
}

// Options wires the collaborators of a session.
type Options struct {
	Prompter Prompter
	Renderer *ui.Renderer
	Store    Store
	Logger   *zap.Logger
}

// Session is the editor context: the quiz being edited, where it is saved, and
// whether it diverges from the saved copy.
type Session struct {
	Quiz  quiz.Quiz
	Path  string
	Dirty bool

	prompt      Prompter
	view        *ui.Renderer
	store       Store
	log         *zap.Logger
	inputClosed bool
}

// NewSession builds a session. A session for a file that does not exist yet
// starts dirty.
func NewSession(q quiz.Quiz, path string, created bool, opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	store := opts.Store
	if store == nil {
		store = FileStore{Indent: quiz.DefaultIndent}
	}
	return &Session{
		Quiz:   q,
		Path:   path,
		Dirty:  created,
		prompt: opts.Prompter,
		view:   opts.Renderer,
		store:  store,
		log:    logger.With(zap.String("file", path)),
	}
}

// Name returns the base name of the quiz file.
func (s *Session) Name() string {
	return filepath.Base(s.Path)
}

// markDirty records a committed mutation.
func (s *Session) markDirty(op string, fields ...zap.Field) {
	s.Dirty = true
	fields = append(fields, zap.Int("questions", len(s.Quiz.Questions)))
	s.log.Info(op, fields...)
}

// readMenu shows a menu and reads a choice. End of input selects exitKey.
func (s *Session) readMenu(title string, items []ui.MenuItem, exitKey int) (int, error) {
	s.view.Menu(title, items)
	keys := make([]int, len(items))
	for i, item := range items {
		keys[i] = item.Key
	}
	choice, err := s.prompt.Choice("Select: ", keys)
	if errors.Is(err, prompt.ErrAborted) {
		s.inputClosed = true
		return exitKey, nil
	}
	return choice, err
}

// confirmExit asks before leaving a menu with unsaved work. When input is gone
// there is no way to ask again, so the session ends with ErrInputClosed.
func (s *Session) confirmExit(label string) (bool, error) {
	ok, err := s.prompt.YesNo(label, false)
	if errors.Is(err, prompt.ErrAborted) && s.inputClosed {
		return false, ErrInputClosed
	}
	return ok, err
}

// handled reports whether err only cancelled the current operation.
func (s *Session) handled(err error) bool {
	if errors.Is(err, prompt.ErrAborted) {
		s.view.Aborted()
		return true
	}
	return false
}
