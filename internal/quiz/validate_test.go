package quiz

import (
	"errors"
	"testing"
)

func mustDocument(t *testing.T, payload string) Document {
	t.Helper()
	doc, err := decodeDocument([]byte(payload))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	return doc
}

// TestValidateAcceptsCompleteDocument verifies a valid quiz passes.
func TestValidateAcceptsCompleteDocument(t *testing.T) {
	if err := Validate(sampleQuiz().Document()); err != nil {
		t.Fatalf("expected valid document, got %v", err)
	}
}

// TestValidateRejections verifies each integrity rule and its diagnostic.
func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name     string
		payload  string
		question int
		field    string
		message  string
	}{
		{"missing title", `{"questions": []}`, -1, "title", "Title is missing"},
		{"missing questions", `{"title": "T"}`, -1, "questions", "Missing questions"},
		{"missing text", `{"title": "T", "questions": [{"correct": 1, "answers": ["a"]}]}`, 0, "question", "Questiontitle for Question 0 missing"},
		{"missing answers", `{"title": "T", "questions": [{"question": "Q", "correct": 1}]}`, 0, "answers", "Answers for Question 0 missing"},
		{"empty answers", `{"title": "T", "questions": [{"question": "Q", "correct": 1, "answers": []}]}`, 0, "answers", "Answers for Question 0 missing"},
		{"missing correct", `{"title": "T", "questions": [{"question": "Q", "answers": ["a"]}]}`, 0, "correct", "Correct answer for Question 0 missing"},
		{"correct zero", `{"title": "T", "questions": [{"question": "Q", "correct": 0, "answers": ["a"]}]}`, 0, "correct", "Correct answer for Question 0 missing"},
		{"correct too large", `{"title": "T", "questions": [{"question": "Q", "correct": 1, "answers": ["a"]}, {"question": "R", "correct": 3, "answers": ["a", "b"]}]}`, 1, "correct", "Correct answer for Question 1 missing"},
	}
	for _, tc := range cases {
		err := Validate(mustDocument(t, tc.payload))
		var integrityErr *IntegrityError
		if !errors.As(err, &integrityErr) {
			t.Fatalf("%s: expected integrity error, got %v", tc.name, err)
		}
		if integrityErr.Question != tc.question || integrityErr.Field != tc.field {
			t.Fatalf("%s: expected question %d field %s, got %d %s", tc.name, tc.question, tc.field, integrityErr.Question, integrityErr.Field)
		}
		if integrityErr.Error() != tc.message {
			t.Fatalf("%s: expected %q, got %q", tc.name, tc.message, integrityErr.Error())
		}
	}
}

// TestValidateStopsAtFirstFailure verifies checks short-circuit in order.
func TestValidateStopsAtFirstFailure(t *testing.T) {
	doc := mustDocument(t, `{"title": "T", "questions": [{"question": "Q"}, {"answers": []}]}`)
	err := Validate(doc)
	var integrityErr *IntegrityError
	if !errors.As(err, &integrityErr) {
		t.Fatalf("expected integrity error, got %v", err)
	}
	if integrityErr.Question != 0 || integrityErr.Field != "answers" {
		t.Fatalf("expected first question answers failure, got %+v", integrityErr)
	}
}
