package prompt

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"
)

func newPrompter(t *testing.T, input string) (*Prompter, *bytes.Buffer) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	var out bytes.Buffer
	return New(ctx, strings.NewReader(input), &out), &out
}

// TestStringSkipsEmptyLines verifies empty answers are asked again.
func TestStringSkipsEmptyLines(t *testing.T) {
	p, out := newPrompter(t, "\n  \nParis\n")
	value, err := p.String("Answer: ")
	if err != nil {
		t.Fatalf("string: %v", err)
	}
	if value != "Paris" {
		t.Fatalf("expected Paris, got %q", value)
	}
	if strings.Count(out.String(), "Answer: ") != 3 {
		t.Fatalf("expected three prompts, got %q", out.String())
	}
}

// TestStringEOFAborts verifies closed input aborts the prompt.
func TestStringEOFAborts(t *testing.T) {
	p, _ := newPrompter(t, "")
	if _, err := p.String("Answer: "); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected aborted, got %v", err)
	}
	if _, err := p.Int("Pos: ", 1, true); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected aborted on later prompts, got %v", err)
	}
}

// TestStringReadsFinalLineWithoutNewline verifies unterminated input is used.
func TestStringReadsFinalLineWithoutNewline(t *testing.T) {
	p, _ := newPrompter(t, "last")
	value, err := p.String("Answer: ")
	if err != nil || value != "last" {
		t.Fatalf("expected last, got %q (%v)", value, err)
	}
}

// TestIntDefaultsAndRetries verifies default, retry, and sign handling.
func TestIntDefaultsAndRetries(t *testing.T) {
	p, _ := newPrompter(t, "\nabc\n-2\n7\n")
	value, err := p.Int("Pos: ", 3, true)
	if err != nil || value != 3 {
		t.Fatalf("expected default 3, got %d (%v)", value, err)
	}
	value, err = p.Int("Pos: ", 3, true)
	if err != nil || value != 7 {
		t.Fatalf("expected 7 after retries, got %d (%v)", value, err)
	}
}

// TestChoiceRepromptsSilently verifies out-of-range entries are ignored.
func TestChoiceRepromptsSilently(t *testing.T) {
	p, out := newPrompter(t, "8\nx\n\n3\n")
	value, err := p.Choice("Select: ", []int{1, 3, 9, 0})
	if err != nil || value != 3 {
		t.Fatalf("expected 3, got %d (%v)", value, err)
	}
	if strings.Count(out.String(), "Select: ") != 4 {
		t.Fatalf("expected four prompts, got %q", out.String())
	}
}

// TestRange verifies 1-based range selection.
func TestRange(t *testing.T) {
	p, _ := newPrompter(t, "0\n4\n2\n")
	value, err := p.Range("Number: ", 3)
	if err != nil || value != 2 {
		t.Fatalf("expected 2, got %d (%v)", value, err)
	}
}

// TestYesNo verifies yes/no parsing and defaults.
func TestYesNo(t *testing.T) {
	p, out := newPrompter(t, "\nmaybe\nY\nno\n")
	answer, err := p.YesNo("Save?", false)
	if err != nil || answer {
		t.Fatalf("expected default no, got %v (%v)", answer, err)
	}
	answer, err = p.YesNo("Save?", false)
	if err != nil || !answer {
		t.Fatalf("expected yes, got %v (%v)", answer, err)
	}
	if !strings.Contains(out.String(), "Please answer yes or no.") {
		t.Fatalf("expected retry hint, got %q", out.String())
	}
	answer, err = p.YesNo("Quit?", true)
	if err != nil || answer {
		t.Fatalf("expected no, got %v (%v)", answer, err)
	}
}

// TestInterruptUnblocksPrompt verifies cancellation ends a waiting prompt.
func TestInterruptUnblocksPrompt(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	reader, writer := io.Pipe()
	defer writer.Close()
	var out bytes.Buffer
	p := New(ctx, reader, &out)

	result := make(chan error, 1)
	go func() {
		_, err := p.String("Title: ")
		result <- err
	}()
	cancel()
	select {
	case err := <-result:
		if !errors.Is(err, ErrInterrupted) {
			t.Fatalf("expected interrupted, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatalf("prompt did not return after cancel")
	}
}
