package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
)

// ErrAborted reports that the input stream ended while a prompt was waiting.
var ErrAborted = errors.New("input aborted")

// ErrInterrupted reports that the session was interrupted while a prompt was waiting.
var ErrInterrupted = errors.New("interrupted by user")

// Prompter asks line-oriented questions on an input stream.
// Reads happen on a background goroutine so a cancelled context unblocks a waiting prompt.
type Prompter struct {
	ctx   context.Context
	out   io.Writer
	lines <-chan lineResult
	done  error
}

type lineResult struct {
	text string
	err  error
}

// New starts reading lines from in. Prompts are written to out.
func New(ctx context.Context, in io.Reader, out io.Writer) *Prompter {
	lines := make(chan lineResult)
	go readLines(ctx, bufio.NewReader(in), lines)
	return &Prompter{ctx: ctx, out: out, lines: lines}
}

func readLines(ctx context.Context, reader *bufio.Reader, lines chan<- lineResult) {
	defer close(lines)
	for {
		line, err := readLine(reader)
		if err != nil && err != io.EOF {
			send(ctx, lines, lineResult{err: err})
			return
		}
		if err == io.EOF {
			if line != "" {
				send(ctx, lines, lineResult{text: line})
			}
			return
		}
		if !send(ctx, lines, lineResult{text: line}) {
			return
		}
	}
}

func send(ctx context.Context, lines chan<- lineResult, result lineResult) bool {
	select {
	case lines <- result:
		return true
	case <-ctx.Done():
		return false
	}
}

// readLine reads a line from the reader, trimming line endings.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil {
		if err == io.EOF {
			return strings.TrimRight(line, "\r\n"), io.EOF
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// next waits for the next input line.
func (p *Prompter) next() (string, error) {
	if p.ctx.Err() != nil {
		return "", ErrInterrupted
	}
	if p.done != nil {
		return "", p.done
	}
	select {
	case <-p.ctx.Done():
		return "", ErrInterrupted
	case result, ok := <-p.lines:
		if !ok {
			p.done = ErrAborted
			return "", ErrAborted
		}
		if result.err != nil {
			p.done = fmt.Errorf("%w: %v", ErrAborted, result.err)
			return "", p.done
		}
		return result.text, nil
	}
}

// String asks for a non-empty line, re-prompting on empty input.
func (p *Prompter) String(label string) (string, error) {
	for {
		fmt.Fprint(p.out, label)
		line, err := p.next()
		if err != nil {
			return "", err
		}
		if text := strings.TrimSpace(line); text != "" {
			return text, nil
		}
	}
}

// Int asks for an integer. Empty input selects defaultValue; anything
// non-numeric, or negative when nonNegative is set, is asked again.
func (p *Prompter) Int(label string, defaultValue int, nonNegative bool) (int, error) {
	for {
		fmt.Fprint(p.out, label)
		line, err := p.next()
		if err != nil {
			return 0, err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return defaultValue, nil
		}
		value, err := strconv.Atoi(line)
		if err != nil {
			continue
		}
		if nonNegative && value < 0 {
			continue
		}
		return value, nil
	}
}

// Choice asks until the entered integer is one of choices.
func (p *Prompter) Choice(label string, choices []int) (int, error) {
	for {
		fmt.Fprint(p.out, label)
		line, err := p.next()
		if err != nil {
			return 0, err
		}
		value, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			continue
		}
		if slices.Contains(choices, value) {
			return value, nil
		}
	}
}

// Range asks for an integer in 1..count.
func (p *Prompter) Range(label string, count int) (int, error) {
	choices := make([]int, count)
	for i := range choices {
		choices[i] = i + 1
	}
	return p.Choice(label, choices)
}

// YesNo asks a yes/no question. Empty input selects the default.
func (p *Prompter) YesNo(label string, defaultYes bool) (bool, error) {
	suffix := "y/N"
	if defaultYes {
		suffix = "Y/n"
	}
	for {
		fmt.Fprintf(p.out, "%s [%s] ", label, suffix)
		line, err := p.next()
		if err != nil {
			return false, err
		}
		switch strings.TrimSpace(strings.ToLower(line)) {
		case "":
			return defaultYes, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			fmt.Fprintln(p.out, "Please answer yes or no.")
		}
	}
}
