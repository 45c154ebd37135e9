package cli

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/peterh/liner"
)

// Prompter obtains one line of operator input
type Prompter interface {
	Prompt(text string) (string, error)
}

// ErrAborted is returned when the operator cancels the prompt
var ErrAborted = errors.New("input aborted")

// TerminalPrompter reads from an interactive terminal with line editing
type TerminalPrompter struct{}

// NewTerminalPrompter creates a prompter for an interactive terminal
func NewTerminalPrompter() *TerminalPrompter {
	return &TerminalPrompter{}
}

// Prompt shows text and waits for one line.
// The terminal is restored before returning so later output is not garbled.
func (p *TerminalPrompter) Prompt(text string) (string, error) {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)

	input, err := line.Prompt(text)
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return "", ErrAborted
		}
		return "", err
	}
	return input, nil
}

// LinePrompter reads from a plain stream, e.g. a pipe or a test buffer
type LinePrompter struct {
	in  *bufio.Reader
	out func(string)
}

// NewLinePrompter creates a prompter reading from in.
// show is called with the prompt text before reading; nil disables echoing it.
func NewLinePrompter(in io.Reader, show func(string)) *LinePrompter {
	if show == nil {
		show = func(string) {}
	}
	return &LinePrompter{in: bufio.NewReader(in), out: show}
}

// Prompt shows text and reads up to the next newline.
// A final line without a newline is accepted; empty input at EOF is ErrAborted.
func (p *LinePrompter) Prompt(text string) (string, error) {
	p.out(text)

	input, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && input != "" {
			return strings.TrimRight(input, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrAborted
		}
		return "", err
	}
	return strings.TrimRight(input, "\r\n"), nil
}
