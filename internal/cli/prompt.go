package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNoInput is returned when input ends before a line could be read.
var ErrNoInput = errors.New("no input")

// Prompter asks the user a question and returns the line they typed,
// with only the line terminator removed.
type Prompter interface {
	Prompt(message string) (string, error)
}

// ConsolePrompter reads answers from an interactive input stream.
type ConsolePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsolePrompter creates a prompter reading from in and printing to out.
func NewConsolePrompter(in io.Reader, out io.Writer) *ConsolePrompter {
	return &ConsolePrompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Prompt prints message on its own line and reads one line of input.
func (p *ConsolePrompter) Prompt(message string) (string, error) {
	fmt.Fprintln(p.out, message)
	return p.readLine()
}

// Confirm asks a yes/no question with the given default.
// Returns true for yes, false for no.
func (p *ConsolePrompter) Confirm(prompt string, defaultYes bool) (bool, error) {
	suffix := "[y/N]"
	if defaultYes {
		suffix = "[Y/n]"
	}

	fmt.Fprintf(p.out, "%s %s ", prompt, suffix)

	response, err := p.readLine()
	if err != nil && !errors.Is(err, ErrNoInput) {
		return false, err
	}

	response = strings.TrimSpace(strings.ToLower(response))

	if response == "" {
		return defaultYes, nil
	}

	return response == "y" || response == "yes", nil
}

// readLine reads up to and including '\n', then strips "\n" or "\r\n".
// A final line without a terminator is returned as-is.
func (p *ConsolePrompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("reading response: %w", err)
		}
		if line == "" {
			return "", ErrNoInput
		}
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// ScriptedPrompter answers prompts from a fixed list, in order.
type ScriptedPrompter struct {
	Answers []string
	Asked   []string // Prompts shown so far
}

// NewScriptedPrompter creates a prompter that returns answers in order.
func NewScriptedPrompter(answers ...string) *ScriptedPrompter {
	return &ScriptedPrompter{Answers: answers}
}

// Prompt records message and returns the next answer.
func (p *ScriptedPrompter) Prompt(message string) (string, error) {
	p.Asked = append(p.Asked, message)
	if len(p.Answers) == 0 {
		return "", ErrNoInput
	}
	answer := p.Answers[0]
	p.Answers = p.Answers[1:]
	return answer, nil
}
