// Package ui - Interactive line prompts
package ui

import (
	"bufio"
	"io"
	"strings"
)

// Prompter reads line-oriented input for interactive flows
type Prompter struct {
	in  *bufio.Reader
	out *Writer
}

// NewPrompter creates a prompter reading from in and echoing prompts to out
func NewPrompter(in io.Reader, out *Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// ReadLine prints the prompt and reads one line of input.
// The trailing newline is stripped; surrounding whitespace is kept
// (names may legitimately be blank or padded).
func (p *Prompter) ReadLine(prompt string) (string, error) {
	p.out.Print("%s", prompt)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Pause blocks until the user presses enter
func (p *Prompter) Pause() {
	p.out.Print("Press any key to continue...")
	_, _ = p.in.ReadString('\n')
	p.out.Println("")
}
