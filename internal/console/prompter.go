// Package console implements the line-oriented prompts of the exam session.
//
// Two retry policies coexist. Int, TrueFalse and RequiredText re-prompt until
// the input is valid, with no retry limit. Label and YesNo never reject and
// default instead. The only errors returned are ErrInputClosed and read
// failures from the underlying reader.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/stemsi/exstem-console/internal/grading"
	"github.com/stemsi/exstem-console/internal/model"
	"github.com/stemsi/exstem-console/internal/response"
)

// ErrInputClosed is returned once the input reaches EOF.
var ErrInputClosed = errors.New("console: input closed")

// Prompter writes prompts to out and reads whole lines from in.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a Prompter over the given streams.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Out is the writer prompts and messages go to.
func (p *Prompter) Out() io.Writer {
	return p.out
}

func (p *Prompter) Println(a ...interface{}) {
	fmt.Fprintln(p.out, a...)
}

func (p *Prompter) Printf(format string, a ...interface{}) {
	fmt.Fprintf(p.out, format, a...)
}

// Fail prints the message for code on its own line.
func (p *Prompter) Fail(code response.ErrCode) {
	response.Fail(p.out, code)
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read input: %w", err)
		}
		if line == "" {
			return "", ErrInputClosed
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Line prints prompt as-is and returns the next input line without its line
// terminator.
func (p *Prompter) Line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	return p.readLine()
}

// Text asks "<prompt>: " and returns the raw answer.
func (p *Prompter) Text(prompt string) (string, error) {
	return p.Line(prompt + ": ")
}

// RequiredText asks "<prompt>: " until the answer is not blank.
func (p *Prompter) RequiredText(prompt string) (string, error) {
	for {
		s, err := p.Text(prompt)
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(s) != "" {
			return s, nil
		}
		p.Fail(response.ErrBlankAnswer)
	}
}

// Int asks prompt until the answer is a base-10 integer within [min, max].
func (p *Prompter) Int(prompt string, min, max int) (int, error) {
	for {
		s, err := p.Line(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err == nil && n >= min && n <= max {
			return n, nil
		}
		p.Fail(response.ErrInvalidNumber)
	}
}

// TrueFalse asks "<prompt> " until the answer is T, TRUE, F or FALSE in any case.
func (p *Prompter) TrueFalse(prompt string) (bool, error) {
	for {
		s, err := p.Line(prompt + " ")
		if err != nil {
			return false, err
		}
		if v, ok := grading.ParseTrueFalse(s); ok {
			return v, nil
		}
		p.Fail(response.ErrInvalidTrueFalse)
	}
}

// Label asks for a single option label. Blank input means model.DefaultLabel;
// otherwise the first character is taken, uppercased.
func (p *Prompter) Label(prompt string) (string, error) {
	s, err := p.Text(prompt)
	if err != nil {
		return "", err
	}

	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return model.DefaultLabel, nil
	}
	r, _ := utf8.DecodeRuneInString(s)
	return string(r), nil
}

// YesNo asks "<prompt>: " and reports whether the answer starts with "y".
func (p *Prompter) YesNo(prompt string) (bool, error) {
	s, err := p.Text(prompt)
	if err != nil {
		return false, err
	}
	return strings.HasPrefix(grading.Normalize(s), "y"), nil
}

var difficulties = []model.Difficulty{
	model.DifficultyEasy,
	model.DifficultyIntermediate,
	model.DifficultyHard,
}

// Difficulty shows the difficulty menu and returns the chosen tag.
func (p *Prompter) Difficulty() (model.Difficulty, error) {
	p.Println("Difficulty: 1) Easy  2) Intermediate  3) Hard")
	n, err := p.Int("Choose (1-3): ", 1, len(difficulties))
	if err != nil {
		return "", err
	}
	return difficulties[n-1], nil
}
