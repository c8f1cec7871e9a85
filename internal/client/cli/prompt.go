package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"golang.org/x/term"
)

// prompter reads one answer at a time. The REPL and every form share it so
// that line editing and history stay consistent.
type prompter interface {
	Line(prompt string) (string, error)
	// Password reads without echo where the input allows it. The caller
	// owns the returned buffer and should wipe it.
	Password(prompt string) ([]byte, error)
	Close() error
}

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

// newPrompter picks readline for an interactive terminal and a plain line
// reader for piped input, so scripts can drive the shell.
func newPrompter(historyFile string, in io.Reader, out io.Writer) (prompter, error) {
	if f, ok := in.(*os.File); ok && isTerminal(int(f.Fd())) {
		rl, err := readline.NewEx(&readline.Config{
			Prompt:          "> ",
			HistoryFile:     historyFile,
			InterruptPrompt: "^C",
			EOFPrompt:       "exit",
		})
		if err != nil {
			return nil, fmt.Errorf("init readline: %w", err)
		}
		return &readlinePrompter{rl: rl}, nil
	}
	return &readerPrompter{reader: bufio.NewReader(in), w: out}, nil
}

type readlinePrompter struct {
	rl *readline.Instance
}

func (p *readlinePrompter) Line(prompt string) (string, error) {
	p.rl.SetPrompt(prompt)
	line, err := p.rl.Readline()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (p *readlinePrompter) Password(prompt string) ([]byte, error) {
	return p.rl.ReadPassword(prompt)
}

func (p *readlinePrompter) Close() error { return p.rl.Close() }

type readerPrompter struct {
	reader *bufio.Reader
	w      io.Writer
}

func (p *readerPrompter) Line(prompt string) (string, error) {
	return GetSimpleText(p.reader, prompt, p.w)
}

func (p *readerPrompter) Password(prompt string) ([]byte, error) {
	s, err := GetSimpleText(p.reader, prompt, p.w)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func (p *readerPrompter) Close() error { return nil }

// GetSimpleText writes prompt to w and reads a single line from reader.
// The trailing newline is trimmed. If EOF occurs after some input was read,
// the partial line is returned.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}
