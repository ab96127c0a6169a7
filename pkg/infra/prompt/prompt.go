package prompt

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/m-mizutani/depherd/pkg/domain/interfaces"
	"github.com/m-mizutani/goerr/v2"
)

// Terminal asks on out and reads one line from in. Only "y" or "Y" confirms.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
}

var _ interfaces.Confirmer = (*Terminal)(nil)

func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out}
}

type lineResult struct {
	line string
	err  error
}

// Confirm returns false with an error when ctx is cancelled or input is closed
// before an answer.
func (t *Terminal) Confirm(ctx context.Context, message string) (bool, error) {
	if _, err := color.New(color.FgYellow, color.Bold).Fprint(t.out, message); err != nil {
		return false, goerr.Wrap(err, "failed to write prompt")
	}

	ch := make(chan lineResult, 1)
	go func() {
		line, err := t.in.ReadString('\n')
		ch <- lineResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return false, goerr.Wrap(ctx.Err(), "confirmation interrupted")
	case r := <-ch:
		if r.err != nil && !(r.err == io.EOF && r.line != "") {
			return false, goerr.Wrap(r.err, "failed to read answer")
		}
		return isYes(r.line), nil
	}
}

// isYes accepts only an exact y or Y once the line ending is removed
func isYes(answer string) bool {
	a := strings.TrimRight(answer, "\r\n")
	return a == "y" || a == "Y"
}

// Static answers every confirmation with a fixed value. It backs --yes and the
// webhook server, where nobody is at a terminal.
type Static struct {
	answer bool
}

var _ interfaces.Confirmer = Static{}

func NewStatic(answer bool) Static {
	return Static{answer: answer}
}

func (s Static) Confirm(ctx context.Context, message string) (bool, error) {
	return s.answer, nil
}
