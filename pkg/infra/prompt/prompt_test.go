package prompt_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/m-mizutani/depherd/pkg/infra/prompt"
	"github.com/m-mizutani/gt"
)

func TestTerminal_Confirm(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		expect bool
		hasErr bool
	}{
		{name: "lowercase y", input: "y\n", expect: true},
		{name: "uppercase Y", input: "Y\n", expect: true},
		{name: "surrounding spaces are rejected", input: "  y \n", expect: false},
		{name: "trailing space is rejected", input: "y \n", expect: false},
		{name: "crlf line ending", input: "y\r\n", expect: true},
		{name: "yes is not y", input: "yes\n", expect: false},
		{name: "n", input: "n\n", expect: false},
		{name: "empty line", input: "\n", expect: false},
		{name: "answer without newline", input: "y", expect: true},
		{name: "closed input", input: "", expect: false, hasErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			term := prompt.NewTerminal(strings.NewReader(tc.input), &out)

			ok, err := term.Confirm(context.Background(), "Approve? (y/N): ")
			if tc.hasErr {
				gt.Error(t, err)
			} else {
				gt.NoError(t, err)
			}
			gt.Value(t, ok).Equal(tc.expect)
			gt.String(t, out.String()).Contains("Approve? (y/N): ")
		})
	}
}

func TestTerminal_Confirm_Cancelled(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ok, err := prompt.NewTerminal(r, io.Discard).Confirm(ctx, "Approve? ")
	gt.Error(t, err)
	gt.False(t, ok)
}

func TestStatic(t *testing.T) {
	ok, err := prompt.NewStatic(true).Confirm(context.Background(), "")
	gt.NoError(t, err)
	gt.True(t, ok)

	ok, err = prompt.NewStatic(false).Confirm(context.Background(), "")
	gt.NoError(t, err)
	gt.False(t, ok)
}
