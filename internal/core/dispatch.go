package core

import (
	"context"
	"io"
)

// Descriptor declares one command: its accepted arities, positional
// validators and handler. The full table lives in commands.go.
type Descriptor struct {
	Name    string
	Use     string
	Short   string
	Arities []int
	Args    []Arg
	Handler func(ctx context.Context, s *Session, args []string, stdin io.Reader) *Stream
}

// Commands returns the command table.
func Commands() []Descriptor { return table }

// Dispatch validates the arguments for a named command and returns its lazy
// output stream. No remote call happens until the stream is consumed.
func Dispatch(ctx context.Context, s *Session, name string, args []string, stdin io.Reader) (*Stream, error) {
	for _, d := range table {
		if d.Name != name {
			continue
		}
		if err := Validate(d, s, args); err != nil {
			return nil, err
		}
		return d.Handler(ctx, s, args, stdin), nil
	}
	return nil, BadInput("unknown command %q", name)
}

func remote(method string, fn func() error) func() error {
	return func() error {
		if err := fn(); err != nil {
			return RemoteError(method, err)
		}
		return nil
	}
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
