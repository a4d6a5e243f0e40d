package core

import (
	"errors"
	"fmt"
	"strings"
)

// Exit codes reported to the shell.
const (
	ExitOK        = 0
	ExitRemote    = 1
	ExitUsage     = 2
	ExitNoPlayers = 3
	ExitNotFound  = 4
	ExitInterrupt = 130
)

// ErrNoTrackSelected is reported when track metadata is requested but the
// player has no current track. It is recoverable: the caller prints it and
// exits clean.
var ErrNoTrackSelected = errors.New("no track currently selected")

// CLIError carries a user-visible message and exit code.
type CLIError struct {
	Code int
	Msg  string
	Err  error
}

func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *CLIError) Unwrap() error { return e.Err }

// WrapError creates a CLIError with an underlying error.
func WrapError(code int, msg string, err error) *CLIError {
	return &CLIError{Code: code, Msg: msg, Err: err}
}

// BadInput reports an argument validation failure. Validation errors are
// raised before any remote call is made.
func BadInput(format string, args ...any) *CLIError {
	return &CLIError{Code: ExitUsage, Msg: fmt.Sprintf(format, args...)}
}

// NoPlayersRunning reports an empty bus directory.
func NoPlayersRunning() *CLIError {
	return &CLIError{Code: ExitNoPlayers, Msg: "no players running"}
}

// RequestedPlayerNotRunning reports a requested identifier that is not among
// the discovered services, listing what was found.
func RequestedPlayerNotRunning(requested string, available []string) *CLIError {
	return &CLIError{
		Code: ExitNotFound,
		Msg:  fmt.Sprintf("player %q is not running (available: %s)", requested, strings.Join(available, ", ")),
	}
}

// RemoteError wraps a failed remote call.
func RemoteError(method string, err error) *CLIError {
	return &CLIError{Code: ExitRemote, Msg: method, Err: err}
}

// ExitCode returns the CLI exit code for an error.
func ExitCode(err error) int {
	if err == nil || errors.Is(err, ErrNoTrackSelected) {
		return ExitOK
	}
	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		return cliErr.Code
	}
	return ExitRemote
}
