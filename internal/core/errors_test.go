package core

import (
	"errors"
	"fmt"
	"testing"
)

func TestExitCode(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{nil, ExitOK},
		{ErrNoTrackSelected, ExitOK},
		{fmt.Errorf("wrapped: %w", ErrNoTrackSelected), ExitOK},
		{BadInput("bad"), ExitUsage},
		{NoPlayersRunning(), ExitNoPlayers},
		{RequestedPlayerNotRunning("x", []string{"y"}), ExitNotFound},
		{RemoteError("Play", errors.New("boom")), ExitRemote},
		{errors.New("plain"), ExitRemote},
	}
	for _, tc := range cases {
		if got := ExitCode(tc.err); got != tc.want {
			t.Fatalf("ExitCode(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestCLIErrorMessage(t *testing.T) {
	err := RemoteError("Play", errors.New("boom"))
	if err.Error() != "Play: boom" {
		t.Fatalf("wrapped message: %q", err.Error())
	}
	if !errors.Is(err, err.Err) {
		t.Fatalf("unwrap lost the cause")
	}

	plain := BadInput("argument %d is bad", 2)
	if plain.Error() != "argument 2 is bad" {
		t.Fatalf("plain message: %q", plain.Error())
	}
}
