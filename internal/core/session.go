package core

import (
	"context"

	"github.com/mprisctl/mprisctl/internal/ports"
	"github.com/mprisctl/mprisctl/pkg/mpris"
)

// Session binds one selected player for the lifetime of the invocation. It
// owns the three endpoint handles and caches the last known track-list
// length.
type Session struct {
	Player    string
	Root      ports.Root
	Playback  ports.Player
	TrackList ports.TrackList
	Clock     ports.Clock

	// TrackListLen is mpris.LengthUnknown when the player does not support
	// querying its track list.
	TrackListLen int
}

// RefreshLength re-reads the track-list length. Many otherwise compliant
// players cannot report it; a failing call sets the unknown sentinel rather
// than surfacing an error.
func (s *Session) RefreshLength(ctx context.Context) {
	n, err := s.TrackList.Length(ctx)
	if err != nil {
		s.TrackListLen = mpris.LengthUnknown
		return
	}
	s.TrackListLen = n
}
