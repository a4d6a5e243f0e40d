package ports

import (
	"context"
	"time"

	"github.com/mprisctl/mprisctl/pkg/mpris"
)

// Bus enumerates registered player services and binds endpoint handles.
type Bus interface {
	// ListPlayers returns the short identifiers of every registered MPRIS
	// service, sorted. An empty bus yields an empty slice, not an error.
	ListPlayers(ctx context.Context) ([]string, error)
	Bind(player string) (Root, Player, TrackList)
}

// Root is the / endpoint of a player service.
type Root interface {
	Identity(ctx context.Context) (string, error)
	Quit(ctx context.Context) error
}

// Player is the /Player endpoint. Status returns nil without error when the
// remote reply has an unusable shape; a transport failure is an error.
type Player interface {
	Prev(ctx context.Context) error
	Next(ctx context.Context) error
	Stop(ctx context.Context) error
	Play(ctx context.Context) error
	Pause(ctx context.Context) error
	VolumeGet(ctx context.Context) (int, error)
	VolumeSet(ctx context.Context, volume int) error
	PositionGet(ctx context.Context) (int64, error)
	PositionSet(ctx context.Context, ms int64) error
	Repeat(ctx context.Context, on bool) error
	Status(ctx context.Context) (*mpris.PlayerStatus, error)
	Metadata(ctx context.Context) (mpris.Metadata, error)
}

// TrackList is the /TrackList endpoint.
type TrackList interface {
	Length(ctx context.Context) (int, error)
	Metadata(ctx context.Context, index int) (mpris.Metadata, error)
	DelTrack(ctx context.Context, index int) error
	AddTrack(ctx context.Context, uri string, playNow bool) error
	CurrentTrack(ctx context.Context) (int, error)
	SetLoop(ctx context.Context, on bool) error
	SetRandom(ctx context.Context, on bool) error
}

// Clock returns the current wall-clock time.
type Clock interface {
	Now() time.Time
}
