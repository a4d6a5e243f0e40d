package core

import (
	"context"

	"github.com/mprisctl/mprisctl/internal/ports"
)

// Wildcard selects the first discovered player.
const Wildcard = "*"

// Config carries the resolved CLI configuration the core needs.
type Config struct {
	// Player is the default selection when the command line names none.
	Player string
	// Aliases maps short names to player identifiers.
	Aliases map[string]string
}

// Resolver turns a requested player identifier into a bound session.
type Resolver struct {
	Bus    ports.Bus
	Clock  ports.Clock
	Config Config
}

// Resolve selects a player and binds its endpoints. The empty string is
// treated as the wildcard. Selection order is the scanner's, which is
// sorted, so a wildcard pick is deterministic for a given discovery set.
func (r Resolver) Resolve(ctx context.Context, requested string) (*Session, error) {
	if requested == "" {
		requested = r.Config.Player
	}
	if requested == "" {
		requested = Wildcard
	}
	if alias, ok := r.Config.Aliases[requested]; ok {
		requested = alias
	}

	players, err := r.Bus.ListPlayers(ctx)
	if err != nil {
		return nil, WrapError(ExitRemote, "list players", err)
	}
	if len(players) == 0 {
		return nil, NoPlayersRunning()
	}

	chosen := ""
	if requested == Wildcard {
		chosen = players[0]
	} else {
		for _, p := range players {
			if p == requested {
				chosen = p
				break
			}
		}
		if chosen == "" {
			return nil, RequestedPlayerNotRunning(requested, players)
		}
	}

	root, playback, tracklist := r.Bus.Bind(chosen)
	session := &Session{
		Player:    chosen,
		Root:      root,
		Playback:  playback,
		TrackList: tracklist,
		Clock:     r.Clock,
	}
	session.RefreshLength(ctx)
	return session, nil
}
