package core

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/mprisctl/mprisctl/internal/ports"
	"github.com/mprisctl/mprisctl/pkg/mpris"
)

type stubBus struct {
	players []string
	listErr error
	bound   string
	fixture *fixture
}

func (b *stubBus) ListPlayers(context.Context) ([]string, error) {
	return b.players, b.listErr
}

func (b *stubBus) Bind(player string) (ports.Root, ports.Player, ports.TrackList) {
	b.bound = player
	return b.fixture.root, b.fixture.player, b.fixture.tracklist
}

func newResolver(bus *stubBus, cfg Config) Resolver {
	return Resolver{Bus: bus, Clock: stubClock{now: time.Unix(1700000000, 0)}, Config: cfg}
}

func TestResolveWildcardPicksFirst(t *testing.T) {
	bus := &stubBus{players: []string{"audacious", "bmp", "vlc"}, fixture: newFixture(4)}
	session, err := newResolver(bus, Config{}).Resolve(context.Background(), "")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if session.Player != "audacious" || bus.bound != "audacious" {
		t.Fatalf("bound %q, session %q; want audacious", bus.bound, session.Player)
	}
	if session.TrackListLen != 4 {
		t.Fatalf("length probe: %d", session.TrackListLen)
	}
}

func TestResolveExplicitPlayer(t *testing.T) {
	bus := &stubBus{players: []string{"audacious", "vlc"}, fixture: newFixture(0)}
	session, err := newResolver(bus, Config{}).Resolve(context.Background(), "vlc")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if session.Player != "vlc" {
		t.Fatalf("bound %q, want vlc", session.Player)
	}
}

func TestResolveNotRunningListsAvailable(t *testing.T) {
	bus := &stubBus{players: []string{"audacious", "vlc"}, fixture: newFixture(0)}
	_, err := newResolver(bus, Config{}).Resolve(context.Background(), "rhythmbox")
	if ExitCode(err) != ExitNotFound {
		t.Fatalf("expected not-found error, got %v", err)
	}
	msg := err.Error()
	if !strings.Contains(msg, `"rhythmbox"`) || !strings.Contains(msg, "audacious, vlc") {
		t.Fatalf("message should name the request and the discovered set: %q", msg)
	}
}

func TestResolveNoPlayers(t *testing.T) {
	bus := &stubBus{fixture: newFixture(0)}
	_, err := newResolver(bus, Config{}).Resolve(context.Background(), "")
	if ExitCode(err) != ExitNoPlayers {
		t.Fatalf("expected no-players error, got %v", err)
	}
}

func TestResolveConfigDefaultAndAlias(t *testing.T) {
	bus := &stubBus{players: []string{"audacious", "vlc"}, fixture: newFixture(0)}
	cfg := Config{Player: "v", Aliases: map[string]string{"v": "vlc"}}
	session, err := newResolver(bus, cfg).Resolve(context.Background(), "")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if session.Player != "vlc" {
		t.Fatalf("bound %q, want vlc via alias", session.Player)
	}
}

func TestResolveLengthProbeFailure(t *testing.T) {
	f := newFixture(0)
	f.tracklist.lengthErr = errors.New("no such method")
	bus := &stubBus{players: []string{"vlc"}, fixture: f}
	session, err := newResolver(bus, Config{}).Resolve(context.Background(), "vlc")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if session.TrackListLen != mpris.LengthUnknown {
		t.Fatalf("TrackListLen = %d, want unknown sentinel", session.TrackListLen)
	}
}

func TestResolveListFailure(t *testing.T) {
	bus := &stubBus{listErr: errors.New("bus gone"), fixture: newFixture(0)}
	_, err := newResolver(bus, Config{}).Resolve(context.Background(), "")
	if ExitCode(err) != ExitRemote {
		t.Fatalf("expected remote error, got %v", err)
	}
}
