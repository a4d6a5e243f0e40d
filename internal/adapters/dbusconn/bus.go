// Package dbusconn adapts the D-Bus session bus to the client's ports.
package dbusconn

import (
	"context"
	"sort"
	"strings"

	"github.com/godbus/dbus/v5"
	"go.uber.org/zap"

	"github.com/mprisctl/mprisctl/internal/ports"
	"github.com/mprisctl/mprisctl/pkg/mpris"
)

// Options configures the bus connection.
type Options struct {
	// Address overrides the session bus address; empty uses the default.
	Address string
	Logger  *zap.Logger
}

// Bus implements ports.Bus over a D-Bus connection.
type Bus struct {
	conn *dbus.Conn
	log  *zap.Logger
}

// Connect opens the session bus.
func Connect(opts Options) (*Bus, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	var conn *dbus.Conn
	var err error
	if opts.Address != "" {
		conn, err = dbus.Connect(opts.Address)
	} else {
		conn, err = dbus.SessionBus()
	}
	if err != nil {
		return nil, err
	}
	return &Bus{conn: conn, log: log}, nil
}

// Close releases the connection.
func (b *Bus) Close() error {
	if b.conn != nil {
		return b.conn.Close()
	}
	return nil
}

// ListPlayers enumerates registered bus names and returns the sorted short
// identifiers of MPRIS player services.
func (b *Bus) ListPlayers(ctx context.Context) ([]string, error) {
	var names []string
	err := b.conn.BusObject().CallWithContext(ctx, "org.freedesktop.DBus.ListNames", 0).Store(&names)
	if err != nil {
		return nil, err
	}
	players := FilterPlayerNames(names)
	b.log.Debug("listed players", zap.Strings("players", players))
	return players, nil
}

// FilterPlayerNames extracts single-segment org.mpris suffixes from a bus
// name listing, sorted.
func FilterPlayerNames(names []string) []string {
	players := make([]string, 0, len(names))
	for _, name := range names {
		id, ok := strings.CutPrefix(name, mpris.ServicePrefix)
		if !ok || id == "" || strings.Contains(id, ".") {
			continue
		}
		players = append(players, id)
	}
	sort.Strings(players)
	return players
}

// Bind returns the three endpoint handles for a player identifier.
func (b *Bus) Bind(player string) (ports.Root, ports.Player, ports.TrackList) {
	service := mpris.ServicePrefix + player
	log := b.log.With(zap.String("player", player))
	return &rootEndpoint{endpoint{obj: b.conn.Object(service, mpris.RootPath), log: log}},
		&playerEndpoint{endpoint{obj: b.conn.Object(service, mpris.PlayerPath), log: log}},
		&trackListEndpoint{endpoint{obj: b.conn.Object(service, mpris.TrackListPath), log: log}}
}
