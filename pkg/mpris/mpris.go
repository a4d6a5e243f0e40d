// Package mpris holds the MPRIS v1 wire constants and the loosely typed
// values exchanged with a player over the org.freedesktop.MediaPlayer
// interface.
package mpris

import (
	"fmt"
	"strconv"
)

// Service naming and object paths as fixed by the MPRIS v1 specification.
const (
	ServicePrefix = "org.mpris."
	Interface     = "org.freedesktop.MediaPlayer"

	RootPath      = "/"
	PlayerPath    = "/Player"
	TrackListPath = "/TrackList"
)

// Playback states as reported in the first field of GetStatus.
const (
	StatePlaying = 0
	StatePaused  = 1
	StateStopped = 2
)

// LengthUnknown marks a track list whose length the player cannot report.
const LengthUnknown = -1

// PlayerStatus is the decoded 4-tuple returned by GetStatus.
type PlayerStatus struct {
	State       int
	Shuffle     bool
	RepeatTrack bool
	RepeatList  bool
}

// StateName returns the human name for the playback state.
func (s PlayerStatus) StateName() string {
	switch s.State {
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateStopped:
		return "stopped"
	}
	return fmt.Sprintf("state(%d)", s.State)
}

// Metadata is the per-track field map. Values come from an untrusted remote
// and may be any numeric width or a string; use the typed getters.
type Metadata map[string]any

// Int returns a metadata field as int64, accepting every integer width the
// bus can deliver plus numeric strings.
func (m Metadata) Int(key string) (int64, bool) {
	val, ok := m[key]
	if !ok {
		return 0, false
	}
	switch v := val.(type) {
	case int:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		return int64(v), true
	case byte:
		return int64(v), true
	case float64:
		return int64(v), true
	case string:
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n, true
		}
	}
	return 0, false
}

// String returns a metadata field as a string, if it is one.
func (m Metadata) String(key string) (string, bool) {
	val, ok := m[key]
	if !ok {
		return "", false
	}
	s, ok := val.(string)
	return s, ok
}

// FormatTime renders milliseconds as minutes:seconds.milliseconds.
func FormatTime(ms int64) string {
	return fmt.Sprintf("%d:%02d.%03d", ms/60000, ms%60000/1000, ms%1000)
}

// FormatSeconds renders milliseconds as minutes:seconds.
func FormatSeconds(ms int64) string {
	return fmt.Sprintf("%d:%02d", ms/60000, ms%60000/1000)
}
