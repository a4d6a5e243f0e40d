package core

import (
	"bufio"
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/mprisctl/mprisctl/pkg/mpris"
)

var table = []Descriptor{
	{
		Name: "identity", Use: "identity", Short: "Print the player identity",
		Arities: []int{0},
		Handler: func(ctx context.Context, s *Session, _ []string, _ io.Reader) *Stream {
			return single(func() (string, error) {
				id, err := s.Root.Identity(ctx)
				if err != nil {
					return "", RemoteError("Identity", err)
				}
				return id, nil
			})
		},
	},
	{
		Name: "quit", Use: "quit", Short: "Ask the player to exit",
		Arities: []int{0},
		Handler: func(ctx context.Context, s *Session, _ []string, _ io.Reader) *Stream {
			return action(remote("Quit", func() error { return s.Root.Quit(ctx) }))
		},
	},
	{
		Name: "prev", Use: "prev", Short: "Skip to the previous track",
		Arities: []int{0},
		Handler: func(ctx context.Context, s *Session, _ []string, _ io.Reader) *Stream {
			return action(remote("Prev", func() error { return s.Playback.Prev(ctx) }))
		},
	},
	{
		Name: "next", Use: "next", Short: "Skip to the next track",
		Arities: []int{0},
		Handler: func(ctx context.Context, s *Session, _ []string, _ io.Reader) *Stream {
			return action(remote("Next", func() error { return s.Playback.Next(ctx) }))
		},
	},
	{
		Name: "stop", Use: "stop", Short: "Stop playback",
		Arities: []int{0},
		Handler: func(ctx context.Context, s *Session, _ []string, _ io.Reader) *Stream {
			return action(remote("Stop", func() error { return s.Playback.Stop(ctx) }))
		},
	},
	{
		Name: "play", Use: "play", Short: "Start playback",
		Arities: []int{0},
		Handler: func(ctx context.Context, s *Session, _ []string, _ io.Reader) *Stream {
			return action(remote("Play", func() error { return s.Playback.Play(ctx) }))
		},
	},
	{
		Name: "pause", Use: "pause", Short: "Pause playback",
		Arities: []int{0},
		Handler: func(ctx context.Context, s *Session, _ []string, _ io.Reader) *Stream {
			return action(remote("Pause", func() error { return s.Playback.Pause(ctx) }))
		},
	},
	{
		Name: "volume", Use: "volume [0-100]", Short: "Print or set the volume",
		Arities: []int{0, 1},
		Args:    []Arg{{Validator: isVolume(), Optional: true}},
		Handler: func(ctx context.Context, s *Session, args []string, _ io.Reader) *Stream {
			if len(args) == 0 {
				return single(func() (string, error) {
					vol, err := s.Playback.VolumeGet(ctx)
					if err != nil {
						return "", RemoteError("VolumeGet", err)
					}
					return strconv.Itoa(vol), nil
				})
			}
			vol, _ := strconv.Atoi(args[0])
			return action(remote("VolumeSet", func() error { return s.Playback.VolumeSet(ctx, vol) }))
		},
	},
	{
		Name: "position", Use: "position", Short: "Print the playback position",
		Arities: []int{0},
		Handler: func(ctx context.Context, s *Session, _ []string, _ io.Reader) *Stream {
			return single(func() (string, error) {
				pos, err := s.Playback.PositionGet(ctx)
				if err != nil {
					return "", RemoteError("PositionGet", err)
				}
				return mpris.FormatTime(pos), nil
			})
		},
	},
	{
		Name: "seek", Use: "seek <ms>", Short: "Seek to a position in milliseconds",
		Arities: []int{1},
		Args:    []Arg{{Validator: isInt()}},
		Handler: func(ctx context.Context, s *Session, args []string, _ io.Reader) *Stream {
			ms, _ := strconv.ParseInt(args[0], 10, 64)
			return action(remote("PositionSet", func() error { return s.Playback.PositionSet(ctx, ms) }))
		},
	},
	{
		Name: "repeat", Use: "repeat <true|false>", Short: "Repeat the current track",
		Arities: []int{1},
		Args:    []Arg{{Validator: isBool()}},
		Handler: func(ctx context.Context, s *Session, args []string, _ io.Reader) *Stream {
			on := args[0] == "true"
			return action(remote("Repeat", func() error { return s.Playback.Repeat(ctx, on) }))
		},
	},
	{
		Name: "status", Use: "status", Short: "Show a verbose status report",
		Arities: []int{0},
		Handler: func(ctx context.Context, s *Session, _ []string, _ io.Reader) *Stream {
			return single(func() (string, error) {
				return SynthesizeStatus(ctx, s), nil
			})
		},
	},
	{
		Name: "trackinfo", Use: "trackinfo [track#|*]", Short: "Print track metadata",
		Arities: []int{0, 1},
		Args:    []Arg{{Validator: isTrackNumOrStar(), Optional: true}},
		Handler: trackInfoStream,
	},
	{
		Name: "numtracks", Use: "numtracks", Short: "Print the number of tracks",
		Arities: []int{0},
		Handler: func(ctx context.Context, s *Session, _ []string, _ io.Reader) *Stream {
			return single(func() (string, error) {
				n, err := s.TrackList.Length(ctx)
				if err != nil {
					// Querying the length is an optional capability.
					return "unknown", nil
				}
				return strconv.Itoa(n), nil
			})
		},
	},
	{
		Name: "currenttrack", Use: "currenttrack", Short: "Print the current track number",
		Arities: []int{0},
		Handler: func(ctx context.Context, s *Session, _ []string, _ io.Reader) *Stream {
			return single(func() (string, error) {
				cur, err := s.TrackList.CurrentTrack(ctx)
				if err != nil {
					return "", RemoteError("GetCurrentTrack", err)
				}
				return strconv.Itoa(cur), nil
			})
		},
	},
	{
		Name: "addtrack", Use: "addtrack <uri|-> [true|false]", Short: "Add a track, or tracks from stdin",
		Arities: []int{1, 2},
		Args:    []Arg{{Validator: isURI()}, {Validator: isBool(), Optional: true}},
		Handler: addTrackStream,
	},
	{
		Name: "deltrack", Use: "deltrack <track#>", Short: "Delete a track",
		Arities: []int{1},
		Args:    []Arg{{Validator: isTrackNum()}},
		Handler: func(ctx context.Context, s *Session, args []string, _ io.Reader) *Stream {
			index, _ := strconv.Atoi(args[0])
			return action(func() error {
				if err := s.TrackList.DelTrack(ctx, index); err != nil {
					return RemoteError("DelTrack", err)
				}
				s.RefreshLength(ctx)
				return nil
			})
		},
	},
	{
		Name: "clear", Use: "clear", Short: "Stop playback and empty the track list",
		Arities: []int{0},
		Handler: func(ctx context.Context, s *Session, _ []string, _ io.Reader) *Stream {
			return action(func() error {
				if err := s.Playback.Stop(ctx); err != nil {
					return RemoteError("Stop", err)
				}
				for i := 0; i < s.TrackListLen; i++ {
					if err := s.TrackList.DelTrack(ctx, 0); err != nil {
						return RemoteError("DelTrack", err)
					}
				}
				s.RefreshLength(ctx)
				return nil
			})
		},
	},
	{
		Name: "loop", Use: "loop [true|false]", Short: "Print or set track-list looping",
		Arities: []int{0, 1},
		Args:    []Arg{{Validator: isBool(), Optional: true}},
		Handler: func(ctx context.Context, s *Session, args []string, _ io.Reader) *Stream {
			if len(args) == 0 {
				return single(func() (string, error) {
					st, err := s.Playback.Status(ctx)
					if err != nil || st == nil {
						return "unknown", nil
					}
					return onOff(st.RepeatList), nil
				})
			}
			on := args[0] == "true"
			return action(remote("SetLoop", func() error { return s.TrackList.SetLoop(ctx, on) }))
		},
	},
	{
		Name: "random", Use: "random [true|false]", Short: "Print or set random playback",
		Arities: []int{0, 1},
		Args:    []Arg{{Validator: isBool(), Optional: true}},
		Handler: func(ctx context.Context, s *Session, args []string, _ io.Reader) *Stream {
			if len(args) == 0 {
				return single(func() (string, error) {
					st, err := s.Playback.Status(ctx)
					if err != nil || st == nil {
						return "unknown", nil
					}
					return onOff(st.Shuffle), nil
				})
			}
			on := args[0] == "true"
			return action(remote("SetRandom", func() error { return s.TrackList.SetRandom(ctx, on) }))
		},
	},
}

func trackInfoStream(ctx context.Context, s *Session, args []string, _ io.Reader) *Stream {
	if len(args) == 1 && args[0] == "*" {
		index := 0
		return NewStream(func() (string, bool, error) {
			if s.TrackListLen == mpris.LengthUnknown || index >= s.TrackListLen {
				return "", false, nil
			}
			meta, err := s.TrackList.Metadata(ctx, index)
			if err != nil {
				return "", false, RemoteError("GetMetadata", err)
			}
			index++
			return renderMetadata(s, meta), true, nil
		})
	}
	return single(func() (string, error) {
		var index int
		if len(args) == 1 {
			index, _ = strconv.Atoi(args[0])
		} else {
			cur, err := s.TrackList.CurrentTrack(ctx)
			if err != nil {
				return "", RemoteError("GetCurrentTrack", err)
			}
			if cur < 0 {
				return "", ErrNoTrackSelected
			}
			index = cur
		}
		meta, err := s.TrackList.Metadata(ctx, index)
		if err != nil {
			return "", RemoteError("GetMetadata", err)
		}
		return renderMetadata(s, meta), nil
	})
}

func addTrackStream(ctx context.Context, s *Session, args []string, stdin io.Reader) *Stream {
	playNow := len(args) == 2 && args[1] == "true"
	uri := args[0]

	if uri != "-" {
		return action(func() error {
			if err := s.TrackList.AddTrack(ctx, uri, playNow); err != nil {
				return RemoteError("AddTrack", err)
			}
			s.RefreshLength(ctx)
			return nil
		})
	}

	// One track per stdin line, in input order; only the first added track
	// may auto-play.
	return action(func() error {
		scanner := bufio.NewScanner(stdin)
		first := true
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			if err := s.TrackList.AddTrack(ctx, line, playNow && first); err != nil {
				return RemoteError("AddTrack", err)
			}
			first = false
		}
		if err := scanner.Err(); err != nil {
			return WrapError(ExitRemote, "read stdin", err)
		}
		s.RefreshLength(ctx)
		return nil
	})
}
