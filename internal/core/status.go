package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/mprisctl/mprisctl/pkg/mpris"
)

// statusFields holds whatever the independent status queries produced.
// Every field may be absent; the synthesizer renders what it has.
type statusFields struct {
	status  *mpris.PlayerStatus
	current int
	haveCur bool
	pos     int64
	havePos bool
	meta    mpris.Metadata
}

// SynthesizeStatus queries the player's status snapshot, current track,
// position and metadata independently and composes a report from whatever
// succeeded. A failing or non-compliant query degrades its own field only;
// the report is well-formed for every combination of present fields.
func SynthesizeStatus(ctx context.Context, s *Session) string {
	var f statusFields

	// Each query is isolated on purpose. Status may legitimately come back
	// nil when the player returns a scalar instead of the 4-tuple.
	if st, err := s.Playback.Status(ctx); err == nil {
		f.status = st
	}
	if cur, err := s.TrackList.CurrentTrack(ctx); err == nil && cur >= 0 {
		f.current, f.haveCur = cur, true
	}
	if pos, err := s.Playback.PositionGet(ctx); err == nil {
		f.pos, f.havePos = pos, true
	}
	if meta, err := s.Playback.Metadata(ctx); err == nil && len(meta) > 0 {
		f.meta = meta
		FixMetadata(s.Player, f.meta, s.Clock.Now())
	}

	return renderStatus(f, s.TrackListLen)
}

func renderStatus(f statusFields, length int) string {
	duration, haveDur := f.meta.Int("mtime")
	trackNo, haveNo := f.meta.Int("tracknumber")
	lenKnown := length != mpris.LengthUnknown

	havePlayerInfo := f.status != nil || f.haveCur || lenKnown
	haveSongInfo := f.havePos || haveDur || haveNo

	var lines []string

	head := ""
	if havePlayerInfo {
		parts := []string{}
		if f.status != nil {
			parts = append(parts, f.status.StateName())
		}
		switch {
		case f.haveCur && lenKnown:
			parts = append(parts, fmt.Sprintf("%d/%d", f.current+1, length))
		case f.haveCur:
			parts = append(parts, fmt.Sprintf("%d", f.current+1))
		case lenKnown:
			parts = append(parts, fmt.Sprintf("?/%d", length))
		}
		head = "[" + strings.Join(parts, " ") + "]"
	}
	if haveSongInfo {
		song := ""
		if f.havePos || haveDur {
			pos := "?"
			if f.havePos {
				pos = mpris.FormatSeconds(f.pos)
			}
			if haveDur {
				song = "@ " + pos + "/" + mpris.FormatSeconds(duration)
			} else {
				song = "@ " + pos
			}
		}
		if haveNo {
			if song != "" {
				song += " - "
			}
			song += fmt.Sprintf("#%d", trackNo)
		}
		if head != "" {
			head += " " + song
		} else {
			head = song
		}
	}
	if head != "" {
		lines = append(lines, head)
	}

	for _, field := range []string{"artist", "title", "album"} {
		if val, ok := f.meta.String(field); ok && val != "" {
			lines = append(lines, fmt.Sprintf("  %s: %s", field, val))
		}
	}

	if f.status != nil {
		lines = append(lines, fmt.Sprintf("[repeat %s] [random %s] [loop %s]",
			onOff(f.status.RepeatTrack), onOff(f.status.Shuffle), onOff(f.status.RepeatList)))
	}

	return strings.Join(lines, "\n")
}
