package core

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mprisctl/mprisctl/pkg/mpris"
)

func TestRenderStatusFull(t *testing.T) {
	f := statusFields{
		status:  &mpris.PlayerStatus{State: mpris.StatePlaying, Shuffle: true},
		current: 2,
		haveCur: true,
		pos:     61000,
		havePos: true,
		meta: mpris.Metadata{
			"mtime":       int64(185000),
			"tracknumber": int32(3),
			"artist":      "Someone",
			"title":       "A Song",
			"album":       "The Album",
		},
	}
	want := strings.Join([]string{
		"[playing 3/7] @ 1:01/3:05 - #3",
		"  artist: Someone",
		"  title: A Song",
		"  album: The Album",
		"[repeat off] [random on] [loop off]",
	}, "\n")
	if got := renderStatus(f, 7); got != want {
		t.Fatalf("full render:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderStatusUnknownIndex(t *testing.T) {
	f := statusFields{status: &mpris.PlayerStatus{State: mpris.StateStopped}}
	got := renderStatus(f, 7)
	if !strings.HasPrefix(got, "[stopped ?/7]") {
		t.Fatalf("unknown index render: %q", got)
	}
}

func TestRenderStatusUnknownPosition(t *testing.T) {
	f := statusFields{meta: mpris.Metadata{"mtime": int64(185000)}}
	got := renderStatus(f, mpris.LengthUnknown)
	if got != "@ ?/3:05" {
		t.Fatalf("unknown position render: %q", got)
	}
}

func TestRenderStatusBareTrackNumber(t *testing.T) {
	f := statusFields{meta: mpris.Metadata{"tracknumber": int32(4)}}
	got := renderStatus(f, mpris.LengthUnknown)
	if got != "#4" {
		t.Fatalf("bare track number render: %q", got)
	}
}

func TestRenderStatusNothingKnown(t *testing.T) {
	if got := renderStatus(statusFields{}, mpris.LengthUnknown); got != "" {
		t.Fatalf("empty fields rendered %q", got)
	}
}

// Every combination of present fields must render without artifacts such as
// empty brackets or dangling separators.
func TestRenderStatusAllCombinations(t *testing.T) {
	for mask := 0; mask < 16; mask++ {
		var f statusFields
		length := mpris.LengthUnknown
		if mask&1 != 0 {
			f.status = &mpris.PlayerStatus{State: mpris.StatePaused}
		}
		if mask&2 != 0 {
			f.current, f.haveCur = 1, true
		}
		if mask&4 != 0 {
			length = 5
		}
		if mask&8 != 0 {
			f.pos, f.havePos = 30000, true
			f.meta = mpris.Metadata{"mtime": int64(90000), "tracknumber": int32(2), "title": "x"}
		}

		got := renderStatus(f, length)
		for _, bad := range []string{"[]", "[ ", " ]", "@ \n", "- \n"} {
			if strings.Contains(got, bad) {
				t.Fatalf("mask %d: artifact %q in %q", mask, bad, got)
			}
		}
		for _, line := range strings.Split(got, "\n") {
			if strings.HasSuffix(line, "-") || strings.HasSuffix(line, "@") || strings.HasSuffix(line, " ") {
				t.Fatalf("mask %d: dangling separator in line %q", mask, line)
			}
		}
		if got != "" && strings.Contains(got, "\n\n") {
			t.Fatalf("mask %d: blank line in %q", mask, got)
		}
	}
}

func TestSynthesizeStatusIsolatesFailures(t *testing.T) {
	f := newFixture(5)
	f.player.statusErr = errors.New("no GetStatus")
	f.player.posErr = errors.New("no PositionGet")
	f.player.metaErr = errors.New("no GetMetadata")
	f.tracklist.current = 2

	got := SynthesizeStatus(context.Background(), f.session)
	if got != "[3/5]" {
		t.Fatalf("degraded render: %q", got)
	}
}

func TestSynthesizeStatusEverythingFails(t *testing.T) {
	f := newFixture(0)
	f.session.TrackListLen = mpris.LengthUnknown
	f.player.statusErr = errors.New("x")
	f.player.posErr = errors.New("x")
	f.player.metaErr = errors.New("x")
	f.tracklist.currentErr = errors.New("x")

	if got := SynthesizeStatus(context.Background(), f.session); got != "" {
		t.Fatalf("expected empty report, got %q", got)
	}
}

func TestSynthesizeStatusIgnoresNegativeCurrent(t *testing.T) {
	f := newFixture(5)
	f.tracklist.current = -1
	f.player.statusErr = errors.New("x")
	f.player.posErr = errors.New("x")
	f.player.metaErr = errors.New("x")

	if got := SynthesizeStatus(context.Background(), f.session); got != "[?/5]" {
		t.Fatalf("negative current render: %q", got)
	}
}
