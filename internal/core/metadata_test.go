package core

import (
	"strings"
	"testing"
	"time"

	"github.com/mprisctl/mprisctl/pkg/mpris"
)

func TestFixMetadataDropsTimestampMtime(t *testing.T) {
	now := time.Unix(1700000000, 0)

	// A wall-clock timestamp from last year is not a duration.
	m := mpris.Metadata{"mtime": now.Unix() - 365*24*3600}
	FixMetadata("vlc", m, now)
	if _, ok := m.Int("mtime"); ok {
		t.Fatalf("timestamp mtime survived: %v", m)
	}

	// A plausible duration is left alone.
	m = mpris.Metadata{"mtime": int64(185000)}
	FixMetadata("vlc", m, now)
	if v, ok := m.Int("mtime"); !ok || v != 185000 {
		t.Fatalf("duration mtime modified: %v", m)
	}

	// A timestamp slightly in the future is a timestamp too.
	m = mpris.Metadata{"mtime": now.Unix() + 3600}
	FixMetadata("vlc", m, now)
	if _, ok := m.Int("mtime"); ok {
		t.Fatalf("future timestamp mtime survived: %v", m)
	}
}

func TestFixMetadataAudaciousRecovery(t *testing.T) {
	now := time.Unix(1700000000, 0)
	m := mpris.Metadata{"mtime": now.Unix(), "length": int64(185)}
	FixMetadata("audacious", m, now)
	v, ok := m.Int("mtime")
	if !ok || v != 185000 {
		t.Fatalf("recovered mtime = %v, %v; want 185000", v, ok)
	}

	// Without a length field there is nothing to recover from.
	m = mpris.Metadata{"mtime": now.Unix()}
	FixMetadata("audacious", m, now)
	if _, ok := m.Int("mtime"); ok {
		t.Fatalf("mtime survived without length: %v", m)
	}
}

func TestRenderMetadataSortedAndAnnotated(t *testing.T) {
	f := newFixture(0)
	m := mpris.Metadata{
		"title":         "A Song",
		"mtime":         int64(61234),
		"time":          int64(61),
		"audio-bitrate": int64(128000),
		"artist":        "Someone",
	}
	got := renderMetadata(f.session, m)
	want := strings.Join([]string{
		"artist: Someone",
		"audio-bitrate: 128 kbps",
		"mtime: 61234 (1:01.234)",
		"time: 61 (1:01)",
		"title: A Song",
	}, "\n")
	if got != want {
		t.Fatalf("render:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatFieldBitrateAlreadyKbps(t *testing.T) {
	m := mpris.Metadata{"audio-bitrate": int64(128)}
	if got := formatField("audio-bitrate", m); got != "audio-bitrate: 128 kbps" {
		t.Fatalf("kbps bitrate: %q", got)
	}
}
