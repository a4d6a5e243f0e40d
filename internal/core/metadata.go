package core

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/mprisctl/mprisctl/pkg/mpris"
)

const fiveYears = 5 * 365 * 24 * time.Hour

// FixMetadata applies field corrections for known-broken players. Some
// players populate mtime (the track duration in milliseconds) with the
// file's wall-clock modification timestamp; such a value lands within a few
// years of now and is dropped. Audacious exposes the real duration in its
// length field, in seconds, so for it the value is recovered.
func FixMetadata(player string, m mpris.Metadata, now time.Time) {
	mt, ok := m.Int("mtime")
	if !ok {
		return
	}
	age := now.Unix() - mt
	if age < 0 {
		age = -age
	}
	if time.Duration(age)*time.Second >= fiveYears {
		return
	}
	delete(m, "mtime")
	if player == "audacious" {
		if length, ok := m.Int("length"); ok {
			m["mtime"] = length * 1000
		}
	}
}

// renderMetadata formats one track's metadata as sorted "field: value"
// lines, with duration-like and bitrate fields annotated.
func renderMetadata(s *Session, m mpris.Metadata) string {
	FixMetadata(s.Player, m, s.Clock.Now())

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, formatField(k, m))
	}
	return strings.Join(lines, "\n")
}

func formatField(key string, m mpris.Metadata) string {
	switch key {
	case "mtime":
		if v, ok := m.Int(key); ok {
			return fmt.Sprintf("%s: %d (%s)", key, v, mpris.FormatTime(v))
		}
	case "time":
		if v, ok := m.Int(key); ok {
			return fmt.Sprintf("%s: %d (%s)", key, v, mpris.FormatSeconds(v*1000))
		}
	case "audio-bitrate":
		if v, ok := m.Int(key); ok {
			// Values at or above 10000 are in bits per second.
			if v >= 10000 {
				v /= 1000
			}
			return fmt.Sprintf("%s: %d kbps", key, v)
		}
	}
	return fmt.Sprintf("%s: %v", key, m[key])
}
