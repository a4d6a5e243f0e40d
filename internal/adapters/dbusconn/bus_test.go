package dbusconn

import (
	"reflect"
	"testing"
)

func TestFilterPlayerNames(t *testing.T) {
	names := []string{
		"org.freedesktop.DBus",
		"org.mpris.vlc",
		"org.mpris.audacious",
		"org.mpris.MediaPlayer2.spotify", // v2 name, not a v1 player
		"org.mpris.",
		":1.42",
		"org.gnome.Shell",
	}
	got := FilterPlayerNames(names)
	want := []string{"audacious", "vlc"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("FilterPlayerNames = %v, want %v", got, want)
	}
}

func TestFilterPlayerNamesEmpty(t *testing.T) {
	if got := FilterPlayerNames(nil); len(got) != 0 {
		t.Fatalf("expected no players, got %v", got)
	}
}
