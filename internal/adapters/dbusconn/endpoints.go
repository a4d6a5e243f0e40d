package dbusconn

import (
	"context"

	"github.com/godbus/dbus/v5"
	"go.uber.org/zap"

	"github.com/mprisctl/mprisctl/pkg/mpris"
)

type endpoint struct {
	obj dbus.BusObject
	log *zap.Logger
}

func (e endpoint) call(ctx context.Context, method string, args ...any) *dbus.Call {
	e.log.Debug("remote call",
		zap.String("path", string(e.obj.Path())),
		zap.String("method", method))
	return e.obj.CallWithContext(ctx, mpris.Interface+"."+method, 0, args...)
}

type rootEndpoint struct{ endpoint }

func (e *rootEndpoint) Identity(ctx context.Context) (string, error) {
	var id string
	if err := e.call(ctx, "Identity").Store(&id); err != nil {
		return "", err
	}
	return id, nil
}

func (e *rootEndpoint) Quit(ctx context.Context) error {
	return e.call(ctx, "Quit").Err
}

type playerEndpoint struct{ endpoint }

func (e *playerEndpoint) Prev(ctx context.Context) error  { return e.call(ctx, "Prev").Err }
func (e *playerEndpoint) Next(ctx context.Context) error  { return e.call(ctx, "Next").Err }
func (e *playerEndpoint) Stop(ctx context.Context) error  { return e.call(ctx, "Stop").Err }
func (e *playerEndpoint) Play(ctx context.Context) error  { return e.call(ctx, "Play").Err }
func (e *playerEndpoint) Pause(ctx context.Context) error { return e.call(ctx, "Pause").Err }

func (e *playerEndpoint) VolumeGet(ctx context.Context) (int, error) {
	var vol int32
	if err := e.call(ctx, "VolumeGet").Store(&vol); err != nil {
		return 0, err
	}
	return int(vol), nil
}

func (e *playerEndpoint) VolumeSet(ctx context.Context, volume int) error {
	return e.call(ctx, "VolumeSet", int32(volume)).Err
}

func (e *playerEndpoint) PositionGet(ctx context.Context) (int64, error) {
	var pos int32
	if err := e.call(ctx, "PositionGet").Store(&pos); err != nil {
		return 0, err
	}
	return int64(pos), nil
}

func (e *playerEndpoint) PositionSet(ctx context.Context, ms int64) error {
	return e.call(ctx, "PositionSet", int32(ms)).Err
}

func (e *playerEndpoint) Repeat(ctx context.Context, on bool) error {
	return e.call(ctx, "Repeat", on).Err
}

// Status decodes the GetStatus 4-tuple. At least one player is known to
// return a bare integer here; any shape mismatch is reported as an absent
// snapshot, not an error.
func (e *playerEndpoint) Status(ctx context.Context) (*mpris.PlayerStatus, error) {
	call := e.call(ctx, "GetStatus")
	if call.Err != nil {
		return nil, call.Err
	}
	var raw struct {
		State       int32
		Random      int32
		RepeatTrack int32
		RepeatList  int32
	}
	if err := call.Store(&raw); err != nil {
		e.log.Debug("non-compliant GetStatus reply", zap.Error(err))
		return nil, nil
	}
	return &mpris.PlayerStatus{
		State:       int(raw.State),
		Shuffle:     raw.Random != 0,
		RepeatTrack: raw.RepeatTrack != 0,
		RepeatList:  raw.RepeatList != 0,
	}, nil
}

func (e *playerEndpoint) Metadata(ctx context.Context) (mpris.Metadata, error) {
	return storeMetadata(e.call(ctx, "GetMetadata"))
}

type trackListEndpoint struct{ endpoint }

func (e *trackListEndpoint) Length(ctx context.Context) (int, error) {
	var n int32
	if err := e.call(ctx, "GetLength").Store(&n); err != nil {
		return 0, err
	}
	return int(n), nil
}

func (e *trackListEndpoint) Metadata(ctx context.Context, index int) (mpris.Metadata, error) {
	return storeMetadata(e.call(ctx, "GetMetadata", int32(index)))
}

func (e *trackListEndpoint) DelTrack(ctx context.Context, index int) error {
	return e.call(ctx, "DelTrack", int32(index)).Err
}

func (e *trackListEndpoint) AddTrack(ctx context.Context, uri string, playNow bool) error {
	return e.call(ctx, "AddTrack", uri, playNow).Err
}

func (e *trackListEndpoint) CurrentTrack(ctx context.Context) (int, error) {
	var cur int32
	if err := e.call(ctx, "GetCurrentTrack").Store(&cur); err != nil {
		return 0, err
	}
	return int(cur), nil
}

func (e *trackListEndpoint) SetLoop(ctx context.Context, on bool) error {
	return e.call(ctx, "SetLoop", on).Err
}

func (e *trackListEndpoint) SetRandom(ctx context.Context, on bool) error {
	return e.call(ctx, "SetRandom", on).Err
}

func storeMetadata(call *dbus.Call) (mpris.Metadata, error) {
	if call.Err != nil {
		return nil, call.Err
	}
	var raw map[string]dbus.Variant
	if err := call.Store(&raw); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}
	meta := make(mpris.Metadata, len(raw))
	for key, variant := range raw {
		meta[key] = flatten(variant.Value())
	}
	return meta, nil
}

// flatten unwraps nested variants so core sees plain values.
func flatten(v any) any {
	if inner, ok := v.(dbus.Variant); ok {
		return flatten(inner.Value())
	}
	return v
}
