package core

// Stream is a lazy, finite, non-restartable sequence of output chunks.
// Remote side effects run while the stream is consumed, in strict order;
// abandoning a stream early leaves the remaining steps unexecuted.
type Stream struct {
	next func() (string, bool, error)
	done bool
	err  error
}

// NewStream wraps a pull function. The function returns the next chunk and
// true, or false when the sequence is exhausted; an error ends the stream.
func NewStream(next func() (string, bool, error)) *Stream {
	return &Stream{next: next}
}

// Next returns the next chunk. After it reports false, check Err.
func (s *Stream) Next() (string, bool) {
	if s.done {
		return "", false
	}
	chunk, ok, err := s.next()
	if err != nil {
		s.done = true
		s.err = err
		return "", false
	}
	if !ok {
		s.done = true
	}
	return chunk, ok
}

// Err reports the error that ended the stream, if any.
func (s *Stream) Err() error { return s.err }

// Drain consumes the whole stream, passing each chunk to emit.
func (s *Stream) Drain(emit func(string) error) error {
	for {
		chunk, ok := s.Next()
		if !ok {
			return s.Err()
		}
		if err := emit(chunk); err != nil {
			return err
		}
	}
}

// action is a stream with no chunks whose side effects run on first pull.
func action(fn func() error) *Stream {
	return NewStream(func() (string, bool, error) {
		return "", false, fn()
	})
}

// single is a stream producing exactly one chunk, computed lazily.
func single(fn func() (string, error)) *Stream {
	fired := false
	return NewStream(func() (string, bool, error) {
		if fired {
			return "", false, nil
		}
		fired = true
		chunk, err := fn()
		if err != nil {
			return "", false, err
		}
		return chunk, true, nil
	})
}
