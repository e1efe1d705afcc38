package iokit

import (
	"context"
	"io"
)

// multiReader presents an ordered list of files as one continuous sequential
// stream. Segments are opened lazily through the factory, one at a time, in
// listed order; a segment that has been exhausted is never reopened.
type multiReader struct {
	uri       URI
	filenames []string
	opts      *Options

	pos int
	r   Reader

	// openCtx is the context Open was called with; segment turnover during
	// Read reuses it.
	openCtx context.Context
}

func newMultiReader(uri URI, opts *Options) *multiReader {
	return &multiReader{
		uri:       uri,
		filenames: uri.Segments,
		opts:      opts,
		openCtx:   context.Background(),
	}
}

// Open opens the segment at the current index. The index does not advance on
// failure, so a retried Open targets the same segment.
func (m *multiReader) Open(ctx context.Context) error {
	if m.pos >= len(m.filenames) {
		return &PathError{Op: "open", Path: m.uri.Raw, Err: ErrNotExist}
	}
	m.openCtx = ctx

	if m.r == nil {
		r, err := m.segmentReader(m.filenames[m.pos])
		if err != nil {
			return err
		}
		m.r = r
	}
	if err := m.r.Open(ctx); err != nil {
		m.r = nil
		return err
	}
	return nil
}

// Read fills p across segment boundaries. A zero-byte read from the current
// segment advances to the next filename; running out of filenames mid-request
// returns the partial count with io.EOF, a valid end-of-composite-stream
// outcome. A listed segment that fails to open at that point surfaces
// ErrSegmentGone.
func (m *multiReader) Read(p []byte) (int, error) {
	if m.pos >= len(m.filenames) {
		return 0, io.EOF
	}
	if m.r == nil {
		return 0, &PathError{Op: "read", Path: m.uri.Raw, Err: ErrNotOpen}
	}

	read := 0
	for {
		n, err := m.r.Read(p[read:])
		read += n
		if err != nil && err != io.EOF {
			return read, err
		}
		if read == len(p) {
			// Buffer full; a trailing EOF from the segment is not an error,
			// the next call will move on.
			return read, nil
		}
		if n == 0 {
			m.r.Close()
			m.r = nil
			m.pos++
			if m.pos >= len(m.filenames) {
				return read, io.EOF
			}
			next, err := m.segmentReader(m.filenames[m.pos])
			if err == nil {
				err = next.Open(m.openCtx)
			}
			if err != nil {
				return read, &PathError{
					Op:   "read",
					Path: m.filenames[m.pos],
					Err:  &segmentError{cause: err},
				}
			}
			m.r = next
		}
	}
}

// Exists reports whether the FIRST listed segment exists. This is a
// deliberate cheap probe: it says nothing about the remaining segments, and
// callers must not infer that the whole set is present.
func (m *multiReader) Exists(ctx context.Context) (bool, error) {
	if len(m.filenames) == 0 {
		return false, nil
	}
	r, err := m.segmentReader(m.filenames[0])
	if err != nil {
		return false, err
	}
	return r.Exists(ctx)
}

// segmentReader dispatches one segment through the factory so segments may
// themselves be local or remote. The shared suffix is already baked into the
// segment name.
func (m *multiReader) segmentReader(name string) (Reader, error) {
	return NewReader(name, WithMaxChunk(m.opts.MaxChunk))
}

// Close releases the currently open segment, if any.
func (m *multiReader) Close() error {
	if m.r == nil {
		return nil
	}
	err := m.r.Close()
	m.r = nil
	return err
}

// segmentError chains ErrSegmentGone with the open failure that caused it.
type segmentError struct {
	cause error
}

func (e *segmentError) Error() string {
	return ErrSegmentGone.Error() + ": " + e.cause.Error()
}

func (e *segmentError) Is(target error) bool { return target == ErrSegmentGone }

func (e *segmentError) Unwrap() error { return e.cause }
