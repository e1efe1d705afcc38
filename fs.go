package iokit

import (
	"context"
	"io"
)

// ============================================================================
// Core Interfaces (Interface Segregation)
// ============================================================================

// Reader provides strictly sequential read access to one logical file.
//
// An instance owns at most one underlying handle, acquired by Open and
// released by Close. Handles are read-exclusive for their lifetime; there is
// no mode switching and no seeking. Read follows io.Reader semantics: short
// reads are legal and must be retried by the caller, and end of stream is
// reported as io.EOF with whatever bytes were gathered.
//
// Instances are not safe for concurrent use.
type Reader interface {
	// Open acquires the underlying handle. Opening an already open instance
	// is a no-op. A failed Open leaves nothing to release; the caller decides
	// whether to recover.
	Open(ctx context.Context) error

	// Exists reports whether the target exists, probing with a throwaway
	// handle independent of any handle this instance holds. A false report
	// is not an error.
	Exists(ctx context.Context) (bool, error)

	io.ReadCloser
}

// Writer provides strictly sequential write access to one file.
//
// Write is all-or-nothing per call: it returns either (len(p), nil) or
// (0, err), never a partial count. Handles are write-exclusive for their
// lifetime. Instances are not safe for concurrent use.
type Writer interface {
	// Open acquires the underlying handle, creating or truncating the target.
	Open(ctx context.Context) error

	io.WriteCloser
}

// Driver constructs backend handles for URIs of one scheme. Constructors do
// no I/O; a handle touches its backend only on Open.
type Driver interface {
	NewReader(uri URI, opts *Options) (Reader, error)
	NewWriter(uri URI, opts *Options) (Writer, error)
}

// ============================================================================
// Optional Capability Interfaces
// ============================================================================
// Backends may expose optional capabilities. Use a type assertion:
//
//	if w, ok := r.(iokit.Watcher); ok {
//	    token, err := w.Watch(ctx)
//	}

// Watcher indicates the backend can report changes to the underlying file.
type Watcher interface {
	// Watch returns a single-use token signalled when the file changes.
	Watch(ctx context.Context) (ChangeToken, error)
}
