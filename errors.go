package iokit

import (
	"errors"
	"fmt"
)

// Common I/O errors
var (
	ErrNotExist     = errors.New("file does not exist")
	ErrNotOpen      = errors.New("file not open")
	ErrClosed       = errors.New("file already closed")
	ErrNotSupported = errors.New("operation not supported")

	// ErrMultiWrite rejects write dispatch on a multi-part URI: write
	// ordering across physically distinct files is undefined.
	ErrMultiWrite = errors.New("multi-part target not supported for writes")

	// ErrNoDriver reports a URI whose scheme has no registered driver.
	ErrNoDriver = errors.New("no driver registered for scheme")

	// ErrBadRemoteURI reports a remote URI with no parseable host:port.
	ErrBadRemoteURI = errors.New("malformed remote uri")

	// ErrSegmentGone reports a multi-part segment that failed to open after
	// the composite stream had committed to it. A listed file missing
	// mid-stream means the input set is corrupt, not a recoverable condition.
	ErrSegmentGone = errors.New("multi-part segment missing mid-stream")
)

// PathError records an error and the operation and file path that caused it
type PathError struct {
	Op   string
	Path string
	Err  error
}

// Error implements the error interface
func (e *PathError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error
func (e *PathError) Unwrap() error {
	return e.Err
}

// IsNotExist reports whether an error indicates that a file does not exist
func IsNotExist(err error) bool {
	return errors.Is(err, ErrNotExist)
}

// IsUnrecoverable reports whether an error belongs to the contract's
// non-recoverable surface: a composite write request, a missing driver, a
// malformed remote URI, or a segment lost mid-stream. Callers must not retry
// these.
func IsUnrecoverable(err error) bool {
	return errors.Is(err, ErrMultiWrite) ||
		errors.Is(err, ErrNoDriver) ||
		errors.Is(err, ErrBadRemoteURI) ||
		errors.Is(err, ErrSegmentGone)
}
