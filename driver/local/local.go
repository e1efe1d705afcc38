// Package local provides the iokit driver for bare paths on the local
// filesystem.
package local

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/gobeaver/iokit"
)

// Driver implements iokit.Driver over the local filesystem.
type Driver struct{}

// NewReader implements iokit.Driver.
func (Driver) NewReader(uri iokit.URI, opts *iokit.Options) (iokit.Reader, error) {
	return &File{uri: uri, flag: os.O_RDONLY}, nil
}

// NewWriter implements iokit.Driver.
func (Driver) NewWriter(uri iokit.URI, opts *iokit.Options) (iokit.Writer, error) {
	return &File{uri: uri, flag: os.O_WRONLY | os.O_CREATE | os.O_TRUNC}, nil
}

// File is a sequential handle on one local file, read- or write-exclusive
// for its lifetime. Not safe for concurrent use.
type File struct {
	uri  iokit.URI
	flag int
	f    *os.File
}

// Open acquires the OS file handle. For writers the parent directory is
// created if needed. Opening an already open file is a no-op.
func (f *File) Open(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if f.f != nil {
		return nil
	}

	if f.flag&os.O_CREATE != 0 {
		if err := os.MkdirAll(filepath.Dir(f.uri.Name), 0o755); err != nil {
			return &iokit.PathError{Op: "open", Path: f.uri.Name, Err: err}
		}
	}

	h, err := os.OpenFile(f.uri.Name, f.flag, 0o644)
	if err != nil {
		return mapOSError("open", f.uri.Name, err)
	}
	f.f = h
	return nil
}

// Exists opens a throwaway read handle independent of any handle this
// instance holds, reports success, and retains nothing.
func (f *File) Exists(ctx context.Context) (bool, error) {
	probe := &File{uri: f.uri, flag: os.O_RDONLY}
	if err := probe.Open(ctx); err != nil {
		if iokit.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	probe.Close()
	return true, nil
}

// Read reads however many bytes are available; short reads are legal.
func (f *File) Read(p []byte) (int, error) {
	if f.f == nil {
		return 0, &iokit.PathError{Op: "read", Path: f.uri.Name, Err: iokit.ErrNotOpen}
	}
	return f.f.Read(p)
}

// Write is all-or-nothing: either all of p is written and len(p) returned,
// or 0 is returned with an error.
func (f *File) Write(p []byte) (int, error) {
	if f.f == nil {
		return 0, &iokit.PathError{Op: "write", Path: f.uri.Name, Err: iokit.ErrNotOpen}
	}

	n, err := f.f.Write(p)
	if err != nil || n != len(p) {
		if err == nil {
			err = io.ErrShortWrite
		}
		return 0, &iokit.PathError{Op: "write", Path: f.uri.Name, Err: err}
	}
	return n, nil
}

// Close releases the handle. Closing a never-opened or already closed file
// is a no-op.
func (f *File) Close() error {
	if f.f == nil {
		return nil
	}
	err := f.f.Close()
	f.f = nil
	if err != nil {
		return &iokit.PathError{Op: "close", Path: f.uri.Name, Err: err}
	}
	return nil
}

// mapOSError maps OS errors to iokit errors
func mapOSError(op, path string, err error) error {
	if os.IsNotExist(err) {
		return &iokit.PathError{Op: op, Path: path, Err: iokit.ErrNotExist}
	}
	return &iokit.PathError{Op: op, Path: path, Err: err}
}

// Ensure File implements the required and optional interfaces
var (
	_ iokit.Reader  = (*File)(nil)
	_ iokit.Writer  = (*File)(nil)
	_ iokit.Watcher = (*File)(nil)
)
