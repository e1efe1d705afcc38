// Package sftp provides the iokit driver for remote filesystems reached over
// SFTP, addressed as sftp://host:port/path.
//
// Connections are cached per host:port for the lifetime of the process and
// shared by every handle targeting that host. Credentials come from the
// environment (see iokit.Config).
package sftp

import (
	"context"
	"io"
	"os"
	"path"

	"github.com/gobeaver/iokit"
)

// Scheme is the URI scheme this driver registers under.
const Scheme = "sftp"

// Driver implements iokit.Driver over SFTP.
type Driver struct{}

// NewReader implements iokit.Driver.
func (Driver) NewReader(uri iokit.URI, opts *iokit.Options) (iokit.Reader, error) {
	return &File{uri: uri, maxChunk: opts.MaxChunk}, nil
}

// NewWriter implements iokit.Driver.
func (Driver) NewWriter(uri iokit.URI, opts *iokit.Options) (iokit.Writer, error) {
	return &File{uri: uri, maxChunk: opts.MaxChunk, writeMode: true}, nil
}

// remote is the subset of the SFTP client surface the driver uses. Tests
// substitute it through the connection cache's dial function.
type remote interface {
	Stat(path string) (os.FileInfo, error)
	Open(path string) (io.ReadCloser, error)
	Create(path string) (io.WriteCloser, error)
	MkdirAll(path string) error
}

// File is a sequential handle on one remote file, read- or write-exclusive
// for its lifetime. The connection behind it belongs to the process-wide
// cache and survives Close; only the remote file handle is owned. Not safe
// for concurrent use.
type File struct {
	uri       iokit.URI
	maxChunk  int
	writeMode bool

	rc io.ReadCloser
	wc io.WriteCloser
}

// Open resolves the cached connection for the URI's host:port (dialing on
// first use) and opens the remote file. Read-mode opens confirm the remote
// file exists first; write-mode opens trust the caller and skip the probe.
func (f *File) Open(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if f.rc != nil || f.wc != nil {
		return nil
	}
	if f.uri.Host == "" || f.uri.Name == "" {
		return &iokit.PathError{Op: "open", Path: f.uri.Raw, Err: iokit.ErrBadRemoteURI}
	}

	r, err := conns.client(f.uri.Host)
	if err != nil {
		return &iokit.PathError{Op: "open", Path: f.uri.Raw, Err: err}
	}

	if f.writeMode {
		if err := r.MkdirAll(path.Dir(f.uri.Name)); err != nil {
			return mapSFTPError("open", f.uri.Name, err)
		}
		h, err := r.Create(f.uri.Name)
		if err != nil {
			return mapSFTPError("open", f.uri.Name, err)
		}
		f.wc = h
		return nil
	}

	if _, err := r.Stat(f.uri.Name); err != nil {
		return mapSFTPError("open", f.uri.Name, err)
	}
	h, err := r.Open(f.uri.Name)
	if err != nil {
		return mapSFTPError("open", f.uri.Name, err)
	}
	f.rc = h
	return nil
}

// Exists probes the remote file with a stat call; nothing is retained.
func (f *File) Exists(ctx context.Context) (bool, error) {
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	default:
	}

	if f.uri.Host == "" || f.uri.Name == "" {
		return false, &iokit.PathError{Op: "exists", Path: f.uri.Raw, Err: iokit.ErrBadRemoteURI}
	}
	r, err := conns.client(f.uri.Host)
	if err != nil {
		return false, &iokit.PathError{Op: "exists", Path: f.uri.Raw, Err: err}
	}

	if _, err := r.Stat(f.uri.Name); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, mapSFTPError("exists", f.uri.Name, err)
	}
	return true, nil
}

// Read transfers up to len(p) bytes through the bounded chunk loop. End of
// stream is io.EOF with the partial count; short reads are legal.
func (f *File) Read(p []byte) (int, error) {
	if f.rc == nil {
		return 0, &iokit.PathError{Op: "read", Path: f.uri.Name, Err: iokit.ErrNotOpen}
	}
	return transfer(p, f.maxChunk, f.rc.Read)
}

// Write is all-or-nothing: either all of p reaches the remote side and
// len(p) is returned, or 0 is returned with an error.
func (f *File) Write(p []byte) (int, error) {
	if f.wc == nil {
		return 0, &iokit.PathError{Op: "write", Path: f.uri.Name, Err: iokit.ErrNotOpen}
	}

	n, err := transfer(p, f.maxChunk, f.wc.Write)
	if n != len(p) {
		if err == nil || err == io.EOF {
			err = io.ErrShortWrite
		}
		return 0, &iokit.PathError{Op: "write", Path: f.uri.Name, Err: err}
	}
	return n, nil
}

// Close releases the remote file handle. The connection stays in the
// process-wide cache.
func (f *File) Close() error {
	var err error
	if f.rc != nil {
		err = f.rc.Close()
		f.rc = nil
	} else if f.wc != nil {
		err = f.wc.Close()
		f.wc = nil
	}
	if err != nil {
		return &iokit.PathError{Op: "close", Path: f.uri.Name, Err: err}
	}
	return nil
}

// mapSFTPError maps SFTP errors to iokit errors
func mapSFTPError(op, path string, err error) error {
	if os.IsNotExist(err) {
		return &iokit.PathError{Op: op, Path: path, Err: iokit.ErrNotExist}
	}
	return &iokit.PathError{Op: op, Path: path, Err: err}
}

// Ensure File implements the required interfaces
var (
	_ iokit.Reader = (*File)(nil)
	_ iokit.Writer = (*File)(nil)
)
