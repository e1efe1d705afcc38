package iokit

import (
	"context"
	"io"
	"sync"
)

// LocalScheme is the registry key for the fallback driver handling bare
// local paths.
const LocalScheme = "file"

var (
	driverMu sync.RWMutex
	drivers  = make(map[string]Driver)
)

// RegisterDriver registers a driver for a scheme. Drivers normally register
// themselves in an init func; import them for that side effect. Registering
// the same scheme twice replaces the earlier driver.
func RegisterDriver(scheme string, d Driver) {
	driverMu.Lock()
	defer driverMu.Unlock()
	drivers[scheme] = d
}

func lookupDriver(op, path, scheme string) (Driver, error) {
	driverMu.RLock()
	d, ok := drivers[scheme]
	driverMu.RUnlock()

	if !ok {
		return nil, &PathError{Op: op, Path: path, Err: ErrNoDriver}
	}
	return d, nil
}

// NewReader constructs a reader for a raw URI without opening it. A comma in
// the URI selects the multi-part reader, a registered scheme prefix selects
// that driver, anything else is a local path.
func NewReader(raw string, options ...Option) (Reader, error) {
	opts := processOptions(options...)
	uri := ParseURI(raw, opts.Suffix)

	switch uri.Kind() {
	case KindMulti:
		return newMultiReader(uri, opts), nil
	case KindRemote:
		d, err := lookupDriver("open", raw, uri.Scheme)
		if err != nil {
			return nil, err
		}
		return d.NewReader(uri, opts)
	default:
		d, err := lookupDriver("open", raw, LocalScheme)
		if err != nil {
			return nil, err
		}
		return d.NewReader(uri, opts)
	}
}

// NewWriter constructs a writer for a raw URI without opening it. Multi-part
// targets are rejected with ErrMultiWrite.
func NewWriter(raw string, options ...Option) (Writer, error) {
	opts := processOptions(options...)
	uri := ParseURI(raw, opts.Suffix)

	switch uri.Kind() {
	case KindMulti:
		return nil, &PathError{Op: "write", Path: raw, Err: ErrMultiWrite}
	case KindRemote:
		d, err := lookupDriver("write", raw, uri.Scheme)
		if err != nil {
			return nil, err
		}
		return d.NewWriter(uri, opts)
	default:
		d, err := lookupDriver("write", raw, LocalScheme)
		if err != nil {
			return nil, err
		}
		return d.NewWriter(uri, opts)
	}
}

// OpenReader constructs and opens a reader in one step.
func OpenReader(ctx context.Context, raw string, options ...Option) (Reader, error) {
	r, err := NewReader(raw, options...)
	if err != nil {
		return nil, err
	}
	if err := r.Open(ctx); err != nil {
		return nil, err
	}
	return r, nil
}

// OpenWriter constructs and opens a writer in one step.
func OpenWriter(ctx context.Context, raw string, options ...Option) (Writer, error) {
	w, err := NewWriter(raw, options...)
	if err != nil {
		return nil, err
	}
	if err := w.Open(ctx); err != nil {
		return nil, err
	}
	return w, nil
}

// Exists probes a raw URI for existence without retaining any handle. For a
// multi-part URI only the first segment is checked.
func Exists(ctx context.Context, raw string, options ...Option) (bool, error) {
	r, err := NewReader(raw, options...)
	if err != nil {
		return false, err
	}
	return r.Exists(ctx)
}

// ReadAll reads the entire stream behind a raw URI into memory. Use for
// small files only.
func ReadAll(ctx context.Context, raw string, options ...Option) ([]byte, error) {
	r, err := OpenReader(ctx, raw, options...)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

// WriteAll writes data to a raw URI in a single all-or-nothing call.
func WriteAll(ctx context.Context, raw string, data []byte, options ...Option) error {
	w, err := OpenWriter(ctx, raw, options...)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
