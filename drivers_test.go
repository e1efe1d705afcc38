package iokit

import (
	"bytes"
	"context"
	"io"
	"os"
	"sync"
)

func init() {
	// Register test drivers
	RegisterDriver(LocalScheme, testLocalDriver{})
	RegisterDriver("mem", testMem)
}

// testLocalDriver is a simple os-backed driver for testing dispatch and the
// multi-file reader against real files.
type testLocalDriver struct{}

func (testLocalDriver) NewReader(uri URI, opts *Options) (Reader, error) {
	return &testLocalFile{name: uri.Name}, nil
}

func (testLocalDriver) NewWriter(uri URI, opts *Options) (Writer, error) {
	return &testLocalFile{name: uri.Name, write: true}, nil
}

type testLocalFile struct {
	name  string
	write bool
	f     *os.File
}

func (t *testLocalFile) Open(ctx context.Context) error {
	if t.f != nil {
		return nil
	}
	var (
		f   *os.File
		err error
	)
	if t.write {
		f, err = os.Create(t.name)
	} else {
		f, err = os.Open(t.name)
	}
	if err != nil {
		if os.IsNotExist(err) {
			return &PathError{Op: "open", Path: t.name, Err: ErrNotExist}
		}
		return &PathError{Op: "open", Path: t.name, Err: err}
	}
	t.f = f
	return nil
}

func (t *testLocalFile) Exists(ctx context.Context) (bool, error) {
	_, err := os.Stat(t.name)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (t *testLocalFile) Read(p []byte) (int, error) {
	if t.f == nil {
		return 0, ErrNotOpen
	}
	return t.f.Read(p)
}

func (t *testLocalFile) Write(p []byte) (int, error) {
	if t.f == nil {
		return 0, ErrNotOpen
	}
	return t.f.Write(p)
}

func (t *testLocalFile) Close() error {
	if t.f == nil {
		return nil
	}
	err := t.f.Close()
	t.f = nil
	return err
}

// testMemDriver is an in-memory driver registered under the "mem" scheme. It
// counts opens per name so tests can assert a segment is never reopened.
type testMemDriver struct {
	mu    sync.Mutex
	files map[string][]byte
	opens map[string]int
}

var testMem = &testMemDriver{
	files: make(map[string][]byte),
	opens: make(map[string]int),
}

func (d *testMemDriver) put(name string, data []byte) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.files[name] = data
}

func (d *testMemDriver) reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.files = make(map[string][]byte)
	d.opens = make(map[string]int)
}

func (d *testMemDriver) openCount(name string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.opens[name]
}

func (d *testMemDriver) NewReader(uri URI, opts *Options) (Reader, error) {
	return &testMemFile{d: d, name: uri.Name}, nil
}

func (d *testMemDriver) NewWriter(uri URI, opts *Options) (Writer, error) {
	return &testMemFile{d: d, name: uri.Name, write: true}, nil
}

type testMemFile struct {
	d     *testMemDriver
	name  string
	write bool

	r   *bytes.Reader
	buf *bytes.Buffer
}

func (f *testMemFile) Open(ctx context.Context) error {
	if f.r != nil || f.buf != nil {
		return nil
	}
	if f.write {
		f.buf = &bytes.Buffer{}
		return nil
	}

	f.d.mu.Lock()
	data, ok := f.d.files[f.name]
	if ok {
		f.d.opens[f.name]++
	}
	f.d.mu.Unlock()

	if !ok {
		return &PathError{Op: "open", Path: f.name, Err: ErrNotExist}
	}
	f.r = bytes.NewReader(data)
	return nil
}

func (f *testMemFile) Exists(ctx context.Context) (bool, error) {
	f.d.mu.Lock()
	defer f.d.mu.Unlock()
	_, ok := f.d.files[f.name]
	return ok, nil
}

func (f *testMemFile) Read(p []byte) (int, error) {
	if f.r == nil {
		return 0, ErrNotOpen
	}
	return f.r.Read(p)
}

func (f *testMemFile) Write(p []byte) (int, error) {
	if f.buf == nil {
		return 0, ErrNotOpen
	}
	return f.buf.Write(p)
}

func (f *testMemFile) Close() error {
	if f.buf != nil {
		f.d.put(f.name, f.buf.Bytes())
		f.buf = nil
	}
	f.r = nil
	return nil
}

var _ io.ReadCloser = (*testMemFile)(nil)
