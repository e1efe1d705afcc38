package iokit

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func TestDispatchReader(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain path", "some/file.txt", "local"},
		{"registered scheme", "mem://node1:9000/file.txt", "mem"},
		{"comma list", "a.txt,b.txt", "multi"},
		{"comma beats scheme", "mem://h:1/a,mem://h:1/b", "multi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewReader(tt.raw)
			if err != nil {
				t.Fatalf("NewReader(%q): %v", tt.raw, err)
			}

			var got string
			switch r.(type) {
			case *testLocalFile:
				got = "local"
			case *testMemFile:
				got = "mem"
			case *multiReader:
				got = "multi"
			default:
				t.Fatalf("NewReader(%q) returned unexpected type %T", tt.raw, r)
			}
			if got != tt.want {
				t.Errorf("NewReader(%q) dispatched to %s, want %s", tt.raw, got, tt.want)
			}
		})
	}
}

func TestDispatchWriterRejectsMulti(t *testing.T) {
	_, err := NewWriter("part-0,part-1")
	if !errors.Is(err, ErrMultiWrite) {
		t.Fatalf("NewWriter on multi-part target: got %v, want ErrMultiWrite", err)
	}
	if !IsUnrecoverable(err) {
		t.Errorf("composite write rejection should be unrecoverable")
	}
}

func TestDispatchUnregisteredScheme(t *testing.T) {
	_, err := NewReader("hdfs://node1:9000/file")
	if !errors.Is(err, ErrNoDriver) {
		t.Fatalf("got %v, want ErrNoDriver", err)
	}
	if !IsUnrecoverable(err) {
		t.Errorf("missing driver should be unrecoverable")
	}

	if _, err := NewWriter("hdfs://node1:9000/file"); !errors.Is(err, ErrNoDriver) {
		t.Errorf("write dispatch: got %v, want ErrNoDriver", err)
	}
}

func TestWriteThenReadBack(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "roundtrip.bin")
	payload := bytes.Repeat([]byte("payload!"), 1000)

	if err := WriteAll(ctx, path, payload); err != nil {
		t.Fatalf("WriteAll: %v", err)
	}
	got, err := ReadAll(ctx, path)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("read back %d bytes, want %d matching bytes", len(got), len(payload))
	}
}

func TestExists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "probe.txt")

	ok, err := Exists(ctx, path)
	if err != nil || ok {
		t.Fatalf("Exists before write: got (%v, %v), want (false, nil)", ok, err)
	}

	if err := WriteAll(ctx, path, []byte("x")); err != nil {
		t.Fatalf("WriteAll: %v", err)
	}

	ok, err = Exists(ctx, path)
	if err != nil || !ok {
		t.Errorf("Exists after write: got (%v, %v), want (true, nil)", ok, err)
	}
}

func TestOpenReaderMissingFile(t *testing.T) {
	_, err := OpenReader(context.Background(), filepath.Join(t.TempDir(), "missing"))
	if !IsNotExist(err) {
		t.Fatalf("got %v, want ErrNotExist", err)
	}
}
