package iokit

import "testing"

func TestProcessOptionsSeedsFromEnvironment(t *testing.T) {
	t.Setenv("BEAVER_IOKIT_MAX_CHUNK", "16384")
	t.Setenv("BEAVER_IOKIT_DEFAULT_SUFFIX", ".bin")

	opts := processOptions()
	if opts.MaxChunk != 16384 {
		t.Errorf("MaxChunk = %d, want 16384 from environment", opts.MaxChunk)
	}
	if opts.Suffix != ".bin" {
		t.Errorf("Suffix = %q, want %q from environment", opts.Suffix, ".bin")
	}
}

func TestProcessOptionsExplicitBeatsEnvironment(t *testing.T) {
	t.Setenv("BEAVER_IOKIT_MAX_CHUNK", "16384")
	t.Setenv("BEAVER_IOKIT_DEFAULT_SUFFIX", ".bin")

	opts := processOptions(WithMaxChunk(512), WithSuffix(".txt"))
	if opts.MaxChunk != 512 {
		t.Errorf("MaxChunk = %d, want explicit 512", opts.MaxChunk)
	}
	if opts.Suffix != ".txt" {
		t.Errorf("Suffix = %q, want explicit %q", opts.Suffix, ".txt")
	}
}

func TestProcessOptionsDefaultChunk(t *testing.T) {
	opts := processOptions()
	if opts.MaxChunk != 32768 {
		t.Errorf("MaxChunk = %d, want config default 32768", opts.MaxChunk)
	}
}
