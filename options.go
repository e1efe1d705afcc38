package iokit

// Option represents a configuration option
type Option func(*Options)

// Options contains all possible options for opening a file
type Options struct {
	// Suffix is appended to every segment of a multi-part URI. It has no
	// effect on single-file URIs.
	Suffix string

	// MaxChunk bounds the number of bytes handed to a backend transfer
	// primitive per call. Zero means the driver default.
	MaxChunk int
}

// WithSuffix sets the shared suffix appended to multi-part segments
func WithSuffix(suffix string) Option {
	return func(o *Options) {
		o.Suffix = suffix
	}
}

// WithMaxChunk overrides the per-call transfer chunk bound
func WithMaxChunk(n int) Option {
	return func(o *Options) {
		o.MaxChunk = n
	}
}

// processOptions seeds defaults from the environment config, then applies
// explicit options on top.
func processOptions(options ...Option) *Options {
	opts := &Options{}
	if cfg, err := GetConfig(); err == nil {
		opts.Suffix = cfg.DefaultSuffix
		opts.MaxChunk = cfg.MaxChunk
	}
	for _, option := range options {
		option(opts)
	}
	return opts
}
