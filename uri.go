package iokit

import "strings"

// Kind identifies which backend a URI dispatches to.
type Kind int

const (
	// KindLocal is a bare path on the local filesystem.
	KindLocal Kind = iota
	// KindRemote is a scheme://host:port/path URI served by a registered driver.
	KindRemote
	// KindMulti is a comma-separated list of paths read as one stream.
	KindMulti
)

// URI is a parsed storage location. Immutable once built.
type URI struct {
	// Raw is the string the URI was parsed from.
	Raw string

	// Scheme is the driver scheme ("sftp"), empty for local paths.
	Scheme string

	// Host is the host:port portion of a remote URI, empty otherwise.
	Host string

	// Name is the backend-local name: Raw with any scheme://host:port prefix
	// stripped. Empty when a remote URI carries no path after the authority.
	Name string

	// Segments holds the comma-split parts of a multi-part URI in listed
	// order, each with Suffix already appended. Empty segments are dropped.
	// Nil for single-file URIs.
	Segments []string

	// Suffix is the shared suffix appended to every multi-part segment.
	Suffix string
}

// ParseURI parses a bare path, a scheme-prefixed remote path, or a
// comma-separated multi-part list sharing an optional suffix. A comma anywhere
// in raw selects a multi-part URI, regardless of scheme. Commas inside path
// components cannot be escaped; that is a known limitation of the grammar.
func ParseURI(raw, suffix string) URI {
	u := URI{Raw: raw, Suffix: suffix}

	if strings.Contains(raw, ",") {
		for _, part := range strings.Split(raw, ",") {
			if part == "" {
				continue
			}
			u.Segments = append(u.Segments, part+suffix)
		}
		return u
	}

	scheme, rest, ok := strings.Cut(raw, "://")
	if !ok || scheme == "" {
		u.Name = raw
		return u
	}

	u.Scheme = scheme
	if host, path, ok := strings.Cut(rest, "/"); ok {
		u.Host = host
		u.Name = "/" + path
	} else {
		// No path separator after the authority. The host stays as written
		// and the name stays empty; drivers reject the open.
		u.Host = rest
	}
	return u
}

// Kind reports which backend the URI dispatches to.
func (u URI) Kind() Kind {
	switch {
	case len(u.Segments) > 0 || strings.Contains(u.Raw, ","):
		return KindMulti
	case u.Scheme != "":
		return KindRemote
	default:
		return KindLocal
	}
}

// String returns the raw form the URI was parsed from.
func (u URI) String() string { return u.Raw }
