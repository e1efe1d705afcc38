// Package iokit provides a uniform sequential byte-stream abstraction over
// multiple storage backends: the local filesystem, remote filesystems reached
// through an SFTP connection, and virtual concatenations of several physical
// files presented as one logical stream.
//
// It is meant as the I/O boundary of a data-processing pipeline whose inputs
// arrive as local paths, sftp://host:port/path URIs, or comma-separated
// multi-part file sets. Code above this layer never branches on the backend.
//
// # Backends
//
// Backends are drivers registered by scheme. Import the ones you need for
// their side effect:
//
//	import (
//	    _ "github.com/gobeaver/iokit/driver/local"
//	    _ "github.com/gobeaver/iokit/driver/sftp"
//	)
//
// A URI containing a comma is always a multi-part read target, regardless of
// scheme. Otherwise a scheme://... prefix selects the registered driver, and
// anything else is a local path.
//
// # Basic Usage
//
//	ctx := context.Background()
//
//	r, err := iokit.OpenReader(ctx, "part-0,part-1,part-2", iokit.WithSuffix(".bin"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//
//	data, err := io.ReadAll(r)
//
// Writes go through the same dispatch, except that multi-part targets are
// rejected with [ErrMultiWrite]: write ordering across physically distinct
// files is undefined.
//
//	w, err := iokit.OpenWriter(ctx, "sftp://node1:22/data/out.bin")
//
// # Contracts
//
// All I/O is synchronous and strictly sequential; there is no seeking and no
// buffering beyond what the OS provides. A [Reader] or [Writer] instance owns
// one underlying handle, is read- or write-exclusive for its lifetime, and is
// not safe for concurrent use. Distinct instances are independent; the only
// shared state is the SFTP driver's per-host connection cache.
package iokit
