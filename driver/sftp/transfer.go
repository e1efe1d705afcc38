package sftp

import (
	"errors"
	"syscall"
)

// DefaultMaxChunk bounds the bytes handed to a transfer primitive per call.
// It matches the default SFTP packet payload size.
const DefaultMaxChunk = 32 * 1024

// transfer drives op over p in slices of at most maxChunk bytes, accumulating
// transferred bytes until the request is satisfied. An interrupted call is
// retried on the same slice without consuming the buffer. Zero progress
// without an error ends the loop: for reads that is end of stream, and the
// partial count is returned with no error. Any other error is returned with
// the count accumulated so far.
func transfer(p []byte, maxChunk int, op func([]byte) (int, error)) (int, error) {
	if maxChunk <= 0 {
		maxChunk = DefaultMaxChunk
	}

	done := 0
	for done < len(p) {
		limit := len(p) - done
		if limit > maxChunk {
			limit = maxChunk
		}

		n, err := op(p[done : done+limit])
		done += n
		if err != nil {
			if errors.Is(err, syscall.EINTR) {
				// Interrupted; retry the remainder of this slice.
				continue
			}
			return done, err
		}
		if n == 0 {
			break
		}
	}
	return done, nil
}
