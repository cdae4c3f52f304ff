package charset

import (
	"fmt"
	"io"
)

// readSample reads from r in chunkSize chunks until EOF, or until max bytes
// have been accumulated. max <= 0 means unbounded (full read). The final
// chunk is clamped so the sample never exceeds max. Memory use is bounded by
// max plus one chunk buffer, independent of the source size.
func readSample(r io.Reader, chunkSize, max int) ([]byte, error) {
	chunk := make([]byte, chunkSize)
	var sample []byte

	for {
		limit := chunkSize
		if max > 0 && max-len(sample) < limit {
			limit = max - len(sample)
		}
		if limit <= 0 {
			break
		}

		n, err := r.Read(chunk[:limit])
		if n > 0 {
			sample = append(sample, chunk[:n]...)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSourceRead, err)
		}
	}
	return sample, nil
}
