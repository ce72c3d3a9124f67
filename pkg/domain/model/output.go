package model

import "bytes"

// CapturedOutput holds the stdout writes of one hosting CLI invocation in arrival order.
// Only the last chunk carries the CLI's result; earlier chunks are progress output.
type CapturedOutput struct {
	Chunks [][]byte
}

// Append records a chunk. The slice is copied because writers reuse their buffers.
func (o *CapturedOutput) Append(p []byte) {
	chunk := make([]byte, len(p))
	copy(chunk, p)
	o.Chunks = append(o.Chunks, chunk)
}

// Len returns the number of captured chunks
func (o *CapturedOutput) Len() int {
	if o == nil {
		return 0
	}
	return len(o.Chunks)
}

// Last returns the final chunk as text, or an empty string if nothing was captured
func (o *CapturedOutput) Last() string {
	if o.Len() == 0 {
		return ""
	}
	return string(o.Chunks[len(o.Chunks)-1])
}

// String returns every chunk concatenated, for diagnostics
func (o *CapturedOutput) String() string {
	if o.Len() == 0 {
		return ""
	}
	return string(bytes.Join(o.Chunks, nil))
}
