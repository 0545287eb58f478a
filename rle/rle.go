// Package rle implements a byte-oriented run-length codec.
//
// The encoded form is a sequence of (run length, value) byte pairs with
// the run length capped at 255; longer runs split into multiple pairs.
// The encoder hands out output in chunks near a target size so a large
// buffer (such as a counter's raw bytes) can be transformed lazily. The
// decoder consumes only complete pairs: a truncated trailing half-pair is
// defined behavior and simply stops the stream.
package rle

// Encoder lazily run-length encodes a byte buffer into chunks.
type Encoder struct {
	input     []byte
	pos       int
	chunkSize int
	last      byte
	run       uint8
}

// NewEncoder creates an encoder over input producing chunks of roughly
// chunkSize bytes. An odd chunkSize is rounded up to keep pairs whole.
func NewEncoder(input []byte, chunkSize int) *Encoder {
	if chunkSize < 2 {
		chunkSize = 2
	}

	if chunkSize%2 == 1 {
		chunkSize++
	}

	return &Encoder{
		input:     input,
		chunkSize: chunkSize,
	}
}

// Next returns the next encoded chunk, or nil when the input is
// exhausted.
func (e *Encoder) Next() []byte {
	if e.pos >= len(e.input) && e.run == 0 {
		return nil
	}

	chunk := make([]byte, 0, e.chunkSize)

	for len(chunk) < e.chunkSize && e.pos < len(e.input) {
		b := e.input[e.pos]

		switch {
		case e.run == 0:
			e.last, e.run = b, 1
		case b == e.last && e.run < 255:
			e.run++
		default:
			chunk = append(chunk, e.run, e.last)
			e.last, e.run = b, 1
		}

		e.pos++
	}

	if e.pos >= len(e.input) && e.run > 0 {
		chunk = append(chunk, e.run, e.last)
		e.run = 0
	}

	if len(chunk) == 0 {
		return nil
	}

	return chunk
}

// Encode run-length encodes input in one shot.
func Encode(input []byte) []byte {
	out := make([]byte, 0, len(input)/2+2)

	enc := NewEncoder(input, 1<<12)
	for chunk := enc.Next(); chunk != nil; chunk = enc.Next() {
		out = append(out, chunk...)
	}

	return out
}

// Decode reverses Encode. Only complete (run, value) pairs are consumed;
// a trailing odd byte is ignored.
func Decode(input []byte) []byte {
	end := len(input) - len(input)%2

	var total int
	for i := 0; i < end; i += 2 {
		total += int(input[i])
	}

	out := make([]byte, 0, total)
	for i := 0; i < end; i += 2 {
		run, value := int(input[i]), input[i+1]
		for j := 0; j < run; j++ {
			out = append(out, value)
		}
	}

	return out
}
