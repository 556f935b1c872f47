// Copyright 2026 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package pngdecode

import (
	"encoding/binary"
	"errors"
	"io"
	"os"
)

var errShortRead = errors.New("short read")

// be32 reads a 4 byte big-endian field.
func be32(b []byte) uint32 {
	return binary.BigEndian.Uint32(b)
}

// byteReader is a bounds-checked cursor over a byte slice.
// Slices returned from it share memory with b.
// Note that this is not thread safe.
type byteReader struct {
	b   []byte
	pos int
}

func newByteReader(b []byte, pos int) *byteReader {
	return &byteReader{b: b, pos: pos}
}

func (r *byteReader) remaining() int {
	return len(r.b) - r.pos
}

func (r *byteReader) isEOF() bool {
	return r.pos >= len(r.b)
}

// readBytes returns the next n bytes without copying.
func (r *byteReader) readBytes(n int) ([]byte, error) {
	if n < 0 || n > r.remaining() {
		return nil, errShortRead
	}
	r.pos += n
	return r.b[r.pos-n : r.pos : r.pos], nil
}

func (r *byteReader) read1() (uint8, error) {
	b, err := r.readBytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *byteReader) read4() (uint32, error) {
	b, err := r.readBytes(4)
	if err != nil {
		return 0, err
	}
	return be32(b), nil
}

// readNullTerminated reads up to and including the next null byte
// and returns the bytes before it.
func (r *byteReader) readNullTerminated() ([]byte, error) {
	for i := r.pos; i < len(r.b); i++ {
		if r.b[i] == 0 {
			b := r.b[r.pos:i:i]
			r.pos = i + 1
			return b, nil
		}
	}
	return nil, errShortRead
}

// rest returns all remaining bytes.
func (r *byteReader) rest() []byte {
	b := r.b[r.pos:]
	r.pos = len(r.b)
	return b
}

func readAll(r io.Reader) ([]byte, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, wrapErrorf(ReadError, err, "reading PNG stream")
	}
	return b, nil
}

func readFile(filename string) ([]byte, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, wrapErrorf(ReadError, err, "reading %q", filename)
	}
	return b, nil
}
