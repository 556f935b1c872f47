// Copyright 2026 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package pngdecode

import (
	"bytes"
	"errors"
	"io"
	"math"
	"slices"

	"github.com/klauspost/compress/zlib"
)

type inflateStatus int

const (
	inflateDone inflateStatus = iota
	inflateNeedMoreOutput
)

// inflateSession is a resumable inflate of one zlib stream into an output
// buffer whose size is controlled by the caller.
type inflateSession interface {
	// step inflates until the stream ends or the output is full.
	step() (inflateStatus, error)
	// growOutput resizes the output to capacity bytes, keeping what has been written.
	growOutput(capacity int)
	// capacity is the current size of the output.
	capacity() int
	// totalOut is the number of bytes written so far.
	totalOut() int
	// bytes returns the bytes written so far.
	bytes() []byte
	close() error
}

type beginInflateFunc func(in []byte, capacity int) (inflateSession, error)

// outputBuffer is a byte buffer with a write cursor.
// len(b) is the space made available to the writer, n is what has been written.
type outputBuffer struct {
	b []byte
	n int
}

func (o *outputBuffer) grow(capacity int) {
	if capacity <= len(o.b) {
		return
	}
	b := make([]byte, capacity)
	copy(b, o.b[:o.n])
	o.b = b
}

func (o *outputBuffer) avail() []byte {
	return o.b[o.n:]
}

// zlibSession is the inflateSession backed by klauspost/compress/zlib.
type zlibSession struct {
	zr  io.ReadCloser
	out outputBuffer
}

func beginZlibInflate(in []byte, capacity int) (inflateSession, error) {
	zr, err := zlib.NewReader(bytes.NewReader(in))
	if err != nil {
		return nil, err
	}
	return &zlibSession{
		zr:  zr,
		out: outputBuffer{b: make([]byte, capacity)},
	}, nil
}

func (s *zlibSession) step() (inflateStatus, error) {
	for len(s.out.avail()) > 0 {
		n, err := s.zr.Read(s.out.avail())
		s.out.n += n
		if err == io.EOF {
			return inflateDone, nil
		}
		if err != nil {
			if errors.Is(err, io.ErrUnexpectedEOF) {
				return 0, errors.New("unexpected end of compressed stream")
			}
			return 0, err
		}
	}
	return inflateNeedMoreOutput, nil
}

func (s *zlibSession) growOutput(capacity int) {
	s.out.grow(capacity)
}

func (s *zlibSession) capacity() int {
	return len(s.out.b)
}

func (s *zlibSession) totalOut() int {
	return s.out.n
}

func (s *zlibSession) bytes() []byte {
	return s.out.b[:s.out.n]
}

func (s *zlibSession) close() error {
	return s.zr.Close()
}

type inflateOptions struct {
	// Initial output capacity.
	bufferSize int
	// Bytes added to the output capacity each time it is exhausted.
	growSize int
	// Limits for the input and output sizes.
	limitCompressed   uint64
	limitDecompressed uint64
}

const defaultInflateGrowSize = 1 << 20

// inflate decompresses a complete zlib stream.
// The output starts at opts.bufferSize and is extended by opts.growSize
// until the stream ends. The result is trimmed to the decompressed size.
func inflate(compressed []byte, opts inflateOptions, begin beginInflateFunc) ([]byte, error) {
	if uint64(len(compressed)) > opts.limitCompressed {
		return nil, newErrorf(SizeLimitExceeded, "compressed size %d exceeds limit %d", len(compressed), opts.limitCompressed)
	}
	if opts.growSize <= 0 {
		opts.growSize = defaultInflateGrowSize
	}

	// One byte over the limit lets a stream that is exactly at the limit
	// report its end without being mistaken for an oversized one.
	hardCap := uint64(math.MaxInt)
	if opts.limitDecompressed < hardCap {
		hardCap = opts.limitDecompressed + 1
	}
	bufferSize := max(opts.bufferSize, 1)
	if uint64(bufferSize) > hardCap {
		bufferSize = int(hardCap)
	}

	s, err := begin(compressed, bufferSize)
	if err != nil {
		return nil, wrapErrorf(CorruptCompressedData, err, "starting inflate")
	}
	defer s.close()

	for {
		status, err := s.step()
		if err != nil {
			return nil, wrapErrorf(CorruptCompressedData, err, "inflate failed after %d bytes", s.totalOut())
		}

		switch status {
		case inflateDone:
			if uint64(s.totalOut()) > opts.limitDecompressed {
				return nil, newErrorf(SizeLimitExceeded, "decompressed size exceeds limit %d", opts.limitDecompressed)
			}
			return slices.Clip(s.bytes()), nil
		case inflateNeedMoreOutput:
			current := uint64(s.capacity())
			if current >= hardCap {
				return nil, newErrorf(SizeLimitExceeded, "decompressed size exceeds limit %d", opts.limitDecompressed)
			}
			next := min(current+uint64(opts.growSize), hardCap)
			s.growOutput(int(next))
		}
	}
}
