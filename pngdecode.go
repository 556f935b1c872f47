// Copyright 2026 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

// Package pngdecode decodes non-interlaced PNG images into their raw,
// unfiltered pixel bytes.
package pngdecode

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"time"
)

// File is a parsed PNG file: a validated signature and IHDR, and the
// chunk stream in file order. The zero value is not loaded.
type File struct {
	chunks []Chunk
}

// Parse validates b and splits it into chunks.
// The chunks share memory with b.
func Parse(b []byte) (*File, error) {
	if err := checkSignature(b); err != nil {
		return nil, err
	}
	chunks, err := parseChunks(b)
	if err != nil {
		return nil, err
	}
	if err := validateHeader(chunks[0]); err != nil {
		return nil, err
	}
	return &File{chunks: chunks}, nil
}

// Chunks returns the chunks of f in file order.
func (f *File) Chunks() []Chunk {
	if f == nil {
		return nil
	}
	return f.chunks
}

// Options contains the options for the Decode function.
type Options struct {
	// The Reader to read the PNG file from.
	// It is read fully before any decoding starts.
	R io.Reader

	// Warnf will be called for each warning.
	Warnf func(string, ...any)

	// Timeout is the maximum time the decoder will spend on an image.
	// If set to 0, the decoder will not time out.
	Timeout time.Duration

	// InflateBufferSize is the initial size of the decompression buffer.
	// Default value is the decompressed size implied by the IHDR chunk,
	// capped by what the IDAT data can expand to.
	InflateBufferSize int

	// InflateGrowSize is the number of bytes added to the decompression
	// buffer each time it runs full.
	// Default value is 1 MiB.
	InflateGrowSize int

	// LimitDecompressedSize is the maximum size in bytes of the decompressed image data.
	// Default value is 512 MiB.
	LimitDecompressedSize uint64

	// LimitCompressedSize is the maximum size in bytes of the IDAT data.
	// Default value is math.MaxUint32.
	LimitCompressedSize uint64
}

// DecodeResult contains the result of a Decode operation.
type DecodeResult struct {
	Header Header

	// Pixels holds Header.Height rows of unfiltered samples, no filter bytes.
	// Samples narrower than 8 bits are packed, 16 bit samples are big-endian.
	Pixels []byte

	// File gives access to the chunks, palette and metadata.
	File *File
}

// DecodeFile reads the PNG file filename and decodes it. opts.R is ignored.
func DecodeFile(filename string, opts Options) (DecodeResult, error) {
	b, err := readFile(filename)
	if err != nil {
		return DecodeResult{}, err
	}
	opts.R = bytes.NewReader(b)
	return Decode(opts)
}

// Decode reads a PNG image from opts.R and returns its pixels.
// On error the result is always empty.
func Decode(opts Options) (result DecodeResult, err error) {
	errFromRecover := func(r any) error {
		if r == nil {
			return nil
		}
		if errp, ok := r.(error); ok {
			return wrapErrorf(InvalidFormat, errp, "decoder panic")
		}
		return newInvalidFormatErrorf("decoder panic: %v", r)
	}

	defer func() {
		if err2 := errFromRecover(recover()); err2 != nil {
			result, err = DecodeResult{}, err2
		}
	}()

	if opts.R == nil {
		return result, newErrorf(ReadError, "no reader provided")
	}

	const (
		defaultLimitDecompressedSize = 512 << 20
		defaultLimitCompressedSize   = math.MaxUint32
	)

	if opts.Warnf == nil {
		opts.Warnf = func(string, ...any) {}
	}
	if opts.LimitDecompressedSize == 0 {
		opts.LimitDecompressedSize = defaultLimitDecompressedSize
	}
	if opts.LimitCompressedSize == 0 {
		opts.LimitCompressedSize = defaultLimitCompressedSize
	}
	if opts.InflateGrowSize <= 0 {
		opts.InflateGrowSize = defaultInflateGrowSize
	}

	dec := &decoder{opts: opts}

	if opts.Timeout <= 0 {
		return dec.decode()
	}

	type decodeOutcome struct {
		result DecodeResult
		err    error
	}

	done := make(chan decodeOutcome, 1)
	go func() {
		var o decodeOutcome
		defer func() {
			if err2 := errFromRecover(recover()); err2 != nil {
				o = decodeOutcome{err: err2}
			}
			done <- o
		}()
		o.result, o.err = dec.decode()
	}()

	select {
	case <-time.After(opts.Timeout):
		return DecodeResult{}, fmt.Errorf("timed out after %s", opts.Timeout)
	case o := <-done:
		return o.result, o.err
	}
}

type decoder struct {
	opts Options
}

func (d *decoder) decode() (DecodeResult, error) {
	b, err := readAll(d.opts.R)
	if err != nil {
		return DecodeResult{}, err
	}

	f, err := Parse(b)
	if err != nil {
		return DecodeResult{}, err
	}
	h, err := f.Header()
	if err != nil {
		return DecodeResult{}, err
	}
	d.warnChunks(f, h)

	l, err := newLayout(h.Width, h.Height, h.BitDepth, h.ColorType)
	if err != nil {
		return DecodeResult{}, err
	}
	if uint64(l.filteredSize()) > d.opts.LimitDecompressedSize {
		return DecodeResult{}, newErrorf(SizeLimitExceeded, "%dx%d image needs %d bytes of image data, limit is %d", h.Width, h.Height, l.filteredSize(), d.opts.LimitDecompressedSize)
	}

	compressed, err := f.CompressedData()
	if err != nil {
		return DecodeResult{}, err
	}

	bufferSize := d.opts.InflateBufferSize
	if bufferSize <= 0 {
		bufferSize = defaultInflateBufferSize(l.filteredSize(), len(compressed))
	}
	filtered, err := inflate(compressed, inflateOptions{
		bufferSize:        bufferSize,
		growSize:          d.opts.InflateGrowSize,
		limitCompressed:   d.opts.LimitCompressedSize,
		limitDecompressed: d.opts.LimitDecompressedSize,
	}, beginZlibInflate)
	if err != nil {
		return DecodeResult{}, err
	}
	if extra := len(filtered) - l.filteredSize(); extra > 0 {
		d.opts.Warnf("ignoring %d bytes after the last scanline", extra)
	}

	pixels, err := unfilter(filtered, l)
	if err != nil {
		return DecodeResult{}, err
	}

	return DecodeResult{
		Header: h,
		Pixels: pixels,
		File:   f,
	}, nil
}

func (d *decoder) warnChunks(f *File, h Header) {
	var (
		hasPLTE     bool
		idatRuns    int
		inIDATBlock bool
	)
	for _, c := range f.chunks {
		switch c.Type {
		case ChunkIHDR, ChunkIEND:
		case ChunkPLTE:
			hasPLTE = true
		case ChunkIDAT:
			if !inIDATBlock {
				idatRuns++
			}
		default:
			if !c.IsAncillary() {
				d.opts.Warnf("skipping unknown critical chunk %s at offset %d", c.Type, c.Offset)
			}
		}
		inIDATBlock = c.Type == ChunkIDAT
	}

	if idatRuns > 1 {
		d.opts.Warnf("IDAT chunks are not consecutive")
	}
	if h.ColorType == Paletted && !hasPLTE {
		d.opts.Warnf("paletted image has no PLTE chunk")
	}
}

// DEFLATE expands at most about 1032:1.
const maxDeflateRatio = 1032

// defaultInflateBufferSize is the IHDR-implied size, unless the compressed
// data is too small to ever produce that much.
func defaultInflateBufferSize(filteredSize, compressedSize int) int {
	upper := uint64(compressedSize)*maxDeflateRatio + 64
	if upper < uint64(filteredSize) {
		return int(upper)
	}
	return filteredSize
}
