// Copyright 2026 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package pngdecode

import "strconv"

// ColorType is the IHDR color type.
type ColorType uint8

const (
	Grayscale      ColorType = 0
	TrueColor      ColorType = 2
	Paletted       ColorType = 3
	GrayscaleAlpha ColorType = 4
	TrueColorAlpha ColorType = 6
)

func (c ColorType) String() string {
	switch c {
	case Grayscale:
		return "Grayscale"
	case TrueColor:
		return "TrueColor"
	case Paletted:
		return "Paletted"
	case GrayscaleAlpha:
		return "GrayscaleAlpha"
	case TrueColorAlpha:
		return "TrueColorAlpha"
	default:
		return "ColorType(" + strconv.Itoa(int(c)) + ")"
	}
}

// Channels returns the number of samples per pixel, or 0 for an invalid color type.
func (c ColorType) Channels() int {
	switch c {
	case Grayscale, Paletted:
		return 1
	case GrayscaleAlpha:
		return 2
	case TrueColor:
		return 3
	case TrueColorAlpha:
		return 4
	default:
		return 0
	}
}

const ihdrLength = 13

// Header holds the IHDR fields.
type Header struct {
	Width             uint32
	Height            uint32
	BitDepth          uint8
	ColorType         ColorType
	CompressionMethod uint8
	FilterMethod      uint8
	InterlaceMethod   uint8
}

// parseHeader reads the fixed IHDR layout. data must be at least 13 bytes.
func parseHeader(data []byte) Header {
	return Header{
		Width:             be32(data[0:4]),
		Height:            be32(data[4:8]),
		BitDepth:          data[8],
		ColorType:         ColorType(data[9]),
		CompressionMethod: data[10],
		FilterMethod:      data[11],
		InterlaceMethod:   data[12],
	}
}

// Header returns the IHDR fields of f.
func (f *File) Header() (Header, error) {
	if f == nil || len(f.chunks) == 0 {
		return Header{}, newErrorf(NotLoaded, "no PNG file has been parsed")
	}
	return parseHeader(f.chunks[0].Data), nil
}
