// Copyright 2026 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package pngdecode

import "bytes"

// http://www.libpng.org/pub/png/spec/1.2/PNG-Structure.html
var pngSignature = []byte{137, 80, 78, 71, 13, 10, 26, 10}

func checkSignature(b []byte) error {
	if len(b) < len(pngSignature) {
		return newInvalidFormatErrorf("file is %d bytes, too short for the PNG signature", len(b))
	}
	if !bytes.Equal(b[:len(pngSignature)], pngSignature) {
		return newInvalidFormatErrorf("the first 8 bytes do not match the PNG signature")
	}
	return nil
}

// Width and height are limited to 2^31-1.
const maxDimension = 1<<31 - 1

// allowedBitDepths lists the bit depths the PNG standard allows per color type.
var allowedBitDepths = map[ColorType][]uint8{
	Grayscale:      {1, 2, 4, 8, 16},
	TrueColor:      {8, 16},
	Paletted:       {1, 2, 4, 8},
	GrayscaleAlpha: {8, 16},
	TrueColorAlpha: {8, 16},
}

// validateHeader checks the IHDR chunk against what this decoder supports.
func validateHeader(ihdr Chunk) error {
	if ihdr.Length != ihdrLength {
		return newInvalidFormatErrorf("IHDR length is %d, want %d", ihdr.Length, ihdrLength)
	}
	h := parseHeader(ihdr.Data)

	if h.CompressionMethod != 0 {
		return newInvalidFormatErrorf("unsupported compression method %d", h.CompressionMethod)
	}
	if h.FilterMethod != 0 {
		return newInvalidFormatErrorf("unsupported filter method %d", h.FilterMethod)
	}
	if h.InterlaceMethod != 0 {
		return newInvalidFormatErrorf("unsupported interlace method %d", h.InterlaceMethod)
	}
	if h.Width == 0 || h.Height == 0 || h.Width > maxDimension || h.Height > maxDimension {
		return newInvalidFormatErrorf("invalid dimensions %dx%d", h.Width, h.Height)
	}

	depths, found := allowedBitDepths[h.ColorType]
	if !found {
		return newInvalidFormatErrorf("invalid color type %d", uint8(h.ColorType))
	}
	if bytes.IndexByte(depths, h.BitDepth) == -1 {
		return newInvalidFormatErrorf("invalid bit depth %d for color type %s", h.BitDepth, h.ColorType)
	}

	return nil
}
