// Copyright 2026 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package pngdecode

import (
	"math"
	"math/bits"
)

// Scanline filter types.
const (
	ftNone    = 0
	ftSub     = 1
	ftUp      = 2
	ftAverage = 3
	ftPaeth   = 4
)

// layout describes the scanline geometry of an image.
type layout struct {
	height        int
	scanlineWidth int // in bytes, without the filter type byte
	bpp           int // the filter stride
}

// filteredSize is the size of the decompressed stream, one filter byte per row included.
func (l layout) filteredSize() int {
	return l.height * (l.scanlineWidth + 1)
}

func (l layout) pixelSize() int {
	return l.height * l.scanlineWidth
}

func newLayout(width, height uint32, bitDepth uint8, colorType ColorType) (layout, error) {
	channels := colorType.Channels()
	if channels == 0 {
		return layout{}, newInvalidFormatErrorf("invalid color type %d", uint8(colorType))
	}
	if bitDepth == 0 {
		return layout{}, newInvalidFormatErrorf("invalid bit depth 0")
	}

	// width*bitsPerPixel fits in 38 bits, the row count product may not fit in 64.
	bitsPerPixel := uint64(channels) * uint64(bitDepth)
	scanlineWidth := (uint64(width)*bitsPerPixel + 7) / 8
	hi, filteredSize := bits.Mul64(uint64(height), scanlineWidth+1)
	if hi != 0 || filteredSize > math.MaxInt {
		return layout{}, newErrorf(SizeLimitExceeded, "%dx%d image with %d bits per pixel is too large", width, height, bitsPerPixel)
	}

	return layout{
		height:        int(height),
		scanlineWidth: int(scanlineWidth),
		bpp:           max(1, int(bitsPerPixel/8)),
	}, nil
}

// Unfilter reverses the per-scanline filters of a decompressed, non-interlaced
// PNG image stream and returns the pixel rows without their filter type bytes.
// Bytes in data after the last scanline are ignored.
func Unfilter(data []byte, width, height uint32, bitDepth uint8, colorType ColorType) ([]byte, error) {
	l, err := newLayout(width, height, bitDepth, colorType)
	if err != nil {
		return nil, err
	}
	return unfilter(data, l)
}

func unfilter(data []byte, l layout) ([]byte, error) {
	if len(data) < l.filteredSize() {
		return nil, newErrorf(TruncatedStream, "image data is %d bytes, need %d", len(data), l.filteredSize())
	}

	var (
		sw   = l.scanlineWidth
		bpp  = l.bpp
		pix  = make([]byte, l.pixelSize())
		pr   = make([]byte, sw) // The row above row 0 is all zeros.
		head = min(bpp, sw)
	)

	for y := 0; y < l.height; y++ {
		rec := data[y*(sw+1) : (y+1)*(sw+1)]
		ft, in := rec[0], rec[1:]
		cr := pix[y*sw : (y+1)*sw]

		// All arithmetic is on uint8 and wraps modulo 256.
		switch ft {
		case ftNone:
			copy(cr, in)
		case ftSub:
			copy(cr[:head], in[:head])
			for i := bpp; i < sw; i++ {
				cr[i] = in[i] + cr[i-bpp]
			}
		case ftUp:
			for i := 0; i < sw; i++ {
				cr[i] = in[i] + pr[i]
			}
		case ftAverage:
			for i := 0; i < head; i++ {
				cr[i] = in[i] + pr[i]/2
			}
			for i := bpp; i < sw; i++ {
				cr[i] = in[i] + uint8((int(cr[i-bpp])+int(pr[i]))/2)
			}
		case ftPaeth:
			for i := 0; i < head; i++ {
				cr[i] = in[i] + paeth(0, pr[i], 0)
			}
			for i := bpp; i < sw; i++ {
				cr[i] = in[i] + paeth(cr[i-bpp], pr[i], pr[i-bpp])
			}
		default:
			return nil, newErrorf(InvalidFilterType, "row %d: filter type %d", y, ft)
		}

		pr = cr
	}

	return pix, nil
}

// paeth returns whichever of a (left), b (above) and c (upper left) is
// closest to a + b - c, preferring a, then b, then c.
func paeth(a, b, c uint8) uint8 {
	p := int(a) + int(b) - int(c)
	pa := abs(p - int(a))
	pb := abs(p - int(b))
	pc := abs(p - int(c))

	if pa <= pb && pa <= pc {
		return a
	} else if pb <= pc {
		return b
	}
	return c
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
