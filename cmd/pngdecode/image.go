// Copyright 2026 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"image"

	"github.com/bep/pngdecode"
)

// toImage wraps the pixel rows of an 8-bit image in an image.Image.
// Paletted images are not supported, the palette is never resolved.
func toImage(h pngdecode.Header, pix []byte) (image.Image, error) {
	if h.BitDepth != 8 {
		return nil, fmt.Errorf("bit depth %d is not supported, only 8", h.BitDepth)
	}
	// Compared by division, the product of the dimensions may not fit in 64 bits.
	rowBytes := uint64(h.Width) * uint64(h.ColorType.Channels())
	if rowBytes == 0 || uint64(len(pix))%rowBytes != 0 || uint64(len(pix))/rowBytes != uint64(h.Height) {
		return nil, fmt.Errorf("got %d pixel bytes for a %dx%d %s image", len(pix), h.Width, h.Height, h.ColorType)
	}
	w, ht := int(h.Width), int(h.Height)
	rect := image.Rect(0, 0, w, ht)

	switch h.ColorType {
	case pngdecode.Grayscale:
		return &image.Gray{Pix: pix, Stride: w, Rect: rect}, nil
	case pngdecode.TrueColorAlpha:
		return &image.NRGBA{Pix: pix, Stride: 4 * w, Rect: rect}, nil
	case pngdecode.TrueColor:
		img := image.NewNRGBA(rect)
		for i, j := 0, 0; i < len(pix); i, j = i+3, j+4 {
			copy(img.Pix[j:j+3], pix[i:i+3])
			img.Pix[j+3] = 0xff
		}
		return img, nil
	case pngdecode.GrayscaleAlpha:
		img := image.NewNRGBA(rect)
		for i, j := 0, 0; i < len(pix); i, j = i+2, j+4 {
			img.Pix[j], img.Pix[j+1], img.Pix[j+2], img.Pix[j+3] = pix[i], pix[i], pix[i], pix[i+1]
		}
		return img, nil
	}

	return nil, fmt.Errorf("color type %s is not supported", h.ColorType)
}
