// Copyright 2026 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package pngdecode_test

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"
	"time"

	"github.com/bep/pngdecode"
)

func FuzzDecode(f *testing.F) {
	gray := image.NewGray(image.Rect(0, 0, 8, 8))
	for i := range gray.Pix {
		gray.Pix[i] = uint8(i * 3)
	}
	nrgba := image.NewNRGBA(image.Rect(0, 0, 5, 3))
	for i := range nrgba.Pix {
		nrgba.Pix[i] = uint8(i * 17)
	}
	paletted := image.NewPaletted(image.Rect(0, 0, 9, 2), color.Palette{color.Black, color.White, color.Gray{Y: 128}})
	for i := range paletted.Pix {
		paletted.Pix[i] = uint8(i % 3)
	}

	for _, img := range []image.Image{gray, nrgba, paletted} {
		f.Add(encodePNG(f, img))
	}
	f.Add(pngdecode.SimplePNG(2, 1, 8, 0, []byte{1, 50, 10}))
	f.Add(pngdecode.BuildPNG(
		pngdecode.NewTestChunk("IHDR", pngdecode.IHDRData(1, 1, 8, 0)),
		pngdecode.NewTestChunk("zTXt", append([]byte("k\x00\x00"), pngdecode.ZlibCompress([]byte("text"))...)),
		pngdecode.NewTestChunk("IDAT", pngdecode.ZlibCompress([]byte{0, 1})),
		pngdecode.NewTestChunk("IEND", nil),
	))

	f.Fuzz(func(t *testing.T, imageBytes []byte) {
		fuzzDecodeBytes(t, imageBytes)
	})
}

func fuzzDecodeBytes(t *testing.T, imageBytes []byte) {
	res, err := pngdecode.Decode(pngdecode.Options{
		R:                     bytes.NewReader(imageBytes),
		Timeout:               600 * time.Millisecond,
		LimitDecompressedSize: 16 << 20,
	})
	if err != nil {
		if pngdecode.KindOf(err) == 0 && !strings.Contains(err.Error(), "timed out") {
			t.Fatalf("unknown error in Decode: %v %T", err, err)
		}
		if strings.Contains(err.Error(), "decoder panic") {
			t.Fatalf("panic in Decode: %v", err)
		}
		if res.Pixels != nil || res.File != nil {
			t.Fatalf("non-empty result with error %v", err)
		}
		return
	}

	if want := int(res.Header.Height) * rowBytes(res.Header); len(res.Pixels) != want {
		t.Fatalf("got %d pixel bytes, want %d", len(res.Pixels), want)
	}

	// The metadata accessors must not panic on anything Decode accepts.
	if _, err := res.File.Text(); err != nil && pngdecode.KindOf(err) == 0 {
		t.Fatalf("unknown error in Text: %v %T", err, err)
	}
	if _, err := res.File.EXIF(); err != nil && pngdecode.KindOf(err) == 0 {
		t.Fatalf("unknown error in EXIF: %v %T", err, err)
	}
}

func rowBytes(h pngdecode.Header) int {
	return (int(h.Width)*h.ColorType.Channels()*int(h.BitDepth) + 7) / 8
}
