// Copyright 2026 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package pngdecode

import (
	"bytes"

	"github.com/rwcarlsen/goexif/exif"
)

// EXIF decodes the eXIf chunk of f.
// It returns nil and no error if there is no eXIf chunk.
//
// http://ftp-osl.osuosl.org/pub/libpng/documents/pngext-1.5.0.html#C.eXIf
// The chunk holds a TIFF structure without the JPEG APP1 "Exif\0\0" prefix.
func (f *File) EXIF() (x *exif.Exif, err error) {
	defer func() {
		if r := recover(); r != nil {
			x, err = nil, newInvalidFormatErrorf("decoding eXIf chunk: %v", r)
		}
	}()

	if f == nil || len(f.chunks) == 0 {
		return nil, newErrorf(NotLoaded, "no PNG file has been parsed")
	}
	for _, c := range f.chunks {
		if c.Type != ChunkEXIF {
			continue
		}
		x, err = exif.Decode(bytes.NewReader(c.Data))
		if err != nil && exif.IsCriticalError(err) {
			return nil, wrapErrorf(InvalidFormat, err, "decoding eXIf chunk at offset %d", c.Offset)
		}
		return x, nil
	}
	return nil, nil
}
