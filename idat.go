// Copyright 2026 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package pngdecode

// CompressedData returns the payloads of all IDAT chunks concatenated in
// file order. The returned slice is owned by the caller.
func (f *File) CompressedData() ([]byte, error) {
	if f == nil || len(f.chunks) == 0 {
		return nil, newErrorf(NotLoaded, "no PNG file has been parsed")
	}

	var (
		size  uint64
		count int
	)
	for _, c := range f.chunks {
		if c.Type == ChunkIDAT {
			size += uint64(c.Length)
			count++
		}
	}
	if count == 0 {
		return nil, newErrorf(NoCompressedData, "no IDAT chunks")
	}

	b := make([]byte, 0, size)
	for _, c := range f.chunks {
		if c.Type == ChunkIDAT {
			b = append(b, c.Data...)
		}
	}
	return b, nil
}

// Palette returns the raw PLTE payload, three bytes per entry.
// The palette is not interpreted.
func (f *File) Palette() ([]byte, bool) {
	if f == nil {
		return nil, false
	}
	for _, c := range f.chunks {
		if c.Type == ChunkPLTE {
			return c.Data, true
		}
	}
	return nil, false
}
