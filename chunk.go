// Copyright 2026 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package pngdecode

// ChunkType is the four-character chunk type code read as a big-endian uint32.
type ChunkType uint32

// Chunk types known to this package.
const (
	ChunkIHDR ChunkType = 0x49484452 // IHDR
	ChunkPLTE ChunkType = 0x504c5445 // PLTE
	ChunkIDAT ChunkType = 0x49444154 // IDAT
	ChunkIEND ChunkType = 0x49454e44 // IEND
	ChunkTEXT ChunkType = 0x74455874 // tEXt
	ChunkZTXT ChunkType = 0x7a545874 // zTXt
	ChunkITXT ChunkType = 0x69545874 // iTXt
	ChunkEXIF ChunkType = 0x65584966 // eXIf
)

// The ancillary bit is bit 5 of the first type byte.
const ancillaryBit = 1 << (24 + 5)

// chunkOverhead is the length, type and CRC fields around the payload.
const chunkOverhead = 12

// String returns the four ASCII characters of the type code.
func (t ChunkType) String() string {
	return string([]byte{byte(t >> 24), byte(t >> 16), byte(t >> 8), byte(t)})
}

// IsAncillary reports whether a decoder may skip a chunk of this type
// without losing the ability to decode the image.
func (t ChunkType) IsAncillary() bool {
	return t&ancillaryBit != 0
}

// Chunk is a view of one chunk in a PNG file.
// Data shares memory with the file buffer it was parsed from.
type Chunk struct {
	// Offset is the position of the length field in the file.
	Offset int
	// Length is the payload size, excluding the length, type and CRC fields.
	Length uint32
	Type   ChunkType
	Data   []byte
	// CRC is read from the file but not verified.
	CRC uint32
}

// IsAncillary reports whether the chunk may be safely ignored.
func (c Chunk) IsAncillary() bool {
	return c.Type.IsAncillary()
}

// parseChunks walks the chunk stream following the signature.
// Either all of b is consumed by complete chunks with IHDR first and IEND last,
// or an error is returned and no chunks.
func parseChunks(b []byte) ([]Chunk, error) {
	r := newByteReader(b, len(pngSignature))

	var chunks []Chunk
	for !r.isEOF() {
		offset := r.pos
		if r.remaining() < chunkOverhead {
			return nil, newErrorf(TruncatedStream, "chunk at offset %d: %d bytes left, need at least %d", offset, r.remaining(), chunkOverhead)
		}

		// The remaining check above covers these two reads and the CRC.
		length, _ := r.read4()
		typ, _ := r.read4()

		if uint64(length) > uint64(r.remaining()-4) {
			return nil, newErrorf(TruncatedStream, "%s chunk at offset %d: length %d exceeds the %d bytes left", ChunkType(typ), offset, length, r.remaining()-4)
		}
		data, _ := r.readBytes(int(length))
		crc, _ := r.read4()

		chunks = append(chunks, Chunk{
			Offset: offset,
			Length: length,
			Type:   ChunkType(typ),
			Data:   data,
			CRC:    crc,
		})
	}

	if len(chunks) == 0 {
		return nil, newErrorf(InvalidChunkOrder, "no chunks")
	}
	if first := chunks[0].Type; first != ChunkIHDR {
		return nil, newErrorf(InvalidChunkOrder, "first chunk is %s, want IHDR", first)
	}
	if last := chunks[len(chunks)-1].Type; last != ChunkIEND {
		return nil, newErrorf(InvalidChunkOrder, "last chunk is %s, want IEND", last)
	}

	return chunks, nil
}
