// Copyright 2026 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package pngdecode

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"hash/crc32"
)

// testChunk is a chunk to be written by buildPNG.
type testChunk struct {
	typ  string
	data []byte
}

func newTestChunk(typ string, data []byte) testChunk {
	return testChunk{typ: typ, data: data}
}

// buildPNG writes the signature followed by chunks, with valid CRCs.
func buildPNG(chunks ...testChunk) []byte {
	var buf bytes.Buffer
	buf.Write(pngSignature)
	for _, c := range chunks {
		writeTestChunk(&buf, c)
	}
	return buf.Bytes()
}

func writeTestChunk(buf *bytes.Buffer, c testChunk) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(len(c.data)))
	buf.Write(b[:])
	crc := crc32.NewIEEE()
	crc.Write([]byte(c.typ))
	crc.Write(c.data)
	buf.WriteString(c.typ)
	buf.Write(c.data)
	binary.BigEndian.PutUint32(b[:], crc.Sum32())
	buf.Write(b[:])
}

func ihdrData(width, height uint32, bitDepth, colorType uint8) []byte {
	b := make([]byte, ihdrLength)
	binary.BigEndian.PutUint32(b[0:4], width)
	binary.BigEndian.PutUint32(b[4:8], height)
	b[8] = bitDepth
	b[9] = colorType
	return b
}

func zlibCompress(b []byte) []byte {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	if _, err := w.Write(b); err != nil {
		panic(err)
	}
	if err := w.Close(); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// simplePNG builds IHDR, one IDAT holding the zlib compressed filtered stream, and IEND.
func simplePNG(width, height uint32, bitDepth, colorType uint8, filtered []byte) []byte {
	return buildPNG(
		newTestChunk("IHDR", ihdrData(width, height, bitDepth, colorType)),
		newTestChunk("IDAT", zlibCompress(filtered)),
		newTestChunk("IEND", nil),
	)
}
