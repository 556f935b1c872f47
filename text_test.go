// Copyright 2026 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package pngdecode

import (
	"bytes"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
)

func withTextChunks(chunks ...testChunk) []byte {
	all := []testChunk{newTestChunk("IHDR", ihdrData(1, 1, 8, 0))}
	all = append(all, chunks...)
	all = append(all,
		newTestChunk("IDAT", zlibCompress([]byte{0, 0})),
		newTestChunk("IEND", nil),
	)
	return buildPNG(all...)
}

func join(parts ...[]byte) []byte {
	return bytes.Join(parts, nil)
}

func TestText(t *testing.T) {
	c := qt.New(t)

	f, err := Parse(withTextChunks(
		newTestChunk("tEXt", []byte("Comment\x00caf\xe9 au lait")),
		newTestChunk("zTXt", join([]byte("Description\x00\x00"), zlibCompress([]byte("Gr\xf8nn\xe6rtesuppe")))),
		newTestChunk("iTXt", []byte("Title\x00\x00\x00no\x00Tittel\x00Blåbærsyltetøy")),
		newTestChunk("iTXt", join([]byte("Author\x00\x01\x00\x00\x00"), zlibCompress([]byte("Bjørn")))),
		newTestChunk("tEXt", []byte("Empty\x00")),
	))
	c.Assert(err, qt.IsNil)

	entries, err := f.Text()
	c.Assert(err, qt.IsNil)
	c.Assert(entries, qt.DeepEquals, []TextEntry{
		{Type: ChunkTEXT, Keyword: "Comment", Text: "café au lait"},
		{Type: ChunkZTXT, Keyword: "Description", Text: "Grønnærtesuppe"},
		{Type: ChunkITXT, Keyword: "Title", Text: "Blåbærsyltetøy", Language: "no", TranslatedKeyword: "Tittel"},
		{Type: ChunkITXT, Keyword: "Author", Text: "Bjørn"},
		{Type: ChunkTEXT, Keyword: "Empty", Text: ""},
	})
}

func TestTextNone(t *testing.T) {
	c := qt.New(t)

	f, err := Parse(withTextChunks())
	c.Assert(err, qt.IsNil)
	entries, err := f.Text()
	c.Assert(err, qt.IsNil)
	c.Assert(entries, qt.HasLen, 0)
}

func TestTextInvalid(t *testing.T) {
	c := qt.New(t)

	for _, test := range []struct {
		name  string
		chunk testChunk
		kind  ErrorKind
		msg   string
	}{
		{"tEXt no keyword terminator", newTestChunk("tEXt", []byte("Comment")), InvalidFormat, ".*tEXt: unterminated keyword"},
		{"tEXt empty keyword", newTestChunk("tEXt", []byte("\x00text")), InvalidFormat, ".*keyword length 0.*"},
		{"tEXt long keyword", newTestChunk("tEXt", []byte(strings.Repeat("k", 80)+"\x00text")), InvalidFormat, ".*keyword length 80.*"},
		{"zTXt no method", newTestChunk("zTXt", []byte("k\x00")), InvalidFormat, ".*missing compression method"},
		{"zTXt bad method", newTestChunk("zTXt", join([]byte("k\x00\x08"), zlibCompress([]byte("x")))), InvalidFormat, ".*unsupported compression method 8"},
		{"zTXt corrupt", newTestChunk("zTXt", []byte("k\x00\x00not zlib")), CorruptCompressedData, ".*"},
		{"zTXt too large", newTestChunk("zTXt", join([]byte("k\x00\x00"), zlibCompress(make([]byte, limitTextSize+1)))), SizeLimitExceeded, ".*"},
		{"iTXt truncated", newTestChunk("iTXt", []byte("k\x00\x00\x00en")), InvalidFormat, ".*unterminated language tag"},
		{"iTXt no flag", newTestChunk("iTXt", []byte("k\x00")), InvalidFormat, ".*missing compression flag"},
		{"iTXt bad flag", newTestChunk("iTXt", []byte("k\x00\x02\x00\x00\x00text")), InvalidFormat, ".*invalid compression flag 2"},
		{"iTXt bad method", newTestChunk("iTXt", []byte("k\x00\x01\x01\x00\x00text")), InvalidFormat, ".*unsupported compression method 1"},
		{"iTXt bad UTF-8", newTestChunk("iTXt", []byte("k\x00\x00\x00\x00\x00caf\xe9")), InvalidFormat, ".*not valid UTF-8"},
	} {
		c.Run(test.name, func(c *qt.C) {
			f, err := Parse(withTextChunks(test.chunk))
			c.Assert(err, qt.IsNil)
			entries, err := f.Text()
			c.Assert(err, qt.ErrorIs, test.kind)
			c.Assert(err, qt.ErrorMatches, test.msg)
			c.Assert(entries, qt.IsNil)
		})
	}
}
