// Copyright 2026 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package pngdecode

import (
	"math"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Compressed text larger than this is rejected.
const limitTextSize = 1 << 20

// TextEntry is a keyword/text pair from a tEXt, zTXt or iTXt chunk.
type TextEntry struct {
	// Type is the chunk the entry was read from.
	Type    ChunkType
	Keyword string
	Text    string

	// Only set for iTXt.
	Language          string
	TranslatedKeyword string
}

// Text returns the textual metadata of f in file order.
// tEXt and zTXt are ISO 8859-1 and converted to UTF-8.
func (f *File) Text() ([]TextEntry, error) {
	if f == nil || len(f.chunks) == 0 {
		return nil, newErrorf(NotLoaded, "no PNG file has been parsed")
	}

	var entries []TextEntry
	for _, c := range f.chunks {
		var (
			entry TextEntry
			err   error
		)
		switch c.Type {
		case ChunkTEXT:
			entry, err = decodeTEXt(c.Data)
		case ChunkZTXT:
			entry, err = decodeZTXt(c.Data)
		case ChunkITXT:
			entry, err = decodeITXt(c.Data)
		default:
			continue
		}
		if err != nil {
			return nil, err
		}
		entry.Type = c.Type
		entries = append(entries, entry)
	}
	return entries, nil
}

func decodeTEXt(data []byte) (TextEntry, error) {
	r := newByteReader(data, 0)
	keyword, err := readKeyword(r, ChunkTEXT)
	if err != nil {
		return TextEntry{}, err
	}
	text, err := latin1ToString(r.rest())
	if err != nil {
		return TextEntry{}, err
	}
	return TextEntry{Keyword: keyword, Text: text}, nil
}

func decodeZTXt(data []byte) (TextEntry, error) {
	r := newByteReader(data, 0)
	keyword, err := readKeyword(r, ChunkZTXT)
	if err != nil {
		return TextEntry{}, err
	}
	method, err := r.read1()
	if err != nil {
		return TextEntry{}, newInvalidFormatErrorf("zTXt: missing compression method")
	}
	if method != 0 {
		return TextEntry{}, newInvalidFormatErrorf("zTXt: unsupported compression method %d", method)
	}
	b, err := inflateText(r.rest())
	if err != nil {
		return TextEntry{}, err
	}
	text, err := latin1ToString(b)
	if err != nil {
		return TextEntry{}, err
	}
	return TextEntry{Keyword: keyword, Text: text}, nil
}

func decodeITXt(data []byte) (TextEntry, error) {
	r := newByteReader(data, 0)
	keyword, err := readKeyword(r, ChunkITXT)
	if err != nil {
		return TextEntry{}, err
	}
	compressed, err := r.read1()
	if err != nil {
		return TextEntry{}, newInvalidFormatErrorf("iTXt: missing compression flag")
	}
	method, err := r.read1()
	if err != nil {
		return TextEntry{}, newInvalidFormatErrorf("iTXt: missing compression method")
	}
	language, err := r.readNullTerminated()
	if err != nil {
		return TextEntry{}, newInvalidFormatErrorf("iTXt: unterminated language tag")
	}
	translated, err := r.readNullTerminated()
	if err != nil {
		return TextEntry{}, newInvalidFormatErrorf("iTXt: unterminated translated keyword")
	}

	text := r.rest()
	switch compressed {
	case 0:
	case 1:
		if method != 0 {
			return TextEntry{}, newInvalidFormatErrorf("iTXt: unsupported compression method %d", method)
		}
		if text, err = inflateText(text); err != nil {
			return TextEntry{}, err
		}
	default:
		return TextEntry{}, newInvalidFormatErrorf("iTXt: invalid compression flag %d", compressed)
	}

	if !utf8.Valid(translated) || !utf8.Valid(text) {
		return TextEntry{}, newInvalidFormatErrorf("iTXt: text is not valid UTF-8")
	}

	return TextEntry{
		Keyword:           keyword,
		Text:              string(text),
		Language:          string(language),
		TranslatedKeyword: string(translated),
	}, nil
}

// readKeyword reads the null-terminated 1-79 byte keyword that starts all text chunks.
func readKeyword(r *byteReader, typ ChunkType) (string, error) {
	b, err := r.readNullTerminated()
	if err != nil {
		return "", newInvalidFormatErrorf("%s: unterminated keyword", typ)
	}
	if len(b) == 0 || len(b) > 79 {
		return "", newInvalidFormatErrorf("%s: keyword length %d out of range", typ, len(b))
	}
	return latin1ToString(b)
}

func latin1ToString(b []byte) (string, error) {
	s, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		return "", newInvalidFormatErrorf("decoding Latin-1 text: %v", err)
	}
	return string(s), nil
}

func inflateText(b []byte) ([]byte, error) {
	return inflate(b, inflateOptions{
		bufferSize:        min(max(len(b)*4, 64), limitTextSize),
		growSize:          4096,
		limitCompressed:   math.MaxUint32,
		limitDecompressed: limitTextSize,
	}, beginZlibInflate)
}
