// Copyright 2026 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package pngdecode

type TestChunk = testChunk

var (
	NewTestChunk = newTestChunk
	BuildPNG     = buildPNG
	IHDRData     = ihdrData
	ZlibCompress = zlibCompress
	SimplePNG    = simplePNG
)
