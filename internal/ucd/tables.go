package ucd

import "unicode"

// cjkRangeTable mirrors the block list used by the Unicode word-break
// rules for CJK scripts: the Unified Ideographs block and its Extension A,
// the (surrogate-pair-range) Extension B, the Compatibility Ideographs
// block, Hiragana, Katakana, and the Hangul syllables block.
var cjkRangeTable = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x3040, Hi: 0x309F, Stride: 1}, // Hiragana
		{Lo: 0x30A0, Hi: 0x30FF, Stride: 1}, // Katakana
		{Lo: 0x3400, Hi: 0x4DBF, Stride: 1}, // CJK Unified Ideographs Extension A
		{Lo: 0x4E00, Hi: 0x9FFF, Stride: 1}, // CJK Unified Ideographs
		{Lo: 0xAC00, Hi: 0xD7A3, Stride: 1}, // Hangul Syllables
		{Lo: 0xF900, Hi: 0xFAFF, Stride: 1}, // CJK Compatibility Ideographs
	},
	R32: []unicode.Range32{
		{Lo: 0x20000, Hi: 0x2A6DF, Stride: 1}, // CJK Unified Ideographs Extension B
	},
}
