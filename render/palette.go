// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"image/color"
	"sort"
	"strings"
)

// ColorBrewer palettes, largest published class of each scheme.
var palettes = map[string][]uint32{
	"spectral": {0x9e0142, 0xd53e4f, 0xf46d43, 0xfdae61, 0xfee08b, 0xffffbf, 0xe6f598, 0xabdda4, 0x66c2a5, 0x3288bd, 0x5e4fa2},
	"set3":     {0x8dd3c7, 0xffffb3, 0xbebada, 0xfb8072, 0x80b1d3, 0xfdb462, 0xb3de69, 0xfccde5, 0xd9d9d9, 0xbc80bd, 0xccebc5, 0xffed6f},
	"paired":   {0xa6cee3, 0x1f78b4, 0xb2df8a, 0x33a02c, 0xfb9a99, 0xe31a1c, 0xfdbf6f, 0xff7f00, 0xcab2d6, 0x6a3d9a, 0xffff99, 0xb15928},
	"greys":    {0xffffff, 0xf0f0f0, 0xd9d9d9, 0xbdbdbd, 0x969696, 0x737373, 0x525252, 0x252525, 0x000000},
	"blues":    {0xf7fbff, 0xdeebf7, 0xc6dbef, 0x9ecae1, 0x6baed6, 0x4292c6, 0x2171b5, 0x08519c, 0x08306b},
}

// PaletteNames lists the known palette names in lower case.
func PaletteNames() []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Palette returns n colors from the named palette (case-insensitive),
// repeating the palette when n exceeds its size.
//
// Errors: ErrUnknownPalette, ErrPaletteSize.
func Palette(name string, n int) ([]color.Color, error) {
	hex, ok := palettes[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownPalette)
	}
	if n < 1 {
		return nil, fmt.Errorf("%d colors: %w", n, ErrPaletteSize)
	}
	out := make([]color.Color, n)
	for i := range out {
		h := hex[i%len(hex)]
		out[i] = color.RGBA{R: uint8(h >> 16), G: uint8(h >> 8), B: uint8(h), A: 0xff}
	}

	return out, nil
}

// translucent returns cs with alpha a, for bands drawn under lines.
func translucent(cs []color.Color, a uint8) []color.Color {
	out := make([]color.Color, len(cs))
	for i, c := range cs {
		r, g, b, _ := c.RGBA()
		out[i] = color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: a}
	}

	return out
}
