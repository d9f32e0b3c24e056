// Copyright (c) 2026, The Paintmix Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rgb

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOne(t *testing.T) {
	assert.Equal(t, Depth8(0xFF), One[Depth8]())
	assert.Equal(t, Depth16(0xFFFF), One[Depth16]())
	assert.Equal(t, Propn(1), One[Propn]())
}

func TestRound(t *testing.T) {
	assert.Equal(t, Depth8(3), Round[Depth8](2.5))
	assert.Equal(t, Depth8(2), Round[Depth8](2.49))
	assert.Equal(t, Depth16(0xFFFF), Round[Depth16](65534.7))
	assert.Equal(t, Propn(2.5), Round[Propn](2.5))
}

func TestConvertRoundTrip(t *testing.T) {
	cases := []RGB16{
		{0, 0, 0},
		{0xFFFF, 0xFFFF, 0xFFFF},
		{0xFFFF, 0x8000, 0},
		{0x1234, 0x5678, 0x9ABC},
		{1, 2, 3},
	}
	for _, c := range cases {
		p := ConvertRGB[Propn](c)
		assert.Equal(t, c, ConvertRGB[Depth16](p), "via Propn: %v", c)

		c8 := ConvertRGB[Depth8](c)
		back := ConvertRGB[Depth16](c8)
		// one 8 bit unit of tolerance going through the narrower precision
		assert.InDelta(t, float64(c.R), float64(back.R), 257)
		assert.InDelta(t, float64(c.G), float64(back.G), 257)
		assert.InDelta(t, float64(c.B), float64(back.B), 257)
	}
	// 8 bit values survive the widening round trip exactly
	for _, c := range []RGB8{{0, 0, 0}, {255, 255, 255}, {1, 128, 254}} {
		assert.Equal(t, c, ConvertRGB[Depth8](ConvertRGB[Depth16](c)))
		assert.Equal(t, c, ConvertRGB[Depth8](ConvertRGB[Propn](c)))
	}
}

func TestArithmetic(t *testing.T) {
	a := RGB16{100, 200, 300}
	b := RGB16{1, 2, 3}
	assert.Equal(t, RGB16{101, 202, 303}, a.Add(b))
	assert.Equal(t, RGB16{99, 198, 297}, a.Sub(b))
	assert.Equal(t, RGB16{50, 100, 150}, a.Div(2))
	assert.Equal(t, RGB16{200, 400, 600}, a.Mul(2))
	// scalar ops round to nearest
	assert.Equal(t, RGB16{50, 100, 150}, RGB16{99, 199, 299}.Div(2))
}

func TestValue(t *testing.T) {
	assert.Equal(t, 0.0, Black[Depth16]().Value())
	assert.Equal(t, 1.0, White[Depth16]().Value())
	assert.InDelta(t, 1.0/3.0, Red[Depth16]().Value(), 1e-12)
	assert.InDelta(t, 2.0/3.0, Yellow[Propn]().Value(), 1e-12)
	assert.InDelta(t, 0.5, RGBP{0.5, 0.5, 0.5}.Value(), 1e-12)
}

func TestNonZero(t *testing.T) {
	assert.Equal(t, 0, Black[Depth8]().NonZero())
	assert.Equal(t, 1, Red[Depth8]().NonZero())
	assert.Equal(t, 2, Cyan[Depth8]().NonZero())
	assert.Equal(t, 3, White[Depth8]().NonZero())
}

func TestRotatedThirds(t *testing.T) {
	// rotation by +/-120 degrees is an exact channel permutation
	third := 2 * math.Pi / 3
	assert.Equal(t, Green[Depth16](), Red[Depth16]().Rotated(third))
	assert.Equal(t, Blue[Depth16](), Red[Depth16]().Rotated(-third))
	assert.Equal(t, Cyan[Depth16](), Yellow[Depth16]().Rotated(third))
	c := RGB16{10000, 20000, 30000}
	assert.Equal(t, RGB16{30000, 10000, 20000}, c.Rotated(third))
	assert.Equal(t, RGB16{20000, 30000, 10000}, c.Rotated(-third))
}

func TestRotatedConservesValue(t *testing.T) {
	// with one or three non zero components the total is held exactly
	// at Propn precision and within rounding at fixed precisions
	deltas := []float64{0.1, -0.1, 1.0, -1.0, 2.5, -2.5, math.Pi / 3}
	singles := []RGBP{Red[Propn](), Green[Propn](), Blue[Propn](), {0.25, 0, 0}}
	triples := []RGBP{White[Propn](), {0.1, 0.5, 0.9}, {0.3, 0.3, 0.3}}
	for _, d := range deltas {
		for _, c := range append(singles, triples...) {
			got := c.Rotated(d)
			assert.InDelta(t, c.Value(), got.Value(), 1e-12, "%v rotated %g", c, d)
		}
		c16 := RGB16{0x4000, 0x8000, 0xC000}
		got := c16.Rotated(d)
		assert.InDelta(t, c16.Value(), got.Value(), 2.0/(3*65535), "%v rotated %g", c16, d)
	}
}

func TestRotatedZeroDelta(t *testing.T) {
	c := RGB16{1, 2, 3}
	assert.Equal(t, c, c.Rotated(0))
}

func TestString(t *testing.T) {
	assert.Equal(t, "RGB(65535, 0, 0)", Red[Depth16]().String())
	assert.Equal(t, "RGB(1, 2, 3)", RGB16{1, 2, 3}.String())
}
