// Copyright (c) 2026, The Paintmix Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package hcv provides read-only painterly views (hue, chroma, value and
warmth) over an RGB triple, plus a mutable manipulator cursor for
bounded incremental colour edits. The views are pure functions of the
wrapped triple: all derived attributes are computed once at construction
and the types carry no independent state.
*/
package hcv

import (
	"fmt"

	"github.com/paintmix/paintmix/rgb"
)

// HCV wraps one RGB triple and exposes its hue, chroma and value.
// It is immutable; treat the fields as read only.
type HCV[T rgb.Component] struct {

	// RGB is the wrapped triple.
	RGB rgb.RGB[T]

	// Hue is the angular position around the achromatic axis, grey for
	// pure greys.
	Hue rgb.Hue[T]

	// Value is the mean of the three channels, in [0, 1].
	Value float64

	// Chroma is the distance from the achromatic axis normalised to the
	// hexagon boundary at this hue, in [0, 1].
	Chroma float64
}

// New computes the derived attributes of c.
func New[T rgb.Component](c rgb.RGB[T]) HCV[T] {
	xy := rgb.XYOf(c)
	h := rgb.HueFromAngle[T](xy.Angle())
	return HCV[T]{
		RGB:    c,
		Hue:    h,
		Value:  c.Value(),
		Chroma: xy.Hypot() * h.ChromaCorrection() / float64(rgb.One[T]()),
	}
}

// ValueRGB returns the grey with the same value as this colour.
func (h HCV[T]) ValueRGB() rgb.RGB[T] {
	return rgb.White[T]().Mul(h.Value)
}

// HueRGB returns the maximum chroma colour for this hue (white for grey).
func (h HCV[T]) HueRGB() rgb.RGB[T] {
	return h.Hue.RGB()
}

// HueRGBForValue returns the colour at this hue with the given value and
// no unnecessary grey. Pass [HCV.Value] to keep the current value.
func (h HCV[T]) HueRGBForValue(value float64) rgb.RGB[T] {
	return h.Hue.RGBWithValue(value)
}

// ZeroChromaRGB returns the grey that results from adding white or black
// (whichever is nearer) to this colour until its chroma reaches zero.
// Useful for displaying chroma as a gradient end point.
func (h HCV[T]) ZeroChromaRGB() rgb.RGB[T] {
	if h.Hue.IsGrey() {
		return h.ValueRGB()
	}
	mcv := h.Hue.MaxChromaValue()
	dc := 1 - h.Chroma
	// chroma within rounding noise of 1 leaves dc as accumulated float
	// error; dividing by it would give an arbitrary grey
	if dc > 1e-9 {
		return rgb.White[T]().Mul((h.Value - mcv*h.Chroma) / dc)
	}
	if mcv < 0.5 {
		return rgb.Black[T]()
	}
	return rgb.White[T]()
}

// ChromaSide reports which extreme this colour has been pushed toward
// from its hue's maximum chroma colour: white if it was lightened, black
// if darkened. Used to pick a contrasting far-side grey for gradients.
func (h HCV[T]) ChromaSide() rgb.RGB[T] {
	if h.RGB.Sum() > h.Hue.RGB().Sum() {
		return rgb.White[T]()
	}
	return rgb.Black[T]()
}

// RotatedRGB returns this colour rotated by delta radians with the value
// held constant. With one or three non zero channels plain triple
// rotation is exact; with exactly two, rotating the hue and rebuilding at
// the current value avoids the silent value change plain rotation would
// cause.
func (h HCV[T]) RotatedRGB(delta float64) rgb.RGB[T] {
	if h.RGB.NonZero() == 2 {
		// no grey present, so add grey only as needed to hold the value
		return h.Hue.RotatedBy(delta).RGBWithValue(h.Value)
	}
	return h.RGB.Rotated(delta)
}

func (h HCV[T]) String() string {
	return fmt.Sprintf("(HUE = %v, VALUE = %.2f, CHROMA = %.2f)",
		h.Hue.RGB(), h.Value, h.Chroma)
}

// HCVW is an [HCV] that also exposes warmth: the signed projection of
// the colour onto the red-cyan axis, scaled to [-1, 1].
type HCVW[T rgb.Component] struct {
	HCV[T]

	// Warmth is positive for colours on the red side of the hexagon and
	// negative on the cyan side.
	Warmth float64
}

// NewW computes the derived attributes of c including warmth.
func NewW[T rgb.Component](c rgb.RGB[T]) HCVW[T] {
	xy := rgb.XYOf(c)
	w := rgb.RoundScalar[T](xy.X) / float64(rgb.One[T]())
	return HCVW[T]{HCV: New(c), Warmth: w}
}

// WarmthRGB returns the colour on the cyan-red axis at this warmth:
// pure cyan at -1, mid grey at 0, pure red at +1.
func (h HCVW[T]) WarmthRGB() rgb.RGB[T] {
	one := float64(rgb.One[T]())
	r := rgb.Round[T]((1 + h.Warmth) / 2 * one)
	cb := rgb.Round[T]((1 - h.Warmth) / 2 * one)
	return rgb.RGB[T]{R: r, G: cb, B: cb}
}

func (h HCVW[T]) String() string {
	return fmt.Sprintf("(HUE = %v, VALUE = %.2f, CHROMA = %.2f, WARMTH = %.2f)",
		h.Hue.RGB(), h.Value, h.Chroma, h.Warmth)
}
