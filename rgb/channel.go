// Copyright (c) 2026, The Paintmix Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package rgb implements additive red/green/blue colour triples at three
channel precisions, together with the hexagon geometry that maps a triple
to painterly attributes: a hue angle (red at 0), a chroma-proportional
radius, and a warmth axis. It is the foundation for the derived-attribute
views in [github.com/paintmix/paintmix/hcv] and the paint types in
[github.com/paintmix/paintmix/paint].
*/
package rgb

import "math"

// Depth8 is an 8 bits per channel component value, as used by legacy
// paint collection files.
type Depth8 uint8

// Depth16 is a 16 bits per channel component value, the precision used
// for stored paint colours.
type Depth16 uint16

// Propn is a real valued component in the range 0 to 1, used where
// numerical stability matters more than compactness (e.g. interactive
// colour manipulation).
type Propn float64

// Component is the constraint satisfied by the three channel precisions:
// [Depth8], [Depth16] and [Propn].
type Component interface {
	Depth8 | Depth16 | Propn
}

// One returns the maximum representable intensity for channel type T:
// 0xFF for [Depth8], 0xFFFF for [Depth16] and 1 for [Propn].
func One[T Component]() T {
	var one T
	switch p := any(&one).(type) {
	case *Depth8:
		*p = 0xFF
	case *Depth16:
		*p = 0xFFFF
	case *Propn:
		*p = 1
	}
	return one
}

// Round converts an intermediate floating point result to channel type T
// using the precision's rounding rule: nearest integer for the fixed
// precisions and identity for [Propn].
func Round[T Component](x float64) T {
	var c T
	switch p := any(&c).(type) {
	case *Depth8:
		*p = Depth8(x + 0.5)
	case *Depth16:
		*p = Depth16(x + 0.5)
	case *Propn:
		*p = Propn(x)
	}
	return c
}

// RoundScalar applies the rounding rule of channel type T to x while
// staying in float64, for intermediate results that can fall outside the
// channel range (component totals, signed projections).
func RoundScalar[T Component](x float64) float64 {
	var c T
	switch any(c).(type) {
	case Propn:
		return x
	default:
		return math.Floor(x + 0.5)
	}
}

// Convert maps a channel value from precision F to precision T,
// scaling by the ratio of the two ONE values and rounding per T.
func Convert[T, F Component](v F) T {
	return Round[T](float64(v) * float64(One[T]()) / float64(One[F]()))
}
