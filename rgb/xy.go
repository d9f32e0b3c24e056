// Copyright (c) 2026, The Paintmix Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rgb

import "math"

// The colour hexagon: each channel contributes along a unit vector, red
// at angle 0 and green and blue at +/-120 degrees. Cos120 is written out
// because math.Cos(2*math.Pi/3) is one ulp off -0.5 and the inverse
// projection divides by it.
const (
	Cos120 = -0.5
)

var (
	sin120 = math.Sin(2 * math.Pi / 3)
)

// XY is the cartesian projection of a triple onto the colour hexagon
// plane. Coordinates are in the channel units of the precision the
// projection was taken from: a full-strength primary has Hypot equal to
// that precision's One.
type XY struct {
	X, Y float64
}

// XYOf projects a triple onto the hexagon plane.
func XYOf[T Component](c RGB[T]) XY {
	return XY{
		X: float64(c.R) + Cos120*(float64(c.G)+float64(c.B)),
		Y: sin120 * (float64(c.G) - float64(c.B)),
	}
}

// Angle returns the hue angle in (-pi, pi], or NaN when the projection
// is at the origin (a pure grey, which has no hue).
func (xy XY) Angle() float64 {
	if xy.X == 0 && xy.Y == 0 {
		return math.NaN()
	}
	return math.Atan2(xy.Y, xy.X)
}

// Hypot returns the distance from the achromatic origin. It is
// proportional to chroma but must be corrected per hue before chroma
// values are comparable; see [Hue.ChromaCorrection].
func (xy XY) Hypot() float64 {
	return math.Hypot(xy.X, xy.Y)
}

// Mul scales the projection radially.
func (xy XY) Mul(f float64) XY {
	return XY{xy.X * f, xy.Y * f}
}

// SimplestRGB returns the triple with at most two non zero components
// whose projection is xy. It is the geometric inverse of [XYOf]
// restricted to the hexagon boundary, using the same six-sector case
// split as the forward map so sector boundaries stay continuous.
// The projection must have been taken at precision T.
func SimplestRGB[T Component](xy XY) RGB[T] {
	a := xy.X / Cos120
	b := xy.Y / sin120
	var r, g, bl float64
	switch {
	case xy.Y > 0:
		if a > b {
			g, bl = (a+b)/2, (a-b)/2
		} else {
			r, g = xy.X-b*Cos120, b
		}
	case xy.Y < 0:
		if a > -b {
			g, bl = (a+b)/2, (a-b)/2
		} else {
			r, bl = xy.X+b*Cos120, -b
		}
	case xy.X < 0:
		g, bl = a/2, a/2
	default:
		r = xy.X
	}
	return RGB[T]{Round[T](r), Round[T](g), Round[T](bl)}
}
