// Copyright (c) 2026, The Paintmix Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rgb

import (
	"fmt"
	"math"
)

// RGB is an immutable red/green/blue triple at channel precision T.
// Every component must be in [0, One]; that is a precondition on all
// operations, not a checked contract. All arithmetic returns a new value.
type RGB[T Component] struct {
	R, G, B T
}

// RGB8, RGB16 and RGBP name the three concrete precisions.
type (
	RGB8  = RGB[Depth8]
	RGB16 = RGB[Depth16]
	RGBP  = RGB[Propn]
)

// Add returns the componentwise sum. The caller must ensure the result
// stays within channel range.
func (c RGB[T]) Add(o RGB[T]) RGB[T] {
	return RGB[T]{c.R + o.R, c.G + o.G, c.B + o.B}
}

// Sub returns the componentwise difference. The caller must ensure the
// result stays within channel range.
func (c RGB[T]) Sub(o RGB[T]) RGB[T] {
	return RGB[T]{c.R - o.R, c.G - o.G, c.B - o.B}
}

// Mul scales every component by f, rounding per the channel precision.
func (c RGB[T]) Mul(f float64) RGB[T] {
	return RGB[T]{
		Round[T](float64(c.R) * f),
		Round[T](float64(c.G) * f),
		Round[T](float64(c.B) * f),
	}
}

// Div divides every component by d, rounding per the channel precision.
func (c RGB[T]) Div(d float64) RGB[T] {
	return RGB[T]{
		Round[T](float64(c.R) / d),
		Round[T](float64(c.G) / d),
		Round[T](float64(c.B) / d),
	}
}

// Sum returns the component total as a float64.
func (c RGB[T]) Sum() float64 {
	return float64(c.R) + float64(c.G) + float64(c.B)
}

// Value returns the mean of the three components as a proportion of One,
// in [0, 1]. Triples with equal component totals have exactly equal values.
func (c RGB[T]) Value() float64 {
	return c.Sum() / (3 * float64(One[T]()))
}

// Max returns the strongest component.
func (c RGB[T]) Max() T {
	m := c.R
	if c.G > m {
		m = c.G
	}
	if c.B > m {
		m = c.B
	}
	return m
}

// NonZero returns how many of the three components are non zero (0 to 3).
func (c RGB[T]) NonZero() int {
	n := 0
	if c.R != 0 {
		n++
	}
	if c.G != 0 {
		n++
	}
	if c.B != 0 {
		n++
	}
	return n
}

// At returns the component with the given index (0 = red, 1 = green,
// 2 = blue) as a float64.
func (c RGB[T]) At(i int) float64 {
	switch i {
	case 0:
		return float64(c.R)
	case 1:
		return float64(c.G)
	default:
		return float64(c.B)
	}
}

// fromComponents builds a triple from an index-addressed component array.
func fromComponents[T Component](a [3]T) RGB[T] {
	return RGB[T]{a[0], a[1], a[2]}
}

// rotateKs returns the mixing coefficients that move intensity between a
// channel pair for a rotation of delta within one 120 degree sector.
func rotateKs(delta float64) (k1, k2 float64) {
	a := math.Sin(delta)
	b := math.Sin(2*math.Pi/3 - delta)
	c := a + b
	return b / c, a / c
}

// Rotated returns a triple with the hue angle rotated by delta radians
// and the component total unchanged when one or three components are non
// zero. With exactly two non zero components the chroma (and hence the
// total) cannot be held; callers that care should rotate through a
// higher level view that compensates by re-adding grey.
func (c RGB[T]) Rotated(delta float64) RGB[T] {
	f := func(k1, k2 float64, i1, i2 int) T {
		return Round[T](c.At(i1)*k1 + c.At(i2)*k2)
	}
	third := 2 * math.Pi / 3
	switch {
	case delta > 0:
		if delta > third {
			k1, k2 := rotateKs(delta - third)
			return RGB[T]{f(k1, k2, 2, 1), f(k1, k2, 0, 2), f(k1, k2, 1, 0)}
		}
		k1, k2 := rotateKs(delta)
		return RGB[T]{f(k1, k2, 0, 2), f(k1, k2, 1, 0), f(k1, k2, 2, 1)}
	case delta < 0:
		if delta < -third {
			k1, k2 := rotateKs(-delta - third)
			return RGB[T]{f(k1, k2, 1, 2), f(k1, k2, 2, 0), f(k1, k2, 0, 1)}
		}
		k1, k2 := rotateKs(-delta)
		return RGB[T]{f(k1, k2, 0, 1), f(k1, k2, 1, 2), f(k1, k2, 2, 0)}
	default:
		return c
	}
}

// String renders the triple in the form used by paint collection files,
// e.g. "RGB(65535, 32768, 0)".
func (c RGB[T]) String() string {
	return fmt.Sprintf("RGB(%v, %v, %v)", c.R, c.G, c.B)
}

// Colour constants for precision T. These are the hexagon corners plus
// black and white: every primary and secondary at full strength.

// Black returns the all-zero triple.
func Black[T Component]() RGB[T] { return RGB[T]{} }

// White returns the all-One triple.
func White[T Component]() RGB[T] {
	one := One[T]()
	return RGB[T]{one, one, one}
}

// Red returns the pure red triple.
func Red[T Component]() RGB[T] { return RGB[T]{R: One[T]()} }

// Green returns the pure green triple.
func Green[T Component]() RGB[T] { return RGB[T]{G: One[T]()} }

// Blue returns the pure blue triple.
func Blue[T Component]() RGB[T] { return RGB[T]{B: One[T]()} }

// Yellow returns the red+green secondary triple.
func Yellow[T Component]() RGB[T] {
	one := One[T]()
	return RGB[T]{R: one, G: one}
}

// Cyan returns the green+blue secondary triple.
func Cyan[T Component]() RGB[T] {
	one := One[T]()
	return RGB[T]{G: one, B: one}
}

// Magenta returns the red+blue secondary triple.
func Magenta[T Component]() RGB[T] {
	one := One[T]()
	return RGB[T]{R: one, B: one}
}

// ConvertRGB maps a triple from precision F to precision T channel by
// channel, using the general conversion formula.
func ConvertRGB[T, F Component](c RGB[F]) RGB[T] {
	return RGB[T]{Convert[T](c.R), Convert[T](c.G), Convert[T](c.B)}
}
