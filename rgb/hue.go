// Copyright (c) 2026, The Paintmix Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rgb

import "math"

// Hue is the angular position of a colour around the achromatic axis at
// channel precision T, plus the precomputed data needed to reconstruct
// triples at that hue: the strength ordering of the channels, the
// magnitude of the sub-dominant channel on the hexagon edge, and the
// correction that maps Euclidean distance on the hexagon back onto a
// chroma proportion.
//
// A grey has no hue; it is represented by a NaN angle. Because IEEE NaN
// comparisons are always false, greyness must be tested with [Hue.IsGrey]
// and hues compared with [Hue.Equal] and [Hue.Less], never with raw
// angle comparisons.
type Hue[T Component] struct {
	io    [3]int  // channel indices, strongest first
	other T       // sub-dominant channel magnitude at full chroma
	angle float64 // (-pi, pi], NaN for grey
	cc    float64 // chroma correction factor
}

// normalizeAngle wraps an angle into (-pi, pi].
func normalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// HueFromAngle derives a hue from an angle in radians (red at 0, green
// at +2pi/3, blue at -2pi/3). Angles outside (-pi, pi] are wrapped; a
// NaN angle yields the grey hue.
func HueFromAngle[T Component](angle float64) Hue[T] {
	if math.IsNaN(angle) {
		return Hue[T]{other: One[T](), angle: angle, cc: 1}
	}
	angle = normalizeAngle(angle)
	onef := float64(One[T]())
	// law of sines on the hexagon edge: the sub-dominant channel scale
	// for a sector-relative angle oa
	calcOther := func(oa float64) T {
		return Round[T](onef * math.Sin(oa) / math.Sin(2*math.Pi/3-oa))
	}
	var other T
	var io [3]int
	aha := math.Abs(angle)
	switch {
	case aha <= math.Pi/3:
		other = calcOther(aha)
		if angle >= 0 {
			io = [3]int{0, 1, 2}
		} else {
			io = [3]int{0, 2, 1}
		}
	case aha <= 2*math.Pi/3:
		other = calcOther(2*math.Pi/3 - aha)
		if angle >= 0 {
			io = [3]int{1, 0, 2}
		} else {
			io = [3]int{2, 0, 1}
		}
	default:
		other = calcOther(aha - 2*math.Pi/3)
		if angle >= 0 {
			io = [3]int{1, 2, 0}
		} else {
			io = [3]int{2, 1, 0}
		}
	}
	a, b := onef, float64(other)
	cc := 1.0
	// avoid floating point inaccuracies near 1
	if a != b && b != 0 {
		cc = a / math.Sqrt(a*a+b*b-a*b)
	}
	return Hue[T]{io: io, other: other, angle: angle, cc: cc}
}

// HueFromRGB derives the hue of a triple. Pure greys yield the grey hue.
func HueFromRGB[T Component](c RGB[T]) Hue[T] {
	return HueFromAngle[T](XYOf(c).Angle())
}

// Angle returns the hue angle in (-pi, pi], NaN for grey.
func (h Hue[T]) Angle() float64 { return h.angle }

// IsGrey reports whether this is the grey sentinel hue.
func (h Hue[T]) IsGrey() bool { return math.IsNaN(h.angle) }

// ChromaCorrection returns the factor that normalises the Euclidean
// hexagon radius onto a chroma proportion for this hue. It is 1 at the
// hexagon corners (primaries and secondaries) and rises to 2/sqrt(3)
// midway along an edge.
func (h Hue[T]) ChromaCorrection() float64 { return h.cc }

// RGB returns the maximum chroma triple for this hue: the dominant
// channel at One, the weakest at zero. A grey hue yields white.
func (h Hue[T]) RGB() RGB[T] {
	if h.IsGrey() {
		return White[T]()
	}
	var a [3]T
	a[h.io[0]] = One[T]()
	a[h.io[1]] = h.other
	return fromComponents(a)
}

// MaxChromaValue returns the value of the maximum chroma triple for
// this hue.
func (h Hue[T]) MaxChromaValue() float64 {
	return (float64(One[T]()) + float64(h.other)) / (3 * float64(One[T]()))
}

// MaxChromaForTotal returns the upper bound on chroma achievable at the
// given component total. For a grey hue it degenerates to
// min(1, total/One).
func (h Hue[T]) MaxChromaForTotal(total float64) float64 {
	onef := float64(One[T]())
	if h.IsGrey() {
		return math.Min(1, total/onef)
	}
	mct := onef + float64(h.other)
	if mct > total {
		return total / mct
	}
	angle := h.angle
	switch h.io[0] {
	case 1:
		angle -= 2 * math.Pi / 3
	case 2:
		angle += 2 * math.Pi / 3
	}
	return (3*onef - total) / (2 * math.Cos(angle)) * h.cc
}

// MaxChromaForValue returns the upper bound on chroma achievable at the
// given value (in [0, 1]).
func (h Hue[T]) MaxChromaForValue(value float64) float64 {
	return h.MaxChromaForTotal(value * 3 * float64(One[T]()))
}

// rgbWithTotal returns the triple at this hue whose components sum to
// reqTotal: the max chroma triple scaled toward black when reqTotal is
// below the hexagon edge total, or with grey added on the way to white
// when above.
func (h Hue[T]) rgbWithTotal(reqTotal float64) RGB[T] {
	onef := float64(One[T]())
	if h.IsGrey() {
		v := Round[T](reqTotal / 3)
		return RGB[T]{v, v, v}
	}
	curTotal := onef + float64(h.other)
	shortfall := reqTotal - curTotal
	var a [3]T
	switch {
	case shortfall == 0:
		a[h.io[0]] = One[T]()
		a[h.io[1]] = h.other
	case shortfall < 0:
		a[h.io[0]] = Round[T](onef * reqTotal / curTotal)
		a[h.io[1]] = Round[T](float64(h.other) * reqTotal / curTotal)
	default:
		a[h.io[0]] = One[T]()
		// simpler to work out the weakest component first
		weak := Round[T](shortfall * onef / (2*onef - float64(h.other)))
		a[h.io[2]] = weak
		a[h.io[1]] = Round[T](float64(h.other) + shortfall - float64(weak))
	}
	return fromComponents(a)
}

// RGBWithValue returns the triple at this hue with the given value (in
// [0, 1]). If the value is more than the hue can carry at full chroma
// the result deviates toward the weakest component on its way to white.
func (h Hue[T]) RGBWithValue(value float64) RGB[T] {
	return h.rgbWithTotal(RoundScalar[T](value * 3 * float64(One[T]())))
}

// RotatedBy returns the hue rotated by delta radians.
func (h Hue[T]) RotatedBy(delta float64) Hue[T] {
	return HueFromAngle[T](h.angle + delta)
}

// XYForChroma returns the hexagon projection of this hue at the given
// chroma, which must be in (0, 1].
func (h Hue[T]) XYForChroma(chroma float64) XY {
	hypot := chroma * float64(One[T]()) / h.cc
	return XY{hypot * math.Cos(h.angle), hypot * math.Sin(h.angle)}
}

// Equal reports whether two hues have the same angle. Grey hues compare
// equal to each other and unequal to every real hue.
func (h Hue[T]) Equal(o Hue[T]) bool {
	if h.IsGrey() {
		return o.IsGrey()
	}
	return h.angle == o.angle
}

// Less orders hues by angle, with grey sorting before any real hue.
func (h Hue[T]) Less(o Hue[T]) bool {
	if h.IsGrey() {
		return !o.IsGrey()
	}
	if o.IsGrey() {
		return false
	}
	return h.angle < o.angle
}

// Diff returns the signed angular difference h-o wrapped into (-pi, pi].
func (h Hue[T]) Diff(o Hue[T]) float64 {
	return normalizeAngle(h.angle - o.angle)
}
