// Copyright (c) 2026, The Paintmix Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hcv

import (
	"math"

	"github.com/paintmix/paintmix/rgb"
)

// Manipulator is a mutable cursor over one colour that performs bounded
// incremental edits: value up/down, chroma up/down and hue rotation.
// It works internally at [rgb.Propn] precision for numerical stability
// and remembers the last non-grey hue seen, so that increasing chroma
// from black or white resumes in the direction the user came from
// instead of demanding a fresh hue pick.
//
// A Manipulator is not safe for concurrent use; give each caller (e.g.
// each UI widget) its own cursor.
type Manipulator struct {
	rgb     rgb.RGBP
	xy      rgb.XY
	baseRGB rgb.RGBP // simplest (grey-free) form of the current colour
	hue     rgb.Hue[rgb.Propn]
	lastHue rgb.Hue[rgb.Propn]
	value   float64
	chroma  float64
}

// NewManipulator returns a cursor positioned at c, converted to the
// internal proportional precision.
func NewManipulator[T rgb.Component](c rgb.RGB[T]) *Manipulator {
	m := &Manipulator{}
	m.SetRGB(rgb.ConvertRGB[rgb.Propn](c))
	return m
}

// SetRGB repositions the cursor at c. The remembered last hue is reset
// to c's own hue, grey or not.
func (m *Manipulator) SetRGB(c rgb.RGBP) {
	m.set(c)
	m.lastHue = m.hue
}

// set updates the colour and every cached attribute.
func (m *Manipulator) set(c rgb.RGBP) {
	m.rgb = c
	m.value = c.Value()
	m.xy = rgb.XYOf(c)
	m.baseRGB = rgb.SimplestRGB[rgb.Propn](m.xy)
	m.hue = rgb.HueFromAngle[rgb.Propn](m.xy.Angle())
	m.chroma = math.Min(m.xy.Hypot()*m.hue.ChromaCorrection(), 1)
}

// RGB returns the current colour at the internal proportional precision;
// convert with [rgb.ConvertRGB] for other precisions.
func (m *Manipulator) RGB() rgb.RGBP { return m.rgb }

// Value returns the cached value of the current colour.
func (m *Manipulator) Value() float64 { return m.value }

// Chroma returns the cached chroma of the current colour.
func (m *Manipulator) Chroma() float64 { return m.chroma }

// Hue returns the hue of the current colour (grey for greys).
func (m *Manipulator) Hue() rgb.Hue[rgb.Propn] { return m.hue }

// minValueForHC returns the lowest value reachable without changing hue
// or chroma: the value of the grey-free base colour.
func (m *Manipulator) minValueForHC() float64 {
	return m.baseRGB.Value()
}

// maxValueForHC returns the highest value reachable without changing hue
// or chroma: grey can be added until the strongest channel saturates.
func (m *Manipulator) maxValueForHC() float64 {
	return m.baseRGB.Value() + 1 - float64(m.baseRGB.Max())
}

// addGrey returns c with delta added to every channel.
func addGrey(c rgb.RGBP, delta float64) rgb.RGBP {
	d := rgb.Propn(delta)
	return rgb.RGBP{R: c.R + d, G: c.G + d, B: c.B + d}
}

// setFromValue moves to newValue along the maximum-chroma ridge for the
// current hue, reducing chroma only as far as the ridge demands.
func (m *Manipulator) setFromValue(newValue float64) {
	newChroma := m.hue.MaxChromaForValue(newValue)
	base := rgb.SimplestRGB[rgb.Propn](m.hue.XYForChroma(newChroma))
	m.set(addGrey(base, newValue-base.Value()))
}

// setFromChroma rescales the projection to newChroma, holding the value
// where the saturating channel allows.
func (m *Manipulator) setFromChroma(newChroma float64) {
	base := rgb.SimplestRGB[rgb.Propn](m.xy.Mul(newChroma / m.chroma))
	delta := math.Min(1-float64(base.Max()), m.value-base.Value())
	if delta > 0 {
		m.set(addGrey(base, delta))
	} else {
		m.set(base)
	}
}

// DecrValue darkens the colour by up to deltaV, clamping at black.
// It reports false and leaves the cursor unchanged when already at the
// lower bound.
func (m *Manipulator) DecrValue(deltaV float64) bool {
	if m.value <= 0 {
		return false
	}
	newValue := math.Max(0, m.value-deltaV)
	minValue := m.minValueForHC()
	switch {
	case newValue == 0:
		m.set(rgb.Black[rgb.Propn]())
	case newValue < minValue:
		m.setFromValue(newValue)
	default:
		m.set(addGrey(m.baseRGB, newValue-minValue))
	}
	m.noteHue()
	return true
}

// IncrValue lightens the colour by up to deltaV, clamping at white.
// It reports false and leaves the cursor unchanged when already at the
// upper bound.
func (m *Manipulator) IncrValue(deltaV float64) bool {
	if m.value >= 1 {
		return false
	}
	newValue := math.Min(1, m.value+deltaV)
	switch {
	case newValue >= 1:
		m.set(rgb.White[rgb.Propn]())
	case newValue > m.maxValueForHC():
		m.setFromValue(newValue)
	default:
		m.set(addGrey(m.baseRGB, newValue-m.minValueForHC()))
	}
	m.noteHue()
	return true
}

// DecrChroma desaturates the colour by up to deltaC, clamping at grey.
// It reports false when the colour is already achromatic.
func (m *Manipulator) DecrChroma(deltaC float64) bool {
	if m.chroma <= 0 {
		return false
	}
	m.setFromChroma(math.Max(0, m.chroma-deltaC))
	m.noteHue()
	return true
}

// referenceHue is the direction used to leave grey when no non-grey hue
// has ever been seen; any hue would do.
var referenceHue = rgb.HueFromAngle[rgb.Propn](0.5)

// IncrChroma saturates the colour by up to deltaC, clamping at the
// hexagon boundary. From a grey the remembered last non-grey hue picks
// the direction (or an arbitrary reference hue if there never was one).
// It reports false when chroma is already at its maximum.
func (m *Manipulator) IncrChroma(deltaC float64) bool {
	if m.chroma >= 1 {
		return false
	}
	if !m.hue.IsGrey() {
		m.setFromChroma(math.Min(1, m.chroma+deltaC))
		m.noteHue()
		return true
	}
	from := m.lastHue
	if from.IsGrey() {
		from = referenceHue
	}
	if m.value <= 0 || m.value >= 1 {
		base := rgb.SimplestRGB[rgb.Propn](from.XYForChroma(deltaC))
		if m.value <= 0 {
			m.set(base)
		} else {
			m.set(addGrey(base, 1-float64(base.Max())))
		}
	} else {
		newChroma := math.Min(deltaC, from.MaxChromaForValue(m.value))
		base := rgb.SimplestRGB[rgb.Propn](from.XYForChroma(newChroma))
		m.set(addGrey(base, m.value-base.Value()))
	}
	m.noteHue()
	return true
}

// RotateHue rotates the colour's hue by delta radians, holding chroma
// constant and the value as close to its prior level as the rotated hue
// allows. It reports false for greys, which have no hue to rotate.
func (m *Manipulator) RotateHue(delta float64) bool {
	if m.hue.IsGrey() {
		return false
	}
	base := rgb.SimplestRGB[rgb.Propn](m.hue.RotatedBy(delta).XYForChroma(m.chroma))
	d := math.Min(1-float64(base.Max()), m.value-base.Value())
	if d > 0 {
		m.set(addGrey(base, d))
	} else {
		m.set(base)
	}
	m.noteHue()
	return true
}

// noteHue records the current hue for grey-resume whenever it is real.
func (m *Manipulator) noteHue() {
	if !m.hue.IsGrey() {
		m.lastHue = m.hue
	}
}
