// Copyright (c) 2026, The Paintmix Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"fmt"
	"math"
	"strconv"
)

// Rating is one discrete step on a characteristic scale, with its
// abbreviation (used in collection files), full description and the
// scalar it maps to.
type Rating struct {
	Abbrev string
	Descr  string
	Value  float64
}

// Scale identifies a paint characteristic: a non-colour attribute rated
// on a small ordered scale.
type Scale int32

const (
	// Transparency rates how much ground shows through, Opaque to Clear.
	Transparency Scale = iota

	// Finish rates the dried sheen, Gloss to Flat.
	Finish

	// Permanence rates lightfastness, Extremely Permanent to Fugitive.
	Permanence
)

// String returns the key used for this scale in collection file records.
func (s Scale) String() string {
	switch s {
	case Transparency:
		return "transparency"
	case Finish:
		return "finish"
	case Permanence:
		return "permanence"
	}
	return "Scale(" + strconv.FormatInt(int64(s), 10) + ")"
}

var ratings = map[Scale][]Rating{
	Transparency: {
		{"O", "Opaque", 1},
		{"SO", "Semi-opaque", 2},
		{"ST", "Semi-transparent", 3},
		{"T", "Transparent", 4},
		{"C", "Clear", 5},
	},
	Finish: {
		{"G", "Gloss", 4},
		{"SG", "Semi-gloss", 3},
		{"SF", "Semi-flat", 2},
		{"F", "Flat", 1},
	},
	Permanence: {
		{"AA", "Extremely Permanent", 4},
		{"A", "Permanent", 3},
		{"B", "Moderately Durable", 2},
		{"C", "Fugitive", 1},
	},
}

// Ratings returns the ordered rating steps for this scale.
func (s Scale) Ratings() []Rating {
	return ratings[s]
}

// Characteristic is a rated non-colour paint attribute: a scalar on one
// [Scale]. The scalar is kept unrounded so that repeated blending stays
// associative; it is snapped to the nearest rating only when a label is
// requested.
type Characteristic struct {
	Scale Scale
	Val   float64
}

// NewCharacteristic resolves a label (an abbreviation, a description or
// a bare number) on the given scale. Unknown labels return a
// [ErrInvalidCharacteristic] error.
func NewCharacteristic(scale Scale, label string) (Characteristic, error) {
	for _, r := range scale.Ratings() {
		if label == r.Abbrev || label == r.Descr {
			return Characteristic{Scale: scale, Val: r.Value}, nil
		}
	}
	if v, err := strconv.ParseFloat(label, 64); err == nil {
		return Characteristic{Scale: scale, Val: v}, nil
	}
	return Characteristic{}, fmt.Errorf("%w: unrecognized %v value %q",
		ErrInvalidCharacteristic, scale, label)
}

// rating returns the step nearest to the current scalar. Exact ties
// snap to the even-valued rating, keeping blend display stable across
// releases.
func (c Characteristic) rating() (Rating, error) {
	rv := math.RoundToEven(c.Val)
	for _, r := range c.Scale.Ratings() {
		if rv == r.Value {
			return r, nil
		}
	}
	return Rating{}, fmt.Errorf("%w: %v value %g has no rating",
		ErrInvalidCharacteristic, c.Scale, c.Val)
}

// Abbrev returns the abbreviation of the nearest rating, e.g. "SO".
func (c Characteristic) Abbrev() (string, error) {
	r, err := c.rating()
	if err != nil {
		return "", err
	}
	return r.Abbrev, nil
}

// Descr returns the description of the nearest rating, e.g. "Semi-opaque".
func (c Characteristic) Descr() (string, error) {
	r, err := c.rating()
	if err != nil {
		return "", err
	}
	return r.Descr, nil
}

// Scaled returns the characteristic multiplied by f (for weighted sums).
func (c Characteristic) Scaled(f float64) Characteristic {
	return Characteristic{Scale: c.Scale, Val: c.Val * f}
}

// Plus returns the sum of two characteristics on the same scale.
func (c Characteristic) Plus(o Characteristic) Characteristic {
	return Characteristic{Scale: c.Scale, Val: c.Val + o.Val}
}

// Div returns the characteristic divided by d.
func (c Characteristic) Div(d float64) Characteristic {
	return Characteristic{Scale: c.Scale, Val: c.Val / d}
}

// Less orders characteristics on the same scale by scalar.
func (c Characteristic) Less(o Characteristic) bool {
	return c.Val < o.Val
}

// Alpha maps a transparency rating onto an opacity proportion: 1 for
// Opaque down to 0 for Clear. It is only meaningful on the
// [Transparency] scale.
func (c Characteristic) Alpha() float64 {
	return (5 - c.Val) / 4
}

// Characteristics is the ordered characteristic set of one paint, fixed
// by its kind's schema.
type Characteristics []Characteristic

// NewCharacteristics returns a set with one zero-valued entry per scale,
// in schema order.
func NewCharacteristics(scales []Scale) Characteristics {
	cs := make(Characteristics, len(scales))
	for i, s := range scales {
		cs[i] = Characteristic{Scale: s}
	}
	return cs
}

// Get returns the characteristic on the given scale, or false when the
// schema does not include it.
func (cs Characteristics) Get(scale Scale) (Characteristic, bool) {
	for _, c := range cs {
		if c.Scale == scale {
			return c, true
		}
	}
	return Characteristic{}, false
}

// set replaces the entry on c's scale; the scale must be in the schema.
func (cs Characteristics) set(c Characteristic) bool {
	for i := range cs {
		if cs[i].Scale == c.Scale {
			cs[i] = c
			return true
		}
	}
	return false
}
