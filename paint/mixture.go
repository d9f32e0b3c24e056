// Copyright (c) 2026, The Paintmix Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/paintmix/paintmix/hcv"
	"github.com/paintmix/paintmix/rgb"
)

// Blob is a measured quantity of one paint going into a mixture.
type Blob struct {
	Paint *Paint
	Parts int
}

// Mixture is a parts-weighted combination of paints. Its colour and
// characteristics are the weighted means of the components, so mixing is
// associative: remixing a mixture with more paint gives the same result
// as mixing all the blobs at once. Characteristic values stay unrounded
// and snap to a rating only for display.
type Mixture struct {
	// Blobs are the components, largest quantity first.
	Blobs []Blob

	// Kind is inherited from the component paints.
	Kind Kind

	// Colour holds the derived-attribute view of the mixed colour.
	Colour hcv.HCVW[rgb.Depth16]

	// Characteristics are the blended attribute values.
	Characteristics Characteristics
}

// NewMixture combines blobs into a mixture. The total quantity must be
// positive or it reports [ErrEmptyMixture]. All paints must share a
// kind so their characteristic schemas agree.
func NewMixture(blobs []Blob) (*Mixture, error) {
	total := 0
	for _, b := range blobs {
		total += b.Parts
	}
	if total <= 0 {
		return nil, fmt.Errorf("%w: %d parts in total", ErrEmptyMixture, total)
	}
	kind := blobs[0].Paint.Kind
	for _, b := range blobs[1:] {
		if b.Paint.Kind != kind {
			return nil, fmt.Errorf("cannot mix %v with %v", kind, b.Paint.Kind)
		}
	}
	m := &Mixture{
		Blobs: make([]Blob, len(blobs)),
		Kind:  kind,
	}
	copy(m.Blobs, blobs)
	sort.SliceStable(m.Blobs, func(i, j int) bool {
		return m.Blobs[i].Parts > m.Blobs[j].Parts
	})

	weights := make([]float64, len(m.Blobs))
	values := make([]float64, len(m.Blobs))
	for i, b := range m.Blobs {
		weights[i] = float64(b.Parts)
	}
	var channels [3]float64
	for ch := range channels {
		for i, b := range m.Blobs {
			values[i] = float64(b.Paint.RGB().At(ch))
		}
		channels[ch] = stat.Mean(values, weights)
	}
	m.Colour = hcv.NewW(rgb.RGB16{
		R: rgb.Round[rgb.Depth16](channels[0]),
		G: rgb.Round[rgb.Depth16](channels[1]),
		B: rgb.Round[rgb.Depth16](channels[2]),
	})

	m.Characteristics = NewCharacteristics(kind.Schema())
	for _, s := range kind.Schema() {
		for i, b := range m.Blobs {
			c, _ := b.Paint.Characteristics.Get(s)
			values[i] = c.Val
		}
		m.Characteristics.set(Characteristic{Scale: s, Val: stat.Mean(values, weights)})
	}
	return m, nil
}

// Parts returns the total quantity of paint in the mixture.
func (m *Mixture) Parts() int {
	total := 0
	for _, b := range m.Blobs {
		total += b.Parts
	}
	return total
}

// ContainsPaint reports whether the paint is one of the components.
func (m *Mixture) ContainsPaint(p *Paint) bool {
	for _, b := range m.Blobs {
		if b.Paint == p || b.Paint.Equal(p) {
			return true
		}
	}
	return false
}

// RGB returns the mixture's colour triple.
func (m *Mixture) RGB() rgb.RGB16 { return m.Colour.RGB }

func (m *Mixture) String() string {
	parts := make([]string, len(m.Blobs))
	for i, b := range m.Blobs {
		parts[i] = fmt.Sprintf("%d x %s", b.Parts, b.Paint.Name())
	}
	return strings.Join(parts, " + ")
}

// MixedPaint is a mixture given a name and free-form notes so it can be
// used, and displayed, like a bought paint.
type MixedPaint struct {
	Name  string
	Notes string
	*Mixture
}
