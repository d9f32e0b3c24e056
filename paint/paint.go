// Copyright (c) 2026, The Paintmix Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package paint models real paints: a named colour plus rated non-colour
characteristics (transparency, finish, permanence), organised into
collections (manufacturer series and standards) with a line-oriented
text persistence format, parts-weighted mixtures, and closest-paint
matching against a target colour.

Colour storage is 16 bits per channel, the precision of collection
files; all painterly attributes come from the
[github.com/paintmix/paintmix/hcv] views.
*/
package paint

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/paintmix/paintmix/hcv"
	"github.com/paintmix/paintmix/rgb"
)

// Error kinds. Characteristic and mixture errors normally indicate
// programmer error; parse errors are recoverable and carry the offending
// line (see [ParseError]).
var (
	// ErrInvalidCharacteristic marks a label or scalar outside a
	// characteristic's rating map.
	ErrInvalidCharacteristic = errors.New("invalid characteristic")

	// ErrEmptyMixture marks a mixture with no blobs or zero total parts.
	ErrEmptyMixture = errors.New("empty mixture")
)

// Kind is a kind of paint, fixing which characteristics a paint carries
// and the type name used for it in collection files.
type Kind int32

const (
	// Model is a hobby/model paint: transparency and finish.
	Model Kind = iota

	// Art is an artists' paint: transparency and permanence (and a
	// warmth reading on its colour).
	Art
)

// String returns the record type name written to collection files.
func (k Kind) String() string {
	if k == Art {
		return "ArtPaint"
	}
	return "ModelPaint"
}

// Schema returns the characteristic scales of this kind, in record order.
func (k Kind) Schema() []Scale {
	if k == Art {
		return []Scale{Transparency, Permanence}
	}
	return []Scale{Transparency, Finish}
}

// Paint is a named colour with rated characteristics. The name is
// immutable: it is the paint's key within a collection.
type Paint struct {
	name string

	// Kind fixes the characteristic schema and the record type name.
	Kind Kind

	// Colour holds the derived-attribute view of the paint's colour.
	Colour hcv.HCVW[rgb.Depth16]

	// Characteristics are the rated attributes, in schema order.
	Characteristics Characteristics

	// Extras are free-text fields (e.g. notes) preserved through the
	// persistence format.
	Extras map[string]string
}

// New returns a paint of the given kind with every characteristic at its
// lowest rating.
func New(kind Kind, name string, c rgb.RGB16) *Paint {
	p := &Paint{
		name:            name,
		Kind:            kind,
		Colour:          hcv.NewW(c),
		Characteristics: NewCharacteristics(kind.Schema()),
	}
	for _, s := range kind.Schema() {
		low := s.Ratings()[0]
		for _, r := range s.Ratings() {
			if r.Value < low.Value {
				low = r
			}
		}
		p.Characteristics.set(Characteristic{Scale: s, Val: low.Value})
	}
	return p
}

// Name returns the paint's immutable name.
func (p *Paint) Name() string { return p.name }

// RGB returns the paint's colour triple.
func (p *Paint) RGB() rgb.RGB16 { return p.Colour.RGB }

// SetRGB replaces the paint's colour, recomputing the derived view.
func (p *Paint) SetRGB(c rgb.RGB16) {
	p.Colour = hcv.NewW(c)
}

// SetCharacteristic resolves label on the given scale and stores it.
// Scales outside the paint's schema report [ErrInvalidCharacteristic].
func (p *Paint) SetCharacteristic(scale Scale, label string) error {
	c, err := NewCharacteristic(scale, label)
	if err != nil {
		return err
	}
	if !p.Characteristics.set(c) {
		return fmt.Errorf("%w: %v paints have no %v", ErrInvalidCharacteristic, p.Kind, scale)
	}
	return nil
}

// Equal reports whether two paints have the same name, kind, colour and
// characteristics.
func (p *Paint) Equal(o *Paint) bool {
	if p.name != o.name || p.Kind != o.Kind || p.Colour.RGB != o.Colour.RGB {
		return false
	}
	for _, c := range p.Characteristics {
		oc, ok := o.Characteristics.Get(c.Scale)
		if !ok || oc.Val != c.Val {
			return false
		}
	}
	return true
}

// escapeName escapes embedded double quotes for the record form.
func escapeName(name string) string {
	return strings.ReplaceAll(name, `"`, `\"`)
}

// unescapeName reverses [escapeName].
func unescapeName(name string) string {
	return strings.ReplaceAll(name, `\"`, `"`)
}

// Record renders the paint as one collection file line in the current
// format, e.g.
//
//	ModelPaint(name="Matt White", rgb=RGB(65535, 65535, 65535), transparency="O", finish="F")
//
// Extras follow the characteristics in sorted key order.
func (p *Paint) Record() (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "%v(name=\"%s\", rgb=%v", p.Kind, escapeName(p.name), p.Colour.RGB)
	for _, c := range p.Characteristics {
		abbrev, err := c.Abbrev()
		if err != nil {
			return "", fmt.Errorf("paint %q: %w", p.name, err)
		}
		fmt.Fprintf(&b, ", %v=%q", c.Scale, abbrev)
	}
	keys := make([]string, 0, len(p.Extras))
	for k := range p.Extras {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, ", %s=\"%s\"", k, escapeName(p.Extras[k]))
	}
	b.WriteString(")")
	return b.String(), nil
}

func (p *Paint) String() string {
	return p.name
}
