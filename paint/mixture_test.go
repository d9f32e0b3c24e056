// Copyright (c) 2026, The Paintmix Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paintmix/paintmix/rgb"
)

func TestMixRedAndWhite(t *testing.T) {
	red := New(Model, "Red", rgb.Red[rgb.Depth16]())
	white := New(Model, "White", rgb.White[rgb.Depth16]())
	require.NoError(t, red.SetCharacteristic(Transparency, "C"))
	require.NoError(t, white.SetCharacteristic(Transparency, "O"))

	m, err := NewMixture([]Blob{{red, 1}, {white, 1}})
	require.NoError(t, err)

	c := m.RGB()
	assert.Equal(t, rgb.Depth16(0xFFFF), c.R)
	assert.InDelta(t, 0x8000, float64(c.G), 1)
	assert.InDelta(t, 0x8000, float64(c.B), 1)
	assert.InDelta(t, 2.0/3.0, m.Colour.Value, 1e-4)

	tr, ok := m.Characteristics.Get(Transparency)
	require.True(t, ok)
	assert.Equal(t, 3.0, tr.Val)
	abbrev, err := tr.Abbrev()
	require.NoError(t, err)
	assert.Equal(t, "ST", abbrev)
}

func TestMixtureWeights(t *testing.T) {
	red := New(Model, "Red", rgb.Red[rgb.Depth16]())
	white := New(Model, "White", rgb.White[rgb.Depth16]())

	m, err := NewMixture([]Blob{{white, 1}, {red, 3}})
	require.NoError(t, err)

	// blobs sort by descending quantity
	assert.Equal(t, red, m.Blobs[0].Paint)
	assert.Equal(t, 4, m.Parts())
	assert.InDelta(t, 0x4000, float64(m.RGB().G), 1)
	assert.Equal(t, rgb.Depth16(0xFFFF), m.RGB().R)
}

func TestMixtureOrderInvariance(t *testing.T) {
	red := New(Model, "Red", rgb.Red[rgb.Depth16]())
	white := New(Model, "White", rgb.White[rgb.Depth16]())
	blue := New(Model, "Blue", rgb.Blue[rgb.Depth16]())
	require.NoError(t, red.SetCharacteristic(Transparency, "C"))

	m1, err := NewMixture([]Blob{{red, 1}, {white, 1}, {blue, 2}})
	require.NoError(t, err)
	m2, err := NewMixture([]Blob{{blue, 2}, {red, 1}, {white, 1}})
	require.NoError(t, err)

	assert.Equal(t, m2.RGB(), m1.RGB())
	a, _ := m1.Characteristics.Get(Transparency)
	b, _ := m2.Characteristics.Get(Transparency)
	assert.InDelta(t, b.Val, a.Val, 1e-12)
}

func TestEmptyMixture(t *testing.T) {
	_, err := NewMixture(nil)
	assert.ErrorIs(t, err, ErrEmptyMixture)

	red := New(Model, "Red", rgb.Red[rgb.Depth16]())
	_, err = NewMixture([]Blob{{red, 0}})
	assert.ErrorIs(t, err, ErrEmptyMixture)
}

func TestMixedKinds(t *testing.T) {
	model := New(Model, "A", rgb.Red[rgb.Depth16]())
	art := New(Art, "B", rgb.Blue[rgb.Depth16]())
	_, err := NewMixture([]Blob{{model, 1}, {art, 1}})
	assert.Error(t, err)
}

func TestContainsPaint(t *testing.T) {
	red := New(Model, "Red", rgb.Red[rgb.Depth16]())
	white := New(Model, "White", rgb.White[rgb.Depth16]())
	blue := New(Model, "Blue", rgb.Blue[rgb.Depth16]())

	m, err := NewMixture([]Blob{{red, 1}, {white, 2}})
	require.NoError(t, err)
	assert.True(t, m.ContainsPaint(red))
	assert.True(t, m.ContainsPaint(white))
	assert.False(t, m.ContainsPaint(blue))
}

func TestMixtureString(t *testing.T) {
	red := New(Model, "Red", rgb.Red[rgb.Depth16]())
	white := New(Model, "White", rgb.White[rgb.Depth16]())
	m, err := NewMixture([]Blob{{red, 1}, {white, 2}})
	require.NoError(t, err)
	assert.Equal(t, "2 x White + 1 x Red", m.String())
}

func TestMixedPaint(t *testing.T) {
	red := New(Model, "Red", rgb.Red[rgb.Depth16]())
	white := New(Model, "White", rgb.White[rgb.Depth16]())
	m, err := NewMixture([]Blob{{red, 1}, {white, 1}})
	require.NoError(t, err)

	mp := MixedPaint{Name: "Pink", Notes: "cheeks", Mixture: m}
	assert.Equal(t, m.RGB(), mp.RGB())
}
