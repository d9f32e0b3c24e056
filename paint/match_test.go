// Copyright (c) 2026, The Paintmix Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/paintmix/paintmix/rgb"
)

func TestClosest(t *testing.T) {
	red := New(Model, "Red", rgb.Red[rgb.Depth16]())
	green := New(Model, "Green", rgb.Green[rgb.Depth16]())
	blue := New(Model, "Blue", rgb.Blue[rgb.Depth16]())
	paints := []*Paint{red, green, blue}

	assert.Equal(t, red, Closest(paints, rgb.RGB16{R: 0xF000, G: 0x1000, B: 0x1000}))
	assert.Equal(t, green, Closest(paints, rgb.RGB16{R: 0x1000, G: 0xE000, B: 0x2000}))
	assert.Equal(t, blue, Closest(paints, rgb.Blue[rgb.Depth16]()))
}

func TestClosestExactMatchWins(t *testing.T) {
	a := New(Model, "A", rgb.RGB16{R: 0x8000, G: 0x8000, B: 0x8000})
	b := New(Model, "B", rgb.RGB16{R: 0x8100, G: 0x8000, B: 0x8000})
	got := Closest([]*Paint{a, b}, b.RGB())
	assert.Equal(t, b, got)
}

func TestClosestEmpty(t *testing.T) {
	assert.Nil(t, Closest(nil, rgb.Red[rgb.Depth16]()))
}
