// Copyright (c) 2026, The Paintmix Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/paintmix/paintmix/rgb"
)

// colorfulOf converts a 16 bit triple to a colorful colour for
// perceptual distance work.
func colorfulOf(c rgb.RGB16) colorful.Color {
	const one = float64(0xFFFF)
	return colorful.Color{
		R: float64(c.R) / one,
		G: float64(c.G) / one,
		B: float64(c.B) / one,
	}
}

// Closest returns the paint whose colour is nearest the target in CIE
// L*a*b* space, which tracks perceived colour difference far better than
// channel-wise distance. It returns nil for an empty slice. Ties keep
// the earlier paint.
func Closest(paints []*Paint, target rgb.RGB16) *Paint {
	want := colorfulOf(target)
	var best *Paint
	bestDist := 0.0
	for _, p := range paints {
		d := want.DistanceLab(colorfulOf(p.RGB()))
		if best == nil || d < bestDist {
			best, bestDist = p, d
		}
	}
	return best
}
