// Copyright (c) 2026, The Paintmix Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"github.com/paintmix/paintmix/hcv"
	"github.com/paintmix/paintmix/rgb"
)

// NamedColour is a colour view with a display name, used for the ideal
// palette and other reference swatches.
type NamedColour struct {
	Name   string
	Colour hcv.HCVW[rgb.Depth16]
}

// Ideals returns the "ideal" palette: the full hue range at full
// strength plus black and white, in the traditional display order.
func Ideals() []NamedColour {
	return []NamedColour{
		{"WHITE", hcv.NewW(rgb.White[rgb.Depth16]())},
		{"MAGENTA", hcv.NewW(rgb.Magenta[rgb.Depth16]())},
		{"RED", hcv.NewW(rgb.Red[rgb.Depth16]())},
		{"YELLOW", hcv.NewW(rgb.Yellow[rgb.Depth16]())},
		{"GREEN", hcv.NewW(rgb.Green[rgb.Depth16]())},
		{"CYAN", hcv.NewW(rgb.Cyan[rgb.Depth16]())},
		{"BLUE", hcv.NewW(rgb.Blue[rgb.Depth16]())},
		{"BLACK", hcv.NewW(rgb.Black[rgb.Depth16]())},
	}
}
