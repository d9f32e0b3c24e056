// Copyright (c) 2026, The Paintmix Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paintmix/paintmix/rgb"
)

func TestParseRoundTrip(t *testing.T) {
	coll := NewCollection(Series, "Jotun", "Classics")

	white := New(Model, "Matt White", rgb.White[rgb.Depth16]())
	require.NoError(t, white.SetCharacteristic(Finish, "F"))
	coll.Add(white)

	tricky := New(Model, `Say "Ah"`, rgb.RGB16{R: 0x1234, G: 0x5678, B: 0x9ABC})
	require.NoError(t, tricky.SetCharacteristic(Transparency, "ST"))
	tricky.Extras = map[string]string{"notes": `fades "fast"`}
	coll.Add(tricky)

	text, err := coll.DefinitionText()
	require.NoError(t, err)

	got, err := ParseCollection(Series, text)
	require.NoError(t, err)
	assert.Equal(t, coll.ID, got.ID)
	require.Equal(t, coll.Len(), got.Len())
	for _, name := range coll.Names() {
		gp := got.Get(name)
		require.NotNil(t, gp, name)
		assert.True(t, coll.Get(name).Equal(gp), name)
	}
	assert.Equal(t, `fades "fast"`, got.Get(`Say "Ah"`).Extras["notes"])
}

func TestParseCurrentArt(t *testing.T) {
	text := "Sponsor: FS\n" +
		"Standard: 595C\n" +
		`ArtPaint(name="Crimson", rgb=RGB(65535, 0, 0), transparency="T", permanence="A")` + "\n"
	coll, err := ParseCollection(Standard, text)
	require.NoError(t, err)
	assert.Equal(t, ID{Owner: "FS", Name: "595C"}, coll.ID)
	p := coll.Get("Crimson")
	require.NotNil(t, p)
	assert.Equal(t, Art, p.Kind)
	assert.Equal(t, rgb.Red[rgb.Depth16](), p.RGB())
	perm, ok := p.Characteristics.Get(Permanence)
	require.True(t, ok)
	assert.Equal(t, 3.0, perm.Val)
}

func TestParseLegacyModel(t *testing.T) {
	text := "Manufacturer: Humbrol\n" +
		"Series: Enamel\n" +
		"Azure Blue: RGB(0x18, 0x10, 0xF8), Transparency(ST), Finish(G)\n" +
		"Brick Red: RGB(0xC0, 0x20, 0x20), Transparency(O), Finish(F)\n"
	coll, err := ParseCollection(Series, text)
	require.NoError(t, err)
	require.Equal(t, 2, coll.Len())

	p := coll.Get("Azure Blue")
	require.NotNil(t, p)
	assert.Equal(t, Model, p.Kind)
	// legacy 8 bit channels promote by a left shift of 8, not scaling
	assert.Equal(t, rgb.RGB16{R: 0x1800, G: 0x1000, B: 0xF800}, p.RGB())
	fi, ok := p.Characteristics.Get(Finish)
	require.True(t, ok)
	assert.Equal(t, 4.0, fi.Val)
}

func TestParseLegacyArt(t *testing.T) {
	text := "Sponsor: RAL\n" +
		"Standard: Classic\n" +
		"Signal Red: RGB(0xFF, 0x00, 0x00), Transparency(O), Permanence(AA)\n"
	coll, err := ParseCollection(Standard, text)
	require.NoError(t, err)
	p := coll.Get("Signal Red")
	require.NotNil(t, p)
	assert.Equal(t, Art, p.Kind)
	assert.Equal(t, rgb.RGB16{R: 0xFF00}, p.RGB())
	perm, ok := p.Characteristics.Get(Permanence)
	require.True(t, ok)
	assert.Equal(t, 4.0, perm.Val)
}

func TestParseExpressionFallback(t *testing.T) {
	text := "Manufacturer: Acme\n" +
		"Series: One\n" +
		`Paint(name="Hot Pink", rgb=RGB16(red=0xFFFF, green=0x0, blue=0x8000), transparency="O", permanence="A")` + "\n"
	coll, err := ParseCollection(Series, text)
	require.NoError(t, err)
	p := coll.Get("Hot Pink")
	require.NotNil(t, p)
	// a permanence key marks the record as art paint
	assert.Equal(t, Art, p.Kind)
	assert.Equal(t, rgb.RGB16{R: 0xFFFF, B: 0x8000}, p.RGB())
}

func TestParseHeaderOrderInsensitive(t *testing.T) {
	text := "Series: Enamel\nManufacturer: Humbrol\n"
	coll, err := ParseCollection(Series, text)
	require.NoError(t, err)
	assert.Equal(t, ID{Owner: "Humbrol", Name: "Enamel"}, coll.ID)
	assert.Equal(t, 0, coll.Len())
}

func TestParseErrors(t *testing.T) {
	_, err := ParseCollection(Series, "Manufacturer: X\n")
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Contains(t, perr.Reason, "too few lines")

	_, err = ParseCollection(Series, "Manufacturer: X\nStandard: nope\n")
	require.ErrorAs(t, err, &perr)
	assert.Contains(t, perr.Reason, "Series")

	_, err = ParseCollection(Series, "Series: X\nSponsor: nope\n")
	require.ErrorAs(t, err, &perr)
	assert.Contains(t, perr.Reason, "Manufacturer")

	bad := "Manufacturer: X\nSeries: Y\nnot a paint definition\n"
	_, err = ParseCollection(Series, bad)
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "not a paint definition", perr.Line)

	// a malformed line after a good one reports the bad line
	mixed := "Manufacturer: X\nSeries: Y\n" +
		`ModelPaint(name="A", rgb=RGB(1, 2, 3), transparency="O", finish="F")` + "\n" +
		"B: RGB(0x01, 0x02, 0x03), Transparency(O), Finish(F)\n"
	_, err = ParseCollection(Series, mixed)
	require.ErrorAs(t, err, &perr)
}

func TestParseSkipsBlankLines(t *testing.T) {
	text := "Manufacturer: X\nSeries: Y\n\n" +
		`ModelPaint(name="A", rgb=RGB(1, 2, 3), transparency="O", finish="F")` + "\n\n"
	coll, err := ParseCollection(Series, text)
	require.NoError(t, err)
	assert.Equal(t, 1, coll.Len())
}

func TestParseBadChannel(t *testing.T) {
	text := "Manufacturer: X\nSeries: Y\n" +
		`ModelPaint(name="A", rgb=RGB(70000, 0, 0), transparency="O", finish="F")` + "\n"
	_, err := ParseCollection(Series, text)
	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Contains(t, perr.Reason, "70000")
}
