// Copyright (c) 2026, The Paintmix Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/paintmix/paintmix/rgb"
)

// ParseError reports a malformed collection definition. It carries the
// offending line so callers can show it to the user.
type ParseError struct {
	Line   string // offending line, empty for header-level problems
	Reason string
}

func (e *ParseError) Error() string {
	if e.Line == "" {
		return "parse error: " + e.Reason
	}
	return fmt.Sprintf("parse error: %s: %q", e.Reason, e.Line)
}

func parseErrorf(line, format string, args ...any) error {
	return &ParseError{Line: line, Reason: fmt.Sprintf(format, args...)}
}

// recordFormat is one historical record variant: a detector applied to
// the first body line and a parser applied to every body line. Formats
// are tried in order and the first match fixes the parser for the whole
// file; collection files never mix variants.
type recordFormat struct {
	name  string
	match func(line string) bool
	parse func(line string) (*Paint, error)
}

// recordFormats lists the variants from oldest to newest, ending with
// the permissive fallback. Order matters: the legacy matchers are
// stricter and must get first refusal.
var recordFormats = []recordFormat{
	{
		name:  "legacy model",
		match: legacyModelRe.MatchString,
		parse: parseLegacyModel,
	},
	{
		name:  "legacy art",
		match: legacyArtRe.MatchString,
		parse: parseLegacyArt,
	},
	{
		name:  "current",
		match: currentRe.MatchString,
		parse: parseCurrent,
	},
	{
		name:  "expression",
		match: fallbackRe.MatchString,
		parse: parseFallback,
	},
}

var (
	headerRe = regexp.MustCompile(`^([A-Za-z]+):\s+(\S.*?)\s*$`)

	// legacy records: name, then RGB/characteristic sub-expressions with
	// 8 bit channels
	legacyModelRe = regexp.MustCompile(`^([^:]+):\s+RGB\(([^)]+)\), Transparency\(([^)]+)\), Finish\(([^)]+)\)\s*$`)
	legacyArtRe   = regexp.MustCompile(`^([^:]+):\s+RGB\(([^)]+)\), Transparency\(([^)]+)\), Permanence\(([^)]+)\)\s*$`)

	// current records: constructor-call form with explicit labels
	currentRe = regexp.MustCompile(`^(ModelPaint|ArtPaint|NamedColour)\(name="((?:[^"\\]|\\.)*)", rgb=(RGB(?:8|16|P)?\([^)]*\))((?:, \w+="(?:[^"\\]|\\.)*")*)\)\s*$`)

	// fallback: any constructor-call-like record with a name and an rgb
	fallbackRe = regexp.MustCompile(`^\w+\(name="((?:[^"\\]|\\.)*)", rgb=(RGB(?:8|16|P)?\([^)]*\))((?:, \w+="(?:[^"\\]|\\.)*")*)\)\s*$`)

	argRe = regexp.MustCompile(`(\w+)="((?:[^"\\]|\\.)*)"`)
)

// parseRGBLiteral parses the textual triple forms "RGB(65535, 0, 0)"
// and "RGB16(red=0xFFFF, green=0x0, blue=0x0)" into 16 bit channels.
func parseRGBLiteral(s string) (rgb.RGB16, error) {
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return rgb.RGB16{}, fmt.Errorf("malformed rgb literal %q", s)
	}
	fields := strings.Split(s[open+1:len(s)-1], ",")
	if len(fields) != 3 {
		return rgb.RGB16{}, fmt.Errorf("rgb literal %q needs 3 components", s)
	}
	var ch [3]rgb.Depth16
	for i, f := range fields {
		f = strings.TrimSpace(f)
		if eq := strings.IndexByte(f, '='); eq >= 0 {
			f = f[eq+1:]
		}
		v, err := strconv.ParseUint(f, 0, 64)
		if err != nil || v > 0xFFFF {
			return rgb.RGB16{}, fmt.Errorf("bad channel value %q in %q", f, s)
		}
		ch[i] = rgb.Depth16(v)
	}
	return rgb.RGB16{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// parseLegacy8RGB parses an RGB literal with 8 bit channels and promotes
// it with the historical left shift by 8, not the general conversion:
// legacy files were written that way and imported colours must not move.
func parseLegacy8RGB(s string) (rgb.RGB16, error) {
	var ch [3]rgb.Depth16
	fields := strings.Split(s, ",")
	if len(fields) != 3 {
		return rgb.RGB16{}, fmt.Errorf("rgb literal needs 3 components, got %q", s)
	}
	for i, f := range fields {
		v, err := strconv.ParseUint(strings.TrimSpace(f), 0, 64)
		if err != nil || v > 0xFF {
			return rgb.RGB16{}, fmt.Errorf("bad 8 bit channel value %q", f)
		}
		ch[i] = rgb.Depth16(v) << 8
	}
	return rgb.RGB16{R: ch[0], G: ch[1], B: ch[2]}, nil
}

func parseLegacy(re *regexp.Regexp, kind Kind, other Scale, line string) (*Paint, error) {
	m := re.FindStringSubmatch(line)
	if m == nil {
		return nil, parseErrorf(line, "badly formed definition")
	}
	c, err := parseLegacy8RGB(m[2])
	if err != nil {
		return nil, parseErrorf(line, "%v", err)
	}
	p := New(kind, strings.TrimSpace(m[1]), c)
	if err := p.SetCharacteristic(Transparency, strings.TrimSpace(m[3])); err != nil {
		return nil, parseErrorf(line, "%v", err)
	}
	if err := p.SetCharacteristic(other, strings.TrimSpace(m[4])); err != nil {
		return nil, parseErrorf(line, "%v", err)
	}
	return p, nil
}

func parseLegacyModel(line string) (*Paint, error) {
	return parseLegacy(legacyModelRe, Model, Finish, line)
}

func parseLegacyArt(line string) (*Paint, error) {
	return parseLegacy(legacyArtRe, Art, Permanence, line)
}

// scaleForKey maps a record argument key to a characteristic scale.
func scaleForKey(key string) (Scale, bool) {
	switch key {
	case "transparency":
		return Transparency, true
	case "finish":
		return Finish, true
	case "permanence":
		return Permanence, true
	}
	return 0, false
}

// buildPaint assembles a paint from the matched parts of a constructor
// form record. The kind comes from the type name when it names one, and
// from the characteristic keys otherwise.
func buildPaint(line, typeName, name, rgbLit, args string) (*Paint, error) {
	kvs := argRe.FindAllStringSubmatch(args, -1)
	kind := Model
	switch typeName {
	case "ArtPaint":
		kind = Art
	case "ModelPaint":
		kind = Model
	default:
		for _, kv := range kvs {
			if kv[1] == "permanence" {
				kind = Art
			}
		}
	}
	c, err := parseRGBLiteral(rgbLit)
	if err != nil {
		return nil, parseErrorf(line, "%v", err)
	}
	p := New(kind, unescapeName(name), c)
	for _, kv := range kvs {
		key, val := kv[1], unescapeName(kv[2])
		if scale, ok := scaleForKey(key); ok {
			if err := p.SetCharacteristic(scale, val); err != nil {
				return nil, parseErrorf(line, "%v", err)
			}
			continue
		}
		if p.Extras == nil {
			p.Extras = map[string]string{}
		}
		p.Extras[key] = val
	}
	return p, nil
}

func parseCurrent(line string) (*Paint, error) {
	m := currentRe.FindStringSubmatch(line)
	if m == nil {
		return nil, parseErrorf(line, "badly formed definition")
	}
	return buildPaint(line, m[1], m[2], m[3], m[4])
}

func parseFallback(line string) (*Paint, error) {
	m := fallbackRe.FindStringSubmatch(line)
	if m == nil {
		return nil, parseErrorf(line, "badly formed definition")
	}
	return buildPaint(line, "", m[1], m[2], m[3])
}

// parseHeader extracts the owner and collection names from the first two
// lines, accepting the two labelled fields in either order.
func parseHeader(kind CollectionKind, lines []string) (owner, name string, err error) {
	for _, line := range lines[:2] {
		m := headerRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		switch m[1] {
		case kind.OwnerLabel():
			owner = m[2]
		case kind.NameLabel():
			name = m[2]
		}
	}
	switch {
	case owner == "" && name == "":
		return "", "", &ParseError{Reason: fmt.Sprintf("neither %s nor %s name found",
			strings.ToLower(kind.OwnerLabel()), strings.ToLower(kind.NameLabel()))}
	case owner == "":
		return "", "", &ParseError{Reason: kind.OwnerLabel() + " not found"}
	case name == "":
		return "", "", &ParseError{Reason: kind.NameLabel() + " name not found"}
	}
	return owner, name, nil
}

// ParseCollection parses a collection definition text. The record format
// is detected from the first paint line and applied to the whole body;
// see [recordFormats] for the recognized variants.
func ParseCollection(kind CollectionKind, text string) (*Collection, error) {
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	if len(lines) < 2 {
		return nil, &ParseError{Reason: fmt.Sprintf("too few lines: %d", len(lines))}
	}
	owner, name, err := parseHeader(kind, lines)
	if err != nil {
		return nil, err
	}
	coll := NewCollection(kind, owner, name)
	var format *recordFormat
	for _, line := range lines[2:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if format == nil {
			for i := range recordFormats {
				if recordFormats[i].match(line) {
					format = &recordFormats[i]
					break
				}
			}
			if format == nil {
				return nil, parseErrorf(line, "badly formed definition")
			}
		}
		p, err := format.parse(line)
		if err != nil {
			return nil, err
		}
		coll.Add(p)
	}
	return coll, nil
}
