// Copyright (c) 2026, The Paintmix Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"fmt"
	"sort"
	"strings"
)

// CollectionKind distinguishes the two kinds of paint collection and
// fixes the header labels of their definition files.
type CollectionKind int32

const (
	// Series is a manufacturer's paint series ("Manufacturer"/"Series").
	Series CollectionKind = iota

	// Standard is a sponsored colour standard ("Sponsor"/"Standard").
	Standard
)

// OwnerLabel returns the first header label of this collection kind.
func (k CollectionKind) OwnerLabel() string {
	if k == Standard {
		return "Sponsor"
	}
	return "Manufacturer"
}

// NameLabel returns the second header label of this collection kind.
func (k CollectionKind) NameLabel() string {
	if k == Standard {
		return "Standard"
	}
	return "Series"
}

func (k CollectionKind) String() string {
	if k == Standard {
		return "standard"
	}
	return "series"
}

// ID identifies a collection by its owner (manufacturer or sponsor) and
// name.
type ID struct {
	Owner string
	Name  string
}

// Collection is a set of paints keyed by their unique names, belonging
// to one owner: a manufacturer's series or a sponsor's standard.
type Collection struct {
	// Kind selects the header labels used by the definition text.
	Kind CollectionKind

	// ID is the owner/name pair from the definition header.
	ID ID

	paints map[string]*Paint
}

// NewCollection returns an empty collection.
func NewCollection(kind CollectionKind, owner, name string) *Collection {
	return &Collection{
		Kind:   kind,
		ID:     ID{Owner: owner, Name: name},
		paints: map[string]*Paint{},
	}
}

// Add inserts a paint, replacing any existing paint with the same name.
func (c *Collection) Add(p *Paint) {
	c.paints[p.Name()] = p
}

// Get returns the paint with the given name, or nil.
func (c *Collection) Get(name string) *Paint {
	return c.paints[name]
}

// Len returns the number of paints.
func (c *Collection) Len() int {
	return len(c.paints)
}

// Names returns the paint names in sorted order.
func (c *Collection) Names() []string {
	names := make([]string, 0, len(c.paints))
	for n := range c.paints {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Paints returns the paints sorted by name.
func (c *Collection) Paints() []*Paint {
	names := c.Names()
	ps := make([]*Paint, len(names))
	for i, n := range names {
		ps[i] = c.paints[n]
	}
	return ps
}

// Less orders collections by owner, then name.
func (c *Collection) Less(o *Collection) bool {
	if c.ID.Owner != o.ID.Owner {
		return c.ID.Owner < o.ID.Owner
	}
	return c.ID.Name < o.ID.Name
}

// DefinitionText renders the collection in the current persistence
// format: two header lines followed by one record per paint, sorted by
// name. The output always uses the current record form regardless of
// the format the collection was parsed from.
func (c *Collection) DefinitionText() (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", c.Kind.OwnerLabel(), c.ID.Owner)
	fmt.Fprintf(&b, "%s: %s\n", c.Kind.NameLabel(), c.ID.Name)
	for _, p := range c.Paints() {
		rec, err := p.Record()
		if err != nil {
			return "", err
		}
		b.WriteString(rec)
		b.WriteString("\n")
	}
	return b.String(), nil
}
