// Copyright (c) 2026, The Paintmix Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package config keeps track of the user's registered paint collection
files and a few session settings. Settings live in a TOML file in the
user's home directory; collection definitions live wherever the user
put them and are only referenced by path.
*/
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"github.com/paintmix/paintmix/paint"
)

// settingsFile is the settings path relative to the user's home directory.
const settingsFile = ".paintmix/settings.toml"

// Settings is the persisted application state: which collection
// definition files to load at startup and where the user last browsed.
type Settings struct {
	// SeriesFiles are paths of manufacturer series definition files.
	SeriesFiles []string `toml:"series_files"`

	// StandardFiles are paths of colour standard definition files.
	StandardFiles []string `toml:"standard_files"`

	// LastDir is the directory of the most recent file operation.
	LastDir string `toml:"last_dir"`
}

// Path returns the absolute settings file path.
func Path() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("locating home directory: %w", err)
	}
	return filepath.Join(home, settingsFile), nil
}

// Load reads the settings file. A missing file is not an error: it
// returns zero-valued defaults.
func Load() (*Settings, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Settings{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}
	s := &Settings{}
	if err := toml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parsing settings %s: %w", path, err)
	}
	return s, nil
}

// Save writes the settings file, creating its directory if needed.
func (s *Settings) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}
	data, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating settings directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	return nil
}

// filesFor returns a pointer to the registered file list for the kind.
func (s *Settings) filesFor(kind paint.CollectionKind) *[]string {
	if kind == paint.Standard {
		return &s.StandardFiles
	}
	return &s.SeriesFiles
}

// Register adds a collection file path to the settings, ignoring
// duplicates. It does not save.
func (s *Settings) Register(kind paint.CollectionKind, path string) {
	files := s.filesFor(kind)
	if slices.Contains(*files, path) {
		return
	}
	*files = append(*files, path)
}

// Deregister removes a collection file path from the settings. It does
// not save.
func (s *Settings) Deregister(kind paint.CollectionKind, path string) {
	files := s.filesFor(kind)
	*files = slices.DeleteFunc(*files, func(p string) bool { return p == path })
}

// LoadCollection reads and parses one collection definition file.
func LoadCollection(kind paint.CollectionKind, path string) (*paint.Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %v file: %w", kind, err)
	}
	coll, err := paint.ParseCollection(kind, string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return coll, nil
}

// SaveCollection writes a collection definition file in the current
// format, whatever format it was read from.
func SaveCollection(c *paint.Collection, path string) error {
	text, err := c.DefinitionText()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing %v file: %w", c.Kind, err)
	}
	return nil
}

// LoadAll loads every registered collection of the given kind. Files
// that cannot be read or parsed are logged and skipped so one stale
// registration does not block the rest. Collections come back sorted by
// owner then name.
func LoadAll(s *Settings, kind paint.CollectionKind) []*paint.Collection {
	var colls []*paint.Collection
	for _, path := range *s.filesFor(kind) {
		coll, err := LoadCollection(kind, path)
		if err != nil {
			slog.Warn("skipping unreadable collection file",
				"kind", kind.String(), "path", path, "err", err)
			continue
		}
		colls = append(colls, coll)
	}
	slices.SortFunc(colls, func(a, b *paint.Collection) int {
		if a.Less(b) {
			return -1
		}
		if b.Less(a) {
			return 1
		}
		return 0
	})
	return colls
}
