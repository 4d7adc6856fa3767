// Package config loads formatter options from an esfmt.toml manifest.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"esfmt/internal/format"
)

// FileName is the manifest name looked up next to formatted files.
const FileName = "esfmt.toml"

// ErrNotFound indicates that no manifest exists on the searched path.
var ErrNotFound = errors.New("config: esfmt.toml not found")

type manifest struct {
	Format struct {
		Semi           *bool  `toml:"semi"`
		BracketSpacing *bool  `toml:"bracket_spacing"`
		TrailingComma  string `toml:"trailing_comma"`
		PrintWidth     int    `toml:"print_width"`
		IndentWidth    int    `toml:"indent_width"`
		UseTabs        bool   `toml:"use_tabs"`
	} `toml:"format"`
}

// Load reads a manifest file and merges it over the default options.
// Options absent from the file keep their defaults.
func Load(path string) (format.Options, error) {
	opts := format.DefaultOptions()

	var m manifest
	meta, err := toml.DecodeFile(path, &m)
	if err != nil {
		return opts, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("format") {
		return opts, nil
	}

	if m.Format.Semi != nil {
		opts.Semi = *m.Format.Semi
	}
	if m.Format.BracketSpacing != nil {
		opts.BracketSpacing = *m.Format.BracketSpacing
	}
	if m.Format.TrailingComma != "" {
		tc, err := format.ParseTrailingComma(m.Format.TrailingComma)
		if err != nil {
			return opts, fmt.Errorf("%s: %w", path, err)
		}
		opts.TrailingComma = tc
	}
	if m.Format.PrintWidth > 0 {
		opts.PrintWidth = m.Format.PrintWidth
	}
	if m.Format.IndentWidth > 0 {
		opts.IndentWidth = m.Format.IndentWidth
	}
	opts.UseTabs = m.Format.UseTabs
	return opts, nil
}

// Discover walks from dir upward to the filesystem root looking for a
// manifest, returning ErrNotFound when none exists.
func Discover(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNotFound
		}
		dir = parent
	}
}
