package config

import (
	"fmt"

	"github.com/oakwood-commons/column/pkg/column"
)

// File is the on-disk configuration. Both YAML and TOML use the same keys.
type File struct {
	Column ColumnSection `yaml:"column" toml:"column"`
	Layout LayoutSection `yaml:"layout" toml:"layout"`
}

// ColumnSection holds column.ui and the per-command column.<command> values.
type ColumnSection struct {
	UI       string            `yaml:"ui" toml:"ui"`
	Commands map[string]string `yaml:"commands" toml:"commands"`
}

// LayoutSection holds geometry defaults. Pointers distinguish unset from
// zero so that flags and config can be layered.
type LayoutSection struct {
	Width   *int    `yaml:"width" toml:"width"`
	Padding *int    `yaml:"padding" toml:"padding"`
	Indent  *string `yaml:"indent" toml:"indent"`
	Newline *string `yaml:"nl" toml:"nl"`
}

// Mode applies column.ui and then column.<command> on top of base. An
// invalid value stops at that key; the returned error names it and base is
// returned unchanged.
func (f File) Mode(base column.Mode, command string, stdoutIsTTY bool) (column.Mode, error) {
	m := base
	if f.Column.UI != "" {
		if err := column.ParseConfig(&m, f.Column.UI, stdoutIsTTY); err != nil {
			return base, fmt.Errorf("invalid column.ui mode %q: %w", f.Column.UI, err)
		}
	}
	if command == "" {
		return m, nil
	}
	if v, ok := f.Column.Commands[command]; ok && v != "" {
		if err := column.ParseConfig(&m, v, stdoutIsTTY); err != nil {
			return base, fmt.Errorf("invalid column.%s mode %q: %w", command, v, err)
		}
	}
	return m, nil
}

// Options overlays the layout section on opts.
func (f File) Options(opts column.Options) column.Options {
	if f.Layout.Width != nil {
		opts.Width = *f.Layout.Width
	}
	if f.Layout.Padding != nil {
		opts.Padding = *f.Layout.Padding
	}
	if f.Layout.Indent != nil {
		opts.Indent = *f.Layout.Indent
	}
	if f.Layout.Newline != nil {
		opts.Newline = *f.Layout.Newline
	}
	return opts
}
