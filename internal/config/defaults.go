package config

import (
	_ "embed"
)

//go:embed default.yaml
var defaultConfigYAML []byte

// DefaultConfigYAML returns the embedded default configuration.
func DefaultConfigYAML() []byte {
	return defaultConfigYAML
}

// Merge layers over on top of f. Non-empty values in over win; command
// entries are merged key by key.
func (f File) Merge(over File) File {
	out := f
	if over.Column.UI != "" {
		out.Column.UI = over.Column.UI
	}
	if len(over.Column.Commands) > 0 {
		merged := make(map[string]string, len(f.Column.Commands)+len(over.Column.Commands))
		for k, v := range f.Column.Commands {
			merged[k] = v
		}
		for k, v := range over.Column.Commands {
			merged[k] = v
		}
		out.Column.Commands = merged
	}
	if over.Layout.Width != nil {
		out.Layout.Width = over.Layout.Width
	}
	if over.Layout.Padding != nil {
		out.Layout.Padding = over.Layout.Padding
	}
	if over.Layout.Indent != nil {
		out.Layout.Indent = over.Layout.Indent
	}
	if over.Layout.Newline != nil {
		out.Layout.Newline = over.Layout.Newline
	}
	return out
}
