// Package column arranges a list of strings into aligned columns for
// terminal display and parses the column.* config values and --column
// command-line options that control it.
package column

import (
	"fmt"
	"strings"
)

// Layout selects how items are distributed when column output is enabled.
type Layout uint8

const (
	// LayoutColumn fills the first column top-to-bottom, then the next.
	LayoutColumn Layout = 0
	// LayoutRow fills rows left-to-right, then wraps.
	LayoutRow Layout = 1
	// LayoutPlain prints one item per line with indent and terminator.
	LayoutPlain Layout = 15
)

// String returns the config token for the layout.
func (l Layout) String() string {
	switch l {
	case LayoutColumn:
		return "column"
	case LayoutRow:
		return "row"
	case LayoutPlain:
		return "plain"
	default:
		return fmt.Sprintf("layout(%d)", uint8(l))
	}
}

// Packed bit layout of a Mode. Other parts of a host program may store the
// mode as an integer; these positions are stable.
const (
	BitsLayoutMask uint32 = 0x000F
	BitEnabled     uint32 = 1 << 4
	BitEnabledSet  uint32 = 1 << 5
	BitParseOpt    uint32 = 1 << 8
)

// Mode is the column output state built up from configuration and
// command-line options.
type Mode struct {
	Layout Layout

	// Enabled turns column output on. When false, Print emits one item per
	// line and ignores the layout.
	Enabled bool

	// EnabledSet records that Enabled was set by config or an option
	// rather than left at its default, so a later layer knows whether it
	// may still override it.
	EnabledSet bool

	// ParseOpt records that --column or --no-column was given.
	ParseOpt bool
}

// ExplicitlyEnabled reports whether the user asked for column output on the
// command line. Neither ParseOpt nor Enabled is sufficient on its own.
func (m Mode) ExplicitlyEnabled() bool {
	return m.ParseOpt && m.Enabled
}

// Bits packs the mode into its integer representation.
func (m Mode) Bits() uint32 {
	bits := uint32(m.Layout) & BitsLayoutMask
	if m.Enabled {
		bits |= BitEnabled
	}
	if m.EnabledSet {
		bits |= BitEnabledSet
	}
	if m.ParseOpt {
		bits |= BitParseOpt
	}
	return bits
}

// ModeFromBits unpacks an integer mode. Unknown layout selectors and bits
// outside the known fields are rejected.
func ModeFromBits(bits uint32) (Mode, error) {
	known := BitsLayoutMask | BitEnabled | BitEnabledSet | BitParseOpt
	if extra := bits &^ known; extra != 0 {
		return Mode{}, fmt.Errorf("%w: unknown bits %#x", ErrInvalidMode, extra)
	}
	layout := Layout(bits & BitsLayoutMask)
	switch layout {
	case LayoutColumn, LayoutRow, LayoutPlain:
	default:
		return Mode{}, fmt.Errorf("%w: unknown layout selector %d", ErrInvalidMode, uint8(layout))
	}
	return Mode{
		Layout:     layout,
		Enabled:    bits&BitEnabled != 0,
		EnabledSet: bits&BitEnabledSet != 0,
		ParseOpt:   bits&BitParseOpt != 0,
	}, nil
}

// String renders the mode as config tokens, e.g. "always,row".
func (m Mode) String() string {
	parts := make([]string, 0, 2)
	switch {
	case !m.EnabledSet && !m.Enabled:
		// default: nothing chosen yet
	case m.Enabled:
		parts = append(parts, "always")
	default:
		parts = append(parts, "never")
	}
	parts = append(parts, m.Layout.String())
	return strings.Join(parts, ",")
}
