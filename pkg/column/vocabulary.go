package column

import (
	"sort"
	"strings"
	"sync"
)

// Group classifies what a token controls. Parsing tracks which groups a
// value touched so that a layout without an enablement token can imply
// "always".
type Group uint8

const (
	// GroupOther is for tokens that touch neither enablement nor layout.
	GroupOther Group = iota
	// GroupEnable covers always/never/auto.
	GroupEnable
	// GroupLayout covers column/row/plain.
	GroupLayout
)

// Effect applies a token to a mode. stdoutIsTTY is the caller's hint for
// tokens such as "auto" whose result depends on the output device.
type Effect func(m *Mode, stdoutIsTTY bool)

type token struct {
	group  Group
	effect Effect
}

// Vocabulary is the set of tokens accepted in column config values and
// --column arguments. It is safe for concurrent use.
type Vocabulary struct {
	mu     sync.RWMutex
	tokens map[string]token
}

// NewVocabulary returns an empty vocabulary.
func NewVocabulary() *Vocabulary {
	return &Vocabulary{tokens: make(map[string]token)}
}

// DefaultVocabulary returns a vocabulary holding always, never, auto,
// plain, column and row.
func DefaultVocabulary() *Vocabulary {
	v := NewVocabulary()
	v.Register("always", GroupEnable, func(m *Mode, _ bool) {
		m.Enabled = true
		m.EnabledSet = true
	})
	v.Register("never", GroupEnable, func(m *Mode, _ bool) {
		m.Enabled = false
		m.EnabledSet = true
	})
	v.Register("auto", GroupEnable, func(m *Mode, stdoutIsTTY bool) {
		m.Enabled = stdoutIsTTY
		m.EnabledSet = true
	})
	for _, l := range []Layout{LayoutPlain, LayoutColumn, LayoutRow} {
		layout := l
		v.Register(layout.String(), GroupLayout, func(m *Mode, _ bool) {
			m.Layout = layout
		})
	}
	return v
}

// Register adds or replaces a token.
func (v *Vocabulary) Register(name string, group Group, effect Effect) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.tokens[name] = token{group: group, effect: effect}
}

// Tokens returns the registered token names in sorted order.
func (v *Vocabulary) Tokens() []string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	names := make([]string, 0, len(v.tokens))
	for name := range v.tokens {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (v *Vocabulary) lookup(name string) (token, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	t, ok := v.tokens[name]
	return t, ok
}

// groupSet tracks which groups a parsed value touched.
type groupSet struct {
	enable bool
	layout bool
}

// apply parses value against a copy of m and returns the result. m itself
// is never modified, so a failed parse leaves the caller's mode alone.
func (v *Vocabulary) apply(m Mode, value string, stdoutIsTTY bool) (Mode, groupSet, error) {
	var groups groupSet
	fields := strings.FieldsFunc(value, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	if len(fields) == 0 {
		return m, groups, ErrEmptyValue
	}
	for _, f := range fields {
		t, ok := v.lookup(f)
		if !ok {
			return m, groups, &TokenError{Token: f, Value: value}
		}
		t.effect(&m, stdoutIsTTY)
		switch t.group {
		case GroupEnable:
			groups.enable = true
		case GroupLayout:
			groups.layout = true
		}
	}
	return m, groups, nil
}

var defaultVocabulary = DefaultVocabulary()
