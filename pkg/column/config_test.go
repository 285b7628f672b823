package column

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name  string
		value string
		tty   bool
		want  Mode
	}{
		{name: "always", value: "always", want: Mode{Enabled: true, EnabledSet: true}},
		{name: "never", value: "never", want: Mode{EnabledSet: true}},
		{name: "auto on tty", value: "auto", tty: true, want: Mode{Enabled: true, EnabledSet: true}},
		{name: "auto off tty", value: "auto", want: Mode{EnabledSet: true}},
		{name: "layout implies always", value: "row", want: Mode{Layout: LayoutRow, Enabled: true, EnabledSet: true}},
		{name: "never with layout", value: "never,row", want: Mode{Layout: LayoutRow, EnabledSet: true}},
		{name: "space separated", value: "always plain", want: Mode{Layout: LayoutPlain, Enabled: true, EnabledSet: true}},
		{name: "mixed separators", value: " row, , always ", want: Mode{Layout: LayoutRow, Enabled: true, EnabledSet: true}},
		{name: "later token wins", value: "row,column,never,auto", tty: true, want: Mode{Layout: LayoutColumn, Enabled: true, EnabledSet: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m Mode
			require.NoError(t, ParseConfig(&m, tt.value, tt.tty))
			assert.Equal(t, tt.want, m)
		})
	}
}

func TestParseConfigKeepsUnrelatedState(t *testing.T) {
	m := Mode{ParseOpt: true, Layout: LayoutRow}
	require.NoError(t, ParseConfig(&m, "always", false))
	assert.True(t, m.ParseOpt)
	assert.Equal(t, LayoutRow, m.Layout)
}

func TestParseConfigErrorLeavesModeUnchanged(t *testing.T) {
	original := Mode{Layout: LayoutRow, Enabled: true, EnabledSet: true}

	for _, value := range []string{"bogus", "never,bogus", "plain bogus", "Always"} {
		t.Run(value, func(t *testing.T) {
			m := original
			err := ParseConfig(&m, value, true)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUnknownToken)
			assert.Equal(t, original, m)

			var tokErr *TokenError
			require.True(t, errors.As(err, &tokErr))
			assert.Equal(t, value, tokErr.Value)
		})
	}
}

func TestParseConfigEmpty(t *testing.T) {
	m := Mode{Layout: LayoutPlain}
	for _, value := range []string{"", " ", ",,", "\t,"} {
		err := ParseConfig(&m, value, false)
		assert.ErrorIs(t, err, ErrEmptyValue)
		assert.Equal(t, Mode{Layout: LayoutPlain}, m)
	}
}

func TestTokenErrorMessage(t *testing.T) {
	assert.Equal(t, `unsupported style "bogus"`, (&TokenError{Token: "bogus", Value: "bogus"}).Error())
	assert.Equal(t, `unsupported style "x" in "row,x"`, (&TokenError{Token: "x", Value: "row,x"}).Error())
}

func TestNeverConfigPrintsOnePerLine(t *testing.T) {
	var m Mode
	require.NoError(t, ParseConfig(&m, "never", true))
	assert.False(t, m.Enabled)

	var buf bytes.Buffer
	New(WithOutput(&buf)).Print(context.Background(), []string{"a", "bb", "ccc"}, m, &Options{Width: 200, Indent: "> ", Newline: "|"})
	assert.Equal(t, "a\nbb\nccc\n", buf.String())
}

func TestVocabularyExtension(t *testing.T) {
	v := DefaultVocabulary()
	assert.Equal(t, []string{"always", "auto", "column", "never", "plain", "row"}, v.Tokens())

	var dense bool
	v.Register("dense", GroupOther, func(*Mode, bool) { dense = true })
	v.Register("grid", GroupLayout, func(m *Mode, _ bool) { m.Layout = LayoutRow })

	var m Mode
	require.NoError(t, ParseConfigWith(v, &m, "dense", false))
	assert.True(t, dense)
	assert.Equal(t, Mode{}, m, "a non-layout token does not imply always")

	require.NoError(t, ParseConfigWith(v, &m, "grid", false))
	assert.Equal(t, Mode{Layout: LayoutRow, Enabled: true, EnabledSet: true}, m)

	// the package default is unaffected
	assert.ErrorIs(t, ParseConfig(&m, "dense", false), ErrUnknownToken)
}

func TestEmptyVocabularyRejectsEverything(t *testing.T) {
	var m Mode
	assert.ErrorIs(t, ParseConfigWith(NewVocabulary(), &m, "always", false), ErrUnknownToken)
}
