package column

import (
	"fmt"
	"strconv"

	"github.com/spf13/pflag"
)

// ParseOption applies a --column[=<arg>] or --no-column option to mode.
// unset is true for the --no-column form. Without an argument, or with an
// argument that names no enablement token, column output is turned on.
// On error mode is left unchanged.
func ParseOption(mode *Mode, arg string, unset bool, stdoutIsTTY bool) error {
	return ParseOptionWith(defaultVocabulary, mode, arg, unset, stdoutIsTTY)
}

// ParseOptionWith is ParseOption against a caller supplied vocabulary.
func ParseOptionWith(v *Vocabulary, mode *Mode, arg string, unset bool, stdoutIsTTY bool) error {
	m := *mode
	m.ParseOpt = true
	m.EnabledSet = true
	if unset {
		m.Enabled = false
		*mode = m
		return nil
	}
	if arg == "" {
		m.Enabled = true
		*mode = m
		return nil
	}
	parsed, groups, err := v.apply(m, arg, stdoutIsTTY)
	if err != nil {
		return err
	}
	if !groups.enable {
		parsed.Enabled = true
	}
	*mode = parsed
	return nil
}

// OptionFlags records --<name>[=<style>] and --no-<name> as they are
// parsed so they can be applied after configuration has been loaded.
// Each occurrence is validated when it is parsed.
type OptionFlags struct {
	name   string
	tty    func() bool
	events []optionEvent
}

type optionEvent struct {
	arg   string
	unset bool
}

// AddFlags registers --<name>[=<style>] and --no-<name> on fs. tty is
// consulted for "auto" when the options are applied; a nil tty treats
// stdout as not a terminal.
func AddFlags(fs *pflag.FlagSet, name string, tty func() bool) *OptionFlags {
	if tty == nil {
		tty = func() bool { return false }
	}
	o := &OptionFlags{name: name, tty: tty}
	fs.Var(&optionValue{flags: o}, name,
		fmt.Sprintf("list in columns; optional comma-separated styles (e.g. --%s=row,always)", name))
	fs.Lookup(name).NoOptDefVal = "always"

	fs.Var(&negatedValue{flags: o}, "no-"+name, "disable column output")
	fs.Lookup("no-" + name).NoOptDefVal = "true"
	return o
}

// Changed reports whether either flag was given.
func (o *OptionFlags) Changed() bool {
	return len(o.events) > 0
}

// Apply replays the recorded options, in command-line order, onto mode.
// On error mode is left unchanged.
func (o *OptionFlags) Apply(mode *Mode) error {
	m := *mode
	tty := o.tty()
	for _, ev := range o.events {
		if err := ParseOption(&m, ev.arg, ev.unset, tty); err != nil {
			return fmt.Errorf("--%s: %w", o.name, err)
		}
	}
	*mode = m
	return nil
}

func (o *OptionFlags) record(arg string, unset bool) error {
	var scratch Mode
	if err := ParseOption(&scratch, arg, unset, false); err != nil {
		return err
	}
	o.events = append(o.events, optionEvent{arg: arg, unset: unset})
	return nil
}

type optionValue struct {
	flags *OptionFlags
}

func (v *optionValue) String() string {
	if v.flags == nil || len(v.flags.events) == 0 {
		return ""
	}
	last := v.flags.events[len(v.flags.events)-1]
	if last.unset {
		return "never"
	}
	return last.arg
}

func (v *optionValue) Set(arg string) error {
	return v.flags.record(arg, false)
}

func (v *optionValue) Type() string { return "style" }

type negatedValue struct {
	flags *OptionFlags
	set   bool
}

func (n *negatedValue) String() string { return strconv.FormatBool(n.set) }

func (n *negatedValue) Set(s string) error {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	if !b {
		return nil
	}
	n.set = true
	return n.flags.record("", true)
}

func (n *negatedValue) Type() string { return "bool" }

func (n *negatedValue) IsBoolFlag() bool { return true }
