package column

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/oakwood-commons/column/pkg/logger"
	"github.com/oakwood-commons/column/pkg/terminal"
)

//go:generate mockgen -source=print.go -destination=mock_terminal_test.go -package=column

// Terminal reports properties of the output device. Width is re-queried on
// every Print so that a resized terminal is picked up.
type Terminal interface {
	Columns() int
	IsTerminal() bool
}

// Printer writes item lists in columns.
type Printer struct {
	out  io.Writer
	term Terminal
}

// Option configures a Printer.
type Option func(*Printer)

// WithOutput sets the destination. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(p *Printer) {
		p.out = w
	}
}

// WithTerminal sets the terminal queried for the width when Options.Width
// is unset. Defaults to the process's stdout.
func WithTerminal(t Terminal) Option {
	return func(p *Printer) {
		p.term = t
	}
}

// New creates a Printer.
func New(opts ...Option) *Printer {
	p := &Printer{}
	for _, opt := range opts {
		opt(p)
	}
	if p.out == nil {
		p.out = os.Stdout
	}
	if p.term == nil {
		p.term = terminal.Stdout()
	}
	return p
}

// Print writes items to w using mode and opts with the stdout terminal as
// the width source.
func Print(w io.Writer, items []string, mode Mode, opts *Options) {
	New(WithOutput(w)).Print(context.Background(), items, mode, opts)
}

// Print writes items arranged according to mode. It never fails: write
// errors are logged and dropped. items and opts are not modified.
func (p *Printer) Print(ctx context.Context, items []string, mode Mode, opts *Options) {
	if len(items) == 0 {
		return
	}
	lgr := logger.FromContext(ctx)
	o := resolve(opts, p.term.Columns)

	var b strings.Builder
	switch {
	case !mode.Enabled:
		writePlain(&b, items, "", "\n")
	case mode.Layout == LayoutPlain:
		writePlain(&b, items, o.Indent, o.Newline)
	default:
		g := Plan(items, mode.Layout, o)
		lgr.V(1).Info("column layout", "items", len(items), "width", o.Width,
			"layout", g.Layout.String(), "cols", g.Cols, "rows", g.Rows)
		writeGrid(&b, items, g, o)
	}

	if _, err := io.WriteString(p.out, b.String()); err != nil {
		lgr.V(1).Info("column output write failed", "error", err.Error())
	}
}

func writePlain(b *strings.Builder, items []string, indent, nl string) {
	for _, s := range items {
		b.WriteString(indent)
		b.WriteString(s)
		b.WriteString(nl)
	}
}

func writeGrid(b *strings.Builder, items []string, g Grid, o Options) {
	for y := 0; y < g.Rows; y++ {
		b.WriteString(o.Indent)
		for x := 0; x < g.Cols; x++ {
			i := g.Index(x, y)
			if i < 0 {
				break
			}
			b.WriteString(items[i])
			if g.lastInRow(x, y) {
				break
			}
			if pad := g.Widths[x] - DisplayWidth(items[i]) + o.Padding; pad > 0 {
				b.WriteString(strings.Repeat(" ", pad))
			}
		}
		b.WriteString(o.Newline)
	}
}
