// Package terminal queries the size and kind of the output device.
package terminal

import (
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// DefaultColumns is returned when the width cannot be determined.
const DefaultColumns = 80

// Device is an output file that may be a terminal.
type Device struct {
	fd     uintptr
	getenv func(string) string
	size   func(fd int) (width, height int, err error)
	isTTY  func(fd uintptr) bool
}

// New wraps f.
func New(f *os.File) *Device {
	return &Device{
		fd:     f.Fd(),
		getenv: os.Getenv,
		size:   term.GetSize,
		isTTY:  isTerminal,
	}
}

// Stdout returns the device for os.Stdout.
func Stdout() *Device {
	return New(os.Stdout)
}

// Columns returns the width of the device in cells. A positive integer in
// $COLUMNS takes precedence over the device size; DefaultColumns is used
// when neither is available. The value is not cached.
func (d *Device) Columns() int {
	if v := strings.TrimSpace(d.getenv("COLUMNS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	if w, _, err := d.size(int(d.fd)); err == nil && w > 0 {
		return w
	}
	return DefaultColumns
}

// IsTerminal reports whether the device is a terminal, including Cygwin
// and MSYS ptys.
func (d *Device) IsTerminal() bool {
	return d.isTTY(d.fd)
}

// Columns returns the width of stdout. See Device.Columns.
func Columns() int {
	return Stdout().Columns()
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
