package column

// Options controls the geometry of column output. A nil *Options behaves
// like DefaultOptions. Start from DefaultOptions to change single fields:
// a zero Padding is taken literally.
type Options struct {
	// Width is the total display width. Zero or negative uses the terminal
	// width.
	Width int

	// Padding is the number of spaces between columns. Zero packs columns
	// with no gap; negative values use the default of 1.
	Padding int

	// Indent is written at the start of every row.
	Indent string

	// Newline is written at the end of every row. Empty uses "\n".
	Newline string
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{
		Padding: 1,
		Newline: "\n",
	}
}

// resolve fills in defaults. A nil opts behaves like DefaultOptions.
// termWidth is only called when no explicit width is set.
func resolve(opts *Options, termWidth func() int) Options {
	r := DefaultOptions()
	if opts != nil {
		r.Width = opts.Width
		r.Padding = opts.Padding
		r.Indent = opts.Indent
		if opts.Newline != "" {
			r.Newline = opts.Newline
		}
	}
	if r.Padding < 0 {
		r.Padding = 1
	}
	if r.Width <= 0 && termWidth != nil {
		r.Width = termWidth()
	}
	return r
}
