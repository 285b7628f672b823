package column

// Grid is the arrangement chosen for a list of items.
type Grid struct {
	Layout Layout
	Cols   int
	Rows   int

	// Widths holds the display width of the widest item in each column,
	// not counting padding.
	Widths []int

	n int
}

// Index returns the item index shown at column x, row y, or -1 when that
// cell is empty.
func (g Grid) Index(x, y int) int {
	if x < 0 || y < 0 || x >= g.Cols || y >= g.Rows {
		return -1
	}
	var i int
	if g.Layout == LayoutColumn {
		i = x*g.Rows + y
	} else {
		i = y*g.Cols + x
	}
	if i >= g.n {
		return -1
	}
	return i
}

// lastInRow reports whether the cell at x, y is the final one in its row.
func (g Grid) lastInRow(x, y int) bool {
	return x == g.Cols-1 || g.Index(x+1, y) < 0
}

// TotalWidth is the width the grid occupies, counting indent and padding
// after every column.
func (g Grid) TotalWidth(indentWidth, padding int) int {
	total := indentWidth
	for _, w := range g.Widths {
		total += w + padding
	}
	return total
}

// Plan computes the grid for items under a column or row layout. opts must
// already carry a width; a non-positive width yields a single column.
//
// The starting column count is the number of cells of the longest item plus
// padding that fit next to the indent. Rows are then removed one at a time,
// sizing every column to its own widest item, for as long as the result
// still fits.
func Plan(items []string, layout Layout, opts Options) Grid {
	lens := make([]int, len(items))
	for i, s := range items {
		lens[i] = DisplayWidth(s)
	}
	return plan(lens, layout, opts)
}

func plan(lens []int, layout Layout, opts Options) Grid {
	n := len(lens)
	if n == 0 {
		return Grid{Layout: layout}
	}
	if layout != LayoutRow {
		layout = LayoutColumn
	}
	padding := opts.Padding
	if padding < 0 {
		padding = 1
	}
	indentWidth := DisplayWidth(opts.Indent)

	longest := 0
	for _, l := range lens {
		if l > longest {
			longest = l
		}
	}
	cell := longest + padding
	if cell <= 0 {
		cell = 1
	}
	cols := (opts.Width - indentWidth) / cell
	if cols < 1 {
		cols = 1
	}
	if cols > n {
		cols = n
	}
	g := newGrid(lens, layout, cols, ceilDiv(n, cols))

	for g.Rows > 1 {
		rows := g.Rows - 1
		next := newGrid(lens, layout, ceilDiv(n, rows), rows)
		if next.TotalWidth(indentWidth, padding) > opts.Width {
			break
		}
		g = next
	}
	return g
}

func newGrid(lens []int, layout Layout, cols, rows int) Grid {
	// trailing columns (column-major) or rows (row-major) that would be
	// left empty are dropped
	if layout == LayoutColumn {
		cols = ceilDiv(len(lens), rows)
	} else {
		rows = ceilDiv(len(lens), cols)
	}
	g := Grid{Layout: layout, Cols: cols, Rows: rows, n: len(lens)}
	g.Widths = make([]int, cols)
	for x := 0; x < cols; x++ {
		for y := 0; y < rows; y++ {
			i := g.Index(x, y)
			if i < 0 {
				continue
			}
			if lens[i] > g.Widths[x] {
				g.Widths[x] = lens[i]
			}
		}
	}
	return g
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
