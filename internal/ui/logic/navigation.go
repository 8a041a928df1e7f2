package logic

// Navigator tracks the cursor over a flat list and the viewport that keeps it visible.
// When the list does not fit, one row at the top and/or bottom is given to a
// scroll indicator.
type Navigator struct {
	cursor int
	offset int
	height int
	total  int
}

// NewNavigator creates a navigator over an empty list
func NewNavigator() *Navigator {
	return &Navigator{height: 1}
}

func (n *Navigator) Cursor() int { return n.cursor }
func (n *Navigator) Offset() int { return n.offset }
func (n *Navigator) Total() int  { return n.total }

// SetHeight sets the number of rows available to the list
func (n *Navigator) SetHeight(h int) {
	if h < 1 {
		h = 1
	}
	n.height = h
	n.ensureCursorVisible()
}

// SetTotal updates the list length, keeping the cursor in range
func (n *Navigator) SetTotal(total int) {
	if total < 0 {
		total = 0
	}
	n.total = total
	n.ensureCursorVisible()
}

// Reset moves the cursor back to the first row
func (n *Navigator) Reset() {
	n.cursor = 0
	n.offset = 0
	n.ensureCursorVisible()
}

// Move shifts the cursor by delta rows, clamped to the list
func (n *Navigator) Move(delta int) int {
	n.cursor += delta
	n.ensureCursorVisible()
	return n.cursor
}

// Top moves the cursor to the first row
func (n *Navigator) Top() {
	n.cursor = 0
	n.ensureCursorVisible()
}

// Bottom moves the cursor to the last row
func (n *Navigator) Bottom() {
	n.cursor = n.total - 1
	n.ensureCursorVisible()
}

// PageUp moves the cursor up by one page
func (n *Navigator) PageUp() {
	n.Move(-n.pageSize())
}

// PageDown moves the cursor down by one page
func (n *Navigator) PageDown() {
	n.Move(n.pageSize())
}

// Window returns the half-open range of rows to draw and whether the
// top and bottom indicators are needed
func (n *Navigator) Window() (start, end int, above, below bool) {
	rows := n.visibleRows(n.offset)
	start = n.offset
	end = start + rows
	if end > n.total {
		end = n.total
	}
	return start, end, start > 0, end < n.total
}

// pageSize leaves some overlap between pages
func (n *Navigator) pageSize() int {
	size := n.height - 2
	if size < 1 {
		size = 1
	}
	return size
}

// visibleRows is the number of item rows that fit when the viewport starts at offset
func (n *Navigator) visibleRows(offset int) int {
	rows := n.height
	if offset > 0 {
		rows--
	}
	if offset+rows < n.total {
		rows--
	}
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (n *Navigator) ensureCursorVisible() {
	if n.cursor >= n.total {
		n.cursor = n.total - 1
	}
	if n.cursor < 0 {
		n.cursor = 0
	}

	if n.cursor < n.offset {
		n.offset = n.cursor
	}
	for n.cursor >= n.offset+n.visibleRows(n.offset) {
		n.offset++
	}

	// Pull the viewport back when the list shrank below it
	for n.offset > 0 && n.offset-1+n.visibleRows(n.offset-1) >= n.total && n.cursor < n.offset-1+n.visibleRows(n.offset-1) {
		n.offset--
	}
}
