package input

import (
	"usergrip/internal/selection"
	"usergrip/internal/ui/logic"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Store     *selection.Store
	Navigator *logic.Navigator
}

// CurrentIndex returns the cursor position
func (c *ModelContext) CurrentIndex() int {
	return c.Navigator.Cursor()
}

// TotalItems returns the number of displayed items
func (c *ModelContext) TotalItems() int {
	return c.Store.Len()
}

// HasSelection returns true if any items are selected
func (c *ModelContext) HasSelection() bool {
	return c.Store.HasSelection()
}

// AllSelected returns true if every displayed item is selected
func (c *ModelContext) AllSelected() bool {
	return c.Store.AllSelected()
}
