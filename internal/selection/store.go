// Package selection holds the displayed result list and which of its items are selected.
package selection

import (
	"usergrip/internal/domain"
	"usergrip/internal/eventbus"
)

// Store owns the displayed items and the selection over them.
// Every selected AppID refers to an item currently in the list.
// Not safe for concurrent use; callers drive it from the UI loop.
type Store struct {
	items    []domain.DisplayItem
	selected *Set
	ids      domain.IDGenerator
	bus      eventbus.EventBus
}

// NewStore creates an empty store. bus may be nil.
func NewStore(ids domain.IDGenerator, bus eventbus.EventBus) *Store {
	if bus == nil {
		bus = eventbus.Nop()
	}
	return &Store{
		items:    []domain.DisplayItem{},
		selected: NewSet(),
		ids:      ids,
		bus:      bus,
	}
}

// Items returns the displayed list
func (s *Store) Items() []domain.DisplayItem {
	return append([]domain.DisplayItem(nil), s.items...)
}

// Len returns the number of displayed items
func (s *Store) Len() int {
	return len(s.items)
}

// At returns the item at index i
func (s *Store) At(i int) (domain.DisplayItem, bool) {
	if i < 0 || i >= len(s.items) {
		return domain.DisplayItem{}, false
	}
	return s.items[i], true
}

// Selected returns the selected identities in insertion order
func (s *Store) Selected() []domain.AppID {
	return s.selected.Values()
}

func (s *Store) IsSelected(id domain.AppID) bool {
	return s.selected.Has(id)
}

func (s *Store) Count() int {
	return s.selected.Len()
}

func (s *Store) HasSelection() bool {
	return s.selected.Len() > 0
}

// AllSelected is true when the list is non-empty and every item is selected
func (s *Store) AllSelected() bool {
	return len(s.items) > 0 && s.selected.Len() == len(s.items)
}

// Replace installs a new result list and clears the selection
func (s *Store) Replace(items []domain.DisplayItem) {
	s.items = append([]domain.DisplayItem{}, items...)
	removed := s.selected.Clear()

	s.bus.Publish(domain.ItemsReplacedEvent{Count: len(s.items)})
	if len(removed) > 0 {
		s.bus.Publish(domain.SelectionChangedEvent{Removed: removed, Total: 0})
	}
}

// Toggle flips the selection of id. Unknown ids are ignored.
// Returns whether id is selected afterwards.
func (s *Store) Toggle(id domain.AppID) bool {
	if s.indexOf(id) < 0 {
		return false
	}

	var added, removed []domain.AppID
	if s.selected.Remove(id) {
		removed = append(removed, id)
	} else {
		s.selected.Add(id)
		added = append(added, id)
	}

	s.bus.Publish(domain.SelectionChangedEvent{
		Added:   added,
		Removed: removed,
		Total:   s.selected.Len(),
	})
	return len(added) > 0
}

// SelectAll selects every item, in list order
func (s *Store) SelectAll() {
	var added []domain.AppID
	for _, it := range s.items {
		if s.selected.Add(it.AppID) {
			added = append(added, it.AppID)
		}
	}

	if len(added) > 0 {
		s.bus.Publish(domain.SelectionChangedEvent{
			Added: added,
			Total: s.selected.Len(),
		})
	}
}

// SelectNone clears the selection
func (s *Store) SelectNone() {
	removed := s.selected.Clear()
	if len(removed) > 0 {
		s.bus.Publish(domain.SelectionChangedEvent{Removed: removed, Total: 0})
	}
}

// DeleteSelected removes the selected items and returns how many were removed
func (s *Store) DeleteSelected() int {
	if s.selected.Len() == 0 {
		return 0
	}

	kept := make([]domain.DisplayItem, 0, len(s.items))
	var deleted []domain.AppID
	for _, it := range s.items {
		if s.selected.Has(it.AppID) {
			deleted = append(deleted, it.AppID)
			continue
		}
		kept = append(kept, it)
	}
	s.items = kept
	removed := s.selected.Clear()

	s.bus.Publish(domain.ItemsDeletedEvent{AppIDs: deleted})
	s.bus.Publish(domain.SelectionChangedEvent{Removed: removed, Total: 0})
	return len(deleted)
}

// DuplicateSelected appends a fresh copy of each selected item, following
// selection order, and returns the copies.
func (s *Store) DuplicateSelected() []domain.DisplayItem {
	if s.selected.Len() == 0 {
		return nil
	}

	var sources []domain.AppID
	var copies []domain.DisplayItem
	for _, id := range s.selected.Values() {
		i := s.indexOf(id)
		if i < 0 {
			continue
		}
		sources = append(sources, id)
		copies = append(copies, domain.DisplayItem{
			AppID: s.ids.NewAppID(),
			User:  s.items[i].User,
		})
	}
	s.items = append(s.items, copies...)
	removed := s.selected.Clear()

	s.bus.Publish(domain.ItemsDuplicatedEvent{Sources: sources, Copies: domain.AppIDs(copies)})
	s.bus.Publish(domain.SelectionChangedEvent{Removed: removed, Total: 0})
	return copies
}

func (s *Store) indexOf(id domain.AppID) int {
	for i, it := range s.items {
		if it.AppID == id {
			return i
		}
	}
	return -1
}
