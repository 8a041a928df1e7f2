package selection

import "usergrip/internal/domain"

// Set is a set of AppIDs that remembers insertion order
type Set struct {
	order []domain.AppID
	index map[domain.AppID]struct{}
}

// NewSet creates an empty set
func NewSet() *Set {
	return &Set{index: make(map[domain.AppID]struct{})}
}

// Add inserts id and reports whether it was absent
func (s *Set) Add(id domain.AppID) bool {
	if _, ok := s.index[id]; ok {
		return false
	}
	s.index[id] = struct{}{}
	s.order = append(s.order, id)
	return true
}

// Remove deletes id and reports whether it was present
func (s *Set) Remove(id domain.AppID) bool {
	if _, ok := s.index[id]; !ok {
		return false
	}
	delete(s.index, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

func (s *Set) Has(id domain.AppID) bool {
	_, ok := s.index[id]
	return ok
}

func (s *Set) Len() int {
	return len(s.order)
}

// Values returns the members in insertion order
func (s *Set) Values() []domain.AppID {
	return append([]domain.AppID(nil), s.order...)
}

// Clear empties the set and returns what it held
func (s *Set) Clear() []domain.AppID {
	old := s.order
	s.order = nil
	s.index = make(map[domain.AppID]struct{})
	return old
}
