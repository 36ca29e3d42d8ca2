package picker

import "github.com/daimao-tools/animename/catalog"

// Selection is the set of chosen characters keyed by English name. It keeps
// selection order so the published value is stable. It is not safe for
// concurrent use; Widget guards it.
type Selection struct {
	order   []string
	records map[string]catalog.CharacterRecord
}

// NewSelection returns an empty selection.
func NewSelection() *Selection {
	return &Selection{
		order:   make([]string, 0),
		records: make(map[string]catalog.CharacterRecord),
	}
}

// Has reports whether key is selected.
func (s *Selection) Has(key string) bool {
	_, ok := s.records[key]
	return ok
}

// Add selects r. It returns false if r's key was already selected.
func (s *Selection) Add(r catalog.CharacterRecord) bool {
	key := r.Key()
	if s.Has(key) {
		return false
	}
	s.records[key] = r
	s.order = append(s.order, key)
	return true
}

// Remove deselects key. It returns false if key was not selected.
func (s *Selection) Remove(key string) bool {
	if !s.Has(key) {
		return false
	}
	delete(s.records, key)
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.order = s.order[:0]
	s.records = make(map[string]catalog.CharacterRecord)
}

// Len returns the number of selected characters.
func (s *Selection) Len() int {
	return len(s.order)
}

// Keys returns the selected keys in selection order.
func (s *Selection) Keys() []string {
	retv := make([]string, len(s.order))
	copy(retv, s.order)
	return retv
}

// Records returns the selected records in selection order.
func (s *Selection) Records() []catalog.CharacterRecord {
	retv := make([]catalog.CharacterRecord, 0, len(s.order))
	for _, k := range s.order {
		retv = append(retv, s.records[k])
	}
	return retv
}
