package snapshot

// Snapshot is the canonical mapping from decoration name to owned quantity
// derived from one export file. Names iterate in the order they first appear
// in the source data. A Snapshot is built once by a Loader and must not be
// mutated after it has been handed to consumers.
type Snapshot struct {
	names      []string
	quantities map[string]int
}

// New creates an empty Snapshot.
func New() *Snapshot {
	return &Snapshot{
		quantities: make(map[string]int),
	}
}

// Set records the quantity for a name. A repeated name keeps its original
// position but takes the latest quantity (last write wins).
func (s *Snapshot) Set(name string, quantity int) {
	if _, exists := s.quantities[name]; !exists {
		s.names = append(s.names, name)
	}
	s.quantities[name] = quantity
}

// Get returns the quantity for a name and whether the name is present.
func (s *Snapshot) Get(name string) (int, bool) {
	quantity, ok := s.quantities[name]
	return quantity, ok
}

// Has reports whether a name is present.
func (s *Snapshot) Has(name string) bool {
	_, ok := s.quantities[name]
	return ok
}

// Len returns the number of distinct names.
func (s *Snapshot) Len() int {
	return len(s.names)
}

// Names returns the names in insertion order. The returned slice is a copy.
func (s *Snapshot) Names() []string {
	names := make([]string, len(s.names))
	copy(names, s.names)
	return names
}

// Equal reports whether two snapshots hold the same names with the same
// quantities. Insertion order is ignored, so logically identical exports in
// different encodings compare equal.
func (s *Snapshot) Equal(other *Snapshot) bool {
	if len(s.quantities) != len(other.quantities) {
		return false
	}
	for name, quantity := range s.quantities {
		otherQuantity, ok := other.quantities[name]
		if !ok || otherQuantity != quantity {
			return false
		}
	}
	return true
}
