package dtype

import "github.com/bits-and-blooms/bitset"

// Mask is a bit vector over the data-type ID space [0, MaxID]. Bit i set
// means ID i is part of the selection. Masks are handed to catalog queries
// both as outputs (which IDs exist) and as in/out parameters (which IDs to
// consider, narrowed to which were found).
//
// A Mask shares its bits across copies; use Clone for an independent one.
// Use NewMask to construct it.
type Mask struct {
	bits *bitset.BitSet
}

// NewMask returns an all-clear mask covering the full ID space.
func NewMask() Mask {
	return Mask{bits: bitset.New(uint(MaxID) + 1)}
}

// Set marks id as selected. IDs outside the valid range are ignored.
func (m Mask) Set(id ID) {
	if id.Valid() {
		m.bits.Set(uint(id))
	}
}

// Clear removes id from the selection.
func (m Mask) Clear(id ID) {
	if id.Valid() {
		m.bits.Clear(uint(id))
	}
}

// Test reports whether id is selected.
func (m Mask) Test(id ID) bool {
	return id.Valid() && m.bits.Test(uint(id))
}

// NextSet returns the first selected ID at or above from. The second return
// is false when no further bit is set.
func (m Mask) NextSet(from ID) (ID, bool) {
	i, ok := m.bits.NextSet(uint(from))
	if !ok || i > uint(MaxID) {
		return 0, false
	}
	return ID(i), true
}

// Count returns the number of selected IDs.
func (m Mask) Count() int {
	return int(m.bits.Count())
}

// Equal reports whether both masks select exactly the same IDs.
func (m Mask) Equal(other Mask) bool {
	return m.bits.Equal(other.bits)
}

// Clone returns an independent copy of the mask.
func (m Mask) Clone() Mask {
	return Mask{bits: m.bits.Clone()}
}
