package registry

import "github.com/specialistvlad/dtreg/dtype"

// Slot anchors the identity of one logical data type across repeated
// registrations. The caller allocates exactly one Slot per logical type and
// passes it to every Register call for that type; the registry matches slots
// by pointer identity, so re-registering through the same Slot supersedes the
// prior record instead of colliding with it.
//
// A Slot belongs to the code that registers through it. Its accessors are not
// synchronized against concurrent Register calls on the same slot; the
// single-writer start-up phase makes that a non-issue.
type Slot struct {
	desc *dtype.Descriptor
}

// NewSlot allocates an identity slot for one logical data type.
func NewSlot() *Slot {
	return &Slot{}
}

// Registered reports whether the slot currently holds a catalog entry.
func (s *Slot) Registered() bool {
	return s.desc != nil
}

// Descriptor returns the record currently stored for this slot, if any.
func (s *Slot) Descriptor() (dtype.Descriptor, bool) {
	if s.desc == nil {
		return dtype.Descriptor{}, false
	}
	return *s.desc, true
}
