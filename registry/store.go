package registry

import "github.com/specialistvlad/dtreg/dtype"

// entry is one catalog record: the stored descriptor plus the identity slot
// that owns it.
type entry struct {
	desc dtype.Descriptor
	slot *Slot
}

// kindStore holds the entries of one kind, always sorted ascending by ID.
// The ordering is load-bearing: the aggregate-signature fold walks it front
// to back.
type kindStore struct {
	entries []*entry
}

// insertSorted places e before the first member with a greater ID, or at the
// tail when none exists.
func (s *kindStore) insertSorted(e *entry) {
	at := len(s.entries)
	for i, existing := range s.entries {
		if existing.desc.ID > e.desc.ID {
			at = i
			break
		}
	}
	s.entries = append(s.entries, nil)
	copy(s.entries[at+1:], s.entries[at:])
	s.entries[at] = e
}

// removeSlot removes the entry owned by slot, if present, and returns it.
func (s *kindStore) removeSlot(slot *Slot) *entry {
	for i, e := range s.entries {
		if e.slot == slot {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return e
		}
	}
	return nil
}

// byName returns the first entry with the given full name.
func (s *kindStore) byName(name string) *entry {
	for _, e := range s.entries {
		if e.desc.Name == name {
			return e
		}
	}
	return nil
}

// byID returns the entry with the given ID. The scan short-circuits once the
// sorted order has passed the target.
func (s *kindStore) byID(id dtype.ID) *entry {
	for _, e := range s.entries {
		if e.desc.ID == id {
			return e
		}
		if e.desc.ID > id {
			break
		}
	}
	return nil
}

func (s *kindStore) len() int {
	return len(s.entries)
}
