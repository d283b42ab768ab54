package registry

import "github.com/specialistvlad/dtreg/dtype"

// FindByName looks up a data type by kind and full name.
func (r *Registry) FindByName(kind dtype.Kind, name string) (dtype.Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	store := r.store(kind)
	if store == nil {
		return dtype.Descriptor{}, false
	}
	if e := store.byName(name); e != nil {
		return e.desc, true
	}
	return dtype.Descriptor{}, false
}

// FindByID looks up a data type by kind and numeric ID.
func (r *Registry) FindByID(kind dtype.Kind, id dtype.ID) (dtype.Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	store := r.store(kind)
	if store == nil {
		return dtype.Descriptor{}, false
	}
	if e := store.byID(id); e != nil {
		return e.desc, true
	}
	return dtype.Descriptor{}, false
}

// IDMask returns a mask with a bit set for every registered ID of the kind.
func (r *Registry) IDMask(kind dtype.Kind) dtype.Mask {
	mask := dtype.NewMask()
	r.mu.RLock()
	defer r.mu.RUnlock()
	if store := r.store(kind); store != nil {
		for _, e := range store.entries {
			mask.Set(e.desc.ID)
		}
	}
	return mask
}

// AggregateSignature folds the signatures of every registered type selected
// by mask into one combined signature, walking IDs in ascending order. The
// fold order is part of the wire contract: both peers must traverse an
// identically ordered sequence for the handshake to mean anything.
//
// mask is an in/out parameter: bits whose ID has no registered descriptor
// are cleared, so on return the mask holds exactly the IDs that were both
// requested and found. Callers detect requested-but-missing IDs by diffing
// against a clone of the original mask. When nothing is selected the zero
// signature is returned.
func (r *Registry) AggregateSignature(kind dtype.Kind, mask dtype.Mask) dtype.Signature {
	r.mu.RLock()
	defer r.mu.RUnlock()

	store := r.store(kind)
	if store == nil {
		for i := dtype.ID(0); i <= dtype.MaxID; i++ {
			mask.Clear(i)
		}
		return 0
	}

	var aggregate dtype.Signature
	seeded := false
	prev := -1
	for _, e := range store.entries {
		id := int(e.desc.ID)
		if mask.Test(e.desc.ID) {
			if seeded {
				aggregate = aggregate.Extend(e.desc.Signature)
			} else {
				aggregate = e.desc.Signature
				seeded = true
			}
		}
		// IDs between consecutive entries have no descriptor.
		for i := prev + 1; i < id; i++ {
			mask.Clear(dtype.ID(i))
		}
		prev = id
	}
	for i := prev + 1; i <= int(dtype.MaxID); i++ {
		mask.Clear(dtype.ID(i))
	}
	return aggregate
}
