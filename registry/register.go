package registry

import "github.com/specialistvlad/dtreg/dtype"

// Register inserts or replaces the catalog record for the logical data type
// identified by slot.
//
// Registering the same slot again supersedes its prior record, even across a
// change of ID or kind, so re-registration during reconfiguration never
// collides with its own stale entry. A collision with a record owned by a
// different slot leaves the registry exactly as it was.
func (r *Registry) Register(slot *Slot, d dtype.Descriptor) Result {
	if slot == nil {
		return ResultInvalidParams
	}
	if err := d.Validate(); err != nil {
		r.log.Debug("rejecting data type registration", "error", err)
		return ResultInvalidParams
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen.Load() {
		return ResultFrozen
	}

	// Uniqueness guard against other logical types. Entries owned by this
	// slot are about to be superseded and do not count. Checking before any
	// removal keeps a colliding call free of side effects.
	store := r.store(d.Kind)
	for _, e := range store.entries {
		if e.slot == slot {
			continue
		}
		if e.desc.ID == d.ID || e.desc.Name == d.Name {
			r.log.Debug("data type registration collision",
				"candidate", d.String(),
				"existing", e.desc.String(),
			)
			return ResultCollision
		}
	}

	// The prior record may live in either store if the kind changed.
	r.msgs.removeSlot(slot)
	r.srvs.removeSlot(slot)

	e := &entry{desc: d, slot: slot}
	store.insertSorted(e)
	slot.desc = &e.desc

	r.log.Debug("data type registered", "descriptor", d.String())
	return ResultOk
}
