package registry

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/dtreg/dtype"
)

func mustRegister(t *testing.T, r *Registry, slot *Slot, kind dtype.Kind, id dtype.ID, sig dtype.Signature, name string) {
	t.Helper()
	res := r.Register(slot, dtype.Descriptor{Kind: kind, ID: id, Signature: sig, Name: name})
	require.Equal(t, ResultOk, res)
}

func TestRegisterAndFind(t *testing.T) {
	r := New()
	mustRegister(t, r, NewSlot(), dtype.KindMessage, 125, 0xAA, "vehicle.ahrs.Solution")
	mustRegister(t, r, NewSlot(), dtype.KindService, 44, 0xBB, "protocol.param.GetSet")

	desc, ok := r.FindByID(dtype.KindMessage, 125)
	require.True(t, ok)
	assert.Equal(t, "vehicle.ahrs.Solution", desc.Name)
	assert.Equal(t, dtype.Signature(0xAA), desc.Signature)

	desc, ok = r.FindByName(dtype.KindMessage, "vehicle.ahrs.Solution")
	require.True(t, ok)
	assert.Equal(t, dtype.ID(125), desc.ID)

	// Kinds are independent namespaces.
	_, ok = r.FindByID(dtype.KindMessage, 44)
	assert.False(t, ok)
	_, ok = r.FindByName(dtype.KindService, "vehicle.ahrs.Solution")
	assert.False(t, ok)

	assert.Equal(t, 1, r.NumMessageTypes())
	assert.Equal(t, 1, r.NumServiceTypes())
}

func TestRegisterInvalidParams(t *testing.T) {
	r := New()

	testCases := []struct {
		name string
		slot *Slot
		desc dtype.Descriptor
	}{
		{
			name: "nil slot",
			slot: nil,
			desc: dtype.Descriptor{Kind: dtype.KindMessage, ID: 1, Name: "a.B"},
		},
		{
			name: "ID out of range",
			slot: NewSlot(),
			desc: dtype.Descriptor{Kind: dtype.KindMessage, ID: dtype.MaxID + 1, Name: "a.B"},
		},
		{
			name: "invalid kind",
			slot: NewSlot(),
			desc: dtype.Descriptor{Kind: dtype.Kind(9), ID: 1, Name: "a.B"},
		},
		{
			name: "malformed name",
			slot: NewSlot(),
			desc: dtype.Descriptor{Kind: dtype.KindMessage, ID: 1, Name: "NoNamespace"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, ResultInvalidParams, r.Register(tc.slot, tc.desc))
			assert.Equal(t, 0, r.NumMessageTypes())
		})
	}
}

func TestRegisterInvalidParamsBeatsFrozen(t *testing.T) {
	r := New()
	r.Freeze()

	// Malformed input is reported as such even on a frozen registry.
	res := r.Register(NewSlot(), dtype.Descriptor{Kind: dtype.KindMessage, ID: dtype.MaxID + 1, Name: "a.B"})
	assert.Equal(t, ResultInvalidParams, res)
}

func TestReRegistrationSupersedes(t *testing.T) {
	r := New()
	slot := NewSlot()

	mustRegister(t, r, slot, dtype.KindMessage, 100, 0xAA, "vehicle.gnss.Fix")
	mustRegister(t, r, slot, dtype.KindMessage, 200, 0xAA, "vehicle.gnss.Fix")

	assert.Equal(t, 1, r.NumMessageTypes())

	_, ok := r.FindByID(dtype.KindMessage, 100)
	assert.False(t, ok, "stale record must not survive re-registration")

	desc, ok := r.FindByID(dtype.KindMessage, 200)
	require.True(t, ok)
	assert.Equal(t, "vehicle.gnss.Fix", desc.Name)

	got, ok := slot.Descriptor()
	require.True(t, ok)
	assert.Equal(t, dtype.ID(200), got.ID)
}

func TestReRegistrationAcrossKinds(t *testing.T) {
	r := New()
	slot := NewSlot()

	mustRegister(t, r, slot, dtype.KindMessage, 5, 0xAA, "proto.Probe")
	mustRegister(t, r, slot, dtype.KindService, 5, 0xAA, "proto.Probe")

	assert.Equal(t, 0, r.NumMessageTypes())
	assert.Equal(t, 1, r.NumServiceTypes())
}

func TestRegisterCollision(t *testing.T) {
	r := New()
	mustRegister(t, r, NewSlot(), dtype.KindMessage, 100, 0xAA, "vehicle.gnss.Fix")

	testCases := []struct {
		name string
		desc dtype.Descriptor
	}{
		{
			name: "same ID different name",
			desc: dtype.Descriptor{Kind: dtype.KindMessage, ID: 100, Signature: 0xBB, Name: "vehicle.gnss.Aux"},
		},
		{
			name: "same name different ID",
			desc: dtype.Descriptor{Kind: dtype.KindMessage, ID: 101, Signature: 0xBB, Name: "vehicle.gnss.Fix"},
		},
		{
			name: "same ID and name from a different slot",
			desc: dtype.Descriptor{Kind: dtype.KindMessage, ID: 100, Signature: 0xAA, Name: "vehicle.gnss.Fix"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, ResultCollision, r.Register(NewSlot(), tc.desc))

			// The first registration is untouched.
			assert.Equal(t, 1, r.NumMessageTypes())
			desc, ok := r.FindByID(dtype.KindMessage, 100)
			require.True(t, ok)
			assert.Equal(t, "vehicle.gnss.Fix", desc.Name)
			assert.Equal(t, dtype.Signature(0xAA), desc.Signature)
		})
	}
}

func TestCollisionDoesNotDropPriorRecord(t *testing.T) {
	r := New()
	slot := NewSlot()
	mustRegister(t, r, slot, dtype.KindMessage, 10, 0xAA, "vehicle.A")
	mustRegister(t, r, NewSlot(), dtype.KindMessage, 20, 0xBB, "vehicle.B")

	// Re-registering slot onto an ID owned by another type collides, and the
	// slot's old record must remain in place.
	res := r.Register(slot, dtype.Descriptor{Kind: dtype.KindMessage, ID: 20, Signature: 0xAA, Name: "vehicle.A"})
	require.Equal(t, ResultCollision, res)

	desc, ok := r.FindByID(dtype.KindMessage, 10)
	require.True(t, ok)
	assert.Equal(t, "vehicle.A", desc.Name)
	assert.Equal(t, 2, r.NumMessageTypes())
}

func TestSameKindSlotCanKeepItsIdentity(t *testing.T) {
	r := New()
	slot := NewSlot()
	mustRegister(t, r, slot, dtype.KindMessage, 10, 0xAA, "vehicle.A")

	// Re-registering the identical descriptor is not a self-collision.
	mustRegister(t, r, slot, dtype.KindMessage, 10, 0xAA, "vehicle.A")
	assert.Equal(t, 1, r.NumMessageTypes())
}

func TestOutOfOrderRegistration(t *testing.T) {
	r := New()
	ids := []dtype.ID{9, 2, 5, 7, 0}
	for _, id := range ids {
		mustRegister(t, r, NewSlot(), dtype.KindMessage, id, dtype.Signature(id), fmt.Sprintf("ns.Type%d", id))
	}

	require.Equal(t, len(ids), r.NumMessageTypes())
	for _, id := range ids {
		desc, ok := r.FindByID(dtype.KindMessage, id)
		require.True(t, ok, "ID %d must be findable", id)
		assert.Equal(t, fmt.Sprintf("ns.Type%d", id), desc.Name)
		byName, ok := r.FindByName(dtype.KindMessage, desc.Name)
		require.True(t, ok)
		assert.Equal(t, id, byName.ID)
	}
}
