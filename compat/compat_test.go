package compat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/dtreg/dtype"
	"github.com/specialistvlad/dtreg/registry"
)

func newCatalog(t *testing.T) *registry.Registry {
	t.Helper()
	r := registry.New()
	types := []dtype.Descriptor{
		{Kind: dtype.KindMessage, ID: 2, Signature: 0xA2, Name: "ns.Alpha"},
		{Kind: dtype.KindMessage, ID: 5, Signature: 0xA5, Name: "ns.Bravo"},
		{Kind: dtype.KindMessage, ID: 9, Signature: 0xA9, Name: "ns.Charlie"},
	}
	for _, d := range types {
		require.Equal(t, registry.ResultOk, r.Register(registry.NewSlot(), d))
	}
	r.Freeze()
	return r
}

func TestCheckCompatiblePeer(t *testing.T) {
	r := newCatalog(t)

	// The peer computed its aggregate over the same catalog contents.
	peerMask := r.IDMask(dtype.KindMessage)
	peerAggregate := r.AggregateSignature(dtype.KindMessage, peerMask.Clone())

	report := Check(r, dtype.KindMessage, peerMask, peerAggregate)
	assert.True(t, report.Compatible)
	assert.Empty(t, report.Missing)
	assert.Equal(t, peerAggregate, report.LocalAggregate)
}

func TestCheckPeerUsesUnknownType(t *testing.T) {
	r := newCatalog(t)

	peerMask := r.IDMask(dtype.KindMessage)
	peerMask.Set(100) // peer uses a type this node has never heard of
	peerAggregate := dtype.Signature(0xDEAD)

	report := Check(r, dtype.KindMessage, peerMask, peerAggregate)
	assert.False(t, report.Compatible)
	assert.Equal(t, []dtype.ID{100}, report.Missing)

	// The peer's mask is the peer's: Check must not narrow it.
	assert.True(t, peerMask.Test(100))
}

func TestCheckAggregateMismatch(t *testing.T) {
	r := newCatalog(t)

	peerMask := r.IDMask(dtype.KindMessage)
	peerAggregate := r.AggregateSignature(dtype.KindMessage, peerMask.Clone())

	report := Check(r, dtype.KindMessage, peerMask, peerAggregate+1)
	assert.False(t, report.Compatible)
	assert.Empty(t, report.Missing)
}

func TestCheckSubsetPeer(t *testing.T) {
	r := newCatalog(t)

	// A peer that only uses two of the three types is still compatible.
	peerMask := dtype.NewMask()
	peerMask.Set(2)
	peerMask.Set(9)
	peerAggregate := r.AggregateSignature(dtype.KindMessage, peerMask.Clone())

	report := Check(r, dtype.KindMessage, peerMask, peerAggregate)
	assert.True(t, report.Compatible)
	assert.Empty(t, report.Missing)
}
