// Package compat implements the type-set compatibility primitive used when
// handshaking with a peer node: the peer advertises which data-type IDs it
// uses and the aggregate signature it computed over them, and the local node
// verifies that its own catalog produces the same aggregate over the same
// set.
package compat

import (
	"github.com/specialistvlad/dtreg/dtype"
	"github.com/specialistvlad/dtreg/registry"
)

// Report is the outcome of one compatibility check.
type Report struct {
	// Compatible is true when every ID the peer uses is known locally and
	// both aggregates match.
	Compatible bool

	// LocalAggregate is the aggregate this catalog computed over the IDs
	// that were found locally.
	LocalAggregate dtype.Signature

	// Missing lists IDs the peer uses that this catalog does not know.
	// A non-empty Missing always means incompatible.
	Missing []dtype.ID
}

// Check verifies a peer's advertised (mask, aggregate) pair for one kind
// against the local catalog. The peer's mask is not modified.
func Check(reg *registry.Registry, kind dtype.Kind, peerMask dtype.Mask, peerAggregate dtype.Signature) Report {
	found := peerMask.Clone()
	local := reg.AggregateSignature(kind, found)

	var missing []dtype.ID
	for id, ok := peerMask.NextSet(0); ok; id, ok = peerMask.NextSet(id + 1) {
		if !found.Test(id) {
			missing = append(missing, id)
		}
	}

	return Report{
		Compatible:     len(missing) == 0 && local == peerAggregate,
		LocalAggregate: local,
		Missing:        missing,
	}
}
