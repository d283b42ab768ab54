/*
Package registry implements the process-wide data-type catalog at the core of
the protocol stack.

Every message and service type exchanged on the bus is registered here during
start-up, keyed by kind, numeric ID, and full name, together with its schema
signature. The catalog enforces that no two distinct types within a kind
claim the same ID or the same name, and it computes the aggregate signature
used for compatibility handshakes with peers.

The lifecycle is one-way: the stack populates the registry, freezes it before
processing any traffic, and from then on only reads it. A Registry is an
explicit object owned by the node; there is no package-level singleton, so
the initialization order is always visible in the caller's code.
*/
package registry
