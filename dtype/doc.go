/*
Package dtype provides the leaf domain types of the data-type catalog: the
kind and numeric ID of a data type, its full dotted name, its schema
signature together with the wire protocol's signature-mixing primitive, the
immutable descriptor bundling all of the above, and the fixed-width ID mask
used by catalog queries.

All types in this package are plain values with no hidden state; they carry
identity, not behavior, and are safe to copy and compare.
*/
package dtype
