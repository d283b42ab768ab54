package dtype

// ID is the small numeric identifier of a data type within its kind. IDs are
// assigned on the wire and must lie in [0, MaxID].
type ID uint16

// MaxID is the highest assignable data-type ID. The mask width and the
// aggregate-signature traversal are both bounded by it.
const MaxID ID = 1023

// Valid reports whether the ID lies inside the assignable range.
func (id ID) Valid() bool {
	return id <= MaxID
}
