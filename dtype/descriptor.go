package dtype

import "fmt"

// Descriptor is the immutable identity record of one data type: its kind,
// numeric ID, schema signature, and full dotted name. The registry stores
// descriptors by value and never mutates them in place.
type Descriptor struct {
	Kind      Kind
	ID        ID
	Signature Signature
	Name      string
}

// Validate checks every field against the domain rules. A descriptor that
// fails validation must never enter the catalog.
func (d Descriptor) Validate() error {
	if !d.Kind.Valid() {
		return fmt.Errorf("invalid data type kind %d", d.Kind)
	}
	if !d.ID.Valid() {
		return fmt.Errorf("data type ID %d outside [0, %d]", d.ID, MaxID)
	}
	return ValidateName(d.Name)
}

// String renders the descriptor for logs, e.g. "message:125 vehicle.ahrs.Solution".
func (d Descriptor) String() string {
	return fmt.Sprintf("%s:%d %s", d.Kind, d.ID, d.Name)
}
