package dtype

import (
	"fmt"
	"regexp"
	"strings"
)

// MaxNameLength bounds the full dotted name of a data type.
const MaxNameLength = 80

// segmentRegex matches a single name segment, e.g. `vehicle` or `Solution`.
// Segments must not start with a digit.
var segmentRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidateName checks a full data-type name, e.g. "vehicle.ahrs.Solution".
// A valid name is a dot-separated sequence of at least two segments
// (namespace plus type name) and is at most MaxNameLength characters long.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("data type name cannot be empty")
	}
	if len(name) > MaxNameLength {
		return fmt.Errorf("data type name exceeds %d characters: %q", MaxNameLength, name)
	}

	segments := strings.Split(name, ".")
	if len(segments) < 2 {
		return fmt.Errorf("data type name must include a namespace: %q", name)
	}
	for _, segment := range segments {
		if segment == "" {
			return fmt.Errorf("data type name contains empty segment: %q", name)
		}
		if !segmentRegex.MatchString(segment) {
			return fmt.Errorf("invalid name segment %q in %q", segment, name)
		}
	}
	return nil
}
