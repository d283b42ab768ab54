package registry

// Result is the outcome of a registration attempt. Registration never fails
// with an error value; all four outcomes are ordinary results the caller is
// expected to branch on.
type Result uint8

const (
	// ResultOk means the data type is now registered and usable.
	ResultOk Result = iota
	// ResultCollision means a different logical type already claims this ID
	// or this name within the kind.
	ResultCollision
	// ResultInvalidParams means the input was malformed; the registry state
	// is unrelated to this outcome.
	ResultInvalidParams
	// ResultFrozen means the registry no longer accepts mutation.
	ResultFrozen
)

// String returns the result name for logs and error messages.
func (res Result) String() string {
	switch res {
	case ResultOk:
		return "ok"
	case ResultCollision:
		return "collision"
	case ResultInvalidParams:
		return "invalid params"
	case ResultFrozen:
		return "frozen"
	default:
		return "unknown"
	}
}
