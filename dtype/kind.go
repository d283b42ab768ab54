package dtype

// Kind tells whether a data type is a one-way broadcast message or a
// request/response service.
type Kind uint8

const (
	KindMessage Kind = iota
	KindService

	numKinds = 2
)

// Valid reports whether k is one of the defined kinds.
func (k Kind) Valid() bool {
	return k < numKinds
}

// String returns the lowercase kind name used in logs and manifests.
func (k Kind) String() string {
	switch k {
	case KindMessage:
		return "message"
	case KindService:
		return "service"
	default:
		return "invalid"
	}
}

// ParseKind maps the manifest spelling of a kind back to its value.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "message":
		return KindMessage, true
	case "service":
		return KindService, true
	default:
		return 0, false
	}
}
