package dtype

import "fmt"

// Signature is the opaque schema fingerprint of a data type. The value is
// produced by the external schema-signing algorithm; this package only
// defines how signatures combine.
type Signature uint64

// Extend folds another signature into this one using the wire protocol's
// mixing rule: the CRC-64/WE stream is resumed from the current value and fed
// the little-endian bytes of the other signature followed by the
// little-endian bytes of the current value. The operation is neither
// commutative nor associative; callers must apply it in the order the
// protocol prescribes.
func (s Signature) Extend(other Signature) Signature {
	crc := ResumeSignatureCRC(uint64(s))
	crc.AddUint64(uint64(other))
	crc.AddUint64(uint64(s))
	return Signature(crc.Sum())
}

// String renders the signature the way manifests spell it.
func (s Signature) String() string {
	return fmt.Sprintf("0x%016x", uint64(s))
}

// CRC-64/WE: poly 0x42F0E1EBA9EA3693, MSB-first, init and xorout all ones.
// Check value: Sum over "123456789" is 0x62EC59E3F1A4F00A.
const (
	crcPoly = 0x42F0E1EBA9EA3693
	crcMask = 0xFFFFFFFFFFFFFFFF
)

var crcTable = makeCRCTable()

func makeCRCTable() [256]uint64 {
	var table [256]uint64
	for i := range table {
		r := uint64(i) << 56
		for bit := 0; bit < 8; bit++ {
			if r&(1<<63) != 0 {
				r = (r << 1) ^ crcPoly
			} else {
				r <<= 1
			}
		}
		table[i] = r
	}
	return table
}

// SignatureCRC is the running CRC-64/WE underlying signature computation.
// The external schema layer uses it to fingerprint type definitions; Extend
// uses it to combine already-computed signatures.
type SignatureCRC struct {
	crc uint64
}

// NewSignatureCRC returns a CRC in its initial state.
func NewSignatureCRC() *SignatureCRC {
	return &SignatureCRC{crc: crcMask}
}

// ResumeSignatureCRC returns a CRC whose stream continues from a previously
// returned Sum.
func ResumeSignatureCRC(sum uint64) *SignatureCRC {
	return &SignatureCRC{crc: sum ^ crcMask}
}

// Add feeds bytes into the CRC stream.
func (c *SignatureCRC) Add(data []byte) {
	for _, b := range data {
		c.crc = (c.crc << 8) ^ crcTable[byte(c.crc>>56)^b]
	}
}

// AddUint64 feeds the little-endian bytes of x into the CRC stream.
func (c *SignatureCRC) AddUint64(x uint64) {
	var buf [8]byte
	for i := range buf {
		buf[i] = byte(x >> (8 * i))
	}
	c.Add(buf[:])
}

// Sum returns the CRC over everything added so far.
func (c *SignatureCRC) Sum() uint64 {
	return c.crc ^ crcMask
}
