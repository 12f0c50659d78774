// Package token implements the codec's wire-format primitives: the tag
// byte that jointly encodes a literal-run length, a match length, and
// the high bit of a match distance, and the biased base-128 varint used
// when either field overflows its small nibble.
package token

const (
	// MinMatch is the shortest back-reference the encoder will emit;
	// shorter repeats are cheaper as literals.
	MinMatch = 4

	// RunNibbleMax is the largest run length the tag's 3-bit run field
	// stores directly; 7 means "read a varint for the remainder".
	RunNibbleMax = 6
	// RunNibbleLong is the run-field value signaling a varint follows.
	RunNibbleLong = 7

	// LenNibbleMax is the largest (length-MinMatch) the tag's 4-bit
	// length field stores directly; 15 means "read a varint".
	LenNibbleMax = 14
	// LenNibbleLong is the length-field value signaling a varint follows.
	LenNibbleLong = 15

	// DistHiBit is the tag bit carrying bit 16 of the match distance.
	DistHiBit = 1 << 4
)

// PackTag builds a tag byte from a literal-run-field value (0..7), a
// match-length-field value (0..15), and the high bit of the distance.
// run and lenField are the raw field values already clamped by the
// caller (RunField/LenField below compute them); distHi16 must be 0
// or 1.
func PackTag(run int, distHi16 int, lenField int) byte {
	return byte(run<<5) | byte(distHi16<<4) | byte(lenField)
}

// RunField returns the tag's 3-bit run-length field value (0..7) for a
// literal run of length r, and whether a varint follows: if r fits
// (r<=6) the field IS r and no varint follows; otherwise the field is
// RunNibbleLong and the caller must also emit EncodeVarint(r-7).
func RunField(r int) (field int, overflow bool) {
	if r <= RunNibbleMax {
		return r, false
	}
	return RunNibbleLong, true
}

// LenField returns the tag's 4-bit length field for a match of length
// l (l>=MinMatch): if l-MinMatch fits (<=14) the field IS l-MinMatch
// and no varint follows; otherwise the field is LenNibbleLong and the
// caller must also emit EncodeVarint(l-MinMatch-15).
func LenField(l int) (field int, overflow bool) {
	d := l - MinMatch
	if d <= LenNibbleMax {
		return d, false
	}
	return LenNibbleLong, true
}

// EncodeVarint appends the biased base-128 encoding of x to dst and
// returns the extended slice. Each continuation byte (high bit set)
// carries payload (byte-128); the final byte has its high bit clear
// and carries the remaining value directly. At most 5 bytes are
// produced for any uint32.
func EncodeVarint(dst []byte, x uint32) []byte {
	for x >= 128 {
		x -= 128
		dst = append(dst, byte(128+(x&127)))
		x >>= 7
	}
	return append(dst, byte(x))
}

// PutVarint writes the biased base-128 encoding of x into dst starting
// at offset p and returns the offset just past the last byte written.
// dst must have at least MaxVarintLen bytes available from p.
func PutVarint(dst []byte, p int, x uint32) int {
	for x >= 128 {
		x -= 128
		dst[p] = byte(128 + (x & 127))
		x >>= 7
		p++
	}
	dst[p] = byte(x)
	p++
	return p
}

// MaxVarintLen is the largest number of bytes PutVarint/EncodeVarint
// can produce for a 32-bit value.
const MaxVarintLen = 5

// DecodeVarint reads a biased base-128 varint from buf starting at
// offset p. It returns the decoded value, the offset just past the
// last byte consumed, and ok=false if buf ran out before a
// terminating (high-bit-clear) byte was found — a truncated stream,
// which the caller must treat as corrupt rather than use the partial
// value. DecodeVarint reads at most MaxVarintLen bytes and never reads
// past len(buf).
func DecodeVarint(buf []byte, p int) (x uint32, next int, ok bool) {
	for i := 0; i <= 28; i += 7 {
		if p >= len(buf) {
			return x, p, false
		}
		c := uint32(buf[p])
		p++
		x += c << i
		if c < 128 {
			return x, p, true
		}
	}
	return x, p, true
}
