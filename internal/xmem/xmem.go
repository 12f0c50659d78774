// Package xmem provides the unaligned little-endian load/store and
// wide-copy primitives the codec's wire format depends on. Go does not
// allow the raw pointer-punned reads the original C used, so loads and
// stores are expressed explicitly in terms of byte shifts; the shapes
// mirror what a compiler turns those punned accesses into on little-
// endian hardware.
package xmem

import "golang.org/x/sys/cpu"

// Stride is the block size CopyLiteral moves per loop iteration
// (WildCopy always uses a fixed 8-byte stride). It never changes the
// bytes copied, so gating it on CPU features is purely a throughput
// knob.
var Stride = detectStride()

func detectStride() int {
	if cpu.X86.HasAVX2 || cpu.ARM64.HasASIMD {
		return 16
	}
	return 8
}

// LoadU32 reads a little-endian uint32 at offset p in buf.
// The caller must guarantee p+4 <= len(buf); callers may read into the
// codec's E-byte trailing slack, which is intentional (see WildCopy).
func LoadU32(buf []byte, p int) uint32 {
	return uint32(buf[p]) | uint32(buf[p+1])<<8 | uint32(buf[p+2])<<16 | uint32(buf[p+3])<<24
}

// LoadU16 reads a little-endian uint16 at offset p in buf.
func LoadU16(buf []byte, p int) uint16 {
	return uint16(buf[p]) | uint16(buf[p+1])<<8
}

// StoreU16 writes x as a little-endian uint16 at offset p in buf.
func StoreU16(buf []byte, p int, x uint16) {
	buf[p] = byte(x)
	buf[p+1] = byte(x >> 8)
}

// copyU32 copies the 4 bytes src[s:s+4] to dst[d:d+4].
func copyU32(dst []byte, d int, src []byte, s int) {
	dst[d] = src[s]
	dst[d+1] = src[s+1]
	dst[d+2] = src[s+2]
	dst[d+3] = src[s+3]
}

// WildCopy copies n bytes from src[s:] to dst[d:] in a fixed 8-byte
// stride, starting with two unconditional 4-byte stores, whenever the
// backing slices have at least 8 bytes of room beyond the copy so the
// stride's trailing overwrite/overread stays in bounds; it falls back
// to a byte-by-byte copy for the final short tail and whenever the
// fast path would run off either slice. The original C this codec is
// ported from relies on unconditional overread/overwrite into
// caller-reserved slack on both sides; Go slices panic on an
// out-of-bounds access regardless of any slack the caller intended, so
// the bound is checked here instead of assumed. The codec still sizes
// its output buffers with Excess slack so the fast path is taken for
// all but the last few bytes of a call.
//
// Overlapping src/dst (d > s, d < s+n) is intentional for the decoder's
// match copy with distance >= 4: the forward stride reproduces the
// repeating pattern a byte-by-byte copy would produce, because every
// store only depends on bytes already written earlier in this same
// call. Do not replace this with copy() or bytes.Copy, both of which
// special-case overlap differently than a strided forward copy.
func WildCopy(dst []byte, d int, src []byte, s int, n int) {
	i := 0
	for n-i >= 8 && d+i+8 <= len(dst) && s+i+8 <= len(src) {
		copyU32(dst, d+i, src, s+i)
		copyU32(dst, d+i+4, src, s+i+4)
		i += 8
	}
	for ; i < n; i++ {
		dst[d+i] = src[s+i]
	}
}

// CopyLiteral copies n bytes of a literal run from src[s:] to dst[d:].
// Unlike WildCopy, a literal run never overlaps its destination, so
// there is no fixed stride it must reproduce; it moves in whatever
// block size Stride reports for the running CPU (16 bytes under
// AVX2/ASIMD, 8 otherwise) and lets the builtin copy handle the tail,
// which the runtime already lowers to a vector move on these paths.
func CopyLiteral(dst []byte, d int, src []byte, s int, n int) {
	i := 0
	for n-i >= Stride && d+i+Stride <= len(dst) && s+i+Stride <= len(src) {
		copy(dst[d+i:d+i+Stride], src[s+i:s+i+Stride])
		i += Stride
	}
	copy(dst[d+i:d+n], src[s+i:s+n])
}
