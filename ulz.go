// Package ulz implements a single-shot, in-memory LZ77-family byte
// stream codec optimized for throughput rather than ratio: a
// hash-chain match finder with a tunable effort level, a one-byte tag
// that jointly encodes literal-run length, match length and the high
// bit of the match distance, and an overlap-tolerant decoder built
// around a wide, unrolled copy.
//
// A compressed stream has no header, footer, magic number, or length
// prefix; it is a bare concatenation of tokens. Callers are
// responsible for transmitting the uncompressed length out of band and
// for sizing the destination buffer before calling Compress.
package ulz

import "github.com/fastpath/ulz/internal/match"

const (
	// WindowSize is the largest distance a match may reference.
	WindowSize = match.WindowSize
	// MinMatch is the shortest back-reference length the encoder emits.
	MinMatch = match.MinMatch
	// Excess is the slack a caller must add to an input's length when
	// sizing a destination buffer for Compress, to tolerate the wide
	// copy's overwrite past the logical output end.
	Excess = 16
)

// Codec owns the match finder's hash-chain scratch tables so repeated
// Compress calls can amortize their allocation (roughly WindowSize*4 +
// HashSize*4 bytes, about 1.5MB). A zero-value Codec is not usable;
// construct one with NewCodec. Decompress needs no scratch state and
// is a package-level function.
//
// A Codec is not safe for concurrent use by multiple goroutines, but
// distinct Codec values may run on disjoint buffers in parallel with
// no shared state.
type Codec struct {
	finder *match.Finder
}

// NewCodec allocates a Codec ready for repeated Compress calls.
func NewCodec() *Codec {
	return &Codec{finder: match.NewFinder()}
}

// Compress writes a compressed encoding of src into dst and returns the
// number of bytes written. dst must have length at least
// len(src)+Excess; Compress never fails on a well-formed call, and its
// behavior is undefined if dst is too small. level is clamped to
// [MinLevel, MaxLevel] and controls match-finder effort only: the
// emitted stream is decodable by Decompress regardless of level.
func (c *Codec) Compress(dst, src []byte, level Level) int {
	return encode(c.finder, dst, src, level.clamp())
}

// Decompress restores the original bytes an earlier Compress call
// produced from src into dst, returning the number of bytes written.
// dst must have length at least the declared (out-of-band) original
// size. Decoding runs until src is consumed, and a stream that would
// write past len(dst) is reported as corrupt. On any
// corruption it returns (0, err) with err wrapping ErrCorruptStream
// (check with errors.Is) and dst's contents are unspecified.
func (c *Codec) Decompress(dst, src []byte) (int, error) {
	return decode(dst, src)
}

// Compress is the package-level convenience form of (*Codec).Compress
// for callers making a single call; it allocates a throwaway Codec.
func Compress(dst, src []byte, level Level) int {
	return NewCodec().Compress(dst, src, level)
}

// Decompress is the package-level convenience form of
// (*Codec).Decompress.
func Decompress(dst, src []byte) (int, error) {
	return decode(dst, src)
}

// CompressBlock compresses src at DefaultLevel, allocating dst if it is
// nil or smaller than len(src)+Excess.
func CompressBlock(src, dst []byte) []byte {
	return CompressBlockLevel(src, dst, DefaultLevel)
}

// CompressBlockLevel compresses src at the given level, allocating dst
// if it is nil or smaller than len(src)+Excess.
func CompressBlockLevel(src, dst []byte, level Level) []byte {
	need := len(src) + Excess
	if dst == nil || cap(dst) < need {
		dst = make([]byte, need)
	}
	dst = dst[:cap(dst)]
	n := Compress(dst, src, level)
	return dst[:n]
}

// DecompressBlock decompresses src into dst. size must be the exact
// original length, known out of band (the wire format carries no
// length prefix). A nil dst is allocated automatically; a non-nil dst
// with cap(dst) < size is rejected with ErrShortBuffer rather than
// silently replaced, since a caller passing in their own undersized
// buffer is almost always a sizing bug worth surfacing.
func DecompressBlock(src, dst []byte, size int) ([]byte, error) {
	if dst == nil {
		dst = make([]byte, size)
	} else if cap(dst) < size {
		return nil, ErrShortBuffer
	}
	dst = dst[:size]
	n, err := Decompress(dst, src)
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}
