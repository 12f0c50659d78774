// Package match implements the codec's hash-chain match finder: given
// an input buffer and a position, it returns the longest, nearest
// back-reference within the sliding window, spending at most a
// level-derived chain budget to find it.
package match

import "github.com/fastpath/ulz/internal/xmem"

const (
	// WindowBits is log2 of the sliding window size.
	WindowBits = 17
	// WindowSize is the largest distance a match may reference.
	WindowSize = 1 << WindowBits
	windowMask = WindowSize - 1

	// HashBits is log2 of the hash table size.
	HashBits = 18
	// HashSize is the number of hash buckets.
	HashSize = 1 << HashBits

	// MinMatch is the shortest match the finder will report.
	MinMatch = 4

	// none is the sentinel "no predecessor" chain value. Positions are
	// always >= 0, so -1 can never collide with a real position.
	none = -1

	// shortMatchRunThreshold is the accumulated-literal-run length at
	// or above which a minimum-length (exactly MinMatch) match is
	// suppressed in favor of continuing the literal run, since taking
	// it would force a second long-run varint header.
	shortMatchRunThreshold = 7 + 128
)

// Finder holds the two hash-chain tables used to search for matches
// across one compress call. It is reentrant across distinct calls to
// Reset, and safe to reuse to amortize the tables' allocation.
type Finder struct {
	head []int32 // bucket -> most recent position with that hash, or none
	tail []int32 // position % WindowSize -> previous position with same hash

	buf       []byte
	maxChain  int
	lookahead bool
}

// NewFinder allocates a Finder's scratch tables. Call Reset before use.
func NewFinder() *Finder {
	return &Finder{
		head: make([]int32, HashSize),
		tail: make([]int32, WindowSize),
	}
}

// Reset prepares the finder for a new input buffer at the given effort
// level (1..9), clearing the hash table. level controls max_chain =
// (level<8) ? 1<<level : WindowSize, and enables the two-position
// lookahead at level 9.
func (f *Finder) Reset(buf []byte, level int) {
	f.buf = buf
	if level < 8 {
		f.maxChain = 1 << uint(level)
	} else {
		f.maxChain = WindowSize
	}
	f.lookahead = level == 9

	for i := range f.head {
		f.head[i] = none
	}
}

// hash computes the hash of the 4-byte prefix at position p. Callers
// must ensure p+4 <= len(buf).
func (f *Finder) hash(p int) uint32 {
	return (xmem.LoadU32(f.buf, p) * 0x9E3779B9) >> (32 - HashBits)
}

// Insert records position p in its hash chain. Every position the
// encoder consumes, whether covered by a literal or a match, must be
// inserted so later positions can reference into it.
func (f *Finder) Insert(p int) {
	if p+4 > len(f.buf) {
		return
	}
	h := f.hash(p)
	f.tail[p&windowMask] = f.head[h]
	f.head[h] = int32(p)
}

// InsertRange inserts every position in [start, end).
func (f *Finder) InsertRange(start, end int) {
	for p := start; p < end; p++ {
		f.Insert(p)
	}
}

// Find returns the best match at position p: bestLen >= MinMatch and
// its distance, or bestLen < MinMatch if no usable match exists. run
// is the number of literal bytes already pending before p, used for
// short-match suppression. Find does not insert p into the hash chain;
// callers insert explicitly (via Insert/InsertRange) once they decide
// how p is consumed.
func (f *Finder) Find(p, run int) (bestLen, dist int) {
	maxMatch := len(f.buf) - p
	if maxMatch < MinMatch {
		return 0, 0
	}

	bestLen, dist = f.search(p, maxMatch, f.maxChain)

	if bestLen == MinMatch && run >= shortMatchRunThreshold {
		bestLen = 0
	}

	if f.lookahead && bestLen >= MinMatch && bestLen < maxMatch {
		if f.deferredLonger(p, bestLen) {
			bestLen = 0
		}
	}

	return bestLen, dist
}

// search walks the hash chain at p looking for the longest match,
// preferring the nearest (smallest-distance) candidate among ties
// because the chain is walked newest-first and only strictly longer
// candidates replace the current best.
func (f *Finder) search(p, maxMatch, chainBudget int) (bestLen, dist int) {
	limit := p - WindowSize
	if limit < none {
		limit = none
	}
	bestLen = MinMatch - 1

	s := int(f.head[f.hash(p)])
	for s > limit {
		// Cheap single-byte guard at the current best length before the
		// more expensive 4-byte prefix compare: candidates that can't
		// beat bestLen are rejected without re-scanning their prefix.
		// A candidate at or after p (only possible if p itself was
		// inserted before searching) is skipped: a match needs dist >= 1.
		if s < p && bestLen < maxMatch && f.buf[s+bestLen] == f.buf[p+bestLen] &&
			xmem.LoadU32(f.buf, s) == xmem.LoadU32(f.buf, p) {
			length := MinMatch
			for length < maxMatch && f.buf[s+length] == f.buf[p+length] {
				length++
			}
			if length > bestLen {
				bestLen = length
				dist = p - s
				if length == maxMatch {
					break
				}
			}
		}

		chainBudget--
		if chainBudget == 0 {
			break
		}
		s = int(f.tail[s&windowMask])
	}

	return bestLen, dist
}

// deferredLonger implements the level-9 lookahead: it probes p+1 and
// p+2 for a match that is strictly longer than extending the current
// match by that same offset, in which case emitting the shorter match
// now would be worse than re-examining at p+1 on the next iteration.
func (f *Finder) deferredLonger(p, bestLen int) bool {
	for i := 1; i <= 2; i++ {
		j := p + i
		if j+MinMatch > len(f.buf) {
			break
		}
		targetLen := bestLen + i

		limit := j - WindowSize
		if limit < none {
			limit = none
		}
		if j+bestLen >= len(f.buf) {
			continue
		}
		s := int(f.head[f.hash(j)])
		budget := f.maxChain
		for s > limit {
			if f.buf[s+bestLen] == f.buf[j+bestLen] && xmem.LoadU32(f.buf, s) == xmem.LoadU32(f.buf, j) {
				length := MinMatch
				maxLen := len(f.buf) - j
				for length < targetLen && length < maxLen && f.buf[s+length] == f.buf[j+length] {
					length++
				}
				if length == targetLen {
					return true
				}
			}
			budget--
			if budget == 0 {
				break
			}
			s = int(f.tail[s&windowMask])
		}
	}
	return false
}
