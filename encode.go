package ulz

import (
	"github.com/fastpath/ulz/internal/match"
	"github.com/fastpath/ulz/internal/token"
	"github.com/fastpath/ulz/internal/xmem"
)

// encode drives the match finder across src, accumulating literal runs
// and emitting tokens into dst, and returns the number of bytes
// written. dst must have room for len(src)+Excess bytes.
func encode(finder *match.Finder, dst, src []byte, level Level) int {
	finder.Reset(src, int(level))

	op := 0
	run := 0 // pending literal bytes ending at p-1
	p := 0
	n := len(src)

	for p < n {
		bestLen, dist := finder.Find(p, run)

		if bestLen < token.MinMatch {
			finder.Insert(p)
			run++
			p++
			continue
		}

		op = flushLiteralAndTag(dst, op, src, p, run, dist, bestLen)
		run = 0

		finder.InsertRange(p, p+bestLen)
		p += bestLen
	}

	if run > 0 {
		op = emitFinalLiteralRun(dst, op, src, p, run)
	}

	return op
}

// flushLiteralAndTag emits the tag byte for a match preceded by run
// pending literal bytes ending at p (exclusive): the tag, the run's
// overflow varint if any, the run's literal bytes, the match length's
// overflow varint if any, and finally the 2-byte little-endian low
// bits of dist. It returns the new output cursor.
func flushLiteralAndTag(dst []byte, op int, src []byte, p, run, dist, bestLen int) int {
	lenField, lenOverflow := token.LenField(bestLen)
	distHi := (dist >> 16) & 1

	runField, runOverflow := token.RunField(run)
	dst[op] = token.PackTag(runField, distHi, lenField)
	op++

	if run > 0 {
		if runOverflow {
			op = token.PutVarint(dst, op, uint32(run-token.RunNibbleLong))
		}
		xmem.CopyLiteral(dst, op, src, p-run, run)
		op += run
	}

	if lenOverflow {
		op = token.PutVarint(dst, op, uint32(bestLen-MinMatch-token.LenNibbleLong))
	}

	xmem.StoreU16(dst, op, uint16(dist))
	op += 2

	return op
}

// emitFinalLiteralRun emits the terminal literal-only token covering
// the trailing run bytes ending at p (exclusive), with no following
// match fields: the decoder recognizes this case by exhausting its
// input immediately after the run.
func emitFinalLiteralRun(dst []byte, op int, src []byte, p, run int) int {
	runField, overflow := token.RunField(run)
	dst[op] = token.PackTag(runField, 0, 0)
	op++
	if overflow {
		op = token.PutVarint(dst, op, uint32(run-token.RunNibbleLong))
	}
	xmem.CopyLiteral(dst, op, src, p-run, run)
	return op + run
}
