package ulz

import (
	"fmt"

	"github.com/fastpath/ulz/internal/token"
	"github.com/fastpath/ulz/internal/xmem"
)

// corrupt wraps ErrCorruptStream with the input offset at which decode
// gave up and the kind of bound that would have been violated, so a
// caller debugging a bad stream (via %+v or a log line) can see where
// and why without decode ever distinguishing detection cases by type:
// errors.Is(err, ErrCorruptStream) still matches regardless of what
// bound fired.
func corrupt(ip int, what string) error {
	return fmt.Errorf("ulz: corrupt stream at offset %d: %s: %w", ip, what, ErrCorruptStream)
}

// decode reads the token stream in src and reconstructs it into dst,
// returning the number of bytes written. It returns (0, err) with err
// wrapping ErrCorruptStream as soon as any bound would be violated, and
// it never writes past len(dst) or reads past len(src) in doing so.
func decode(dst, src []byte) (int, error) {
	ip, op := 0, 0
	ipEnd, opEnd := len(src), len(dst)

	for ip < ipEnd {
		tag := src[ip]
		ip++

		if tag >= 32 {
			run := int(tag >> 5)
			if run == token.RunNibbleLong {
				var extra uint32
				var ok bool
				extra, ip, ok = token.DecodeVarint(src, ip)
				if !ok {
					return 0, corrupt(ip, "truncated literal-run-length varint")
				}
				run += int(extra)
			}
			if run > opEnd-op || run > ipEnd-ip {
				return 0, corrupt(ip, "literal run overruns output or input")
			}

			xmem.CopyLiteral(dst, op, src, ip, run)
			op += run
			ip += run

			if ip >= ipEnd {
				// Literal-only terminal token: no match fields follow.
				return op, nil
			}
		}

		length := int(tag&0x0F) + token.MinMatch
		if int(tag&0x0F) == token.LenNibbleLong {
			var extra uint32
			var ok bool
			extra, ip, ok = token.DecodeVarint(src, ip)
			if !ok {
				return 0, corrupt(ip, "truncated match-length varint")
			}
			length += int(extra)
		}
		if length > opEnd-op {
			return 0, corrupt(ip, "match length overruns output")
		}

		if ip+2 > ipEnd {
			return 0, corrupt(ip, "truncated match-distance field")
		}
		dist := (int(tag&token.DistHiBit) << 12) | int(xmem.LoadU16(src, ip))
		ip += 2

		if dist > op {
			return 0, corrupt(ip, "match distance precedes start of output")
		}
		cp := op - dist

		if dist >= 4 {
			xmem.WildCopy(dst, op, dst, cp, length)
		} else {
			for i := 0; i < length; i++ {
				dst[op+i] = dst[cp+i]
			}
		}
		op += length
	}

	return op, nil
}
