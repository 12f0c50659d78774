package ulz

import "errors"

// ErrCorruptStream indicates that Decompress encountered a compressed
// stream it cannot trust: a truncated token, a run or match length
// that would overrun the output or the remaining input, a distance
// referencing before the start of the output, or trailing bytes after
// the final token. Callers must treat any error from Decompress
// identically regardless of wrapped detail: discard the output and do
// not retry with the same input.
var ErrCorruptStream = errors.New("ulz: corrupt stream")

// ErrShortBuffer indicates the caller-supplied destination buffer is
// smaller than the declared output size. Unlike CompressBlock and
// CompressBlockLevel, which allocate a new buffer when the given one is
// too small, DecompressBlock returns this when it is given a non-nil
// buffer too small to hold the declared size rather than discarding it
// and allocating a new one.
var ErrShortBuffer = errors.New("ulz: destination buffer too small")

// ErrInvalidLevel indicates a level value outside [MinLevel, MaxLevel]
// was passed to ParseLevel. Compress and CompressBlockLevel never
// return this: they clamp instead, per their documented contract.
// ParseLevel exists for callers that parse a level from an external
// source (a flag, a config file) and want a rejected out-of-range value
// instead of silent clamping.
var ErrInvalidLevel = errors.New("ulz: invalid compression level")
