package bench

import (
	"bytes"
	"testing"

	"github.com/fastpath/ulz"
)

// BenchmarkCompressByLevel compares compression throughput and ratio
// across match-finder effort levels for a range of data shapes.
func BenchmarkCompressByLevel(b *testing.B) {
	textData := bytes.Repeat([]byte("ulz is a single-shot LZ77-family byte stream codec. "+
		"It favors throughput over ratio and carries no streaming framing."), 100)

	jsonData := bytes.Repeat([]byte(`{"id":1234,"name":"ulz","window":131072,"minMatch":4,`+
		`"features":["hashChain","overlapCopy","varintTags"]}`), 50)

	binaryData := make([]byte, 100000)
	for i := range binaryData {
		binaryData[i] = byte(i * 17 % 255)
	}

	highlyCompressible := bytes.Repeat([]byte("ABCDEFGHIJKLMNOPQRSTUVWXYZ"), 4000)

	tests := []struct {
		name string
		data []byte
	}{
		{"Text", textData},
		{"JSON", jsonData},
		{"Binary", binaryData},
		{"HighlyCompressible", highlyCompressible},
	}

	for _, tt := range tests {
		for _, level := range []ulz.Level{ulz.MinLevel, ulz.DefaultLevel, ulz.MaxLevel} {
			b.Run(tt.name+"/level"+levelName(level), func(b *testing.B) {
				dst := make([]byte, len(tt.data)+ulz.Excess)
				codec := ulz.NewCodec()

				b.ResetTimer()
				b.SetBytes(int64(len(tt.data)))

				var n int
				for i := 0; i < b.N; i++ {
					n = codec.Compress(dst, tt.data, level)
				}

				b.StopTimer()
				ratio := float64(n) / float64(len(tt.data))
				b.ReportMetric(ratio, "ratio")
			})
		}
	}
}

// BenchmarkDecompress measures decode throughput for data pre-compressed
// at the default level.
func BenchmarkDecompress(b *testing.B) {
	textData := bytes.Repeat([]byte("ulz is a single-shot LZ77-family byte stream codec. "+
		"It favors throughput over ratio and carries no streaming framing."), 200)

	dst := make([]byte, len(textData)+ulz.Excess)
	n := ulz.Compress(dst, textData, ulz.DefaultLevel)
	compressed := dst[:n]

	out := make([]byte, len(textData))

	b.ResetTimer()
	b.SetBytes(int64(len(textData)))

	for i := 0; i < b.N; i++ {
		got, err := ulz.Decompress(out, compressed)
		if err != nil || got != len(textData) {
			b.Fatalf("Decompress() = (%d, %v), want (%d, nil)", got, err, len(textData))
		}
	}
}

func levelName(l ulz.Level) string {
	switch l {
	case ulz.MinLevel:
		return "Min"
	case ulz.MaxLevel:
		return "Max"
	default:
		return "Default"
	}
}
