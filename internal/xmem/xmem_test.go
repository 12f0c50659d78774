package xmem

import "testing"

func TestLoadStoreU16RoundTrip(t *testing.T) {
	buf := make([]byte, 4)
	StoreU16(buf, 1, 0xBEEF)
	got := LoadU16(buf, 1)
	if got != 0xBEEF {
		t.Errorf("LoadU16 after StoreU16 = %#x, want %#x", got, 0xBEEF)
	}
}

func TestLoadU32LittleEndian(t *testing.T) {
	buf := []byte{0x01, 0x02, 0x03, 0x04}
	got := LoadU32(buf, 0)
	want := uint32(0x04030201)
	if got != want {
		t.Errorf("LoadU32 = %#x, want %#x", got, want)
	}
}

func TestWildCopyExact(t *testing.T) {
	src := []byte("the quick brown fox jumps")
	dst := make([]byte, len(src))
	WildCopy(dst, 0, src, 0, len(src))
	if string(dst) != string(src) {
		t.Errorf("WildCopy = %q, want %q", dst, src)
	}
}

func TestWildCopyShortTail(t *testing.T) {
	src := []byte("abc")
	dst := make([]byte, 3)
	WildCopy(dst, 0, src, 0, 3)
	if string(dst) != "abc" {
		t.Errorf("WildCopy short tail = %q, want %q", dst, "abc")
	}
}

func TestWildCopyOverlapForward(t *testing.T) {
	// Distance 1, run-length fill: copying "a" repeated forward.
	buf := make([]byte, 10)
	buf[0] = 'a'
	WildCopy(buf, 1, buf, 0, 9)
	for i, b := range buf {
		if b != 'a' {
			t.Fatalf("buf[%d] = %q, want 'a'", i, b)
		}
	}
}

func TestWildCopyDoesNotOverrunSlice(t *testing.T) {
	src := []byte("0123456789")
	dst := make([]byte, 10)
	// n larger than either slice has room for past the start offset
	// must still only touch len(dst)/len(src) bytes, not panic.
	WildCopy(dst, 2, src, 2, 8)
	if string(dst[2:10]) != "23456789" {
		t.Errorf("WildCopy = %q, want %q", dst[2:10], "23456789")
	}
}

func TestCopyLiteralMatchesInput(t *testing.T) {
	src := []byte("a reasonably long literal run to copy around")
	dst := make([]byte, len(src))
	CopyLiteral(dst, 0, src, 0, len(src))
	if string(dst) != string(src) {
		t.Errorf("CopyLiteral = %q, want %q", dst, src)
	}
}

func TestCopyLiteralShort(t *testing.T) {
	src := []byte("x")
	dst := make([]byte, 1)
	CopyLiteral(dst, 0, src, 0, 1)
	if dst[0] != 'x' {
		t.Errorf("CopyLiteral single byte = %q, want 'x'", dst[0])
	}
}
