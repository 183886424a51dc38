package prefilter

import (
	"bytes"
	"encoding/binary"
	"math/bits"

	"golang.org/x/sys/cpu"
)

// hasAccelerated reports whether the current CPU offers a hardware-backed
// byte scan we trust stdlib's IndexByte to be using internally. Mirrors the
// teacher's own gating condition (AVX2 or SSE4.2 on x86) without carrying
// the assembly kernels that condition used to dispatch to.
var hasAccelerated = cpu.X86.HasAVX2 || cpu.X86.HasSSE42

// scanByte returns the index of the first occurrence of needle in haystack,
// or -1 if absent. On a CPU that reports AVX2 or SSE4.2, it defers to
// bytes.IndexByte (whose runtime implementation already uses those
// extensions); otherwise it falls back to a hand-rolled SWAR scan so the
// prefilter's fast path never depends on an unverified hardware feature.
func scanByte(haystack []byte, needle byte) int {
	if hasAccelerated {
		return bytes.IndexByte(haystack, needle)
	}
	return scanByteSWAR(haystack, needle)
}

// scanByteSWAR processes 8 bytes at a time using the classic zero-byte
// detection formula, falling back to a linear scan for the final partial
// chunk and for inputs shorter than a word.
func scanByteSWAR(haystack []byte, needle byte) int {
	n := len(haystack)
	if n < 8 {
		for i := 0; i < n; i++ {
			if haystack[i] == needle {
				return i
			}
		}
		return -1
	}

	mask := uint64(needle) * 0x0101010101010101
	i := 0
	for i+8 <= n {
		chunk := binary.LittleEndian.Uint64(haystack[i:])
		xor := chunk ^ mask
		const lo8 = 0x0101010101010101
		const hi8 = 0x8080808080808080
		hasZero := (xor - lo8) &^ xor & hi8
		if hasZero != 0 {
			return i + bits.TrailingZeros64(hasZero)/8
		}
		i += 8
	}
	for ; i < n; i++ {
		if haystack[i] == needle {
			return i
		}
	}
	return -1
}
