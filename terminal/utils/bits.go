package utils

import "math/bits"

const wordBits = 64

// StaticBitSet is a fixed-size bit set. The SGR parser uses it to remember
// colon separators and the tab stops use it for stop columns.
type StaticBitSet struct {
	words []uint64
	size  int
}

// NewStaticBitSet creates a new StaticBitSet with the given size.
func NewStaticBitSet(size int) *StaticBitSet {
	Assert(size >= 0, "negative bit set size")
	return &StaticBitSet{
		words: make([]uint64, (size+wordBits-1)/wordBits),
		size:  size,
	}
}

// Size returns the number of addressable bits.
func (s *StaticBitSet) Size() int { return s.size }

// Set sets the bit at the given idx to 1
func (s *StaticBitSet) Set(idx int) {
	word, mask := s.addr(idx)
	s.words[word] |= mask
}

// Unset clears the bit at the given idx
func (s *StaticBitSet) Unset(idx int) {
	word, mask := s.addr(idx)
	s.words[word] &^= mask
}

// IsSet returns if bit at given idx is set
func (s *StaticBitSet) IsSet(idx int) bool {
	word, mask := s.addr(idx)
	return s.words[word]&mask != 0
}

// Count counts the number of bits set
func (s *StaticBitSet) Count() int {
	total := 0
	for _, w := range s.words {
		total += bits.OnesCount64(w)
	}
	return total
}

// Clear clears the bits set
func (s *StaticBitSet) Clear() {
	clear(s.words)
}

func (s *StaticBitSet) addr(idx int) (int, uint64) {
	Assert(idx >= 0 && idx < s.size, "Index out of bounds")
	return idx / wordBits, 1 << (idx % wordBits)
}
