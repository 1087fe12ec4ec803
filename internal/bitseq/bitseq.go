// Package bitseq implements a bit-sequence with an explicit logical length.
//
// The backing github.com/bits-and-blooms/bitset grows on demand and reports
// capacity rather than a length the caller chose, so Seq tracks the length
// itself. Bits at or beyond Len are always unset.
package bitseq

import "github.com/bits-and-blooms/bitset"

type Seq struct {
	bits *bitset.BitSet
	n    int
}

func New(n int) *Seq {
	if n < 0 {
		n = 0
	}
	return &Seq{bits: bitset.New(uint(n)), n: n}
}

func (s *Seq) Len() int { return s.n }

// Resize sets the logical length. Growing adds unset bits; shrinking drops
// every bit at or beyond n.
func (s *Seq) Resize(n int) {
	if n < 0 {
		n = 0
	}
	if n < s.n {
		s.clearFrom(n)
	}
	s.n = n
}

// Grow extends the sequence to at least n bits. It never shrinks.
func (s *Seq) Grow(n int) {
	if n > s.n {
		s.n = n
	}
}

func (s *Seq) Has(i int) bool {
	if i < 0 || i >= s.n {
		return false
	}
	return s.bits.Test(uint(i))
}

// Set sets bit i. Indices outside [0, Len) are ignored.
func (s *Seq) Set(i int) {
	if i < 0 || i >= s.n {
		return
	}
	s.bits.Set(uint(i))
}

// SetRange sets the half-open range [start, end), clamped to [0, Len).
func (s *Seq) SetRange(start, end int) {
	start, end = s.clamp(start, end)
	for i := start; i < end; i++ {
		s.bits.Set(uint(i))
	}
}

func (s *Seq) SetAll() { s.SetRange(0, s.n) }

func (s *Seq) Clear(i int) {
	if i < 0 || i >= s.n {
		return
	}
	s.bits.Clear(uint(i))
}

// ClearRange clears the half-open range [start, end), clamped to [0, Len).
func (s *Seq) ClearRange(start, end int) {
	start, end = s.clamp(start, end)
	for i, ok := s.bits.NextSet(uint(start)); ok && int(i) < end; i, ok = s.bits.NextSet(i + 1) {
		s.bits.Clear(i)
	}
}

func (s *Seq) Any() bool { return s.bits.Any() }

func (s *Seq) None() bool { return s.bits.None() }

func (s *Seq) Count() int { return int(s.bits.Count()) }

// NextSet returns the first set index at or after i.
func (s *Seq) NextSet(i int) (int, bool) {
	if i < 0 {
		i = 0
	}
	if i >= s.n {
		return 0, false
	}
	j, ok := s.bits.NextSet(uint(i))
	if !ok || int(j) >= s.n {
		return 0, false
	}
	return int(j), true
}

// Each calls fn for every set index in ascending order.
func (s *Seq) Each(fn func(i int)) {
	for i, ok := s.NextSet(0); ok; i, ok = s.NextSet(i + 1) {
		fn(i)
	}
}

func (s *Seq) Clone() *Seq {
	return &Seq{bits: s.bits.Clone(), n: s.n}
}

// Equal reports whether both sequences have the same length and bits.
func (s *Seq) Equal(o *Seq) bool {
	if s.n != o.n || s.Count() != o.Count() {
		return false
	}
	eq := true
	s.Each(func(i int) {
		if !o.bits.Test(uint(i)) {
			eq = false
		}
	})
	return eq
}

// InsertAt opens a gap of k unset bits at index i, shifting bits at or after i
// to the right. Inserting at or beyond Len leaves the sequence unchanged.
func (s *Seq) InsertAt(i, k int) {
	if k <= 0 || i < 0 || i >= s.n {
		return
	}
	next := bitset.New(uint(s.n + k))
	s.Each(func(j int) {
		if j >= i {
			j += k
		}
		next.Set(uint(j))
	})
	s.bits = next
	s.n += k
}

// DeleteRange removes bits in [start, end), shifting later bits to the left.
// The length shrinks by the number of removed bits that were within Len.
func (s *Seq) DeleteRange(start, end int) {
	start, end = s.clamp(start, end)
	if start >= end {
		return
	}
	k := end - start
	next := bitset.New(uint(s.n - k))
	s.Each(func(j int) {
		switch {
		case j < start:
			next.Set(uint(j))
		case j >= end:
			next.Set(uint(j - k))
		}
	})
	s.bits = next
	s.n -= k
}

func (s *Seq) clearFrom(n int) {
	for i, ok := s.bits.NextSet(uint(n)); ok; i, ok = s.bits.NextSet(i + 1) {
		s.bits.Clear(i)
	}
}

func (s *Seq) clamp(start, end int) (int, int) {
	if start < 0 {
		start = 0
	}
	if end > s.n {
		end = s.n
	}
	if end < start {
		end = start
	}
	return start, end
}
