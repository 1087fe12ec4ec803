package grapheme

import "testing"

const family = "\U0001F468\u200d\U0001F469\u200d\U0001F467\u200d\U0001F466"

func TestOffsetsAndCount_MultiRuneGraphemes(t *testing.T) {
	text := "a" + "e\u0301" + family + "b"
	got := Offsets(text)
	want := []int{0, 1, 4, 4 + len(family)}
	if len(got) != len(want) {
		t.Fatalf("offsets=%v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("offsets=%v, want %v", got, want)
		}
	}
	if c := Count(text); c != 4 {
		t.Fatalf("count=%d, want %d", c, 4)
	}
	if Offsets("") != nil || Count("") != 0 {
		t.Fatalf("empty text must have no clusters")
	}
}

func TestByteRange(t *testing.T) {
	text := "a" + "e\u0301" + family + "b"
	cases := []struct {
		start, end int
		from, to   int
		ok         bool
	}{
		{start: 0, end: 0, from: 0, to: 0, ok: true},
		{start: 1, end: 1, from: 1, to: 3, ok: true},
		{start: 1, end: 2, from: 1, to: 3 + len(family), ok: true},
		{start: 3, end: 3, from: 4 + len(family), to: 4 + len(family), ok: true},
		{start: 2, end: 4, ok: false},
		{start: 2, end: 1, ok: false},
		{start: -1, end: 0, ok: false},
	}
	for _, tc := range cases {
		from, to, ok := ByteRange(text, tc.start, tc.end)
		if ok != tc.ok {
			t.Fatalf("ByteRange(%d,%d) ok=%v, want %v", tc.start, tc.end, ok, tc.ok)
		}
		if ok && (from != tc.from || to != tc.to) {
			t.Fatalf("ByteRange(%d,%d)=(%d,%d), want (%d,%d)", tc.start, tc.end, from, to, tc.from, tc.to)
		}
	}
}
