package styled

import (
	"strings"
	"testing"
)

func FuzzText_RandomOperationSequences(f *testing.F) {
	seeds := [][]byte{
		{},
		{0},
		{1, 2, 3, 4, 5},
		{255, 0, 128, 64, 32, 16, 8, 4, 2, 1},
		[]byte("resize-and-style"),
		[]byte("insert\ndelete"),
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		txt := New("seed text")
		styles := []Style{Bold, Italic, Code, "custom"}
		for i := 0; i+2 < len(data); i += 3 {
			op, a, b := data[i]%10, int(data[i+1])%16, int(data[i+2])%16
			name := styles[int(data[i+1])%len(styles)]
			switch op {
			case 0:
				_ = txt.SetStyleRange(name, min(a, b), max(a, b))
			case 1:
				_ = txt.SetStyleAt(name, a)
			case 2:
				txt.ClearStyleRange(name, min(a, b), max(a, b))
			case 3:
				txt.ClearAt(a)
			case 4:
				_ = txt.Resize(a)
			case 5:
				txt.Append(strings.Repeat("x", b%4))
			case 6:
				_ = txt.Insert(a, "ins")
			case 7:
				_ = txt.Delete(min(a, b), max(a, b))
			case 8:
				if r, err := txt.At(a); err == nil {
					if src, err := txt.View(b); err == nil {
						_ = r.Assign(src)
					}
				}
			case 9:
				txt.SetStyle(name)
			}
			assertTextInvariants(t, txt)
		}
	})
}

func assertTextInvariants(t *testing.T, txt *Text) {
	t.Helper()

	for name, seq := range txt.styles {
		if seq.Len() > txt.Size() {
			t.Fatalf("style %s len %d exceeds size %d", name, seq.Len(), txt.Size())
		}
		if seq.None() {
			t.Fatalf("style %s left with no bits set", name)
		}
	}

	plain := Exporter{Tags: TagTable{}}
	if got := plain.Export(txt); got != txt.String() {
		t.Fatalf("tagless export=%q, want content %q", got, txt.String())
	}

	var sb strings.Builder
	for _, seg := range txt.Segments() {
		sb.WriteString(seg.Text)
	}
	if got := sb.String(); got != txt.String() {
		t.Fatalf("segments joined=%q, want %q", got, txt.String())
	}
}
