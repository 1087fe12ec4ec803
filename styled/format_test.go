package styled

import (
	"errors"
	"reflect"
	"testing"
)

func TestSetStyle_Idempotent(t *testing.T) {
	once := New("hello").Bold()
	twice := New("hello").Bold().Bold()

	if !once.styles[Bold].Equal(twice.styles[Bold]) {
		t.Fatalf("applying bold twice changed the bit state")
	}
	if got := twice.styles[Bold].Count(); got != 5 {
		t.Fatalf("bold count=%d, want 5", got)
	}
}

func TestSetStyle_EmptyBufferCreatesNothing(t *testing.T) {
	txt := New("").Italic()
	if _, ok := txt.styles[Italic]; ok {
		t.Fatalf("empty buffer must not hold an empty style entry")
	}
}

func TestSetStyleAt_GrowsLazily(t *testing.T) {
	txt := New("abcdef")
	if err := txt.SetStyleAt("mark", 2); err != nil {
		t.Fatalf("SetStyleAt: %v", err)
	}
	if got := txt.styles["mark"].Len(); got != 3 {
		t.Fatalf("sequence len=%d, want 3", got)
	}
	if err := txt.SetStyleAt("mark", 0); err != nil {
		t.Fatalf("SetStyleAt: %v", err)
	}
	if got := txt.styles["mark"].Len(); got != 3 {
		t.Fatalf("sequence must not shrink, len=%d", got)
	}
	if err := txt.SetStyleAt("mark", 6); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("SetStyleAt past end: err=%v, want ErrOutOfRange", err)
	}
}

func TestSetStyleRange_Bounds(t *testing.T) {
	cases := []struct {
		name       string
		start, end int
		wantErr    bool
	}{
		{name: "single", start: 1, end: 1},
		{name: "whole", start: 0, end: 4},
		{name: "end-at-size", start: 0, end: 5, wantErr: true},
		{name: "reversed", start: 3, end: 2, wantErr: true},
		{name: "negative", start: -1, end: 2, wantErr: true},
	}
	for _, tc := range cases {
		txt := New("abcde")
		err := txt.SetStyleRange(Strike, tc.start, tc.end)
		if gotErr := errors.Is(err, ErrOutOfRange); gotErr != tc.wantErr {
			t.Fatalf("%s: err=%v, wantErr %v", tc.name, err, tc.wantErr)
		}
		if tc.wantErr && txt.HasStrike() {
			t.Fatalf("%s: rejected range must not apply a style", tc.name)
		}
	}
}

func TestClearAt_AffectsOnlyThatPosition(t *testing.T) {
	txt := New("abc")
	txt.Bold().Italic()

	txt.ClearAt(1)
	if got := txt.StylesAt(1); len(got) != 0 {
		t.Fatalf("styles at 1=%v, want none", got)
	}
	for _, pos := range []int{0, 2} {
		if got, want := txt.StylesAt(pos), []Style{Bold, Italic}; !reflect.DeepEqual(got, want) {
			t.Fatalf("styles at %d=%v, want %v", pos, got, want)
		}
	}
	if got, want := txt.Styles(), []Style{Bold, Italic}; !reflect.DeepEqual(got, want) {
		t.Fatalf("styles=%v, want %v", got, want)
	}
}

func TestClearAt_RemovesEmptiedStyles(t *testing.T) {
	txt := New("abc")
	if err := txt.SuperscriptAt(1); err != nil {
		t.Fatalf("SuperscriptAt: %v", err)
	}
	txt.ClearAt(1)
	if txt.HasSuperscript() {
		t.Fatalf("expected superscript gone")
	}
	if got := txt.Styles(); len(got) != 0 {
		t.Fatalf("styles=%v, want none", got)
	}
}

func TestClearStyleRange_ClampsToSequenceLength(t *testing.T) {
	txt := New("abcdefgh")
	if err := txt.UnderlineRange(1, 3); err != nil {
		t.Fatalf("UnderlineRange: %v", err)
	}

	// Positions past the sequence were never set; clearing them is a no-op.
	txt.ClearUnderlineRange(5, 7)
	txt.ClearUnderlineAt(7)
	if got, want := txt.Runs(Underline), []Run{{Start: 1, End: 4}}; !reflect.DeepEqual(got, want) {
		t.Fatalf("runs=%v, want %v", got, want)
	}

	txt.ClearUnderlineRange(3, 100)
	if got, want := txt.Runs(Underline), []Run{{Start: 1, End: 3}}; !reflect.DeepEqual(got, want) {
		t.Fatalf("runs=%v, want %v", got, want)
	}

	txt.ClearUnderlineRange(0, 2)
	if txt.HasUnderline() {
		t.Fatalf("expected underline cleared")
	}
}

func TestClearStyle_RemovesEntry(t *testing.T) {
	txt := New("abc").Code().Bold()
	txt.ClearCode()
	if got, want := txt.Styles(), []Style{Bold}; !reflect.DeepEqual(got, want) {
		t.Fatalf("styles=%v, want %v", got, want)
	}
	txt.ClearAll()
	if got := txt.Styles(); len(got) != 0 {
		t.Fatalf("styles=%v, want none", got)
	}
}

func TestStyles_CleansEmptyEntries(t *testing.T) {
	txt := New("abc")
	if err := txt.BoldAt(0); err != nil {
		t.Fatalf("BoldAt: %v", err)
	}
	// Empty the sequence behind the public API's back.
	txt.styles[Bold].Clear(0)

	if txt.HasBold() {
		t.Fatalf("an entry with no bits must report false")
	}
	if _, ok := txt.styles[Bold]; !ok {
		t.Fatalf("entry should still be present before the read")
	}
	if got := txt.Styles(); len(got) != 0 {
		t.Fatalf("styles=%v, want none", got)
	}
	if _, ok := txt.styles[Bold]; ok {
		t.Fatalf("Styles must remove the empty entry")
	}
}

func TestHasStyleAt_CustomStyle(t *testing.T) {
	txt := New("abc")
	if err := txt.SetStyleRange("highlight", 0, 1); err != nil {
		t.Fatalf("SetStyleRange: %v", err)
	}
	if !txt.HasStyleAt("highlight", 1) || txt.HasStyleAt("highlight", 2) {
		t.Fatalf("unexpected highlight membership")
	}
	if txt.HasStyleAt("missing", 0) {
		t.Fatalf("missing style must report false")
	}
}

func TestRuns(t *testing.T) {
	txt := New("abcdefgh")
	for _, pos := range []int{0, 1, 4, 6, 7} {
		if err := txt.BoldAt(pos); err != nil {
			t.Fatalf("BoldAt(%d): %v", pos, err)
		}
	}
	want := []Run{{Start: 0, End: 2}, {Start: 4, End: 5}, {Start: 6, End: 8}}
	if got := txt.Runs(Bold); !reflect.DeepEqual(got, want) {
		t.Fatalf("runs=%v, want %v", got, want)
	}
	if got := txt.Runs(Italic); got != nil {
		t.Fatalf("runs of absent style=%v, want nil", got)
	}
}

func TestSegments(t *testing.T) {
	txt := New("abcdef")
	if err := txt.BoldRange(0, 3); err != nil {
		t.Fatalf("BoldRange: %v", err)
	}
	if err := txt.ItalicRange(2, 4); err != nil {
		t.Fatalf("ItalicRange: %v", err)
	}

	want := []Segment{
		{Start: 0, End: 2, Text: "ab", Styles: []Style{Bold}},
		{Start: 2, End: 4, Text: "cd", Styles: []Style{Bold, Italic}},
		{Start: 4, End: 5, Text: "e", Styles: []Style{Italic}},
		{Start: 5, End: 6, Text: "f"},
	}
	if got := txt.Segments(); !reflect.DeepEqual(got, want) {
		t.Fatalf("segments=%#v, want %#v", got, want)
	}
	if got := New("").Segments(); len(got) != 0 {
		t.Fatalf("empty text segments=%v", got)
	}
}
