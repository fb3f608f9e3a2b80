package source

import "testing"

func TestSpanMergeRequiresSameFile(t *testing.T) {
	a := Span{File: 0, Start: 2, End: 5}
	b := Span{File: 0, Start: 4, End: 9}
	m := a.Merge(b)
	if m.Start != 2 || m.End != 9 {
		t.Fatalf("Merge = %+v, want {2 9}", m)
	}
	if !m.Covers(a) || !m.Covers(b) {
		t.Fatalf("Merge result does not cover its inputs: %+v", m)
	}

	other := Span{File: 1, Start: 0, End: 1}
	if got := a.Merge(other); got != a {
		t.Fatalf("Merge across files = %+v, want unchanged %+v", got, a)
	}
}

func TestFileSetLineColBasic(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("t.code", []byte("ab\ncd\n"))
	f := fs.Get(id)

	start, end := fs.Resolve(Span{File: id, Start: 0, End: 2})
	if start != (LineCol{Line: 1, Col: 1}) || end != (LineCol{Line: 1, Col: 3}) {
		t.Fatalf("Resolve(0,2) = %+v,%+v", start, end)
	}

	start, _ = fs.Resolve(Span{File: id, Start: 3, End: 3})
	if start != (LineCol{Line: 2, Col: 1}) {
		t.Fatalf("Resolve(3,3).start = %+v, want line 2 col 1", start)
	}

	if got := f.GetLine(1); got != "ab" {
		t.Fatalf("GetLine(1) = %q, want %q", got, "ab")
	}
	if got := f.GetLine(2); got != "cd" {
		t.Fatalf("GetLine(2) = %q, want %q", got, "cd")
	}
	if got := f.GetLine(3); got != "" {
		t.Fatalf("GetLine(3) = %q, want empty", got)
	}
}

func TestFileSetAddDedupesByteIdenticalReadd(t *testing.T) {
	fs := NewFileSet()
	first := fs.Add("x.code", []byte("module m;"), 0)
	second := fs.Add("x.code", []byte("module m;"), 0)
	if first != second {
		t.Fatalf("re-adding identical content at the same path got distinct ids %v, %v", first, second)
	}
	if fs.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 after a byte-identical re-add", fs.Len())
	}

	third := fs.Add("x.code", []byte("module other;"), 0)
	if third == first {
		t.Fatalf("re-adding changed content at the same path reused id %v", first)
	}
	if fs.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 after a content-changed re-add", fs.Len())
	}
	if got, ok := fs.GetByPath("x.code"); !ok || got.ID != third {
		t.Fatalf("GetByPath after changed re-add = %+v,%v, want id %v", got, ok, third)
	}
}

func TestFileSetAddDoesNotNormalize(t *testing.T) {
	fs := NewFileSet()
	id := fs.Add("x.code", []byte("a\r\nb"), 0)
	f := fs.Get(id)
	if string(f.Content) != "a\r\nb" {
		// Add does not itself normalize; AddNormalized does. This test documents
		// that distinction explicitly.
		t.Fatalf("Add must not normalize content itself")
	}
}
