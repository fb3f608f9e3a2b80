package intern

import "testing"

func TestReservedRangeMatchesTable(t *testing.T) {
	reserved := []string{"fn", "let", "+", "-"}
	p := NewPool(reserved)

	if p.ReservedCount() != 4 {
		t.Fatalf("ReservedCount() = %d, want 4", p.ReservedCount())
	}
	for i, s := range reserved {
		id, ok := p.Lookup(s)
		if !ok {
			t.Fatalf("Lookup(%q) not found", s)
		}
		if int(id) != i+1 {
			t.Fatalf("Lookup(%q) = %d, want %d", s, id, i+1)
		}
		if !p.IsKeyword(id) {
			t.Fatalf("IsKeyword(%d) = false, want true", id)
		}
		if got := p.Text(id); got != s {
			t.Fatalf("Text(%d) = %q, want %q", id, got, s)
		}
	}
}

func TestInternGrowsAndDeduplicates(t *testing.T) {
	p := NewPool(nil)
	a := p.Intern("foo")
	b := p.Intern("bar")
	c := p.Intern("foo")
	if a != c {
		t.Fatalf("Intern not idempotent: %d != %d", a, c)
	}
	if a == b {
		t.Fatalf("distinct strings got same id")
	}
	if p.IsKeyword(a) {
		t.Fatalf("non-reserved symbol reported as keyword")
	}
}

func TestFreezeIsOneWayAndBlocksInsert(t *testing.T) {
	p := NewPool(nil)
	id := p.Intern("x")
	p.Freeze()
	if !p.Frozen() {
		t.Fatalf("Frozen() = false after Freeze()")
	}
	got, ok := p.Resolve("x")
	if !ok || got != id {
		t.Fatalf("Resolve(%q) = (%d, %v), want (%d, true)", "x", got, ok, id)
	}
	if _, ok := p.Resolve("never-interned"); ok {
		t.Fatalf("Resolve found a string that was never interned")
	}

	defer func() {
		if recover() == nil {
			t.Fatalf("Intern on frozen pool did not panic")
		}
	}()
	p.Intern("new")
}

func TestPathNamespaceIsIndependent(t *testing.T) {
	p := NewPool([]string{"fn"})
	sid := p.Intern("fn")
	pid := p.InternPath("fn")
	// Interning "fn" as a path must not touch the symbol namespace, and
	// each namespace must map its own id back to its own text.
	if p.Len() != 1 {
		t.Fatalf("InternPath added a symbol: Len() = %d, want 1", p.Len())
	}
	if got := p.Text(sid); got != "fn" {
		t.Fatalf("Text(sid) = %q, want %q", got, "fn")
	}
	if got := p.PathText(pid); got != "fn" {
		t.Fatalf("PathText(pid) = %q, want %q", got, "fn")
	}
}
