package reachability

import "testing"

func TestCombineReachableDominates(t *testing.T) {
	if got := Combine(Reachable(), UnreachableByReturn()); !got.IsReachable() {
		t.Error("Reachable must dominate UnreachableByReturn")
	}
	if got := Combine(UnreachableByReturn(), Reachable()); !got.IsReachable() {
		t.Error("Reachable must dominate regardless of side")
	}
}

func TestCombineBreakDominatesOverReturn(t *testing.T) {
	got := Combine(UnreachableByReturn(), UnreachableByBreak(nil))
	if _, ok := got.IsUnreachableByBreak(); !ok {
		t.Errorf("expected UnreachableByBreak, got %#v", got)
	}
}

func TestCombineErasesLabelEvenWhenEqual(t *testing.T) {
	outer := "outer"
	a := UnreachableByBreak(&outer)
	b := UnreachableByBreak(&outer)
	got := Combine(a, b)
	label, ok := got.IsUnreachableByBreak()
	if !ok {
		t.Fatal("expected UnreachableByBreak")
	}
	if label != nil {
		t.Errorf("label must be erased on combine, got %q", *label)
	}
}

func TestCombineHeterogeneousLabels(t *testing.T) {
	outer := "outer"
	inner := "inner"
	got := Combine(UnreachableByBreak(&outer), UnreachableByBreak(&inner))
	label, ok := got.IsUnreachableByBreak()
	if !ok || label != nil {
		t.Errorf("heterogeneous labels must erase to UnreachableByBreak(nil), got %#v label=%v", got, label)
	}
}

func TestCombineBothReturn(t *testing.T) {
	got := Combine(UnreachableByReturn(), UnreachableByReturn())
	if !got.IsUnreachableByReturn() {
		t.Errorf("expected UnreachableByReturn, got %#v", got)
	}
}
