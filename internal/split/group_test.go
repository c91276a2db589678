package split

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestGroup_RegisterEvenShares(t *testing.T) {
	g := NewGroup(Horizontal)

	g.Register("left", Constraints{})
	if got := g.Size("left"); !almostEqual(got, 100) {
		t.Errorf("single panel: expected size 100, got %v", got)
	}

	g.Register("right", Constraints{})
	if got := g.Size("left"); !almostEqual(got, 50) {
		t.Errorf("after second panel: expected left=50, got %v", got)
	}
	if got := g.Size("right"); !almostEqual(got, 50) {
		t.Errorf("after second panel: expected right=50, got %v", got)
	}

	// Three sizeless panels each get 100/3.
	g.Register("extra", Constraints{})
	for _, id := range []string{"left", "right", "extra"} {
		if got := g.Size(id); !almostEqual(got, 100.0/3) {
			t.Errorf("three panels: expected %s=100/3, got %v", id, got)
		}
	}
}

func TestGroup_ExplicitDefaultSizeRetained(t *testing.T) {
	g := NewGroup(Horizontal)
	g.Register("fixed", Constraints{DefaultSize: Percent(30)})
	g.Register("a", Constraints{})
	g.Register("b", Constraints{})

	// Explicit default never participates in rebalancing.
	if got := g.Size("fixed"); !almostEqual(got, 30) {
		t.Errorf("expected fixed=30 after sizeless registrations, got %v", got)
	}
	if got := g.Size("a"); !almostEqual(got, 50) {
		t.Errorf("expected a=50 (100/2 flexible panels), got %v", got)
	}
	if got := g.Size("b"); !almostEqual(got, 50) {
		t.Errorf("expected b=50 (100/2 flexible panels), got %v", got)
	}
}

func TestGroup_RegisterExplicitDoesNotRebalance(t *testing.T) {
	g := NewGroup(Horizontal)
	g.Register("a", Constraints{})
	g.Register("b", Constraints{})

	// Registering an explicitly sized panel leaves the flexible shares alone.
	g.Register("fixed", Constraints{DefaultSize: Percent(20)})
	if got := g.Size("a"); !almostEqual(got, 50) {
		t.Errorf("expected a=50 untouched, got %v", got)
	}
	if got := g.Size("b"); !almostEqual(got, 50) {
		t.Errorf("expected b=50 untouched, got %v", got)
	}
	if got := g.Size("fixed"); !almostEqual(got, 20) {
		t.Errorf("expected fixed=20, got %v", got)
	}
}

func TestGroup_RegisterDuplicateOverwritesInPlace(t *testing.T) {
	g := NewGroup(Horizontal)
	g.Register("a", Constraints{})
	g.Register("b", Constraints{})
	g.Register("c", Constraints{})

	g.Register("b", Constraints{DefaultSize: Percent(10)})

	ids := g.PanelIDs()
	want := []string{"a", "b", "c"}
	for i, id := range want {
		if ids[i] != id {
			t.Fatalf("expected order %v after overwrite, got %v", want, ids)
		}
	}
	if got := g.Size("b"); !almostEqual(got, 10) {
		t.Errorf("expected overwritten b=10, got %v", got)
	}
}

func TestGroup_RegisterGeneratesSequentialIDs(t *testing.T) {
	g := NewGroup(Vertical)
	first := g.Register("", Constraints{})
	second := g.Register("", Constraints{})

	if first != "panel-1" {
		t.Errorf("expected generated id panel-1, got %q", first)
	}
	if second != "panel-2" {
		t.Errorf("expected generated id panel-2, got %q", second)
	}
}

func TestGroup_SizeUnknownIDFallsBackTo50(t *testing.T) {
	g := NewGroup(Horizontal)
	g.Register("left", Constraints{})

	if got := g.Size("nope"); !almostEqual(got, 50) {
		t.Errorf("expected 50 for unknown id, got %v", got)
	}
	// The lookup must not have touched anything.
	if got := g.Size("left"); !almostEqual(got, 100) {
		t.Errorf("expected left=100 unchanged, got %v", got)
	}
}

func TestGroup_ResizeTransfersBetweenNeighbors(t *testing.T) {
	g := NewGroup(Horizontal)
	g.Register("left", Constraints{})
	g.Register("right", Constraints{})

	g.Resize("left", 10)

	if got := g.Size("left"); !almostEqual(got, 60) {
		t.Errorf("expected left=60, got %v", got)
	}
	if got := g.Size("right"); !almostEqual(got, 40) {
		t.Errorf("expected right=40, got %v", got)
	}
}

func TestGroup_ResizeClampsToMinAndConserves(t *testing.T) {
	g := NewGroup(Horizontal)
	g.Register("left", Constraints{MinSize: 20})
	g.Register("right", Constraints{MinSize: 20})
	g.Resize("left", 10) // left=60, right=40

	// -70 clamps left to its min of 20 (actual delta -40); right absorbs +40.
	g.Resize("left", -70)

	if got := g.Size("left"); !almostEqual(got, 20) {
		t.Errorf("expected left clamped to 20, got %v", got)
	}
	if got := g.Size("right"); !almostEqual(got, 80) {
		t.Errorf("expected right=80, got %v", got)
	}
}

func TestGroup_ResizeClampsToMaxAndConserves(t *testing.T) {
	g := NewGroup(Horizontal)
	g.Register("left", Constraints{MaxSize: 55})
	g.Register("right", Constraints{})

	// +10 clamps left to 55 (actual delta +5); right gives up exactly 5.
	g.Resize("left", 10)

	if got := g.Size("left"); !almostEqual(got, 55) {
		t.Errorf("expected left clamped to 55, got %v", got)
	}
	if got := g.Size("right"); !almostEqual(got, 45) {
		t.Errorf("expected right=45, got %v", got)
	}
}

func TestGroup_ResizeRejectsUnequalClampedDeltas(t *testing.T) {
	g := NewGroup(Horizontal)
	g.Register("left", Constraints{})
	g.Register("right", Constraints{MinSize: 45})

	// left would grow by 20 but right can only give up 5; nothing moves.
	g.Resize("left", 20)

	if got := g.Size("left"); !almostEqual(got, 50) {
		t.Errorf("expected left unchanged at 50, got %v", got)
	}
	if got := g.Size("right"); !almostEqual(got, 50) {
		t.Errorf("expected right unchanged at 50, got %v", got)
	}
}

func TestGroup_ResizeLastPanelIsNoOp(t *testing.T) {
	g := NewGroup(Horizontal)
	g.Register("left", Constraints{})
	g.Register("right", Constraints{})

	g.Resize("right", 5)

	if got := g.Size("left"); !almostEqual(got, 50) {
		t.Errorf("expected left unchanged at 50, got %v", got)
	}
	if got := g.Size("right"); !almostEqual(got, 50) {
		t.Errorf("expected right unchanged at 50, got %v", got)
	}
}

func TestGroup_ResizeUnknownIDIsNoOp(t *testing.T) {
	g := NewGroup(Horizontal)
	g.Register("left", Constraints{})
	g.Register("right", Constraints{})

	g.Resize("ghost", 25)

	if got := g.Size("left"); !almostEqual(got, 50) {
		t.Errorf("expected left unchanged at 50, got %v", got)
	}
	if got := g.Size("right"); !almostEqual(got, 50) {
		t.Errorf("expected right unchanged at 50, got %v", got)
	}
}

func TestGroup_ResizeConservationAcrossSequence(t *testing.T) {
	g := NewGroup(Horizontal)
	g.Register("a", Constraints{MinSize: 10, MaxSize: 70})
	g.Register("b", Constraints{MinSize: 10, MaxSize: 70})
	g.Register("c", Constraints{MinSize: 10, MaxSize: 70})

	deltas := []struct {
		id    string
		delta float64
	}{
		{"a", 15}, {"b", -8}, {"a", -40}, {"b", 60}, {"a", 3.5}, {"b", -0.25},
	}

	total := func() float64 {
		sum := 0.0
		for _, s := range g.Sizes() {
			sum += s
		}
		return sum
	}

	before := total()
	for _, d := range deltas {
		g.Resize(d.id, d.delta)
		if got := total(); !almostEqual(got, before) {
			t.Fatalf("total drifted after Resize(%q, %v): expected %v, got %v", d.id, d.delta, before, got)
		}
		for i, s := range g.Sizes() {
			if s < 10-1e-9 || s > 70+1e-9 {
				t.Fatalf("panel %d out of bounds after Resize(%q, %v): %v", i, d.id, d.delta, s)
			}
		}
	}
}

func TestGroup_UnregisterKeepsRemainingSizes(t *testing.T) {
	g := NewGroup(Horizontal)
	g.Register("a", Constraints{})
	g.Register("b", Constraints{})
	g.Register("c", Constraints{})

	// No rebalancing on removal: survivors keep their 100/3 shares even
	// though the total drops below 100.
	g.Unregister("b")

	if got := g.Size("a"); !almostEqual(got, 100.0/3) {
		t.Errorf("expected a=100/3 after removal, got %v", got)
	}
	if got := g.Size("c"); !almostEqual(got, 100.0/3) {
		t.Errorf("expected c=100/3 after removal, got %v", got)
	}
	if got := len(g.PanelIDs()); got != 2 {
		t.Errorf("expected 2 panels after removal, got %d", got)
	}
}

func TestGroup_UnregisterChangesAdjacency(t *testing.T) {
	g := NewGroup(Horizontal)
	g.Register("a", Constraints{})
	g.Register("b", Constraints{})
	g.Register("c", Constraints{})
	g.Unregister("b")

	// a's successor is now c.
	g.Resize("a", 10)
	if got := g.Size("a"); !almostEqual(got, 100.0/3+10) {
		t.Errorf("expected a grown by 10, got %v", got)
	}
	if got := g.Size("c"); !almostEqual(got, 100.0/3-10) {
		t.Errorf("expected c shrunk by 10, got %v", got)
	}
}

func TestGroup_SessionBracketing(t *testing.T) {
	g := NewGroup(Horizontal)

	if g.Resizing() {
		t.Fatal("expected Resizing=false before StartResize")
	}
	g.StartResize("handle-1")
	if !g.Resizing() {
		t.Error("expected Resizing=true after StartResize")
	}
	if got := g.ActiveHandle(); got != "handle-1" {
		t.Errorf("expected ActiveHandle=handle-1, got %q", got)
	}
	g.EndResize()
	if g.Resizing() {
		t.Error("expected Resizing=false after EndResize")
	}
	if got := g.ActiveHandle(); got != "" {
		t.Errorf("expected empty ActiveHandle after EndResize, got %q", got)
	}
}

func TestGroup_ListenerNotifiedOnCommitOnly(t *testing.T) {
	g := NewGroup(Horizontal)
	g.Register("left", Constraints{})
	g.Register("right", Constraints{MinSize: 45})

	var calls [][]float64
	g.AddResizeListener(ResizeListenerFunc(func(sizes []float64) {
		calls = append(calls, sizes)
	}))

	g.Resize("left", 20) // rejected: right can only give 5
	if len(calls) != 0 {
		t.Fatalf("expected no notification on rejected resize, got %d", len(calls))
	}

	g.Resize("left", 3)
	if len(calls) != 1 {
		t.Fatalf("expected 1 notification after commit, got %d", len(calls))
	}
	if !almostEqual(calls[0][0], 53) || !almostEqual(calls[0][1], 47) {
		t.Errorf("expected notified sizes [53 47], got %v", calls[0])
	}
}

func TestGroup_PanickingListenerDoesNotBlockOthers(t *testing.T) {
	g := NewGroup(Horizontal)
	g.Register("left", Constraints{})
	g.Register("right", Constraints{})

	g.AddResizeListener(ResizeListenerFunc(func([]float64) {
		panic("listener bug")
	}))
	notified := false
	g.AddResizeListener(ResizeListenerFunc(func([]float64) {
		notified = true
	}))

	g.Resize("left", 5)
	if !notified {
		t.Error("expected second listener to run despite first panicking")
	}
}

func TestGroup_CollapseDrivesToMin(t *testing.T) {
	g := NewGroup(Horizontal)
	g.Register("side", Constraints{MinSize: 10, Collapsible: true})
	g.Register("main", Constraints{})

	g.Collapse("side")

	if got := g.Size("side"); !almostEqual(got, 10) {
		t.Errorf("expected side collapsed to 10, got %v", got)
	}
	if got := g.Size("main"); !almostEqual(got, 90) {
		t.Errorf("expected main=90 after collapse, got %v", got)
	}
}

func TestGroup_CollapseNonCollapsibleIsNoOp(t *testing.T) {
	g := NewGroup(Horizontal)
	g.Register("side", Constraints{MinSize: 10})
	g.Register("main", Constraints{})

	g.Collapse("side")

	if got := g.Size("side"); !almostEqual(got, 50) {
		t.Errorf("expected side unchanged at 50, got %v", got)
	}
}

func TestGroup_OrientationFixed(t *testing.T) {
	if got := NewGroup(Horizontal).Orientation(); got != Horizontal {
		t.Errorf("expected Horizontal, got %v", got)
	}
	if got := NewGroup(Vertical).Orientation(); got != Vertical {
		t.Errorf("expected Vertical, got %v", got)
	}
	if Horizontal.String() != "horizontal" || Vertical.String() != "vertical" {
		t.Error("unexpected Orientation string values")
	}
}
