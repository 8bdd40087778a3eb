package motion

import (
	"errors"
	"testing"
)

// fixedSource always returns the same draw.
type fixedSource struct {
	n int
	f float64
}

func (s fixedSource) IntN(n int) int {
	if s.n >= n {
		return n - 1
	}
	return s.n
}

func (s fixedSource) Float64() float64 { return s.f }

func shizukuCatalog() *Catalog {
	return NewCatalog(
		GroupShape{Name: "Idle", Count: 1},
		GroupShape{Name: "FlickUp", Count: 2},
	)
}

func TestSelectExplicit_Passthrough(t *testing.T) {
	c := NewCatalog(
		GroupShape{Name: "Idle", Count: 3},
		GroupShape{Name: "TapBody", Count: 2},
	)
	for _, g := range c.Groups() {
		for i := 0; i < g.Len(); i++ {
			sel, err := SelectExplicit(c, g.Name, i)
			if err != nil {
				t.Fatalf("%s[%d]: unexpected error %v", g.Name, i, err)
			}
			if sel.Group != g.Name || sel.Index != i {
				t.Errorf("expected %s[%d], got %s", g.Name, i, sel)
			}
		}
	}
}

func TestSelectExplicit_Errors(t *testing.T) {
	c := NewCatalog(GroupShape{Name: "Idle", Count: 2}, GroupShape{Name: "Empty", Count: 0})

	tests := []struct {
		name  string
		group string
		index int
		want  error
	}{
		{"missing group", "Tap", 0, ErrGroupNotFound},
		{"case sensitive", "idle", 0, ErrGroupNotFound},
		{"index at length", "Idle", 2, ErrIndexOutOfRange},
		{"index past length", "Idle", 10, ErrIndexOutOfRange},
		{"negative index", "Idle", -1, ErrIndexOutOfRange},
		{"empty group", "Empty", 0, ErrIndexOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SelectExplicit(c, tt.group, tt.index)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			var selErr *SelectionError
			if !errors.As(err, &selErr) {
				t.Fatalf("expected *SelectionError, got %T", err)
			}
			if selErr.Group != tt.group {
				t.Errorf("expected group %q in error, got %q", tt.group, selErr.Group)
			}
		})
	}
}

func TestSelectExplicit_ErrorMessage(t *testing.T) {
	c := NewCatalog(GroupShape{Name: "Idle", Count: 2})
	_, err := SelectExplicit(c, "Idle", 5)
	want := "motion index out of range: Idle[5] (valid 0-1)"
	if err == nil || err.Error() != want {
		t.Errorf("expected %q, got %v", want, err)
	}

	_, err = SelectExplicit(c, "Tap", 0)
	want = "motion group not found: Tap"
	if err == nil || err.Error() != want {
		t.Errorf("expected %q, got %v", want, err)
	}
}

func TestSelectRandom_StaysInCatalog(t *testing.T) {
	c := NewCatalog(GroupShape{Name: "A", Count: 2}, GroupShape{Name: "B", Count: 1})
	s := NewSelector("", NewSource(42))

	allowed := map[Selection]bool{
		{Group: "A", Index: 0}: true,
		{Group: "A", Index: 1}: true,
		{Group: "B", Index: 0}: true,
	}
	seen := make(map[Selection]int)

	for i := 0; i < 10000; i++ {
		sel, err := s.SelectRandom(c)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !allowed[sel] {
			t.Fatalf("selection %s outside catalog", sel)
		}
		seen[sel]++
	}
	if len(seen) != len(allowed) {
		t.Errorf("expected all %d pairs to be drawn, saw %v", len(allowed), seen)
	}
}

func TestSelectRandom_EmptyCases(t *testing.T) {
	s := NewSelector("Idle", NewSource(1))

	if _, err := s.SelectRandom(NewCatalog()); !errors.Is(err, ErrEmptyCatalog) {
		t.Errorf("expected ErrEmptyCatalog, got %v", err)
	}
	if _, err := s.SelectRandom(nil); !errors.Is(err, ErrEmptyCatalog) {
		t.Errorf("expected ErrEmptyCatalog for nil catalog, got %v", err)
	}

	allEmpty := NewCatalog(GroupShape{Name: "A"}, GroupShape{Name: "B"})
	if _, err := s.SelectRandom(allEmpty); !errors.Is(err, ErrEmptyGroup) {
		t.Errorf("expected ErrEmptyGroup, got %v", err)
	}

	// Empty groups are skipped rather than producing an invalid index.
	mixed := NewCatalog(GroupShape{Name: "A"}, GroupShape{Name: "B", Count: 1})
	for i := 0; i < 200; i++ {
		sel, err := s.SelectRandom(mixed)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sel != (Selection{Group: "B", Index: 0}) {
			t.Fatalf("expected B[0], got %s", sel)
		}
	}
}

func TestSelectRandom_Deterministic(t *testing.T) {
	c := NewCatalog(GroupShape{Name: "A", Count: 5}, GroupShape{Name: "B", Count: 7}, GroupShape{Name: "C", Count: 3})
	a := NewSelector("", NewSource(99))
	b := NewSelector("", NewSource(99))

	for i := 0; i < 100; i++ {
		sa, _ := a.SelectRandom(c)
		sb, _ := b.SelectRandom(c)
		if sa != sb {
			t.Fatalf("draw %d: same seed diverged: %s vs %s", i, sa, sb)
		}
	}
}

func TestSelectContextual_IdlePrefersCanonical(t *testing.T) {
	c := NewCatalog(
		GroupShape{Name: "TapBody", Count: 4},
		GroupShape{Name: "Idle", Count: 3},
	)

	for seed := uint64(0); seed < 50; seed++ {
		s := NewSelector("Idle", NewSource(seed))
		sel, err := s.SelectContextual(c, ContextIdle, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sel != (Selection{Group: "Idle", Index: 0}) {
			t.Fatalf("seed %d: expected Idle[0], got %s", seed, sel)
		}
	}
}

func TestSelectContextual_IdleFallsBackToFirstGroup(t *testing.T) {
	c := NewCatalog(
		GroupShape{Name: "mtn_02", Count: 2},
		GroupShape{Name: "mtn_03", Count: 1},
	)
	s := NewSelector("mtn_01", NewSource(3))

	sel, err := s.SelectContextual(c, ContextIdle, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sel != (Selection{Group: "mtn_02", Index: 0}) {
		t.Errorf("expected mtn_02[0], got %s", sel)
	}

	// Empty leading groups are skipped.
	c = NewCatalog(GroupShape{Name: "none"}, GroupShape{Name: "some", Count: 1})
	sel, err = s.SelectContextual(c, ContextIdle, nil)
	if err != nil || sel != (Selection{Group: "some", Index: 0}) {
		t.Errorf("expected some[0], got %s (%v)", sel, err)
	}
}

func TestSelectContextual_EmptyIdleGroup(t *testing.T) {
	c := NewCatalog(GroupShape{Name: "Idle"}, GroupShape{Name: "Tap", Count: 1})
	s := NewSelector("Idle", NewSource(1))

	_, err := s.SelectContextual(c, ContextIdle, nil)
	if !errors.Is(err, ErrEmptyGroup) {
		t.Errorf("expected ErrEmptyGroup, got %v", err)
	}
}

func TestSelectContextual_MotionExcludesIdle(t *testing.T) {
	c := NewCatalog(
		GroupShape{Name: "Idle", Count: 3},
		GroupShape{Name: "FlickUp", Count: 2},
		GroupShape{Name: "Tap", Count: 1},
	)
	s := NewSelector("Idle", NewSource(7))

	var prev *Selection
	for i := 0; i < 5000; i++ {
		sel, err := s.SelectContextual(c, ContextMotion, prev)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sel.Group == "Idle" {
			t.Fatalf("draw %d: motion context returned idle group", i)
		}
		if _, err := SelectExplicit(c, sel.Group, sel.Index); err != nil {
			t.Fatalf("draw %d: invalid selection %s", i, sel)
		}
		if prev != nil && *prev == sel {
			t.Fatalf("draw %d: repeated previous selection %s", i, sel)
		}
		prev = &sel
	}
}

func TestSelectContextual_MotionFallback(t *testing.T) {
	c := NewCatalog(GroupShape{Name: "Idle", Count: 2})
	s := NewSelector("Idle", NewSource(5))

	sel, err := s.SelectContextual(c, ContextMotion, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sel != (Selection{Group: "Idle", Index: 0}) {
		t.Errorf("expected Idle[0] fallback, got %s", sel)
	}

	if _, err := s.SelectContextual(NewCatalog(), ContextMotion, nil); !errors.Is(err, ErrEmptyCatalog) {
		t.Errorf("expected ErrEmptyCatalog, got %v", err)
	}
}

func TestSelectContextual_SingleClipRepeatsWhenNoAlternative(t *testing.T) {
	c := NewCatalog(GroupShape{Name: "Idle", Count: 1}, GroupShape{Name: "Tap", Count: 1})
	s := NewSelector("Idle", NewSource(5))
	prev := Selection{Group: "Tap", Index: 0}

	sel, err := s.SelectContextual(c, ContextMotion, &prev)
	if err != nil || sel != prev {
		t.Errorf("expected Tap[0], got %s (%v)", sel, err)
	}
}

func TestScenario_IdleAndMotion(t *testing.T) {
	c := shizukuCatalog()
	s := NewSelector("Idle", fixedSource{n: 0})

	sel, err := s.SelectContextual(c, ContextIdle, nil)
	if err != nil || sel != (Selection{Group: "Idle", Index: 0}) {
		t.Fatalf("expected Idle[0], got %s (%v)", sel, err)
	}

	sel, err = s.SelectContextual(c, ContextMotion, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sel.Group != "FlickUp" || sel.Index < 0 || sel.Index > 1 {
		t.Errorf("expected FlickUp[0|1], got %s", sel)
	}
}

func TestScenario_ExplicitMissingTap(t *testing.T) {
	s := NewSelector("Idle", nil)
	_, err := s.SelectExplicit(shizukuCatalog(), "Tap", 0)
	if !errors.Is(err, ErrGroupNotFound) {
		t.Errorf("expected ErrGroupNotFound, got %v", err)
	}
}

func TestCycleContext(t *testing.T) {
	if got := CycleContext(fixedSource{f: 0.59}, DefaultIdleProbability); got != ContextIdle {
		t.Errorf("expected idle, got %s", got)
	}
	if got := CycleContext(fixedSource{f: 0.6}, DefaultIdleProbability); got != ContextMotion {
		t.Errorf("expected motion, got %s", got)
	}

	rng := NewSource(11)
	idle := 0
	const trials = 20000
	for i := 0; i < trials; i++ {
		if CycleContext(rng, DefaultIdleProbability) == ContextIdle {
			idle++
		}
	}
	ratio := float64(idle) / trials
	if ratio < 0.57 || ratio > 0.63 {
		t.Errorf("expected idle ratio near 0.6, got %f", ratio)
	}
}

func TestParseContext(t *testing.T) {
	tests := []struct {
		in      string
		want    Context
		wantErr bool
	}{
		{"idle", ContextIdle, false},
		{"Motion", ContextMotion, false},
		{" IDLE ", ContextIdle, false},
		{"random", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseContext(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseContext(%q) error = %v", tt.in, err)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseContext(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
