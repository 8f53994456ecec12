package buckets

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSelection(t *testing.T) {
	s := make(Selection)

	if !s.Toggle(3) {
		t.Error("Toggle(3) on an empty selection should turn it on")
	}
	s.Set(10, true)
	s.Set(1, true)
	s.Set(1, false)

	if s.Toggle(10) {
		t.Error("Toggle(10) should turn it off")
	}
	s.Toggle(0)

	if diff := cmp.Diff([]int{0, 3}, s.Indices()); diff != "" {
		t.Errorf("Indices() mismatch (-want +got):\n%s", diff)
	}

	if !s.IsToggled(3) || s.IsToggled(10) {
		t.Error("IsToggled disagrees with Indices")
	}
}

func TestSelectionApply(t *testing.T) {
	bs := Build()
	s := Selection{5: true, 62: true}
	s.Apply(bs)

	for _, b := range bs {
		want := b.Index == 5 || b.Index == 62
		if b.Toggled != want {
			t.Errorf("bucket %d toggled=%v, want %v", b.Index, b.Toggled, want)
		}
	}

	if Build()[5].Toggled {
		t.Error("Apply leaked into a fresh Build")
	}
}
