package registry

import "testing"

func TestGetSolversExplicitCSV(t *testing.T) {
	got := GetSolvers("hex,affine")
	if len(got) != 2 {
		t.Fatalf("expected 2 solvers, got %d", len(got))
	}
	// Registry declaration order must be preserved: HEX before AFFINE.
	if got[0].Label != "HEX" || got[1].Label != "AFFINE" {
		t.Errorf("unexpected order: %v", []string{got[0].Label, got[1].Label})
	}
}

func TestGetSolversCommonPreset(t *testing.T) {
	got := GetSolvers("common")
	if len(got) == 0 {
		t.Fatal("expected a non-empty common preset")
	}
	for _, s := range got {
		if s.Label == "BASE" {
			t.Errorf("expected BASE excluded from the common preset")
		}
	}
}

func TestGetSolversEmpty(t *testing.T) {
	if got := GetSolvers(""); got != nil {
		t.Errorf("GetSolvers(\"\") = %v, want nil", got)
	}
}

func TestGetSolversUnknownLabel(t *testing.T) {
	got := GetSolvers("NOPE")
	if len(got) != 0 {
		t.Errorf("expected no solvers for an unknown label, got %v", got)
	}
}

func TestAffinePreventConsecutive(t *testing.T) {
	for _, s := range All() {
		if s.Label == "AFFINE" && !s.PreventConsecutive {
			t.Errorf("expected AFFINE to have PreventConsecutive=true")
		}
	}
}
