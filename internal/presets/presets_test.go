// Copyright © 2024-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package presets

import "testing"

func TestNamesListsEmbeddedPresets(t *testing.T) {
	names, err := Names()
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]bool{"shading": false, "reflection_refraction": false, "pbr_grid": false}
	for _, n := range names {
		if _, ok := want[n]; ok {
			want[n] = true
		}
	}
	for n, found := range want {
		if !found {
			t.Errorf("expected preset %q in Names(), got %v", n, names)
		}
	}
}

func TestBuildEachPresetSealsWithoutError(t *testing.T) {
	names, err := Names()
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range names {
		sc, cam, _, err := Build(name)
		if err != nil {
			t.Fatalf("Build(%q) = %v", name, err)
		}
		if sc == nil || !sc.Sealed() {
			t.Fatalf("Build(%q): scene not sealed", name)
		}
		if cam.Forward == [3]float32{} {
			t.Errorf("Build(%q): camera forward is zero", name)
		}
	}
}

func TestBuildUnknownPresetErrors(t *testing.T) {
	if _, _, _, err := Build("does-not-exist"); err == nil {
		t.Error("expected an error for an unknown preset name")
	}
}
