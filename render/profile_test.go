// Copyright © 2024-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package render

import (
	"os"
	"path/filepath"
	"testing"
)

func TestProfileOptsAppliesOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.yaml")
	content := "width: 64\nheight: 32\naa: supersample4x\nmax_bounces: 2\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := LoadProfile(path)
	if err != nil {
		t.Fatal(err)
	}
	opts, err := p.Opts()
	if err != nil {
		t.Fatal(err)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Width != 64 || o.Height != 32 {
		t.Errorf("resolution = %dx%d, want 64x32", o.Width, o.Height)
	}
	if o.AA != AASupersample4x {
		t.Errorf("AA = %v, want AASupersample4x", o.AA)
	}
	if o.MaxBounces != 2 {
		t.Errorf("MaxBounces = %d, want 2", o.MaxBounces)
	}
	if o.Workers != DefaultOptions().Workers {
		t.Errorf("Workers = %d, unset field should keep default %d", o.Workers, DefaultOptions().Workers)
	}
}

func TestParseAAModeRejectsUnknown(t *testing.T) {
	if _, err := ParseAAMode("bogus"); err == nil {
		t.Error("expected an error for an unknown AA mode string")
	}
}

func TestLoadProfileMissingFileErrors(t *testing.T) {
	if _, err := LoadProfile("/nonexistent/profile.yaml"); err == nil {
		t.Error("expected an error for a missing profile file")
	}
}
