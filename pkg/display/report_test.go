package display

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"sweep/pkg/repo"
	"sweep/pkg/scan"
)

func TestRender(t *testing.T) {
	base := filepath.Join("/", "work")
	proj := filepath.Join(base, "src", "proj")
	results := []scan.Result{{
		Repo: repo.Repo{Root: proj},
		Candidates: []scan.Candidate{
			{Path: filepath.Join(proj, "build"), Size: 2048},
			{Path: filepath.Join(proj, "packages", "web", "node_modules"), Size: 500},
		},
	}}

	out := &bytes.Buffer{}
	d := NewWriterDisplay(out, &bytes.Buffer{}, strings.NewReader(""))

	count, total := Render(d, DefaultTheme(), base, results)
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
	if total != 2548 {
		t.Errorf("total = %d, want 2548", total)
	}

	got := out.String()
	for _, want := range []string{
		filepath.Join("src", "proj"),
		"build",
		"2 KiB",
		filepath.Join("packages", "web", "node_modules"),
		"500 B",
		"2 dirs,",
		"reclaimable",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestRenderEmptySummary(t *testing.T) {
	out := &bytes.Buffer{}
	d := NewWriterDisplay(out, &bytes.Buffer{}, strings.NewReader(""))

	count, total := Render(d, DefaultTheme(), "/work", nil)
	if count != 0 || total != 0 {
		t.Errorf("count, total = %d, %d, want 0, 0", count, total)
	}
	if !strings.Contains(out.String(), "0 dirs, 0 B reclaimable") {
		t.Errorf("summary = %q", out.String())
	}
}
