package discover

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestResolveDirectoryCandidate(t *testing.T) {
	dir := t.TempDir()
	mod := filepath.Join(dir, "core")
	writeFile(t, filepath.Join(mod, "lang.json"), `{"a": "1"}`)

	artifacts, err := Resolve([]string{mod})
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if len(artifacts) != 1 {
		t.Fatalf("len(artifacts) = %d, want 1", len(artifacts))
	}
	if artifacts[0].Path != filepath.Join(mod, "lang.json") {
		t.Errorf("Path = %q, want lang.json under the candidate dir", artifacts[0].Path)
	}
	if string(artifacts[0].Data) != `{"a": "1"}` {
		t.Errorf("Data = %q, want file contents", artifacts[0].Data)
	}
}

func TestResolveFileCandidate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "strings.yaml")
	writeFile(t, path, "a: 1\n")

	artifacts, err := Resolve([]string{path})
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if len(artifacts) != 1 || artifacts[0].Path != path {
		t.Fatalf("artifacts = %+v, want the single file candidate", artifacts)
	}
}

func TestResolveMissingCandidatesSkipped(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "present", "lang.json")
	writeFile(t, path, `{"a": "1"}`)

	artifacts, err := Resolve([]string{
		filepath.Join(dir, "absent"),
		filepath.Join(dir, "absent", "lang.json"),
		filepath.Join(dir, "present"),
	})
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if len(artifacts) != 1 {
		t.Errorf("len(artifacts) = %d, want 1 (missing candidates skipped)", len(artifacts))
	}
}

func TestResolveEmptyMatchDirWithoutLangFile(t *testing.T) {
	dir := t.TempDir()
	artifacts, err := Resolve([]string{dir})
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if len(artifacts) != 0 {
		t.Errorf("len(artifacts) = %d, want 0", len(artifacts))
	}
}

func TestResolveZeroByteDropped(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "empty", "lang.json"), "")
	writeFile(t, filepath.Join(dir, "full", "lang.json"), `{"a": "1"}`)

	artifacts, err := Resolve([]string{
		filepath.Join(dir, "empty"),
		filepath.Join(dir, "full"),
	})
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if len(artifacts) != 1 {
		t.Errorf("len(artifacts) = %d, want 1 (zero-byte file dropped)", len(artifacts))
	}
}

func TestResolvePreservesOrder(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.json")
	b := filepath.Join(dir, "b.json")
	writeFile(t, a, `{"k": "a"}`)
	writeFile(t, b, `{"k": "b"}`)

	artifacts, err := Resolve([]string{b, a})
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if len(artifacts) != 2 || artifacts[0].Path != b || artifacts[1].Path != a {
		t.Errorf("artifacts out of discovery order: %+v", artifacts)
	}
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lang.list")
	writeFile(t, path, "# module translations\ncore/calendar\n\naddons/forum\n  assets/en.json  \n")

	candidates, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest error: %v", err)
	}
	want := []string{"core/calendar", "addons/forum", "assets/en.json"}
	if len(candidates) != len(want) {
		t.Fatalf("candidates = %v, want %v", candidates, want)
	}
	for i := range want {
		if candidates[i] != want[i] {
			t.Errorf("candidates[%d] = %q, want %q", i, candidates[i], want[i])
		}
	}
}

func TestLoadManifestMissing(t *testing.T) {
	if _, err := LoadManifest(filepath.Join(t.TempDir(), "nope.list")); err == nil {
		t.Error("LoadManifest on missing file: expected error, got nil")
	}
}
