package driver

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadManifestBasic(t *testing.T) {
	path := writeManifest(t, `
name: countdown
version: "0.1.0"
main: countdown.pas
args:
  - --trace
  - --seed=7
`)

	manifest, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest returned error: %v", err)
	}

	if got, want := manifest.Name, "countdown"; got != want {
		t.Fatalf("Name = %q, want %q", got, want)
	}
	if got := manifest.Version; got != "0.1.0" {
		t.Fatalf("Version = %q, want 0.1.0", got)
	}
	if got := manifest.Main; got != "countdown.pas" {
		t.Fatalf("Main = %q, want countdown.pas", got)
	}
	if got := strings.Join(manifest.Args, ","); got != "--trace,--seed=7" {
		t.Fatalf("Args unexpected: %#v", manifest.Args)
	}
	if !filepath.IsAbs(manifest.Path) {
		t.Fatalf("Path not absolute: %q", manifest.Path)
	}
}

func TestLoadManifestArgsScalar(t *testing.T) {
	path := writeManifest(t, `
name: demo
main: demo.pas
args: --trace
`)

	manifest, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest returned error: %v", err)
	}
	if len(manifest.Args) != 1 || manifest.Args[0] != "--trace" {
		t.Fatalf("scalar args not promoted to list: %#v", manifest.Args)
	}
}

func TestLoadManifestValidation(t *testing.T) {
	path := writeManifest(t, `
name: ""
main: demo.txt
`)

	_, err := LoadManifest(path)
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	msg := err.Error()
	wantFragments := []string{
		"name must be provided",
		"main must name a .pas source file",
	}
	for _, fragment := range wantFragments {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("validation error missing fragment %q: %s", fragment, msg)
		}
	}
}

func TestLoadManifestEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "program.yml")
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	_, err := LoadManifest(path)
	if err == nil || !strings.Contains(err.Error(), "is empty") {
		t.Fatalf("expected empty-file error, got %v", err)
	}
}

func TestLoadManifestRejectsUnknownFields(t *testing.T) {
	path := writeManifest(t, `
name: demo
entrypoint: demo.pas
`)

	_, err := LoadManifest(path)
	if err == nil || !strings.Contains(err.Error(), "entrypoint") {
		t.Fatalf("expected unknown-field error, got %v", err)
	}
}

func TestManifestMainPath(t *testing.T) {
	path := writeManifest(t, `
name: demo
main: src/demo.pas
`)

	manifest, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest returned error: %v", err)
	}
	mainPath, err := manifest.MainPath()
	if err != nil {
		t.Fatalf("MainPath returned error: %v", err)
	}
	if want := filepath.Join(filepath.Dir(manifest.Path), "src", "demo.pas"); mainPath != want {
		t.Fatalf("MainPath = %q, want %q", mainPath, want)
	}
}

func TestManifestMainPathRequiresMain(t *testing.T) {
	path := writeManifest(t, `
name: demo
`)

	manifest, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest returned error: %v", err)
	}
	if _, err := manifest.MainPath(); err == nil {
		t.Fatal("expected error for manifest without main, got nil")
	}
}

func writeManifest(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "program.yml")
	if err := os.WriteFile(path, []byte(strings.TrimSpace(contents)+"\n"), 0o600); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}
