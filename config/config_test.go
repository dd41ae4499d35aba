package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
)

func tempDir(t *testing.T) string {
	dir, err := ioutil.TempDir("", "cflat")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })
	return dir
}

func write(t *testing.T, path, data string) {
	if err := ioutil.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadMissing(t *testing.T) {
	m, err := Load(tempDir(t))
	if err != nil {
		t.Fatal(err)
	}
	if m.Package != "" || m.Debug.Tokens || m.Debug.AST || !m.UseColor() {
		t.Fatalf("expected defaults, got %+v", m)
	}
}

func TestInitThenLoad(t *testing.T) {
	dir := tempDir(t)
	if err := Init(dir, "demo"); err != nil {
		t.Fatal(err)
	}

	m, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if m.Package != "demo" {
		t.Fatalf("got package %q", m.Package)
	}

	if err := Init(dir, ""); err == nil {
		t.Fatal("expected an error for an empty name")
	}
}

func TestLoadYAML(t *testing.T) {
	dir := tempDir(t)
	write(t, filepath.Join(dir, YAMLFile), "package: demo\ndebug:\n  tokens: true\ncolor: false\n")
	write(t, filepath.Join(dir, TOMLFile), "package = \"ignored\"\n")

	m, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if m.Package != "demo" || !m.Debug.Tokens || m.Debug.AST || m.UseColor() {
		t.Fatalf("unexpected module %+v", m)
	}
}

func TestLoadTOML(t *testing.T) {
	dir := tempDir(t)
	write(t, filepath.Join(dir, TOMLFile), "package = \"demo\"\n\n[debug]\nast = true\n")

	m, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if m.Package != "demo" || m.Debug.Tokens || !m.Debug.AST || !m.UseColor() {
		t.Fatalf("unexpected module %+v", m)
	}
}

func TestLoadInvalid(t *testing.T) {
	dir := tempDir(t)
	write(t, filepath.Join(dir, YAMLFile), "package: [\n")

	if _, err := Load(dir); err == nil {
		t.Fatal("expected an error")
	}
}
