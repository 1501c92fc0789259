package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		cfgFile = ".landing.yml"
		verbose = false
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootWritesDistIndex(t *testing.T) {
	chdir(t, t.TempDir())

	out, err := execute(t)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if out != "Generate Successful\n" {
		t.Errorf("output = %q, want success message", out)
	}

	entries, err := os.ReadDir("dist")
	if err != nil {
		t.Fatalf("ReadDir(dist): %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "index.html" {
		t.Errorf("dist contains %v, want only index.html", entries)
	}
}

func TestGenerateTwiceIsByteIdentical(t *testing.T) {
	chdir(t, t.TempDir())

	if _, err := execute(t, "generate"); err != nil {
		t.Fatalf("first run: %v", err)
	}
	first, err := os.ReadFile(filepath.Join("dist", "index.html"))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := execute(t, "generate"); err != nil {
		t.Fatalf("second run: %v", err)
	}
	second, err := os.ReadFile(filepath.Join("dist", "index.html"))
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(first, second) {
		t.Error("consecutive runs produced different files")
	}
}

func TestGenerateUsesConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	cfg := "output_dir: public\nfile_name: home.html\n"
	if err := os.WriteFile("site.yml", []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := execute(t, "--config", "site.yml", "generate"); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if _, err := os.Stat(filepath.Join("public", "home.html")); err != nil {
		t.Errorf("configured output not written: %v", err)
	}
	if _, err := os.Stat("dist"); !os.IsNotExist(err) {
		t.Error("default dist directory should not be created when overridden")
	}
}

func TestGenerateFailsWhenDistIsFile(t *testing.T) {
	chdir(t, t.TempDir())

	if err := os.WriteFile("dist", []byte("in the way"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t)
	if err == nil {
		t.Fatal("expected an error when dist is a regular file")
	}
	if bytes.Contains([]byte(out), []byte("Generate Successful")) {
		t.Error("success message printed despite failure")
	}
}

func TestRejectsArguments(t *testing.T) {
	chdir(t, t.TempDir())

	if _, err := execute(t, "extra"); err == nil {
		t.Error("expected error for unexpected argument")
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if out != "landing dev\n" {
		t.Errorf("version output = %q", out)
	}
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains: it changes
// the working directory and restores the previous one when the test ends.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore dir: %v", err)
		}
	})
}
