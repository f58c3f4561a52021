package output

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestWriteFileCreatesDirectories(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "src", "common", "Defs.h")
	if err := WriteFile(path, []byte("#endif")); err != nil {
		t.Fatalf("WriteFile returned error: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(got) != "#endif" {
		t.Fatalf("unexpected content %q", got)
	}
}

func TestWriteFileOverwritesAndKeepsMode(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("file modes are not preserved on windows")
	}

	path := filepath.Join(t.TempDir(), "Defs.h")
	if err := os.WriteFile(path, []byte("old content that is longer"), 0o600); err != nil {
		t.Fatalf("seed output: %v", err)
	}

	if err := WriteFile(path, []byte("new")); err != nil {
		t.Fatalf("WriteFile returned error: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(got) != "new" {
		t.Fatalf("expected full overwrite, got %q", got)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat output: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("expected mode 0600, got %v", info.Mode().Perm())
	}
}

func TestWriteFileLeavesNoTempFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "Defs.h")
	for i := 0; i < 3; i++ {
		if err := WriteFile(path, []byte("x")); err != nil {
			t.Fatalf("WriteFile returned error: %v", err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "Defs.h" {
		t.Fatalf("expected only Defs.h in output dir, got %v", entries)
	}
}

func TestWriteFileFailsWhenParentIsFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	blocker := filepath.Join(dir, "common")
	if err := os.WriteFile(blocker, []byte("not a dir"), 0o644); err != nil {
		t.Fatalf("seed blocker: %v", err)
	}

	if err := WriteFile(filepath.Join(blocker, "Defs.h"), []byte("x")); err == nil {
		t.Fatalf("expected error when parent path is a file")
	}
}

func TestWriteFileFailureLeavesNoTempFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "Defs.h")
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("seed directory: %v", err)
	}

	if err := WriteFile(path, []byte("x")); err == nil {
		t.Fatalf("expected error when replacing a directory")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 || !entries[0].IsDir() {
		t.Fatalf("expected only the original directory, got %v", entries)
	}
}
