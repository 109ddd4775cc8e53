package probefile

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/vertti/verify-setup/pkg/probe"
)

const sample = `title: Backend Team
probes:
  - name: Go
    command: go version
  - name: Make
    command: make --version | head -1
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}
}

func TestFindFile_ExplicitPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "custom.yaml")
	writeFile(t, path, sample)

	found, err := FindFile(tmpDir, path)
	if err != nil {
		t.Fatalf("FindFile failed: %v", err)
	}
	if found != path {
		t.Errorf("expected %q, got %q", path, found)
	}

	_, err = FindFile(tmpDir, filepath.Join(tmpDir, "nonexistent"))
	if err == nil {
		t.Error("expected error for non-existent file")
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("explicit path error should not be ErrNotFound")
	}
}

func TestFindFile_TraverseUp(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)

	subdir := filepath.Join(tmpDir, "subdir1", "subdir2")
	if err := os.MkdirAll(subdir, 0o700); err != nil {
		t.Fatalf("failed to create directories: %v", err)
	}
	path := filepath.Join(tmpDir, FileName)
	writeFile(t, path, sample)

	found, err := FindFile(subdir, "")
	if err != nil {
		t.Fatalf("FindFile failed: %v", err)
	}
	if found != path {
		t.Errorf("expected %q, got %q", path, found)
	}
}

func TestFindFile_StopAtGit(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)

	projectDir := filepath.Join(tmpDir, "project")
	if err := os.MkdirAll(filepath.Join(projectDir, ".git"), 0o700); err != nil {
		t.Fatalf("failed to create directories: %v", err)
	}
	writeFile(t, filepath.Join(tmpDir, FileName), sample)

	_, err := FindFile(projectDir, "")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("FindFile error = %v, want %v", err, ErrNotFound)
	}
}

func TestFindFile_StopAtHome(t *testing.T) {
	tmpDir := t.TempDir()
	homeDir := filepath.Join(tmpDir, "home")
	if err := os.MkdirAll(homeDir, 0o700); err != nil {
		t.Fatalf("failed to create directories: %v", err)
	}
	t.Setenv("HOME", homeDir)
	writeFile(t, filepath.Join(tmpDir, FileName), sample)

	_, err := FindFile(homeDir, "")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("FindFile error = %v, want %v", err, ErrNotFound)
	}
}

func TestFindFile_HomeUnset(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", "")

	if err := os.Mkdir(filepath.Join(tmpDir, ".git"), 0o700); err != nil {
		t.Fatalf("failed to create directories: %v", err)
	}
	subdir := filepath.Join(tmpDir, "app", "web")
	if err := os.MkdirAll(subdir, 0o700); err != nil {
		t.Fatalf("failed to create directories: %v", err)
	}

	_, err := FindFile(subdir, "")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("FindFile error = %v, want %v", err, ErrNotFound)
	}

	path := filepath.Join(tmpDir, FileName)
	writeFile(t, path, sample)

	found, err := FindFile(subdir, "")
	if err != nil {
		t.Fatalf("FindFile failed: %v", err)
	}
	if found != path {
		t.Errorf("expected %q, got %q", path, found)
	}
}

func TestParse(t *testing.T) {
	f, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if f.Title != "Backend Team" {
		t.Errorf("Title = %q, want %q", f.Title, "Backend Team")
	}
	want := []probe.Spec{
		{Command: "go version", DisplayName: "Go"},
		{Command: "make --version | head -1", DisplayName: "Make"},
	}
	if !reflect.DeepEqual(f.Probes, want) {
		t.Errorf("Probes = %+v, want %+v", f.Probes, want)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{"invalid yaml", "probes: [", "invalid YAML"},
		{"no probes", "title: Empty\n", "no probes defined"},
		{"missing command", "probes:\n  - name: Go\n", "probes[0]"},
		{"missing name", "probes:\n  - name: Go\n    command: go version\n  - command: make\n", "probes[1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.content))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %q, want it to contain %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestParse_MissingCommandIsEmptyCommand(t *testing.T) {
	_, err := Parse([]byte("probes:\n  - name: Go\n"))
	if !errors.Is(err, probe.ErrEmptyCommand) {
		t.Errorf("error = %v, want %v", err, probe.ErrEmptyCommand)
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	writeFile(t, path, sample)

	f, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}
	if len(f.Probes) != 2 {
		t.Errorf("len(Probes) = %d, want 2", len(f.Probes))
	}

	if _, err := ParseFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
