package helpers

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
)

func TestAbsolutePathFunctin(t *testing.T) {
	root := filepath.FromSlash("/root/to/")

	found := AbsolutePath("file", root)
	expected := filepath.Join(root, "file")
	if found != expected {
		t.Errorf("Expected %s but got %s", expected, found)
	}

	abs := filepath.Join(t.TempDir(), "file")
	found = AbsolutePath(abs, root)
	if found != abs {
		t.Errorf("Expected %s but got %s", abs, found)
	}
}

// TestProjectUserPathIsCreated makes sure ProjectUserPath creates its directory
// under the user's home when it is missing.
func TestProjectUserPathIsCreated(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("APPDATA", home)
	t.Setenv("XDG_CONFIG_HOME", home)

	path, err := ProjectUserPath()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if !strings.HasPrefix(path, home) {
		t.Errorf("expected %s to be inside %s", path, home)
	}

	st, err := os.Stat(path)
	if err != nil {
		t.Fatalf("user path was not created: %s", err)
	}
	if !st.IsDir() {
		t.Errorf("user path %s is not a directory", path)
	}

	again, err := ProjectUserPath()
	if err != nil {
		t.Fatalf("second call returned error: %s", err)
	}
	if again != path {
		t.Errorf("expected the same path on second call, got %s and %s", path, again)
	}
}

func TestCopy(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.json")
	dst := filepath.Join(dir, "dst.json")

	contents := []byte(`{"listen": ":9997"}`)
	if err := os.WriteFile(src, contents, 0600); err != nil {
		t.Fatalf("writing source file: %s", err)
	}

	if err := Copy(src, dst); err != nil {
		t.Fatalf("copy failed: %s", err)
	}

	copied, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("reading copied file: %s", err)
	}

	if !bytes.Equal(contents, copied) {
		t.Errorf("expected `%s` but got `%s`", contents, copied)
	}

	if err := Copy(filepath.Join(dir, "missing"), dst); err == nil {
		t.Errorf("expected error when copying a missing file")
	}
}

// TestSetLogsFile makes sure that logs will be stored in the expected file after
// logging has been set to it.
func TestSetLogsFile(t *testing.T) {
	testfs := afero.NewMemMapFs()
	logFile := "some/place/mosaic.log"

	if err := SetLogsFile(testfs, logFile); err != nil {
		t.Fatalf("setting log file failed: %s", err)
	}
	defer log.SetOutput(os.Stderr)

	const testLogMessage = "test message"
	log.Print(testLogMessage)

	logData, err := fs.ReadFile(afero.NewIOFS(testfs), logFile)
	if err != nil {
		t.Fatalf("error reading the log file: %s", err)
	}

	if !strings.Contains(string(logData), testLogMessage) {
		t.Errorf(
			"log file did not contain `%s`. It was:\n%s",
			testLogMessage,
			string(logData),
		)
	}
}
