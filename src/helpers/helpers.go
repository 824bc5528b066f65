// Package helpers contains few helper functions which are used throughout the project.
package helpers

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
)

// ProjectUserPath returns the directory in which Mosaic keeps its user
// configuration and database. It is created if it does not exist yet.
func ProjectUserPath() (string, error) {
	base, err := userBaseDir()
	if err != nil {
		return "", fmt.Errorf("finding user base directory: %w", err)
	}

	path := filepath.Join(base, MosaicDir)
	st, err := os.Stat(path)
	if err == nil && !st.IsDir() {
		return "", fmt.Errorf("%s exists but is not a directory", path)
	}
	if err == nil {
		return path, nil
	}
	if !os.IsNotExist(err) {
		return "", err
	}

	if err := os.MkdirAll(path, 0700); err != nil {
		return "", fmt.Errorf("creating user directory: %w", err)
	}

	return path, nil
}

// SetLogsFile redirects the logger output to the file at logFilePath in fsys.
// The file is appended to and its directory is created when missing.
func SetLogsFile(fsys afero.Fs, logFilePath string) error {
	if err := fsys.MkdirAll(filepath.Dir(logFilePath), 0700); err != nil {
		return fmt.Errorf("could not create log directory: %w", err)
	}

	logFile, err := fsys.OpenFile(
		logFilePath,
		os.O_WRONLY|os.O_CREATE|os.O_APPEND,
		0600,
	)
	if err != nil {
		return fmt.Errorf("could not open log file: %w", err)
	}
	log.SetOutput(logFile)
	return nil
}

// AbsolutePath returns `path` if it is absolute or `path` joined to `root`
// otherwise.
func AbsolutePath(path, root string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

// Copy copies a file from src to dst.
func Copy(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	return CopyFrom(in, dst)
}

// CopyFrom writes everything from `in` into a newly created (or truncated)
// file at `dst`.
func CopyFrom(in io.Reader, dst string) error {
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	_, err = io.Copy(out, in)
	cerr := out.Close()
	if err != nil {
		return err
	}
	return cerr
}
