// Package fsutil provides the small set of path and line-file primitives the
// secrets resolver is built on. All access goes through an afero.Fs so tests
// can substitute an in-memory or instrumented filesystem.
package fsutil

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// FileAccessError reports a file that could not be opened, read or written.
type FileAccessError struct {
	Op   string // "read", "write" or "mkdir"
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// Files implements path primitives on top of an afero filesystem.
type Files struct {
	fs afero.Fs
}

// New wraps fs. A nil fs means the real OS filesystem.
func New(fs afero.Fs) *Files {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Files{fs: fs}
}

// OS returns Files backed by the operating system.
func OS() *Files {
	return New(afero.NewOsFs())
}

// Combine joins a directory and a name.
func Combine(dir, name string) string {
	return filepath.Join(dir, name)
}

// Exists reports whether path names an existing regular file.
// Directories do not count.
func (f *Files) Exists(path string) bool {
	info, err := f.fs.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// ReadFile returns the raw contents of path.
func (f *Files) ReadFile(path string) ([]byte, error) {
	data, err := afero.ReadFile(f.fs, path)
	if err != nil {
		return nil, &FileAccessError{Op: "read", Path: path, Err: err}
	}
	return data, nil
}

// utf8BOM is stripped from the start of line files.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadLines returns every line of path with line terminators removed.
// A leading UTF-8 byte order mark is dropped, and a trailing newline does
// not produce an empty final line.
func (f *Files) ReadLines(path string) ([]string, error) {
	data, err := f.ReadFile(path)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	lines := []string{}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), len(data)+1)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, &FileAccessError{Op: "read", Path: path, Err: err}
	}
	return lines, nil
}

// WriteLines overwrites path with one entry per line. The parent directory
// must already exist.
func (f *Files) WriteLines(path string, lines []string) error {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if err := afero.WriteFile(f.fs, path, []byte(b.String()), 0644); err != nil {
		return &FileAccessError{Op: "write", Path: path, Err: err}
	}
	return nil
}

// EnsureDir creates dir and any missing parents.
func (f *Files) EnsureDir(dir string) error {
	if err := f.fs.MkdirAll(dir, 0755); err != nil {
		return &FileAccessError{Op: "mkdir", Path: dir, Err: err}
	}
	return nil
}

// IsNotExist reports whether err, or anything it wraps, means the file is
// missing.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
