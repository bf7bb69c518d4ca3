// Package probe provides the read-only filesystem checks a query relies on.
package probe

import (
	"errors"
	"io/fs"
	"os"
	"syscall"
)

// Prober answers the three filesystem questions a query asks.
type Prober interface {
	// DirExists reports whether path exists and resolves to a directory,
	// following symlinks. A missing path or a non-directory maps to false;
	// other stat failures are returned as errors.
	DirExists(path string) (bool, error)
	// IsDir reports whether path itself is a directory (symlinks are not followed).
	IsDir(path string) (bool, error)
	// Size returns the byte size of path, following symlinks.
	Size(path string) (int64, error)
}

// OS probes the real filesystem.
type OS struct{}

// DirExists implements Prober.
func (OS) DirExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err == nil {
		return info.IsDir(), nil
	}
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
		return false, nil
	}
	return false, err
}

// IsDir implements Prober.
func (OS) IsDir(path string) (bool, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

// Size implements Prober.
func (OS) Size(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}
