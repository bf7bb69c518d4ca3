package testfs

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// SowFileTree creates the FileTree under root.
func SowFileTree(root string, tree FileTree) error {
	for _, d := range tree.Dirs {
		if err := os.MkdirAll(filepath.Join(root, d), 0o755); err != nil {
			return fmt.Errorf("create dir %s: %w", d, err)
		}
	}
	for _, f := range tree.Files {
		if err := sowFile(root, f); err != nil {
			return fmt.Errorf("create %s: %w", f.Path, err)
		}
	}
	for _, sym := range tree.Symlinks {
		if err := createSymlink(sym.Target, filepath.Join(root, sym.Path)); err != nil {
			return fmt.Errorf("symlink %s -> %s: %w", sym.Path, sym.Target, err)
		}
	}
	return nil
}

// sowFile streams a pattern-filled file to disk.
func sowFile(root string, f File) (err error) {
	const maxBufSize = 1 << 20 // 1MiB max buffer

	size, err := f.Bytes()
	if err != nil {
		return fmt.Errorf("parse size %q: %w", f.Size, err)
	}

	path := filepath.Join(root, f.Path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	pattern := f.Pattern
	if pattern == 0 {
		pattern = 'x'
	}
	buf := bytes.Repeat([]byte{pattern}, int(min(size, maxBufSize)))

	for remaining := size; remaining > 0; {
		n := min(remaining, int64(len(buf)))
		if _, err := out.Write(buf[:n]); err != nil {
			return err
		}
		remaining -= n
	}
	return nil
}

// createSymlink creates a symlink, creating parent dirs.
func createSymlink(target, link string) error {
	if err := os.MkdirAll(filepath.Dir(link), 0o755); err != nil {
		return err
	}
	return os.Symlink(target, link)
}
