// Package testfs builds declarative file trees for query tests.
//
// A FileTree lists files (with sizes), empty directories and symlinks,
// all relative to a root. Parent directories are created automatically
// (mkdir -p semantics).
//
//	given := testfs.FileTree{
//	    Files: []testfs.File{
//	        {Path: "movies/a.mp4", Size: "2KiB"},
//	        {Path: "movies/b.mkv", Size: "1MiB"},
//	        {Path: "notes.txt"},
//	    },
//	    Dirs:     []string{"empty"},
//	    Symlinks: []testfs.Symlink{{Path: "latest", Target: "movies"}},
//	}
//	h := testfs.New(t, given)
//	paths, err := svc.Query(ctx, options.Request{Directory: types.Some(h.Root())})
package testfs

import "github.com/dustin/go-humanize"

// FileTree describes a filesystem state relative to a root directory.
type FileTree struct {
	Files    []File
	Dirs     []string
	Symlinks []Symlink
}

// File defines a regular file filled with Pattern bytes.
type File struct {
	// Path is relative to the tree root.
	Path string

	// Size in bytes or humanized units: "100", "2KiB", "1MiB".
	// IEC units are 1024-based, SI units ("1KB") are 1000-based.
	// Empty means zero bytes.
	Size string

	// Pattern is the fill byte; zero means 'x'.
	Pattern byte
}

// Bytes returns the parsed size of f.
func (f File) Bytes() (int64, error) {
	if f.Size == "" {
		return 0, nil
	}
	size, err := humanize.ParseBytes(f.Size)
	if err != nil {
		return 0, err
	}
	return int64(size), nil
}

// Symlink defines a symbolic link at Path pointing to Target.
// Target is used verbatim, so relative targets resolve from Path's directory.
type Symlink struct {
	Path   string
	Target string
}
