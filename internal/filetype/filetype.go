// Package filetype maps symbolic file categories ("video", "image", ...) to
// the extensions that belong to them.
package filetype

import (
	"slices"
	"strings"
)

// Registry resolves a category name to its extensions (without leading dot).
type Registry interface {
	Extensions(name string) ([]string, bool)
}

// Table is a static Registry. Extension order is preserved.
type Table map[string][]string

// Extensions implements Registry. The returned slice is a copy.
func (t Table) Extensions(name string) ([]string, bool) {
	exts, ok := t[name]
	if !ok {
		return nil, false
	}
	return slices.Clone(exts), true
}

// Names returns the category names in sorted order.
func (t Table) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Merge returns a new Table holding t overlaid with extra.
// Categories in extra replace same-named ones in t. Leading dots are
// stripped and empty entries dropped; neither input is modified.
func (t Table) Merge(extra map[string][]string) Table {
	merged := make(Table, len(t)+len(extra))
	for name, exts := range t {
		merged[name] = slices.Clone(exts)
	}
	for name, exts := range extra {
		clean := make([]string, 0, len(exts))
		for _, e := range exts {
			e = strings.TrimPrefix(strings.TrimSpace(e), ".")
			if e != "" {
				clean = append(clean, e)
			}
		}
		merged[name] = clean
	}
	return merged
}

// Default returns the built-in category table.
func Default() Table {
	return Table{
		"video": {
			"mp4", "mkv", "avi", "mov", "wmv", "flv", "webm", "m4v",
			"mpg", "mpeg", "3gp", "ts", "vob", "ogv",
		},
		"image": {
			"jpg", "jpeg", "png", "gif", "bmp", "tif", "tiff", "webp",
			"svg", "ico", "heic", "raw",
		},
		"audio": {
			"mp3", "wav", "flac", "aac", "ogg", "m4a", "wma", "opus", "aiff",
		},
		"document": {
			"pdf", "doc", "docx", "xls", "xlsx", "ppt", "pptx", "odt",
			"ods", "odp", "rtf", "epub",
		},
		"archive": {
			"zip", "tar", "gz", "tgz", "bz2", "xz", "7z", "rar", "zst",
		},
		"text": {
			"txt", "md", "csv", "log", "json", "xml", "yaml", "yml", "ini",
		},
		"code": {
			"go", "js", "ts", "py", "java", "c", "h", "cpp", "hpp", "rs",
			"rb", "php", "sh", "swift", "kt",
		},
	}
}
