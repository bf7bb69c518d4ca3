// Package pattern assembles the glob pattern handed to the traversal backend.
package pattern

import (
	"fmt"
	"strings"

	"github.com/ivoronin/filequery/internal/filetype"
	"github.com/ivoronin/filequery/internal/options"
	"github.com/ivoronin/filequery/internal/types"
)

// Build returns the glob pattern for a normalized request.
//
//	/data/*                 non-recursive, no filter
//	/data/**/*              recursive
//	/data/**/*.{mp4,mkv}    file type "video"
//	/data/*.txt             extension ".txt"
//
// FileType wins over Extension when both are set. Extensions are appended
// verbatim, so callers pass ".txt" rather than "txt".
func Build(req options.Request, registry filetype.Registry) (string, error) {
	var b strings.Builder
	b.WriteString(req.Directory.Value())
	if req.IsRecursive.Value() {
		b.WriteString("**/*")
	} else {
		b.WriteString("*")
	}

	fileType := req.FileType.OrElse(options.All)
	extension := req.Extension.OrElse(options.All)

	switch {
	case fileType != options.All:
		exts, ok := registry.Extensions(fileType)
		if !ok {
			return "", fmt.Errorf("%w: %q", types.ErrUnknownFileType, fileType)
		}
		b.WriteString(".{")
		b.WriteString(strings.Join(exts, ","))
		b.WriteString("}")
	case extension != options.All:
		b.WriteString(extension)
	}

	return b.String(), nil
}
