// Package options validates a query request and fills in its defaults.
package options

import (
	"fmt"
	"strings"

	"github.com/ivoronin/filequery/internal/probe"
	"github.com/ivoronin/filequery/internal/types"
)

const (
	// All is the wildcard accepted by FileType and Extension.
	All = "*"
	// DefaultSizeQuery matches every non-empty file and disables size filtering.
	DefaultSizeQuery = "$gt 0 $BYTE"

	separator = "/"
)

// Request holds the caller's query criteria. Every field is optional except
// Directory; unset fields receive defaults in Normalize.
//
// A field set to its zero value ("" or false) is present and is never
// replaced by the default. Some("") for FileType is therefore looked up as a
// category named "" and SizeQuery Some("") fails to parse.
type Request struct {
	Directory                    types.Optional[string]
	IsRecursive                  types.Optional[bool]
	IncludeBaseDirectoryOnReturn types.Optional[bool]
	ReturnFolders                types.Optional[bool]
	FileType                     types.Optional[string]
	Extension                    types.Optional[string]
	SizeQuery                    types.Optional[string]
}

// Defaults returns the values applied to unset fields. Directory has none.
func Defaults() Request {
	return Request{
		IsRecursive:                  types.Some(false),
		IncludeBaseDirectoryOnReturn: types.Some(true),
		ReturnFolders:                types.Some(false),
		FileType:                     types.Some(All),
		Extension:                    types.Some(All),
		SizeQuery:                    types.Some(DefaultSizeQuery),
	}
}

// Normalize validates req and returns a copy with every field set.
//
// Directory must be set, non-empty and name an existing directory (symlinks
// are followed); it gets a trailing separator. A regular file is rejected
// like a missing directory. Unset directories fail before any filesystem
// access.
func Normalize(req Request, p probe.Prober) (Request, error) {
	dir := req.Directory.Value()
	if dir == "" {
		return Request{}, types.ErrMissingDirectory
	}

	exists, err := p.DirExists(dir)
	if err != nil {
		return Request{}, fmt.Errorf("%w: %s: %w", types.ErrDirectoryNotFound, dir, err)
	}
	if !exists {
		return Request{}, fmt.Errorf("%w: %s", types.ErrDirectoryNotFound, dir)
	}

	if !strings.HasSuffix(dir, separator) {
		dir += separator
	}

	def := Defaults()
	return Request{
		Directory:                    types.Some(dir),
		IsRecursive:                  orDefault(req.IsRecursive, def.IsRecursive),
		IncludeBaseDirectoryOnReturn: orDefault(req.IncludeBaseDirectoryOnReturn, def.IncludeBaseDirectoryOnReturn),
		ReturnFolders:                orDefault(req.ReturnFolders, def.ReturnFolders),
		FileType:                     orDefault(req.FileType, def.FileType),
		Extension:                    orDefault(req.Extension, def.Extension),
		SizeQuery:                    orDefault(req.SizeQuery, def.SizeQuery),
	}, nil
}

func orDefault[T any](v, def types.Optional[T]) types.Optional[T] {
	if v.IsSet() {
		return v
	}
	return def
}
