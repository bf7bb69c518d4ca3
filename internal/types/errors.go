package types

import "errors"

// Error kinds surfaced by a query. Callers match them with errors.Is;
// wrapped messages carry the offending value.
var (
	ErrMissingDirectory  = errors.New("directory is required")
	ErrDirectoryNotFound = errors.New("directory does not exist")
	ErrUnknownFileType   = errors.New("unknown file type")
	ErrInvalidSizeQuery  = errors.New("invalid size query")
	ErrSearchExecution   = errors.New("search failed")
	ErrProbe             = errors.New("probe failed")
)
