// Package filequery lists the files under a directory that match a set of
// criteria: recursion, extension or file-type category, size comparison and
// whether directories are included.
//
//	svc := filequery.New(filequery.WithWorkers(8))
//	paths, err := svc.Query(ctx, filequery.Request{
//	    Directory:   filequery.Some("/media/movies"),
//	    IsRecursive: filequery.Some(true),
//	    FileType:    filequery.Some("video"),
//	    SizeQuery:   filequery.Some("$lt 1 $GB"),
//	})
//
// Every Request field is optional except Directory. A field left unset
// receives its default; a field set to "" or false is used as given.
package filequery

import (
	"github.com/ivoronin/filequery/internal/filetype"
	"github.com/ivoronin/filequery/internal/globber"
	"github.com/ivoronin/filequery/internal/options"
	"github.com/ivoronin/filequery/internal/probe"
	"github.com/ivoronin/filequery/internal/query"
	"github.com/ivoronin/filequery/internal/scanner"
	"github.com/ivoronin/filequery/internal/sizequery"
	"github.com/ivoronin/filequery/internal/types"
)

type (
	// Request holds query criteria. See options.Request for field semantics.
	Request = options.Request
	// Service runs queries; build one with New and share it.
	Service = query.Service
	// Option configures a Service.
	Option = query.Option
	// Globber enumerates paths matching a glob pattern.
	Globber = globber.Globber
	// Registry maps file-type categories to extensions.
	Registry = filetype.Registry
	// FileTypes is a static Registry.
	FileTypes = filetype.Table
	// Prober performs the read-only filesystem checks.
	Prober = probe.Prober
	// SizeQuery is a parsed size expression.
	SizeQuery = sizequery.Query
)

// Error kinds returned by Service.Query; match with errors.Is.
var (
	ErrMissingDirectory  = types.ErrMissingDirectory
	ErrDirectoryNotFound = types.ErrDirectoryNotFound
	ErrUnknownFileType   = types.ErrUnknownFileType
	ErrInvalidSizeQuery  = types.ErrInvalidSizeQuery
	ErrSearchExecution   = types.ErrSearchExecution
	ErrProbe             = types.ErrProbe
)

const (
	// All is the FileType and Extension wildcard.
	All = options.All
	// DefaultSizeQuery matches all sizes and disables size filtering.
	DefaultSizeQuery = options.DefaultSizeQuery
)

// Service options.
var (
	WithGlobber  = query.WithGlobber
	WithRegistry = query.WithRegistry
	WithProber   = query.WithProber
	WithWorkers  = query.WithWorkers
	WithProgress = query.WithProgress
	WithLogger   = query.WithLogger
)

// New creates a Service. See query.New for defaults.
func New(opts ...Option) *Service { return query.New(opts...) }

// Some marks a Request field as set.
func Some[T any](v T) types.Optional[T] { return types.Some(v) }

// ParallelWalker returns a Globber that reads up to workers directories
// concurrently and returns matches sorted by path.
func ParallelWalker(workers int) Globber { return scanner.New(workers) }

// DefaultFileTypes returns the built-in file-type categories.
func DefaultFileTypes() FileTypes { return filetype.Default() }

// ParseSizeQuery parses a "<operator> <amount> <unit>" expression.
func ParseSizeQuery(expr string) (SizeQuery, error) { return sizequery.Parse(expr) }
