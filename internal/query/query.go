// Package query runs a file query: normalize the request, build a glob
// pattern, enumerate matches, then filter and shape the results.
//
// # Pipeline
//
//	Query(ctx, req)
//	    │
//	    ├──► options.Normalize      fail fast, no I/O beyond the directory check
//	    ├──► sizequery.Parse        malformed expressions fail before traversal
//	    ├──► pattern.Build          unknown file types fail before traversal
//	    ├──► Globber.Glob           errors wrapped as ErrSearchExecution
//	    ├──► folder filter          only when ReturnFolders is false
//	    ├──► size filter            only when the size query is not the default
//	    └──► strip base directory   only when IncludeBaseDirectoryOnReturn is false
//
// Both filters run through filter.Filter, so output order is always the
// order the globber produced. The base directory is stripped last so that
// size probes see full paths.
package query

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ivoronin/filequery/internal/filetype"
	"github.com/ivoronin/filequery/internal/filter"
	"github.com/ivoronin/filequery/internal/globber"
	"github.com/ivoronin/filequery/internal/options"
	"github.com/ivoronin/filequery/internal/pattern"
	"github.com/ivoronin/filequery/internal/probe"
	"github.com/ivoronin/filequery/internal/sizequery"
	"github.com/ivoronin/filequery/internal/types"
)

// Service executes queries. It is immutable after New and safe for
// concurrent use.
type Service struct {
	globber      globber.Globber
	registry     filetype.Registry
	prober       probe.Prober
	workers      int
	showProgress bool
	log          logrus.FieldLogger
}

// Option configures a Service.
type Option func(*Service)

// WithGlobber sets the traversal backend.
func WithGlobber(g globber.Globber) Option {
	return func(s *Service) { s.globber = g }
}

// WithRegistry sets the file-type registry.
func WithRegistry(r filetype.Registry) Option {
	return func(s *Service) { s.registry = r }
}

// WithProber sets the filesystem probe.
func WithProber(p probe.Prober) Option {
	return func(s *Service) { s.prober = p }
}

// WithWorkers sets the number of concurrent probes per filter stage.
func WithWorkers(n int) Option {
	return func(s *Service) { s.workers = n }
}

// WithProgress enables a progress bar on stderr for the filter stages.
func WithProgress(enabled bool) Option {
	return func(s *Service) { s.showProgress = enabled }
}

// WithLogger sets the logger. Pipeline details are logged at debug level.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Service) { s.log = l }
}

// New creates a Service. Without options it globs with doublestar, probes
// the real filesystem, uses the built-in file types, runs one probe worker
// per CPU and logs nothing.
func New(opts ...Option) *Service {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	s := &Service{
		globber:  globber.Doublestar{},
		registry: filetype.Default(),
		prober:   probe.OS{},
		workers:  runtime.NumCPU(),
		log:      discard,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Query returns the paths matching req in traversal order.
func (s *Service) Query(ctx context.Context, req options.Request) ([]string, error) {
	req, err := options.Normalize(req, s.prober)
	if err != nil {
		return nil, err
	}

	sizeQuery, err := sizequery.Parse(req.SizeQuery.Value())
	if err != nil {
		return nil, err
	}

	searchPattern, err := pattern.Build(req, s.registry)
	if err != nil {
		return nil, err
	}

	log := s.log.WithFields(logrus.Fields{
		"directory": req.Directory.Value(),
		"pattern":   searchPattern,
	})
	log.Debug("searching")

	paths, err := s.globber.Glob(ctx, searchPattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", types.ErrSearchExecution, searchPattern, err)
	}
	log.WithField("matches", len(paths)).Debug("search complete")

	if !req.ReturnFolders.Value() {
		paths, err = filter.New("folders", s.workers, s.showProgress).Run(ctx, paths, s.isFile)
		if err != nil {
			return nil, s.filterError(err)
		}
		log.WithField("files", len(paths)).Debug("folders removed")
	}

	if !sizeQuery.IsDefault() {
		paths, err = filter.New("size", s.workers, s.showProgress).Run(ctx, paths, s.sizeMatcher(sizeQuery))
		if err != nil {
			return nil, s.filterError(err)
		}
		log.WithFields(logrus.Fields{
			"size":    sizeQuery.Describe(),
			"matches": len(paths),
		}).Debug("size filter applied")
	}

	if !req.IncludeBaseDirectoryOnReturn.Value() {
		paths = stripPrefix(paths, req.Directory.Value())
	}

	return paths, nil
}

// isFile keeps everything that is not itself a directory. Symlinks to
// directories are kept.
func (s *Service) isFile(path string) (bool, error) {
	isDir, err := s.prober.IsDir(path)
	if err != nil {
		return vanished(err)
	}
	return !isDir, nil
}

func (s *Service) sizeMatcher(q sizequery.Query) filter.Predicate {
	return func(path string) (bool, error) {
		ok, err := sizequery.Evaluate(path, q, s.prober)
		if err != nil {
			return vanished(err)
		}
		return ok, nil
	}
}

// vanished drops paths removed between listing and probing; any other
// probe failure aborts the query.
func vanished(err error) (bool, error) {
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

func (s *Service) filterError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("%w: %w", types.ErrProbe, err)
}

// stripPrefix removes dir from the front of every path. Globbers may clean
// the pattern ("./data/" becomes "data/"), so the cleaned form is tried too.
func stripPrefix(paths []string, dir string) []string {
	cleaned := filepath.Clean(dir)
	if !strings.HasSuffix(cleaned, "/") {
		cleaned += "/"
	}

	out := make([]string, len(paths))
	for i, p := range paths {
		switch {
		case strings.HasPrefix(p, dir):
			out[i] = p[len(dir):]
		case strings.HasPrefix(p, cleaned):
			out[i] = p[len(cleaned):]
		default:
			out[i] = p
		}
	}
	return out
}
