// Package globber enumerates filesystem paths matching a glob pattern.
package globber

import (
	"context"

	"github.com/bmatcuk/doublestar/v4"
)

// Globber returns every path matching pattern, files and directories alike.
type Globber interface {
	Glob(ctx context.Context, pattern string) ([]string, error)
}

// Doublestar is a Globber supporting "**" and "{a,b}" alternation.
// Results are in lexical walk order. "**" does not descend into symlinked
// directories, though the symlinks themselves are matched.
type Doublestar struct{}

// Glob implements Globber. Unreadable directories and malformed patterns
// are reported rather than silently skipped.
func (Doublestar) Glob(ctx context.Context, pattern string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !doublestar.ValidatePathPattern(pattern) {
		return nil, doublestar.ErrBadPattern
	}
	matches, err := doublestar.FilepathGlob(pattern,
		doublestar.WithFailOnIOErrors(),
		doublestar.WithNoFollow(),
	)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return matches, nil
}

// Func adapts a plain function to the Globber interface.
type Func func(ctx context.Context, pattern string) ([]string, error)

// Glob implements Globber.
func (f Func) Glob(ctx context.Context, pattern string) ([]string, error) {
	return f(ctx, pattern)
}
