//go:build unix

package globber

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, nil, 0o644))
}

func setupTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	touch(t, filepath.Join(root, "a.mp4"))
	touch(t, filepath.Join(root, "b.txt"))
	touch(t, filepath.Join(root, "sub", "c.mkv"))
	touch(t, filepath.Join(root, "sub", "deep", "d.mp4"))
	return root
}

// TestGlobFlat tests that "*" lists direct children including directories.
func TestGlobFlat(t *testing.T) {
	root := setupTree(t)

	got, err := Doublestar{}.Glob(context.Background(), root+"/*")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(root, "a.mp4"),
		filepath.Join(root, "b.txt"),
		filepath.Join(root, "sub"),
	}, got)
}

// TestGlobRecursiveBraces tests "**" combined with brace alternation.
func TestGlobRecursiveBraces(t *testing.T) {
	root := setupTree(t)

	got, err := Doublestar{}.Glob(context.Background(), root+"/**/*.{mp4,mkv}")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(root, "a.mp4"),
		filepath.Join(root, "sub", "c.mkv"),
		filepath.Join(root, "sub", "deep", "d.mp4"),
	}, got)
}

// TestGlobNoMatches tests that an empty result is not an error.
func TestGlobNoMatches(t *testing.T) {
	root := setupTree(t)

	got, err := Doublestar{}.Glob(context.Background(), root+"/*.avi")
	require.NoError(t, err)
	assert.Empty(t, got)
}

// TestGlobBadPattern tests that malformed patterns are reported.
func TestGlobBadPattern(t *testing.T) {
	root := setupTree(t)

	_, err := Doublestar{}.Glob(context.Background(), root+"/*.{mp4")
	require.ErrorIs(t, err, doublestar.ErrBadPattern)
}

// TestGlobCanceled tests that a canceled context stops the search.
func TestGlobCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Doublestar{}.Glob(ctx, t.TempDir()+"/*")
	require.ErrorIs(t, err, context.Canceled)
}

// TestFunc tests the function adapter.
func TestFunc(t *testing.T) {
	var seen string
	g := Func(func(_ context.Context, pattern string) ([]string, error) {
		seen = pattern
		return []string{"x"}, nil
	})

	got, err := g.Glob(context.Background(), "/p/*")
	require.NoError(t, err)
	assert.Equal(t, "/p/*", seen)
	assert.Equal(t, []string{"x"}, got)
}
