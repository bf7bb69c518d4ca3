package testfs

import (
	"path/filepath"
	"testing"
)

// Harness owns a FileTree sown into t.TempDir().
type Harness struct {
	t    *testing.T
	root string
}

// New creates the tree in a fresh temporary directory. The directory is
// removed by the testing framework.
func New(t *testing.T, given FileTree) *Harness {
	t.Helper()

	h := &Harness{t: t, root: t.TempDir()}
	if err := SowFileTree(h.root, given); err != nil {
		t.Fatalf("failed to setup files: %v", err)
	}
	return h
}

// Root returns the tree root without a trailing separator.
func (h *Harness) Root() string {
	return h.root
}

// Path returns the absolute path of rel.
func (h *Harness) Path(rel string) string {
	return filepath.Join(h.root, rel)
}

// Paths returns the absolute paths of rels, in order.
func (h *Harness) Paths(rels ...string) []string {
	out := make([]string, len(rels))
	for i, rel := range rels {
		out[i] = h.Path(rel)
	}
	return out
}
