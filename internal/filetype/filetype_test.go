package filetype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefaultVideoOrder tests that the video category keeps its declared order.
func TestDefaultVideoOrder(t *testing.T) {
	exts, ok := Default().Extensions("video")
	require.True(t, ok)
	require.GreaterOrEqual(t, len(exts), 3)
	assert.Equal(t, []string{"mp4", "mkv", "avi"}, exts[:3])
}

// TestExtensionsUnknown tests that an unknown category is reported as absent.
func TestExtensionsUnknown(t *testing.T) {
	exts, ok := Default().Extensions("hologram")
	assert.False(t, ok)
	assert.Nil(t, exts)
}

// TestExtensionsReturnsCopy tests that callers cannot mutate the table.
func TestExtensionsReturnsCopy(t *testing.T) {
	table := Table{"x": {"a", "b"}}
	exts, _ := table.Extensions("x")
	exts[0] = "mutated"

	again, _ := table.Extensions("x")
	assert.Equal(t, []string{"a", "b"}, again)
}

// TestDefaultEntriesHaveNoDots tests that built-in extensions are bare.
func TestDefaultEntriesHaveNoDots(t *testing.T) {
	for name, exts := range Default() {
		assert.NotEmpty(t, exts, "category %s", name)
		for _, e := range exts {
			assert.NotContains(t, e, ".", "category %s", name)
		}
	}
}

// TestMerge tests overlaying user categories onto the default table.
func TestMerge(t *testing.T) {
	base := Table{"video": {"mp4"}, "image": {"png"}}
	merged := base.Merge(map[string][]string{
		"video": {".mkv", " webm ", ""},
		"ebook": {"epub", "mobi"},
	})

	assert.Equal(t, []string{"mkv", "webm"}, merged["video"])
	assert.Equal(t, []string{"png"}, merged["image"])
	assert.Equal(t, []string{"epub", "mobi"}, merged["ebook"])
	assert.Equal(t, []string{"mp4"}, base["video"], "base must not change")
}

// TestNames tests that category names are sorted.
func TestNames(t *testing.T) {
	table := Table{"b": nil, "a": nil, "c": nil}
	assert.Equal(t, []string{"a", "b", "c"}, table.Names())
}
