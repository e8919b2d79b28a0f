package cache

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/callscope-dev/callscope/internal/callgraph"
)

func cacheWithToken(t *testing.T, token int64) (*Cache, *MemStore, *int64) {
	t.Helper()
	store := NewMemStore()
	current := token
	c := New(t.TempDir(),
		WithStore(store),
		WithTokenFunc(func() int64 { return current }),
	)
	return c, store, &current
}

func TestCallGraphRoundTrip(t *testing.T) {
	c, _, _ := cacheWithToken(t, 100)
	g := callgraph.FromEdges(map[string][]string{"a": {"b", "c"}, "b": {"d"}})

	require.NoError(t, c.SaveCallGraph(g))

	loaded := c.LoadCallGraph()
	require.NotNil(t, loaded)
	assert.True(t, g.Equal(loaded))
}

func TestStaleTokenReturnsAbsent(t *testing.T) {
	c, _, current := cacheWithToken(t, 100)
	require.NoError(t, c.SaveCallGraph(callgraph.FromEdges(map[string][]string{"a": {"b"}})))

	*current = 200
	assert.Nil(t, c.LoadCallGraph(), "token mismatch must read as no cache")

	*current = 100
	assert.NotNil(t, c.LoadCallGraph(), "original token is fresh again")
}

func TestEmptyStoreReturnsAbsent(t *testing.T) {
	c, _, _ := cacheWithToken(t, 0)
	assert.Nil(t, c.LoadCallGraph())
}

func TestMissingPayloadReturnsAbsent(t *testing.T) {
	c, store, _ := cacheWithToken(t, 100)
	require.NoError(t, c.SaveCallGraph(callgraph.FromEdges(map[string][]string{"a": {"b"}})))

	delete(store.records, "callgraph.json")
	assert.Nil(t, c.LoadCallGraph())
}

func TestCorruptMetadataReturnsAbsent(t *testing.T) {
	c, store, _ := cacheWithToken(t, 100)
	require.NoError(t, c.SaveCallGraph(callgraph.FromEdges(map[string][]string{"a": {"b"}})))

	store.records["callgraph.meta.json"] = []byte("not json")
	assert.Nil(t, c.LoadCallGraph())
}

func TestResultsRoundTrip(t *testing.T) {
	c, _, current := cacheWithToken(t, 7)
	require.NoError(t, c.SaveResults(map[string][]string{"symbols": {"foo", "bar"}}))

	var results map[string][]string
	require.True(t, c.LoadResults(&results))
	assert.Equal(t, []string{"foo", "bar"}, results["symbols"])

	*current = 8
	assert.False(t, c.LoadResults(&results))
}

func TestKeyFormat(t *testing.T) {
	c, _, _ := cacheWithToken(t, 42)

	fingerprint, token, found := strings.Cut(c.Key(), ":")
	require.True(t, found)
	assert.Len(t, fingerprint, 16)
	assert.Equal(t, "42", token)
}

func TestFingerprint(t *testing.T) {
	assert.Equal(t, Fingerprint("/some/path"), Fingerprint("/some/path"))
	assert.NotEqual(t, Fingerprint("/path/a"), Fingerprint("/path/b"))

	fp := Fingerprint("/some/path")
	assert.Len(t, fp, 16)
	for _, r := range fp {
		assert.Contains(t, "0123456789abcdef", string(r))
	}
}

func TestFileStoreNamespace(t *testing.T) {
	project := t.TempDir()
	store := NewFileStore(project)

	assert.Equal(t, filepath.Join(project, ".cache", "callscope"), store.Dir())

	require.NoError(t, store.Put("callgraph.json", []byte(`{}`)))
	data, ok := store.Get("callgraph.json")
	require.True(t, ok)
	assert.Equal(t, `{}`, string(data))

	_, ok = store.Get("missing.json")
	assert.False(t, ok)
}
