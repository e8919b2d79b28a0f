package cache

import (
	"encoding/json"
	"strconv"

	"github.com/callscope-dev/callscope/internal/callgraph"
	"github.com/callscope-dev/callscope/internal/index"
)

const (
	graphPayload   = "callgraph.json"
	graphMeta      = "callgraph.meta.json"
	resultsPayload = "results.json"
	resultsMeta    = "results.meta.json"
)

// TokenFunc supplies the current freshness token.
type TokenFunc func() int64

type metadata struct {
	Key string `json:"key"`
}

// Cache validates stored payloads against a fingerprint+freshness key.
// A stored record whose key no longer matches is treated exactly like a
// missing one; staleness is the only invalidation rule.
type Cache struct {
	fingerprint string
	store       Store
	token       TokenFunc
}

// Option configures a Cache.
type Option func(*Cache)

// WithStore replaces the backing store.
func WithStore(s Store) Option {
	return func(c *Cache) { c.store = s }
}

// WithTokenFunc replaces the freshness token source.
func WithTokenFunc(f TokenFunc) Option {
	return func(c *Cache) { c.token = f }
}

// New creates a cache for a project. By default records live under the
// project's file store and the token is the GTAGS artifact mtime.
func New(projectDir string, opts ...Option) *Cache {
	c := &Cache{
		fingerprint: Fingerprint(projectDir),
		store:       NewFileStore(projectDir),
		token:       index.New(projectDir).FreshnessToken,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Key returns the current "<fingerprint>:<token>" cache key.
func (c *Cache) Key() string {
	return c.fingerprint + ":" + strconv.FormatInt(c.token(), 10)
}

// SaveCallGraph persists the graph payload and its metadata record.
// Writes are best-effort sequential; there is no atomicity guarantee.
func (c *Cache) SaveCallGraph(g *callgraph.Graph) error {
	return c.save(graphPayload, graphMeta, g)
}

// LoadCallGraph returns the cached graph, or nil when no record exists or
// the stored key is stale.
func (c *Cache) LoadCallGraph() *callgraph.Graph {
	var g callgraph.Graph
	if !c.load(graphPayload, graphMeta, &g) {
		return nil
	}
	return &g
}

// SaveResults persists an arbitrary analysis payload under the results
// namespace with the same key discipline as the graph.
func (c *Cache) SaveResults(v any) error {
	return c.save(resultsPayload, resultsMeta, v)
}

// LoadResults decodes the cached results payload into v, reporting whether
// a fresh record existed.
func (c *Cache) LoadResults(v any) bool {
	return c.load(resultsPayload, resultsMeta, v)
}

func (c *Cache) save(payloadName, metaName string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	meta, err := json.Marshal(metadata{Key: c.Key()})
	if err != nil {
		return err
	}
	if err := c.store.Put(payloadName, payload); err != nil {
		return err
	}
	return c.store.Put(metaName, meta)
}

func (c *Cache) load(payloadName, metaName string, v any) bool {
	metaData, ok := c.store.Get(metaName)
	if !ok {
		return false
	}
	var meta metadata
	if err := json.Unmarshal(metaData, &meta); err != nil {
		return false
	}
	if meta.Key != c.Key() {
		return false
	}
	payload, ok := c.store.Get(payloadName)
	if !ok {
		return false
	}
	return json.Unmarshal(payload, v) == nil
}
