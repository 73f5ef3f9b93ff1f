package export

import (
	"container/list"
	"sync"
)

// documentCache is an LRU cache for assembled documents, keyed by content
// hash and render mode. Re-assembling a large unchanged document on every
// viewport refresh is pure waste; the engine itself stays cache-free, so
// this is the only memoization in the pipeline.
type documentCache struct {
	mu      sync.Mutex
	maxSize int
	entries map[string]*list.Element
	lru     *list.List
}

type cacheEntry struct {
	key  string
	html string
}

func newDocumentCache(maxSize int) *documentCache {
	if maxSize <= 0 {
		maxSize = 16
	}
	return &documentCache{
		maxSize: maxSize,
		entries: make(map[string]*list.Element),
		lru:     list.New(),
	}
}

func (c *documentCache) get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.entries[key]
	if !ok {
		return "", false
	}
	c.lru.MoveToFront(elem)
	return elem.Value.(*cacheEntry).html, true
}

func (c *documentCache) put(key, html string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[key]; ok {
		c.lru.MoveToFront(elem)
		elem.Value.(*cacheEntry).html = html
		return
	}

	if c.lru.Len() >= c.maxSize {
		if oldest := c.lru.Back(); oldest != nil {
			delete(c.entries, oldest.Value.(*cacheEntry).key)
			c.lru.Remove(oldest)
		}
	}

	c.entries[key] = c.lru.PushFront(&cacheEntry{key: key, html: html})
}

func (c *documentCache) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
