package keyhaven

import (
	"sync"
	"time"
)

type cacheKey struct {
	projectID   string
	environment string
}

type cacheEntry struct {
	secrets   []SecretWithValue
	expiresAt time.Time
}

// exportCache holds exported secret lists keyed by the exact
// (project, environment) pair. Entries expire by wall-clock comparison at
// read time; there is no background eviction.
type exportCache struct {
	mu   sync.RWMutex
	data map[cacheKey]cacheEntry
}

func newExportCache() *exportCache {
	return &exportCache{data: make(map[cacheKey]cacheEntry)}
}

// get returns a cached export if present and not expired at now. Expired
// entries are removed and reported as misses.
func (c *exportCache) get(projectID, environment string, now time.Time) ([]SecretWithValue, bool) {
	key := cacheKey{projectID, environment}

	c.mu.RLock()
	entry, ok := c.data[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if now.After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.data, key)
		c.mu.Unlock()
		return nil, false
	}
	return entry.secrets, true
}

// put inserts or overwrites the entry for the pair.
func (c *exportCache) put(projectID, environment string, secrets []SecretWithValue, expiresAt time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[cacheKey{projectID, environment}] = cacheEntry{
		secrets:   secrets,
		expiresAt: expiresAt,
	}
}

// invalidate removes exactly one (project, environment) entry.
func (c *exportCache) invalidate(projectID, environment string) {
	c.mu.Lock()
	delete(c.data, cacheKey{projectID, environment})
	c.mu.Unlock()
}

// invalidateProject removes every entry whose project component matches.
func (c *exportCache) invalidateProject(projectID string) {
	c.mu.Lock()
	for key := range c.data {
		if key.projectID == projectID {
			delete(c.data, key)
		}
	}
	c.mu.Unlock()
}

// clear empties the cache.
func (c *exportCache) clear() {
	c.mu.Lock()
	c.data = make(map[cacheKey]cacheEntry)
	c.mu.Unlock()
}

// ClearCache removes every cached export.
func (c *Client) ClearCache() {
	c.cache.clear()
}

// ClearProjectCache removes cached exports for every environment of the
// given project, leaving other projects intact.
func (c *Client) ClearProjectCache(projectID string) {
	c.cache.invalidateProject(projectID)
}

// ClearEnvironmentCache removes exactly the cached export for the given
// (project, environment) pair.
func (c *Client) ClearEnvironmentCache(projectID, environment string) {
	c.cache.invalidate(projectID, environment)
}
