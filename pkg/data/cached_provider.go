package data

import (
	"log"
	"path/filepath"
	"sync"

	"github.com/ducminhle1904/ga-solver/pkg/types"
)

// MemoryCache implements InstanceCache using in-memory storage
type MemoryCache struct {
	items  map[string][]types.Item
	cities map[string][]types.Coordinate
	mutex  sync.RWMutex
}

// NewMemoryCache creates a new in-memory cache
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		items:  make(map[string][]types.Item),
		cities: make(map[string][]types.Coordinate),
	}
}

// GetItems returns a copy of the cached items for key
func (c *MemoryCache) GetItems(key string) ([]types.Item, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	items, exists := c.items[key]
	if !exists {
		return nil, false
	}
	result := make([]types.Item, len(items))
	copy(result, items)
	return result, true
}

// SetItems stores a copy of items under key
func (c *MemoryCache) SetItems(key string, items []types.Item) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	cached := make([]types.Item, len(items))
	copy(cached, items)
	c.items[key] = cached
}

// GetCities returns a copy of the cached cities for key
func (c *MemoryCache) GetCities(key string) ([]types.Coordinate, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	cities, exists := c.cities[key]
	if !exists {
		return nil, false
	}
	result := make([]types.Coordinate, len(cities))
	copy(result, cities)
	return result, true
}

// SetCities stores a copy of cities under key
func (c *MemoryCache) SetCities(key string, cities []types.Coordinate) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	cached := make([]types.Coordinate, len(cities))
	copy(cached, cities)
	c.cities[key] = cached
}

// Clear removes all cached entries
func (c *MemoryCache) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.items = make(map[string][]types.Item)
	c.cities = make(map[string][]types.Coordinate)
}

// Size returns the number of cached entries across both kinds
func (c *MemoryCache) Size() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return len(c.items) + len(c.cities)
}

// CachedProvider wraps another InstanceProvider with caching
type CachedProvider struct {
	provider InstanceProvider
	cache    InstanceCache
}

// NewCachedProvider creates a new cached provider
func NewCachedProvider(provider InstanceProvider) *CachedProvider {
	return &CachedProvider{
		provider: provider,
		cache:    NewMemoryCache(),
	}
}

// NewCachedProviderWithCache creates a cached provider with a custom cache
func NewCachedProviderWithCache(provider InstanceProvider, cache InstanceCache) *CachedProvider {
	return &CachedProvider{
		provider: provider,
		cache:    cache,
	}
}

// GetName returns the name of the underlying provider with cache indication
func (p *CachedProvider) GetName() string {
	return "Cached " + p.provider.GetName()
}

// LoadItems loads items, consulting the cache first
func (p *CachedProvider) LoadItems(source string) ([]types.Item, error) {
	if cached, exists := p.cache.GetItems(source); exists {
		return cached, nil
	}

	log.Printf("🔄 Loading items from %s", filepath.Base(source))
	items, err := p.provider.LoadItems(source)
	if err != nil {
		log.Printf("❌ Failed to load items from %s: %v", filepath.Base(source), err)
		return nil, err
	}

	p.cache.SetItems(source, items)
	log.Printf("✅ Loaded and cached %d items from %s", len(items), filepath.Base(source))
	return items, nil
}

// LoadCities loads cities, consulting the cache first
func (p *CachedProvider) LoadCities(source string) ([]types.Coordinate, error) {
	if cached, exists := p.cache.GetCities(source); exists {
		return cached, nil
	}

	log.Printf("🔄 Loading cities from %s", filepath.Base(source))
	cities, err := p.provider.LoadCities(source)
	if err != nil {
		log.Printf("❌ Failed to load cities from %s: %v", filepath.Base(source), err)
		return nil, err
	}

	p.cache.SetCities(source, cities)
	log.Printf("✅ Loaded and cached %d cities from %s", len(cities), filepath.Base(source))
	return cities, nil
}

// GetCache returns the underlying cache
func (p *CachedProvider) GetCache() InstanceCache {
	return p.cache
}

// ClearCache clears all cached entries
func (p *CachedProvider) ClearCache() {
	p.cache.Clear()
}
