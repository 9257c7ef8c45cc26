package docxport

import (
	"container/list"
	"crypto/sha256"
	"sync"
)

// MediaCache deduplicates image part payloads across imports. Entries are
// keyed by content hash, so identical images embedded in many templates are
// held once. Safe for concurrent read and insert.
type MediaCache struct {
	mu      sync.RWMutex
	cache   map[[sha256.Size]byte]*mediaEntry
	lru     *list.List
	maxSize int
}

type mediaEntry struct {
	key     [sha256.Size]byte
	media   *Media
	element *list.Element
}

// NewMediaCache creates a media cache bounded by the global configuration.
func NewMediaCache() *MediaCache {
	config := GetGlobalConfig()
	return NewMediaCacheWithSize(config.MediaCacheMaxSize)
}

// NewMediaCacheWithSize creates a media cache holding at most maxSize
// entries. 0 disables caching.
func NewMediaCacheWithSize(maxSize int) *MediaCache {
	return &MediaCache{
		cache:   make(map[[sha256.Size]byte]*mediaEntry),
		lru:     list.New(),
		maxSize: maxSize,
	}
}

// Intern returns the cached Media for the given payload, building and
// storing it with build on first sight. Concurrent callers may race to build
// the same entry; the first stored one wins and later results are discarded.
func (mc *MediaCache) Intern(data []byte, build func() (*Media, error)) (*Media, error) {
	if mc == nil || mc.maxSize == 0 {
		return build()
	}

	key := sha256.Sum256(data)

	mc.mu.RLock()
	entry, exists := mc.cache[key]
	mc.mu.RUnlock()

	if exists {
		mc.mu.Lock()
		mc.lru.MoveToFront(entry.element)
		mc.mu.Unlock()
		return entry.media, nil
	}

	media, err := build()
	if err != nil {
		return nil, err
	}

	mc.mu.Lock()
	defer mc.mu.Unlock()

	// Another import may have inserted the entry while we were building.
	if entry, exists := mc.cache[key]; exists {
		mc.lru.MoveToFront(entry.element)
		return entry.media, nil
	}

	if mc.lru.Len() >= mc.maxSize {
		oldest := mc.lru.Back()
		if oldest != nil {
			oldEntry := oldest.Value.(*mediaEntry)
			delete(mc.cache, oldEntry.key)
			mc.lru.Remove(oldest)
		}
	}

	entry = &mediaEntry{key: key, media: media}
	entry.element = mc.lru.PushFront(entry)
	mc.cache[key] = entry

	return media, nil
}

// Size returns the current number of cached media blobs.
func (mc *MediaCache) Size() int {
	mc.mu.RLock()
	defer mc.mu.RUnlock()
	return len(mc.cache)
}

// Clear removes all cached media.
func (mc *MediaCache) Clear() {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.cache = make(map[[sha256.Size]byte]*mediaEntry)
	mc.lru = list.New()
}
