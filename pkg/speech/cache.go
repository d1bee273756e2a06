package speech

import (
	"strconv"
	"sync"
)

// Key renders a (text, voice, rate) triple as the cache fingerprint. The
// pipe never appears in valid voice names and the rate is a short decimal,
// so distinct triples cannot collide.
func Key(text, voice string, rate float64) string {
	return text + "|" + voice + "|" + strconv.FormatFloat(rate, 'g', -1, 64)
}

// Cache maps fingerprints to decoded audio. Entries are never evicted: the
// catalog is small and finite, and a session dies with its process. Safe for
// concurrent use; concurrent misses on one key both fetch, and the last
// writer wins with equivalent bytes.
type Cache struct {
	m sync.Map
}

func NewCache() *Cache {
	return &Cache{}
}

func (c *Cache) Get(key string) ([]byte, bool) {
	v, ok := c.m.Load(key)
	if !ok {
		return nil, false
	}
	return v.([]byte), true
}

func (c *Cache) Put(key string, audio []byte) {
	c.m.Store(key, audio)
}

func (c *Cache) Len() int {
	n := 0
	c.m.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
