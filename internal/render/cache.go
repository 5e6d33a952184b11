package render

import (
	"crypto/sha256"
	"errors"
	bolt "go.etcd.io/bbolt"
	"os"
	"path/filepath"
	"time"
)

// Bucket name carries the renderer configuration generation. Changing
// the goldmark setup in a way that alters output means bumping this, so
// stale entries are simply never read again.
var bRender = []byte("render_v1") // sha256(src) -> html

// Cache is a persistent body-to-HTML cache. Keys are content hashes, so
// an unchanged body skips markdown rendering across rebuilds and across
// process restarts.
type Cache struct {
	db *bolt.DB
}

func OpenCache(path string) (*Cache, error) {
	if path == "" {
		return nil, errors.New("render: missing cache path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{
		Timeout: 1 * time.Second,
	})
	if err != nil {
		return nil, err
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bRender)
		return err
	}); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Cache{db: db}, nil
}

func (c *Cache) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}

func (c *Cache) get(key []byte) ([]byte, bool) {
	var out []byte
	_ = c.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bRender)
		if b == nil {
			return nil
		}
		if v := b.Get(key); v != nil {
			// bolt 返回的切片只在事务内有效，必须拷贝
			out = append([]byte(nil), v...)
		}
		return nil
	})
	return out, out != nil
}

func (c *Cache) put(key, html []byte) error {
	return c.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bRender)
		if err != nil {
			return err
		}
		return b.Put(key, html)
	})
}

// CachedRenderer wraps another Renderer with the cache. Because the
// inner renderer is deterministic, serving a stored result is
// indistinguishable from rendering again.
type CachedRenderer struct {
	inner Renderer
	cache *Cache
}

func NewCachedRenderer(inner Renderer, cache *Cache) *CachedRenderer {
	return &CachedRenderer{inner: inner, cache: cache}
}

func (r *CachedRenderer) Render(src []byte) ([]byte, error) {
	key := renderKey(src)
	if html, ok := r.cache.get(key); ok {
		return html, nil
	}
	html, err := r.inner.Render(src)
	if err != nil {
		return nil, err
	}
	if err := r.cache.put(key, html); err != nil {
		return nil, err
	}
	return html, nil
}

func renderKey(src []byte) []byte {
	sum := sha256.Sum256(src)
	return sum[:]
}
