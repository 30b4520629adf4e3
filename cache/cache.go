package cache

import (
	"os"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"

	"github.com/mogaika/fbxbin/fbx"
)

// Cache keeps recently decoded documents so the web handlers do not
// re-parse a multi-megabyte file on every request. An entry is thrown
// away when the file size or mtime changes.
type Cache struct {
	level fbx.Level
	docs  *lru.Cache[string, *entry]
}

type entry struct {
	doc     *fbx.Document
	size    int64
	modTime time.Time
}

func NewCache(size int, level fbx.Level) (*Cache, error) {
	docs, err := lru.New[string, *entry](size)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to create lru cache")
	}
	return &Cache{level: level, docs: docs}, nil
}

// Get returns the decoded document for path, decoding it on a miss.
func (c *Cache) Get(path string) (*fbx.Document, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to stat %q", path)
	}
	if e, ok := c.docs.Get(path); ok && e.size == fi.Size() && e.modTime.Equal(fi.ModTime()) {
		return e.doc, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to open %q", path)
	}
	defer f.Close()

	doc, err := fbx.Parse(f, c.level)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to decode %q", path)
	}

	c.docs.Add(path, &entry{doc: doc, size: fi.Size(), modTime: fi.ModTime()})
	return doc, nil
}

// Len is the count of cached documents.
func (c *Cache) Len() int {
	return c.docs.Len()
}
