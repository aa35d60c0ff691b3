// package media is a read-through cache for avatar thumbnails.
package media

import (
	"bytes"
	"context"
	"crypto/sha1"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/carlmjohnson/requests"
	"github.com/nfnt/resize"

	"github.com/nomavan/nomavan/store"
)

// Cache downloads avatars, scales them to thumbnail size, and keeps
// the results on disk keyed by the hash of the source URL. The index
// may be nil, in which case every call fetches.
type Cache struct {
	dir   string
	size  uint
	index *store.Avatars
}

func NewCache(dir string, size uint, index *store.Avatars) *Cache {
	return &Cache{dir: dir, size: size, index: index}
}

// Thumbnail returns the path of a cached thumbnail for the avatar at
// rawURL, fetching and resizing it on a miss. Scheme-relative
// gravatar URLs are accepted.
func (c *Cache) Thumbnail(ctx context.Context, rawURL string) (string, error) {
	url := absolute(rawURL)
	hash := urlHash(url)

	if c.index != nil {
		if hit, err := c.index.Lookup(hash); err == nil && hit != nil {
			if _, err := os.Stat(hit.Path); err == nil {
				return hit.Path, nil
			}
		}
	}

	var buf bytes.Buffer
	if err := requests.URL(url).ToBytesBuffer(&buf).Fetch(ctx); err != nil {
		return "", fmt.Errorf("failed to fetch avatar: %w", err)
	}
	img, _, err := image.Decode(&buf)
	if err != nil {
		return "", fmt.Errorf("failed to decode avatar: %w", err)
	}
	thumb := resize.Resize(c.size, 0, img, resize.Lanczos3)

	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(c.dir, hash+".png")
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if err := png.Encode(f, thumb); err != nil {
		return "", err
	}

	if c.index != nil {
		if err := c.index.Put(hash, url, path); err != nil {
			return "", err
		}
	}
	return path, nil
}

// absolute fixes the scheme-relative avatar URLs the backend emits.
func absolute(url string) string {
	if strings.HasPrefix(url, "//") {
		return "https:" + url
	}
	return url
}

func urlHash(url string) string {
	h := sha1.New()
	io.WriteString(h, url)
	return fmt.Sprintf("%x", h.Sum(nil))
}
