package cssns

import (
	"fmt"

	"github.com/hashicorp/golang-lru/v2"
)

// WithCache memoizes up to size rewritten class strings. Components
// rendering the same markup repeatedly hit the cache instead of
// re-splitting and re-matching. A size of zero or less disables caching.
func WithCache(size int) Option {
	return func(n *Namespacer) error {
		if size <= 0 {
			n.cache = nil
			return nil
		}
		cache, err := lru.New[string, string](size)
		if err != nil {
			return fmt.Errorf("failed to create class cache: %w", err)
		}
		n.cache = cache
		return nil
	}
}

// CacheLen returns the number of memoized class strings.
func (n *Namespacer) CacheLen() int {
	if n.cache == nil {
		return 0
	}
	return n.cache.Len()
}
