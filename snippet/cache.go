package snippet

import lru "github.com/hashicorp/golang-lru/v2"

// normalizeCache memoizes the lowercase+stem computation for repeated raw
// terms. It is only ever consulted on the no-custom-normalizer path: a
// caller-supplied Normalizer may carry sequence-dependent internal state
// (the contract it exposes Reset for), so memoizing by raw term alone would
// silently break that statefulness. Lowercasing and stemming, by contract,
// are pure functions of their input, so caching them is always safe.
type normalizeCache struct {
	cache *lru.Cache[string, string]
}

func newNormalizeCache(size int) *normalizeCache {
	c, err := lru.New[string, string](size)
	if err != nil {
		return &normalizeCache{}
	}
	return &normalizeCache{cache: c}
}

func (n *normalizeCache) getOrCompute(term string, compute func(string) string) string {
	if n == nil || n.cache == nil {
		return compute(term)
	}
	if v, ok := n.cache.Get(term); ok {
		return v
	}
	v := compute(term)
	n.cache.Add(term, v)
	return v
}

func (n *normalizeCache) purge() {
	if n != nil && n.cache != nil {
		n.cache.Purge()
	}
}
