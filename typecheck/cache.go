package typecheck

import (
	"github.com/amp-labs/typecheck/lazy"
	"go.uber.org/atomic"
)

// signatureCache holds the signature resolved for one registry generation.
// When the generation moves on, the next caller installs a fresh entry.
// Racing callers may resolve twice; resolution is pure, so either result
// is fine.
type signatureCache struct {
	current atomic.Pointer[cacheEntry]
}

type cacheEntry struct {
	generation uint64
	signature  *lazy.OfErr[Signature]
}

// get returns the signature for generation, calling resolve if this
// generation has not been resolved yet. The bool reports a cache hit.
func (c *signatureCache) get(generation uint64, resolve func() (Signature, error)) (Signature, bool, error) {
	entry := c.current.Load()

	if entry == nil || entry.generation != generation {
		fresh := &cacheEntry{
			generation: generation,
			signature:  lazy.NewErr(resolve),
		}

		if c.current.CompareAndSwap(entry, fresh) {
			entry = fresh
		} else if latest := c.current.Load(); latest != nil && latest.generation == generation {
			entry = latest
		} else {
			entry = fresh
		}
	}

	hit := entry.signature.Initialized()

	sig, err := entry.signature.Get()

	return sig, hit, err
}
