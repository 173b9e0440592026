package profile

import (
	"time"

	"github.com/Zachkp/portfolio/internal/locale"
	gocache "github.com/patrickmn/go-cache"
)

// CachedComposer memoizes composition per locale. Every call hands out a
// fresh deep copy, so callers observe the same behavior as Composer.
type CachedComposer struct {
	inner ProfileComposer
	ttl   time.Duration
	c     *gocache.Cache
}

func NewCachedComposer(inner ProfileComposer, ttl time.Duration) *CachedComposer {
	return &CachedComposer{
		inner: inner,
		ttl:   ttl,
		c:     gocache.New(ttl, time.Minute),
	}
}

func (cc *CachedComposer) Compose(code string) (*ComposedProfile, error) {
	l, err := locale.Parse(code)
	if err != nil {
		return nil, err
	}
	if v, ok := cc.c.Get(l.String()); ok {
		if p, ok := v.(*ComposedProfile); ok {
			return p.Clone(), nil
		}
	}

	p, err := cc.inner.Compose(l.String())
	if err != nil {
		return nil, err
	}
	cc.c.Set(l.String(), p.Clone(), cc.ttl)
	return p, nil
}

// Flush drops every memoized profile.
func (cc *CachedComposer) Flush() { cc.c.Flush() }
