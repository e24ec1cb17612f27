package cache

import (
	"context"

	"github.com/rs/zerolog/log"
)

// Invalidator clears cache namespaces after mutating operations.
//
// Invalidation is best-effort: it runs after the store mutation committed,
// and a failure here must never roll back or fail the surrounding request.
// Stale entries self-heal through the TTL.
type Invalidator struct {
	cache Cache
}

func NewInvalidator(cache Cache) *Invalidator {
	return &Invalidator{cache: cache}
}

// ClearNamespace drops every entry under the given namespace.
// Clearing a namespace with no entries is a no-op, not an error.
func (i *Invalidator) ClearNamespace(ctx context.Context, namespace string) {
	if err := i.cache.DeletePattern(ctx, namespace+":*"); err != nil {
		log.Warn().
			Err(err).
			Str("namespace", namespace).
			Msg("Cache invalidation failed")
	}
}

// ClearNamespaces clears several namespaces in order.
func (i *Invalidator) ClearNamespaces(ctx context.Context, namespaces ...string) {
	for _, ns := range namespaces {
		i.ClearNamespace(ctx, ns)
	}
}
