package names

import (
	"context"
	"fmt"
	"log/slog"
)

// Lookuper performs remote ASN name lookups.
// *manic.Client satisfies this interface.
type Lookuper interface {
	// ASNName returns the registered name for an ASN.
	ASNName(ctx context.Context, asn string) (string, error)
}

// Cache persists resolved names across runs.
// *database.NameDB satisfies this interface.
type Cache interface {
	// LookupName returns the cached name for an ASN and whether it was present.
	LookupName(ctx context.Context, asn string) (string, bool, error)

	// SaveName stores the resolved name for an ASN.
	SaveName(ctx context.Context, asn, name string) error
}

// Resolver maps ASNs to their registered names as known to the measurement
// API's /asns endpoint.
//
// Registered names are distinct from the configured display names: the
// configured names label report files and worksheets, while the registered
// names (e.g. ATT-INTERNET4 for AS7018) appear in the per-pair progress
// transcript. Every ASN a run touches is resolved remotely at most once;
// the persistent cache carries resolutions across runs.
type Resolver struct {
	// api performs the remote lookups.
	api Lookuper

	// cache is the optional persistent name cache. May be nil.
	cache Cache

	// memo holds names already resolved during this run.
	memo map[string]string

	// logger reports non-fatal cache problems.
	logger *slog.Logger
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithCache attaches a persistent name cache.
// Cache read and write failures are logged and ignored; the cache only
// saves remote lookups, it is never required for correctness.
func WithCache(cache Cache) ResolverOption {
	return func(r *Resolver) {
		r.cache = cache
	}
}

// WithLogger sets the logger for non-fatal cache problems.
func WithLogger(logger *slog.Logger) ResolverOption {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// NewResolver creates a Resolver backed by the given remote lookup.
func NewResolver(api Lookuper, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		api:    api,
		memo:   make(map[string]string),
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Resolve returns the registered name for an ASN.
//
// Lookup order: in-run memo, persistent cache, remote API. A remote failure
// propagates without retry; the returned error names the ASN that was being
// resolved.
func (r *Resolver) Resolve(ctx context.Context, asn string) (string, error) {
	if name, ok := r.memo[asn]; ok {
		return name, nil
	}

	if r.cache != nil {
		name, ok, err := r.cache.LookupName(ctx, asn)
		if err != nil {
			r.logger.Warn("name cache lookup failed", "asn", asn, "error", err)
		} else if ok {
			r.memo[asn] = name
			return name, nil
		}
	}

	name, err := r.api.ASNName(ctx, asn)
	if err != nil {
		return "", fmt.Errorf("failed to resolve name for ASN %s: %w", asn, err)
	}

	r.memo[asn] = name
	if r.cache != nil {
		if err := r.cache.SaveName(ctx, asn, name); err != nil {
			r.logger.Warn("name cache save failed", "asn", asn, "error", err)
		}
	}

	return name, nil
}
