// Package club implements the data layer of the association site: one
// synchronizer per resource kind, each translating CRUD intents into backend
// calls plus a matching cache mutation, and a Store that owns the six caches
// and loads them concurrently at startup.
package club

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"

	"clubsync/internal/api"
	"clubsync/internal/cache"
)

var validate = validator.New()

// resource describes the wire contract for one resource kind: its URL
// segment, which create verb the backend mounted, whether creates require a
// credential, and the envelope keys its endpoints wrap payloads under. This
// is the single place the backend's envelope variance is absorbed.
type resource[T cache.Keyed, In any] struct {
	name       string
	base       string
	createVerb string // "create" or "add", depending on the backend route
	createAuth bool
	listKey    string
	itemKeys   []string // tried in order; bare body is the final fallback

	// setID forces the canonical identifier when a response omits one, so a
	// cache patch never misses on an id-convention mismatch.
	setID func(rec *T, id string)
	// fill papers over response payloads missing fields the caller supplied,
	// so a sparse 2xx never corrupts the cache. Optional.
	fill func(rec *T, in In)
}

// Syncer performs the uniform operation set for one resource kind. The cache
// is mutated only after the remote call confirmed success; every error
// propagates to the caller unchanged, with no retries.
type Syncer[T cache.Keyed, In any] struct {
	client *api.Client
	cache  *cache.Cache[T]
	res    resource[T, In]
}

func newSyncer[T cache.Keyed, In any](client *api.Client, res resource[T, In]) *Syncer[T, In] {
	return &Syncer[T, In]{client: client, cache: cache.New[T](), res: res}
}

// Name returns the resource name used in logs and load reports.
func (s *Syncer[T, In]) Name() string { return s.res.name }

// All returns the cached records in cache order (most recent first for
// records created this session).
func (s *Syncer[T, In]) All() []T { return s.cache.All() }

// Cached returns the cached record with the given id, if present.
func (s *Syncer[T, In]) Cached(id string) (T, bool) { return s.cache.Get(id) }

// Len returns the number of cached records.
func (s *Syncer[T, In]) Len() int { return s.cache.Len() }

// Create validates in, posts it, and prepends the created record to the
// cache. The record is decoded from the response, not echoed from the
// request, so server-assigned fields survive.
func (s *Syncer[T, In]) Create(ctx context.Context, in In) (T, error) {
	var zero T
	if err := validate.Struct(in); err != nil {
		return zero, fmt.Errorf("invalid %s payload: %w", s.res.name, err)
	}

	raw, err := s.client.Post(ctx, "/"+s.res.base+"/"+s.res.createVerb, in, s.res.createAuth)
	if err != nil {
		return zero, err
	}

	rec, err := decodeItem[T](raw, s.res.itemKeys)
	if err != nil {
		return zero, fmt.Errorf("create %s: %w", s.res.name, err)
	}
	if s.res.fill != nil {
		s.res.fill(&rec, in)
	}
	if rec.Key() == "" {
		return zero, fmt.Errorf("%w: created %s record has no id", api.ErrMalformed, s.res.name)
	}

	s.cache.Prepend(rec)
	return rec, nil
}

// Update validates in, puts it, and patches the matching cache entry with the
// record the server returned. Identifiers are normalized before the patch; a
// patch miss is surfaced as cache.ErrNotFound, never silently tolerated.
func (s *Syncer[T, In]) Update(ctx context.Context, id string, in In) (T, error) {
	var zero T
	if err := validate.Struct(in); err != nil {
		return zero, fmt.Errorf("invalid %s payload: %w", s.res.name, err)
	}

	raw, err := s.client.Put(ctx, "/"+s.res.base+"/update/"+id, in)
	if err != nil {
		return zero, err
	}

	rec, err := decodeItem[T](raw, s.res.itemKeys)
	if err != nil {
		return zero, fmt.Errorf("update %s: %w", s.res.name, err)
	}
	if rec.Key() == "" {
		s.res.setID(&rec, id)
	}
	if s.res.fill != nil {
		s.res.fill(&rec, in)
	}

	if err := s.cache.Patch(id, rec); err != nil {
		log.Printf("update %s: cache patch missed id %s", s.res.name, id)
		return zero, err
	}
	return rec, nil
}

// Remove deletes the record remotely, then drops it from the cache. A second
// Remove for the same id fails with cache.ErrNotFound before any remote call.
func (s *Syncer[T, In]) Remove(ctx context.Context, id string) error {
	if !s.cache.Has(id) {
		return cache.ErrNotFound
	}
	if _, err := s.client.Delete(ctx, "/"+s.res.base+"/delete/"+id); err != nil {
		return err
	}
	return s.cache.Remove(id)
}

// RemoveAll deletes every record remotely and clears the cache.
func (s *Syncer[T, In]) RemoveAll(ctx context.Context) error {
	if _, err := s.client.Delete(ctx, "/"+s.res.base+"/delete/all"); err != nil {
		return err
	}
	s.cache.Clear()
	return nil
}

// GetByID reads a single record from the backend. Read-through: the cache is
// not consulted and not updated.
func (s *Syncer[T, In]) GetByID(ctx context.Context, id string) (T, error) {
	var zero T
	raw, err := s.client.Get(ctx, "/"+s.res.base+"/get/"+id)
	if err != nil {
		return zero, err
	}
	rec, err := decodeItem[T](raw, s.res.itemKeys)
	if err != nil {
		return zero, fmt.Errorf("get %s %s: %w", s.res.name, id, err)
	}
	if rec.Key() == "" {
		return zero, fmt.Errorf("%w: %s record has no id", api.ErrMalformed, s.res.name)
	}
	return rec, nil
}

// loadAll fetches the full collection and replaces the cache contents.
func (s *Syncer[T, In]) loadAll(ctx context.Context) error {
	raw, err := s.client.Get(ctx, "/"+s.res.base+"/get/all")
	if err != nil {
		return err
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("%w: %v", api.ErrMalformed, err)
	}
	body, ok := envelope[s.res.listKey]
	if !ok {
		return fmt.Errorf("%w: list key %q missing", api.ErrMalformed, s.res.listKey)
	}
	var items []T
	if err := json.Unmarshal(body, &items); err != nil {
		return fmt.Errorf("%w: %v", api.ErrMalformed, err)
	}

	s.cache.ReplaceAll(items)
	return nil
}

// decodeItem extracts a single record from a response body, trying the
// resource's known envelope keys in order and falling back to the bare body.
func decodeItem[T any](raw json.RawMessage, keys []string) (T, error) {
	var zero T

	body := raw
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		for _, k := range keys {
			if v, ok := envelope[k]; ok && string(v) != "null" {
				body = v
				break
			}
		}
	}

	var rec T
	if err := json.Unmarshal(body, &rec); err != nil {
		return zero, fmt.Errorf("%w: %v", api.ErrMalformed, err)
	}
	return rec, nil
}
