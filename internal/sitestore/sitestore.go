// Package sitestore persists the site registry to the key-value store
// and exposes the mutating operations the UI surfaces call.
package sitestore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ryoma-abe/site-launcher/internal/log"
	"github.com/ryoma-abe/site-launcher/internal/registry"
	"github.com/ryoma-abe/site-launcher/internal/site"
	"github.com/ryoma-abe/site-launcher/internal/store"
)

// Storage keys.
const (
	// SitesKey holds the registry as a JSON array of sites.
	SitesKey = "sites"
	// MigratedKey records that the one-time legacy import has run.
	MigratedKey = "migrated"
)

// DefaultSites returns the built-in starting registry. Load falls back
// to it whenever storage yields nothing usable, so the UI always has a
// non-empty state.
func DefaultSites() []site.Site {
	return []site.Site{
		{Name: "Google", URL: "https://www.google.com", Key: "G"},
	}
}

// Service loads and saves site registry snapshots.
//
// Mutations follow a read-modify-write pattern against the snapshot the
// caller already holds, not a fresh read; two surfaces saving
// concurrently race and the later save wins. That is accepted for a
// single-user tool.
type Service struct {
	store store.Store
}

// NewService creates a Service over the given store.
func NewService(st store.Store) *Service {
	return &Service{store: st}
}

// Load reads the registry from storage. It never fails: a missing key,
// malformed JSON, a storage error, or a list that sanitizes down to
// nothing all log and fall back to DefaultSites.
func (s *Service) Load(ctx context.Context) []site.Site {
	raw, err := s.store.Get(ctx, SitesKey)
	if err != nil {
		if err != store.ErrNotFound {
			log.ErrorErr(log.CatStore, "Load failed, using defaults", err)
		}
		return DefaultSites()
	}

	var sites []site.Site
	if err := json.Unmarshal(raw, &sites); err != nil {
		log.ErrorErr(log.CatStore, "Stored registry is malformed, using defaults", err)
		return DefaultSites()
	}

	clean := registry.SanitizeList(sites)
	if len(clean) == 0 {
		log.Warn(log.CatStore, "Stored registry sanitized to empty, using defaults")
		return DefaultSites()
	}
	return clean
}

// Save writes the ordered sequence verbatim under SitesKey. A failure
// is surfaced as StorageUnavailable but does not roll back the
// caller's in-memory sequence; a later reload would reveal the miss.
func (s *Service) Save(ctx context.Context, sites []site.Site) error {
	raw, err := json.Marshal(sites)
	if err != nil {
		// []site.Site always marshals; this guards future field types.
		return registry.NewFailure(registry.KindStorageUnavailable, fmt.Sprintf("encoding registry: %v", err))
	}
	if err := s.store.Set(ctx, SitesKey, raw); err != nil {
		log.ErrorErr(log.CatStore, "Save failed", err, "count", len(sites))
		return registry.NewFailure(registry.KindStorageUnavailable, "could not save sites")
	}
	log.Debug(log.CatRegistry, "Saved registry", "count", len(sites))
	return nil
}

// Add appends a validated site to the caller's snapshot and persists.
// On an engine failure the input snapshot is returned unchanged. On a
// save failure the updated snapshot is still returned alongside the
// error, so the UI can show the attempted mutation.
func (s *Service) Add(ctx context.Context, newSite site.Site, sites []site.Site) ([]site.Site, error) {
	updated, err := registry.Add(newSite, sites)
	if err != nil {
		return sites, err
	}
	return updated, s.Save(ctx, updated)
}

// RemoveByIndex removes the element at index and persists. An
// out-of-bounds index is a no-op and skips the save.
func (s *Service) RemoveByIndex(ctx context.Context, index int, sites []site.Site) ([]site.Site, error) {
	updated := registry.RemoveByIndex(index, sites)
	if len(updated) == len(sites) {
		return sites, nil
	}
	return updated, s.Save(ctx, updated)
}

// ReplaceAt swaps the site at index for a validated replacement and
// persists. The replaced entry may keep its own key.
func (s *Service) ReplaceAt(ctx context.Context, index int, newSite site.Site, sites []site.Site) ([]site.Site, error) {
	updated, err := registry.ReplaceAt(index, newSite, sites)
	if err != nil {
		return sites, err
	}
	return updated, s.Save(ctx, updated)
}

// UpsertByKey replaces the entry sharing the site's key, or appends,
// then persists. Used when confirming a proposed site.
func (s *Service) UpsertByKey(ctx context.Context, newSite site.Site, sites []site.Site) ([]site.Site, error) {
	updated, err := registry.UpsertByKey(newSite, sites)
	if err != nil {
		return sites, err
	}
	return updated, s.Save(ctx, updated)
}

// Replace overwrites the whole registry with sites and persists.
// The import flow uses this; it is a full overwrite, not a merge.
func (s *Service) Replace(ctx context.Context, sites []site.Site) ([]site.Site, error) {
	return sites, s.Save(ctx, sites)
}
