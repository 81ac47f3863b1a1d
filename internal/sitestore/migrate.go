package sitestore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/ryoma-abe/site-launcher/internal/log"
	"github.com/ryoma-abe/site-launcher/internal/registry"
	"github.com/ryoma-abe/site-launcher/internal/site"
	"github.com/ryoma-abe/site-launcher/internal/store"
)

// MigrateLegacy imports a pre-database sites.json file into the store,
// once. The MigratedKey marker makes the step idempotent: after the
// first run (successful or not worth repeating) it never runs again.
// A registry already present in the store is never overwritten.
func (s *Service) MigrateLegacy(ctx context.Context, legacyPath string) error {
	if _, err := s.store.Get(ctx, MigratedKey); err == nil {
		return nil
	} else if err != store.ErrNotFound {
		return fmt.Errorf("checking migration marker: %w", err)
	}

	defer func() {
		if err := s.store.Set(ctx, MigratedKey, []byte("1")); err != nil {
			log.ErrorErr(log.CatStore, "Failed to record migration marker", err)
		}
	}()

	if _, err := s.store.Get(ctx, SitesKey); err == nil {
		// Store already has a registry; nothing to migrate over it.
		return nil
	}

	raw, err := os.ReadFile(legacyPath) //nolint:gosec // G304: path comes from our own data dir
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		log.ErrorErr(log.CatStore, "Failed to read legacy sites file", err, "path", legacyPath)
		return nil
	}

	var sites []site.Site
	if err := json.Unmarshal(raw, &sites); err != nil {
		log.ErrorErr(log.CatStore, "Legacy sites file is malformed, skipping", err, "path", legacyPath)
		return nil
	}

	clean := registry.SanitizeList(sites)
	if len(clean) == 0 {
		log.Warn(log.CatStore, "Legacy sites file had no usable entries", "path", legacyPath)
		return nil
	}

	if err := s.Save(ctx, clean); err != nil {
		return fmt.Errorf("saving migrated sites: %w", err)
	}
	log.Info(log.CatStore, "Migrated legacy sites file", "path", legacyPath, "count", len(clean))
	return nil
}
