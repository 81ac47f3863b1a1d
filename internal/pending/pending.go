// Package pending handles the transient proposed-site handoff: an
// external trigger suggests a site, and the options surface consumes
// the suggestion exactly once to prefill its form.
package pending

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ryoma-abe/site-launcher/internal/log"
	"github.com/ryoma-abe/site-launcher/internal/registry"
	"github.com/ryoma-abe/site-launcher/internal/site"
	"github.com/ryoma-abe/site-launcher/internal/store"
)

// Key is the storage key holding the proposed site.
const Key = "pendingSite"

// Proposal is a not-yet-confirmed site. All fields are optional; the
// options form fills the gaps.
type Proposal struct {
	Name         string `json:"name,omitempty"`
	URL          string `json:"url,omitempty"`
	PreferredKey string `json:"preferredKey,omitempty"`
}

// Prefill is a Proposal resolved against the current registry, ready
// to seed the add/edit form.
type Prefill struct {
	Name string
	URL  string
	Key  string
	// EditIndex is the position of the existing site with the same
	// normalized URL, or -1 when the form should add a new entry.
	EditIndex int
}

// Put stores a proposal for the options surface to pick up.
func Put(ctx context.Context, st store.Store, p Proposal) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding proposal: %w", err)
	}
	if err := st.Set(ctx, Key, raw); err != nil {
		return fmt.Errorf("storing proposal: %w", err)
	}
	log.Debug(log.CatRegistry, "Stored proposed site", "url", p.URL)
	return nil
}

// Take reads and deletes the stored proposal, so it is consumed at
// most once. Returns false when there is none.
func Take(ctx context.Context, st store.Store) (Proposal, bool) {
	raw, err := st.Get(ctx, Key)
	if err != nil {
		if err != store.ErrNotFound {
			log.ErrorErr(log.CatStore, "Failed to read proposed site", err)
		}
		return Proposal{}, false
	}
	if err := st.Delete(ctx, Key); err != nil {
		log.ErrorErr(log.CatStore, "Failed to clear proposed site", err)
	}

	var p Proposal
	if err := json.Unmarshal(raw, &p); err != nil {
		log.ErrorErr(log.CatStore, "Proposed site is malformed, dropping", err)
		return Proposal{}, false
	}
	return p, true
}

// Resolve turns a proposal into a form prefill against the current
// registry: it picks a non-conflicting shortcut key and detects whether
// the URL is already registered, flipping the form into edit mode.
func Resolve(p Proposal, sites []site.Site) Prefill {
	pre := Prefill{Name: p.Name, URL: p.URL, EditIndex: -1}

	if idx := registry.FindByURL(p.URL, sites); idx >= 0 {
		existing := sites[idx]
		pre.EditIndex = idx
		pre.Key = existing.Key
		if pre.Name == "" {
			pre.Name = existing.Name
		}
		return pre
	}

	key, err := registry.GenerateKey(sites, p.PreferredKey)
	if err != nil {
		// All 36 keys taken; leave the field blank and let validation
		// explain when the user submits.
		log.Warn(log.CatRegistry, "No free shortcut key for proposed site", "url", p.URL)
		return pre
	}
	pre.Key = key
	return pre
}
