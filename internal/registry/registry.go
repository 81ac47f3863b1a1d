// Package registry holds the pure operations over an ordered collection
// of sites: sanitize, deduplicate, key generation, and the add, remove,
// replace and upsert mutations.
//
// Every function here is synchronous and side-effect free. Mutations
// take the caller's current snapshot and return a new slice; nothing is
// modified in place and nothing touches storage. Persistence is the
// sitestore service's job.
package registry

import (
	"fmt"
	"strings"

	"github.com/ryoma-abe/site-launcher/internal/site"
)

// SanitizeList maps site.Sanitize over raw, dropping entries that fail
// validation, then deduplicates by shortcut key. The first occurrence
// of a key wins; later entries with an already-seen key are silently
// dropped. The result preserves input order and never aliases raw.
func SanitizeList(raw []site.Site) []site.Site {
	out := make([]site.Site, 0, len(raw))
	seen := make(map[string]bool, len(raw))
	for _, r := range raw {
		s, err := site.Sanitize(r)
		if err != nil {
			continue
		}
		if seen[s.Key] {
			continue
		}
		seen[s.Key] = true
		out = append(out, s)
	}
	return out
}

// GenerateKey picks a shortcut key not used by any site in existing.
//
// A non-empty preferred key is upper-cased and returned as-is when it
// is legal and free. Otherwise the alphabet is scanned in fixed order,
// letters before digits, and the first free character wins. When all
// 36 keys are taken it returns ErrNoKeyAvailable.
func GenerateKey(existing []site.Site, preferred string) (string, error) {
	used := make(map[string]bool, len(existing))
	for _, s := range existing {
		used[upperKey(s.Key)] = true
	}

	if preferred != "" {
		p := upperKey(preferred)
		if site.ValidKey(p) && !used[p] {
			return p, nil
		}
	}

	for _, r := range site.Alphabet {
		k := string(r)
		if !used[k] {
			return k, nil
		}
	}
	return "", ErrNoKeyAvailable
}

// Add validates s and appends it to sites, returning the new sequence.
// The duplicate-key check runs first, against the trimmed upper-cased
// key, so a collision is reported as DuplicateKey even when the entry
// is otherwise malformed. Never partially mutates: on failure the
// input sequence is returned unchanged.
func Add(s site.Site, sites []site.Site) ([]site.Site, error) {
	key := upperKey(s.Key)
	if idx := indexOfKey(sites, key); idx >= 0 {
		return sites, NewFailure(KindDuplicateKey,
			fmt.Sprintf("shortcut key %q is already bound to %s", key, sites[idx].Name))
	}
	clean, err := site.Sanitize(s)
	if err != nil {
		return sites, NewFailure(KindInvalid, "site has an invalid name, url, or key")
	}
	out := make([]site.Site, 0, len(sites)+1)
	out = append(out, sites...)
	return append(out, clean), nil
}

// RemoveByIndex removes the element at index. An out-of-bounds index is
// a no-op returning the input unchanged; UI-driven indices come from a
// freshly rendered list, so erroring here would only punish a stale
// click.
func RemoveByIndex(index int, sites []site.Site) []site.Site {
	if index < 0 || index >= len(sites) {
		return sites
	}
	out := make([]site.Site, 0, len(sites)-1)
	out = append(out, sites[:index]...)
	return append(out, sites[index+1:]...)
}

// ReplaceAt validates s the same way Add does, but excludes the entry
// at index from the duplicate-key check so a site may keep its own key
// across an edit. Fails with DuplicateKey only when another entry holds
// the new key.
func ReplaceAt(index int, s site.Site, sites []site.Site) ([]site.Site, error) {
	if index < 0 || index >= len(sites) {
		return sites, NewFailure(KindInvalid, "no site at that position")
	}
	key := upperKey(s.Key)
	if idx := indexOfKey(sites, key); idx >= 0 && idx != index {
		return sites, NewFailure(KindDuplicateKey,
			fmt.Sprintf("shortcut key %q is already bound to %s", key, sites[idx].Name))
	}
	clean, err := site.Sanitize(s)
	if err != nil {
		return sites, NewFailure(KindInvalid, "site has an invalid name, url, or key")
	}
	out := make([]site.Site, len(sites))
	copy(out, sites)
	out[index] = clean
	return out, nil
}

// UpsertByKey validates s, then replaces the entry sharing its key in
// place (preserving position) or appends when the key is new. Used by
// the confirm-a-proposed-site flow.
func UpsertByKey(s site.Site, sites []site.Site) ([]site.Site, error) {
	clean, err := site.Sanitize(s)
	if err != nil {
		return sites, NewFailure(KindInvalid, "site has an invalid name, url, or key")
	}
	if idx := indexOfKey(sites, clean.Key); idx >= 0 {
		out := make([]site.Site, len(sites))
		copy(out, sites)
		out[idx] = clean
		return out, nil
	}
	out := make([]site.Site, 0, len(sites)+1)
	out = append(out, sites...)
	return append(out, clean), nil
}

// FindByURL returns the index of the site whose URL matches raw after
// normalization, or -1. The options surface uses this to flip a
// proposed site into edit mode instead of adding a duplicate entry.
func FindByURL(raw string, sites []site.Site) int {
	normalized, err := site.NormalizeURL(raw)
	if err != nil {
		return -1
	}
	for i, s := range sites {
		if s.URL == normalized {
			return i
		}
	}
	return -1
}

// indexOfKey returns the position of the site holding key
// (case-insensitive), or -1.
func indexOfKey(sites []site.Site, key string) int {
	for i, s := range sites {
		if site.KeysEqual(s.Key, key) {
			return i
		}
	}
	return -1
}

func upperKey(key string) string {
	return strings.ToUpper(strings.TrimSpace(key))
}
