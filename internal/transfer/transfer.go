// Package transfer serializes the site registry to and from the
// versioned JSON export document.
package transfer

import (
	"encoding/json"
	"time"

	"github.com/ryoma-abe/site-launcher/internal/registry"
	"github.com/ryoma-abe/site-launcher/internal/site"
)

// FormatVersion is the export document version. It discriminates
// future format changes; nothing branches on it yet.
const FormatVersion = 1

// Document is the export file shape.
type Document struct {
	Version    int         `json:"version"`
	ExportedAt string      `json:"exportedAt"`
	Sites      []site.Site `json:"sites"`
}

// Export renders sites as a pretty-printed UTF-8 JSON document with an
// RFC 3339 timestamp.
func Export(sites []site.Site, now time.Time) ([]byte, error) {
	doc := Document{
		Version:    FormatVersion,
		ExportedAt: now.UTC().Format(time.RFC3339),
		Sites:      sites,
	}
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, registry.NewFailure(registry.KindParseError, "could not encode export document")
	}
	return append(out, '\n'), nil
}

// Import parses text as either a bare JSON array of site records or an
// object with a "sites" array field (the export shape), sanitizes and
// deduplicates the result, and returns the replacement registry.
//
// ParseError: text is not valid JSON or cannot be coerced to an array.
// EmptyImport: zero records survived sanitization and dedup.
func Import(text []byte) ([]site.Site, error) {
	raw, err := extractSites(text)
	if err != nil {
		return nil, err
	}
	clean := registry.SanitizeList(raw)
	if len(clean) == 0 {
		return nil, registry.NewFailure(registry.KindEmptyImport, "no usable sites in import")
	}
	return clean, nil
}

func extractSites(text []byte) ([]site.Site, error) {
	var bare []json.RawMessage
	if err := json.Unmarshal(text, &bare); err == nil {
		return decodeRecords(bare), nil
	}

	var doc struct {
		Sites []json.RawMessage `json:"sites"`
	}
	if err := json.Unmarshal(text, &doc); err != nil || doc.Sites == nil {
		return nil, registry.NewFailure(registry.KindParseError, "import is not a site list or export document")
	}
	return decodeRecords(doc.Sites), nil
}

// decodeRecords decodes each element independently so one junk entry
// does not sink the rest of the import.
func decodeRecords(raws []json.RawMessage) []site.Site {
	sites := make([]site.Site, 0, len(raws))
	for _, raw := range raws {
		var s site.Site
		if err := json.Unmarshal(raw, &s); err != nil {
			continue
		}
		sites = append(sites, s)
	}
	return sites
}
