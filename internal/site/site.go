// Package site defines the Site value object and its validation rules.
package site

import (
	"errors"
	"net/url"
	"strings"
	"unicode/utf8"
)

// MaxNameLength is the longest allowed site name, in runes.
const MaxNameLength = 50

// Alphabet is the set of legal shortcut keys, in key-generation scan
// order: letters before digits.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// ErrInvalid is returned when a record fails Site validation.
var ErrInvalid = errors.New("invalid site")

// Site binds a single-character shortcut key to a URL.
//
// A sanitized Site always has a trimmed non-empty name, an absolute
// http/https URL, and an upper-case key drawn from Alphabet.
type Site struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Key  string `json:"key"`
}

// Sanitize validates and normalizes an untrusted record into a Site.
//
// The name is trimmed and must be 1..MaxNameLength runes. The key is
// trimmed, upper-cased, and must be a single character from Alphabet.
// A scheme-less URL is prefixed with "https://" before parsing; only
// well-formed absolute http/https URLs with a host are accepted.
//
// Sanitize is idempotent: re-sanitizing its own output yields an
// identical Site.
func Sanitize(raw Site) (Site, error) {
	name := strings.TrimSpace(raw.Name)
	if name == "" || utf8.RuneCountInString(name) > MaxNameLength {
		return Site{}, ErrInvalid
	}

	key := strings.ToUpper(strings.TrimSpace(raw.Key))
	if !ValidKey(key) {
		return Site{}, ErrInvalid
	}

	normalized, err := NormalizeURL(raw.URL)
	if err != nil {
		return Site{}, ErrInvalid
	}

	return Site{Name: name, URL: normalized, Key: key}, nil
}

// ValidKey reports whether key is exactly one character from Alphabet.
// The check is case-sensitive; callers upper-case first.
func ValidKey(key string) bool {
	return len(key) == 1 && strings.ContainsAny(key, Alphabet)
}

// NormalizeURL coerces raw into an absolute http/https URL.
// Inputs without an explicit scheme get "https://" prepended.
func NormalizeURL(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", ErrInvalid
	}
	if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
		// Reject inputs carrying some other scheme (ftp://, file://)
		// instead of silently stacking https:// in front of them.
		if strings.Contains(s, "://") {
			return "", ErrInvalid
		}
		s = "https://" + s
	}
	u, err := url.Parse(s)
	if err != nil {
		return "", ErrInvalid
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", ErrInvalid
	}
	if u.Host == "" {
		return "", ErrInvalid
	}
	return s, nil
}

// KeysEqual compares two shortcut keys case-insensitively.
func KeysEqual(a, b string) bool {
	return strings.EqualFold(a, b)
}
