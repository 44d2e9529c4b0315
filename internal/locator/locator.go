// Package locator maps a restaurant identifier to and from a shareable URL.
// It only edits query strings; fetching the menu for a resolved identifier
// is someone else's job.
package locator

import "net/url"

// CanonicalKey is the authoritative query parameter carrying the restaurant id.
const CanonicalKey = "restaurantId"

// aliasKey is a deprecated short spelling, accepted on read only.
const aliasKey = "r"

// Read extracts the restaurant identifier from a URL. The canonical key wins
// over the alias. A malformed URL or a missing id yields ("", false), never
// an error.
func Read(rawURL string) (string, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}
	q := u.Query()
	if id := q.Get(CanonicalKey); id != "" {
		return id, true
	}
	if id := q.Get(aliasKey); id != "" {
		return id, true
	}
	return "", false
}

// Save returns the URL with the canonical key set to id and the deprecated
// alias removed. Every unrelated query component is preserved. A malformed
// input URL is treated as empty.
func Save(rawURL, id string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		u = &url.URL{}
	}
	q := u.Query()
	q.Del(aliasKey)
	q.Set(CanonicalKey, id)
	u.RawQuery = q.Encode()
	return u.String()
}

// Clear returns the URL with both keys removed, preserving the rest.
func Clear(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	q := u.Query()
	q.Del(CanonicalKey)
	q.Del(aliasKey)
	u.RawQuery = q.Encode()
	return u.String()
}
