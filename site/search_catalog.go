package site

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// SearchCatalog is the serialized catalog index served to browsers. It is
// computed once; the catalog does not change while the process runs.
type SearchCatalog struct {
	payload json.RawMessage
	etag    string
}

func newSearchCatalog(payload json.RawMessage) *SearchCatalog {
	if len(payload) == 0 {
		payload = emptySearchIndexJSON
	}
	sum := sha256.Sum256(payload)
	return &SearchCatalog{
		payload: append(json.RawMessage(nil), payload...),
		etag:    `"` + hex.EncodeToString(sum[:8]) + `"`,
	}
}

// Bytes returns a copy of the index.
func (c *SearchCatalog) Bytes() json.RawMessage {
	return append(json.RawMessage(nil), c.payload...)
}

// ETag is a strong validator for the index contents.
func (c *SearchCatalog) ETag() string {
	return c.etag
}
