package models

import (
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

// NewID returns a prefixed random identifier such as "lnk_9f2ac81b04d3".
// Random ids stay unique under concurrent inserts, unlike counters.
func NewID(prefix string) string {
	u := uuid.New()
	return prefix + "_" + hex.EncodeToString(u[:])[:12]
}

// IDFragment returns the random part of a prefixed id, shortened to n chars.
// Used to disambiguate smart-link slugs.
func IDFragment(id string, n int) string {
	if i := strings.IndexByte(id, '_'); i >= 0 {
		id = id[i+1:]
	}
	if len(id) > n {
		id = id[:n]
	}
	return id
}
