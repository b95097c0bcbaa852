package services

import (
	"strings"

	"github.com/dmitrijs2005/securevault/internal/client/models"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// FilterKeys returns the keys whose name, description or type matches term.
// Matching is case-insensitive and accepts subsequences, so "ghtok" finds
// "GitHub Token". An empty term returns keys unchanged.
func FilterKeys(keys []*models.SecurityKey, term string) []*models.SecurityKey {
	term = strings.TrimSpace(term)
	if term == "" {
		return keys
	}

	out := make([]*models.SecurityKey, 0, len(keys))
	for _, k := range keys {
		if fuzzy.MatchNormalizedFold(term, k.Name) ||
			fuzzy.MatchNormalizedFold(term, k.Description) ||
			fuzzy.MatchNormalizedFold(term, string(k.Type)) {
			out = append(out, k)
		}
	}
	return out
}
