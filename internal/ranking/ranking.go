// Package ranking orders catalog postings against a keyword query and an
// optional location filter. Relevance is a literal substring check, so the
// catalog order is the load-bearing tie-break, not an afterthought.
package ranking

import (
	"sort"
	"strings"

	"github.com/hirebyte/hr-assistant/internal/catalog"
)

// emptyQueryRelevance makes location-only searches return results instead
// of nothing: with no keyword everything matches weakly.
const emptyQueryRelevance = 0.5

// Rank returns the postings matching the query and location filter, most
// relevant first, preserving catalog order between equally relevant
// postings. Empty query and empty location return the whole catalog.
func Rank(c *catalog.Catalog, query, location string) []*catalog.Posting {
	kw := strings.ToLower(strings.TrimSpace(query))
	loc := strings.ToLower(strings.TrimSpace(location))

	type scored struct {
		posting   *catalog.Posting
		relevance float64
	}

	matches := make([]scored, 0, c.Len())
	for _, p := range c.Items {
		r := relevance(p, kw)
		if r <= 0 {
			continue
		}
		if loc != "" && !strings.Contains(strings.ToLower(p.Location), loc) {
			continue
		}
		matches = append(matches, scored{posting: p, relevance: r})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].relevance > matches[j].relevance
	})

	ranked := make([]*catalog.Posting, 0, len(matches))
	for _, m := range matches {
		ranked = append(ranked, m.posting)
	}
	return ranked
}

func relevance(p *catalog.Posting, kw string) float64 {
	if kw == "" {
		return emptyQueryRelevance
	}
	haystack := strings.ToLower(strings.Join([]string{
		p.Title, p.Department, strings.Join(p.Skills, " "), p.Description,
	}, " "))
	if strings.Contains(haystack, kw) {
		return 1
	}
	return 0
}
