package catalog

import (
	"fmt"
	"strings"
)

// Posting is a single job opening. Postings are static data: the engine
// reads them but never mutates them.
type Posting struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Department  string   `json:"department"`
	Location    string   `json:"location"`
	Type        string   `json:"type"`
	Skills      []string `json:"skills"`
	Description string   `json:"description"`
	ApplyURL    string   `json:"applyUrl"`
}

// Catalog holds an ordered snapshot of postings. Order is meaningful: the
// ranker uses it as the tie-break for equally relevant results.
type Catalog struct {
	Items []*Posting
}

func (c *Catalog) Len() int {
	return len(c.Items)
}

func (c *Catalog) FindByID(id string) *Posting {
	for _, p := range c.Items {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// FindByTitle returns the first posting whose title matches the given text
// case-insensitively, either exactly or as a substring of the title.
func (c *Catalog) FindByTitle(title string) *Posting {
	needle := strings.ToLower(strings.TrimSpace(title))
	if needle == "" {
		return nil
	}
	for _, p := range c.Items {
		if strings.ToLower(p.Title) == needle {
			return p
		}
	}
	for _, p := range c.Items {
		if strings.Contains(strings.ToLower(p.Title), needle) {
			return p
		}
	}
	return nil
}

// Match resolves free text like "apply senior product designer" against the
// postings: the first posting whose title or id appears inside the text wins.
func Match(postings []*Posting, text string) *Posting {
	normalized := strings.ToLower(text)
	for _, p := range postings {
		if p.Title != "" && strings.Contains(normalized, strings.ToLower(p.Title)) {
			return p
		}
		if p.ID != "" && strings.Contains(normalized, strings.ToLower(p.ID)) {
			return p
		}
	}
	return nil
}

// Validate checks the catalog invariants: every posting has a non-empty id
// and ids are unique within the snapshot.
func (c *Catalog) Validate() error {
	seen := make(map[string]struct{}, len(c.Items))
	for i, p := range c.Items {
		if strings.TrimSpace(p.ID) == "" {
			return fmt.Errorf("posting at index %d has no id", i)
		}
		if _, ok := seen[p.ID]; ok {
			return fmt.Errorf("duplicate posting id %q", p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}
