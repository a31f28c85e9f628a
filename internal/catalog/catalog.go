// Package catalog maintains the administrator-curated browse tags. A Catalog
// is an immutable snapshot; mutations return a new one.
package catalog

import (
	"sort"

	"github.com/rcliao/sfx-library/internal/apperr"
	"github.com/rcliao/sfx-library/internal/model"
	"github.com/rcliao/sfx-library/internal/tags"
)

// Catalog is a sorted set of normalized curated tags.
type Catalog struct {
	tags []string
}

// New builds a catalog from stored tags, normalizing and deduplicating them.
// Empty entries are dropped.
func New(raw []string) Catalog {
	return Catalog{tags: sortedSet(tags.NormalizeAll(raw))}
}

// List returns the curated tags in lexicographic order.
func (c Catalog) List() []string {
	out := make([]string, len(c.tags))
	copy(out, c.tags)
	return out
}

// Len returns the number of curated tags.
func (c Catalog) Len() int {
	return len(c.tags)
}

// Contains reports whether raw is curated, ignoring case and surrounding space.
func (c Catalog) Contains(raw string) bool {
	n := tags.Normalize(raw)
	i := sort.SearchStrings(c.tags, n)
	return i < len(c.tags) && c.tags[i] == n
}

// Add curates a new tag.
func (c Catalog) Add(raw string) (Catalog, error) {
	n := tags.Normalize(raw)
	if n == "" {
		return c, apperr.Validation("tag cannot be empty")
	}
	if c.Contains(n) {
		return c, apperr.Duplicate("tag already exists: %s", n)
	}
	next := make([]string, 0, len(c.tags)+1)
	next = append(next, c.tags...)
	next = append(next, n)
	sort.Strings(next)
	return Catalog{tags: next}, nil
}

// Remove drops a tag. Removing an absent tag is a no-op.
func (c Catalog) Remove(raw string) Catalog {
	n := tags.Normalize(raw)
	next := make([]string, 0, len(c.tags))
	for _, t := range c.tags {
		if t != n {
			next = append(next, t)
		}
	}
	return Catalog{tags: next}
}

// ContentTags returns the sorted union of normalized tags across items.
func ContentTags(items []model.Sound) []string {
	var all []string
	for _, s := range items {
		all = append(all, tags.NormalizeAll(s.Tags)...)
	}
	return sortedSet(all)
}

// Available returns the content tags that are not curated, sorted.
func Available(contentTags []string, c Catalog) []string {
	out := []string{}
	for _, t := range sortedSet(tags.NormalizeAll(contentTags)) {
		if !c.Contains(t) {
			out = append(out, t)
		}
	}
	return out
}

func sortedSet(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, t := range in {
		if seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
