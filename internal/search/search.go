// Package search ranks sounds against a free-text query by term containment.
package search

import (
	"sort"
	"strings"

	"github.com/rcliao/sfx-library/internal/model"
	"github.com/rcliao/sfx-library/internal/tags"
)

// Ranking tiers, best first.
const (
	tierExactTitle = iota
	tierTitle
	tierTag
)

// Terms lowercases and splits a query on runs of whitespace.
func Terms(query string) []string {
	return strings.Fields(strings.ToLower(strings.TrimSpace(query)))
}

type candidate struct {
	sound model.Sound
	title string
	tags  []string
}

func newCandidate(s model.Sound) candidate {
	c := candidate{sound: s, title: strings.ToLower(s.Title)}
	for _, t := range s.Tags {
		if n := tags.Normalize(t); n != "" {
			c.tags = append(c.tags, n)
		}
	}
	return c
}

func (c candidate) matches(terms []string) bool {
	for _, term := range terms {
		if strings.Contains(c.title, term) {
			return true
		}
		// Containment runs both ways so "thunderstorm" finds a "storm" tag
		// and "storm" finds a "thunderstorm" tag.
		for _, tag := range c.tags {
			if strings.Contains(tag, term) || strings.Contains(term, tag) {
				return true
			}
		}
	}
	return false
}

func (c candidate) tier(terms []string) int {
	best := tierTag
	for _, term := range terms {
		if c.title == term {
			return tierExactTitle
		}
		if strings.Contains(c.title, term) {
			best = tierTitle
		}
	}
	return best
}

// Matches reports whether a sound satisfies the search predicate for terms.
func Matches(s model.Sound, terms []string) bool {
	return newCandidate(s).matches(terms)
}

// Search returns the sounds matching any query term, exact title matches
// first, then title substring matches, then tag-only matches. Order within a
// tier follows the input. An empty query returns items unchanged.
func Search(items []model.Sound, query string) []model.Sound {
	terms := Terms(query)
	if len(terms) == 0 {
		return items
	}

	type ranked struct {
		sound model.Sound
		tier  int
	}
	var hits []ranked
	for _, s := range items {
		c := newCandidate(s)
		if !c.matches(terms) {
			continue
		}
		hits = append(hits, ranked{sound: s, tier: c.tier(terms)})
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].tier < hits[j].tier
	})

	out := make([]model.Sound, len(hits))
	for i, h := range hits {
		out[i] = h.sound
	}
	return out
}

// Filter is the administrator list filter: the whole trimmed query, lowercased,
// must appear in the title, a tag, the equipment or the format. Input order is kept.
func Filter(items []model.Sound, query string) []model.Sound {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return items
	}
	out := []model.Sound{}
	for _, s := range items {
		if filterMatch(s, needle) {
			out = append(out, s)
		}
	}
	return out
}

func filterMatch(s model.Sound, needle string) bool {
	if strings.Contains(strings.ToLower(s.Title), needle) {
		return true
	}
	for _, t := range s.Tags {
		if strings.Contains(strings.ToLower(t), needle) {
			return true
		}
	}
	if s.Equipment != nil && strings.Contains(strings.ToLower(*s.Equipment), needle) {
		return true
	}
	return s.Format != nil && strings.Contains(strings.ToLower(*s.Format), needle)
}
