// Package maturity classifies sounds carrying the reserved mature-content tag.
package maturity

import (
	"github.com/rcliao/sfx-library/internal/model"
	"github.com/rcliao/sfx-library/internal/tags"
)

// IsRestricted reports whether any tag normalizes to the reserved tag.
func IsRestricted(tagList []string) bool {
	for _, t := range tagList {
		if tags.Normalize(t) == tags.Restricted {
			return true
		}
	}
	return false
}

// ContainsRestricted reports whether at least one item is restricted.
func ContainsRestricted(items []model.Sound) bool {
	for _, s := range items {
		if IsRestricted(s.Tags) {
			return true
		}
	}
	return false
}

// FilterRestricted returns items unchanged when allowed, otherwise the
// unrestricted items in their original order.
func FilterRestricted(items []model.Sound, allowed bool) []model.Sound {
	if allowed {
		return items
	}
	out := make([]model.Sound, 0, len(items))
	for _, s := range items {
		if !IsRestricted(s.Tags) {
			out = append(out, s)
		}
	}
	return out
}

// Count returns how many items are restricted.
func Count(items []model.Sound) int {
	n := 0
	for _, s := range items {
		if IsRestricted(s.Tags) {
			n++
		}
	}
	return n
}
