package gate

import (
	"strings"

	"github.com/rcliao/sfx-library/internal/model"
	"github.com/rcliao/sfx-library/internal/search"
	"github.com/rcliao/sfx-library/internal/tags"
)

// Kind is the type of user gesture an Action describes.
type Kind int

const (
	KindQuery Kind = iota + 1
	KindTag
	KindViewAll
)

func (k Kind) String() string {
	switch k {
	case KindQuery:
		return "query"
	case KindTag:
		return "tag"
	case KindViewAll:
		return "view-all"
	}
	return "unknown"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Action is a user gesture that produces a result set.
type Action struct {
	Kind Kind   `json:"kind"`
	Term string `json:"term,omitempty"`
}

// QueryAction is a free-text search.
func QueryAction(query string) Action {
	return Action{Kind: KindQuery, Term: strings.TrimSpace(query)}
}

// TagAction is a click on a browse tag. The "all sounds" entry maps to view-all.
func TagAction(tag string) Action {
	n := tags.Normalize(tag)
	if n == tags.AllSounds {
		return ViewAllAction()
	}
	return Action{Kind: KindTag, Term: n}
}

// ViewAllAction lists the whole library.
func ViewAllAction() Action {
	return Action{Kind: KindViewAll}
}

// Candidates computes the unfiltered result set of the action.
func (a Action) Candidates(items []model.Sound) []model.Sound {
	if a.Kind == KindViewAll {
		return items
	}
	return search.Search(items, a.Term)
}
