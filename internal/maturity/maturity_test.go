package maturity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rcliao/sfx-library/internal/model"
)

var items = []model.Sound{
	{ID: "1", Title: "Door", Tags: []string{"door"}},
	{ID: "2", Title: "Moan", Tags: []string{"voice", "NSFW"}},
	{ID: "3", Title: "Rain", Tags: []string{"rain"}},
	{ID: "4", Title: "Slap", Tags: []string{" nsfw "}},
	{ID: "5", Title: "Bare"},
}

func TestIsRestricted(t *testing.T) {
	assert.True(t, IsRestricted([]string{"nsfw"}))
	assert.True(t, IsRestricted([]string{"x", " NsFw"}))
	assert.False(t, IsRestricted([]string{"nsfw-ish", "not nsfw"}))
	assert.False(t, IsRestricted(nil))
}

func TestContainsRestricted(t *testing.T) {
	assert.True(t, ContainsRestricted(items))
	assert.False(t, ContainsRestricted(items[:1]))
	assert.False(t, ContainsRestricted(nil))
}

func TestFilterRestricted_AllowedIsIdentity(t *testing.T) {
	assert.Equal(t, items, FilterRestricted(items, true))
}

func TestFilterRestricted_ExcludesAndKeepsOrder(t *testing.T) {
	got := FilterRestricted(items, false)
	var ids []string
	for _, s := range got {
		assert.False(t, IsRestricted(s.Tags))
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{"1", "3", "5"}, ids)
	assert.Empty(t, FilterRestricted(nil, false))
}

func TestCount(t *testing.T) {
	assert.Equal(t, 2, Count(items))
	assert.Zero(t, Count(nil))
}
