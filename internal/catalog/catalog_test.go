package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcliao/sfx-library/internal/apperr"
	"github.com/rcliao/sfx-library/internal/model"
)

func TestNew_NormalizesAndDedups(t *testing.T) {
	c := New([]string{"Storm", " door", "", "DOOR", "storm "})
	assert.Equal(t, []string{"door", "storm"}, c.List())
	assert.Equal(t, 2, c.Len())
}

func TestScenarioC(t *testing.T) {
	items := []model.Sound{
		{ID: "1", Title: "Door Creak", Tags: []string{"door"}},
		{ID: "2", Title: "Thunder", Tags: []string{"Storm"}},
		{ID: "3", Title: "Glass Break", Tags: []string{"glass", "door"}},
	}
	content := ContentTags(items)
	assert.Equal(t, []string{"door", "glass", "storm"}, content)

	c := New([]string{"door", "storm"})
	assert.Equal(t, []string{"glass"}, Available(content, c))

	c, err := c.Add("glass")
	require.NoError(t, err)
	assert.Equal(t, []string{"door", "glass", "storm"}, c.List())
	assert.Empty(t, Available(content, c))
}

func TestAdd_Validation(t *testing.T) {
	c := New(nil)
	_, err := c.Add("   ")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrValidation))
	assert.True(t, apperr.IsCode(err, apperr.CodeValidation))
}

func TestAdd_DuplicateLeavesCatalogUnchanged(t *testing.T) {
	c, err := New(nil).Add("Door")
	require.NoError(t, err)

	again, err := c.Add(" DOOR ")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrDuplicate))
	assert.Equal(t, c.List(), again.List())
	assert.Equal(t, []string{"door"}, c.List())
}

func TestAdd_DoesNotMutateReceiver(t *testing.T) {
	base := New([]string{"a", "c"})
	next, err := base.Add("b")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, base.List())
	assert.Equal(t, []string{"a", "b", "c"}, next.List())
}

func TestRemove_Idempotent(t *testing.T) {
	c := New([]string{"door", "glass", "storm"})
	once := c.Remove("GLASS")
	twice := once.Remove("glass")
	assert.Equal(t, []string{"door", "storm"}, once.List())
	assert.Equal(t, once.List(), twice.List())
	assert.Equal(t, []string{"door", "glass", "storm"}, c.List())

	assert.Equal(t, c.List(), c.Remove("absent").List())
}

func TestCuratedNeedNotBeContent(t *testing.T) {
	c, err := New(nil).Add("explosion")
	require.NoError(t, err)
	assert.True(t, c.Contains("Explosion"))
	assert.Empty(t, Available(nil, c))
}

func TestListReturnsCopy(t *testing.T) {
	c := New([]string{"door"})
	l := c.List()
	l[0] = "mutated"
	assert.Equal(t, []string{"door"}, c.List())
}

func TestAvailable_NormalizesContent(t *testing.T) {
	got := Available([]string{" Wind", "wind", "", "rain"}, New([]string{"rain"}))
	assert.Equal(t, []string{"wind"}, got)
}
