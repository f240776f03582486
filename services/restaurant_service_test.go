package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetailIncrementsViewCounts(t *testing.T) {
	f := newFixture(t)
	category := f.createCategory(t, "Mexican")
	rest := f.createRestaurant(t, "Taqueria", category.ID)

	// each call bumps by exactly one and the snapshot carries the
	// post-increment value
	for want := uint(1); want <= 3; want++ {
		detail, err := f.restaurantSvc.Detail(rest.ID, 0)
		require.NoError(t, err)
		assert.Equal(t, want, detail.ViewCounts)
	}
}

func TestDetailNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.restaurantSvc.Detail(999, 0)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDetailCommentsNewestFirst(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t, "u1")
	category := f.createCategory(t, "Mexican")
	rest := f.createRestaurant(t, "Taqueria", category.ID)

	base := time.Now().Add(-3 * time.Hour)
	oldest := f.createCommentAt(t, user.ID, rest.ID, "first visit", base)
	middle := f.createCommentAt(t, user.ID, rest.ID, "second visit", base.Add(time.Hour))
	newest := f.createCommentAt(t, user.ID, rest.ID, "third visit", base.Add(2*time.Hour))

	detail, err := f.restaurantSvc.Detail(rest.ID, user.ID)
	require.NoError(t, err)
	require.Len(t, detail.Comments, 3)
	assert.Equal(t, newest.ID, detail.Comments[0].ID)
	assert.Equal(t, middle.ID, detail.Comments[1].ID)
	assert.Equal(t, oldest.ID, detail.Comments[2].ID)

	// comment authors ride along
	assert.Equal(t, user.ID, detail.Comments[0].User.ID)
	assert.Equal(t, category.Name, detail.Category.Name)
}

func TestDetailFlagsForViewer(t *testing.T) {
	f := newFixture(t)
	u1 := f.createUser(t, "u1")
	u2 := f.createUser(t, "u2")
	category := f.createCategory(t, "Mexican")
	rest := f.createRestaurant(t, "Taqueria", category.ID)

	require.NoError(t, f.relations.AddFavorite(u1.ID, rest.ID))
	require.NoError(t, f.relations.AddLike(u2.ID, rest.ID))

	detail, err := f.restaurantSvc.Detail(rest.ID, u1.ID)
	require.NoError(t, err)
	assert.True(t, detail.IsFavorited)
	assert.False(t, detail.IsLiked)

	detail, err = f.restaurantSvc.Detail(rest.ID, u2.ID)
	require.NoError(t, err)
	assert.False(t, detail.IsFavorited)
	assert.True(t, detail.IsLiked)
}

func TestDashboardHasNoSideEffects(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t, "u1")
	category := f.createCategory(t, "Mexican")
	rest := f.createRestaurant(t, "Taqueria", category.ID)

	base := time.Now().Add(-time.Hour)
	f.createCommentAt(t, user.ID, rest.ID, "one", base)
	f.createCommentAt(t, user.ID, rest.ID, "two", base.Add(time.Minute))

	// two detail views first
	_, err := f.restaurantSvc.Detail(rest.ID, 0)
	require.NoError(t, err)
	_, err = f.restaurantSvc.Detail(rest.ID, 0)
	require.NoError(t, err)

	row, err := f.restaurantSvc.Dashboard(rest.ID)
	require.NoError(t, err)
	assert.Equal(t, rest.ID, row.RestaurantID)
	assert.Equal(t, "Taqueria", row.Name)
	assert.Equal(t, "Mexican", row.CategoryName)
	assert.Equal(t, uint(2), row.ViewCounts)
	assert.Equal(t, int64(2), row.CommentCount)

	// dashboard reads don't bump the counter
	row, err = f.restaurantSvc.Dashboard(rest.ID)
	require.NoError(t, err)
	assert.Equal(t, uint(2), row.ViewCounts)
}

func TestDashboardNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.restaurantSvc.Dashboard(999)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestFeedsReturnsNewestIndependently(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t, "u1")
	category := f.createCategory(t, "American")

	base := time.Now().Add(-3 * time.Hour)
	f.createRestaurantAt(t, "Old Diner", category.ID, base)
	middle := f.createRestaurantAt(t, "Middle Diner", category.ID, base.Add(time.Hour))
	newest := f.createRestaurantAt(t, "New Diner", category.ID, base.Add(2*time.Hour))

	f.createCommentAt(t, user.ID, newest.ID, "old comment", base)
	latest := f.createCommentAt(t, user.ID, middle.ID, "latest comment", base.Add(2*time.Hour))

	feed, err := f.restaurantSvc.Feeds(2)
	require.NoError(t, err)

	require.Len(t, feed.Restaurants, 2)
	assert.Equal(t, newest.ID, feed.Restaurants[0].ID)
	assert.Equal(t, middle.ID, feed.Restaurants[1].ID)
	assert.Equal(t, category.Name, feed.Restaurants[0].Category.Name)

	// comments are their own list, not filtered by the restaurants above
	require.Len(t, feed.Comments, 2)
	assert.Equal(t, latest.ID, feed.Comments[0].ID)
	assert.Equal(t, user.ID, feed.Comments[0].User.ID)
	assert.Equal(t, middle.ID, feed.Comments[0].Restaurant.ID)
}

func TestListByCategory(t *testing.T) {
	f := newFixture(t)
	italian := f.createCategory(t, "Italian")
	sushi := f.createCategory(t, "Japanese")
	f.createRestaurant(t, "Trattoria", italian.ID)
	f.createRestaurant(t, "Osteria", italian.ID)
	f.createRestaurant(t, "Sushi Bar", sushi.ID)

	rests, err := f.restaurantSvc.ListByCategory(italian.ID)
	require.NoError(t, err)
	assert.Len(t, rests, 2)

	// zero means no filter
	rests, err = f.restaurantSvc.ListByCategory(0)
	require.NoError(t, err)
	assert.Len(t, rests, 3)
}
