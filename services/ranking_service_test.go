package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopRestaurantsCountsAndFlags(t *testing.T) {
	f := newFixture(t)
	u1 := f.createUser(t, "u1")
	u2 := f.createUser(t, "u2")
	u3 := f.createUser(t, "u3")
	category := f.createCategory(t, "Japanese")
	r1 := f.createRestaurant(t, "Sushi", category.ID)
	r2 := f.createRestaurant(t, "Ramen", category.ID)

	require.NoError(t, f.relations.AddFavorite(u1.ID, r1.ID))
	require.NoError(t, f.relations.AddFavorite(u2.ID, r1.ID))
	require.NoError(t, f.relations.AddFavorite(u2.ID, r2.ID))

	ranked, err := f.ranking.TopRestaurants(u1.ID, 10)
	require.NoError(t, err)
	require.Len(t, ranked, 2)

	assert.Equal(t, r1.ID, ranked[0].ID)
	assert.Equal(t, 2, ranked[0].FavoritedCount)
	assert.True(t, ranked[0].IsFavorited)
	assert.Equal(t, r2.ID, ranked[1].ID)
	assert.Equal(t, 1, ranked[1].FavoritedCount)
	assert.False(t, ranked[1].IsFavorited)

	// a third user who favorited nothing sees the same order, no flags
	ranked, err = f.ranking.TopRestaurants(u3.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, ranked[0].FavoritedCount)
	assert.False(t, ranked[0].IsFavorited)
	assert.False(t, ranked[1].IsFavorited)
}

func TestTopRestaurantsLimit(t *testing.T) {
	f := newFixture(t)
	category := f.createCategory(t, "Japanese")
	for _, name := range []string{"A", "B", "C"} {
		f.createRestaurant(t, name, category.ID)
	}

	ranked, err := f.ranking.TopRestaurants(0, 2)
	require.NoError(t, err)
	assert.Len(t, ranked, 2)

	// never longer than the data either
	ranked, err = f.ranking.TopRestaurants(0, 10)
	require.NoError(t, err)
	assert.Len(t, ranked, 3)
}

func TestTopRestaurantsEmpty(t *testing.T) {
	f := newFixture(t)

	ranked, err := f.ranking.TopRestaurants(0, 10)
	require.NoError(t, err)
	assert.Empty(t, ranked)
}

func TestTopRestaurantsStableTieBreak(t *testing.T) {
	f := newFixture(t)
	category := f.createCategory(t, "Japanese")
	r1 := f.createRestaurant(t, "First", category.ID)
	r2 := f.createRestaurant(t, "Second", category.ID)
	r3 := f.createRestaurant(t, "Third", category.ID)

	// all counts equal: fetch order (primary key) must survive the sort,
	// and repeated calls must agree
	for i := 0; i < 3; i++ {
		ranked, err := f.ranking.TopRestaurants(0, 10)
		require.NoError(t, err)
		require.Len(t, ranked, 3)
		assert.Equal(t, r1.ID, ranked[0].ID)
		assert.Equal(t, r2.ID, ranked[1].ID)
		assert.Equal(t, r3.ID, ranked[2].ID)
	}
}

func TestTopRestaurantsNoViewer(t *testing.T) {
	f := newFixture(t)
	u1 := f.createUser(t, "u1")
	category := f.createCategory(t, "Japanese")
	r1 := f.createRestaurant(t, "Sushi", category.ID)
	require.NoError(t, f.relations.AddFavorite(u1.ID, r1.ID))

	ranked, err := f.ranking.TopRestaurants(0, 10)
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.Equal(t, 1, ranked[0].FavoritedCount)
	assert.False(t, ranked[0].IsFavorited)
}

func TestTopUsersOrderAndFlags(t *testing.T) {
	f := newFixture(t)
	alice := f.createUser(t, "alice")
	bob := f.createUser(t, "bob")
	carol := f.createUser(t, "carol")

	// bob gets two followers, carol one
	require.NoError(t, f.relations.AddFollowing(alice.ID, bob.ID))
	require.NoError(t, f.relations.AddFollowing(carol.ID, bob.ID))
	require.NoError(t, f.relations.AddFollowing(alice.ID, carol.ID))

	ranked, err := f.ranking.TopUsers(alice.ID, 10)
	require.NoError(t, err)
	require.Len(t, ranked, 3)

	assert.Equal(t, bob.ID, ranked[0].ID)
	assert.Equal(t, 2, ranked[0].FollowerCount)
	assert.True(t, ranked[0].IsFollowed)

	assert.Equal(t, carol.ID, ranked[1].ID)
	assert.Equal(t, 1, ranked[1].FollowerCount)
	assert.True(t, ranked[1].IsFollowed)

	assert.Equal(t, alice.ID, ranked[2].ID)
	assert.Equal(t, 0, ranked[2].FollowerCount)
	assert.False(t, ranked[2].IsFollowed)
}

func TestTopUsersNoViewer(t *testing.T) {
	f := newFixture(t)
	alice := f.createUser(t, "alice")
	bob := f.createUser(t, "bob")
	require.NoError(t, f.relations.AddFollowing(alice.ID, bob.ID))

	// no viewer: counts still computed, flags all false
	ranked, err := f.ranking.TopUsers(0, 10)
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	for _, u := range ranked {
		assert.False(t, u.IsFollowed)
	}
	assert.Equal(t, bob.ID, ranked[0].ID)
	assert.Equal(t, 1, ranked[0].FollowerCount)
}

func TestTopUsersLimit(t *testing.T) {
	f := newFixture(t)
	for _, name := range []string{"a", "b", "c", "d"} {
		f.createUser(t, name)
	}

	ranked, err := f.ranking.TopUsers(0, 2)
	require.NoError(t, err)
	assert.Len(t, ranked, 2)
}
