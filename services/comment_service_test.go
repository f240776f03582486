package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateComment(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t, "u1")
	category := f.createCategory(t, "Vegetarian")
	rest := f.createRestaurant(t, "Greens", category.ID)

	comment, err := f.commentSvc.Create(user.ID, rest.ID, "  lovely place  ")
	require.NoError(t, err)
	assert.Equal(t, "lovely place", comment.Text)
	assert.NotZero(t, comment.ID)
}

func TestCreateCommentRestaurantNotFound(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t, "u1")

	_, err := f.commentSvc.Create(user.ID, 999, "text")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCreateCommentTextRequired(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t, "u1")
	category := f.createCategory(t, "Vegetarian")
	rest := f.createRestaurant(t, "Greens", category.ID)

	_, err := f.commentSvc.Create(user.ID, rest.ID, "   ")
	require.ErrorIs(t, err, ErrValidation)
}

func TestDeleteComment(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t, "u1")
	category := f.createCategory(t, "Vegetarian")
	rest := f.createRestaurant(t, "Greens", category.ID)

	comment, err := f.commentSvc.Create(user.ID, rest.ID, "to be removed")
	require.NoError(t, err)

	require.NoError(t, f.commentSvc.Delete(comment.ID))
	err = f.commentSvc.Delete(comment.ID)
	require.ErrorIs(t, err, ErrNotFound)
}
