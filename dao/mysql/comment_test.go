package mysql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campfire/models"
)

func TestDeleteCommentWithReplies(t *testing.T) {
	setupTestDB(t)

	require.NoError(t, db.Create(&models.User{UserID: 1, Username: "u", Password: "x"}).Error)
	require.NoError(t, CreatePost(&models.Post{ID: 200, AuthorID: 1, Title: "t", Content: "c"}))

	// 一楼带两条回复，另有一条独立的二楼
	require.NoError(t, CreateComment(&models.Comment{ID: 301, PostID: 200, AuthorID: 1, Content: "一楼"}))
	require.NoError(t, CreateComment(&models.Comment{ID: 302, PostID: 200, ParentID: 301, AuthorID: 1, Content: "回复1"}))
	require.NoError(t, CreateComment(&models.Comment{ID: 303, PostID: 200, ParentID: 301, AuthorID: 1, Content: "回复2"}))
	require.NoError(t, CreateComment(&models.Comment{ID: 304, PostID: 200, AuthorID: 1, Content: "二楼"}))

	removed, err := DeleteComment(301)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{301, 302, 303}, removed)

	// 二楼不受影响
	c, err := GetCommentByID(304)
	require.NoError(t, err)
	require.NotNil(t, c)

	count, err := CountCommentsByPostID(200)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestUpdateCommentContent(t *testing.T) {
	setupTestDB(t)

	require.NoError(t, CreateComment(&models.Comment{ID: 301, PostID: 200, AuthorID: 1, Content: "原文"}))
	require.NoError(t, UpdateCommentContent(301, "改过的"))

	c, err := GetCommentByID(301)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "改过的", c.Content)
}

func TestGetCommentByIDNotFound(t *testing.T) {
	setupTestDB(t)

	c, err := GetCommentByID(12345)
	require.NoError(t, err)
	assert.Nil(t, c)
}
