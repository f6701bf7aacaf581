package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"campfire/models"
)

func TestCanEditComment(t *testing.T) {
	author := &models.User{UserID: 1}
	staff := &models.User{UserID: 2, IsStaff: true}
	other := &models.User{UserID: 3}
	comment := &models.Comment{ID: 100, AuthorID: 1}

	assert.True(t, CanEditComment(author, comment))
	// 编辑只开放给作者本人，管理员也不行
	assert.False(t, CanEditComment(staff, comment))
	assert.False(t, CanEditComment(other, comment))
	assert.False(t, CanEditComment(nil, comment))
	assert.False(t, CanEditComment(author, nil))
}

func TestCanDeleteComment(t *testing.T) {
	commentAuthor := &models.User{UserID: 1}
	staff := &models.User{UserID: 2, IsStaff: true}
	postAuthor := &models.User{UserID: 3}
	moderator := &models.User{UserID: 4}
	stranger := &models.User{UserID: 5}

	comment := &models.Comment{ID: 100, PostID: 200, AuthorID: 1}
	postInCommunity := &models.Post{
		ID:          200,
		AuthorID:    3,
		CommunityID: 300,
		Community: &models.Community{
			ID:         300,
			Moderators: []*models.User{{UserID: 4}},
		},
	}

	assert.True(t, CanDeleteComment(commentAuthor, comment, postInCommunity))
	assert.True(t, CanDeleteComment(staff, comment, postInCommunity))
	assert.True(t, CanDeleteComment(postAuthor, comment, postInCommunity))
	assert.True(t, CanDeleteComment(moderator, comment, postInCommunity))
	assert.False(t, CanDeleteComment(stranger, comment, postInCommunity))
}

// 帖子不属于任何社区时版主分支直接短路
func TestCanDeleteCommentNoCommunity(t *testing.T) {
	moderator := &models.User{UserID: 4}
	comment := &models.Comment{ID: 100, PostID: 200, AuthorID: 1}
	post := &models.Post{ID: 200, AuthorID: 3, CommunityID: 0}

	assert.False(t, CanDeleteComment(moderator, comment, post))
	// 作者和管理员不受影响
	assert.True(t, CanDeleteComment(&models.User{UserID: 1}, comment, post))
	assert.True(t, CanDeleteComment(&models.User{UserID: 9, IsStaff: true}, comment, post))
}

func TestCanModeratePost(t *testing.T) {
	author := &models.User{UserID: 1}
	staff := &models.User{UserID: 2, IsStaff: true}
	moderator := &models.User{UserID: 4}

	post := &models.Post{
		ID:          200,
		AuthorID:    1,
		CommunityID: 300,
		Community: &models.Community{
			ID:         300,
			Moderators: []*models.User{{UserID: 4}},
		},
	}

	assert.True(t, CanModeratePost(author, post))
	assert.True(t, CanModeratePost(staff, post))
	// 社区版主管评论不管帖子本体
	assert.False(t, CanModeratePost(moderator, post))
	assert.False(t, CanModeratePost(nil, post))
}
