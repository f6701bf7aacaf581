package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campfire/dao/mysql"
	"campfire/models"
	"campfire/pkg/errorx"
)

func TestCreateCommentParentMustMatchPost(t *testing.T) {
	setupLogicTest(t)
	seedUserAndPost(t)
	require.NoError(t, mysql.CreatePost(&models.Post{ID: 201, AuthorID: 1, Title: "t2", Content: "c2"}))

	// 一楼挂在帖子 200 下
	parentID, err := CreateComment(1, &models.ParamComment{PostID: 200, Content: "一楼"})
	require.NoError(t, err)

	// 合法回复
	_, err = CreateComment(1, &models.ParamComment{PostID: 200, ParentID: parentID, Content: "回复"})
	require.NoError(t, err)

	// 跨帖子回复被拒
	_, err = CreateComment(1, &models.ParamComment{PostID: 201, ParentID: parentID, Content: "串门"})
	require.Error(t, err)
	var codeErr *errorx.CodeError
	require.ErrorAs(t, err, &codeErr)
	assert.Equal(t, errorx.CodeInvalidParam, codeErr.Code)

	// 父评论不存在
	_, err = CreateComment(1, &models.ParamComment{PostID: 200, ParentID: 404404, Content: "回复幽灵"})
	assert.ErrorIs(t, err, errorx.ErrNotFound)
}

func TestGetCommentTree(t *testing.T) {
	setupLogicTest(t)
	seedUserAndPost(t)

	topID, err := CreateComment(1, &models.ParamComment{PostID: 200, Content: "一楼"})
	require.NoError(t, err)
	replyID, err := CreateComment(1, &models.ParamComment{PostID: 200, ParentID: topID, Content: "回复"})
	require.NoError(t, err)
	secondID, err := CreateComment(1, &models.ParamComment{PostID: 200, Content: "二楼"})
	require.NoError(t, err)

	// 给一楼投个赞成票
	_, err = VoteForTarget(1, &models.ParamVoteData{
		TargetID: topID, TargetType: models.VoteTargetComment, Direction: 1,
	})
	require.NoError(t, err)

	tree, err := GetCommentTree(200, 1)
	require.NoError(t, err)
	require.Len(t, tree, 2)

	assert.Equal(t, topID, tree[0].Comment.ID)
	assert.Equal(t, int64(1), tree[0].Score)
	assert.Equal(t, int8(1), tree[0].VoteStatus)
	require.Len(t, tree[0].Children, 1)
	assert.Equal(t, replyID, tree[0].Children[0].Comment.ID)

	assert.Equal(t, secondID, tree[1].Comment.ID)
	assert.Equal(t, int64(0), tree[1].Score)
	assert.Empty(t, tree[1].Children)
}

func TestGetCommentTreePostNotFound(t *testing.T) {
	setupLogicTest(t)

	_, err := GetCommentTree(404, 0)
	assert.ErrorIs(t, err, errorx.ErrNotFound)
}

func TestUpdateCommentPermission(t *testing.T) {
	setupLogicTest(t)
	seedUserAndPost(t)
	require.NoError(t, mysql.InsertUser(&models.User{UserID: 2, Username: "staff", Password: "x", IsStaff: true}))

	commentID, err := CreateComment(1, &models.ParamComment{PostID: 200, Content: "原文"})
	require.NoError(t, err)

	// 管理员也不能编辑别人的评论
	err = UpdateComment(2, commentID, &models.ParamCommentUpdate{Content: "改"})
	assert.ErrorIs(t, err, errorx.ErrNoPermission)

	require.NoError(t, UpdateComment(1, commentID, &models.ParamCommentUpdate{Content: "改过的"}))
	c, err := mysql.GetCommentByID(commentID)
	require.NoError(t, err)
	assert.Equal(t, "改过的", c.Content)
}

func TestDeleteCommentPermission(t *testing.T) {
	setupLogicTest(t)
	seedUserAndPost(t)
	require.NoError(t, mysql.InsertUser(&models.User{UserID: 3, Username: "stranger", Password: "x"}))

	commentID, err := CreateComment(1, &models.ParamComment{PostID: 200, Content: "评论"})
	require.NoError(t, err)

	// 路人不能删
	err = DeleteComment(3, commentID)
	assert.ErrorIs(t, err, errorx.ErrNoPermission)

	// 作者可以删，连带回复一起删
	_, err = CreateComment(3, &models.ParamComment{PostID: 200, ParentID: commentID, Content: "回复"})
	require.NoError(t, err)
	require.NoError(t, DeleteComment(1, commentID))

	count, err := mysql.CountCommentsByPostID(200)
	require.NoError(t, err)
	assert.Zero(t, count)
}
