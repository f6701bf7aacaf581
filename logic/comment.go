package logic

import (
	"strconv"

	"campfire/dao/mysql"
	"campfire/dao/redis"
	"campfire/models"
	"campfire/pkg/errorx"
	"campfire/pkg/snowflake"

	"go.uber.org/zap"
)

// CreateComment 发表评论，支持楼中楼回复
// 不变量：父评论必须属于同一个帖子，违反时按参数错误拒绝
func CreateComment(userID int64, p *models.ParamComment) (commentID int64, err error) {
	// 1. 帖子必须存在
	post, err := mysql.GetPostByID(p.PostID)
	if err != nil {
		zap.L().Error("mysql.GetPostByID failed", zap.Int64("post_id", p.PostID), zap.Error(err))
		return 0, errorx.ErrServerBusy
	}
	if post == nil {
		return 0, errorx.ErrNotFound
	}

	// 2. 回复时校验父评论：存在且挂在同一个帖子下
	if p.ParentID != 0 {
		parent, err := mysql.GetCommentByID(p.ParentID)
		if err != nil {
			zap.L().Error("mysql.GetCommentByID failed", zap.Int64("parent_id", p.ParentID), zap.Error(err))
			return 0, errorx.ErrServerBusy
		}
		if parent == nil {
			return 0, errorx.ErrNotFound
		}
		if parent.PostID != p.PostID {
			return 0, errorx.New(errorx.CodeInvalidParam, "父评论不属于该帖子")
		}
	}

	// 3. 入库
	commentID = snowflake.GenID()
	comment := &models.Comment{
		ID:       commentID,
		PostID:   p.PostID,
		ParentID: p.ParentID,
		AuthorID: userID,
		Content:  p.Content,
	}
	if err := mysql.CreateComment(comment); err != nil {
		zap.L().Error("mysql.CreateComment failed", zap.Int64("comment_id", commentID), zap.Error(err))
		return 0, errorx.ErrServerBusy
	}
	return commentID, nil
}

// GetCommentTree 查询帖子的评论树，带每条评论的分数和当前用户的投票状态
func GetCommentTree(postID, viewerID int64) ([]*models.ApiCommentDetail, error) {
	post, err := mysql.GetPostByID(postID)
	if err != nil {
		zap.L().Error("mysql.GetPostByID failed", zap.Int64("post_id", postID), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if post == nil {
		return nil, errorx.ErrNotFound
	}

	comments, err := mysql.GetCommentsByPostID(postID)
	if err != nil {
		zap.L().Error("mysql.GetCommentsByPostID failed", zap.Int64("post_id", postID), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if len(comments) == 0 {
		return make([]*models.ApiCommentDetail, 0), nil
	}

	// 批量取分数和投票状态
	ids := make([]string, 0, len(comments))
	for _, c := range comments {
		ids = append(ids, strconv.FormatInt(c.ID, 10))
	}
	scores, err := redis.GetTargetsScores(models.VoteTargetComment, ids)
	if err != nil {
		zap.L().Error("redis.GetTargetsScores failed", zap.Int64("post_id", postID), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	voteStatus, err := redis.BatchGetVoteStatus(models.VoteTargetComment,
		strconv.FormatInt(viewerID, 10), ids)
	if err != nil {
		zap.L().Error("redis.BatchGetVoteStatus failed", zap.Int64("post_id", postID), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	// 组装树：评论按时间升序，父节点一定先于子节点出现
	nodes := make(map[int64]*models.ApiCommentDetail, len(comments))
	tree := make([]*models.ApiCommentDetail, 0)
	for i, c := range comments {
		var authorName string
		if c.Author != nil {
			authorName = c.Author.Username
		}
		node := &models.ApiCommentDetail{
			Comment:    c,
			AuthorName: authorName,
			Score:      scores[i],
			VoteStatus: voteStatus[ids[i]],
			Children:   make([]*models.ApiCommentDetail, 0),
		}
		nodes[c.ID] = node

		if c.ParentID == 0 {
			tree = append(tree, node)
		} else if parent, ok := nodes[c.ParentID]; ok {
			parent.Children = append(parent.Children, node)
		} else {
			// 父评论已被删除时把回复提升为顶层，不丢数据
			tree = append(tree, node)
		}
	}
	return tree, nil
}

// UpdateComment 编辑评论，只有作者本人可以
func UpdateComment(userID, commentID int64, p *models.ParamCommentUpdate) error {
	comment, err := mysql.GetCommentByID(commentID)
	if err != nil {
		zap.L().Error("mysql.GetCommentByID failed", zap.Int64("comment_id", commentID), zap.Error(err))
		return errorx.ErrServerBusy
	}
	if comment == nil {
		return errorx.ErrNotFound
	}

	actor, err := getActor(userID)
	if err != nil {
		return err
	}
	if !CanEditComment(actor, comment) {
		return errorx.ErrNoPermission
	}

	if err := mysql.UpdateCommentContent(commentID, p.Content); err != nil {
		zap.L().Error("mysql.UpdateCommentContent failed", zap.Int64("comment_id", commentID), zap.Error(err))
		return errorx.ErrServerBusy
	}
	return nil
}

// DeleteComment 删除评论
// 权限：评论作者、全站管理员、帖子作者、帖子所在社区的版主
func DeleteComment(userID, commentID int64) error {
	comment, err := mysql.GetCommentByID(commentID)
	if err != nil {
		zap.L().Error("mysql.GetCommentByID failed", zap.Int64("comment_id", commentID), zap.Error(err))
		return errorx.ErrServerBusy
	}
	if comment == nil {
		return errorx.ErrNotFound
	}

	// 版主判断需要帖子连同社区版主列表一起加载
	post, err := mysql.GetPostByIDWithPreload(comment.PostID)
	if err != nil {
		zap.L().Error("mysql.GetPostByIDWithPreload failed", zap.Int64("post_id", comment.PostID), zap.Error(err))
		return errorx.ErrServerBusy
	}
	if post == nil {
		return errorx.ErrNotFound
	}

	actor, err := getActor(userID)
	if err != nil {
		return err
	}
	if !CanDeleteComment(actor, comment, post) {
		return errorx.ErrNoPermission
	}

	removedIDs, err := mysql.DeleteComment(commentID)
	if err != nil {
		zap.L().Error("mysql.DeleteComment failed", zap.Int64("comment_id", commentID), zap.Error(err))
		return errorx.ErrServerBusy
	}

	// 事务提交后清理评论的投票集合，失败只记日志
	idStrs := make([]string, 0, len(removedIDs))
	for _, id := range removedIDs {
		idStrs = append(idStrs, strconv.FormatInt(id, 10))
	}
	if err := redis.RemoveVoteLedger(models.VoteTargetComment, idStrs...); err != nil {
		zap.L().Error("redis.RemoveVoteLedger failed", zap.Int64("comment_id", commentID), zap.Error(err))
	}
	return nil
}
