package controller

import (
	"github.com/gin-gonic/gin"

	"campfire/logic"
	"campfire/models"
	"campfire/pkg/errorx"
)

// CreateCommentHandler 创建评论
// @Summary 创建评论
// @Description 创建评论，parent_id 不为空时为楼中楼回复
// @Tags 评论相关
// @Accept application/json
// @Produce application/json
// @Param Authorization header string true "Bearer 用户令牌"
// @Param object body models.ParamComment true "创建评论参数"
// @Success 200 {object} ResponseData
// @Router /comment [post]
func CreateCommentHandler(c *gin.Context) {
	userID, err := GetCurrentUser(c)
	if err != nil {
		ResponseError(c, errorx.ErrNeedLogin)
		return
	}

	p := new(models.ParamComment)
	if err := c.ShouldBindJSON(p); err != nil {
		ResponseError(c, errorx.ErrInvalidParam)
		return
	}

	commentID, err := logic.CreateComment(userID, p)
	if err != nil {
		HandleError(c, err)
		return
	}
	ResponseSuccess(c, gin.H{"comment_id": commentID})
}

// GetCommentListHandler 获取帖子的评论树
// @Summary 获取评论列表
// @Description 按时间顺序返回帖子的评论树，带分数和当前用户投票状态
// @Tags 评论相关
// @Produce application/json
// @Param id path string true "帖子ID"
// @Success 200 {object} ResponseData{data=[]models.ApiCommentDetail}
// @Router /post/{id}/comments [get]
func GetCommentListHandler(c *gin.Context) {
	postID, err := stringToInt64(c.Param("id"))
	if err != nil {
		ResponseError(c, errorx.ErrInvalidParam)
		return
	}

	data, err := logic.GetCommentTree(postID, getViewerID(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	ResponseSuccess(c, data)
}

// UpdateCommentHandler 编辑评论
// @Summary 编辑评论
// @Description 编辑评论内容，只有作者本人可操作
// @Tags 评论相关
// @Accept application/json
// @Produce application/json
// @Param Authorization header string true "Bearer 用户令牌"
// @Param id path string true "评论ID"
// @Param object body models.ParamCommentUpdate true "编辑评论参数"
// @Success 200 {object} ResponseData
// @Router /comment/{id} [put]
func UpdateCommentHandler(c *gin.Context) {
	userID, err := GetCurrentUser(c)
	if err != nil {
		ResponseError(c, errorx.ErrNeedLogin)
		return
	}

	commentID, err := stringToInt64(c.Param("id"))
	if err != nil {
		ResponseError(c, errorx.ErrInvalidParam)
		return
	}

	p := new(models.ParamCommentUpdate)
	if err := c.ShouldBindJSON(p); err != nil {
		ResponseError(c, errorx.ErrInvalidParam)
		return
	}

	if err := logic.UpdateComment(userID, commentID, p); err != nil {
		HandleError(c, err)
		return
	}
	ResponseSuccess(c, nil)
}

// DeleteCommentHandler 删除评论
// @Summary 删除评论
// @Description 删除评论及其直接回复，作者、管理员、帖子作者和社区版主可操作
// @Tags 评论相关
// @Produce application/json
// @Param Authorization header string true "Bearer 用户令牌"
// @Param id path string true "评论ID"
// @Success 200 {object} ResponseData
// @Router /comment/{id} [delete]
func DeleteCommentHandler(c *gin.Context) {
	userID, err := GetCurrentUser(c)
	if err != nil {
		ResponseError(c, errorx.ErrNeedLogin)
		return
	}

	commentID, err := stringToInt64(c.Param("id"))
	if err != nil {
		ResponseError(c, errorx.ErrInvalidParam)
		return
	}

	if err := logic.DeleteComment(userID, commentID); err != nil {
		HandleError(c, err)
		return
	}
	ResponseSuccess(c, nil)
}
