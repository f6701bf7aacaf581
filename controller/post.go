package controller

import (
	"github.com/gin-gonic/gin"

	"campfire/logic"
	"campfire/models"
	"campfire/pkg/errorx"
)

// CreatePostHandler 创建帖子
// @Summary 创建帖子
// @Description 创建帖子接口，社区ID可选
// @Tags 帖子相关
// @Accept application/json
// @Produce application/json
// @Param Authorization header string true "Bearer 用户令牌"
// @Param object body models.ParamPost true "创建帖子参数"
// @Success 200 {object} ResponseData
// @Router /post [post]
func CreatePostHandler(c *gin.Context) {
	// 1. 获取当前请求的用户ID
	userID, err := GetCurrentUser(c)
	if err != nil {
		ResponseError(c, errorx.ErrNeedLogin)
		return
	}

	// 2. 绑定参数
	p := new(models.ParamPost)
	if err := c.ShouldBindJSON(p); err != nil {
		ResponseError(c, errorx.ErrInvalidParam)
		return
	}
	// AuthorID 从 Token 里取，不信任前端传值
	p.AuthorID = userID

	// 3. 业务处理
	postID, err := logic.CreatePost(p)
	if err != nil {
		HandleError(c, err)
		return
	}

	// 4. 返回响应
	ResponseSuccess(c, gin.H{"post_id": postID})
}

// GetPostDetailHandler 获取帖子详情
// @Summary 获取帖子详情
// @Description 帖子详情，包含分数、当前用户投票状态、媒体列表和评论数
// @Tags 帖子相关
// @Produce application/json
// @Param id path string true "帖子ID"
// @Success 200 {object} ResponseData{data=models.ApiPostDetail}
// @Router /post/{id} [get]
func GetPostDetailHandler(c *gin.Context) {
	postID, err := stringToInt64(c.Param("id"))
	if err != nil {
		ResponseError(c, errorx.ErrInvalidParam)
		return
	}

	// 允许匿名访问，游客视角下投票状态恒为 0
	data, err := logic.GetPostByID(postID, getViewerID(c))
	if err != nil {
		HandleError(c, err)
		return
	}

	ResponseSuccess(c, data)
}

// GetPostListHandler 获取帖子列表
// @Summary 获取帖子列表
// @Description 分页获取帖子列表，支持按社区过滤和时间/分数排序
// @Tags 帖子相关
// @Produce application/json
// @Param page query int false "页码"
// @Param size query int false "每页数量"
// @Param order query string false "排序规则 time/score"
// @Param community_id query int false "社区ID"
// @Success 200 {object} ResponseData{data=[]models.ApiPostDetail}
// @Router /posts [get]
func GetPostListHandler(c *gin.Context) {
	p := &models.ParamPostList{
		Page:  1,
		Size:  10,
		Order: models.OrderTime, // 默认按时间排序
	}
	if err := c.ShouldBindQuery(p); err != nil {
		ResponseError(c, errorx.ErrInvalidParam)
		return
	}

	data, err := logic.GetPostListNew(p, getViewerID(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	ResponseSuccess(c, data)
}

// SearchPostHandler 帖子全文搜索
// @Summary 搜索帖子
// @Description 按关键字在标题和正文中全文搜索
// @Tags 帖子相关
// @Produce application/json
// @Param keyword query string true "搜索关键字"
// @Param page query int false "页码"
// @Param size query int false "每页数量"
// @Success 200 {object} ResponseData{data=[]models.ApiPostDetail}
// @Router /posts/search [get]
func SearchPostHandler(c *gin.Context) {
	p := &models.ParamPostSearch{
		Page: 1,
		Size: 10,
	}
	if err := c.ShouldBindQuery(p); err != nil {
		ResponseError(c, errorx.ErrInvalidParam)
		return
	}

	data, err := logic.SearchPosts(p, getViewerID(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	ResponseSuccess(c, data)
}

// UpdatePostHandler 编辑帖子
// @Summary 编辑帖子
// @Description 编辑帖子标题和正文，只有作者或管理员可操作
// @Tags 帖子相关
// @Accept application/json
// @Produce application/json
// @Param Authorization header string true "Bearer 用户令牌"
// @Param id path string true "帖子ID"
// @Param object body models.ParamPostUpdate true "编辑帖子参数"
// @Success 200 {object} ResponseData
// @Router /post/{id} [put]
func UpdatePostHandler(c *gin.Context) {
	userID, err := GetCurrentUser(c)
	if err != nil {
		ResponseError(c, errorx.ErrNeedLogin)
		return
	}

	postID, err := stringToInt64(c.Param("id"))
	if err != nil {
		ResponseError(c, errorx.ErrInvalidParam)
		return
	}

	p := new(models.ParamPostUpdate)
	if err := c.ShouldBindJSON(p); err != nil {
		ResponseError(c, errorx.ErrInvalidParam)
		return
	}

	if err := logic.UpdatePost(userID, postID, p); err != nil {
		HandleError(c, err)
		return
	}
	ResponseSuccess(c, nil)
}

// DeletePostHandler 删除帖子
// @Summary 删除帖子
// @Description 删除帖子及其评论、媒体、分享记录和投票数据
// @Tags 帖子相关
// @Produce application/json
// @Param Authorization header string true "Bearer 用户令牌"
// @Param id path string true "帖子ID"
// @Success 200 {object} ResponseData
// @Router /post/{id} [delete]
func DeletePostHandler(c *gin.Context) {
	userID, err := GetCurrentUser(c)
	if err != nil {
		ResponseError(c, errorx.ErrNeedLogin)
		return
	}

	postID, err := stringToInt64(c.Param("id"))
	if err != nil {
		ResponseError(c, errorx.ErrInvalidParam)
		return
	}

	if err := logic.DeletePost(userID, postID); err != nil {
		HandleError(c, err)
		return
	}
	ResponseSuccess(c, nil)
}

// SharePostHandler 分享帖子
// @Summary 分享帖子
// @Description 记录帖子分享，同一用户对同一帖子同一渠道重复分享是幂等的
// @Tags 帖子相关
// @Accept application/json
// @Produce application/json
// @Param Authorization header string true "Bearer 用户令牌"
// @Param id path string true "帖子ID"
// @Param object body models.ParamShare true "分享参数"
// @Success 200 {object} ResponseData
// @Router /post/{id}/share [post]
func SharePostHandler(c *gin.Context) {
	userID, err := GetCurrentUser(c)
	if err != nil {
		ResponseError(c, errorx.ErrNeedLogin)
		return
	}

	postID, err := stringToInt64(c.Param("id"))
	if err != nil {
		ResponseError(c, errorx.ErrInvalidParam)
		return
	}

	p := new(models.ParamShare)
	if err := c.ShouldBindJSON(p); err != nil {
		ResponseError(c, errorx.ErrInvalidParam)
		return
	}

	share, err := logic.SharePost(userID, postID, p.Destination)
	if err != nil {
		HandleError(c, err)
		return
	}
	ResponseSuccess(c, share)
}
