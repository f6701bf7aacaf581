package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"campfire/logic"
	"campfire/models"
	"campfire/pkg/errorx"
)

// VoteHandler 投票
// @Summary 投票
// @Description 为帖子或评论投票。direction: 1 赞成 / -1 反对 / 0 取消。
// @Description 重复投同方向的票等价于取消。返回投票后的最新分数和当前投票状态。
// @Tags 投票相关
// @Accept application/json
// @Produce application/json
// @Param Authorization header string true "Bearer 用户令牌"
// @Param object body models.ParamVoteData true "投票参数"
// @Success 200 {object} ResponseData{data=models.VoteResult}
// @Router /vote [post]
func VoteHandler(c *gin.Context) {
	// 1. 参数校验
	p := new(models.ParamVoteData)
	if err := c.ShouldBindJSON(p); err != nil {
		errs, ok := err.(validator.ValidationErrors)
		if !ok {
			ResponseError(c, errorx.ErrInvalidParam)
			return
		}
		ResponseErrorWithMsg(c, errorx.CodeInvalidParam, removeTopStruct(errs.Translate(trans)))
		return
	}

	// 2. 获取当前请求的用户ID
	userID, err := GetCurrentUser(c)
	if err != nil {
		ResponseError(c, errorx.ErrNeedLogin)
		return
	}

	// 3. 具体投票业务逻辑
	result, err := logic.VoteForTarget(userID, p)
	if err != nil {
		HandleError(c, err)
		return
	}

	// 4. 返回响应
	ResponseSuccess(c, result)
}
