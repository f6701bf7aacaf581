package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"campfire/logic"
	"campfire/models"
	"campfire/pkg/errorx"
)

// CreateCommunityHandler 创建社区
// @Summary 创建社区
// @Description 创建社区，创建者自动成为成员和版主
// @Tags 社区相关
// @Accept application/json
// @Produce application/json
// @Param Authorization header string true "Bearer 用户令牌"
// @Param object body models.ParamCommunity true "创建社区参数"
// @Success 200 {object} ResponseData
// @Router /community [post]
func CreateCommunityHandler(c *gin.Context) {
	userID, err := GetCurrentUser(c)
	if err != nil {
		ResponseError(c, errorx.ErrNeedLogin)
		return
	}

	p := new(models.ParamCommunity)
	if err := c.ShouldBindJSON(p); err != nil {
		errs, ok := err.(validator.ValidationErrors)
		if !ok {
			ResponseError(c, errorx.ErrInvalidParam)
			return
		}
		ResponseErrorWithMsg(c, errorx.CodeInvalidParam, removeTopStruct(errs.Translate(trans)))
		return
	}

	communityID, err := logic.CreateCommunity(userID, p)
	if err != nil {
		HandleError(c, err)
		return
	}
	ResponseSuccess(c, gin.H{"community_id": communityID})
}

// CommunityHandler 获取社区列表
// @Summary 获取社区列表
// @Description 查询所有社区的ID、名称和简介
// @Tags 社区相关
// @Produce application/json
// @Success 200 {object} ResponseData{data=[]models.Community}
// @Router /community [get]
func CommunityHandler(c *gin.Context) {
	data, err := logic.GetCommunityList()
	if err != nil {
		HandleError(c, err)
		return
	}
	ResponseSuccess(c, data)
}

// CommunityDetailHandler 获取社区详情
// @Summary 获取社区详情
// @Description 社区详情，包含成员数和当前用户的成员/版主身份
// @Tags 社区相关
// @Produce application/json
// @Param id path string true "社区ID"
// @Success 200 {object} ResponseData{data=models.ApiCommunityDetail}
// @Router /community/{id} [get]
func CommunityDetailHandler(c *gin.Context) {
	communityID, err := stringToInt64(c.Param("id"))
	if err != nil {
		ResponseError(c, errorx.ErrInvalidParam)
		return
	}

	data, err := logic.GetCommunityDetail(communityID, getViewerID(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	ResponseSuccess(c, data)
}

// JoinCommunityHandler 加入社区
// @Summary 加入社区
// @Description 当前用户加入社区，重复加入是幂等的
// @Tags 社区相关
// @Produce application/json
// @Param Authorization header string true "Bearer 用户令牌"
// @Param id path string true "社区ID"
// @Success 200 {object} ResponseData
// @Router /community/{id}/join [post]
func JoinCommunityHandler(c *gin.Context) {
	userID, err := GetCurrentUser(c)
	if err != nil {
		ResponseError(c, errorx.ErrNeedLogin)
		return
	}

	communityID, err := stringToInt64(c.Param("id"))
	if err != nil {
		ResponseError(c, errorx.ErrInvalidParam)
		return
	}

	if err := logic.JoinCommunity(userID, communityID); err != nil {
		HandleError(c, err)
		return
	}
	ResponseSuccess(c, nil)
}

// LeaveCommunityHandler 退出社区
// @Summary 退出社区
// @Description 当前用户退出社区，创建者不能退出自己的社区
// @Tags 社区相关
// @Produce application/json
// @Param Authorization header string true "Bearer 用户令牌"
// @Param id path string true "社区ID"
// @Success 200 {object} ResponseData
// @Router /community/{id}/leave [post]
func LeaveCommunityHandler(c *gin.Context) {
	userID, err := GetCurrentUser(c)
	if err != nil {
		ResponseError(c, errorx.ErrNeedLogin)
		return
	}

	communityID, err := stringToInt64(c.Param("id"))
	if err != nil {
		ResponseError(c, errorx.ErrInvalidParam)
		return
	}

	if err := logic.LeaveCommunity(userID, communityID); err != nil {
		HandleError(c, err)
		return
	}
	ResponseSuccess(c, nil)
}
