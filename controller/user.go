package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"campfire/logic"
	"campfire/models"
	"campfire/pkg/errorx"
)

// SignUpHandler 处理用户注册请求
// @Summary 用户注册
// @Description 用户注册接口
// @Tags 用户相关
// @Accept application/json
// @Produce application/json
// @Param object body models.ParamSignUp true "注册参数"
// @Success 200 {object} ResponseData
// @Router /signup [post]
func SignUpHandler(c *gin.Context) {
	// 1. 参数校验
	p := new(models.ParamSignUp)
	if err := c.ShouldBindJSON(p); err != nil {
		// 非validator.ValidationErrors类型错误直接返回（可能是 JSON 格式错误等）
		errs, ok := err.(validator.ValidationErrors)
		if !ok {
			ResponseError(c, errorx.ErrInvalidParam)
			return
		}
		// validator.ValidationErrors类型错误则翻译后返回
		ResponseErrorWithMsg(c, errorx.CodeInvalidParam, removeTopStruct(errs.Translate(trans)))
		return
	}

	// 2. 业务处理
	if err := logic.SignUp(p); err != nil {
		HandleError(c, err)
		return
	}

	// 3. 返回响应
	ResponseSuccess(c, nil)
}

// LoginHandler 处理用户登录请求
// @Summary 用户登录
// @Description 用户登录接口，返回双Token
// @Tags 用户相关
// @Accept application/json
// @Produce application/json
// @Param object body models.ParamLogin true "登录参数"
// @Success 200 {object} ResponseData
// @Router /login [post]
func LoginHandler(c *gin.Context) {
	var p models.ParamLogin

	// 1. 参数校验
	if err := c.ShouldBindJSON(&p); err != nil {
		errs, ok := err.(validator.ValidationErrors)
		if !ok {
			ResponseError(c, errorx.ErrInvalidParam)
			return
		}
		ResponseErrorWithMsg(c, errorx.CodeInvalidParam, removeTopStruct(errs.Translate(trans)))
		return
	}

	// 2. 业务处理
	aToken, rToken, err := logic.Login(&p)
	if err != nil {
		HandleError(c, err)
		return
	}

	// 3. 返回响应
	ResponseSuccess(c, map[string]string{
		"access_token":  aToken,
		"refresh_token": rToken,
	})
}

// RefreshTokenHandler 刷新AccessToken
// @Summary 刷新Token
// @Description 使用RefreshToken换取新的Token对
// @Tags 用户相关
// @Produce application/json
// @Param refresh_token query string true "RefreshToken"
// @Success 200 {object} ResponseData
// @Router /refresh_token [get]
func RefreshTokenHandler(c *gin.Context) {
	rt := c.Query("refresh_token")
	if rt == "" {
		ResponseError(c, errorx.ErrInvalidParam)
		return
	}

	aToken, rToken, err := logic.RefreshToken(rt)
	if err != nil {
		HandleError(c, err)
		return
	}

	ResponseSuccess(c, map[string]string{
		"access_token":  aToken,
		"refresh_token": rToken,
	})
}
