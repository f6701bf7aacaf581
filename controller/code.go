package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"campfire/pkg/errorx"
)

// CtxUserIDKey 定义 Context 中 UserID 的 Key
// 注意:将此常量定义在 controller 包中而非 middlewares 包中,是为了避免循环引用
const CtxUserIDKey = "userID"

// CodeSuccess 成功响应码，业务错误码定义在 pkg/errorx
const CodeSuccess = 1000

// ResponseData 统一响应结构体 (用于 Swagger 文档生成)
type ResponseData struct {
	Code int         `json:"code"`           // 业务响应状态码
	Msg  interface{} `json:"msg"`            // 提示信息
	Data interface{} `json:"data,omitempty"` // 数据
}

// ResponseError 返回错误响应
func ResponseError(c *gin.Context, e *errorx.CodeError) {
	c.JSON(http.StatusOK, &ResponseData{
		Code: e.Code,
		Msg:  e.Msg,
	})
}

// ResponseErrorWithMsg 返回带自定义消息的错误响应
func ResponseErrorWithMsg(c *gin.Context, code int, msg interface{}) {
	c.JSON(http.StatusOK, &ResponseData{
		Code: code,
		Msg:  msg,
	})
}

// ResponseSuccess 返回成功响应
func ResponseSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, &ResponseData{
		Code: CodeSuccess,
		Msg:  "success",
		Data: data,
	})
}

// HandleError 统一错误处理
// Logic 层返回的 *errorx.CodeError 直接透传业务错误码
// 其他错误视为系统错误，记录日志后返回服务繁忙
func HandleError(c *gin.Context, err error) {
	var codeErr *errorx.CodeError
	if errors.As(err, &codeErr) {
		ResponseError(c, codeErr)
		return
	}
	zap.L().Error("unexpected error",
		zap.String("path", c.Request.URL.Path),
		zap.Error(err))
	ResponseError(c, errorx.ErrServerBusy)
}
