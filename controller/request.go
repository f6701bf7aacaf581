package controller

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

var ErrorUserNotLogin = errors.New("用户未登录")

// GetCurrentUser 从 Gin 上下文中获取当前登录的用户ID
func GetCurrentUser(c *gin.Context) (userID int64, err error) {
	// JWT 中间件认证成功后会往上下文里写入 UserID
	uid, ok := c.Get(CtxUserIDKey)
	if !ok {
		err = ErrorUserNotLogin
		return
	}

	userID, ok = uid.(int64)
	if !ok {
		err = ErrorUserNotLogin
		return
	}
	return userID, nil
}

// getViewerID 获取当前用户ID，未登录返回 0
// 详情/列表这类接口允许匿名访问，0 表示游客视角
func getViewerID(c *gin.Context) int64 {
	uid, ok := c.Get(CtxUserIDKey)
	if !ok {
		return 0
	}
	userID, ok := uid.(int64)
	if !ok {
		return 0
	}
	return userID
}

// stringToInt64 将字符串转换为int64
func stringToInt64(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

// getPageInfo 从Gin上下文中获取分页参数
func getPageInfo(c *gin.Context) (page, size int64) {
	// page默认为1
	pageStr := c.Query("page")
	if pageStr == "" {
		page = 1
	} else {
		page, _ = strconv.ParseInt(pageStr, 10, 64)
		if page <= 0 {
			page = 1
		}
	}

	// size默认为10，限制最大100
	sizeStr := c.Query("size")
	if sizeStr == "" {
		size = 10
	} else {
		size, _ = strconv.ParseInt(sizeStr, 10, 64)
		if size <= 0 || size > 100 {
			size = 10
		}
	}

	return page, size
}
