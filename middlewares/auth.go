package middlewares

import (
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"campfire/controller"
	"campfire/dao/redis"
	"campfire/pkg/errorx"
	"campfire/pkg/jwt"
)

// tokenCache 本地 Token 缓存，减少 Redis 查询压力
type tokenCache struct {
	sync.RWMutex
	cache map[int64]*cacheEntry // userID -> cacheEntry
}

type cacheEntry struct {
	token      string
	expireTime time.Time
}

var (
	localCache = &tokenCache{
		cache: make(map[int64]*cacheEntry),
	}
	// 本地缓存有效期
	cacheExpireDuration = 5 * time.Minute
	// 是否启用单点登录强制校验
	// false 为降级模式：Redis 不可用时仅依赖 JWT 本身的有效性
	enableStrictSSO = false
)

// 定期清理过期缓存
func init() {
	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			cleanExpiredCache()
		}
	}()
}

func cleanExpiredCache() {
	localCache.Lock()
	defer localCache.Unlock()

	now := time.Now()
	for userID, entry := range localCache.cache {
		if now.After(entry.expireTime) {
			delete(localCache.cache, userID)
		}
	}
}

func getTokenFromCache(userID int64) (string, bool) {
	localCache.RLock()
	defer localCache.RUnlock()

	entry, exists := localCache.cache[userID]
	if !exists {
		return "", false
	}
	if time.Now().After(entry.expireTime) {
		return "", false
	}
	return entry.token, true
}

func setTokenToCache(userID int64, token string) {
	localCache.Lock()
	defer localCache.Unlock()

	localCache.cache[userID] = &cacheEntry{
		token:      token,
		expireTime: time.Now().Add(cacheExpireDuration),
	}
}

// JWTAuthMiddleware 基于JWT的认证中间件
// 认证成功后把 UserID 写入请求上下文
func JWTAuthMiddleware() func(c *gin.Context) {
	return func(c *gin.Context) {
		// 1. 获取 Authorization header
		authHeader := c.Request.Header.Get("Authorization")
		if authHeader == "" {
			controller.ResponseError(c, errorx.ErrNeedLogin)
			c.Abort()
			return
		}

		// 2. 按空格分割，格式为 Bearer <token>
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			controller.ResponseError(c, errorx.ErrInvalidToken)
			c.Abort()
			return
		}

		// 3. 解析 Token
		mc, err := jwt.ParseToken(parts[1])
		if err != nil {
			controller.ResponseError(c, errorx.ErrInvalidToken)
			c.Abort()
			return
		}

		// 4. 单点登录校验：本地缓存 + 降级策略
		if enableStrictSSO {
			if !validateTokenWithRedis(c, mc.UserID, parts[1]) {
				return
			}
		} else {
			validateTokenWithFallback(c, mc.UserID, parts[1])
			if c.IsAborted() {
				return
			}
		}

		// 5. 将当前请求的 userID 保存到请求上下文
		c.Set(controller.CtxUserIDKey, mc.UserID)
		c.Next()
	}
}

// OptionalAuthMiddleware 可选认证
// 带合法 Token 则写入 UserID，不带或非法时按游客放行，不拦截请求
func OptionalAuthMiddleware() func(c *gin.Context) {
	return func(c *gin.Context) {
		authHeader := c.Request.Header.Get("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			c.Next()
			return
		}
		mc, err := jwt.ParseToken(parts[1])
		if err != nil {
			c.Next()
			return
		}
		c.Set(controller.CtxUserIDKey, mc.UserID)
		c.Next()
	}
}

// validateTokenWithRedis 严格模式：必须校验 Redis
func validateTokenWithRedis(c *gin.Context, userID int64, token string) bool {
	// 先查本地缓存
	cachedToken, exists := getTokenFromCache(userID)
	if exists && cachedToken == token {
		return true
	}

	redisToken, err := redis.GetUserAccessToken(userID)
	if err != nil {
		controller.ResponseError(c, errorx.ErrNeedLogin)
		c.Abort()
		return false
	}

	if token != redisToken {
		controller.ResponseErrorWithMsg(c, errorx.CodeInvalidToken, "账号已在其他设备登录")
		c.Abort()
		return false
	}

	setTokenToCache(userID, token)
	return true
}

// validateTokenWithFallback 宽松模式：Redis 失败时降级
func validateTokenWithFallback(c *gin.Context, userID int64, token string) {
	cachedToken, exists := getTokenFromCache(userID)
	if exists && cachedToken == token {
		return
	}

	redisToken, err := redis.GetUserAccessToken(userID)
	if err != nil {
		// Redis 查询失败，降级处理：仅依赖 JWT 本身的有效性
		zap.L().Warn("redis token check failed, fallback to jwt only",
			zap.Int64("user_id", userID),
			zap.Error(err))
		return
	}

	if token != redisToken {
		controller.ResponseErrorWithMsg(c, errorx.CodeInvalidToken, "账号已在其他设备登录")
		c.Abort()
		return
	}

	setTokenToCache(userID, token)
}
