package redis

import (
	"fmt"
	"time"
)

// SetUserToken 存储用户的 Access Token 和 Refresh Token
// 单点登录依赖这份记录：同一用户重新登录后旧 Token 立即失效
func SetUserToken(userID int64, aToken, rToken string, aExp, rExp time.Duration) error {
	pipe := rdb.Pipeline()
	pipe.Set(ctx, getRedisKey(KeyUserAccessToken+fmt.Sprint(userID)), aToken, aExp)
	pipe.Set(ctx, getRedisKey(KeyUserRefreshToken+fmt.Sprint(userID)), rToken, rExp)

	_, err := pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("set user token pipeline exec failed (user_id: %d): %w", userID, err)
	}
	return nil
}

// GetUserAccessToken 获取用户当前有效的 Access Token
func GetUserAccessToken(userID int64) (string, error) {
	return rdb.Get(ctx, getRedisKey(KeyUserAccessToken+fmt.Sprint(userID))).Result()
}

// GetUserRefreshToken 获取用户当前有效的 Refresh Token
func GetUserRefreshToken(userID int64) (string, error) {
	return rdb.Get(ctx, getRedisKey(KeyUserRefreshToken+fmt.Sprint(userID))).Result()
}

// DeleteUserToken 删除用户的 Token（登出用）
func DeleteUserToken(userID int64) error {
	pipe := rdb.Pipeline()
	pipe.Del(ctx, getRedisKey(KeyUserAccessToken+fmt.Sprint(userID)))
	pipe.Del(ctx, getRedisKey(KeyUserRefreshToken+fmt.Sprint(userID)))
	_, err := pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete user token pipeline exec failed (user_id: %d): %w", userID, err)
	}
	return nil
}
