package logic

import (
	"campfire/dao/mysql"
	"campfire/dao/redis"
	"campfire/models"
	"campfire/pkg/errorx"
	"campfire/pkg/jwt"
	"campfire/pkg/snowflake"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// getActor 加载当前操作者，权限判断需要新鲜的角色标记
// 用户不存在时按"需要登录"处理（Token 有效但账号已被删）
func getActor(userID int64) (*models.User, error) {
	user, err := mysql.GetUserByID(userID)
	if err != nil {
		zap.L().Error("mysql.GetUserByID failed", zap.Int64("user_id", userID), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if user == nil {
		return nil, errorx.ErrNeedLogin
	}
	return user, nil
}

// SignUp 用户注册
func SignUp(p *models.ParamSignUp) error {
	// 1. 用户名查重
	exist, err := mysql.CheckUserExist(p.Username)
	if err != nil {
		zap.L().Error("mysql.CheckUserExist failed", zap.Error(err))
		return errorx.ErrServerBusy
	}
	if exist {
		return errorx.ErrUserExist
	}

	// 2. 密码加密，bcrypt 自带盐值
	hash, err := bcrypt.GenerateFromPassword([]byte(p.Password), bcrypt.DefaultCost)
	if err != nil {
		zap.L().Error("bcrypt.GenerateFromPassword failed", zap.Error(err))
		return errorx.ErrServerBusy
	}

	// 3. 入库
	user := &models.User{
		UserID:   snowflake.GenID(),
		Username: p.Username,
		Password: string(hash),
	}
	if err := mysql.InsertUser(user); err != nil {
		zap.L().Error("mysql.InsertUser failed", zap.Error(err))
		return errorx.ErrServerBusy
	}
	return nil
}

// Login 用户登录，成功后签发双 Token 并写入 Redis（单点登录）
func Login(p *models.ParamLogin) (aToken, rToken string, err error) {
	user, err := mysql.GetUserByUsername(p.Username)
	if err != nil {
		zap.L().Error("mysql.GetUserByUsername failed", zap.Error(err))
		return "", "", errorx.ErrServerBusy
	}
	if user == nil {
		return "", "", errorx.ErrUserNotExist
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(p.Password)); err != nil {
		return "", "", errorx.ErrInvalidPassword
	}

	aToken, rToken, err = jwt.GenToken(user.UserID, user.Username)
	if err != nil {
		zap.L().Error("jwt.GenToken failed", zap.Error(err))
		return "", "", errorx.ErrServerBusy
	}

	// 新 Token 覆盖旧记录，其他设备的会话随之失效
	if err := redis.SetUserToken(user.UserID, aToken, rToken,
		jwt.AccessTokenExpireDuration, jwt.RefreshTokenExpireDuration); err != nil {
		zap.L().Error("redis.SetUserToken failed", zap.Error(err))
		return "", "", errorx.ErrServerBusy
	}

	return aToken, rToken, nil
}

// RefreshToken 用刷新令牌换新的令牌对
func RefreshToken(rTokenString string) (aToken, rToken string, err error) {
	userID, err := jwt.ParseRefreshToken(rTokenString)
	if err != nil {
		return "", "", errorx.ErrInvalidToken
	}

	// 必须和 Redis 里的当前 Refresh Token 一致，被顶号的旧令牌不能续期
	stored, err := redis.GetUserRefreshToken(userID)
	if err != nil || stored != rTokenString {
		return "", "", errorx.ErrInvalidToken
	}

	user, err := mysql.GetUserByID(userID)
	if err != nil {
		zap.L().Error("mysql.GetUserByID failed", zap.Int64("user_id", userID), zap.Error(err))
		return "", "", errorx.ErrServerBusy
	}
	if user == nil {
		return "", "", errorx.ErrUserNotExist
	}

	aToken, rToken, err = jwt.GenToken(user.UserID, user.Username)
	if err != nil {
		zap.L().Error("jwt.GenToken failed", zap.Error(err))
		return "", "", errorx.ErrServerBusy
	}
	if err := redis.SetUserToken(user.UserID, aToken, rToken,
		jwt.AccessTokenExpireDuration, jwt.RefreshTokenExpireDuration); err != nil {
		zap.L().Error("redis.SetUserToken failed", zap.Error(err))
		return "", "", errorx.ErrServerBusy
	}
	return aToken, rToken, nil
}
