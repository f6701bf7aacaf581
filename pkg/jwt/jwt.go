package jwt

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type UserClaims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

const AccessTokenExpireDuration = time.Hour * 2
const RefreshTokenExpireDuration = time.Hour * 24 * 30

var mySecret = []byte("campfire照亮每一个社区")

var ErrInvalidToken = errors.New("invalid token")

// GenToken 生成访问令牌和刷新令牌
func GenToken(userID int64, username string) (aToken, rToken string, err error) {
	c := UserClaims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(AccessTokenExpireDuration)),
			Issuer:    "campfire",
		},
	}
	aToken, err = jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(mySecret)
	if err != nil {
		return "", "", err
	}

	// Refresh Token 只带 userID，不带业务字段
	rToken, err = jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(RefreshTokenExpireDuration)),
		Issuer:    "campfire",
	}).SignedString(mySecret)
	if err != nil {
		return "", "", err
	}

	return aToken, rToken, nil
}

// ParseToken 解析访问令牌
func ParseToken(tokenString string) (*UserClaims, error) {
	var mc = new(UserClaims)
	token, err := jwt.ParseWithClaims(tokenString, mc, func(token *jwt.Token) (interface{}, error) {
		return mySecret, nil
	})
	if err != nil {
		return nil, err
	}
	if token.Valid {
		return mc, nil
	}
	return nil, ErrInvalidToken
}

// ParseRefreshToken 解析刷新令牌，返回其中的用户ID
// 用户是否仍然存在由调用方查库确认
func ParseRefreshToken(rTokenString string) (userID int64, err error) {
	claims := new(jwt.RegisteredClaims)
	token, err := jwt.ParseWithClaims(rTokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return mySecret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	userID, err = strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return userID, nil
}
