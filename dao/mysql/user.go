package mysql

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"campfire/models"
)

// CheckUserExist 检查用户名是否已存在
func CheckUserExist(username string) (exist bool, err error) {
	var count int64
	err = db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check user exist failed: %w", err)
	}
	return count > 0, nil
}

// InsertUser 插入新用户，密码在 Logic 层已经加密
func InsertUser(user *models.User) error {
	if err := db.Create(user).Error; err != nil {
		return fmt.Errorf("insert user failed: %w", err)
	}
	return nil
}

// GetUserByUsername 根据用户名查询用户
// 查不到返回 nil，不视为错误，由上层决定如何处理
func GetUserByUsername(username string) (user *models.User, err error) {
	user = new(models.User)
	err = db.Where("username = ?", username).First(user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query user by username failed: %w", err)
	}
	return
}

// GetUserByID 根据用户ID查询用户
func GetUserByID(uid int64) (user *models.User, err error) {
	user = new(models.User)
	err = db.Where("user_id = ?", uid).First(user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query user by id failed: %w", err)
	}
	return
}
