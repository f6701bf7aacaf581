package mysql

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"campfire/models"
)

// CreateShare 记录一次分享
// (post, user, destination) 有唯一索引，重复分享直接返回已有记录
func CreateShare(share *models.Share) (*models.Share, error) {
	existing := new(models.Share)
	err := db.Where("post_id = ? AND user_id = ? AND destination = ?",
		share.PostID, share.UserID, share.Destination).
		First(existing).Error
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("query share failed: %w", err)
	}

	if err := db.Create(share).Error; err != nil {
		return nil, fmt.Errorf("insert share failed: %w", err)
	}
	return share, nil
}

// CountSharesByPostID 统计帖子被分享的次数
func CountSharesByPostID(pid int64) (count int64, err error) {
	err = db.Model(&models.Share{}).Where("post_id = ?", pid).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count shares failed: %w", err)
	}
	return
}
