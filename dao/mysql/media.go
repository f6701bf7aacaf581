package mysql

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"campfire/models"
)

// CreateMediaBatch 批量插入媒体记录
func CreateMediaBatch(media []*models.PostMedia) error {
	if len(media) == 0 {
		return nil
	}
	if err := db.Create(media).Error; err != nil {
		return fmt.Errorf("insert media failed: %w", err)
	}
	return nil
}

// GetMediaByPostID 查询帖子的全部媒体附件
func GetMediaByPostID(pid int64) (media []*models.PostMedia, err error) {
	media = make([]*models.PostMedia, 0)
	err = db.Where("post_id = ?", pid).Order("create_time ASC").Find(&media).Error
	if err != nil {
		return nil, fmt.Errorf("query media by post id failed: %w", err)
	}
	return
}

// GetMediaByPostIDs 批量查询多个帖子的媒体附件
func GetMediaByPostIDs(pids []int64) (media []*models.PostMedia, err error) {
	if len(pids) == 0 {
		return nil, nil
	}
	media = make([]*models.PostMedia, 0)
	err = db.Where("post_id IN ?", pids).Order("create_time ASC").Find(&media).Error
	if err != nil {
		return nil, fmt.Errorf("query media by post ids failed: %w", err)
	}
	return
}

// GetMediaByID 根据媒体ID查询记录
func GetMediaByID(mid int64) (media *models.PostMedia, err error) {
	media = new(models.PostMedia)
	err = db.Where("media_id = ?", mid).First(media).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query media by id failed: %w", err)
	}
	return
}

// DeleteMedia 删除媒体记录
func DeleteMedia(mid int64) error {
	if err := db.Where("media_id = ?", mid).Delete(&models.PostMedia{}).Error; err != nil {
		return fmt.Errorf("delete media failed: %w", err)
	}
	return nil
}
