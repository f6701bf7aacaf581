package mysql

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"campfire/models"
)

// CreateComment 创建评论
func CreateComment(comment *models.Comment) error {
	if err := db.Create(comment).Error; err != nil {
		return fmt.Errorf("insert comment failed: %w", err)
	}
	return nil
}

// GetCommentByID 根据评论ID查询评论
func GetCommentByID(cid int64) (comment *models.Comment, err error) {
	comment = new(models.Comment)
	err = db.Where("comment_id = ?", cid).First(comment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query comment by id failed: %w", err)
	}
	return
}

// GetCommentsByPostID 查询帖子下的全部评论（带作者），按时间升序
// 树形结构在 Logic 层组装
func GetCommentsByPostID(pid int64) (comments []*models.Comment, err error) {
	comments = make([]*models.Comment, 0)
	err = db.Preload("Author").
		Where("post_id = ?", pid).
		Order("create_time ASC").
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("query comments by post id failed: %w", err)
	}
	return
}

// CountCommentsByPostID 统计帖子的评论数
func CountCommentsByPostID(pid int64) (count int64, err error) {
	err = db.Model(&models.Comment{}).Where("post_id = ?", pid).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count comments failed: %w", err)
	}
	return
}

// UpdateCommentContent 更新评论内容
func UpdateCommentContent(cid int64, content string) error {
	err := db.Model(&models.Comment{}).
		Where("comment_id = ?", cid).
		Update("content", content).Error
	if err != nil {
		return fmt.Errorf("update comment failed: %w", err)
	}
	return nil
}

// DeleteComment 删除评论及其所有子回复
// 楼中楼的子回复跟着父评论一起删，放在一个事务里
func DeleteComment(cid int64) (removedIDs []int64, err error) {
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Comment{}).
			Where("comment_id = ? OR parent_id = ?", cid, cid).
			Pluck("comment_id", &removedIDs).Error; err != nil {
			return fmt.Errorf("collect reply ids failed: %w", err)
		}
		if err := tx.Where("comment_id = ? OR parent_id = ?", cid, cid).
			Delete(&models.Comment{}).Error; err != nil {
			return fmt.Errorf("delete comment failed: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return removedIDs, nil
}
