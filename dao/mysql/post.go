package mysql

import (
	"errors"
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"campfire/models"
)

// CreatePost 创建帖子
// DAO 层只返回错误，不打印日志，由上层统一处理
func CreatePost(post *models.Post) error {
	if err := db.Create(post).Error; err != nil {
		return fmt.Errorf("insert post failed: %w", err)
	}
	return nil
}

// GetPostByID 根据帖子ID查询帖子
// 查不到返回 nil，不是错误
func GetPostByID(pid int64) (post *models.Post, err error) {
	post = new(models.Post)
	err = db.Where("post_id = ?", pid).First(post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query post by id failed: %w", err)
	}
	return
}

// GetPostByIDWithPreload 查询帖子并预加载作者、社区（含版主列表）
// 版主列表是权限判断需要的：删除评论时要知道 actor 是否是帖子所在社区的版主
func GetPostByIDWithPreload(pid int64) (post *models.Post, err error) {
	post = new(models.Post)
	err = db.Preload("Author").
		Preload("Community").
		Preload("Community.Moderators").
		Where("post_id = ?", pid).
		First(post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query post by id with preload failed: %w", err)
	}
	return
}

// GetPostListByIDsWithPreload 根据ID列表查询帖子详情（带预加载）
// Preload 把 1+N+N 次查询压到 3 次
func GetPostListByIDsWithPreload(ids []string) (posts []*models.Post, err error) {
	if len(ids) == 0 {
		return nil, nil
	}

	posts = make([]*models.Post, 0, len(ids))
	err = db.Preload("Author").
		Preload("Community").
		Where("post_id IN ?", ids).
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("query post list by ids with preload failed: %w", err)
	}

	// Redis 返回的 ids 是按分数/时间排序的，结果要保持同样的顺序
	postMap := make(map[string]*models.Post, len(posts))
	for _, post := range posts {
		postMap[strconv.FormatInt(post.ID, 10)] = post
	}

	orderedPosts := make([]*models.Post, 0, len(ids))
	for _, id := range ids {
		if post, ok := postMap[id]; ok {
			orderedPosts = append(orderedPosts, post)
		}
	}
	return orderedPosts, nil
}

// UpdatePost 更新帖子的标题和内容
func UpdatePost(pid int64, title, content string) error {
	err := db.Model(&models.Post{}).
		Where("post_id = ?", pid).
		Updates(map[string]interface{}{
			"title":   title,
			"content": content,
		}).Error
	if err != nil {
		return fmt.Errorf("update post failed: %w", err)
	}
	return nil
}

// DeletePostCascade 在一个事务里级联删除帖子及其子资源
// 评论、媒体记录、分享记录、帖子本体要么全删掉，要么全保留
// 返回被删评论的ID和媒体文件URL，供调用方在提交后清理 Redis 和 blob 存储
func DeletePostCascade(pid int64) (commentIDs []int64, mediaURLs []string, err error) {
	err = db.Transaction(func(tx *gorm.DB) error {
		// 先收集事务提交后需要异步清理的引用
		if err := tx.Model(&models.Comment{}).
			Where("post_id = ?", pid).
			Pluck("comment_id", &commentIDs).Error; err != nil {
			return fmt.Errorf("collect comment ids failed: %w", err)
		}
		if err := tx.Model(&models.PostMedia{}).
			Where("post_id = ?", pid).
			Pluck("url", &mediaURLs).Error; err != nil {
			return fmt.Errorf("collect media urls failed: %w", err)
		}

		if err := tx.Where("post_id = ?", pid).Delete(&models.Comment{}).Error; err != nil {
			return fmt.Errorf("delete comments failed: %w", err)
		}
		if err := tx.Where("post_id = ?", pid).Delete(&models.PostMedia{}).Error; err != nil {
			return fmt.Errorf("delete media failed: %w", err)
		}
		if err := tx.Where("post_id = ?", pid).Delete(&models.Share{}).Error; err != nil {
			return fmt.Errorf("delete shares failed: %w", err)
		}
		if err := tx.Where("post_id = ?", pid).Delete(&models.Post{}).Error; err != nil {
			return fmt.Errorf("delete post failed: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return commentIDs, mediaURLs, nil
}
