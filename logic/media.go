package logic

import (
	"context"
	"mime/multipart"
	"strings"
	"time"

	"campfire/dao/mysql"
	"campfire/models"
	"campfire/pkg/errorx"
	"campfire/pkg/mq"
	"campfire/pkg/snowflake"
	"campfire/pkg/storage"

	"go.uber.org/zap"
)

// 媒体扩展名固定白名单，大小写不敏感
var (
	imageExts = map[string]struct{}{
		"jpg": {}, "jpeg": {}, "png": {}, "gif": {},
	}
	videoExts = map[string]struct{}{
		"mp4": {}, "mov": {}, "avi": {}, "webm": {},
	}
)

// ClassifyMedia 根据文件名推导媒体类型
// 小写化后取最后一个 '.' 之后的部分比对白名单，比不上的归为 none
func ClassifyMedia(filename string) string {
	name := strings.ToLower(filename)
	idx := strings.LastIndex(name, ".")
	if idx < 0 || idx == len(name)-1 {
		return models.MediaTypeNone
	}
	ext := name[idx+1:]
	if _, ok := imageExts[ext]; ok {
		return models.MediaTypeImage
	}
	if _, ok := videoExts[ext]; ok {
		return models.MediaTypeVideo
	}
	return models.MediaTypeNone
}

// AttachMedia 给帖子挂载媒体附件
//
// 边界校验在写入任何东西之前完成：只要有一个文件的扩展名不在白名单里，
// 整个请求按 ValidationError 拒绝，不产生部分写入。
// 字节内容交给外部存储，这里只落 URL 记录。
func AttachMedia(ctx context.Context, userID, postID int64, files []*multipart.FileHeader) ([]*models.PostMedia, error) {
	// 1. 帖子必须存在
	post, err := mysql.GetPostByID(postID)
	if err != nil {
		zap.L().Error("mysql.GetPostByID failed", zap.Int64("post_id", postID), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if post == nil {
		return nil, errorx.ErrNotFound
	}

	// 2. 权限：附件跟随帖子本体，只有作者和管理员能动
	actor, err := getActor(userID)
	if err != nil {
		return nil, err
	}
	if !CanModeratePost(actor, post) {
		return nil, errorx.ErrNoPermission
	}

	// 3. 先整体校验扩展名，失败时不碰存储
	if len(files) == 0 {
		return nil, errorx.ErrInvalidParam
	}
	for _, fh := range files {
		if ClassifyMedia(fh.Filename) == models.MediaTypeNone {
			return nil, errorx.Newf(errorx.CodeMediaNotAllowed,
				"不支持的文件类型: %s", fh.Filename)
		}
	}

	// 4. 逐个写入存储并落库
	records := make([]*models.PostMedia, 0, len(files))
	stored := make([]string, 0, len(files))
	for _, fh := range files {
		kind := ClassifyMedia(fh.Filename)

		f, err := fh.Open()
		if err != nil {
			zap.L().Error("open upload file failed", zap.String("filename", fh.Filename), zap.Error(err))
			rollbackStored(ctx, stored)
			return nil, errorx.ErrServerBusy
		}

		url, err := storage.Get().Store(ctx, f, fh.Filename, storage.MediaKind(kind))
		_ = f.Close()
		if err != nil {
			zap.L().Error("storage.Store failed", zap.String("filename", fh.Filename), zap.Error(err))
			rollbackStored(ctx, stored)
			return nil, errorx.ErrServerBusy
		}
		stored = append(stored, url)

		records = append(records, &models.PostMedia{
			ID:        snowflake.GenID(),
			PostID:    postID,
			URL:       url,
			MediaType: kind,
		})
	}

	if err := mysql.CreateMediaBatch(records); err != nil {
		zap.L().Error("mysql.CreateMediaBatch failed", zap.Int64("post_id", postID), zap.Error(err))
		// 落库失败时已写入的文件交给清理队列
		rollbackStored(ctx, stored)
		return nil, errorx.ErrServerBusy
	}

	return records, nil
}

// rollbackStored 把已写入存储但没有落库的文件丢进清理队列
func rollbackStored(ctx context.Context, urls []string) {
	for _, url := range urls {
		mq.PublishMediaCleanup(ctx, mq.MediaCleanupEvent{
			URL:     url,
			Deleted: time.Now().Unix(),
		})
	}
}

// DetachMedia 移除帖子的一个媒体附件
// 媒体ID不存在、或不属于给定帖子时返回 NotFound（显式报错，不做静默跳过）
func DetachMedia(ctx context.Context, userID, postID, mediaID int64) error {
	media, err := mysql.GetMediaByID(mediaID)
	if err != nil {
		zap.L().Error("mysql.GetMediaByID failed", zap.Int64("media_id", mediaID), zap.Error(err))
		return errorx.ErrServerBusy
	}
	if media == nil || media.PostID != postID {
		return errorx.ErrNotFound
	}

	post, err := mysql.GetPostByID(postID)
	if err != nil {
		zap.L().Error("mysql.GetPostByID failed", zap.Int64("post_id", postID), zap.Error(err))
		return errorx.ErrServerBusy
	}
	if post == nil {
		return errorx.ErrNotFound
	}

	actor, err := getActor(userID)
	if err != nil {
		return err
	}
	if !CanModeratePost(actor, post) {
		return errorx.ErrNoPermission
	}

	if err := mysql.DeleteMedia(mediaID); err != nil {
		zap.L().Error("mysql.DeleteMedia failed", zap.Int64("media_id", mediaID), zap.Error(err))
		return errorx.ErrServerBusy
	}

	// 记录删掉后文件异步清理
	mq.PublishMediaCleanup(ctx, mq.MediaCleanupEvent{
		URL:     media.URL,
		PostID:  postID,
		Deleted: time.Now().Unix(),
	})
	return nil
}

// CleanupMediaFile 媒体清理消费者的处理函数，从存储后端删掉文件
func CleanupMediaFile(ctx context.Context, ev mq.MediaCleanupEvent) error {
	return storage.Get().Remove(ctx, ev.URL)
}
