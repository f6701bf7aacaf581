package storage

import (
	"context"
	"fmt"
	"io"

	"campfire/settings"
)

// MediaKind 媒体类型标签
type MediaKind string

const (
	KindImage MediaKind = "image"
	KindVideo MediaKind = "video"
	KindNone  MediaKind = "none"
)

// Storage 媒体文件存储后端
// 核心只依赖这一个接口：写入字节流拿到可访问的 URL
// 具体后端（本地磁盘、对象存储等）由配置选择，不靠子类化或文件名嗅探
type Storage interface {
	// Store 写入文件内容，返回可被客户端访问的 URL
	Store(ctx context.Context, r io.Reader, filename string, kind MediaKind) (url string, err error)
	// Remove 按 Store 返回的 URL 删除文件，文件不存在不视为错误
	Remove(ctx context.Context, url string) error
	// ResolveURL 将存储引用转换为外部可访问的 URL
	ResolveURL(reference string) string
}

// 全局存储实例
var store Storage

// Init 根据配置选择并初始化存储后端
func Init(cfg *settings.StorageConfig) (err error) {
	if cfg == nil {
		return fmt.Errorf("storage config is nil")
	}

	switch cfg.Backend {
	case "local", "":
		store, err = NewLocal(cfg.BaseDir, cfg.BaseURL)
	default:
		err = fmt.Errorf("unknown storage backend: %s", cfg.Backend)
	}
	return
}

// Get 获取已初始化的存储实例
func Get() Storage {
	return store
}
