package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Local 本地磁盘存储后端
// 按 kind/年/月/日 分目录存放，文件名用 uuid 避免冲突和路径穿越
type Local struct {
	baseDir string
	baseURL string
}

func NewLocal(baseDir, baseURL string) (*Local, error) {
	if baseDir == "" {
		return nil, fmt.Errorf("local storage base_dir is empty")
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir failed: %w", err)
	}
	return &Local{
		baseDir: baseDir,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}, nil
}

// Store 写入文件并返回访问 URL
func (l *Local) Store(ctx context.Context, r io.Reader, filename string, kind MediaKind) (string, error) {
	// 存储路径只保留原始文件的扩展名，文件名重新生成
	ext := strings.ToLower(path.Ext(filename))
	now := time.Now()
	rel := path.Join(string(kind), now.Format("2006/01/02"), uuid.NewString()+ext)

	dst := filepath.Join(l.baseDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("create media dir failed: %w", err)
	}

	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create media file failed: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		// 写入失败时清掉半成品文件
		_ = os.Remove(dst)
		return "", fmt.Errorf("write media file failed: %w", err)
	}

	return l.ResolveURL(rel), nil
}

// Remove 删除文件，文件已不存在视为成功
func (l *Local) Remove(ctx context.Context, url string) error {
	rel := strings.TrimPrefix(url, l.baseURL+"/")
	dst := filepath.Join(l.baseDir, filepath.FromSlash(rel))

	// 防御路径穿越：删除目标必须仍在 baseDir 之内
	absBase, err := filepath.Abs(l.baseDir)
	if err != nil {
		return err
	}
	absDst, err := filepath.Abs(dst)
	if err != nil {
		return err
	}
	if !strings.HasPrefix(absDst, absBase+string(os.PathSeparator)) {
		return fmt.Errorf("invalid media url: %s", url)
	}

	if err := os.Remove(absDst); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove media file failed: %w", err)
	}
	return nil
}

func (l *Local) ResolveURL(reference string) string {
	return l.baseURL + "/" + strings.TrimPrefix(reference, "/")
}
