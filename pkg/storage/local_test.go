package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStoreAndRemove(t *testing.T) {
	dir := t.TempDir()
	l, err := NewLocal(dir, "http://example.com/media/")
	require.NoError(t, err)

	url, err := l.Store(context.Background(), strings.NewReader("fake png bytes"), "pic.PNG", KindImage)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "http://example.com/media/image/"))
	// 原始文件名不进存储路径，只保留小写扩展名
	assert.True(t, strings.HasSuffix(url, ".png"))
	assert.NotContains(t, url, "pic")

	// 文件确实落盘
	rel := strings.TrimPrefix(url, "http://example.com/media/")
	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(rel)))
	require.NoError(t, err)
	assert.Equal(t, "fake png bytes", string(data))

	require.NoError(t, l.Remove(context.Background(), url))
	_, err = os.Stat(filepath.Join(dir, filepath.FromSlash(rel)))
	assert.True(t, os.IsNotExist(err))

	// 文件已不存在时再删一次视为成功
	require.NoError(t, l.Remove(context.Background(), url))
}

func TestLocalRemoveRejectsTraversal(t *testing.T) {
	dir := t.TempDir()
	l, err := NewLocal(dir, "http://example.com/media")
	require.NoError(t, err)

	err = l.Remove(context.Background(), "http://example.com/media/../../etc/passwd")
	assert.Error(t, err)
}

func TestLocalResolveURL(t *testing.T) {
	l, err := NewLocal(t.TempDir(), "http://example.com/media/")
	require.NoError(t, err)

	assert.Equal(t, "http://example.com/media/image/a.png", l.ResolveURL("image/a.png"))
	assert.Equal(t, "http://example.com/media/image/a.png", l.ResolveURL("/image/a.png"))
}
