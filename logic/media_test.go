package logic

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campfire/dao/mysql"
	"campfire/models"
	"campfire/pkg/errorx"
)

func TestClassifyMedia(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"pic.png", models.MediaTypeImage},
		{"photo.jpg", models.MediaTypeImage},
		{"photo.jpeg", models.MediaTypeImage},
		{"anim.gif", models.MediaTypeImage},
		{"movie.mp4", models.MediaTypeVideo},
		{"clip.mov", models.MediaTypeVideo},
		{"clip.webm", models.MediaTypeVideo},
		// 扩展名大小写不敏感
		{"MOVIE.MP4", models.MediaTypeVideo},
		{"Pic.PNG", models.MediaTypeImage},
		// 白名单之外一律 none
		{"archive.zip", models.MediaTypeNone},
		{"script.sh", models.MediaTypeNone},
		// 没有扩展名
		{"noext", models.MediaTypeNone},
		{"", models.MediaTypeNone},
		// 点结尾
		{"weird.", models.MediaTypeNone},
		// 只看最后一个点
		{"a.png.exe", models.MediaTypeNone},
		{"a.exe.png", models.MediaTypeImage},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyMedia(tt.filename), "filename: %s", tt.filename)
	}
}

func TestDetachMedia(t *testing.T) {
	setupLogicTest(t)
	seedUserAndPost(t)
	require.NoError(t, mysql.InsertUser(&models.User{UserID: 3, Username: "stranger", Password: "x"}))
	require.NoError(t, mysql.CreateMediaBatch([]*models.PostMedia{
		{ID: 401, PostID: 200, URL: "/m/a.png", MediaType: models.MediaTypeImage},
	}))

	ctx := context.Background()

	// 媒体不存在
	err := DetachMedia(ctx, 1, 200, 999)
	assert.ErrorIs(t, err, errorx.ErrNotFound)

	// 媒体存在但不属于给定帖子：显式报 NotFound，不做静默跳过
	require.NoError(t, mysql.CreatePost(&models.Post{ID: 201, AuthorID: 1, Title: "t2", Content: "c2"}))
	err = DetachMedia(ctx, 1, 201, 401)
	assert.ErrorIs(t, err, errorx.ErrNotFound)
	// 上面的失败不应删掉媒体记录
	m, err := mysql.GetMediaByID(401)
	require.NoError(t, err)
	require.NotNil(t, m)

	// 路人没有权限
	err = DetachMedia(ctx, 3, 200, 401)
	assert.ErrorIs(t, err, errorx.ErrNoPermission)

	// 作者可以移除
	require.NoError(t, DetachMedia(ctx, 1, 200, 401))
	m, err = mysql.GetMediaByID(401)
	require.NoError(t, err)
	assert.Nil(t, m)
}
