package mysql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"campfire/models"
)

// setupTestDB 用 sqlite 内存库替换连接，每个测试拿到干净的库
func setupTestDB(t *testing.T) {
	t.Helper()
	d, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	SetDB(d)
	require.NoError(t, migrate())
}

func seedPostWithChildren(t *testing.T) (postID int64) {
	t.Helper()
	postID = 200

	require.NoError(t, db.Create(&models.User{UserID: 1, Username: "author", Password: "x"}).Error)
	require.NoError(t, CreatePost(&models.Post{
		ID:       postID,
		AuthorID: 1,
		Title:    "标题",
		Content:  "内容",
	}))

	for i, c := range []models.Comment{
		{ID: 301, PostID: postID, AuthorID: 1, Content: "一楼"},
		{ID: 302, PostID: postID, ParentID: 301, AuthorID: 1, Content: "回复一楼"},
	} {
		require.NoError(t, CreateComment(&c), "comment %d", i)
	}

	require.NoError(t, CreateMediaBatch([]*models.PostMedia{
		{ID: 401, PostID: postID, URL: "/m/a.png", MediaType: models.MediaTypeImage},
		{ID: 402, PostID: postID, URL: "/m/b.mp4", MediaType: models.MediaTypeVideo},
		{ID: 403, PostID: postID, URL: "/m/c.gif", MediaType: models.MediaTypeImage},
	}))

	_, err := CreateShare(&models.Share{ID: 501, PostID: postID, UserID: 1, Destination: "twitter"})
	require.NoError(t, err)
	return postID
}

func TestDeletePostCascade(t *testing.T) {
	setupTestDB(t)
	postID := seedPostWithChildren(t)

	commentIDs, mediaURLs, err := DeletePostCascade(postID)
	require.NoError(t, err)

	// 返回被删资源的引用，供调用方清理缓存和外部存储
	assert.ElementsMatch(t, []int64{301, 302}, commentIDs)
	assert.ElementsMatch(t, []string{"/m/a.png", "/m/b.mp4", "/m/c.gif"}, mediaURLs)

	// 帖子和所有子资源都不在了
	post, err := GetPostByID(postID)
	require.NoError(t, err)
	assert.Nil(t, post)

	var count int64
	require.NoError(t, db.Model(&models.Comment{}).Where("post_id = ?", postID).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&models.PostMedia{}).Where("post_id = ?", postID).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&models.Share{}).Where("post_id = ?", postID).Count(&count).Error)
	assert.Zero(t, count)
}

// 其他帖子的数据不受级联删除影响
func TestDeletePostCascadeScoped(t *testing.T) {
	setupTestDB(t)
	postID := seedPostWithChildren(t)

	require.NoError(t, CreatePost(&models.Post{ID: 999, AuthorID: 1, Title: "其他", Content: "内容"}))
	require.NoError(t, CreateComment(&models.Comment{ID: 900, PostID: 999, AuthorID: 1, Content: "别删我"}))

	_, _, err := DeletePostCascade(postID)
	require.NoError(t, err)

	other, err := GetPostByID(999)
	require.NoError(t, err)
	require.NotNil(t, other)

	c, err := GetCommentByID(900)
	require.NoError(t, err)
	assert.NotNil(t, c)
}

func TestGetPostListByIDsWithPreloadOrder(t *testing.T) {
	setupTestDB(t)

	require.NoError(t, db.Create(&models.User{UserID: 1, Username: "u", Password: "x"}).Error)
	for _, id := range []int64{1, 2, 3} {
		require.NoError(t, CreatePost(&models.Post{ID: id, AuthorID: 1, Title: "t", Content: "c"}))
	}

	// 结果保持传入的顺序，查不到的ID被跳过
	posts, err := GetPostListByIDsWithPreload([]string{"3", "1", "404"})
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, int64(3), posts[0].ID)
	assert.Equal(t, int64(1), posts[1].ID)
}

func TestCreateShareIdempotent(t *testing.T) {
	setupTestDB(t)

	first, err := CreateShare(&models.Share{ID: 501, PostID: 200, UserID: 1, Destination: "twitter"})
	require.NoError(t, err)

	// 同一三元组重复分享返回已有记录，不新增行
	again, err := CreateShare(&models.Share{ID: 502, PostID: 200, UserID: 1, Destination: "twitter"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)

	count, err := CountSharesByPostID(200)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// 换渠道是新的分享
	_, err = CreateShare(&models.Share{ID: 503, PostID: 200, UserID: 1, Destination: "copy_link"})
	require.NoError(t, err)
	count, err = CountSharesByPostID(200)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
