package logic

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"campfire/dao/mysql"
	"campfire/dao/redis"
	"campfire/models"
	"campfire/pkg/errorx"
	"campfire/pkg/snowflake"
)

// setupLogicTest 注入 sqlite 内存库和 miniredis，Logic 层测试共用
func setupLogicTest(t *testing.T) {
	t.Helper()

	d, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, d.AutoMigrate(
		&models.User{},
		&models.Community{},
		&models.Post{},
		&models.Comment{},
		&models.PostMedia{},
		&models.Share{},
	))
	mysql.SetDB(d)

	mr := miniredis.RunT(t)
	redis.SetClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))

	require.NoError(t, snowflake.Init("2025-01-01", 1))
}

func seedUserAndPost(t *testing.T) {
	t.Helper()
	require.NoError(t, mysql.InsertUser(&models.User{UserID: 1, Username: "u1", Password: "x"}))
	require.NoError(t, mysql.CreatePost(&models.Post{ID: 200, AuthorID: 1, Title: "t", Content: "c"}))
}

func TestVoteForTargetPost(t *testing.T) {
	setupLogicTest(t)
	seedUserAndPost(t)

	result, err := VoteForTarget(1, &models.ParamVoteData{
		TargetID: 200, TargetType: models.VoteTargetPost, Direction: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Score)
	assert.Equal(t, int8(1), result.Vote)

	// 同方向再投一次是取消
	result, err = VoteForTarget(1, &models.ParamVoteData{
		TargetID: 200, TargetType: models.VoteTargetPost, Direction: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.Score)
	assert.Equal(t, int8(0), result.Vote)
}

// 目标不存在时拒绝，不写任何投票数据
func TestVoteForTargetNotFound(t *testing.T) {
	setupLogicTest(t)

	_, err := VoteForTarget(1, &models.ParamVoteData{
		TargetID: 404, TargetType: models.VoteTargetPost, Direction: 1,
	})
	assert.ErrorIs(t, err, errorx.ErrNotFound)

	_, err = VoteForTarget(1, &models.ParamVoteData{
		TargetID: 404, TargetType: models.VoteTargetComment, Direction: -1,
	})
	assert.ErrorIs(t, err, errorx.ErrNotFound)
}

func TestVoteForTargetComment(t *testing.T) {
	setupLogicTest(t)
	seedUserAndPost(t)
	require.NoError(t, mysql.CreateComment(&models.Comment{ID: 301, PostID: 200, AuthorID: 1, Content: "c"}))

	result, err := VoteForTarget(1, &models.ParamVoteData{
		TargetID: 301, TargetType: models.VoteTargetComment, Direction: -1,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(-1), result.Score)
	assert.Equal(t, int8(-1), result.Vote)

	// 反方向切换，分数一步跨过中间值
	result, err = VoteForTarget(1, &models.ParamVoteData{
		TargetID: 301, TargetType: models.VoteTargetComment, Direction: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Score)
	assert.Equal(t, int8(1), result.Vote)
}

func TestVoteForTargetInvalidType(t *testing.T) {
	setupLogicTest(t)

	_, err := VoteForTarget(1, &models.ParamVoteData{
		TargetID: 200, TargetType: "user", Direction: 1,
	})
	assert.ErrorIs(t, err, errorx.ErrInvalidParam)
}
