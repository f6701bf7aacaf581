package redis

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRedis 起一个进程内的 miniredis 并注入客户端
func setupTestRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	SetClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	return mr
}

func TestVoteUp(t *testing.T) {
	setupTestRedis(t)

	score, current, err := Vote("post", "1001", "u1", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), score)
	assert.Equal(t, int8(1), current)

	// 投票状态
	status, err := GetVoteStatus("post", "1001", "u1")
	require.NoError(t, err)
	assert.Equal(t, int8(1), status)

	up, down, err := GetVoteData("post", "1001")
	require.NoError(t, err)
	assert.Equal(t, int64(1), up)
	assert.Equal(t, int64(0), down)
}

// 同方向重复投票等价于取消
func TestVoteToggle(t *testing.T) {
	setupTestRedis(t)

	_, _, err := Vote("post", "1001", "u1", 1)
	require.NoError(t, err)

	score, current, err := Vote("post", "1001", "u1", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), score)
	assert.Equal(t, int8(0), current)

	status, err := GetVoteStatus("post", "1001", "u1")
	require.NoError(t, err)
	assert.Equal(t, int8(0), status)
}

// 反方向投票原子切换，分数变化为 ±2
func TestVoteSwitchDirection(t *testing.T) {
	setupTestRedis(t)

	score, _, err := Vote("post", "1001", "u1", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), score)

	score, current, err := Vote("post", "1001", "u1", -1)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), score)
	assert.Equal(t, int8(-1), current)

	// 切换后用户不可能同时出现在两个方向上
	up, down, err := GetVoteData("post", "1001")
	require.NoError(t, err)
	assert.Equal(t, int64(0), up)
	assert.Equal(t, int64(1), down)
}

// direction=0 是无条件移除，重复调用幂等
func TestVoteRemoveIdempotent(t *testing.T) {
	setupTestRedis(t)

	_, _, err := Vote("post", "1001", "u1", -1)
	require.NoError(t, err)

	score, current, err := Vote("post", "1001", "u1", 0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), score)
	assert.Equal(t, int8(0), current)

	// 已经是中立状态再取消一次，结果不变
	score, current, err = Vote("post", "1001", "u1", 0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), score)
	assert.Equal(t, int8(0), current)
}

// 多用户场景：分数始终等于赞成数减反对数
func TestVoteMultipleUsers(t *testing.T) {
	setupTestRedis(t)

	// u1 赞成 → 1
	score, _, err := Vote("post", "2002", "u1", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), score)

	// u2 反对 → 0
	score, _, err = Vote("post", "2002", "u2", -1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), score)

	// u1 再次赞成（toggle 取消）→ -1
	score, _, err = Vote("post", "2002", "u1", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), score)

	derived, err := GetScore("post", "2002")
	require.NoError(t, err)
	assert.Equal(t, score, derived)
}

// 帖子和评论的投票账本互相独立
func TestVoteKindsIsolated(t *testing.T) {
	setupTestRedis(t)

	_, _, err := Vote("post", "3003", "u1", 1)
	require.NoError(t, err)
	_, _, err = Vote("comment", "3003", "u1", -1)
	require.NoError(t, err)

	postStatus, err := GetVoteStatus("post", "3003", "u1")
	require.NoError(t, err)
	assert.Equal(t, int8(1), postStatus)

	commentStatus, err := GetVoteStatus("comment", "3003", "u1")
	require.NoError(t, err)
	assert.Equal(t, int8(-1), commentStatus)
}

func TestGetTargetsScores(t *testing.T) {
	setupTestRedis(t)

	_, _, err := Vote("post", "a", "u1", 1)
	require.NoError(t, err)
	_, _, err = Vote("post", "a", "u2", 1)
	require.NoError(t, err)
	_, _, err = Vote("post", "b", "u1", -1)
	require.NoError(t, err)

	scores, err := GetTargetsScores("post", []string{"a", "b", "c"})
	require.NoError(t, err)
	// 与传入的 id 顺序一致，没人投过票的目标是 0
	assert.Equal(t, []int64{2, -1, 0}, scores)
}

func TestBatchGetVoteStatus(t *testing.T) {
	setupTestRedis(t)

	_, _, err := Vote("comment", "c1", "u1", 1)
	require.NoError(t, err)
	_, _, err = Vote("comment", "c2", "u1", -1)
	require.NoError(t, err)

	result, err := BatchGetVoteStatus("comment", "u1", []string{"c1", "c2", "c3"})
	require.NoError(t, err)
	assert.Equal(t, int8(1), result["c1"])
	assert.Equal(t, int8(-1), result["c2"])
	assert.Equal(t, int8(0), result["c3"])
}

func TestRemoveVoteLedger(t *testing.T) {
	mr := setupTestRedis(t)

	_, _, err := Vote("post", "9009", "u1", 1)
	require.NoError(t, err)
	_, _, err = Vote("comment", "c1", "u1", 1)
	require.NoError(t, err)

	require.NoError(t, RemoveVoteLedger("post", "9009"))
	assert.False(t, mr.Exists(getVotedKey("post", "9009")))

	// 空列表直接返回
	require.NoError(t, RemoveVoteLedger("comment"))
	assert.True(t, mr.Exists(getVotedKey("comment", "c1")))
}

func TestVoteUpdatesScoreBoard(t *testing.T) {
	mr := setupTestRedis(t)

	_, _, err := Vote("post", "7007", "u1", 1)
	require.NoError(t, err)

	// 帖子投票后总排行榜同步更新
	v, err := mr.ZScore(getRedisKey(KeyPostScoreZSet), "7007")
	require.NoError(t, err)
	assert.Equal(t, float64(1), v)

	// 评论投票不写帖子排行榜
	_, _, err = Vote("comment", "c1", "u1", 1)
	require.NoError(t, err)
	_, err = mr.ZScore(getRedisKey(KeyPostScoreZSet), "c1")
	assert.Error(t, err)
}
