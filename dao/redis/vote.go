package redis

import (
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// 投票账本
//
// 每个可投票对象（帖子或评论）对应一个 ZSet：member 是 userID，score 是 +1/-1。
// 分数永远从集合成员重新推导（赞成数 - 反对数），不做独立的增量计数，
// 避免缓存计数和集合内容漂移。
//
// 同一个对象上的并发投票用 WATCH 乐观事务串行化：
// 事务执行期间投票集合被其他客户端改过就整体重试。
// 不同对象的投票互不影响。

// 单个对象上乐观事务的最大重试次数
const maxVoteRetries = 5

var ErrVoteConflict = errors.New("投票冲突，请重试")

// Vote 对目标投票，实现完整的切换语义：
//   - 与当前方向相同的投票 → 取消（真正的 toggle）
//   - 与当前方向相反的投票 → 原子切换
//   - direction 为 0 → 无条件移除，已是中立状态时幂等
//
// 返回投票后的最新分数和该用户当前的投票状态（1/-1/0）
func Vote(kind, targetID, userID string, direction int8) (score int64, current int8, err error) {
	key := getVotedKey(kind, targetID)

	txf := func(tx *redis.Tx) error {
		// 1. 读取用户当前的投票值（没有记录视为 0）
		var old int8
		v, err := tx.ZScore(ctx, key, userID).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if err == nil {
			old = int8(v)
		}

		// 2. 切换语义：重复同方向投票等价于取消
		newVal := direction
		if newVal != 0 && newVal == old {
			newVal = 0
		}

		// 3. 读取当前的赞成/反对数，再按本次变更修正
		up, err := tx.ZCount(ctx, key, "1", "1").Result()
		if err != nil {
			return err
		}
		down, err := tx.ZCount(ctx, key, "-1", "-1").Result()
		if err != nil {
			return err
		}
		switch old {
		case 1:
			up--
		case -1:
			down--
		}
		switch newVal {
		case 1:
			up++
		case -1:
			down++
		}
		newScore := up - down

		// 4. 写入：成员变更和排行榜分数在同一个事务里落盘
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			if newVal == 0 {
				pipe.ZRem(ctx, key, userID)
			} else {
				pipe.ZAdd(ctx, key, redis.Z{Score: float64(newVal), Member: userID})
			}
			if kind == "post" {
				pipe.ZAdd(ctx, getRedisKey(KeyPostScoreZSet), redis.Z{
					Score:  float64(newScore),
					Member: targetID,
				})
			}
			return nil
		})
		if err != nil {
			return err
		}

		score = newScore
		current = newVal
		return nil
	}

	// WATCH 冲突时重试，冲突意味着同一对象上有并发投票
	for i := 0; i < maxVoteRetries; i++ {
		err = rdb.Watch(ctx, txf, key)
		if err == nil {
			return score, current, nil
		}
		if !errors.Is(err, redis.TxFailedErr) {
			return 0, 0, fmt.Errorf("vote tx failed (kind: %s, target: %s): %w", kind, targetID, err)
		}
	}
	return 0, 0, ErrVoteConflict
}

// SetCommunityPostScore 同步社区维度排行榜的帖子分数
// 和 Vote 分开调用：社区ID需要查库才知道，由 Logic 层在投票成功后补写
func SetCommunityPostScore(communityID, postID string, score int64) error {
	if communityID == "" || communityID == "0" {
		return nil
	}
	err := rdb.ZAdd(ctx, getRedisKey(KeyCommunityPostScorePrefix+communityID), redis.Z{
		Score:  float64(score),
		Member: postID,
	}).Err()
	if err != nil {
		return fmt.Errorf("set community post score failed (post_id: %s): %w", postID, err)
	}
	return nil
}

// GetVoteData 获取目标的赞成/反对票数
func GetVoteData(kind, targetID string) (upVotes, downVotes int64, err error) {
	key := getVotedKey(kind, targetID)
	upVotes, err = rdb.ZCount(ctx, key, "1", "1").Result()
	if err != nil {
		return 0, 0, fmt.Errorf("get up votes failed (target: %s): %w", targetID, err)
	}
	downVotes, err = rdb.ZCount(ctx, key, "-1", "-1").Result()
	if err != nil {
		return 0, 0, fmt.Errorf("get down votes failed (target: %s): %w", targetID, err)
	}
	return upVotes, downVotes, nil
}

// GetScore 获取目标的净分数（赞成数 - 反对数），纯推导，不读缓存列
func GetScore(kind, targetID string) (int64, error) {
	up, down, err := GetVoteData(kind, targetID)
	if err != nil {
		return 0, err
	}
	return up - down, nil
}

// GetVoteStatus 获取用户对某个目标的投票状态
// 返回 1（赞成）、-1（反对）、0（未投票）
func GetVoteStatus(kind, targetID, userID string) (int8, error) {
	v, err := rdb.ZScore(ctx, getVotedKey(kind, targetID), userID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, err
	}
	return int8(v), nil
}

// GetTargetsScores 批量获取多个目标的净分数，Pipeline 减少 RTT
// 返回的切片与 ids 顺序一致
func GetTargetsScores(kind string, ids []string) ([]int64, error) {
	pipeline := rdb.Pipeline()

	upCmds := make([]*redis.IntCmd, 0, len(ids))
	downCmds := make([]*redis.IntCmd, 0, len(ids))
	for _, id := range ids {
		key := getVotedKey(kind, id)
		upCmds = append(upCmds, pipeline.ZCount(ctx, key, "1", "1"))
		downCmds = append(downCmds, pipeline.ZCount(ctx, key, "-1", "-1"))
	}

	if _, err := pipeline.Exec(ctx); err != nil {
		return nil, fmt.Errorf("get targets scores pipeline exec failed (count: %d): %w", len(ids), err)
	}

	scores := make([]int64, 0, len(ids))
	for i := range ids {
		scores = append(scores, upCmds[i].Val()-downCmds[i].Val())
	}
	return scores, nil
}

// BatchGetVoteStatus 批量获取用户对多个目标的投票状态
func BatchGetVoteStatus(kind, userID string, ids []string) (map[string]int8, error) {
	pipeline := rdb.Pipeline()

	cmds := make([]*redis.FloatCmd, 0, len(ids))
	for _, id := range ids {
		cmds = append(cmds, pipeline.ZScore(ctx, getVotedKey(kind, id), userID))
	}

	if _, err := pipeline.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("batch get vote status pipeline exec failed (user_id: %s): %w", userID, err)
	}

	result := make(map[string]int8, len(ids))
	for i, cmd := range cmds {
		v, err := cmd.Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				result[ids[i]] = 0
				continue
			}
			return nil, err
		}
		result[ids[i]] = int8(v)
	}
	return result, nil
}

// RemoveVoteLedger 删除目标的投票集合，级联删除帖子/评论时清理用
func RemoveVoteLedger(kind string, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, getVotedKey(kind, id))
	}
	if err := rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("remove vote ledger failed (kind: %s): %w", kind, err)
	}
	return nil
}
