package redis

import (
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// CreatePost 发帖时初始化排行榜数据
// 时间榜记发布时间戳，分数榜从 0 开始（分数 = 赞成数 - 反对数）
func CreatePost(postID, communityID int64) error {
	pipeline := rdb.TxPipeline()

	timestamp := float64(time.Now().Unix())
	postIDStr := strconv.FormatInt(postID, 10)

	pipeline.ZAdd(ctx, getRedisKey(KeyPostTimeZSet), redis.Z{
		Score:  timestamp,
		Member: postIDStr,
	})
	pipeline.ZAdd(ctx, getRedisKey(KeyPostScoreZSet), redis.Z{
		Score:  0,
		Member: postIDStr,
	})

	// 社区维度的两个榜单只在帖子属于社区时维护
	if communityID != 0 {
		communityIDStr := strconv.FormatInt(communityID, 10)
		pipeline.ZAdd(ctx, getRedisKey(KeyCommunityPostTimePrefix+communityIDStr), redis.Z{
			Score:  timestamp,
			Member: postIDStr,
		})
		pipeline.ZAdd(ctx, getRedisKey(KeyCommunityPostScorePrefix+communityIDStr), redis.Z{
			Score:  0,
			Member: postIDStr,
		})
	}

	_, err := pipeline.Exec(ctx)
	if err != nil {
		return fmt.Errorf("create post pipeline exec failed (post_id: %d): %w", postID, err)
	}
	return nil
}

// DeletePost 帖子删除后清理榜单和投票集合
// 调用方传入帖子下所有评论的ID，评论的投票集合一并删除
func DeletePost(postID, communityID int64, commentIDs []int64) error {
	postIDStr := strconv.FormatInt(postID, 10)

	pipeline := rdb.TxPipeline()
	pipeline.ZRem(ctx, getRedisKey(KeyPostTimeZSet), postIDStr)
	pipeline.ZRem(ctx, getRedisKey(KeyPostScoreZSet), postIDStr)
	if communityID != 0 {
		communityIDStr := strconv.FormatInt(communityID, 10)
		pipeline.ZRem(ctx, getRedisKey(KeyCommunityPostTimePrefix+communityIDStr), postIDStr)
		pipeline.ZRem(ctx, getRedisKey(KeyCommunityPostScorePrefix+communityIDStr), postIDStr)
	}
	pipeline.Del(ctx, getVotedKey("post", postIDStr))
	for _, cid := range commentIDs {
		pipeline.Del(ctx, getVotedKey("comment", strconv.FormatInt(cid, 10)))
	}

	_, err := pipeline.Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete post pipeline exec failed (post_id: %d): %w", postID, err)
	}
	return nil
}

// GetPostIDsInOrder 按时间或分数取帖子ID列表（降序分页）
func GetPostIDsInOrder(orderKey string, page, size int64) ([]string, error) {
	key := getRedisKey(KeyPostTimeZSet)
	if orderKey == "score" {
		key = getRedisKey(KeyPostScoreZSet)
	}

	start := (page - 1) * size
	end := start + size - 1

	ids, err := rdb.ZRangeArgs(ctx, redis.ZRangeArgs{
		Key:   key,
		Start: start,
		Stop:  end,
		Rev:   true,
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("get post ids failed (order: %s): %w", orderKey, err)
	}
	return ids, nil
}

// GetCommunityPostIDsInOrder 取指定社区的帖子ID列表
func GetCommunityPostIDsInOrder(communityID int64, orderKey string, page, size int64) ([]string, error) {
	keyPrefix := KeyCommunityPostTimePrefix
	if orderKey == "score" {
		keyPrefix = KeyCommunityPostScorePrefix
	}
	key := getRedisKey(keyPrefix + strconv.FormatInt(communityID, 10))

	start := (page - 1) * size
	end := start + size - 1

	ids, err := rdb.ZRangeArgs(ctx, redis.ZRangeArgs{
		Key:   key,
		Start: start,
		Stop:  end,
		Rev:   true,
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("get community post ids failed (community_id: %d, order: %s): %w", communityID, orderKey, err)
	}
	return ids, nil
}
