package logic

import (
	"strconv"

	"campfire/dao/mysql"
	"campfire/dao/redis"
	"campfire/models"
	"campfire/pkg/errorx"

	"go.uber.org/zap"
)

// VoteForTarget 对帖子或评论投票
//
// 业务规则:
//  1. 目标必须存在，否则返回 NotFound，不产生任何状态变更
//  2. 同方向重复投票是取消（toggle），反方向投票是原子切换，
//     direction=0 无条件取消且幂等
//  3. 分数在投票事务里由集合成员重新推导，返回给前端最新分数和用户当前投票状态
func VoteForTarget(userID int64, p *models.ParamVoteData) (*models.VoteResult, error) {
	zap.L().Debug("VoteForTarget",
		zap.Int64("userID", userID),
		zap.Int64("targetID", p.TargetID),
		zap.String("targetType", p.TargetType),
		zap.Int8("direction", p.Direction))

	// 1. 校验目标存在；帖子还要拿社区ID，用来同步社区维度的排行榜
	var communityID int64
	switch p.TargetType {
	case models.VoteTargetPost:
		post, err := mysql.GetPostByID(p.TargetID)
		if err != nil {
			zap.L().Error("mysql.GetPostByID failed",
				zap.Int64("post_id", p.TargetID),
				zap.Error(err))
			return nil, errorx.ErrServerBusy
		}
		if post == nil {
			return nil, errorx.ErrNotFound
		}
		communityID = post.CommunityID
	case models.VoteTargetComment:
		comment, err := mysql.GetCommentByID(p.TargetID)
		if err != nil {
			zap.L().Error("mysql.GetCommentByID failed",
				zap.Int64("comment_id", p.TargetID),
				zap.Error(err))
			return nil, errorx.ErrServerBusy
		}
		if comment == nil {
			return nil, errorx.ErrNotFound
		}
	default:
		return nil, errorx.ErrInvalidParam
	}

	// 2. 执行投票事务
	targetIDStr := strconv.FormatInt(p.TargetID, 10)
	score, current, err := redis.Vote(
		p.TargetType,
		targetIDStr,
		strconv.FormatInt(userID, 10),
		p.Direction,
	)
	if err != nil {
		zap.L().Error("redis.Vote failed",
			zap.String("target_type", p.TargetType),
			zap.Int64("target_id", p.TargetID),
			zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	// 3. 帖子投票后同步社区榜单
	// 失败只记日志：榜单是派生数据，下次投票会带上正确分数
	if p.TargetType == models.VoteTargetPost && communityID != 0 {
		if err := redis.SetCommunityPostScore(
			strconv.FormatInt(communityID, 10), targetIDStr, score); err != nil {
			zap.L().Error("redis.SetCommunityPostScore failed",
				zap.Int64("post_id", p.TargetID),
				zap.Error(err))
		}
	}

	return &models.VoteResult{Score: score, Vote: current}, nil
}
