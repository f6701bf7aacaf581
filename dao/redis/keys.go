package redis

// Redis Key 统一加项目前缀，便于按业务隔离和清理
const (
	KeyPrefix           = "campfire:"
	KeyUserAccessToken  = "active_access_token:"  // campfire:active_access_token:{user_id}
	KeyUserRefreshToken = "active_refresh_token:" // campfire:active_refresh_token:{user_id}

	KeyPostTimeZSet             = "post:time"             // member=postID score=发布时间戳
	KeyPostScoreZSet            = "post:score"            // member=postID score=净赞成数
	KeyCommunityPostTimePrefix  = "community:post:time:"  // + communityID
	KeyCommunityPostScorePrefix = "community:post:score:" // + communityID
)

func getRedisKey(key string) string {
	return KeyPrefix + key
}

// getVotedKey 投票集合的 Key
// kind 是 post 或 comment，ZSet 的 member 是 userID，score 是 +1/-1
// 一个 member 只能有一个 score，同一用户同时出现在赞成和反对集合里在表示层上就不可能
func getVotedKey(kind, targetID string) string {
	return KeyPrefix + kind + ":voted:" + targetID
}
