package models

import "time"

// Post 帖子模型，对应 post 表
// 投票集合不落在这张表上，而是存在 Redis 的投票 ZSet 里，
// score 永远由集合成员推导，详情见 dao/redis/vote.go
type Post struct {
	ID          int64 `json:"id,string" gorm:"column:post_id;primaryKey"`
	AuthorID    int64 `json:"author_id,string" gorm:"column:author_id;index;not null"`
	CommunityID int64 `json:"community_id,string" gorm:"column:community_id;index"` // 0 表示不属于任何社区

	Status int32 `json:"status" gorm:"column:status;default:1"`

	Title   string `json:"title" gorm:"column:title;size:128;not null"`
	Content string `json:"content" gorm:"column:content;type:text;not null"`

	CreateTime time.Time `json:"create_time" gorm:"column:create_time;autoCreateTime"`
	UpdateTime time.Time `json:"update_time" gorm:"column:update_time;autoUpdateTime"`

	// GORM 关联字段，用于 Preload 解决 N+1 问题
	Author    *User      `json:"author,omitempty" gorm:"foreignKey:AuthorID;references:UserID"`
	Community *Community `json:"community,omitempty" gorm:"foreignKey:CommunityID;references:ID"`
}

// TableName 自定义表名
func (Post) TableName() string {
	return "post"
}

// HasCommunity 帖子是否属于某个社区
// 无社区的帖子在权限判断里会短路掉版主分支
func (p *Post) HasCommunity() bool {
	return p.CommunityID != 0
}

// ApiPostDetail 返回给客户端的帖子详情
type ApiPostDetail struct {
	*Post
	AuthorName      string       `json:"author_name"`
	CommunityDetail *Community   `json:"community,omitempty"`
	Score           int64        `json:"score"`        // 赞成数 - 反对数
	VoteStatus      int8         `json:"vote_status"`  // 当前用户的投票状态 1/-1/0
	Media           []*PostMedia `json:"media"`        // 附件列表
	CommentCount    int64        `json:"comment_count"`
}
