package models

import "time"

// Share 分享记录
// 唯一索引保证同一个用户对同一个帖子、同一个目标平台只留一条记录，
// 重复分享是幂等的
type Share struct {
	ID          int64     `json:"id,string" gorm:"column:share_id;primaryKey"`
	PostID      int64     `json:"post_id,string" gorm:"column:post_id;uniqueIndex:idx_post_user_dest;not null"`
	UserID      int64     `json:"user_id,string" gorm:"column:user_id;uniqueIndex:idx_post_user_dest;not null"`
	Destination string    `json:"destination" gorm:"column:destination;size:32;uniqueIndex:idx_post_user_dest;not null"`
	CreateTime  time.Time `json:"create_time" gorm:"column:create_time;autoCreateTime"`
}

// TableName 自定义表名
func (Share) TableName() string {
	return "share"
}
