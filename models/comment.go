package models

import "time"

// Comment 评论模型，支持楼中楼回复
// 不变量：ParentID 非 0 时，父评论必须属于同一个帖子（创建时校验）
type Comment struct {
	ID       int64 `json:"id,string" gorm:"column:comment_id;primaryKey"`
	PostID   int64 `json:"post_id,string" gorm:"column:post_id;index;not null"`
	ParentID int64 `json:"parent_id,string" gorm:"column:parent_id;index"` // 0 表示顶层评论
	AuthorID int64 `json:"author_id,string" gorm:"column:author_id;index;not null"`

	Content string `json:"content" gorm:"column:content;type:text;not null"`

	CreateTime time.Time `json:"create_time" gorm:"column:create_time;autoCreateTime"`
	UpdateTime time.Time `json:"update_time" gorm:"column:update_time;autoUpdateTime"`

	Author *User `json:"author,omitempty" gorm:"foreignKey:AuthorID;references:UserID"`
}

// TableName 自定义表名
func (Comment) TableName() string {
	return "comment"
}

// ApiCommentDetail 返回给客户端的评论，带子回复树
type ApiCommentDetail struct {
	*Comment
	AuthorName string              `json:"author_name"`
	Score      int64               `json:"score"`
	VoteStatus int8                `json:"vote_status"`
	Children   []*ApiCommentDetail `json:"children"`
}
