package models

import "time"

// 媒体类型标签，attach 时根据文件扩展名推导
const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
	MediaTypeNone  = "none" // 没有文件或无法识别
)

// PostMedia 帖子的媒体附件记录
// 字节内容存在外部存储，这里只记录返回的 URL
type PostMedia struct {
	ID         int64     `json:"id,string" gorm:"column:media_id;primaryKey"`
	PostID     int64     `json:"post_id,string" gorm:"column:post_id;index;not null"`
	URL        string    `json:"url" gorm:"column:url;size:512"`
	MediaType  string    `json:"media_type" gorm:"column:media_type;size:10;default:image"`
	CreateTime time.Time `json:"create_time" gorm:"column:create_time;autoCreateTime"`
}

// TableName 自定义表名
func (PostMedia) TableName() string {
	return "post_media"
}
