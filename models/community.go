package models

import "time"

// Community 社区模型
// 成员和版主是两个多对多关系；创建者在建区时同时写入这两张关联表
type Community struct {
	ID           int64     `json:"id,string" gorm:"column:community_id;primaryKey"`
	Name         string    `json:"name" gorm:"column:community_name;uniqueIndex;size:128;not null"`
	Introduction string    `json:"introduction" gorm:"column:introduction;type:text"`
	CreatorID    int64     `json:"creator_id,string" gorm:"column:creator_id;index;not null"`
	CreateTime   time.Time `json:"create_time" gorm:"column:create_time;autoCreateTime"`

	// many2many 关联，查询时按需 Preload
	Members    []*User `json:"members,omitempty" gorm:"many2many:community_member;joinForeignKey:CommunityID;joinReferences:UserID"`
	Moderators []*User `json:"moderators,omitempty" gorm:"many2many:community_moderator;joinForeignKey:CommunityID;joinReferences:UserID"`
}

// TableName 自定义表名
func (Community) TableName() string {
	return "community"
}

// IsModerator 判断用户是否是本社区版主
// 要求 Moderators 已经 Preload，纯内存判断，不触发查询
func (c *Community) IsModerator(userID int64) bool {
	for _, m := range c.Moderators {
		if m != nil && m.UserID == userID {
			return true
		}
	}
	return false
}

// ApiCommunityDetail 返回给客户端的社区详情
type ApiCommunityDetail struct {
	*Community
	MemberCount int  `json:"member_count"`
	IsMember    bool `json:"is_member"`
	IsModerator bool `json:"is_moderator"`
}
