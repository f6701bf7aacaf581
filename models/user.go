package models

import "time"

// User 用户模型，对应 user 表
// IsStaff 是全站管理员标记，权限判断时与社区版主身份分开考虑
type User struct {
	UserID     int64     `json:"user_id,string" gorm:"column:user_id;primaryKey"`
	Username   string    `json:"username" gorm:"column:username;uniqueIndex;size:64;not null"`
	Password   string    `json:"-" gorm:"column:password;size:128;not null"`
	IsStaff    bool      `json:"is_staff" gorm:"column:is_staff;default:false"`
	CreateTime time.Time `json:"create_time" gorm:"column:create_time;autoCreateTime"`
}

// TableName GORM 默认使用复数表名，显式指定为 user
func (User) TableName() string {
	return "user"
}
