package mysql

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"campfire/models"
)

// CreateCommunity 创建社区
// 创建者自动成为成员和版主，三次写入在同一个事务里完成
func CreateCommunity(community *models.Community, creator *models.User) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(community).Error; err != nil {
			return fmt.Errorf("insert community failed: %w", err)
		}
		if err := tx.Model(community).Association("Members").Append(creator); err != nil {
			return fmt.Errorf("append creator as member failed: %w", err)
		}
		if err := tx.Model(community).Association("Moderators").Append(creator); err != nil {
			return fmt.Errorf("append creator as moderator failed: %w", err)
		}
		return nil
	})
}

// CheckCommunityExist 检查社区名是否已存在
func CheckCommunityExist(name string) (exist bool, err error) {
	var count int64
	err = db.Model(&models.Community{}).Where("community_name = ?", name).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check community exist failed: %w", err)
	}
	return count > 0, nil
}

// GetCommunityList 查询社区列表
func GetCommunityList() (data []*models.Community, err error) {
	// 初始化切片，防止查询为空时返回 nil
	data = make([]*models.Community, 0)
	err = db.Select("community_id", "community_name", "introduction").Find(&data).Error
	if err != nil {
		return nil, fmt.Errorf("query community list failed: %w", err)
	}
	return data, nil
}

// GetCommunityByID 根据ID查询社区，预加载版主列表
func GetCommunityByID(id int64) (community *models.Community, err error) {
	community = new(models.Community)
	err = db.Preload("Moderators").Where("community_id = ?", id).First(community).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query community by id failed: %w", err)
	}
	return community, nil
}

// CountCommunityMembers 统计社区成员数
func CountCommunityMembers(id int64) (count int64, err error) {
	count = db.Model(&models.Community{ID: id}).Association("Members").Count()
	return count, nil
}

// IsCommunityMember 判断用户是否是社区成员
func IsCommunityMember(communityID, userID int64) (bool, error) {
	var count int64
	err := db.Table("community_member").
		Where("community_id = ? AND user_id = ?", communityID, userID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check community member failed: %w", err)
	}
	return count > 0, nil
}

// AddCommunityMember 用户加入社区，重复加入是幂等的
func AddCommunityMember(communityID, userID int64) error {
	exist, err := IsCommunityMember(communityID, userID)
	if err != nil {
		return err
	}
	if exist {
		return nil
	}
	err = db.Model(&models.Community{ID: communityID}).
		Association("Members").
		Append(&models.User{UserID: userID})
	if err != nil {
		return fmt.Errorf("add community member failed: %w", err)
	}
	return nil
}

// RemoveCommunityMember 用户退出社区
// 创建者不能退出的校验在 Logic 层做，这里只负责删关联
func RemoveCommunityMember(communityID, userID int64) error {
	err := db.Model(&models.Community{ID: communityID}).
		Association("Members").
		Delete(&models.User{UserID: userID})
	if err != nil {
		return fmt.Errorf("remove community member failed: %w", err)
	}
	return nil
}
