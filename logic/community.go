package logic

import (
	"campfire/dao/mysql"
	"campfire/models"
	"campfire/pkg/errorx"
	"campfire/pkg/snowflake"

	"go.uber.org/zap"
)

// CreateCommunity 创建社区
// 创建者自动成为成员和版主（DAO 层在同一个事务里写入）
func CreateCommunity(userID int64, p *models.ParamCommunity) (communityID int64, err error) {
	exist, err := mysql.CheckCommunityExist(p.Name)
	if err != nil {
		zap.L().Error("mysql.CheckCommunityExist failed", zap.Error(err))
		return 0, errorx.ErrServerBusy
	}
	if exist {
		return 0, errorx.ErrCommunityExist
	}

	creator, err := getActor(userID)
	if err != nil {
		return 0, err
	}

	communityID = snowflake.GenID()
	community := &models.Community{
		ID:           communityID,
		Name:         p.Name,
		Introduction: p.Introduction,
		CreatorID:    userID,
	}
	if err := mysql.CreateCommunity(community, creator); err != nil {
		zap.L().Error("mysql.CreateCommunity failed",
			zap.Int64("community_id", communityID),
			zap.Error(err))
		return 0, errorx.ErrServerBusy
	}
	return communityID, nil
}

// GetCommunityList 获取社区列表
func GetCommunityList() ([]*models.Community, error) {
	data, err := mysql.GetCommunityList()
	if err != nil {
		zap.L().Error("mysql.GetCommunityList failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	return data, nil
}

// GetCommunityDetail 社区详情：成员数和当前用户的成员/版主身份
func GetCommunityDetail(id, viewerID int64) (*models.ApiCommunityDetail, error) {
	community, err := mysql.GetCommunityByID(id)
	if err != nil {
		zap.L().Error("mysql.GetCommunityByID failed",
			zap.Int64("community_id", id),
			zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if community == nil {
		return nil, errorx.ErrNotFound
	}

	memberCount, err := mysql.CountCommunityMembers(id)
	if err != nil {
		zap.L().Error("mysql.CountCommunityMembers failed",
			zap.Int64("community_id", id),
			zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	isMember, err := mysql.IsCommunityMember(id, viewerID)
	if err != nil {
		zap.L().Error("mysql.IsCommunityMember failed",
			zap.Int64("community_id", id),
			zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	detail := &models.ApiCommunityDetail{
		Community:   community,
		MemberCount: int(memberCount),
		IsMember:    isMember,
		IsModerator: community.IsModerator(viewerID),
	}
	// 版主列表只用于判断，不回传给客户端
	detail.Moderators = nil
	return detail, nil
}

// JoinCommunity 加入社区，重复加入幂等
func JoinCommunity(userID, communityID int64) error {
	community, err := mysql.GetCommunityByID(communityID)
	if err != nil {
		zap.L().Error("mysql.GetCommunityByID failed",
			zap.Int64("community_id", communityID),
			zap.Error(err))
		return errorx.ErrServerBusy
	}
	if community == nil {
		return errorx.ErrNotFound
	}

	if err := mysql.AddCommunityMember(communityID, userID); err != nil {
		zap.L().Error("mysql.AddCommunityMember failed",
			zap.Int64("community_id", communityID),
			zap.Int64("user_id", userID),
			zap.Error(err))
		return errorx.ErrServerBusy
	}
	return nil
}

// LeaveCommunity 退出社区
// 不变量：创建者不能退出自己的社区
func LeaveCommunity(userID, communityID int64) error {
	community, err := mysql.GetCommunityByID(communityID)
	if err != nil {
		zap.L().Error("mysql.GetCommunityByID failed",
			zap.Int64("community_id", communityID),
			zap.Error(err))
		return errorx.ErrServerBusy
	}
	if community == nil {
		return errorx.ErrNotFound
	}
	if community.CreatorID == userID {
		return errorx.ErrCreatorCannotQuit
	}

	if err := mysql.RemoveCommunityMember(communityID, userID); err != nil {
		zap.L().Error("mysql.RemoveCommunityMember failed",
			zap.Int64("community_id", communityID),
			zap.Int64("user_id", userID),
			zap.Error(err))
		return errorx.ErrServerBusy
	}
	return nil
}
