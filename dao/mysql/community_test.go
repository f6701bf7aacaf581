package mysql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campfire/models"
)

func TestCreateCommunitySetsCreatorRoles(t *testing.T) {
	setupTestDB(t)

	creator := &models.User{UserID: 1, Username: "creator", Password: "x"}
	require.NoError(t, InsertUser(creator))

	require.NoError(t, CreateCommunity(&models.Community{
		ID:           300,
		Name:         "golang",
		Introduction: "Go 语言社区",
		CreatorID:    1,
	}, creator))

	// 创建者同时是成员和版主
	isMember, err := IsCommunityMember(300, 1)
	require.NoError(t, err)
	assert.True(t, isMember)

	community, err := GetCommunityByID(300)
	require.NoError(t, err)
	require.NotNil(t, community)
	assert.True(t, community.IsModerator(1))
}

func TestCommunityMembership(t *testing.T) {
	setupTestDB(t)

	creator := &models.User{UserID: 1, Username: "creator", Password: "x"}
	require.NoError(t, InsertUser(creator))
	require.NoError(t, InsertUser(&models.User{UserID: 2, Username: "member", Password: "x"}))
	require.NoError(t, CreateCommunity(&models.Community{ID: 300, Name: "golang", CreatorID: 1}, creator))

	// 加入两次是幂等的
	require.NoError(t, AddCommunityMember(300, 2))
	require.NoError(t, AddCommunityMember(300, 2))

	count, err := CountCommunityMembers(300)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	require.NoError(t, RemoveCommunityMember(300, 2))
	isMember, err := IsCommunityMember(300, 2)
	require.NoError(t, err)
	assert.False(t, isMember)
}

func TestCheckCommunityExist(t *testing.T) {
	setupTestDB(t)

	creator := &models.User{UserID: 1, Username: "creator", Password: "x"}
	require.NoError(t, InsertUser(creator))
	require.NoError(t, CreateCommunity(&models.Community{ID: 300, Name: "golang", CreatorID: 1}, creator))

	exist, err := CheckCommunityExist("golang")
	require.NoError(t, err)
	assert.True(t, exist)

	exist, err = CheckCommunityExist("rustlang")
	require.NoError(t, err)
	assert.False(t, exist)
}
