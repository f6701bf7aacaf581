package logic

import "campfire/models"

// 权限判定是纯谓词：只看传入的 actor 和实体，不查库、不改状态。
// actor 一律作为显式参数传入，绝不挂在实体上，
// 避免一次请求的用户身份泄漏到另一次请求的缓存实例里。
// 调用方负责把 false 翻译成 ErrNoPermission 响应。

// CanEditComment 评论只有作者本人可以编辑
func CanEditComment(actor *models.User, comment *models.Comment) bool {
	if actor == nil || comment == nil {
		return false
	}
	return actor.UserID == comment.AuthorID
}

// CanDeleteComment 评论作者、全站管理员、帖子作者、帖子所在社区的版主可以删除评论
// post 需要预加载 Community 及其 Moderators；帖子不属于任何社区时版主分支直接短路为 false
func CanDeleteComment(actor *models.User, comment *models.Comment, post *models.Post) bool {
	if actor == nil || comment == nil || post == nil {
		return false
	}
	if actor.UserID == comment.AuthorID || actor.IsStaff || actor.UserID == post.AuthorID {
		return true
	}
	if post.HasCommunity() && post.Community != nil {
		return post.Community.IsModerator(actor.UserID)
	}
	return false
}

// CanModeratePost 帖子的编辑和删除只开放给作者和全站管理员
// 注意：社区版主管评论不管帖子本体
func CanModeratePost(actor *models.User, post *models.Post) bool {
	if actor == nil || post == nil {
		return false
	}
	return actor.UserID == post.AuthorID || actor.IsStaff
}
