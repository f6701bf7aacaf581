package models

// ParamSignUp 注册请求参数
type ParamSignUp struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	// 确认密码，自定义校验函数里检查两次输入一致
	RePassword string `json:"re_password" binding:"required"`
}

// ParamLogin 登录请求参数
type ParamLogin struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ParamPost 创建帖子请求参数
// AuthorID 从 Token 里取，不信任前端传值
type ParamPost struct {
	Title       string `json:"title" binding:"required"`
	Content     string `json:"content" binding:"required"`
	CommunityID int64  `json:"community_id"` // 可选，0 表示不属于任何社区
	AuthorID    int64  `json:"-"`
}

// ParamPostUpdate 编辑帖子请求参数
type ParamPostUpdate struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// ParamComment 创建评论请求参数
type ParamComment struct {
	PostID   int64  `json:"post_id,string" binding:"required"`
	ParentID int64  `json:"parent_id,string"` // 楼中楼回复时传父评论ID
	Content  string `json:"content" binding:"required"`
}

// ParamCommentUpdate 编辑评论请求参数
type ParamCommentUpdate struct {
	Content string `json:"content" binding:"required"`
}

// 投票目标类型
const (
	VoteTargetPost    = "post"
	VoteTargetComment = "comment"
)

// ParamVoteData 投票请求参数
// Direction 不加 required：0（取消投票）是合法取值，required 会把 0 当缺失
type ParamVoteData struct {
	TargetID   int64  `json:"target_id,string" binding:"required"`
	TargetType string `json:"target_type" binding:"required,oneof=post comment"`
	Direction  int8   `json:"direction" binding:"oneof=1 0 -1"`
}

// VoteResult 投票操作的返回结果
type VoteResult struct {
	Score int64 `json:"score"` // 投票后的最新分数
	Vote  int8  `json:"vote"`  // 当前用户的投票状态 1/-1/0
}

// ParamPostList 获取帖子列表的分页和排序参数
type ParamPostList struct {
	Page        int64  `json:"page" form:"page"`
	Size        int64  `json:"size" form:"size"`
	Order       string `json:"order" form:"order"`
	CommunityID int64  `json:"community_id" form:"community_id"` // 0 表示不按社区过滤
}

// ParamPostSearch 帖子全文搜索参数
type ParamPostSearch struct {
	Keyword string `json:"keyword" form:"keyword" binding:"required"`
	Page    int64  `json:"page" form:"page"`
	Size    int64  `json:"size" form:"size"`
}

// ParamCommunity 创建社区请求参数
type ParamCommunity struct {
	Name         string `json:"name" binding:"required,max=128"`
	Introduction string `json:"introduction" binding:"required"`
}

// ParamShare 分享帖子请求参数
type ParamShare struct {
	Destination string `json:"destination" binding:"required,oneof=twitter facebook linkedin telegram copy_link"`
}

// 排序规则常量
const (
	// OrderTime 按时间排序
	OrderTime = "time"
	// OrderScore 按分数排序
	OrderScore = "score"
)
