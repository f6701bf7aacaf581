package logic

import (
	"context"
	"strconv"
	"time"

	"campfire/dao/elastic"
	"campfire/dao/mysql"
	"campfire/dao/redis"
	"campfire/models"
	"campfire/pkg/errorx"
	"campfire/pkg/mq"
	"campfire/pkg/snowflake"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// CreatePost 创建帖子，返回新帖子ID
func CreatePost(p *models.ParamPost) (postID int64, err error) {
	// 1. 指定了社区时先校验社区存在
	if p.CommunityID != 0 {
		community, err := mysql.GetCommunityByID(p.CommunityID)
		if err != nil {
			zap.L().Error("mysql.GetCommunityByID failed",
				zap.Int64("community_id", p.CommunityID),
				zap.Error(err))
			return 0, errorx.ErrServerBusy
		}
		if community == nil {
			return 0, errorx.ErrNotFound
		}
	}

	// 2. 生成ID并入库
	postID = snowflake.GenID()
	post := &models.Post{
		ID:          postID,
		AuthorID:    p.AuthorID,
		CommunityID: p.CommunityID,
		Title:       p.Title,
		Content:     p.Content,
		Status:      1,
	}
	if err = mysql.CreatePost(post); err != nil {
		zap.L().Error("mysql.CreatePost failed",
			zap.Int64("post_id", postID),
			zap.Error(err))
		return 0, errorx.ErrServerBusy
	}

	// 3. 初始化 Redis 榜单
	// 失败不影响主流程：MySQL 已经成功，记日志即可
	if err := redis.CreatePost(postID, p.CommunityID); err != nil {
		zap.L().Error("redis.CreatePost failed",
			zap.Int64("post_id", postID),
			zap.Error(err))
	}

	// 4. 写入搜索索引（组件未启用时是无操作）
	elastic.IndexPost(context.Background(), post)

	return postID, nil
}

// GetPostByID 查询帖子详情，组装分数、当前用户投票状态、附件和评论数
func GetPostByID(pid, viewerID int64) (*models.ApiPostDetail, error) {
	post, err := mysql.GetPostByIDWithPreload(pid)
	if err != nil {
		zap.L().Error("mysql.GetPostByIDWithPreload failed",
			zap.Int64("post_id", pid),
			zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if post == nil {
		return nil, errorx.ErrNotFound
	}

	data := &models.ApiPostDetail{
		Post:            post,
		CommunityDetail: post.Community,
		Media:           make([]*models.PostMedia, 0),
	}
	if post.Author != nil {
		data.AuthorName = post.Author.Username
	}

	// 分数、投票状态、附件、评论数互相独立，并发取
	pidStr := strconv.FormatInt(pid, 10)
	g := new(errgroup.Group)

	g.Go(func() error {
		score, err := redis.GetScore(models.VoteTargetPost, pidStr)
		if err != nil {
			return err
		}
		data.Score = score
		return nil
	})
	g.Go(func() error {
		status, err := redis.GetVoteStatus(models.VoteTargetPost, pidStr, strconv.FormatInt(viewerID, 10))
		if err != nil {
			return err
		}
		data.VoteStatus = status
		return nil
	})
	g.Go(func() error {
		media, err := mysql.GetMediaByPostID(pid)
		if err != nil {
			return err
		}
		data.Media = media
		return nil
	})
	g.Go(func() error {
		count, err := mysql.CountCommentsByPostID(pid)
		if err != nil {
			return err
		}
		data.CommentCount = count
		return nil
	})

	if err := g.Wait(); err != nil {
		zap.L().Error("assemble post detail failed", zap.Int64("post_id", pid), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	return data, nil
}

// GetPostListNew 帖子列表统一入口：按是否指定社区分发
func GetPostListNew(p *models.ParamPostList, viewerID int64) (data []*models.ApiPostDetail, err error) {
	// 1. 取排序好的帖子ID列表
	var ids []string
	if p.CommunityID == 0 {
		ids, err = redis.GetPostIDsInOrder(p.Order, p.Page, p.Size)
	} else {
		ids, err = redis.GetCommunityPostIDsInOrder(p.CommunityID, p.Order, p.Page, p.Size)
	}
	if err != nil {
		zap.L().Error("get post ids in order failed",
			zap.Int64("community_id", p.CommunityID),
			zap.String("order", p.Order),
			zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if len(ids) == 0 {
		return make([]*models.ApiPostDetail, 0), nil
	}

	return assemblePostList(ids, viewerID)
}

// SearchPosts 关键词搜索帖子，命中ID后按列表一样的方式组装
func SearchPosts(p *models.ParamPostSearch, viewerID int64) ([]*models.ApiPostDetail, error) {
	if !elastic.Enabled() {
		return nil, errorx.ErrServerBusy
	}

	ids, err := elastic.SearchPostIDs(context.Background(), p.Keyword, p.Page, p.Size)
	if err != nil {
		zap.L().Error("elastic.SearchPostIDs failed",
			zap.String("keyword", p.Keyword),
			zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if len(ids) == 0 {
		return make([]*models.ApiPostDetail, 0), nil
	}

	return assemblePostList(ids, viewerID)
}

// assemblePostList 按ID列表组装帖子详情：MySQL 详情 + Redis 分数/投票状态 + 附件
func assemblePostList(ids []string, viewerID int64) ([]*models.ApiPostDetail, error) {
	var (
		posts      []*models.Post
		scores     []int64
		voteStatus map[string]int8
	)

	// MySQL 和 Redis 的查询互不依赖，并发执行
	g := new(errgroup.Group)
	g.Go(func() (err error) {
		posts, err = mysql.GetPostListByIDsWithPreload(ids)
		return
	})
	g.Go(func() (err error) {
		scores, err = redis.GetTargetsScores(models.VoteTargetPost, ids)
		return
	})
	g.Go(func() (err error) {
		voteStatus, err = redis.BatchGetVoteStatus(models.VoteTargetPost, strconv.FormatInt(viewerID, 10), ids)
		return
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("assemble post list failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	// 分数是按请求的 ids 顺序返回的，先建索引
	scoreByID := make(map[string]int64, len(ids))
	for i, id := range ids {
		scoreByID[id] = scores[i]
	}

	// 附件批量查一次
	pids := make([]int64, 0, len(posts))
	for _, post := range posts {
		pids = append(pids, post.ID)
	}
	mediaList, err := mysql.GetMediaByPostIDs(pids)
	if err != nil {
		zap.L().Error("mysql.GetMediaByPostIDs failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	mediaByPost := make(map[int64][]*models.PostMedia, len(posts))
	for _, m := range mediaList {
		mediaByPost[m.PostID] = append(mediaByPost[m.PostID], m)
	}

	data := make([]*models.ApiPostDetail, 0, len(posts))
	for _, post := range posts {
		idStr := strconv.FormatInt(post.ID, 10)

		var authorName string
		if post.Author != nil {
			authorName = post.Author.Username
		} else {
			zap.L().Error("author not preloaded for post",
				zap.Int64("post_id", post.ID),
				zap.Int64("author_id", post.AuthorID))
		}

		media := mediaByPost[post.ID]
		if media == nil {
			media = make([]*models.PostMedia, 0)
		}

		data = append(data, &models.ApiPostDetail{
			Post:            post,
			AuthorName:      authorName,
			CommunityDetail: post.Community,
			Score:           scoreByID[idStr],
			VoteStatus:      voteStatus[idStr],
			Media:           media,
		})
	}
	return data, nil
}

// UpdatePost 编辑帖子，只有作者和管理员有权限
func UpdatePost(userID, postID int64, p *models.ParamPostUpdate) error {
	post, err := mysql.GetPostByID(postID)
	if err != nil {
		zap.L().Error("mysql.GetPostByID failed", zap.Int64("post_id", postID), zap.Error(err))
		return errorx.ErrServerBusy
	}
	if post == nil {
		return errorx.ErrNotFound
	}

	actor, err := getActor(userID)
	if err != nil {
		return err
	}
	if !CanModeratePost(actor, post) {
		return errorx.ErrNoPermission
	}

	if err := mysql.UpdatePost(postID, p.Title, p.Content); err != nil {
		zap.L().Error("mysql.UpdatePost failed", zap.Int64("post_id", postID), zap.Error(err))
		return errorx.ErrServerBusy
	}

	// 同步搜索索引
	post.Title = p.Title
	post.Content = p.Content
	elastic.IndexPost(context.Background(), post)
	return nil
}

// DeletePost 删除帖子并级联删除评论、附件记录、分享记录
//
// 数据库内的级联删除是一个事务，要么全部生效要么全部回滚；
// 事务提交后再清理派生数据（Redis 榜单和投票集合、搜索索引）
// 并把附件文件丢给异步清理队列——这些清理失败只记日志，不会让删除半途而废
func DeletePost(userID, postID int64) error {
	post, err := mysql.GetPostByID(postID)
	if err != nil {
		zap.L().Error("mysql.GetPostByID failed", zap.Int64("post_id", postID), zap.Error(err))
		return errorx.ErrServerBusy
	}
	if post == nil {
		return errorx.ErrNotFound
	}

	actor, err := getActor(userID)
	if err != nil {
		return err
	}
	if !CanModeratePost(actor, post) {
		return errorx.ErrNoPermission
	}

	commentIDs, mediaURLs, err := mysql.DeletePostCascade(postID)
	if err != nil {
		zap.L().Error("mysql.DeletePostCascade failed", zap.Int64("post_id", postID), zap.Error(err))
		return errorx.ErrServerBusy
	}

	// 以下都是事务提交之后的派生数据清理
	if err := redis.DeletePost(postID, post.CommunityID, commentIDs); err != nil {
		zap.L().Error("redis.DeletePost failed", zap.Int64("post_id", postID), zap.Error(err))
	}
	elastic.DeletePost(context.Background(), postID)
	for _, url := range mediaURLs {
		mq.PublishMediaCleanup(context.Background(), mq.MediaCleanupEvent{
			URL:     url,
			PostID:  postID,
			Deleted: time.Now().Unix(),
		})
	}

	return nil
}

// SharePost 记录一次分享，同一用户同目标平台重复分享幂等
func SharePost(userID, postID int64, destination string) (*models.Share, error) {
	post, err := mysql.GetPostByID(postID)
	if err != nil {
		zap.L().Error("mysql.GetPostByID failed", zap.Int64("post_id", postID), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if post == nil {
		return nil, errorx.ErrNotFound
	}

	share, err := mysql.CreateShare(&models.Share{
		ID:          snowflake.GenID(),
		PostID:      postID,
		UserID:      userID,
		Destination: destination,
	})
	if err != nil {
		zap.L().Error("mysql.CreateShare failed", zap.Int64("post_id", postID), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	return share, nil
}
