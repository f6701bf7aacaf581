package elastic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"campfire/models"
	"campfire/settings"

	"github.com/elastic/go-elasticsearch/v8"
	"go.uber.org/zap"
)

// ES 只做帖子的全文检索，权威数据在 MySQL：
// 搜索返回命中的帖子ID，详情仍然按ID回表查询
var (
	client    *elasticsearch.Client
	postIndex string
)

// PostDoc 写入索引的帖子文档
type PostDoc struct {
	PostID    int64     `json:"post_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Init 初始化 Elasticsearch 客户端
// 配置缺失时组件不启用，索引和搜索都变成无操作
func Init(cfg *settings.ElasticConfig) (err error) {
	if cfg == nil || len(cfg.Addresses) == 0 {
		zap.L().Warn("elastic config is empty, post search disabled")
		return nil
	}

	client, err = elasticsearch.NewClient(elasticsearch.Config{
		Addresses: cfg.Addresses,
		Username:  cfg.Username,
		Password:  cfg.Password,
	})
	if err != nil {
		return fmt.Errorf("create elasticsearch client failed: %w", err)
	}

	postIndex = cfg.PostIndex
	if postIndex == "" {
		postIndex = "campfire_post"
	}

	zap.L().Info("init elasticsearch success", zap.String("index", postIndex))
	return nil
}

// Enabled 搜索组件是否可用
func Enabled() bool {
	return client != nil
}

// IndexPost 把帖子写入索引
// 索引失败只记日志：搜索是辅助能力，不能影响发帖主流程
func IndexPost(ctx context.Context, post *models.Post) {
	if client == nil {
		return
	}

	doc := PostDoc{
		PostID:    post.ID,
		Title:     post.Title,
		Content:   post.Content,
		CreatedAt: post.CreateTime,
	}
	body, err := json.Marshal(doc)
	if err != nil {
		zap.L().Error("marshal post doc failed", zap.Int64("post_id", post.ID), zap.Error(err))
		return
	}

	res, err := client.Index(
		postIndex,
		bytes.NewReader(body),
		client.Index.WithDocumentID(strconv.FormatInt(post.ID, 10)),
		client.Index.WithContext(ctx),
	)
	if err != nil {
		zap.L().Error("index post failed", zap.Int64("post_id", post.ID), zap.Error(err))
		return
	}
	defer res.Body.Close()
	if res.IsError() {
		zap.L().Error("index post returned error",
			zap.Int64("post_id", post.ID),
			zap.String("status", res.Status()))
	}
}

// DeletePost 帖子删除后移除索引文档
func DeletePost(ctx context.Context, postID int64) {
	if client == nil {
		return
	}

	res, err := client.Delete(
		postIndex,
		strconv.FormatInt(postID, 10),
		client.Delete.WithContext(ctx),
	)
	if err != nil {
		zap.L().Error("delete post doc failed", zap.Int64("post_id", postID), zap.Error(err))
		return
	}
	defer res.Body.Close()
}

// SearchPostIDs 按关键词搜索帖子，返回命中的帖子ID（按相关度排序）
func SearchPostIDs(ctx context.Context, keyword string, page, size int64) ([]string, error) {
	if client == nil {
		return nil, fmt.Errorf("elasticsearch is not enabled")
	}

	query := map[string]interface{}{
		"from": (page - 1) * size,
		"size": size,
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  keyword,
				"fields": []string{"title^2", "content"},
			},
		},
		"_source": []string{"post_id"},
	}
	body, err := json.Marshal(query)
	if err != nil {
		return nil, fmt.Errorf("marshal search query failed: %w", err)
	}

	res, err := client.Search(
		client.Search.WithContext(ctx),
		client.Search.WithIndex(postIndex),
		client.Search.WithBody(bytes.NewReader(body)),
	)
	if err != nil {
		return nil, fmt.Errorf("search posts failed: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return nil, fmt.Errorf("search posts returned error: %s", res.Status())
	}

	var result struct {
		Hits struct {
			Hits []struct {
				Source struct {
					PostID int64 `json:"post_id"`
				} `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode search response failed: %w", err)
	}

	ids := make([]string, 0, len(result.Hits.Hits))
	for _, h := range result.Hits.Hits {
		ids = append(ids, strconv.FormatInt(h.Source.PostID, 10))
	}
	return ids, nil
}
