package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"campfire/settings"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// 媒体清理走异步消息：数据库里的级联删除是一个事务，
// 而 blob 文件的删除允许滞后，由后台消费者完成
const (
	cleanupQueue      = "media_cleanup"
	cleanupRoutingKey = "media.cleanup"
)

// MediaCleanupEvent 帖子或媒体删除后待清理的文件
type MediaCleanupEvent struct {
	URL     string `json:"url"`
	PostID  int64  `json:"post_id"`
	Deleted int64  `json:"deleted_at"` // unix 秒
}

var (
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
)

// Init 建立 RabbitMQ 连接并声明 exchange / queue
// cfg 为 nil 时组件不启用，Publish 变成无操作
func Init(cfg *settings.MQConfig) (err error) {
	if cfg == nil || cfg.URL == "" {
		zap.L().Warn("mq config is empty, media cleanup events disabled")
		return nil
	}

	conn, err = amqp.Dial(cfg.URL)
	if err != nil {
		return fmt.Errorf("connect to rabbitmq failed: %w", err)
	}

	channel, err = conn.Channel()
	if err != nil {
		return fmt.Errorf("open rabbitmq channel failed: %w", err)
	}

	exchange = cfg.Exchange
	if err = channel.ExchangeDeclare(exchange, "direct", true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange failed: %w", err)
	}

	q, err := channel.QueueDeclare(cleanupQueue, true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("declare queue failed: %w", err)
	}
	if err = channel.QueueBind(q.Name, cleanupRoutingKey, exchange, false, nil); err != nil {
		return fmt.Errorf("bind queue failed: %w", err)
	}

	zap.L().Info("init rabbitmq success", zap.String("exchange", exchange))
	return nil
}

// PublishMediaCleanup 发布一条媒体清理事件
// MQ 未启用或发布失败只记日志，不影响调用方的主流程
func PublishMediaCleanup(ctx context.Context, ev MediaCleanupEvent) {
	if channel == nil {
		return
	}

	body, err := json.Marshal(ev)
	if err != nil {
		zap.L().Error("marshal media cleanup event failed", zap.Error(err))
		return
	}

	pubCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	err = channel.PublishWithContext(pubCtx, exchange, cleanupRoutingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
	if err != nil {
		zap.L().Error("publish media cleanup event failed",
			zap.String("url", ev.URL),
			zap.Error(err))
	}
}

// StartCleanupConsumer 启动后台消费者，对每条事件调用 handler 删除文件
// handler 返回错误时消息重回队列，等待下次投递
func StartCleanupConsumer(handler func(ctx context.Context, ev MediaCleanupEvent) error) error {
	if channel == nil {
		return nil
	}

	deliveries, err := channel.Consume(cleanupQueue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume queue failed: %w", err)
	}

	go func() {
		for d := range deliveries {
			var ev MediaCleanupEvent
			if err := json.Unmarshal(d.Body, &ev); err != nil {
				zap.L().Error("unmarshal media cleanup event failed", zap.Error(err))
				_ = d.Reject(false) // 消息本身坏了，重试没有意义
				continue
			}

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			if err := handler(ctx, ev); err != nil {
				zap.L().Error("media cleanup failed",
					zap.String("url", ev.URL),
					zap.Error(err))
				_ = d.Nack(false, true)
			} else {
				_ = d.Ack(false)
			}
			cancel()
		}
	}()
	return nil
}

// Close 关闭连接
func Close() {
	if channel != nil {
		_ = channel.Close()
	}
	if conn != nil {
		_ = conn.Close()
	}
}
