package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"campfire/controller"
	"campfire/dao/elastic"
	"campfire/dao/mysql"
	"campfire/dao/redis"
	_ "campfire/docs" // 导入生成的 Swagger 文档包
	"campfire/logger"
	"campfire/logic"
	"campfire/pkg/mq"
	"campfire/pkg/snowflake"
	"campfire/pkg/storage"
	"campfire/pkg/tracing"
	"campfire/routers"
	"campfire/settings"
)

// @title campfire项目接口文档
// @version 1.0
// @description 社区内容平台：社区、帖子、评论、投票、媒体与分享

// @host 127.0.0.1:8080
// @BasePath /api/v1

func main() {
	// 1. 加载配置
	// 配置是程序运行的基础，必须最先加载
	var confFile string
	flag.StringVar(&confFile, "conf", "./config.yaml", "配置文件路径")
	flag.Parse()

	if err := settings.Init(confFile); err != nil {
		fmt.Printf("init settings failed, err:%v\n", err)
		return
	}
	// 雪花算法在业务逻辑开始前就绪
	if err := snowflake.Init(settings.Conf.Snowflake.StartTime, settings.Conf.Snowflake.MachineID); err != nil {
		fmt.Printf("init snowflake failed, err:%v\n", err)
		return
	}

	// 2. 初始化日志，尽早初始化以便记录后续的启动过程
	if err := logger.Init(settings.Conf.Log, settings.Conf.App.Mode); err != nil {
		fmt.Printf("init logger failed, err:%v\n", err)
		return
	}
	// zap 使用缓冲区，退出前必须 Sync 防止日志丢失
	defer zap.L().Sync()

	// 3. 核心依赖挂了必须 Fatal，不要带病运行
	if err := mysql.Init(settings.Conf.Mysql); err != nil {
		zap.L().Fatal("init mysql failed", zap.Error(err))
	}
	defer mysql.Close()

	if err := redis.Init(settings.Conf.Redis); err != nil {
		zap.L().Fatal("init redis failed", zap.Error(err))
	}
	defer redis.Close()

	if err := storage.Init(settings.Conf.Storage); err != nil {
		zap.L().Fatal("init storage failed", zap.Error(err))
	}

	// 4. 可选依赖：搜索、消息队列、链路追踪
	// 配置缺失时各自降级为禁用，不阻塞启动
	if err := elastic.Init(settings.Conf.Elastic); err != nil {
		zap.L().Fatal("init elasticsearch failed", zap.Error(err))
	}

	if err := mq.Init(settings.Conf.MQ); err != nil {
		zap.L().Fatal("init rabbitmq failed", zap.Error(err))
	}
	defer mq.Close()
	// 媒体清理消费者：收到事件后删除存储里的文件
	if err := mq.StartCleanupConsumer(logic.CleanupMediaFile); err != nil {
		zap.L().Fatal("start media cleanup consumer failed", zap.Error(err))
	}

	if err := tracing.Init(settings.Conf.Trace, settings.Conf.App.Name); err != nil {
		zap.L().Fatal("init tracing failed", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		tracing.Shutdown(ctx)
	}()

	// 5. 初始化Validator翻译器，报错信息返回中文
	if err := controller.InitTrans("zh"); err != nil {
		zap.L().Fatal("init validator trans failed", zap.Error(err))
	}

	// 6. 注册路由
	r := routers.SetupRouter(settings.Conf.App.Mode)

	// 7. 启动服务 (优雅关机模式)
	port := settings.Conf.App.Port
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: r,
	}

	// ListenAndServe 是阻塞的，放在 goroutine 里启动
	go func() {
		zap.L().Info("server is running...", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("listen failed", zap.Error(err))
		}
	}()

	// 8. 等待中断信号来优雅地关闭服务器
	// 优雅关机允许服务处理完当前请求后再退出
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.L().Info("shutdown server ...")

	// 给服务器 5 秒处理完正在进行的请求，超时强制关闭
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zap.L().Fatal("server shutdown failed", zap.Error(err))
	}

	zap.L().Info("server exiting")
}
