package routers

import (
	"net/http"
	"time"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"campfire/controller"
	"campfire/logger"
	"campfire/middlewares"
	"campfire/settings"
)

// SetupRouter 初始化路由配置
// mode: 运行模式 (debug, release, test)
func SetupRouter(mode string) *gin.Engine {
	// 1. 设置 Gin 的运行模式
	if mode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	// 2. 创建引擎 (使用 New 而不是 Default，以便自定义中间件)
	r := gin.New()

	// 解析限流配置中的时间间隔字符串（如 "10ms"）
	var fillInterval time.Duration
	var capacity int64
	if settings.Conf.RateLimit != nil {
		var err error
		fillInterval, err = time.ParseDuration(settings.Conf.RateLimit.FillInterval)
		if err != nil {
			fillInterval = 10 * time.Millisecond
		}
		capacity = settings.Conf.RateLimit.Capacity
	} else {
		// 默认 100 QPS，突发 200
		fillInterval = 10 * time.Millisecond
		capacity = 200
	}

	// 3. 注册全局中间件
	// Logger/Recovery 用自定义的 zap 版本；otelgin 负责为每个请求开 span
	r.Use(
		logger.GinLogger(),
		logger.GinRecovery(true),
		otelgin.Middleware(settings.Conf.App.Name),
		middlewares.MetricsMiddleware(),
		middlewares.RateLimitMiddleware(fillInterval, capacity),
		middlewares.TimeoutMiddleware(10*time.Second),
	)

	// 4. 运维路由
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	if mode != gin.ReleaseMode {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
	if mode == gin.DebugMode {
		pprof.Register(r)
	}
	// local 存储后端直接由本服务托管媒体文件
	if settings.Conf.Storage != nil && settings.Conf.Storage.Backend == "local" {
		r.Static("/media", settings.Conf.Storage.BaseDir)
	}

	// 5. 注册路由组
	v1 := r.Group("/api/v1")

	// A. 公共路由，不需要 JWT 认证
	{
		v1.POST("/signup", controller.SignUpHandler)             // 注册
		v1.POST("/login", controller.LoginHandler)               // 登录
		v1.GET("/refresh_token", controller.RefreshTokenHandler) // 刷新token
	}

	// B. 只读路由，允许匿名访问
	// 带合法 Token 时按登录用户视角返回（投票状态、社区身份）
	viewGroup := v1.Group("")
	viewGroup.Use(middlewares.OptionalAuthMiddleware())
	{
		viewGroup.GET("/community", controller.CommunityHandler)           // 社区列表
		viewGroup.GET("/community/:id", controller.CommunityDetailHandler) // 社区详情
		viewGroup.GET("/post/:id", controller.GetPostDetailHandler)        // 帖子详情
		viewGroup.GET("/post/:id/comments", controller.GetCommentListHandler)
		viewGroup.GET("/posts", controller.GetPostListHandler)        // 帖子列表
		viewGroup.GET("/posts/search", controller.SearchPostHandler)  // 全文搜索
	}

	// C. 认证路由
	// 需要 Header 中携带 Authorization: Bearer <token>
	authGroup := v1.Group("")
	authGroup.Use(middlewares.JWTAuthMiddleware())
	{
		// 社区
		authGroup.POST("/community", controller.CreateCommunityHandler)
		authGroup.POST("/community/:id/join", controller.JoinCommunityHandler)
		authGroup.POST("/community/:id/leave", controller.LeaveCommunityHandler)

		// 帖子
		authGroup.POST("/post", controller.CreatePostHandler)
		authGroup.PUT("/post/:id", controller.UpdatePostHandler)
		authGroup.DELETE("/post/:id", controller.DeletePostHandler)
		authGroup.POST("/post/:id/share", controller.SharePostHandler)

		// 媒体
		authGroup.POST("/post/:id/media", controller.AttachMediaHandler)
		authGroup.DELETE("/post/:id/media/:media_id", controller.DetachMediaHandler)

		// 评论
		authGroup.POST("/comment", controller.CreateCommentHandler)
		authGroup.PUT("/comment/:id", controller.UpdateCommentHandler)
		authGroup.DELETE("/comment/:id", controller.DeleteCommentHandler)

		// 投票
		authGroup.POST("/vote", controller.VoteHandler)

		// 系统检测
		authGroup.GET("/ping", func(c *gin.Context) {
			userID, _ := c.Get(controller.CtxUserIDKey)
			c.JSON(http.StatusOK, gin.H{
				"msg":     "pong",
				"user_id": userID,
			})
		})
	}

	// 6. JSON 格式的 404
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"msg": "404 page not found",
		})
	})

	return r
}
