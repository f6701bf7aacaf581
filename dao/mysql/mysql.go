package mysql

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/opentelemetry/tracing"

	"campfire/models"
	"campfire/settings"
)

// 全局数据库连接对象
// gorm.DB 是线程安全的，整个应用共享一个连接池即可
var db *gorm.DB

// Init 初始化 MySQL 连接
func Init(cfg *settings.MysqlConfig) (err error) {
	if cfg == nil {
		return fmt.Errorf("mysql.Init received nil config")
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DbName,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		// 与现有数据库设计保持一致，迁移时不建外键约束
		DisableForeignKeyConstraintWhenMigrating: true,
		PrepareStmt:                              true,
	}

	db, err = gorm.Open(mysql.Open(dsn), gormConfig)
	if err != nil {
		return fmt.Errorf("connect to mysql failed: %w", err)
	}

	// GORM 的 otel 插件：SQL 执行挂到请求的 trace 上
	if err = db.Use(tracing.NewPlugin(tracing.WithoutMetrics())); err != nil {
		return fmt.Errorf("register gorm otel plugin failed: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get sql.DB failed: %w", err)
	}

	if err = sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping mysql failed: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	// 必须小于 MySQL 的 wait_timeout，避免空闲连接被服务端断开后报 bad connection
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)
	sqlDB.SetConnMaxLifetime(2 * time.Hour)

	if err = migrate(); err != nil {
		return err
	}

	zap.L().Info("init mysql success", zap.String("dsn_host", cfg.Host))
	return nil
}

func migrate() error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Community{},
		&models.Post{},
		&models.Comment{},
		&models.PostMedia{},
		&models.Share{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}
	return nil
}

// Close 关闭 MySQL 连接
func Close() {
	if db != nil {
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	}
}

// GetDB 获取数据库连接实例，跨 DAO 的事务操作会用到
func GetDB() *gorm.DB {
	return db
}

// SetDB 注入数据库连接，测试时用 sqlite 内存库替换
func SetDB(d *gorm.DB) {
	db = d
}
