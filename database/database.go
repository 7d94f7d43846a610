package database

import (
	"fmt"
	"log"

	"finbook/config"
	"finbook/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Init 初始化数据库连接池
// 进程内唯一的连接来源，句柄按引用传给路由与各仓储，不放全局变量
func Init(cfg *config.Config) (*gorm.DB, error) {
	logMode := logger.Info
	if cfg.Server.Mode == "release" {
		logMode = logger.Warn
	}

	db, err := gorm.Open(mysql.Open(cfg.Database.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logMode),
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	// 获取底层 *sql.DB 配置连接池
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// 自动迁移数据库表
	if err := db.AutoMigrate(
		&models.User{},
		&models.Income{},
	); err != nil {
		return nil, err
	}

	log.Println("数据库初始化成功")
	return db, nil
}
