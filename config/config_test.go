package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeErrorMessage(t *testing.T) {
	fallback := "操作失败"
	testErr := errors.New("internal database error")

	// nil err 返回 fallback
	assert.Equal(t, fallback, SafeErrorMessage(nil, fallback))

	// release 模式返回 fallback，不暴露错误详情
	GlobalConfig = &Config{Server: ServerConfig{Mode: "release"}}
	defer func() { GlobalConfig = nil }()
	assert.Equal(t, fallback, SafeErrorMessage(testErr, fallback))

	// debug 模式返回 err.Error()
	GlobalConfig = &Config{Server: ServerConfig{Mode: "debug"}}
	assert.Equal(t, "internal database error", SafeErrorMessage(testErr, fallback))

	// GlobalConfig 为 nil 时返回 err.Error()（视为开发环境）
	GlobalConfig = nil
	assert.Equal(t, "internal database error", SafeErrorMessage(testErr, fallback))
}

func TestLoadConfig_Defaults(t *testing.T) {
	defer func() { GlobalConfig = nil }()

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, ":8000", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.NotEmpty(t, cfg.Server.StaticDir)

	// 连接池默认值必须就位
	assert.Equal(t, 100, cfg.Database.MaxOpenConns)
	assert.Equal(t, 10, cfg.Database.MaxIdleConns)
	assert.Greater(t, int64(cfg.Database.ConnMaxLifetime), int64(0))
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	defer func() { GlobalConfig = nil }()

	t.Setenv("FINBOOK_DATABASE_PASSWORD", "secret-from-env")
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "secret-from-env", cfg.Database.Password)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "db.local",
		Port:     "3306",
		Username: "u",
		Password: "p",
		DBName:   "finbook",
		Charset:  "utf8mb4",
	}
	assert.Equal(t,
		"u:p@tcp(db.local:3306)/finbook?charset=utf8mb4&parseTime=True&loc=Local",
		d.DSN())
}
