package router

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"finbook/api"
	"finbook/config"
	_ "finbook/docs"
	"finbook/middleware"
	"finbook/repository"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter 设置路由
// db 是进程内唯一的连接池句柄，按引用传入各仓储
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	// CORS 中间件，必须覆盖包括错误响应在内的所有响应
	r.Use(CORSMiddleware())

	// 编译后的前端页面 - 从配置的静态目录提供
	staticDir := cfg.Server.StaticDir
	r.GET("/", func(c *gin.Context) {
		content, err := os.ReadFile(filepath.Join(staticDir, "index.html"))
		if err != nil {
			c.String(http.StatusInternalServerError, "加载页面失败")
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", content)
	})
	// 其余静态资源（js/wasm/css）走文件服务，API 未命中仍返回 404
	staticServer := http.FileServer(http.Dir(staticDir))
	r.NoRoute(func(c *gin.Context) {
		if c.Request.Method == http.MethodGet && !strings.HasPrefix(c.Request.URL.Path, "/api/") {
			staticServer.ServeHTTP(c.Writer, c.Request)
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"code": http.StatusNotFound, "message": "not found"})
	})

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 仓储共享同一个连接池
	userRepo := repository.NewUserRepository(db)
	incomeRepo := repository.NewIncomeRepository(db)

	userHandler := api.NewUserHandler(userRepo)
	incomeHandler := api.NewIncomeHandler(incomeRepo)
	summaryHandler := api.NewSummaryHandler(incomeRepo)
	exportHandler := api.NewExportHandler(incomeRepo)

	// API 路由组
	apiGroup := r.Group("/api")
	apiGroup.Use(middleware.WriteRateLimit(60, time.Minute))
	{
		users := apiGroup.Group("/users")
		{
			users.POST("", userHandler.Create)
			users.GET("", userHandler.List)
			users.GET("/:id", userHandler.Get)
			users.DELETE("/:id", userHandler.Delete)
		}

		income := apiGroup.Group("/income")
		{
			income.POST("", incomeHandler.Create)
			income.GET("/:id", incomeHandler.ListByUser) // :id 是用户ID
			income.GET("/:id/summary", summaryHandler.IncomeSummary)
			income.PUT("/:id", incomeHandler.Update)
			income.DELETE("/:id", incomeHandler.Delete)
		}

		export := apiGroup.Group("/export")
		{
			export.GET("/csv", exportHandler.ExportCSV)
			export.GET("/json", exportHandler.ExportJSON)
			export.GET("/excel", exportHandler.ExportExcel)
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}

// CORSMiddleware CORS 跨域中间件
// 预检请求在这里短路，不会到达任何处理器
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
