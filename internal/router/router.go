package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/ugurshelby/blog-seo-optimizer-api/internal/controller"
	"github.com/ugurshelby/blog-seo-optimizer-api/internal/middleware"

	_ "github.com/ugurshelby/blog-seo-optimizer-api/docs"
)

// InitRoutes 注册所有路由
func InitRoutes(r *gin.Engine,
	metaCtl *controller.MetaController,
	optimizeCtl *controller.OptimizeController) {
	r.Use(middleware.CORS())
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog())

	// 1. Swagger 文档路由
	// 访问 http://localhost:5000/swagger/index.html 即可查看
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 2. 服务首页
	r.GET("/", metaCtl.Home)

	// 3. API 路由组
	api := r.Group("/api")
	{
		// 元数据
		api.GET("/health", metaCtl.Health)
		api.GET("/features", metaCtl.Features)

		// 优化
		api.POST("/optimize", optimizeCtl.Optimize)

		// history 历史记录
		history := api.Group("/history")
		{
			// GET /api/history
			history.GET("", optimizeCtl.History)
			// GET /api/history/stats
			history.GET("/stats", optimizeCtl.Stats)
		}
	}
}
