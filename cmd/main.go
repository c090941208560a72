package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/ugurshelby/blog-seo-optimizer-api/internal/controller"
	"github.com/ugurshelby/blog-seo-optimizer-api/internal/model"
	"github.com/ugurshelby/blog-seo-optimizer-api/internal/repository"
	"github.com/ugurshelby/blog-seo-optimizer-api/internal/router"
	"github.com/ugurshelby/blog-seo-optimizer-api/internal/service"
	"github.com/ugurshelby/blog-seo-optimizer-api/internal/task"
	"github.com/ugurshelby/blog-seo-optimizer-api/pkg/database"
)

// @title Blog SEO Optimizer API
// @version 1.0.0
// @description 博客内容 SEO 优化服务：接收 HTML + 焦点关键词，返回改写后的文档和新分数
// @BasePath /

func main() {
	// 加载 .env (可选，不存在时忽略)
	_ = godotenv.Load()

	// 1. 初始化数据库
	db := initDatabase()

	// 2. 初始化依赖
	deps := initDependencies(db)

	// 3. 启动定时任务
	initTasks(deps)

	// 4. 初始化路由
	r := gin.Default()
	router.InitRoutes(r, deps.MetaCtl, deps.OptimizeCtl)

	// 5. 启动服务
	startServer(r)
}

// ==================== 依赖容器 ====================

// Dependencies 依赖容器
type Dependencies struct {
	DB          *gorm.DB
	LogRepo     repository.OptimizeLogRepository
	Optimizer   *service.OptimizerService
	MetaCtl     *controller.MetaController
	OptimizeCtl *controller.OptimizeController
	Cleanup     *task.LogCleanupTask
}

// ==================== 初始化函数 ====================

// initDatabase 初始化数据库
func initDatabase() *gorm.DB {
	return database.InitDB(
		getEnv("DB_PATH", "data/optimizer.db"),
		&model.OptimizeLog{},
	)
}

// initDependencies 初始化所有依赖
func initDependencies(db *gorm.DB) *Dependencies {
	// -------- Repo 层 --------
	logRepo := repository.NewOptimizeLogRepository(db)

	// -------- 优化服务 --------
	optimizer := service.NewOptimizerService(&service.OptimizerConfig{
		RandomSeed:  getEnvInt64("SEO_RANDOM_SEED", 0),
		SiteBaseURL: getEnv("SITE_BASE_URL", ""),
	}, logRepo)

	// -------- Controller 层 --------
	cacheTTL := time.Duration(getEnvInt64("CACHE_TTL_MINUTES", 10)) * time.Minute
	metaCtl := controller.NewMetaController()
	optimizeCtl := controller.NewOptimizeController(optimizer, logRepo, cacheTTL)

	return &Dependencies{
		DB:          db,
		LogRepo:     logRepo,
		Optimizer:   optimizer,
		MetaCtl:     metaCtl,
		OptimizeCtl: optimizeCtl,
	}
}

// ==================== 定时任务 ====================

// initTasks 初始化定时任务
func initTasks(deps *Dependencies) {
	// 日志清理
	cleanup := task.NewLogCleanupTask(
		deps.LogRepo,
		int(getEnvInt64("LOG_RETENTION_DAYS", 30)),
	)
	cleanup.Start()
	deps.Cleanup = cleanup

	log.Println("定时任务已启动")
}

// ==================== 服务启动 ====================

// startServer 启动服务
func startServer(r *gin.Engine) {
	// 原版 Flask 默认监听 5000
	port := getEnv("SERVER_PORT", "5000")

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	// 异步启动服务
	go func() {
		log.Printf("服务启动在 :%s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("服务启动失败: %v", err)
		}
	}()

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("正在关闭服务...")

	// 优雅关闭，最多等待 10 秒
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("服务强制关闭: %v", err)
	}

	log.Println("服务已退出")
}

// ==================== 工具函数 ====================

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return n
		}
	}
	return defaultValue
}
