package task

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/ugurshelby/blog-seo-optimizer-api/internal/repository"
)

// LogCleanupTask 优化日志清理任务
type LogCleanupTask struct {
	logRepo repository.OptimizeLogRepository
	Cron    *cron.Cron

	// 日志保留天数
	retentionDays int
}

func NewLogCleanupTask(logRepo repository.OptimizeLogRepository, retentionDays int) *LogCleanupTask {
	if retentionDays <= 0 {
		retentionDays = 30
	}
	return &LogCleanupTask{
		logRepo:       logRepo,
		Cron:          cron.New(cron.WithSeconds()), // 支持秒级控制
		retentionDays: retentionDays,
	}
}

// Start 启动清理任务
func (t *LogCleanupTask) Start() {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		log.Println("[LogCleanup] 服务启动，正在执行首次清理...")
		t.Execute(ctx)
	}()

	// 策略：每天凌晨 3 点清理一次
	// Cron: "0 0 3 * * *"
	_, err := t.Cron.AddFunc("0 0 3 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		t.Execute(ctx)
	})

	if err != nil {
		log.Fatalf("无法启动 LogCleanup: %v", err)
	}

	t.Cron.Start()
	log.Printf("LogCleanup 清理任务已启动 (保留最近 %d 天)", t.retentionDays)
}

// Stop 停止清理任务
func (t *LogCleanupTask) Stop() {
	t.Cron.Stop()
}

// Execute 执行一次清理 (由 Cron 定时触发)
func (t *LogCleanupTask) Execute(ctx context.Context) {
	cutoff := time.Now().AddDate(0, 0, -t.retentionDays)

	deleted, err := t.logRepo.DeleteBefore(ctx, cutoff)
	if err != nil {
		log.Printf("[LogCleanup] 清理失败: %v", err)
		return
	}

	if deleted > 0 {
		log.Printf("[LogCleanup] 已清理 %d 条过期日志 (早于 %s)", deleted, cutoff.Format("2006-01-02"))
	}
}
