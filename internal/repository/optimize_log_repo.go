package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/ugurshelby/blog-seo-optimizer-api/internal/model"
)

// ==================== 仓储接口 ====================

// OptimizeLogRepository 优化日志仓储接口
type OptimizeLogRepository interface {
	Create(ctx context.Context, log *model.OptimizeLog) error
	GetByID(ctx context.Context, id int64) (*model.OptimizeLog, error)
	GetRecent(ctx context.Context, limit int) ([]model.OptimizeLog, error)

	// 统计查询
	GetUsageStats(ctx context.Context, startTime, endTime time.Time) (*OptimizeUsageStats, error)
	GetKeywordStats(ctx context.Context, keyword string) (*OptimizeUsageStats, error)

	// 清理
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// ==================== 统计结构 ====================

// OptimizeUsageStats 优化用量统计
type OptimizeUsageStats struct {
	TotalCalls     int64   `json:"total_calls"`
	SuccessCount   int64   `json:"success_count"`
	FailedCount    int64   `json:"failed_count"`
	AvgImprovement float64 `json:"avg_improvement"`
	AvgScoreAfter  float64 `json:"avg_score_after"`
	AvgWordCount   float64 `json:"avg_word_count"`
	AvgDurationMs  float64 `json:"avg_duration_ms"`
}

// ==================== 仓储实现 ====================

type optimizeLogRepo struct {
	db *gorm.DB
}

// NewOptimizeLogRepository 创建优化日志仓储
func NewOptimizeLogRepository(db *gorm.DB) OptimizeLogRepository {
	return &optimizeLogRepo{db: db}
}

func (r *optimizeLogRepo) Create(ctx context.Context, log *model.OptimizeLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *optimizeLogRepo) GetByID(ctx context.Context, id int64) (*model.OptimizeLog, error) {
	var log model.OptimizeLog
	if err := r.db.WithContext(ctx).First(&log, id).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

func (r *optimizeLogRepo) GetRecent(ctx context.Context, limit int) ([]model.OptimizeLog, error) {
	var logs []model.OptimizeLog
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}

func (r *optimizeLogRepo) GetUsageStats(ctx context.Context, startTime, endTime time.Time) (*OptimizeUsageStats, error) {
	var stats OptimizeUsageStats

	query := r.db.WithContext(ctx).Model(&model.OptimizeLog{})
	if !startTime.IsZero() {
		query = query.Where("created_at >= ?", startTime)
	}
	if !endTime.IsZero() {
		query = query.Where("created_at <= ?", endTime)
	}

	err := query.Select(`
		COUNT(*) as total_calls,
		SUM(CASE WHEN status = 'success' THEN 1 ELSE 0 END) as success_count,
		SUM(CASE WHEN status = 'failed' THEN 1 ELSE 0 END) as failed_count,
		COALESCE(AVG(improvement), 0) as avg_improvement,
		COALESCE(AVG(score_after), 0) as avg_score_after,
		COALESCE(AVG(word_count), 0) as avg_word_count,
		COALESCE(AVG(duration_ms), 0) as avg_duration_ms
	`).Scan(&stats).Error

	return &stats, err
}

func (r *optimizeLogRepo) GetKeywordStats(ctx context.Context, keyword string) (*OptimizeUsageStats, error) {
	var stats OptimizeUsageStats

	err := r.db.WithContext(ctx).Model(&model.OptimizeLog{}).
		Where("focus_keyword = ?", keyword).
		Select(`
			COUNT(*) as total_calls,
			SUM(CASE WHEN status = 'success' THEN 1 ELSE 0 END) as success_count,
			SUM(CASE WHEN status = 'failed' THEN 1 ELSE 0 END) as failed_count,
			COALESCE(AVG(improvement), 0) as avg_improvement,
			COALESCE(AVG(score_after), 0) as avg_score_after,
			COALESCE(AVG(word_count), 0) as avg_word_count,
			COALESCE(AVG(duration_ms), 0) as avg_duration_ms
		`).Scan(&stats).Error

	return &stats, err
}

func (r *optimizeLogRepo) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	// 物理删除，日志表不走软删除回收站
	result := r.db.WithContext(ctx).
		Unscoped().
		Where("created_at < ?", cutoff).
		Delete(&model.OptimizeLog{})
	return result.RowsAffected, result.Error
}
