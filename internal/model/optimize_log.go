package model

import "gorm.io/datatypes"

// OptimizeLog 优化调用日志
type OptimizeLog struct {
	BaseModel

	// 请求信息
	RequestID    string `gorm:"size:64;index;comment:请求ID"`
	FocusKeyword string `gorm:"size:255;index;comment:焦点关键词"`
	SchemaType   string `gorm:"size:64;comment:结构化数据类型"`

	// 优化结果
	ScoreBefore int `gorm:"comment:优化前分数"`
	ScoreAfter  int `gorm:"comment:优化后分数"`
	Improvement int `gorm:"comment:提升分数"`
	WordCount   int `gorm:"comment:正文词数"`
	TitleLength int `gorm:"comment:标题长度"`
	MetaLength  int `gorm:"comment:描述长度"`

	// 推荐标签 (JSON 数组)
	SuggestedTags datatypes.JSON `gorm:"comment:推荐标签"`

	// 性能
	DurationMs int64 `gorm:"comment:耗时(毫秒)"`

	// 状态
	Status   string `gorm:"size:32;index;default:success;comment:状态(success/failed)"`
	ErrorMsg string `gorm:"size:1024;comment:错误信息"`
}

func (OptimizeLog) TableName() string {
	return "optimize_logs"
}

// ==================== 状态常量 ====================

const (
	OptimizeStatusSuccess = "success"
	OptimizeStatusFailed  = "failed"
)
