package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/ugurshelby/blog-seo-optimizer-api/internal/api/dto"
)

// ==================== 服务元数据 ====================

const (
	ServiceName    = "Blog SEO Optimizer API"
	ServiceVersion = "1.0.0"
)

// 营销功能列表，内容与原版一字不差
var features = []dto.Feature{
	{
		Name:        "Title Tag Optimization",
		Description: "Optimize title tags with focus keywords (55-60 characters)",
		Icon:        "⚡",
	},
	{
		Name:        "Meta Description",
		Description: "Generate SEO-friendly meta descriptions (140-160 characters)",
		Icon:        "📝",
	},
	{
		Name:        "Keyword Density",
		Description: "Optimize keyword density to 1.5-2.5%",
		Icon:        "🎯",
	},
	{
		Name:        "Image Alt Text",
		Description: "Add SEO-friendly alt text to images",
		Icon:        "🖼️",
	},
	{
		Name:        "Link Optimization",
		Description: "Add internal and external links",
		Icon:        "🔗",
	},
	{
		Name:        "Schema Markup",
		Description: "Add structured data markup",
		Icon:        "📊",
	},
}

// MetaController 服务元数据接口
type MetaController struct{}

func NewMetaController() *MetaController {
	return &MetaController{}
}

// Home 服务首页
// @Summary 服务元数据
// @Tags Meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (ctrl *MetaController) Home(c *gin.Context) {
	names := make([]string, 0, len(features))
	for _, f := range features {
		names = append(names, f.Name)
	}

	c.JSON(200, gin.H{
		"message":  ServiceName,
		"version":  ServiceVersion,
		"status":   "running",
		"features": names,
	})
}

// Health 健康检查
// @Summary 健康检查，恒定返回 healthy
// @Tags Meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/health [get]
func (ctrl *MetaController) Health(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "healthy",
		"service": ServiceName,
		"version": ServiceVersion,
	})
}

// Features 功能列表
// @Summary 可用功能列表
// @Tags Meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/features [get]
func (ctrl *MetaController) Features(c *gin.Context) {
	c.JSON(200, gin.H{
		"features": features,
	})
}
