package controller

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ugurshelby/blog-seo-optimizer-api/internal/api/dto"
	"github.com/ugurshelby/blog-seo-optimizer-api/internal/repository"
	"github.com/ugurshelby/blog-seo-optimizer-api/internal/service"
	"github.com/ugurshelby/blog-seo-optimizer-api/pkg/utils"
)

// OptimizeController 内容优化接口
type OptimizeController struct {
	optimizer *service.OptimizerService
	logRepo   repository.OptimizeLogRepository

	// 响应缓存窗口，0 表示关闭
	cacheTTL time.Duration
}

// NewOptimizeController 创建优化控制器
func NewOptimizeController(optimizer *service.OptimizerService, logRepo repository.OptimizeLogRepository, cacheTTL time.Duration) *OptimizeController {
	return &OptimizeController{
		optimizer: optimizer,
		logRepo:   logRepo,
		cacheTTL:  cacheTTL,
	}
}

// ==================== 优化接口 ====================

// Optimize 执行内容优化
// @Summary 优化一篇博客的 HTML 内容
// @Tags Optimize
// @Accept json
// @Produce json
// @Param body body dto.OptimizeReq true "优化参数"
// @Success 200 {object} dto.OptimizeResp
// @Failure 400 {object} dto.ErrorResp
// @Failure 500 {object} dto.ErrorResp
// @Router /api/optimize [post]
func (ctrl *OptimizeController) Optimize(c *gin.Context) {
	rawBody, err := c.GetRawData()
	if err != nil {
		c.JSON(400, dto.ErrorResp{Error: "读取请求体失败: " + err.Error(), Success: false})
		return
	}

	// 相同请求在缓存窗口内直接复用响应
	cacheKey := utils.CacheKey(rawBody)
	if ctrl.cacheTTL > 0 {
		if cached, ok := utils.GetCache(cacheKey); ok {
			c.Data(200, "application/json; charset=utf-8", cached)
			return
		}
	}

	var req dto.OptimizeReq
	if err := json.Unmarshal(rawBody, &req); err != nil {
		c.JSON(400, dto.ErrorResp{Error: "无效的 JSON: " + err.Error(), Success: false})
		return
	}

	// 缺键才算错，空值放行 (原版契约)
	if missing := req.MissingField(); missing != "" {
		c.JSON(400, dto.ErrorResp{Error: "Missing required field: " + missing, Success: false})
		return
	}
	req.Normalize()

	ctx := c.Request.Context()
	result, err := ctrl.optimizer.Optimize(ctx, &req)
	if err != nil {
		// 原样透出错误文本，与原版响应保持一致
		c.JSON(500, dto.ErrorResp{Error: err.Error(), Success: false})
		return
	}

	resp := dto.OptimizeResp{Success: true, Data: result}
	if ctrl.cacheTTL > 0 {
		if respBytes, err := json.Marshal(resp); err == nil {
			utils.SetCache(cacheKey, respBytes, ctrl.cacheTTL)
		}
	}
	c.JSON(200, resp)
}

// ==================== 历史查询 ====================

// History 最近的优化记录
// @Summary 查询最近的优化调用记录
// @Tags History
// @Produce json
// @Param limit query int false "返回条数" default(20)
// @Success 200 {object} map[string]interface{}
// @Router /api/history [get]
func (ctrl *OptimizeController) History(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	ctx := c.Request.Context()
	logs, err := ctrl.logRepo.GetRecent(ctx, limit)
	if err != nil {
		c.JSON(500, dto.ErrorResp{Error: "查询失败: " + err.Error(), Success: false})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"data":    logs,
	})
}

// Stats 优化用量统计
// @Summary 优化调用的聚合统计
// @Tags History
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/history/stats [get]
func (ctrl *OptimizeController) Stats(c *gin.Context) {
	ctx := c.Request.Context()
	stats, err := ctrl.logRepo.GetUsageStats(ctx, time.Time{}, time.Time{})
	if err != nil {
		c.JSON(500, dto.ErrorResp{Error: "查询失败: " + err.Error(), Success: false})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"data":    stats,
	})
}
