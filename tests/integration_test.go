package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ugurshelby/blog-seo-optimizer-api/internal/api/dto"
	"github.com/ugurshelby/blog-seo-optimizer-api/internal/controller"
	"github.com/ugurshelby/blog-seo-optimizer-api/internal/model"
	"github.com/ugurshelby/blog-seo-optimizer-api/internal/repository"
	"github.com/ugurshelby/blog-seo-optimizer-api/internal/router"
	"github.com/ugurshelby/blog-seo-optimizer-api/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ==================== 集成测试套件 ====================

type IntegrationSuite struct {
	DB      *gorm.DB
	Router  *gin.Engine
	LogRepo repository.OptimizeLogRepository
	T       *testing.T
}

func NewIntegrationSuite(t *testing.T) *IntegrationSuite {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接数据库失败: %v", err)
	}

	// 内存库限制单连接，避免连接池各自拿到空库
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
	}

	if err := db.AutoMigrate(&model.OptimizeLog{}); err != nil {
		t.Fatalf("数据库迁移失败: %v", err)
	}

	logRepo := repository.NewOptimizeLogRepository(db)
	optimizer := service.NewOptimizerService(&service.OptimizerConfig{RandomSeed: 7}, logRepo)

	r := gin.New()
	r.Use(gin.Recovery())
	router.InitRoutes(r,
		controller.NewMetaController(),
		controller.NewOptimizeController(optimizer, logRepo, 0),
	)

	return &IntegrationSuite{
		DB:      db,
		Router:  r,
		LogRepo: logRepo,
		T:       t,
	}
}

func (s *IntegrationSuite) postJSON(path string, body interface{}) *httptest.ResponseRecorder {
	jsonBody, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)
	return w
}

func (s *IntegrationSuite) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)
	return w
}

func optimizeBody(title, html, keyword string, score int) map[string]interface{} {
	return map[string]interface{}{
		"title":         title,
		"html_code":     html,
		"focus_keyword": keyword,
		"seo_score":     score,
	}
}

// ==================== 优化模块集成测试 ====================

func TestIntegration_OptimizeFlow(t *testing.T) {
	suite := NewIntegrationSuite(t)

	t.Run("EndToEnd", func(t *testing.T) {
		w := suite.postJSON("/api/optimize", optimizeBody("Guide", "<p>Hello world</p>", "Test", 40))
		if w.Code != 200 {
			t.Fatalf("优化请求失败: %d, %s", w.Code, w.Body.String())
		}

		var resp dto.OptimizeResp
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("响应解析失败: %v", err)
		}
		if !resp.Success || resp.Data == nil {
			t.Fatal("响应缺少 data")
		}

		if resp.Data.OptimizedTitle != "Test - Guide" {
			t.Errorf("标题错误: got %q", resp.Data.OptimizedTitle)
		}
		if !strings.Contains(resp.Data.OptimizedHTML, "Test konusunda Hello world") {
			t.Error("正文缺少关键词注入")
		}
		if !strings.Contains(resp.Data.OptimizedHTML, "<h2>Test Nedir?</h2>") {
			t.Error("正文缺少关键词小标题")
		}
		if resp.Data.SeoScoreAfter < resp.Data.SeoScoreBefore {
			t.Errorf("分数下降: %d -> %d", resp.Data.SeoScoreBefore, resp.Data.SeoScoreAfter)
		}

		metaLen := len([]rune(resp.Data.OptimizedMetaDescription))
		if metaLen < 150 || metaLen > 160 {
			t.Errorf("meta description 长度越界: %d", metaLen)
		}

		tagCount := len(resp.Data.SuggestedTags)
		if tagCount < 5 || tagCount > 10 {
			t.Errorf("标签数量越界: %d", tagCount)
		}
	})

	t.Run("LogPersisted", func(t *testing.T) {
		var count int64
		suite.DB.Model(&model.OptimizeLog{}).Count(&count)
		if count < 1 {
			t.Error("优化日志未落库")
		}

		var log model.OptimizeLog
		suite.DB.Order("id DESC").First(&log)
		if log.FocusKeyword != "Test" {
			t.Errorf("日志关键词错误: got %q", log.FocusKeyword)
		}
		if log.Status != model.OptimizeStatusSuccess {
			t.Errorf("日志状态错误: got %q", log.Status)
		}
		if log.ScoreAfter < log.ScoreBefore {
			t.Errorf("日志分数错误: %d -> %d", log.ScoreBefore, log.ScoreAfter)
		}
	})

	t.Run("MissingField", func(t *testing.T) {
		w := suite.postJSON("/api/optimize", map[string]interface{}{
			"title":     "Guide",
			"html_code": "<p>Hello</p>",
			"seo_score": 40,
		})
		if w.Code != 400 {
			t.Errorf("缺键应返回 400: got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "Missing required field: focus_keyword") {
			t.Errorf("错误消息不符: %s", w.Body.String())
		}
	})

	t.Run("HistoryAfterOptimize", func(t *testing.T) {
		w := suite.get("/api/history?limit=10")
		if w.Code != 200 {
			t.Fatalf("历史查询失败: %d", w.Code)
		}

		var resp struct {
			Success bool                `json:"success"`
			Data    []model.OptimizeLog `json:"data"`
		}
		json.Unmarshal(w.Body.Bytes(), &resp)
		if len(resp.Data) < 1 {
			t.Error("历史记录为空")
		}
	})
}

// ==================== 元数据模块集成测试 ====================

func TestIntegration_MetaEndpoints(t *testing.T) {
	suite := NewIntegrationSuite(t)

	t.Run("HealthAlwaysHealthy", func(t *testing.T) {
		w := suite.get("/api/health")
		if w.Code != 200 {
			t.Errorf("健康检查失败: %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "healthy") {
			t.Errorf("健康检查响应不符: %s", w.Body.String())
		}
	})

	t.Run("Home", func(t *testing.T) {
		w := suite.get("/")
		if w.Code != 200 {
			t.Errorf("首页失败: %d", w.Code)
		}

		var resp map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["status"] != "running" {
			t.Errorf("首页状态不符: %v", resp["status"])
		}
	})

	t.Run("Features", func(t *testing.T) {
		w := suite.get("/api/features")
		if w.Code != 200 {
			t.Errorf("功能列表失败: %d", w.Code)
		}
	})
}

// ==================== 并发测试 ====================

func TestIntegration_Concurrency(t *testing.T) {
	suite := NewIntegrationSuite(t)

	t.Run("ConcurrentOptimizeRequests", func(t *testing.T) {
		var wg sync.WaitGroup
		errors := make(chan error, 20)

		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				w := suite.postJSON("/api/optimize", optimizeBody(
					fmt.Sprintf("Guide %d", n),
					fmt.Sprintf("<p>Content number %d here</p>", n),
					"Vize",
					30+n,
				))
				if w.Code != 200 {
					errors <- fmt.Errorf("请求 %d 失败: %d", n, w.Code)
				}
			}(i)
		}

		wg.Wait()
		close(errors)

		errorCount := 0
		for range errors {
			errorCount++
		}
		if errorCount > 0 {
			t.Errorf("并发优化失败: %d 个错误", errorCount)
		}

		var count int64
		suite.DB.Model(&model.OptimizeLog{}).Count(&count)
		if count != 20 {
			t.Errorf("日志条数不符: got %d", count)
		}
	})
}

// ==================== 数据一致性测试 ====================

func TestIntegration_DataConsistency(t *testing.T) {
	suite := NewIntegrationSuite(t)

	t.Run("StatsMatchLogs", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			suite.postJSON("/api/optimize", optimizeBody("Guide", "<p>Some body text</p>", "Pasaport", 50))
		}

		w := suite.get("/api/history/stats")
		if w.Code != 200 {
			t.Fatalf("统计查询失败: %d", w.Code)
		}

		var resp struct {
			Success bool                          `json:"success"`
			Data    repository.OptimizeUsageStats `json:"data"`
		}
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp.Data.TotalCalls != 3 {
			t.Errorf("统计总数不符: got %d", resp.Data.TotalCalls)
		}
		if resp.Data.SuccessCount != 3 {
			t.Errorf("成功数不符: got %d", resp.Data.SuccessCount)
		}
	})

	t.Run("LogRetention", func(t *testing.T) {
		old := &model.OptimizeLog{FocusKeyword: "eski", Status: model.OptimizeStatusSuccess}
		suite.DB.Create(old)
		suite.DB.Model(old).UpdateColumn("created_at", time.Now().AddDate(0, 0, -60))

		deleted, err := suite.LogRepo.DeleteBefore(context.Background(), time.Now().AddDate(0, 0, -30))
		if err != nil {
			t.Fatalf("清理失败: %v", err)
		}
		if deleted != 1 {
			t.Errorf("清理条数不符: got %d", deleted)
		}
	})
}
