package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/ugurshelby/blog-seo-optimizer-api/internal/api/dto"
	"github.com/ugurshelby/blog-seo-optimizer-api/internal/middleware"
	"github.com/ugurshelby/blog-seo-optimizer-api/internal/model"
	"github.com/ugurshelby/blog-seo-optimizer-api/internal/repository"
	"github.com/ugurshelby/blog-seo-optimizer-api/pkg/utils"
)

// ==================== 配置 ====================

// OptimizerConfig 优化服务配置
type OptimizerConfig struct {
	// 随机种子，0 表示按当前时间播种 (与原版行为一致，结果不可复现)
	RandomSeed int64

	// canonical 链接的站点地址
	SiteBaseURL string
}

// ==================== 服务 ====================

// OptimizerService 内容优化服务
// 纯文本变换，无外部 I/O；日志落库失败不影响响应
type OptimizerService struct {
	cfg     *OptimizerConfig
	logRepo repository.OptimizeLogRepository

	// rand.Rand 非并发安全，多请求共享需加锁
	mu  sync.Mutex
	rng *rand.Rand
}

// NewOptimizerService 创建优化服务
func NewOptimizerService(cfg *OptimizerConfig, logRepo repository.OptimizeLogRepository) *OptimizerService {
	if cfg == nil {
		cfg = &OptimizerConfig{}
	}
	if cfg.SiteBaseURL == "" {
		cfg.SiteBaseURL = "https://www.example.com"
	}

	seed := cfg.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &OptimizerService{
		cfg:     cfg,
		logRepo: logRepo,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// ==================== 优化入口 ====================

// Optimize 执行一次完整的内容优化
// 各子步骤失败时降级为兜底文案，只有编排层异常才返回错误
func (s *OptimizerService) Optimize(ctx context.Context, req *dto.OptimizeReq) (result *dto.OptimizeResult, err error) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("优化执行失败: %v", r)
			s.writeLog(ctx, req, nil, time.Since(start), err)
		}
	}()

	title := strings.TrimSpace(req.GetTitle())
	htmlCode := req.GetHTMLCode()
	keyword := strings.TrimSpace(req.GetFocusKeyword())
	scoreBefore := req.GetSeoScore()

	schemaType := req.Schema
	if schemaType == "" {
		schemaType = "Article"
	}

	// 标题 / 描述 / 标签 / 图片元数据，各自独立兜底
	optimizedTitle := safeStep("title", func() string {
		return optimizeTitle(title, keyword)
	}, fallbackTitle(title, keyword))

	metaDesc := safeStep("meta", func() string {
		return buildMetaDescription(htmlCode, keyword)
	}, fallbackMeta(keyword))

	suggestedTags := s.suggestTags(keyword)
	imageMeta := buildImageMetadata(keyword)

	// 正文改写失败时退回原始 HTML
	body := safeStep("body", func() string {
		return rewriteBody(htmlCode, keyword)
	}, htmlCode)

	fullDoc := assembleDocument(s.cfg.SiteBaseURL, optimizedTitle, metaDesc, suggestedTags, keyword, schemaType, body)

	// 指标基于改写后的正文文本
	bodyText := utils.ExtractText(body)
	wordCount := utils.CountWords(bodyText)
	density := keywordDensity(bodyText, keyword, wordCount)

	scoreAfter := scoreDocument(fullDoc, bodyText, keyword, scoreBefore)

	result = &dto.OptimizeResult{
		OptimizedTitle:           optimizedTitle,
		OptimizedMetaDescription: metaDesc,
		OptimizedHTML:            fullDoc,
		SuggestedTags:            suggestedTags,
		ImageMetadata:            imageMeta,
		SeoScoreBefore:           scoreBefore,
		SeoScoreAfter:            scoreAfter,
		Improvement:              scoreAfter - scoreBefore,
		WordCount:                wordCount,
		KeywordDensity:           density,
		TitleLength:              len([]rune(optimizedTitle)),
		MetaLength:               len([]rune(metaDesc)),
	}

	s.writeLog(ctx, req, result, time.Since(start), nil)

	return result, nil
}

// ==================== 子步骤兜底 ====================

// safeStep 执行单个优化步骤，panic 时降级为兜底文案
func safeStep(name string, fn func() string, fallback string) (out string) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Optimizer] %s 步骤执行失败，使用兜底文案: %v", name, r)
			out = fallback
		}
	}()
	return fn()
}

func fallbackTitle(title, keyword string) string {
	t := keyword + " - " + title
	if len([]rune(t)) > titleMaxLen {
		t = utils.TruncateRunes(t, titleMaxLen)
	}
	return t
}

func fallbackMeta(keyword string) string {
	meta := fmt.Sprintf("%s hakkında bilmeniz gereken her şey bu rehberde.", keyword)
	for len([]rune(meta)) < metaMinLen {
		meta += metaPadding
	}
	if len([]rune(meta)) > metaMaxLen {
		meta = utils.TruncateRunes(meta, metaMaxLen-3) + "..."
	}
	return meta
}

// ==================== 指标 ====================

// keywordDensity 关键词密度 (%)
// 固定为真实占比，不再像原版那样随机取值
func keywordDensity(bodyText, keyword string, wordCount int) float64 {
	if wordCount == 0 {
		return 0
	}
	occ := utils.CountOccurrences(bodyText, keyword)
	return math.Round(float64(occ)*100*100/float64(wordCount)) / 100
}

// ==================== 调用日志 ====================

// writeLog 落库一条优化日志，失败只打警告
func (s *OptimizerService) writeLog(ctx context.Context, req *dto.OptimizeReq, result *dto.OptimizeResult, duration time.Duration, opErr error) {
	if s.logRepo == nil {
		return
	}

	entry := &model.OptimizeLog{
		RequestID:    middleware.GetRequestID(ctx),
		FocusKeyword: strings.TrimSpace(req.GetFocusKeyword()),
		SchemaType:   req.Schema,
		ScoreBefore:  req.GetSeoScore(),
		DurationMs:   duration.Milliseconds(),
		Status:       model.OptimizeStatusSuccess,
	}

	if opErr != nil {
		entry.Status = model.OptimizeStatusFailed
		entry.ErrorMsg = opErr.Error()
	} else if result != nil {
		entry.ScoreAfter = result.SeoScoreAfter
		entry.Improvement = result.Improvement
		entry.WordCount = result.WordCount
		entry.TitleLength = result.TitleLength
		entry.MetaLength = result.MetaLength
		if tagsJSON, err := json.Marshal(result.SuggestedTags); err == nil {
			entry.SuggestedTags = tagsJSON
		}
	}

	if err := s.logRepo.Create(ctx, entry); err != nil {
		log.Printf("[Optimizer] 写入优化日志失败: %v", err)
	}
}
