package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
)

// 针对运行中的服务做一轮全链路冒烟测试
// 用法: go run ./cmd/smoketest [baseURL]
func main() {
	baseURL := "http://localhost:5000"
	if len(os.Args) > 1 {
		baseURL = os.Args[1]
	}

	fmt.Printf(">>> 开始冒烟测试: %s\n", baseURL)

	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetTimeout(10 * time.Second)
	client.SetRetryCount(2)

	// ------------------------------------------------
	// 1. 健康检查
	// ------------------------------------------------
	resp, err := client.R().Get("/api/health")
	if err != nil {
		log.Fatalf("❌ 健康检查请求失败: %v", err)
	}
	if resp.StatusCode() != 200 {
		log.Fatalf("❌ 健康检查返回 %d: %s", resp.StatusCode(), resp.String())
	}
	fmt.Println("✅ 健康检查通过")

	// ------------------------------------------------
	// 2. 功能列表
	// ------------------------------------------------
	resp, err = client.R().Get("/api/features")
	if err != nil || resp.StatusCode() != 200 {
		log.Fatalf("❌ 功能列表获取失败: %v (状态码 %d)", err, resp.StatusCode())
	}
	fmt.Println("✅ 功能列表正常")

	// ------------------------------------------------
	// 3. 缺字段请求应返回 400
	// ------------------------------------------------
	resp, err = client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{"html_code": "<p>test</p>"}).
		Post("/api/optimize")
	if err != nil {
		log.Fatalf("❌ 校验请求失败: %v", err)
	}
	if resp.StatusCode() != 400 {
		log.Fatalf("❌ 缺字段请求应返回 400，实际 %d: %s", resp.StatusCode(), resp.String())
	}
	fmt.Println("✅ 必填字段校验正常")

	// ------------------------------------------------
	// 4. 完整优化请求
	// ------------------------------------------------
	var result struct {
		Success bool `json:"success"`
		Data    struct {
			OptimizedTitle string `json:"optimized_title"`
			SeoScoreBefore int    `json:"seo_score_before"`
			SeoScoreAfter  int    `json:"seo_score_after"`
			Improvement    int    `json:"improvement"`
		} `json:"data"`
	}

	resp, err = client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"title":         "Schengen Vizesi Başvuru Rehberi",
			"html_code":     "<p>Schengen bölgesine seyahat etmek isteyenler için başvuru süreci zaman alabilir.</p><p>Belgelerinizi önceden hazırlamanız gerekir.</p>",
			"focus_keyword": "Schengen Vizesi",
			"seo_score":     45,
		}).
		SetResult(&result).
		Post("/api/optimize")
	if err != nil {
		log.Fatalf("❌ 优化请求失败: %v", err)
	}
	if resp.StatusCode() != 200 || !result.Success {
		log.Fatalf("❌ 优化失败 (状态码 %d): %s", resp.StatusCode(), resp.String())
	}
	if result.Data.SeoScoreAfter < result.Data.SeoScoreBefore {
		log.Fatalf("❌ 分数没有提升: %d -> %d", result.Data.SeoScoreBefore, result.Data.SeoScoreAfter)
	}

	fmt.Printf("✅ 优化成功: [%s] 分数 %d -> %d (+%d)\n",
		result.Data.OptimizedTitle,
		result.Data.SeoScoreBefore,
		result.Data.SeoScoreAfter,
		result.Data.Improvement)

	// ------------------------------------------------
	// 5. 历史记录
	// ------------------------------------------------
	resp, err = client.R().Get("/api/history?limit=5")
	if err != nil || resp.StatusCode() != 200 {
		log.Fatalf("❌ 历史记录查询失败: %v (状态码 %d)", err, resp.StatusCode())
	}
	fmt.Println("✅ 历史记录正常")

	fmt.Println("🎉🎉🎉 冒烟测试全部通过！")
}
