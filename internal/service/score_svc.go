package service

import (
	"log"
	"regexp"
	"strings"

	"github.com/ugurshelby/blog-seo-optimizer-api/pkg/utils"
)

// ==================== 打分规则 ====================

var (
	titleTagPattern     = regexp.MustCompile(`(?is)<title[^>]*>.*?</title>`)
	metaDescPattern     = regexp.MustCompile(`(?i)<meta\s+name="description"`)
	h1Pattern           = regexp.MustCompile(`(?i)<h1[\s>]`)
	h2Pattern           = regexp.MustCompile(`(?i)<h2[\s>]`)
	h3Pattern           = regexp.MustCompile(`(?i)<h3[\s>]`)
	internalLinkPattern = regexp.MustCompile(`(?i)<a\s[^>]*href="/`)
	externalLinkPattern = regexp.MustCompile(`(?i)<a\s[^>]*href="https?://`)
	imgAltPattern       = regexp.MustCompile(`(?i)<img\s[^>]*alt=`)
)

// scoreDocument 启发式打分
// 从当前分数出发按规则加分，封顶 100；任何 panic 降级为 min(current+25, 95)
func scoreDocument(doc, bodyText, keyword string, current int) (after int) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Optimizer] 打分异常，使用保守兜底分: %v", r)
			after = min(current+25, 95)
			if after < current {
				after = current
			}
		}
	}()

	score := current

	// 基础标签
	if titleTagPattern.MatchString(doc) {
		score += 10
	}
	if metaDescPattern.MatchString(doc) {
		score += 10
	}
	if h1Pattern.MatchString(doc) {
		score += 5
	}

	// 标题层级，均有封顶
	score += cappedCount(h2Pattern, doc, 2, 6)
	score += cappedCount(h3Pattern, doc, 1, 4)

	// 关键词出现 3 次以上
	if utils.CountOccurrences(bodyText, keyword) >= 3 {
		score += 15
	}

	// 链接与图片
	score += cappedCount(internalLinkPattern, doc, 2, 6)
	score += cappedCount(externalLinkPattern, doc, 2, 4)
	score += cappedCount(imgAltPattern, doc, 2, 6)

	// 内容长度
	if utils.CountWords(bodyText) >= minBodyWords {
		score += 10
	}

	// 结构标记
	if strings.Contains(doc, `class="icindekiler"`) {
		score += 5
	}
	if strings.Contains(doc, "application/ld+json") {
		score += 5
	}

	if score > 100 {
		score = 100
	}
	return score
}

// cappedCount 按匹配数加分，带封顶
func cappedCount(re *regexp.Regexp, s string, per, ceiling int) int {
	points := len(re.FindAllStringIndex(s, -1)) * per
	if points > ceiling {
		return ceiling
	}
	return points
}
