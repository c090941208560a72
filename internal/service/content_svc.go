package service

import (
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/ugurshelby/blog-seo-optimizer-api/pkg/utils"
)

// ==================== 长度约束 ====================

const (
	titleMaxLen = 60

	metaMinLen = 150
	metaMaxLen = 160

	// 正文不足 600 词时追加套话段落
	minBodyWords = 600
)

const metaPadding = " Hemen okuyun, uzman tavsiyeleriyle öğrenin."

// ==================== 标题 ====================

// optimizeTitle 标题规则
// 关键词不在标题里 (不区分大小写) 则前置拼接；超过 60 字符截断到 57 + 省略号
func optimizeTitle(title, keyword string) string {
	if keyword != "" && !strings.Contains(strings.ToLower(title), strings.ToLower(keyword)) {
		title = keyword + " - " + title
	}
	if len([]rune(title)) > titleMaxLen {
		title = utils.TruncateRunes(title, titleMaxLen-3) + "..."
	}
	return title
}

// ==================== Meta 描述 ====================

// buildMetaDescription 描述规则
// 取正文第一句做种子，拼上关键词模板；不足 150 补套话，超 160 截断
// 最终长度恒在 [150, 160] 区间内
func buildMetaDescription(htmlCode, keyword string) string {
	text := utils.ExtractText(htmlCode)

	seed := text
	if idx := strings.Index(text, "."); idx >= 0 {
		seed = text[:idx]
	}
	seed = strings.TrimSpace(seed)
	if seed == "" {
		seed = fmt.Sprintf("%s hakkında merak edilen her şey", keyword)
	}

	meta := fmt.Sprintf("%s. %s hakkında detaylı bilgi, ipuçları ve güncel öneriler bu rehberde.", seed, keyword)

	for len([]rune(meta)) < metaMinLen {
		meta += metaPadding
	}
	if len([]rune(meta)) > metaMaxLen {
		meta = utils.TruncateRunes(meta, metaMaxLen-3) + "..."
	}
	return meta
}

// ==================== 正文改写 ====================

var (
	// 第一个 <p> 开标签 (可带属性)
	firstPOpenPattern = regexp.MustCompile(`(?i)<p(\s[^>]*)?>`)

	// 现存 h2 标题内容
	h2ContentPattern = regexp.MustCompile(`(?is)<h2[^>]*>(.*?)</h2>`)
)

// 第 2、3 段前置的过渡词，按段落序号取用
var transitionWords = []string{"Ayrıca", "Bununla birlikte", "Öte yandan"}

// rewriteBody 正文改写流水线
// 所有步骤在同一个字符串上按序执行，每步只命中当前的第一个匹配，
// 与原版"扁平文本 + 首次匹配"的行为保持一致（对自身输出重复执行会产生重复块，属已知行为）
func rewriteBody(htmlCode, keyword string) string {
	body := htmlCode

	// 1. 正文没有关键词时，注入到第一段开头
	if utils.CountOccurrences(utils.StripTags(body), keyword) == 0 {
		body = injectKeywordIntoFirstParagraph(body, keyword)
	}

	// 2. 没有含关键词的 h2 时，在第一段后插入生成的标题
	heading := fmt.Sprintf("<h2>%s Nedir?</h2>", keyword)
	if !hasKeywordHeading(body, keyword) {
		body = insertAfterFirstParagraphClose(body, heading)
	}

	// 3. 在该标题后插入子标题
	subHeading := fmt.Sprintf("<h3>%s Avantajları</h3>", keyword)
	body = insertAfterFirstHeadingClose(body, subHeading)

	// 4. 第一段后插入目录块
	body = insertAfterFirstParagraphClose(body, buildTOC(keyword))

	// 5. 两条内链 + 一条 nofollow 外链，各自追加到当前第一个 </p> 之前
	slug := utils.Slugify(keyword)
	links := []string{
		fmt.Sprintf(` <a href="/%s">%s rehberi</a>`, slug, keyword),
		fmt.Sprintf(` <a href="/%s-detaylari">%s detayları</a>`, slug, keyword),
		fmt.Sprintf(` <a href="https://www.google.com/search?q=%s" rel="nofollow">daha fazla bilgi</a>`, url.QueryEscape(keyword)),
	}
	for _, link := range links {
		body = strings.Replace(body, "</p>", link+"</p>", 1)
	}

	// 6. 第 2、3 段前置过渡词
	body = prependTransitions(body)

	// 7. 词数不足 600 时追加套话段落
	if utils.CountWords(utils.StripTags(body)) < minBodyWords {
		body += buildFillerSections(keyword)
	}

	return body
}

// injectKeywordIntoFirstParagraph 在第一段文本前注入关键词短语
func injectKeywordIntoFirstParagraph(body, keyword string) string {
	loc := firstPOpenPattern.FindStringIndex(body)
	if loc == nil {
		// 没有段落时直接前置一段
		return fmt.Sprintf("<p>%s konusunda bilgi.</p>", keyword) + body
	}
	return body[:loc[1]] + keyword + " konusunda " + body[loc[1]:]
}

// hasKeywordHeading 已有 h2 是否包含关键词
func hasKeywordHeading(body, keyword string) bool {
	kw := strings.ToLower(keyword)
	for _, m := range h2ContentPattern.FindAllStringSubmatch(body, -1) {
		if strings.Contains(strings.ToLower(m[1]), kw) {
			return true
		}
	}
	return false
}

// insertAfterFirstParagraphClose 在第一个 </p> 之后插入片段
func insertAfterFirstParagraphClose(body, fragment string) string {
	idx := strings.Index(body, "</p>")
	if idx < 0 {
		return body + fragment
	}
	pos := idx + len("</p>")
	return body[:pos] + fragment + body[pos:]
}

// insertAfterFirstHeadingClose 在第一个 </h2> 之后插入片段
func insertAfterFirstHeadingClose(body, fragment string) string {
	idx := strings.Index(body, "</h2>")
	if idx < 0 {
		return body + fragment
	}
	pos := idx + len("</h2>")
	return body[:pos] + fragment + body[pos:]
}

// buildTOC 目录块，四个固定锚点
func buildTOC(keyword string) string {
	return fmt.Sprintf(`<ul class="icindekiler">`+
		`<li><a href="#nedir">%s Nedir?</a></li>`+
		`<li><a href="#avantajlari">%s Avantajları</a></li>`+
		`<li><a href="#nasil-yapilir">%s Nasıl Yapılır?</a></li>`+
		`<li><a href="#sonuc">Sonuç</a></li>`+
		`</ul>`, keyword, keyword, keyword)
}

// prependTransitions 给第 2、3 段 (按当前文档顺序) 前置过渡词
func prependTransitions(body string) string {
	for i := 1; i <= 2; i++ {
		// 每次插入后位置会偏移，逐段重新定位
		matches := firstPOpenPattern.FindAllStringIndex(body, i+1)
		if len(matches) <= i {
			break
		}
		pos := matches[i][1]
		body = body[:pos] + transitionWords[i-1] + ", " + body[pos:]
	}
	return body
}

// buildFillerSections 追加的三个套话段落 (流程 / 优势 / 结论)
func buildFillerSections(keyword string) string {
	return fmt.Sprintf(`
<h2 id="nasil-yapilir">%s Nasıl Yapılır?</h2>
<p>%s sürecine başlamadan önce gerekli belgeleri eksiksiz hazırlamanız büyük önem taşır. Adım adım ilerleyerek %s başvurunuzu sorunsuz tamamlayabilir, olası gecikmelerin önüne geçebilirsiniz. Sürecin her aşamasında güncel bilgileri takip etmek size zaman kazandırır.</p>
<h2 id="avantajlari">%s Avantajları</h2>
<p>%s size sunduğu fırsatlarla uzun vadede ciddi avantaj sağlar. Doğru planlama ile %s alanındaki kazanımlarınızı en üst seviyeye çıkarabilirsiniz. Deneyimli kullanıcıların önerilerini dikkate almak bu avantajları pekiştirir.</p>
<h2 id="sonuc">Sonuç</h2>
<p>%s hakkında bu rehberde paylaştığımız bilgiler, sürecin her aşamasında size yol gösterecektir. Sorularınız için yorum bölümünü kullanabilir, güncellemeler için sayfayı takipte kalabilirsiniz.</p>`,
		keyword, keyword, keyword, keyword, keyword, keyword, keyword)
}

// ==================== 文档组装 ====================

// assembleDocument 把优化产物组装成完整 HTML 文档
func assembleDocument(siteBaseURL, title, metaDesc string, tags []string, keyword, schemaType, body string) string {
	slug := utils.Slugify(keyword)

	schema := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    schemaType,
		"headline": title,
		"author": map[string]string{
			"@type": "Person",
			"name":  "Blog Editörü",
		},
		"publisher": map[string]interface{}{
			"@type": "Organization",
			"name":  "Blog SEO Optimizer",
			"logo": map[string]string{
				"@type": "ImageObject",
				"url":   siteBaseURL + "/logo.png",
			},
		},
		// 占位日期，原版即为固定值
		"datePublished": "2025-01-01",
		"dateModified":  "2025-01-01",
	}
	schemaJSON, _ := json.Marshal(schema)

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="tr">
<head>
<meta charset="utf-8">
<title>%s</title>
<meta name="description" content="%s">
<meta name="keywords" content="%s">
<link rel="canonical" href="%s/%s">
<script type="application/ld+json">%s</script>
</head>
<body>
%s
</body>
</html>`, title, metaDesc, strings.Join(tags, ", "), siteBaseURL, slug, schemaJSON, body)
}
