package service

import (
	"fmt"

	"github.com/ugurshelby/blog-seo-optimizer-api/internal/api/dto"
	"github.com/ugurshelby/blog-seo-optimizer-api/pkg/utils"
)

// ==================== 标签推荐 ====================

// 关键词变体模板，顺序固定，推荐时取前缀
var tagTemplates = []string{
	"%s rehberi",
	"%s 2025",
	"%s nedir",
	"%s nasıl yapılır",
	"%s fiyatları",
	"%s başvurusu",
	"%s şartları",
	"%s ücretleri",
	"%s için gerekli belgeler",
	"en iyi %s",
}

// suggestTags 生成推荐标签
// 返回固定列表的随机长度前缀 (5~10 条)，随机数可通过 SEO_RANDOM_SEED 播种复现
func (s *OptimizerService) suggestTags(keyword string) []string {
	s.mu.Lock()
	count := 5 + s.rng.Intn(6)
	s.mu.Unlock()

	tags := make([]string, 0, count)
	for _, tpl := range tagTemplates[:count] {
		tags = append(tags, fmt.Sprintf(tpl, keyword))
	}
	return tags
}

// ==================== 图片元数据 ====================

// buildImageMetadata 图片元数据，全部是关键词模板
// 文件名字段做土耳其语字符转写，其余保留原文
func buildImageMetadata(keyword string) dto.ImageMetadata {
	return dto.ImageMetadata{
		AltText:      fmt.Sprintf("%s hakkında detaylı görsel rehber", keyword),
		ImageTitle:   utils.Slugify(keyword) + "-rehberi",
		ImageCaption: fmt.Sprintf("%s ile ilgili örnek görsel", keyword),
		ImageDescription: fmt.Sprintf(
			"Bu görsel, %s konusunu adım adım açıklayan rehber içeriğimizde kullanılmıştır. %s hakkında daha fazla bilgi için yazının devamını inceleyebilirsiniz.",
			keyword, keyword),
	}
}
