package dto

// ==================== 请求 DTO ====================

// OptimizeReq 内容优化请求
// 必填字段用指针区分"缺失"和"空值"：原版契约里只有键缺失才算错
type OptimizeReq struct {
	Title        *string `json:"title"`
	HTMLCode     *string `json:"html_code"`
	FocusKeyword *string `json:"focus_keyword"`
	SeoScore     *int    `json:"seo_score"`

	// 可选字段
	Categories []string `json:"categories"`
	Tags       []string `json:"tags"`
	Image      string   `json:"image"`
	Schema     string   `json:"schema"`
}

// MissingField 返回第一个缺失的必填键，没有缺失返回空串
func (r *OptimizeReq) MissingField() string {
	switch {
	case r.Title == nil:
		return "title"
	case r.HTMLCode == nil:
		return "html_code"
	case r.FocusKeyword == nil:
		return "focus_keyword"
	case r.SeoScore == nil:
		return "seo_score"
	}
	return ""
}

// Normalize 填充可选字段的默认值
func (r *OptimizeReq) Normalize() {
	if len(r.Categories) == 0 {
		r.Categories = []string{"Blog"}
	}
	if r.Schema == "" {
		r.Schema = "Article"
	}
}

func (r *OptimizeReq) GetTitle() string {
	if r.Title == nil {
		return ""
	}
	return *r.Title
}

func (r *OptimizeReq) GetHTMLCode() string {
	if r.HTMLCode == nil {
		return ""
	}
	return *r.HTMLCode
}

func (r *OptimizeReq) GetFocusKeyword() string {
	if r.FocusKeyword == nil {
		return ""
	}
	return *r.FocusKeyword
}

func (r *OptimizeReq) GetSeoScore() int {
	if r.SeoScore == nil {
		return 0
	}
	return *r.SeoScore
}

// ==================== 响应 DTO ====================

// ImageMetadata 图片元数据
type ImageMetadata struct {
	AltText          string `json:"alt_text"`
	ImageTitle       string `json:"image_title"`
	ImageCaption     string `json:"image_caption"`
	ImageDescription string `json:"image_description"`
}

// OptimizeResult 优化结果
type OptimizeResult struct {
	OptimizedTitle           string        `json:"optimized_title"`
	OptimizedMetaDescription string        `json:"optimized_meta_description"`
	OptimizedHTML            string        `json:"optimized_html"`
	SuggestedTags            []string      `json:"suggested_tags"`
	ImageMetadata            ImageMetadata `json:"image_metadata"`
	SeoScoreBefore           int           `json:"seo_score_before"`
	SeoScoreAfter            int           `json:"seo_score_after"`
	Improvement              int           `json:"improvement"`
	WordCount                int           `json:"word_count"`
	KeywordDensity           float64       `json:"keyword_density"`
	TitleLength              int           `json:"title_length"`
	MetaLength               int           `json:"meta_length"`
}

// OptimizeResp 成功响应
type OptimizeResp struct {
	Success bool            `json:"success"`
	Data    *OptimizeResult `json:"data"`
}

// ErrorResp 失败响应
type ErrorResp struct {
	Error   string `json:"error"`
	Success bool   `json:"success"`
}

// ==================== 服务元数据 ====================

// Feature 功能介绍条目
type Feature struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}
