package dto

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/nsxzhou1114/conduit-api/pkg/errs"
)

const (
	maxTitleLength    = 255
	maxTagNameLength  = 64
	maxTagsPerArticle = 20
)

// ArticleCreateRequest 创建文章请求
type ArticleCreateRequest struct {
	Article ArticleCreateFields `json:"article"`
}

// ArticleCreateFields 创建文章字段
type ArticleCreateFields struct {
	Title       string   `json:"title" binding:"required,notblank,max=255"`
	Description string   `json:"description" binding:"required"`
	Body        string   `json:"body" binding:"required"`
	TagList     []string `json:"tagList" binding:"omitempty,max=20,dive,notblank,max=64"` // nil 表示未提交
}

// ArticleUpdateRequest 更新文章请求
type ArticleUpdateRequest struct {
	Article ArticleUpdateFields `json:"article"`
}

// ArticleUpdateFields 更新文章字段，未提交的字段保持不变
type ArticleUpdateFields struct {
	Title       Optional[string]   `json:"title"`
	Description Optional[string]   `json:"description"`
	Body        Optional[string]   `json:"body"`
	TagList     Optional[[]string] `json:"tagList"` // 提交空数组表示清空标签
}

// Validate 校验已提交的字段
func (f *ArticleUpdateFields) Validate() error {
	if f.Title.Set {
		if strings.TrimSpace(f.Title.Value) == "" {
			return errs.Validation("title must not be blank")
		}
		if utf8.RuneCountInString(f.Title.Value) > maxTitleLength {
			return errs.Validation("title is too long")
		}
	}
	if f.TagList.Set {
		if len(f.TagList.Value) > maxTagsPerArticle {
			return errs.Validation("too many tags")
		}
		for _, name := range f.TagList.Value {
			if strings.TrimSpace(name) == "" || utf8.RuneCountInString(name) > maxTagNameLength {
				return errs.Validation("invalid tag name")
			}
		}
	}
	return nil
}

// IsEmpty 是否没有提交任何字段
func (f *ArticleUpdateFields) IsEmpty() bool {
	return !f.Title.Set && !f.Description.Set && !f.Body.Set && !f.TagList.Set
}

// ArticleListQuery 文章列表查询参数
type ArticleListQuery struct {
	Tag       string `form:"tag"`
	Author    string `form:"author"`
	Favorited string `form:"favorited"`
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Offset    int    `form:"offset" binding:"omitempty,min=0"`
}

// ArticleView 文章对外视图
type ArticleView struct {
	Slug           string      `json:"slug"`
	Title          string      `json:"title"`
	Description    string      `json:"description"`
	Body           string      `json:"body"`
	TagList        []string    `json:"tagList"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
	Favorited      bool        `json:"favorited"`
	FavoritesCount int64       `json:"favoritesCount"`
	Author         ProfileView `json:"author"`
}

// ArticleListView 文章列表视图
type ArticleListView struct {
	Articles      []*ArticleView `json:"articles"`
	ArticlesCount int64          `json:"articlesCount"`
}
