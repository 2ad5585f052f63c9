package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nsxzhou1114/conduit-api/internal/dto"
	"github.com/nsxzhou1114/conduit-api/internal/model"
	"github.com/nsxzhou1114/conduit-api/pkg/errs"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// ArticleService 文章服务，负责文章的创建、更新、删除和查询
type ArticleService struct {
	db        *gorm.DB
	logger    *zap.SugaredLogger
	slugs     *SlugGenerator
	tags      *TagService
	favorites *FavoriteService
	views     *ArticleViewAssembler
}

// NewArticleService 创建文章服务实例
func NewArticleService(
	db *gorm.DB,
	logger *zap.SugaredLogger,
	slugs *SlugGenerator,
	tags *TagService,
	favorites *FavoriteService,
	views *ArticleViewAssembler,
) *ArticleService {
	return &ArticleService{
		db:        db,
		logger:    logger,
		slugs:     slugs,
		tags:      tags,
		favorites: favorites,
		views:     views,
	}
}

// Create 创建文章，提交了标签列表时在同一事务内关联标签
func (s *ArticleService) Create(ctx context.Context, authorID uint, fields *dto.ArticleCreateFields) (*dto.ArticleView, error) {
	article := &model.Article{
		Title:       fields.Title,
		Slug:        s.slugs.Generate(fields.Title),
		Description: fields.Description,
		Body:        fields.Body,
		AuthorID:    authorID,
	}

	err := s.executeTransaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Create(article).Error; err != nil {
			return fmt.Errorf("创建文章失败: %w", err)
		}
		if fields.TagList != nil {
			return s.tags.Reconcile(ctx, tx, article.ID, fields.TagList)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("文章已创建", "articleID", article.ID, "slug", article.Slug, "authorID", authorID)
	return s.Get(ctx, article.Slug, &authorID)
}

// Update 更新文章，只修改已提交的字段。提交了标题时重新生成slug。
func (s *ArticleService) Update(ctx context.Context, slug string, userID uint, fields *dto.ArticleUpdateFields) (*dto.ArticleView, error) {
	article, err := s.findBySlug(ctx, s.db, slug)
	if err != nil {
		return nil, err
	}
	if err := s.checkPermission(article.AuthorID, userID); err != nil {
		return nil, err
	}
	if err := fields.Validate(); err != nil {
		return nil, err
	}
	if fields.IsEmpty() {
		return s.Get(ctx, article.Slug, &userID)
	}

	updates := s.buildUpdateData(fields)
	err = s.executeTransaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Model(article).Updates(updates).Error; err != nil {
			return fmt.Errorf("更新文章失败: %w", err)
		}
		if fields.TagList.Set {
			return s.tags.Reconcile(ctx, tx, article.ID, fields.TagList.Value)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if newSlug, ok := updates["slug"].(string); ok {
		s.logger.Infow("文章slug已变更", "articleID", article.ID, "from", slug, "to", newSlug)
		slug = newSlug
	}
	return s.Get(ctx, slug, &userID)
}

// Remove 删除文章，同时清理收藏、标签关联和评论
func (s *ArticleService) Remove(ctx context.Context, slug string, userID uint) error {
	article, err := s.findBySlug(ctx, s.db, slug)
	if err != nil {
		return err
	}
	if err := s.checkPermission(article.AuthorID, userID); err != nil {
		return err
	}

	// 先删除文章行并持有其行锁，再清理关联，并发收藏不会在清理之后写入
	err = s.executeTransaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Delete(&model.Article{}, article.ID).Error; err != nil {
			return fmt.Errorf("删除文章失败: %w", err)
		}
		if err := s.favorites.PurgeArticle(ctx, tx, article.ID); err != nil {
			return err
		}
		if err := s.tags.PurgeArticle(ctx, tx, article.ID); err != nil {
			return err
		}
		if err := tx.Where("article_id = ?", article.ID).Delete(&model.Comment{}).Error; err != nil {
			return fmt.Errorf("删除文章评论失败: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Infow("文章已删除", "articleID", article.ID, "slug", slug, "userID", userID)
	return nil
}

// Get 获取文章视图，viewerID 为 nil 表示匿名访问
func (s *ArticleService) Get(ctx context.Context, slug string, viewerID *uint) (*dto.ArticleView, error) {
	article, err := s.findBySlug(ctx, s.preload(s.db), slug)
	if err != nil {
		return nil, err
	}
	return s.views.Assemble(ctx, article, viewerID)
}

// List 按标签、作者、收藏者过滤文章，按创建时间倒序
func (s *ArticleService) List(ctx context.Context, query *dto.ArticleListQuery, viewerID *uint) (*dto.ArticleListView, error) {
	db := s.db.WithContext(ctx)

	var total int64
	if err := s.applyListFilters(db, query).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("统计文章数失败: %w", err)
	}

	var articles []model.Article
	if err := s.preload(s.applyListFilters(db, query)).
		Order("articles.created_at DESC").
		Order("articles.id DESC").
		Limit(normalizeLimit(query.Limit)).
		Offset(max(query.Offset, 0)).
		Find(&articles).Error; err != nil {
		return nil, fmt.Errorf("获取文章列表失败: %w", err)
	}

	views, err := s.views.AssembleList(ctx, articles, viewerID)
	if err != nil {
		return nil, err
	}
	return &dto.ArticleListView{Articles: views, ArticlesCount: total}, nil
}

// Favorite 收藏文章并返回最新视图
func (s *ArticleService) Favorite(ctx context.Context, slug string, userID uint) (*dto.ArticleView, error) {
	article, err := s.findBySlug(ctx, s.db, slug)
	if err != nil {
		return nil, err
	}
	if err := s.favorites.Favorite(ctx, userID, article.ID); err != nil {
		return nil, err
	}
	return s.Get(ctx, slug, &userID)
}

// Unfavorite 取消收藏并返回最新视图
func (s *ArticleService) Unfavorite(ctx context.Context, slug string, userID uint) (*dto.ArticleView, error) {
	article, err := s.findBySlug(ctx, s.db, slug)
	if err != nil {
		return nil, err
	}
	if err := s.favorites.Unfavorite(ctx, userID, article.ID); err != nil {
		return nil, err
	}
	return s.Get(ctx, slug, &userID)
}

// FindID 根据slug获取文章ID
func (s *ArticleService) FindID(ctx context.Context, slug string) (uint, error) {
	article, err := s.findBySlug(ctx, s.db, slug)
	if err != nil {
		return 0, err
	}
	return article.ID, nil
}

// executeTransaction 执行事务
func (s *ArticleService) executeTransaction(ctx context.Context, fn func(*gorm.DB) error) error {
	return s.db.WithContext(ctx).Transaction(fn)
}

// findBySlug 根据slug查询文章，不存在时返回 NotFound
func (s *ArticleService) findBySlug(ctx context.Context, db *gorm.DB, slug string) (*model.Article, error) {
	var article model.Article
	if err := db.WithContext(ctx).Where("slug = ?", slug).First(&article).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("Article not found")
		}
		return nil, fmt.Errorf("查询文章失败: %w", err)
	}
	return &article, nil
}

// preload 预加载作者和标签，标签按名称排序
func (s *ArticleService) preload(db *gorm.DB) *gorm.DB {
	return db.Preload("Author").Preload("Tags", func(db *gorm.DB) *gorm.DB {
		return db.Order("tags.name ASC")
	})
}

// checkPermission 只有作者本人可以修改或删除文章
func (s *ArticleService) checkPermission(authorID, userID uint) error {
	if authorID != userID {
		return errs.Forbidden("Unauthorized")
	}
	return nil
}

// buildUpdateData 构建更新字段。使用map以便将字段更新为空字符串。
func (s *ArticleService) buildUpdateData(fields *dto.ArticleUpdateFields) map[string]any {
	updates := map[string]any{"updated_at": time.Now()}
	if fields.Title.Set {
		updates["title"] = fields.Title.Value
		updates["slug"] = s.slugs.Generate(fields.Title.Value)
	}
	if fields.Description.Set {
		updates["description"] = fields.Description.Value
	}
	if fields.Body.Set {
		updates["body"] = fields.Body.Value
	}
	return updates
}

// applyListFilters 应用列表过滤条件
func (s *ArticleService) applyListFilters(db *gorm.DB, query *dto.ArticleListQuery) *gorm.DB {
	q := db.Model(&model.Article{})
	if query.Tag != "" {
		q = q.Where("articles.id IN (?)", db.Model(&model.ArticleTag{}).
			Select("article_tags.article_id").
			Joins("JOIN tags ON tags.id = article_tags.tag_id").
			Where("tags.name = ?", query.Tag))
	}
	if query.Author != "" {
		q = q.Where("articles.author_id IN (?)", db.Model(&model.User{}).
			Select("id").
			Where("username = ?", query.Author))
	}
	if query.Favorited != "" {
		q = q.Where("articles.id IN (?)", s.favorites.FavoritedBy(db, query.Favorited))
	}
	return q
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	return min(limit, maxListLimit)
}
