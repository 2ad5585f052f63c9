package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/nsxzhou1114/conduit-api/internal/model"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TagService 标签服务
type TagService struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// NewTagService 创建标签服务实例
func NewTagService(db *gorm.DB, logger *zap.SugaredLogger) *TagService {
	return &TagService{
		db:     db,
		logger: logger,
	}
}

// Reconcile 将文章的标签关联替换为 names 对应的标签集合。
// 不存在的标签会被创建，并发插入同名标签时视为已存在。
// names 为空时解除文章的全部标签关联，标签本身保留。
func (s *TagService) Reconcile(ctx context.Context, tx *gorm.DB, articleID uint, names []string) error {
	tx = tx.WithContext(ctx)
	names = normalizeTagNames(names)

	var tags []model.Tag
	if len(names) > 0 {
		missing := make([]model.Tag, 0, len(names))
		for _, name := range names {
			missing = append(missing, model.Tag{Name: name})
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).Create(&missing).Error; err != nil {
			return fmt.Errorf("创建标签失败: %w", err)
		}

		if err := tx.Where("name IN ?", names).Find(&tags).Error; err != nil {
			return fmt.Errorf("查询标签失败: %w", err)
		}
	}

	if err := tx.Where("article_id = ?", articleID).Delete(&model.ArticleTag{}).Error; err != nil {
		return fmt.Errorf("清除文章标签关联失败: %w", err)
	}
	if len(tags) == 0 {
		return nil
	}

	links := make([]model.ArticleTag, 0, len(tags))
	for _, tag := range tags {
		links = append(links, model.ArticleTag{ArticleID: articleID, TagID: tag.ID})
	}
	if err := tx.Create(&links).Error; err != nil {
		return fmt.Errorf("创建文章标签关联失败: %w", err)
	}
	return nil
}

// PurgeArticle 删除文章的全部标签关联
func (s *TagService) PurgeArticle(ctx context.Context, tx *gorm.DB, articleID uint) error {
	if err := tx.WithContext(ctx).Where("article_id = ?", articleID).Delete(&model.ArticleTag{}).Error; err != nil {
		return fmt.Errorf("清除文章标签关联失败: %w", err)
	}
	return nil
}

// ListNames 获取全部标签名称
func (s *TagService) ListNames(ctx context.Context) ([]string, error) {
	names := make([]string, 0)
	if err := s.db.WithContext(ctx).Model(&model.Tag{}).Order("name ASC").Pluck("name", &names).Error; err != nil {
		return nil, fmt.Errorf("获取标签列表失败: %w", err)
	}
	return names, nil
}

// normalizeTagNames 去除首尾空白、空名称和重复项，保持原有顺序
func normalizeTagNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	result := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		result = append(result, name)
	}
	return result
}
