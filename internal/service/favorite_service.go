package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nsxzhou1114/conduit-api/internal/model"
	"github.com/nsxzhou1114/conduit-api/pkg/errs"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// FavoriteService 收藏关系服务。每对(用户, 文章)最多一条记录，
// 收藏与取消收藏都是幂等的。
type FavoriteService struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// NewFavoriteService 创建收藏服务实例
func NewFavoriteService(db *gorm.DB, logger *zap.SugaredLogger) *FavoriteService {
	return &FavoriteService{
		db:     db,
		logger: logger,
	}
}

// 文章存在且尚未收藏时才写入一行。存在性检查与写入在同一条语句中完成，
// 与并发的删除文章之间不会留下指向已删除文章的收藏。
const insertFavoriteSQL = `INSERT INTO favorites (user_id, article_id, created_at)
SELECT ?, articles.id, ? FROM articles
WHERE articles.id = ?
AND NOT EXISTS (SELECT 1 FROM favorites WHERE favorites.user_id = ? AND favorites.article_id = ?)`

// Favorite 收藏文章，已收藏时不做任何改变
func (s *FavoriteService) Favorite(ctx context.Context, userID, articleID uint) error {
	db := s.db.WithContext(ctx)

	result := db.Exec(insertFavoriteSQL, userID, time.Now(), articleID, userID, articleID)
	if err := result.Error; err != nil {
		// 并发的重复收藏由联合主键拦截
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return fmt.Errorf("收藏文章失败: %w", err)
	}
	if result.RowsAffected > 0 {
		return nil
	}

	// 未写入：文章不存在或已收藏
	var count int64
	if err := db.Model(&model.Article{}).Where("id = ?", articleID).Count(&count).Error; err != nil {
		return fmt.Errorf("查询文章失败: %w", err)
	}
	if count == 0 {
		return errs.NotFound("Article not found")
	}
	return nil
}

// Unfavorite 取消收藏，未收藏时不报错
func (s *FavoriteService) Unfavorite(ctx context.Context, userID, articleID uint) error {
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND article_id = ?", userID, articleID).
		Delete(&model.Favorite{}).Error; err != nil {
		return fmt.Errorf("取消收藏失败: %w", err)
	}
	return nil
}

// IsFavorited 用户是否收藏了文章
func (s *FavoriteService) IsFavorited(ctx context.Context, userID, articleID uint) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.Favorite{}).
		Where("user_id = ? AND article_id = ?", userID, articleID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("查询收藏状态失败: %w", err)
	}
	return count > 0, nil
}

// Count 文章的收藏数
func (s *FavoriteService) Count(ctx context.Context, articleID uint) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.Favorite{}).
		Where("article_id = ?", articleID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("查询收藏数失败: %w", err)
	}
	return count, nil
}

// PurgeArticle 删除文章的全部收藏记录，在删除文章的事务中调用
func (s *FavoriteService) PurgeArticle(ctx context.Context, tx *gorm.DB, articleID uint) error {
	if err := tx.WithContext(ctx).Where("article_id = ?", articleID).Delete(&model.Favorite{}).Error; err != nil {
		return fmt.Errorf("清除文章收藏失败: %w", err)
	}
	return nil
}

// FavoritedBy 返回某用户收藏的文章ID子查询，用于列表过滤
func (s *FavoriteService) FavoritedBy(db *gorm.DB, username string) *gorm.DB {
	return db.Model(&model.Favorite{}).
		Select("favorites.article_id").
		Joins("JOIN users ON users.id = favorites.user_id").
		Where("users.username = ?", username)
}
