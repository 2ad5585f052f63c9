package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/nsxzhou1114/conduit-api/internal/dto"
	"github.com/nsxzhou1114/conduit-api/internal/model"
	"github.com/nsxzhou1114/conduit-api/pkg/errs"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CommentService 评论服务
type CommentService struct {
	db       *gorm.DB
	logger   *zap.SugaredLogger
	articles *ArticleService
}

// NewCommentService 创建评论服务实例
func NewCommentService(db *gorm.DB, logger *zap.SugaredLogger, articles *ArticleService) *CommentService {
	return &CommentService{
		db:       db,
		logger:   logger,
		articles: articles,
	}
}

// Create 发表评论
func (s *CommentService) Create(ctx context.Context, slug string, authorID uint, body string) (*dto.CommentView, error) {
	articleID, err := s.articles.FindID(ctx, slug)
	if err != nil {
		return nil, err
	}

	comment := &model.Comment{
		Body:      body,
		ArticleID: articleID,
		AuthorID:  authorID,
	}
	if err := s.db.WithContext(ctx).Create(comment).Error; err != nil {
		return nil, fmt.Errorf("创建评论失败: %w", err)
	}
	if err := s.db.WithContext(ctx).Preload("Author").First(comment, comment.ID).Error; err != nil {
		return nil, fmt.Errorf("查询评论失败: %w", err)
	}

	view := toCommentView(comment)
	return &view, nil
}

// List 获取文章评论，按发表时间正序
func (s *CommentService) List(ctx context.Context, slug string, query *dto.CommentListQuery) ([]dto.CommentView, error) {
	articleID, err := s.articles.FindID(ctx, slug)
	if err != nil {
		return nil, err
	}

	var comments []model.Comment
	if err := s.db.WithContext(ctx).
		Preload("Author").
		Where("article_id = ?", articleID).
		Order("created_at ASC").
		Order("id ASC").
		Limit(normalizeLimit(query.Limit)).
		Offset(max(query.Offset, 0)).
		Find(&comments).Error; err != nil {
		return nil, fmt.Errorf("获取评论列表失败: %w", err)
	}

	views := make([]dto.CommentView, 0, len(comments))
	for i := range comments {
		views = append(views, toCommentView(&comments[i]))
	}
	return views, nil
}

// Delete 删除评论，只有评论作者可以删除
func (s *CommentService) Delete(ctx context.Context, slug string, commentID, userID uint) error {
	articleID, err := s.articles.FindID(ctx, slug)
	if err != nil {
		return err
	}

	var comment model.Comment
	if err := s.db.WithContext(ctx).Where("id = ? AND article_id = ?", commentID, articleID).First(&comment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NotFound("Comment not found")
		}
		return fmt.Errorf("查询评论失败: %w", err)
	}
	if comment.AuthorID != userID {
		return errs.Forbidden("Unauthorized")
	}

	if err := s.db.WithContext(ctx).Delete(&comment).Error; err != nil {
		return fmt.Errorf("删除评论失败: %w", err)
	}
	return nil
}

func toCommentView(c *model.Comment) dto.CommentView {
	return dto.CommentView{
		ID:        c.ID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		Body:      c.Body,
		Author:    dto.NewProfileView(c.Author.Username, c.Author.Bio, c.Author.Image),
	}
}
