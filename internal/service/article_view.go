package service

import (
	"context"

	"github.com/nsxzhou1114/conduit-api/internal/dto"
	"github.com/nsxzhou1114/conduit-api/internal/model"
	"golang.org/x/sync/errgroup"
)

// ArticleViewAssembler 将文章存储字段与收藏聚合数据合并为对外视图
type ArticleViewAssembler struct {
	favorites *FavoriteService
}

// NewArticleViewAssembler 创建文章视图组装器
func NewArticleViewAssembler(favorites *FavoriteService) *ArticleViewAssembler {
	return &ArticleViewAssembler{favorites: favorites}
}

// Assemble 组装文章视图。article 需已预加载 Author 和 Tags。
// viewerID 为 nil 表示匿名访问，此时 favorited 恒为 false。
// 收藏状态与收藏数每次重新查询，两者并发执行。
func (a *ArticleViewAssembler) Assemble(ctx context.Context, article *model.Article, viewerID *uint) (*dto.ArticleView, error) {
	var (
		favorited bool
		count     int64
	)

	g, gctx := errgroup.WithContext(ctx)
	if viewerID != nil {
		g.Go(func() error {
			var err error
			favorited, err = a.favorites.IsFavorited(gctx, *viewerID, article.ID)
			return err
		})
	}
	g.Go(func() error {
		var err error
		count, err = a.favorites.Count(gctx, article.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dto.ArticleView{
		Slug:           article.Slug,
		Title:          article.Title,
		Description:    article.Description,
		Body:           article.Body,
		TagList:        article.TagNames(),
		CreatedAt:      article.CreatedAt,
		UpdatedAt:      article.UpdatedAt,
		Favorited:      favorited,
		FavoritesCount: count,
		Author:         dto.NewProfileView(article.Author.Username, article.Author.Bio, article.Author.Image),
	}, nil
}

// AssembleList 按顺序组装多篇文章的视图
func (a *ArticleViewAssembler) AssembleList(ctx context.Context, articles []model.Article, viewerID *uint) ([]*dto.ArticleView, error) {
	views := make([]*dto.ArticleView, 0, len(articles))
	for i := range articles {
		view, err := a.Assemble(ctx, &articles[i], viewerID)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}
