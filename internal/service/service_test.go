package service

import (
	"context"
	"testing"

	"github.com/nsxzhou1114/conduit-api/internal/dto"
	"github.com/nsxzhou1114/conduit-api/internal/testutil"
	"github.com/nsxzhou1114/conduit-api/pkg/auth"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// services 测试用的完整服务集合
type services struct {
	db        *gorm.DB
	tokens    *auth.TokenManager
	tags      *TagService
	favorites *FavoriteService
	views     *ArticleViewAssembler
	articles  *ArticleService
	auth      *AuthService
	users     *UserService
	comments  *CommentService
}

func newServices(t *testing.T) *services {
	t.Helper()

	db := testutil.DB(t)
	log := testutil.Logger(t)

	slugs, err := NewSlugGenerator(1)
	require.NoError(t, err)

	hasher := auth.NewPasswordHasher(bcrypt.MinCost)
	tokens := auth.NewTokenManager("test-secret", "conduit-test", auth.NewTokenBlacklist())

	tags := NewTagService(db, log)
	favorites := NewFavoriteService(db, log)
	views := NewArticleViewAssembler(favorites)
	articles := NewArticleService(db, log, slugs, tags, favorites, views)

	return &services{
		db:        db,
		tokens:    tokens,
		tags:      tags,
		favorites: favorites,
		views:     views,
		articles:  articles,
		auth:      NewAuthService(db, log, hasher, tokens),
		users:     NewUserService(db, log, hasher),
		comments:  NewCommentService(db, log, articles),
	}
}

func (s *services) createArticle(t *testing.T, authorID uint, title string, tags []string) *dto.ArticleView {
	t.Helper()
	view, err := s.articles.Create(context.Background(), authorID, &dto.ArticleCreateFields{
		Title:       title,
		Description: "description of " + title,
		Body:        "body of " + title,
		TagList:     tags,
	})
	require.NoError(t, err)
	return view
}
