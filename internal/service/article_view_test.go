package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/nsxzhou1114/conduit-api/internal/model"
	"github.com/nsxzhou1114/conduit-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticleViewAssembler_Assemble(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	ann := testutil.CreateUser(t, s.db, "ann")
	bob := testutil.CreateUser(t, s.db, "bob")
	require.NoError(t, s.db.Model(ann).Updates(map[string]any{"bio": "hi", "image": "ann.png"}).Error)

	created := testutil.CreateArticle(t, s.db, ann.ID, "First")
	require.NoError(t, s.favorites.Favorite(ctx, bob.ID, created.ID))

	var article model.Article
	require.NoError(t, s.db.Preload("Author").Preload("Tags").First(&article, created.ID).Error)

	anon, err := s.views.Assemble(ctx, &article, nil)
	require.NoError(t, err)
	assert.False(t, anon.Favorited)
	assert.Equal(t, int64(1), anon.FavoritesCount)
	assert.Equal(t, "first", anon.Slug)
	assert.Equal(t, "ann", anon.Author.Username)
	assert.Equal(t, "hi", anon.Author.Bio)
	assert.Equal(t, "ann.png", anon.Author.Image)
	assert.False(t, anon.Author.Following)
	assert.NotNil(t, anon.TagList)

	asBob, err := s.views.Assemble(ctx, &article, &bob.ID)
	require.NoError(t, err)
	assert.True(t, asBob.Favorited)

	asAnn, err := s.views.Assemble(ctx, &article, &ann.ID)
	require.NoError(t, err)
	assert.False(t, asAnn.Favorited)
}

func TestArticleViewAssembler_NoPrivateAuthorFields(t *testing.T) {
	s := newServices(t)
	ann := testutil.CreateUser(t, s.db, "ann")
	created := testutil.CreateArticle(t, s.db, ann.ID, "First")

	var article model.Article
	require.NoError(t, s.db.Preload("Author").First(&article, created.ID).Error)

	view, err := s.views.Assemble(context.Background(), &article, nil)
	require.NoError(t, err)

	raw, err := json.Marshal(view.Author)
	require.NoError(t, err)

	var author map[string]any
	require.NoError(t, json.Unmarshal(raw, &author))
	assert.ElementsMatch(t, []string{"username", "bio", "image", "following"}, keys(author))
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
