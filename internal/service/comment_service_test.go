package service

import (
	"context"
	"errors"
	"testing"

	"github.com/nsxzhou1114/conduit-api/internal/dto"
	"github.com/nsxzhou1114/conduit-api/internal/testutil"
	"github.com/nsxzhou1114/conduit-api/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentService(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	ann := testutil.CreateUser(t, s.db, "ann")
	bob := testutil.CreateUser(t, s.db, "bob")
	article := s.createArticle(t, ann.ID, "Hello World", nil)

	first, err := s.comments.Create(ctx, article.Slug, bob.ID, "first!")
	require.NoError(t, err)
	assert.Equal(t, "first!", first.Body)
	assert.Equal(t, "bob", first.Author.Username)

	_, err = s.comments.Create(ctx, article.Slug, ann.ID, "thanks")
	require.NoError(t, err)

	list, err := s.comments.List(ctx, article.Slug, &dto.CommentListQuery{})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "first!", list[0].Body)
	assert.Equal(t, "thanks", list[1].Body)

	err = s.comments.Delete(ctx, article.Slug, first.ID, ann.ID)
	assert.True(t, errors.Is(err, errs.ErrForbidden))

	require.NoError(t, s.comments.Delete(ctx, article.Slug, first.ID, bob.ID))

	err = s.comments.Delete(ctx, article.Slug, first.ID, bob.ID)
	assert.True(t, errors.Is(err, errs.ErrNotFound))

	list, err = s.comments.List(ctx, article.Slug, &dto.CommentListQuery{})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCommentService_MissingArticle(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	bob := testutil.CreateUser(t, s.db, "bob")

	_, err := s.comments.Create(ctx, "missing", bob.ID, "hi")
	assert.True(t, errors.Is(err, errs.ErrNotFound))

	_, err = s.comments.List(ctx, "missing", &dto.CommentListQuery{})
	assert.True(t, errors.Is(err, errs.ErrNotFound))
}

func TestCommentService_DeleteWrongArticle(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	ann := testutil.CreateUser(t, s.db, "ann")
	a1 := s.createArticle(t, ann.ID, "One", nil)
	a2 := s.createArticle(t, ann.ID, "Two", nil)

	c, err := s.comments.Create(ctx, a1.Slug, ann.ID, "hi")
	require.NoError(t, err)

	err = s.comments.Delete(ctx, a2.Slug, c.ID, ann.ID)
	assert.True(t, errors.Is(err, errs.ErrNotFound))
}
