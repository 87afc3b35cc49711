package commentapp

import (
	"context"
	"strings"
	"testing"

	"github.com/Mikielai/crudblog/internal/core/apperr"
	commentEntity "github.com/Mikielai/crudblog/internal/core/comment"
	postEntity "github.com/Mikielai/crudblog/internal/core/post"
	userEntity "github.com/Mikielai/crudblog/internal/core/user"
	identityPort "github.com/Mikielai/crudblog/internal/ports/identity"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeCommentRepo struct {
	comments map[string]*commentEntity.Comment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: make(map[string]*commentEntity.Comment)}
}

func (r *fakeCommentRepo) Create(ctx context.Context, c *commentEntity.Comment) (*commentEntity.Comment, error) {
	cp := *c
	r.comments[c.ID.String()] = &cp
	return &cp, nil
}

func (r *fakeCommentRepo) FindByID(ctx context.Context, id string) (*commentEntity.Comment, error) {
	c, ok := r.comments[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCommentRepo) ListByPost(ctx context.Context, postID string) ([]*commentEntity.Comment, error) {
	var out []*commentEntity.Comment
	for _, c := range r.comments {
		if c.PostID.String() == postID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeCommentRepo) Update(ctx context.Context, c *commentEntity.Comment) (*commentEntity.Comment, error) {
	cp := *c
	r.comments[c.ID.String()] = &cp
	return &cp, nil
}

func (r *fakeCommentRepo) Delete(ctx context.Context, id string) error {
	delete(r.comments, id)
	return nil
}

func (r *fakeCommentRepo) CountByPost(ctx context.Context, postID string) (int64, error) {
	var n int64
	for _, c := range r.comments {
		if c.PostID.String() == postID {
			n++
		}
	}
	return n, nil
}

type fakePostRepo struct {
	posts map[string]*postEntity.Post
}

func (r *fakePostRepo) Create(ctx context.Context, p *postEntity.Post) (*postEntity.Post, error) {
	return p, nil
}

func (r *fakePostRepo) FindByID(ctx context.Context, id string) (*postEntity.Post, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, nil
	}
	return p, nil
}

func (r *fakePostRepo) ListPublished(ctx context.Context) ([]*postEntity.Post, error) {
	return nil, nil
}

func (r *fakePostRepo) ListByAuthor(ctx context.Context, authorID string) ([]*postEntity.Post, error) {
	return nil, nil
}

func (r *fakePostRepo) Update(ctx context.Context, p *postEntity.Post) (*postEntity.Post, error) {
	return p, nil
}

func (r *fakePostRepo) Delete(ctx context.Context, id string) error { return nil }

type fakeUserSync struct{}

func (s *fakeUserSync) Ensure(ctx context.Context, ident *identityPort.Identity) (*userEntity.User, error) {
	if ident == nil {
		return nil, apperr.Unauthenticated("user not authenticated")
	}
	return &userEntity.User{ID: ident.UserID, Email: ident.Email}, nil
}

func newTestService() (*CommentService, *fakeCommentRepo, *fakePostRepo) {
	comments := newFakeCommentRepo()
	posts := &fakePostRepo{posts: make(map[string]*postEntity.Post)}
	svc := NewCommentService(comments, posts, &fakeUserSync{}, zap.NewNop())
	return svc, comments, posts
}

func ident(userID string) *identityPort.Identity {
	return &identityPort.Identity{UserID: userID, Email: userID + "@example.com"}
}

func seedPost(repo *fakePostRepo, published bool) *postEntity.Post {
	p := &postEntity.Post{
		ID:        uuid.Must(uuid.NewV4()),
		Title:     "Hello",
		Published: published,
		AuthorID:  "user_author",
	}
	repo.posts[p.ID.String()] = p
	return p
}

func TestCreateCommentRequiresAuthentication(t *testing.T) {
	svc, _, posts := newTestService()
	p := seedPost(posts, true)

	_, err := svc.CreateComment(context.Background(), nil, p.ID.String(), "nice post")
	require.Equal(t, apperr.KindUnauthenticated, apperr.KindOf(err))
}

func TestCreateCommentRejectsWhitespaceOnly(t *testing.T) {
	svc, _, posts := newTestService()
	p := seedPost(posts, true)

	_, err := svc.CreateComment(context.Background(), ident("user_b"), p.ID.String(), "   \n\t  ")
	require.Equal(t, apperr.KindInvalid, apperr.KindOf(err))
}

func TestCreateCommentRejectsOversizedContent(t *testing.T) {
	svc, _, posts := newTestService()
	p := seedPost(posts, true)

	_, err := svc.CreateComment(context.Background(), ident("user_b"), p.ID.String(), strings.Repeat("x", 1001))
	require.Equal(t, apperr.KindInvalid, apperr.KindOf(err))

	// Exactly at the bound is fine.
	c, err := svc.CreateComment(context.Background(), ident("user_b"), p.ID.String(), strings.Repeat("x", 1000))
	require.NoError(t, err)
	require.Len(t, c.Content, 1000)
}

func TestCreateCommentTrimsContent(t *testing.T) {
	svc, _, posts := newTestService()
	p := seedPost(posts, true)

	c, err := svc.CreateComment(context.Background(), ident("user_b"), p.ID.String(), "  nice post  ")
	require.NoError(t, err)
	require.Equal(t, "nice post", c.Content)
}

func TestCreateCommentOnMissingPost(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.CreateComment(context.Background(), ident("user_b"), uuid.Must(uuid.NewV4()).String(), "hello")
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestCreateCommentOnDraftIsAllowed(t *testing.T) {
	// Published state is deliberately not checked: a caller holding a
	// draft's identifier may comment on it.
	svc, _, posts := newTestService()
	draft := seedPost(posts, false)

	c, err := svc.CreateComment(context.Background(), ident("user_b"), draft.ID.String(), "early feedback")
	require.NoError(t, err)
	require.Equal(t, draft.ID.String(), c.PostID)
}

func TestUpdateCommentOwnershipChecks(t *testing.T) {
	svc, comments, posts := newTestService()
	p := seedPost(posts, true)
	c, err := svc.CreateComment(context.Background(), ident("user_b"), p.ID.String(), "original")
	require.NoError(t, err)

	_, err = svc.UpdateComment(context.Background(), ident("user_c"), c.ID, "hijacked")
	require.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	_, err = svc.UpdateComment(context.Background(), ident("user_b"), uuid.Must(uuid.NewV4()).String(), "edited")
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	updated, err := svc.UpdateComment(context.Background(), ident("user_b"), c.ID, "edited")
	require.NoError(t, err)
	require.Equal(t, "edited", updated.Content)
	require.Equal(t, "edited", comments.comments[c.ID].Content)
}

func TestUpdateCommentUnauthenticatedBeforeValidation(t *testing.T) {
	svc, _, posts := newTestService()
	p := seedPost(posts, true)
	c, err := svc.CreateComment(context.Background(), ident("user_b"), p.ID.String(), "original")
	require.NoError(t, err)

	// An anonymous caller with blank content is turned away for the missing
	// identity, not the bad input.
	_, err = svc.UpdateComment(context.Background(), nil, c.ID, "   ")
	require.Equal(t, apperr.KindUnauthenticated, apperr.KindOf(err))
}

func TestDeleteCommentOwnershipChecks(t *testing.T) {
	svc, comments, posts := newTestService()
	p := seedPost(posts, true)
	c, err := svc.CreateComment(context.Background(), ident("user_b"), p.ID.String(), "to be removed")
	require.NoError(t, err)

	err = svc.DeleteComment(context.Background(), ident("user_c"), c.ID)
	require.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	err = svc.DeleteComment(context.Background(), nil, c.ID)
	require.Equal(t, apperr.KindUnauthenticated, apperr.KindOf(err))

	require.NoError(t, svc.DeleteComment(context.Background(), ident("user_b"), c.ID))
	require.Empty(t, comments.comments)

	err = svc.DeleteComment(context.Background(), ident("user_b"), c.ID)
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
