package postapp

import (
	"context"
	"strings"

	"github.com/Mikielai/crudblog/internal/core/apperr"
	postEntity "github.com/Mikielai/crudblog/internal/core/post"
	userEntity "github.com/Mikielai/crudblog/internal/core/user"
	userapp "github.com/Mikielai/crudblog/internal/core/user/service"
	commentPort "github.com/Mikielai/crudblog/internal/ports/comment"
	identityPort "github.com/Mikielai/crudblog/internal/ports/identity"
	postPort "github.com/Mikielai/crudblog/internal/ports/post"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"
)

// UserSync is the slice of the user service the post service needs: a local
// row must exist before the first write.
type UserSync interface {
	Ensure(ctx context.Context, ident *identityPort.Identity) (*userEntity.User, error)
}

// PostService owns the post lifecycle and its authorization rules. Every
// mutation resolves the target first and checks existence before ownership,
// so a caller probing someone else's draft learns nothing beyond "not found".
type PostService struct {
	PostRepository    postPort.PostRepository
	CommentRepository commentPort.CommentRepository
	Users             UserSync
	Logger            *zap.Logger
}

func NewPostService(
	postRepo postPort.PostRepository,
	commentRepo commentPort.CommentRepository,
	users UserSync,
	logger *zap.Logger,
) *PostService {
	return &PostService{
		PostRepository:    postRepo,
		CommentRepository: commentRepo,
		Users:             users,
		Logger:            logger,
	}
}

// CreatePost creates a post owned by the caller. Posts are published on
// creation; drafts only come about by unpublishing afterwards.
func (s *PostService) CreatePost(ctx context.Context, ident *identityPort.Identity, in postPort.CreatePostInput) (*postPort.PostDTO, error) {
	if ident == nil {
		return nil, apperr.Unauthenticated("user not authenticated")
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, apperr.Invalid("title is required")
	}

	owner, err := s.Users.Ensure(ctx, ident)
	if err != nil {
		return nil, err
	}

	p := &postEntity.Post{
		ID:        uuid.Must(uuid.NewV4()),
		Title:     in.Title,
		Content:   in.Content,
		Image:     in.Image,
		Published: true,
		AuthorID:  owner.ID,
	}

	created, err := s.PostRepository.Create(ctx, p)
	if err != nil {
		return nil, apperr.Dependency("failed to create post", err)
	}
	s.Logger.Info("post created", zap.String("postID", created.ID.String()), zap.String("authorID", owner.ID))

	dto := toDTO(created)
	dto.Author = userapp.ToDTO(owner)
	return dto, nil
}

// GetPost returns a post by ID. Unpublished posts are visible to their author
// only; everyone else gets "not found" rather than "forbidden".
func (s *PostService) GetPost(ctx context.Context, ident *identityPort.Identity, id string) (*postPort.PostDTO, error) {
	p, err := s.PostRepository.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Dependency("failed to load post", err)
	}
	if p == nil {
		return nil, apperr.NotFound("post not found")
	}
	if !p.Published && (ident == nil || ident.UserID != p.AuthorID) {
		return nil, apperr.NotFound("post not found")
	}

	count, err := s.CommentRepository.CountByPost(ctx, p.ID.String())
	if err != nil {
		return nil, apperr.Dependency("failed to count comments", err)
	}

	dto := toDTO(p)
	dto.Comments = count
	return dto, nil
}

// ListPublished is the public feed: published posts only, newest first,
// regardless of who asks.
func (s *PostService) ListPublished(ctx context.Context) ([]*postPort.PostDTO, error) {
	posts, err := s.PostRepository.ListPublished(ctx)
	if err != nil {
		return nil, apperr.Dependency("failed to load posts", err)
	}
	return toDTOs(posts), nil
}

// ListByAuthor is the caller's dashboard: their own posts in both states.
func (s *PostService) ListByAuthor(ctx context.Context, ident *identityPort.Identity) ([]*postPort.PostDTO, error) {
	if ident == nil {
		return nil, apperr.Unauthenticated("user not authenticated")
	}
	posts, err := s.PostRepository.ListByAuthor(ctx, ident.UserID)
	if err != nil {
		return nil, apperr.Dependency("failed to load posts", err)
	}
	return toDTOs(posts), nil
}

// UpdatePost replaces title/content/image on a post the caller owns. When the
// input carries a published flag it is applied too.
func (s *PostService) UpdatePost(ctx context.Context, ident *identityPort.Identity, id string, in postPort.UpdatePostInput) (*postPort.PostDTO, error) {
	if ident == nil {
		return nil, apperr.Unauthenticated("user not authenticated")
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, apperr.Invalid("title is required")
	}

	p, err := s.ownedPost(ctx, ident, id)
	if err != nil {
		return nil, err
	}

	p.Title = in.Title
	p.Content = in.Content
	p.Image = in.Image
	if in.Published != nil {
		p.Published = *in.Published
	}

	updated, err := s.PostRepository.Update(ctx, p)
	if err != nil {
		return nil, apperr.Dependency("failed to update post", err)
	}
	return toDTO(updated), nil
}

// DeletePost removes a post the caller owns; its comments cascade away.
func (s *PostService) DeletePost(ctx context.Context, ident *identityPort.Identity, id string) error {
	p, err := s.ownedPost(ctx, ident, id)
	if err != nil {
		return err
	}
	if err := s.PostRepository.Delete(ctx, p.ID.String()); err != nil {
		return apperr.Dependency("failed to delete post", err)
	}
	s.Logger.Info("post deleted", zap.String("postID", p.ID.String()))
	return nil
}

// TogglePublish flips the published flag and returns the new state. There are
// no transition restrictions; publish and unpublish are always available to
// the owner.
func (s *PostService) TogglePublish(ctx context.Context, ident *identityPort.Identity, id string) (*postPort.PostDTO, error) {
	p, err := s.ownedPost(ctx, ident, id)
	if err != nil {
		return nil, err
	}

	p.Published = !p.Published
	updated, err := s.PostRepository.Update(ctx, p)
	if err != nil {
		return nil, apperr.Dependency("failed to update post", err)
	}
	s.Logger.Info("post publish state toggled",
		zap.String("postID", updated.ID.String()), zap.Bool("published", updated.Published))
	return toDTO(updated), nil
}

// ownedPost loads a post for mutation: authentication, then existence, then
// ownership, in that order. The read and the following write are separate
// statements; the window between them is an accepted race.
func (s *PostService) ownedPost(ctx context.Context, ident *identityPort.Identity, id string) (*postEntity.Post, error) {
	if ident == nil {
		return nil, apperr.Unauthenticated("user not authenticated")
	}
	p, err := s.PostRepository.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Dependency("failed to load post", err)
	}
	if p == nil {
		return nil, apperr.NotFound("post not found")
	}
	if p.AuthorID != ident.UserID {
		return nil, apperr.Forbidden("you do not have permission to modify this post")
	}
	return p, nil
}

func toDTO(p *postEntity.Post) *postPort.PostDTO {
	dto := &postPort.PostDTO{
		ID:        p.ID.String(),
		Title:     p.Title,
		Content:   p.Content,
		Image:     p.Image,
		Published: p.Published,
		AuthorID:  p.AuthorID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if p.Author.ID != "" {
		dto.Author = userapp.ToDTO(&p.Author)
	}
	return dto
}

func toDTOs(posts []*postEntity.Post) []*postPort.PostDTO {
	out := make([]*postPort.PostDTO, 0, len(posts))
	for _, p := range posts {
		out = append(out, toDTO(p))
	}
	return out
}
