package commentapp

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/Mikielai/crudblog/internal/core/apperr"
	commentEntity "github.com/Mikielai/crudblog/internal/core/comment"
	userEntity "github.com/Mikielai/crudblog/internal/core/user"
	userapp "github.com/Mikielai/crudblog/internal/core/user/service"
	commentPort "github.com/Mikielai/crudblog/internal/ports/comment"
	identityPort "github.com/Mikielai/crudblog/internal/ports/identity"
	postPort "github.com/Mikielai/crudblog/internal/ports/post"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"
)

const maxCommentLength = 1000

type UserSync interface {
	Ensure(ctx context.Context, ident *identityPort.Identity) (*userEntity.User, error)
}

// CommentService owns the comment lifecycle. Creating a comment requires the
// target post to exist but deliberately does not check its published state:
// any authenticated caller holding a draft's identifier may comment on it,
// matching the reference behavior.
type CommentService struct {
	CommentRepository commentPort.CommentRepository
	PostRepository    postPort.PostRepository
	Users             UserSync
	Logger            *zap.Logger
}

func NewCommentService(
	commentRepo commentPort.CommentRepository,
	postRepo postPort.PostRepository,
	users UserSync,
	logger *zap.Logger,
) *CommentService {
	return &CommentService{
		CommentRepository: commentRepo,
		PostRepository:    postRepo,
		Users:             users,
		Logger:            logger,
	}
}

// ListByPost returns a post's comments, newest first, with author profiles.
func (s *CommentService) ListByPost(ctx context.Context, postID string) ([]*commentPort.CommentDTO, error) {
	comments, err := s.CommentRepository.ListByPost(ctx, postID)
	if err != nil {
		return nil, apperr.Dependency("failed to load comments", err)
	}
	out := make([]*commentPort.CommentDTO, 0, len(comments))
	for _, c := range comments {
		out = append(out, toDTO(c))
	}
	return out, nil
}

// CreateComment adds a comment by the caller to an existing post.
func (s *CommentService) CreateComment(ctx context.Context, ident *identityPort.Identity, postID, content string) (*commentPort.CommentDTO, error) {
	if ident == nil {
		return nil, apperr.Unauthenticated("user not authenticated")
	}
	trimmed, err := validContent(content)
	if err != nil {
		return nil, err
	}

	author, err := s.Users.Ensure(ctx, ident)
	if err != nil {
		return nil, err
	}

	p, err := s.PostRepository.FindByID(ctx, postID)
	if err != nil {
		return nil, apperr.Dependency("failed to load post", err)
	}
	if p == nil {
		return nil, apperr.NotFound("post not found")
	}

	created, err := s.CommentRepository.Create(ctx, &commentEntity.Comment{
		ID:       uuid.Must(uuid.NewV4()),
		Content:  trimmed,
		AuthorID: author.ID,
		PostID:   p.ID,
	})
	if err != nil {
		return nil, apperr.Dependency("failed to create comment", err)
	}
	s.Logger.Info("comment created",
		zap.String("commentID", created.ID.String()), zap.String("postID", postID))

	dto := toDTO(created)
	if dto.Author == nil {
		dto.Author = userapp.ToDTO(author)
	}
	return dto, nil
}

// UpdateComment replaces the text of a comment the caller owns.
func (s *CommentService) UpdateComment(ctx context.Context, ident *identityPort.Identity, id, content string) (*commentPort.CommentDTO, error) {
	if ident == nil {
		return nil, apperr.Unauthenticated("user not authenticated")
	}
	trimmed, err := validContent(content)
	if err != nil {
		return nil, err
	}

	c, err := s.ownedComment(ctx, ident, id)
	if err != nil {
		return nil, err
	}

	c.Content = trimmed
	updated, err := s.CommentRepository.Update(ctx, c)
	if err != nil {
		return nil, apperr.Dependency("failed to update comment", err)
	}
	return toDTO(updated), nil
}

// DeleteComment removes a comment the caller owns.
func (s *CommentService) DeleteComment(ctx context.Context, ident *identityPort.Identity, id string) error {
	c, err := s.ownedComment(ctx, ident, id)
	if err != nil {
		return err
	}
	if err := s.CommentRepository.Delete(ctx, c.ID.String()); err != nil {
		return apperr.Dependency("failed to delete comment", err)
	}
	return nil
}

// ownedComment resolves a comment for mutation: authentication, then
// existence, then ownership, in that order.
func (s *CommentService) ownedComment(ctx context.Context, ident *identityPort.Identity, id string) (*commentEntity.Comment, error) {
	if ident == nil {
		return nil, apperr.Unauthenticated("user not authenticated")
	}
	c, err := s.CommentRepository.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Dependency("failed to load comment", err)
	}
	if c == nil {
		return nil, apperr.NotFound("comment not found")
	}
	if c.AuthorID != ident.UserID {
		return nil, apperr.Forbidden("you do not have permission to modify this comment")
	}
	return c, nil
}

// validContent trims and bounds comment text. Length is counted in runes so
// multi-byte text is not penalized.
func validContent(content string) (string, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return "", apperr.Invalid("comment content is required")
	}
	if utf8.RuneCountInString(trimmed) > maxCommentLength {
		return "", apperr.Invalid("comment content exceeds 1000 characters")
	}
	return trimmed, nil
}

func toDTO(c *commentEntity.Comment) *commentPort.CommentDTO {
	dto := &commentPort.CommentDTO{
		ID:        c.ID.String(),
		Content:   c.Content,
		PostID:    c.PostID.String(),
		AuthorID:  c.AuthorID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	if c.Author.ID != "" {
		dto.Author = userapp.ToDTO(&c.Author)
	}
	return dto
}
