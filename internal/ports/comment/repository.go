package comment

import (
	"context"
	"time"

	"github.com/Mikielai/crudblog/internal/core/comment"
	userPort "github.com/Mikielai/crudblog/internal/ports/user"
)

// CommentRepository is the outbound port for comments. FindByID returns
// (nil, nil) when the comment does not exist.
type CommentRepository interface {
	Create(ctx context.Context, c *comment.Comment) (*comment.Comment, error)
	FindByID(ctx context.Context, id string) (*comment.Comment, error)
	ListByPost(ctx context.Context, postID string) ([]*comment.Comment, error)
	Update(ctx context.Context, c *comment.Comment) (*comment.Comment, error)
	Delete(ctx context.Context, id string) error
	CountByPost(ctx context.Context, postID string) (int64, error)
}

type CommentDTO struct {
	ID        string            `json:"id"`
	Content   string            `json:"content"`
	PostID    string            `json:"postId"`
	AuthorID  string            `json:"authorId"`
	Author    *userPort.UserDTO `json:"author,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}
