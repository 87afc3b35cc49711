package post

import (
	"context"
	"time"

	"github.com/Mikielai/crudblog/internal/core/post"
	userPort "github.com/Mikielai/crudblog/internal/ports/user"
)

// PostRepository is the outbound port for posts. FindByID returns (nil, nil)
// when the post does not exist.
type PostRepository interface {
	Create(ctx context.Context, p *post.Post) (*post.Post, error)
	FindByID(ctx context.Context, id string) (*post.Post, error)
	ListPublished(ctx context.Context) ([]*post.Post, error)
	ListByAuthor(ctx context.Context, authorID string) ([]*post.Post, error)
	Update(ctx context.Context, p *post.Post) (*post.Post, error)
	// Delete removes the post; comments go with it via the FK cascade.
	Delete(ctx context.Context, id string) error
}

type CreatePostInput struct {
	Title   string
	Content *string
	Image   *string
}

type UpdatePostInput struct {
	Title   string
	Content *string
	Image   *string
	// Published, when set, overrides the flag alongside the content edit.
	Published *bool
}

type PostDTO struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Content   *string           `json:"content"`
	Image     *string           `json:"image"`
	Published bool              `json:"published"`
	AuthorID  string            `json:"authorId"`
	Author    *userPort.UserDTO `json:"author,omitempty"`
	Comments  int64             `json:"comments"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}
