package httpapi

import (
	"context"
	"net/http"

	"github.com/Mikielai/crudblog/internal/adapters/httpapi/middleware"
	commentPort "github.com/Mikielai/crudblog/internal/ports/comment"
	identityPort "github.com/Mikielai/crudblog/internal/ports/identity"
	postPort "github.com/Mikielai/crudblog/internal/ports/post"
	storagePort "github.com/Mikielai/crudblog/internal/ports/storage"
	userPort "github.com/Mikielai/crudblog/internal/ports/user"
	webhookPort "github.com/Mikielai/crudblog/internal/ports/webhook"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Inbound ports: what the controllers need from the application services.

type PostUseCase interface {
	CreatePost(ctx context.Context, ident *identityPort.Identity, in postPort.CreatePostInput) (*postPort.PostDTO, error)
	GetPost(ctx context.Context, ident *identityPort.Identity, id string) (*postPort.PostDTO, error)
	ListPublished(ctx context.Context) ([]*postPort.PostDTO, error)
	ListByAuthor(ctx context.Context, ident *identityPort.Identity) ([]*postPort.PostDTO, error)
	UpdatePost(ctx context.Context, ident *identityPort.Identity, id string, in postPort.UpdatePostInput) (*postPort.PostDTO, error)
	DeletePost(ctx context.Context, ident *identityPort.Identity, id string) error
	TogglePublish(ctx context.Context, ident *identityPort.Identity, id string) (*postPort.PostDTO, error)
}

type CommentUseCase interface {
	ListByPost(ctx context.Context, postID string) ([]*commentPort.CommentDTO, error)
	CreateComment(ctx context.Context, ident *identityPort.Identity, postID, content string) (*commentPort.CommentDTO, error)
	UpdateComment(ctx context.Context, ident *identityPort.Identity, id, content string) (*commentPort.CommentDTO, error)
	DeleteComment(ctx context.Context, ident *identityPort.Identity, id string) error
}

type UserSyncUseCase interface {
	Reconcile(ctx context.Context, eventType string, p userPort.Profile) error
}

// SetupRoutes wires controllers to routes. Use cases and adapters are
// injected from the outside.
func SetupRoutes(
	postUC PostUseCase,
	commentUC CommentUseCase,
	syncUC UserSyncUseCase,
	events webhookPort.EventStore,
	images storagePort.ImageStore,
	sessionSecret []byte,
	webhookSecret string,
	uploadDir string,
	logger *zap.Logger,
) (*gin.Engine, error) {
	r := gin.Default()

	pc := NewPostController(postUC, logger)
	cc := NewCommentController(commentUC, logger)
	up := NewUploadController(images, logger)
	wc, err := NewWebhookController(syncUC, events, webhookSecret, logger)
	if err != nil {
		return nil, err
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.Static("/uploads", uploadDir)

	requireSession := middleware.SessionAuth(sessionSecret)
	optionalSession := middleware.OptionalSession(sessionSecret)

	api := r.Group("/api")
	{
		api.POST("/webhooks/identity", wc.Handle)

		api.GET("/posts", pc.ListPublished)
		api.GET("/posts/:id", optionalSession, pc.GetPost)
		api.POST("/posts", requireSession, pc.CreatePost)
		api.PUT("/posts/:id", requireSession, pc.UpdatePost)
		api.DELETE("/posts/:id", requireSession, pc.DeletePost)
		api.POST("/posts/:id/publish", requireSession, pc.TogglePublish)
		api.GET("/dashboard/posts", requireSession, pc.ListMine)

		api.GET("/posts/:id/comments", cc.ListByPost)
		api.POST("/posts/:id/comments", requireSession, cc.CreateComment)
		api.PUT("/comments/:id", requireSession, cc.UpdateComment)
		api.DELETE("/comments/:id", requireSession, cc.DeleteComment)

		api.POST("/upload", requireSession, up.Upload)
	}

	return r, nil
}
