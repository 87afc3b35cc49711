package httpapi

import (
	"net/http"

	"github.com/Mikielai/crudblog/internal/adapters/httpapi/middleware"
	postPort "github.com/Mikielai/crudblog/internal/ports/post"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PostController struct {
	uc  PostUseCase
	log *zap.Logger
}

func NewPostController(uc PostUseCase, logger *zap.Logger) *PostController {
	return &PostController{uc: uc, log: logger}
}

type createPostRequest struct {
	Title   string  `json:"title" binding:"required"`
	Content *string `json:"content"`
	Image   *string `json:"image"`
}

type updatePostRequest struct {
	Title     string  `json:"title" binding:"required"`
	Content   *string `json:"content"`
	Image     *string `json:"image"`
	Published *bool   `json:"published"`
}

func (ctl *PostController) ListPublished(c *gin.Context) {
	posts, err := ctl.uc.ListPublished(c.Request.Context())
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

func (ctl *PostController) GetPost(c *gin.Context) {
	ident := middleware.CurrentIdentity(c)
	p, err := ctl.uc.GetPost(c.Request.Context(), ident, c.Param("id"))
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": p})
}

func (ctl *PostController) ListMine(c *gin.Context) {
	ident := middleware.CurrentIdentity(c)
	posts, err := ctl.uc.ListByAuthor(c.Request.Context(), ident)
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

func (ctl *PostController) CreatePost(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	ident := middleware.CurrentIdentity(c)
	p, err := ctl.uc.CreatePost(c.Request.Context(), ident, postPort.CreatePostInput{
		Title:   req.Title,
		Content: req.Content,
		Image:   req.Image,
	})
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"post": p})
}

func (ctl *PostController) UpdatePost(c *gin.Context) {
	var req updatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	ident := middleware.CurrentIdentity(c)
	p, err := ctl.uc.UpdatePost(c.Request.Context(), ident, c.Param("id"), postPort.UpdatePostInput{
		Title:     req.Title,
		Content:   req.Content,
		Image:     req.Image,
		Published: req.Published,
	})
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": p})
}

func (ctl *PostController) DeletePost(c *gin.Context) {
	ident := middleware.CurrentIdentity(c)
	if err := ctl.uc.DeletePost(c.Request.Context(), ident, c.Param("id")); err != nil {
		respondError(c, ctl.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "post deleted"})
}

func (ctl *PostController) TogglePublish(c *gin.Context) {
	ident := middleware.CurrentIdentity(c)
	p, err := ctl.uc.TogglePublish(c.Request.Context(), ident, c.Param("id"))
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": p, "published": p.Published})
}
