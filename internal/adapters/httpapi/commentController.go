package httpapi

import (
	"net/http"

	"github.com/Mikielai/crudblog/internal/adapters/httpapi/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CommentController struct {
	uc  CommentUseCase
	log *zap.Logger
}

func NewCommentController(uc CommentUseCase, logger *zap.Logger) *CommentController {
	return &CommentController{uc: uc, log: logger}
}

// Content is validated by the service (trim, length bound); the binding layer
// only rejects malformed JSON.
type commentRequest struct {
	Content string `json:"content"`
}

func (ctl *CommentController) ListByPost(c *gin.Context) {
	comments, err := ctl.uc.ListByPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

func (ctl *CommentController) CreateComment(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	ident := middleware.CurrentIdentity(c)
	comment, err := ctl.uc.CreateComment(c.Request.Context(), ident, c.Param("id"), req.Content)
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

func (ctl *CommentController) UpdateComment(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	ident := middleware.CurrentIdentity(c)
	comment, err := ctl.uc.UpdateComment(c.Request.Context(), ident, c.Param("id"), req.Content)
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comment": comment})
}

func (ctl *CommentController) DeleteComment(c *gin.Context) {
	ident := middleware.CurrentIdentity(c)
	if err := ctl.uc.DeleteComment(c.Request.Context(), ident, c.Param("id")); err != nil {
		respondError(c, ctl.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "comment deleted"})
}
