package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/voteboard/voteboard/internal/application"
	"github.com/voteboard/voteboard/internal/interface/middleware"
	"github.com/voteboard/voteboard/pkg/response"
	"github.com/voteboard/voteboard/pkg/validation"
)

type VoteHandler struct {
	Svc    *application.VoteService
	Logger *logrus.Logger
}

func NewVoteHandler(svc *application.VoteService, logger *logrus.Logger) *VoteHandler {
	return &VoteHandler{Svc: svc, Logger: logger}
}

type voteRequest struct {
	PostID int64 `json:"post_id" binding:"required,gt=0"`
}

// Add POST /votes (auth)
func (h *VoteHandler) Add(c *gin.Context) {
	var req voteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	uid := c.GetInt64(middleware.CtxUserIDKey)
	if err := h.Svc.Add(c.Request.Context(), uid, req.PostID); err != nil {
		failFromService(c, h.Logger, err)
		return
	}
	response.JSON[any](c, http.StatusCreated, gin.H{"post_id": req.PostID}, "vote added", nil)
}

// Remove DELETE /votes (auth)
func (h *VoteHandler) Remove(c *gin.Context) {
	var req voteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	uid := c.GetInt64(middleware.CtxUserIDKey)
	if err := h.Svc.Remove(c.Request.Context(), uid, req.PostID); err != nil {
		failFromService(c, h.Logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
