package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/voteboard/voteboard/internal/application"
	"github.com/voteboard/voteboard/internal/domain/entity"
	"github.com/voteboard/voteboard/internal/interface/middleware"
	"github.com/voteboard/voteboard/pkg/response"
	"github.com/voteboard/voteboard/pkg/validation"
)

type PostHandler struct {
	Svc    *application.PostService
	Logger *logrus.Logger
}

func NewPostHandler(svc *application.PostService, logger *logrus.Logger) *PostHandler {
	return &PostHandler{Svc: svc, Logger: logger}
}

type postRequest struct {
	Title     string `json:"title" binding:"required"`
	Content   string `json:"content" binding:"required"`
	Published *bool  `json:"published"` // defaults to true when omitted
}

func (r *postRequest) input() application.PostInput {
	published := true
	if r.Published != nil {
		published = *r.Published
	}
	return application.PostInput{Title: r.Title, Content: r.Content, Published: published}
}

func postID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid post id", nil)
		return 0, false
	}
	return id, true
}

func currentUser(c *gin.Context) *entity.User {
	u, _ := c.MustGet(middleware.CtxUserKey).(*entity.User)
	return u
}

// List GET /posts?limit&skip&search
func (h *PostHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	search := c.Query("search")

	posts, err := h.Svc.List(c.Request.Context(), search, limit, skip)
	if err != nil {
		failFromService(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, toPostViews(posts), "posts",
		map[string]any{"limit": limit, "skip": skip, "count": len(posts)})
}

// Get GET /posts/:id
func (h *PostHandler) Get(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}
	p, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		failFromService(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, toPostView(p), "post", nil)
}

// Create POST /posts (auth)
func (h *PostHandler) Create(c *gin.Context) {
	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	p, err := h.Svc.Create(c.Request.Context(), currentUser(c), req.input())
	if err != nil {
		failFromService(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusCreated, toPostView(p), "post created", nil)
}

// Update PUT /posts/:id (auth, owner)
func (h *PostHandler) Update(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}
	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	p, err := h.Svc.Update(c.Request.Context(), c.GetInt64(middleware.CtxUserIDKey), id, req.input())
	if err != nil {
		failFromService(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, toPostView(p), "post updated", nil)
}

// Delete DELETE /posts/:id (auth, owner)
func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), c.GetInt64(middleware.CtxUserIDKey), id); err != nil {
		failFromService(c, h.Logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
