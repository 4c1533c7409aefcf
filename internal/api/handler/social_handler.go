package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/spotterhq/spotter-api/internal/core/ports"
)

// SocialHandler handles likes and comments on feed posts.
type SocialHandler struct {
	service ports.SocialService
}

func NewSocialHandler(service ports.SocialService) *SocialHandler {
	return &SocialHandler{service: service}
}

type likeRequest struct {
	PostType string `json:"post_type" validate:"required"`
}

type likeCountResponse struct {
	PostID string `json:"post_id"`
	Likes  int64  `json:"likes"`
}

type addCommentRequest struct {
	PostType string `json:"post_type" validate:"required"`
	Text     string `json:"text"`
}

// Like handles POST /api/posts/:id/likes. Liking a post twice fails the
// second time.
//
// @Summary      Like a post
// @Tags         social
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "Post id"
// @Param        body  body      likeRequest  true  "Post type (challenge or workout)"
// @Success      201   {object}  messageResponse
// @Failure      409   {object}  map[string]string
// @Router       /api/posts/{id}/likes [post]
func (h *SocialHandler) Like(c echo.Context) error {
	email, err := ctxEmail(c)
	if err != nil {
		return err
	}

	var req likeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.LikePost(c.Request().Context(), email, c.Param("id"), req.PostType); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, messageResponse{Message: "Post liked"})
}

// Unlike handles DELETE /api/posts/:id/likes.
//
// @Summary      Remove a like from a post
// @Tags         social
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/posts/{id}/likes [delete]
func (h *SocialHandler) Unlike(c echo.Context) error {
	email, err := ctxEmail(c)
	if err != nil {
		return err
	}

	if err := h.service.UnlikePost(c.Request().Context(), email, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Like removed"})
}

// LikeCount handles GET /api/posts/:id/likes.
//
// @Summary      Count likes on a post
// @Tags         social
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  likeCountResponse
// @Router       /api/posts/{id}/likes [get]
func (h *SocialHandler) LikeCount(c echo.Context) error {
	postID := c.Param("id")
	count, err := h.service.LikeCount(c.Request().Context(), postID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, likeCountResponse{PostID: postID, Likes: count})
}

// AddComment handles POST /api/posts/:id/comments.
//
// @Summary      Comment on a post
// @Tags         social
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Post id"
// @Param        body  body      addCommentRequest  true  "Comment"
// @Success      201   {object}  domain.Comment
// @Failure      400   {object}  map[string][]string
// @Router       /api/posts/{id}/comments [post]
func (h *SocialHandler) AddComment(c echo.Context) error {
	email, err := ctxEmail(c)
	if err != nil {
		return err
	}

	var req addCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.service.AddComment(c.Request().Context(), email, c.Param("id"), req.PostType, req.Text)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, comment)
}

// ListComments handles GET /api/posts/:id/comments.
//
// @Summary      List comments on a post, newest first
// @Tags         social
// @Produce      json
// @Security     BearerAuth
// @Param        id   path     string  true  "Post id"
// @Success      200  {array}  domain.Comment
// @Router       /api/posts/{id}/comments [get]
func (h *SocialHandler) ListComments(c echo.Context) error {
	comments, err := h.service.ListComments(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comments)
}
