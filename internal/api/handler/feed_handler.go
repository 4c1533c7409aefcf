package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/spotterhq/spotter-api/internal/core/ports"
)

// FeedHandler serves merged activity feeds.
type FeedHandler struct {
	service ports.FeedService
}

func NewFeedHandler(service ports.FeedService) *FeedHandler {
	return &FeedHandler{service: service}
}

// Public handles GET /api/activities, returning all public challenges and
// workouts, newest first. "?type=mine" narrows the feed to the caller's
// own posts, matching GET /api/activities/mine.
//
// @Summary      Get the public activity feed
// @Tags         feed
// @Produce      json
// @Security     BearerAuth
// @Param        type  query  string  false  "mine or all"
// @Success      200  {array}  domain.Activity
// @Router       /api/activities [get]
func (h *FeedHandler) Public(c echo.Context) error {
	if c.QueryParam("type") == "mine" {
		return h.Mine(c)
	}

	activities, err := h.service.PublicFeed(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, activities)
}

// Mine handles GET /api/activities/mine, returning everything the caller
// created regardless of privacy.
//
// @Summary      Get the caller's own activity feed
// @Tags         feed
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Activity
// @Router       /api/activities/mine [get]
func (h *FeedHandler) Mine(c echo.Context) error {
	email, err := ctxEmail(c)
	if err != nil {
		return err
	}

	activities, err := h.service.UserFeed(c.Request().Context(), email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, activities)
}
