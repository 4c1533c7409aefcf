package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/spotterhq/spotter-api/internal/api/metrics"
	"github.com/spotterhq/spotter-api/internal/core/ports"
)

// FriendHandler handles friend requests and the friends list.
type FriendHandler struct {
	service ports.FriendService
}

func NewFriendHandler(service ports.FriendService) *FriendHandler {
	return &FriendHandler{service: service}
}

type sendFriendRequestRequest struct {
	ToUser string `json:"to_user" validate:"required,email"`
}

type respondFriendRequestRequest struct {
	FromUser string `json:"from_user" validate:"required,email"`
}

// Send handles POST /api/friend-requests.
//
// @Summary      Send a friend request
// @Tags         friends
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      sendFriendRequestRequest  true  "Recipient"
// @Success      201   {object}  domain.FriendRequest
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/friend-requests [post]
func (h *FriendHandler) Send(c echo.Context) error {
	email, err := ctxEmail(c)
	if err != nil {
		return err
	}

	var req sendFriendRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	request, err := h.service.SendRequest(c.Request().Context(), email, req.ToUser)
	if err != nil {
		return err
	}

	metrics.FriendRequestsTotal.WithLabelValues("sent").Inc()
	return c.JSON(http.StatusCreated, request)
}

// Accept handles POST /api/friend-requests/accept. The caller is the
// recipient; from_user identifies the request to accept.
//
// @Summary      Accept a pending friend request
// @Tags         friends
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      respondFriendRequestRequest  true  "Sender of the request"
// @Success      200   {object}  messageResponse
// @Failure      404   {object}  map[string]string
// @Router       /api/friend-requests/accept [post]
func (h *FriendHandler) Accept(c echo.Context) error {
	email, err := ctxEmail(c)
	if err != nil {
		return err
	}

	var req respondFriendRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.AcceptRequest(c.Request().Context(), req.FromUser, email); err != nil {
		return err
	}

	metrics.FriendRequestsTotal.WithLabelValues("accepted").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Friend request accepted"})
}

// Reject handles POST /api/friend-requests/reject.
//
// @Summary      Reject a pending friend request
// @Tags         friends
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      respondFriendRequestRequest  true  "Sender of the request"
// @Success      200   {object}  messageResponse
// @Failure      404   {object}  map[string]string
// @Router       /api/friend-requests/reject [post]
func (h *FriendHandler) Reject(c echo.Context) error {
	email, err := ctxEmail(c)
	if err != nil {
		return err
	}

	var req respondFriendRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.RejectRequest(c.Request().Context(), req.FromUser, email); err != nil {
		return err
	}

	metrics.FriendRequestsTotal.WithLabelValues("rejected").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Friend request rejected"})
}

// ListIncoming handles GET /api/friend-requests, returning pending requests
// addressed to the caller.
//
// @Summary      List incoming pending friend requests
// @Tags         friends
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.FriendRequest
// @Router       /api/friend-requests [get]
func (h *FriendHandler) ListIncoming(c echo.Context) error {
	email, err := ctxEmail(c)
	if err != nil {
		return err
	}

	requests, err := h.service.ListIncomingRequests(c.Request().Context(), email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, requests)
}

// ListFriends handles GET /api/friends.
//
// @Summary      List the caller's friends
// @Tags         friends
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  string
// @Router       /api/friends [get]
func (h *FriendHandler) ListFriends(c echo.Context) error {
	email, err := ctxEmail(c)
	if err != nil {
		return err
	}

	friends, err := h.service.ListFriends(c.Request().Context(), email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, friends)
}

// RemoveFriend handles DELETE /api/friends/:email.
//
// @Summary      Remove a friend
// @Tags         friends
// @Produce      json
// @Security     BearerAuth
// @Param        email  path      string  true  "Friend's email"
// @Success      200    {object}  messageResponse
// @Failure      404    {object}  map[string]string
// @Router       /api/friends/{email} [delete]
func (h *FriendHandler) RemoveFriend(c echo.Context) error {
	email, err := ctxEmail(c)
	if err != nil {
		return err
	}

	if err := h.service.RemoveFriend(c.Request().Context(), email, c.Param("email")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Friend removed"})
}
