package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/spotterhq/spotter-api/internal/api/metrics"
	"github.com/spotterhq/spotter-api/internal/core/domain"
	"github.com/spotterhq/spotter-api/internal/core/ports"
)

// ChallengeHandler handles challenge creation, listing, and invitation
// responses.
type ChallengeHandler struct {
	challenges  ports.ChallengeService
	invitations ports.InvitationService
}

func NewChallengeHandler(challenges ports.ChallengeService, invitations ports.InvitationService) *ChallengeHandler {
	return &ChallengeHandler{challenges: challenges, invitations: invitations}
}

type createChallengeRequest struct {
	ChallengeType  string   `json:"challenge_type"`
	Category       string   `json:"category"`
	Title          string   `json:"title"`
	Goal           string   `json:"goal"`
	StartDate      string   `json:"start_date"`
	EndDate        string   `json:"end_date"`
	Description    string   `json:"description"`
	Privacy        string   `json:"privacy"`
	TargetValue    string   `json:"target_value"`
	Metric         string   `json:"metric"`
	InvitedFriends []string `json:"invited_friends"`
}

// Create handles POST /api/challenges. All rule violations are reported in a
// single response. Invited friends receive pending invitations.
//
// @Summary      Create a challenge
// @Tags         challenges
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createChallengeRequest  true  "Challenge details"
// @Success      201   {object}  domain.Challenge
// @Failure      400   {object}  map[string][]string
// @Failure      401   {object}  map[string]string
// @Router       /api/challenges [post]
func (h *ChallengeHandler) Create(c echo.Context) error {
	email, err := ctxEmail(c)
	if err != nil {
		return err
	}

	var req createChallengeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	challenge, err := h.challenges.CreateChallenge(c.Request().Context(), ports.CreateChallengeInput{
		ChallengeType:  req.ChallengeType,
		Category:       req.Category,
		Title:          req.Title,
		Goal:           req.Goal,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Description:    req.Description,
		Privacy:        req.Privacy,
		TargetValue:    req.TargetValue,
		Metric:         req.Metric,
		InvitedFriends: req.InvitedFriends,
	}, email)
	if err != nil {
		return err
	}

	metrics.ChallengesCreatedTotal.WithLabelValues(challenge.ChallengeType).Inc()
	return c.JSON(http.StatusCreated, challenge)
}

// Get handles GET /api/challenges/:id.
//
// @Summary      Get a challenge by id
// @Tags         challenges
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Challenge id"
// @Success      200  {object}  domain.Challenge
// @Failure      404  {object}  map[string]string
// @Router       /api/challenges/{id} [get]
func (h *ChallengeHandler) Get(c echo.Context) error {
	challenge, err := h.challenges.GetChallenge(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, challenge)
}

// List handles GET /api/challenges with an optional ?privacy= filter.
//
// @Summary      List challenges, newest first
// @Tags         challenges
// @Produce      json
// @Security     BearerAuth
// @Param        privacy  query    string  false  "Filter by privacy (private or public)"
// @Success      200      {array}  domain.Challenge
// @Router       /api/challenges [get]
func (h *ChallengeHandler) List(c echo.Context) error {
	challenges, err := h.challenges.ListChallenges(c.Request().Context(), c.QueryParam("privacy"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, challenges)
}

// AcceptInvitation handles POST /api/challenges/:id/invitations/accept.
// Accepting twice fails the second time; the participant count grows by
// exactly one.
//
// @Summary      Accept a challenge invitation
// @Tags         challenges
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Challenge id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/challenges/{id}/invitations/accept [post]
func (h *ChallengeHandler) AcceptInvitation(c echo.Context) error {
	email, err := ctxEmail(c)
	if err != nil {
		return err
	}

	if err := h.invitations.AcceptInvitation(c.Request().Context(), c.Param("id"), email); err != nil {
		return err
	}

	metrics.InvitationResponsesTotal.WithLabelValues(string(domain.InvitationAccepted)).Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Invitation accepted"})
}

// DeclineInvitation handles POST /api/challenges/:id/invitations/decline.
//
// @Summary      Decline a challenge invitation
// @Tags         challenges
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Challenge id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/challenges/{id}/invitations/decline [post]
func (h *ChallengeHandler) DeclineInvitation(c echo.Context) error {
	email, err := ctxEmail(c)
	if err != nil {
		return err
	}

	if err := h.invitations.DeclineInvitation(c.Request().Context(), c.Param("id"), email); err != nil {
		return err
	}

	metrics.InvitationResponsesTotal.WithLabelValues(string(domain.InvitationDeclined)).Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Invitation declined"})
}

// ListInvitations handles GET /api/invitations, returning the caller's
// pending invitations.
//
// @Summary      List pending challenge invitations
// @Tags         challenges
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.ChallengeInvitation
// @Router       /api/invitations [get]
func (h *ChallengeHandler) ListInvitations(c echo.Context) error {
	email, err := ctxEmail(c)
	if err != nil {
		return err
	}

	invitations, err := h.invitations.ListPendingInvitations(c.Request().Context(), email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, invitations)
}
