package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	reqdto "nomaddesk/internal/handler/dto/request"
	resdto "nomaddesk/internal/handler/dto/response"
	"nomaddesk/internal/handler/httperr"
	"nomaddesk/internal/handler/middleware"
	"nomaddesk/internal/usecase/commands"
	"nomaddesk/internal/usecase/queries"
)

type InvitationHandler struct {
	cmds commands.InvitationCommands
	q    queries.InviteQueries
}

func NewInvitationHandler(cmds commands.InvitationCommands, q queries.InviteQueries) *InvitationHandler {
	return &InvitationHandler{cmds: cmds, q: q}
}

// @Summary Send invitations
// @Description Send batch invitations to a group booking; each entry succeeds or fails independently
// @Tags invitations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.SendInvitationsRequest true "Invitations to send"
// @Success 200 {object} resdto.SendInvitationsResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/group/{id}/invite [post]
func (h *InvitationHandler) Send(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}
	inviterID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.SendInvitationsRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	results, err := h.cmds.SendInvitations(c.Request.Context(), bookingID, req, inviterID)
	if err != nil {
		abortBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromInvitationResults(results))
}

// @Summary Respond to invitation
// @Description Accept or decline a pending invitation to a group booking
// @Tags invitations
// @Accept json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.RespondInvitationRequest true "Response (accepted or declined)"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings/group/{id}/respond [put]
func (h *InvitationHandler) Respond(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.RespondInvitationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	if err := h.cmds.Respond(c.Request.Context(), bookingID, req, userID); err != nil {
		abortBookingError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Join by invite code
// @Description Join a group booking using its shareable invite code
// @Tags invitations
// @Produce json
// @Security BearerAuth
// @Param inviteCode path string true "Invite code"
// @Success 200 {object} resdto.GroupBookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/group/join/{inviteCode} [post]
func (h *InvitationHandler) JoinByCode(c *gin.Context) {
	code := strings.ToUpper(strings.TrimSpace(c.Param("inviteCode")))
	if code == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "Invite code required", nil)
		return
	}
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	view, err := h.cmds.JoinByCode(c.Request.Context(), code, userID)
	if err != nil {
		abortBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromGroupBookingView(view))
}

// @Summary Remove participant
// @Description Remove a participant from a group booking (organizer only)
// @Tags invitations
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param userId path string true "Participant user ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/group/{id}/participants/{userId} [delete]
func (h *InvitationHandler) RemoveParticipant(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}
	participantID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid user ID format", nil)
		return
	}
	removerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	if err := h.cmds.RemoveParticipant(c.Request.Context(), bookingID, participantID, removerID); err != nil {
		abortBookingError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Leave group
// @Description Leave a group booking as a participant
// @Tags invitations
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings/group/{id}/leave [post]
func (h *InvitationHandler) Leave(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	if err := h.cmds.Leave(c.Request.Context(), bookingID, userID); err != nil {
		abortBookingError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List my invitations
// @Description List invitations received by the current user
// @Tags invitations
// @Produce json
// @Security BearerAuth
// @Param pending query bool false "Only pending invitations"
// @Success 200 {array} resdto.InvitationResponse
// @Failure 401 {object} map[string]string
// @Router /invitations [get]
func (h *InvitationHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	pendingOnly := c.Query("pending") == "true"
	views, err := h.q.ListForUser(c.Request.Context(), userID, pendingOnly)
	if err != nil {
		abortBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"invitations": resdto.FromInviteViews(views)})
}

// @Summary Get invitation
// @Description Get an invitation by ID (invitee or inviter only)
// @Tags invitations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Invitation ID"
// @Success 200 {object} resdto.InvitationResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /invitations/{id} [get]
func (h *InvitationHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid invitation ID format", nil)
		return
	}
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), actorID, id)
	if err != nil {
		abortBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromInviteView(view))
}
