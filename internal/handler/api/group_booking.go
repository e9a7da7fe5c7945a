package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	reqdto "nomaddesk/internal/handler/dto/request"
	resdto "nomaddesk/internal/handler/dto/response"
	"nomaddesk/internal/handler/httperr"
	"nomaddesk/internal/handler/middleware"
	"nomaddesk/internal/usecase/commands"
	"nomaddesk/internal/usecase/queries"
)

type GroupBookingHandler struct {
	cmds commands.GroupBookingCommands
	q    queries.GroupBookingQueries
}

func NewGroupBookingHandler(cmds commands.GroupBookingCommands, q queries.GroupBookingQueries) *GroupBookingHandler {
	return &GroupBookingHandler{cmds: cmds, q: q}
}

// @Summary Create group booking
// @Description Create a new group booking with capacity settings and an invite code
// @Tags group-bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateGroupBookingRequest true "Create group booking request"
// @Success 201 {object} resdto.GroupBookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/group [post]
func (h *GroupBookingHandler) Create(c *gin.Context) {
	organizerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateGroupBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.Create(c.Request.Context(), req, organizerID)
	if err != nil {
		abortBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromGroupBookingView(view))
}

// @Summary Get group booking
// @Description Get a group booking by ID with participants and stats
// @Tags group-bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.GroupBookingResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/group/{id} [get]
func (h *GroupBookingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
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
	c.JSON(http.StatusOK, resdto.FromGroupBookingView(view))
}

// @Summary Update group booking
// @Description Update group settings, capacity or details (organizer only)
// @Tags group-bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateGroupBookingRequest true "Update group booking request"
// @Success 200 {object} resdto.GroupBookingResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings/group/{id} [put]
func (h *GroupBookingHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}
	updaterID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.UpdateGroupBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	view, err := h.cmds.Update(c.Request.Context(), id, req, updaterID)
	if err != nil {
		abortBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromGroupBookingView(view))
}

// @Summary Cancel group booking
// @Description Cancel a group booking and all pending invitations (organizer only)
// @Tags group-bookings
// @Accept json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.CancelGroupBookingRequest false "Cancellation reason"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings/group/{id} [delete]
func (h *GroupBookingHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}
	organizerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.CancelGroupBookingRequest
	if c.Request.ContentLength > 0 {
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
			return
		}
	}
	if err := h.cmds.Cancel(c.Request.Context(), id, req, organizerID); err != nil {
		abortBookingError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List participants
// @Description List all participants of a group booking
// @Tags group-bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {array} resdto.ParticipantResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/group/{id}/participants [get]
func (h *GroupBookingHandler) Participants(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	participants, err := h.q.Participants(c.Request.Context(), actorID, id)
	if err != nil {
		abortBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"participants": resdto.FromParticipantViews(participants)})
}

// @Summary Group booking stats
// @Description Get capacity and invitation statistics for a group booking
// @Tags group-bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.GroupStatsResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/group/{id}/stats [get]
func (h *GroupBookingHandler) Stats(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	stats, err := h.q.Stats(c.Request.Context(), actorID, id)
	if err != nil {
		abortBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromGroupStatsView(stats))
}
