//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"nomaddesk/internal/domain/user"
	"nomaddesk/internal/handler/api"
	resdto "nomaddesk/internal/handler/dto/response"
	"nomaddesk/internal/usecase/commands"
	"nomaddesk/internal/usecase/queries"
	"nomaddesk/tests/common/builder"
	"nomaddesk/tests/common/httptest"
	"nomaddesk/tests/common/testutil"
	commandsmock "nomaddesk/tests/mock/commands"
	queriesmock "nomaddesk/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type GroupBookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockGroupBookingCommands
	mockQueries  *queriesmock.MockGroupBookingQueries
	handler      *api.GroupBookingHandler
	userID       uuid.UUID
}

func (s *GroupBookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockGroupBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockGroupBookingQueries(s.mockCtrl)
	s.handler = api.NewGroupBookingHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", user.RoleMember)
		c.Next()
	}

	// Setup routes
	s.router.POST("/bookings/group", authMiddleware, s.handler.Create)
	s.router.GET("/bookings/group/:id", authMiddleware, s.handler.Get)
	s.router.PUT("/bookings/group/:id", authMiddleware, s.handler.Update)
	s.router.DELETE("/bookings/group/:id", authMiddleware, s.handler.Cancel)
	s.router.GET("/bookings/group/:id/participants", authMiddleware, s.handler.Participants)
	s.router.GET("/bookings/group/:id/stats", authMiddleware, s.handler.Stats)
}

func (s *GroupBookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGroupBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(GroupBookingHandlerTestSuite))
}

type testCaseBooking struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *GroupBookingHandlerTestSuite) TestCreate() {
	url := "/bookings/group"

	reqBody := builder.NewGroupBookingBuilder().BuildCreateRequestDTO()
	returnView := builder.NewGroupBookingBuilder().BuildViewQuery()

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), s.userID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.GroupBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(returnView.GroupName, response.GroupName)
		s.Equal(returnView.MaxParticipants, response.MaxParticipants)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseBooking{
			{name: "missing field: workspace_id", mutate: testutil.Field("workspace_id", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: workspace_name", mutate: testutil.Field("workspace_name", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: workspace_address", mutate: testutil.Field("workspace_address", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: date", mutate: testutil.Field("date", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: start_time", mutate: testutil.Field("start_time", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: end_time", mutate: testutil.Field("end_time", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: room_type", mutate: testutil.Field("room_type", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: group_name", mutate: testutil.Field("group_name", nil), expectCode: http.StatusBadRequest},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "domain validation error",
				commandsError:  commands.ErrDomainValidation,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Validation failed",
			},
			{
				name:           "time slot conflict",
				commandsError:  commands.ErrTimeSlotConflict,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already booked",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), s.userID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *GroupBookingHandlerTestSuite) TestGet() {
	bookingID := uuid.New()
	url := "/bookings/group/" + bookingID.String()

	returnView := builder.NewGroupBookingBuilder().BuildViewQuery()
	returnView.ID = bookingID

	s.Run("success: returns 200 OK with GroupBookingResponse", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, bookingID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.GroupBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(bookingID, response.ID)
		s.Equal(returnView.OrganizerName, response.OrganizerName)
		s.Equal(returnView.Workspace.Name, response.Workspace.Name)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/group/invalid-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})

	s.Run("error: 404 Not Found for missing booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, bookingID).
			Return(nil, queries.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not found")
	})

	s.Run("error: 403 Forbidden for private booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, bookingID).
			Return(nil, queries.ErrBookingAccess).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access denied")
	})
}

// ================================================================================
// TestUpdate
// ================================================================================

func (s *GroupBookingHandlerTestSuite) TestUpdate() {
	bookingID := uuid.New()
	url := "/bookings/group/" + bookingID.String()

	reqBody := builder.NewGroupBookingBuilder().BuildUpdateRequestDTO()
	returnView := builder.NewGroupBookingBuilder().BuildViewQuery()
	returnView.ID = bookingID

	s.Run("success: returns 200 OK with updated booking", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), bookingID, gomock.Any(), s.userID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")

		var response resdto.GroupBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(bookingID, response.ID)
	})

	s.Run("error: 403 Forbidden when not the organizer", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), bookingID, gomock.Any(), s.userID).
			Return(nil, commands.ErrNotOrganizer).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "organizer")
	})

	s.Run("error: 422 Unprocessable Entity for cancelled booking", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), bookingID, gomock.Any(), s.userID).
			Return(nil, commands.ErrInvalidOperation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "not allowed")
	})
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *GroupBookingHandlerTestSuite) TestCancel() {
	bookingID := uuid.New()
	url := "/bookings/group/" + bookingID.String()

	s.Run("success: returns 204 No Content without body", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), bookingID, gomock.Any(), s.userID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("success: returns 204 No Content with a reason", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), bookingID, gomock.Any(), s.userID).
			Return(nil).Times(1)

		body := map[string]any{"reason": "venue closed"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, body, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 Not Found for missing booking", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), bookingID, gomock.Any(), s.userID).
			Return(commands.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not found")
	})

	s.Run("error: 422 Unprocessable Entity when already cancelled", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), bookingID, gomock.Any(), s.userID).
			Return(commands.ErrInvalidOperation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
	})
}

// ================================================================================
// TestParticipants
// ================================================================================

func (s *GroupBookingHandlerTestSuite) TestParticipants() {
	bookingID := uuid.New()
	url := "/bookings/group/" + bookingID.String() + "/participants"

	participants := []queries.ParticipantView{
		{UserID: uuid.New(), Name: "Bob", Email: "bob@example.com", Status: "accepted"},
		{UserID: uuid.New(), Name: "Carol", Email: "carol@example.com", Status: "invited"},
	}

	s.Run("success: returns 200 OK with the participant list", func() {
		s.mockQueries.EXPECT().Participants(gomock.Any(), s.userID, bookingID).
			Return(participants, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response struct {
			Participants []resdto.ParticipantResponse `json:"participants"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Participants, 2)
		s.Equal("Bob", response.Participants[0].Name)
	})

	s.Run("error: 404 Not Found for missing booking", func() {
		s.mockQueries.EXPECT().Participants(gomock.Any(), s.userID, bookingID).
			Return(nil, queries.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

// ================================================================================
// TestStats
// ================================================================================

func (s *GroupBookingHandlerTestSuite) TestStats() {
	bookingID := uuid.New()
	url := "/bookings/group/" + bookingID.String() + "/stats"

	statsView := builder.NewGroupBookingBuilder().BuildStatsView()

	s.Run("success: returns 200 OK with stats", func() {
		s.mockQueries.EXPECT().Stats(gomock.Any(), s.userID, bookingID).
			Return(statsView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.GroupStatsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(statsView.CurrentParticipants, response.CurrentParticipants)
		s.Equal(statsView.AvailableSpots, response.AvailableSpots)
		s.Equal(statsView.MinimumReached, response.MinimumReached)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/group/not-a-uuid/stats", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})
}
