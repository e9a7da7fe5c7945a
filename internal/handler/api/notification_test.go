//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"nomaddesk/internal/domain/user"
	"nomaddesk/internal/handler/api"
	resdto "nomaddesk/internal/handler/dto/response"
	"nomaddesk/internal/usecase/commands"
	"nomaddesk/internal/usecase/queries"
	"nomaddesk/tests/common/httptest"
	commandsmock "nomaddesk/tests/mock/commands"
	queriesmock "nomaddesk/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type NotificationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockNotificationCommands
	mockQueries  *queriesmock.MockNotificationQueries
	handler      *api.NotificationHandler
	userID       uuid.UUID
}

func (s *NotificationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockNotificationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockNotificationQueries(s.mockCtrl)
	s.handler = api.NewNotificationHandler(s.mockCommands, s.mockQueries)
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
	s.router.GET("/notifications", authMiddleware, s.handler.List)
	s.router.PUT("/notifications/:id/read", authMiddleware, s.handler.MarkRead)
	s.router.PUT("/notifications/read-all", authMiddleware, s.handler.MarkAllRead)
}

func (s *NotificationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestNotificationHandlerSuite(t *testing.T) {
	suite.Run(t, new(NotificationHandlerTestSuite))
}

func (s *NotificationHandlerTestSuite) notificationView(read bool) *queries.NotificationView {
	return &queries.NotificationView{
		ID:        uuid.New(),
		Type:      "booking",
		Title:     "Group booking invitation",
		Message:   "Alice invited you to join a group",
		Read:      read,
		CreatedAt: time.Now(),
	}
}

// ================================================================================
// TestList
// ================================================================================

func (s *NotificationHandlerTestSuite) TestList() {
	s.Run("success: returns notifications with unread count", func() {
		views := []*queries.NotificationView{s.notificationView(false), s.notificationView(true)}
		s.mockQueries.EXPECT().ListForUser(gomock.Any(), s.userID, false, 0).
			Return(views, nil).Times(1)
		s.mockQueries.EXPECT().UnreadCount(gomock.Any(), s.userID).
			Return(1, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/notifications", nil, "bearer-token")

		var response resdto.NotificationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Notifications, 2)
		s.Equal(1, response.UnreadCount)
	})

	s.Run("success: unread filter and limit are forwarded", func() {
		views := []*queries.NotificationView{s.notificationView(false)}
		s.mockQueries.EXPECT().ListForUser(gomock.Any(), s.userID, true, 10).
			Return(views, nil).Times(1)
		s.mockQueries.EXPECT().UnreadCount(gomock.Any(), s.userID).
			Return(1, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/notifications?unread=true&limit=10", nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/notifications", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestMarkRead
// ================================================================================

func (s *NotificationHandlerTestSuite) TestMarkRead() {
	notificationID := uuid.New()
	url := "/notifications/" + notificationID.String() + "/read"

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().MarkRead(gomock.Any(), notificationID, s.userID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/notifications/not-a-uuid/read", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid notification ID")
	})

	s.Run("error: 404 Not Found for another user's notification", func() {
		s.mockCommands.EXPECT().MarkRead(gomock.Any(), notificationID, s.userID).
			Return(commands.ErrNotificationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Notification not found")
	})
}

// ================================================================================
// TestMarkAllRead
// ================================================================================

func (s *NotificationHandlerTestSuite) TestMarkAllRead() {
	s.Run("success: returns the updated count", func() {
		s.mockCommands.EXPECT().MarkAllRead(gomock.Any(), s.userID).
			Return(int64(5), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/notifications/read-all", nil, "bearer-token")

		var response map[string]int64
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(5), response["updated"])
	})
}
