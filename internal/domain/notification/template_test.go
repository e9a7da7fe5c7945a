//go:build unit

package notification_test

import (
	"testing"

	"nomaddesk/internal/domain/notification"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	ctx := notification.TemplateContext{
		ActorName:     "Alice",
		GroupName:     "Design Sync",
		WorkspaceName: "Harbor Loft",
	}

	t.Run("invited without personal message", func(t *testing.T) {
		title, message := notification.Render(notification.ActionInvited, ctx)
		assert.Equal(t, "Group booking invitation", title)
		assert.Equal(t, `Alice invited you to join "Design Sync" at Harbor Loft.`, message)
	})

	t.Run("invited with personal message", func(t *testing.T) {
		c := ctx
		c.Detail = "Join us!"
		_, message := notification.Render(notification.ActionInvited, c)
		assert.Contains(t, message, `Message: "Join us!"`)
	})

	t.Run("updated lists changed fields", func(t *testing.T) {
		c := ctx
		c.Detail = "group name, capacity"
		_, message := notification.Render(notification.ActionUpdated, c)
		assert.Equal(t, `The group "Design Sync" was updated: group name, capacity.`, message)
	})

	t.Run("cancelled includes the reason when present", func(t *testing.T) {
		c := ctx
		c.Detail = "venue closed"
		_, message := notification.Render(notification.ActionCancelled, c)
		assert.Contains(t, message, "Reason: venue closed.")

		_, bare := notification.Render(notification.ActionCancelled, ctx)
		assert.NotContains(t, bare, "Reason")
	})

	t.Run("unknown action falls back to a generic notification", func(t *testing.T) {
		c := notification.TemplateContext{ActorName: "Alice", Detail: "did something"}
		title, message := notification.Render(notification.Action("mystery"), c)
		assert.Equal(t, "Nomad Desk", title)
		assert.Equal(t, "Alice did something", message)
	})
}

func TestTypeFor(t *testing.T) {
	assert.Equal(t, notification.TypeBooking, notification.TypeFor(notification.ActionInvited))
	assert.Equal(t, notification.TypeBooking, notification.TypeFor(notification.ActionBookingReminder))
	assert.Equal(t, notification.TypeSystem, notification.TypeFor(notification.ActionMinimumReached))
}
