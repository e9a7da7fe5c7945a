//go:build unit

package invite_test

import (
	"strings"
	"testing"
	"time"

	"nomaddesk/internal/domain/invite"
	"nomaddesk/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGroupInvite(t *testing.T) {
	now := time.Now()

	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewInviteBuilder().WithNow(now).BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, invite.StatusPending, actual.Status())
		assert.Equal(t, now.Add(invite.DefaultTTL), actual.ExpiresAt())
		assert.Nil(t, actual.RespondedAt())
		assert.Nil(t, actual.ViewedAt())
	})

	t.Run("normalizes the invitee email", func(t *testing.T) {
		actual, err := builder.NewInviteBuilder().
			WithInviteeEmail("  Friend@Example.COM ").
			BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "friend@example.com", actual.InviteeEmail())
	})

	t.Run("message length validation", func(t *testing.T) {
		ok, err := builder.NewInviteBuilder().
			WithPersonalMessage(strings.Repeat("a", invite.MaxMessageLength)).
			BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, ok)

		tooLong, err := builder.NewInviteBuilder().
			WithPersonalMessage(strings.Repeat("a", invite.MaxMessageLength+1)).
			BuildDomain()
		require.Nil(t, tooLong)
		assert.ErrorIs(t, err, invite.ErrMessageTooLong)
	})

	t.Run("non-positive ttl falls back to the default", func(t *testing.T) {
		actual, err := builder.NewInviteBuilder().WithNow(now).WithTTL(0).BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, now.Add(invite.DefaultTTL), actual.ExpiresAt())
	})
}

func TestGroupInviteLifecycle(t *testing.T) {
	now := time.Now()

	t.Run("accept resolves a pending invite", func(t *testing.T) {
		i := mustBuildInvite(t, now)

		require.NoError(t, i.Accept(now))
		assert.Equal(t, invite.StatusAccepted, i.Status())
		require.NotNil(t, i.RespondedAt())
	})

	t.Run("decline resolves a pending invite", func(t *testing.T) {
		i := mustBuildInvite(t, now)

		require.NoError(t, i.Decline(now))
		assert.Equal(t, invite.StatusDeclined, i.Status())
	})

	t.Run("resolved invites stay resolved", func(t *testing.T) {
		i := mustBuildInvite(t, now)
		require.NoError(t, i.Accept(now))

		assert.ErrorIs(t, i.Decline(now), invite.ErrAlreadyResolved)
		assert.ErrorIs(t, i.Accept(now), invite.ErrAlreadyResolved)
		assert.ErrorIs(t, i.Cancel(now), invite.ErrAlreadyResolved)
	})

	t.Run("expired invite cannot be accepted", func(t *testing.T) {
		i := mustBuildInvite(t, now)
		later := now.Add(invite.DefaultTTL)

		assert.True(t, i.IsExpired(later))
		assert.False(t, i.IsPending(later))
		assert.ErrorIs(t, i.Accept(later), invite.ErrExpired)
	})

	t.Run("expiry boundary is inclusive", func(t *testing.T) {
		i := mustBuildInvite(t, now)

		justBefore := now.Add(invite.DefaultTTL - time.Second)
		assert.False(t, i.IsExpired(justBefore))
		assert.True(t, i.IsPending(justBefore))
	})

	t.Run("cancel works even after expiry", func(t *testing.T) {
		i := mustBuildInvite(t, now)
		later := now.Add(invite.DefaultTTL + time.Hour)

		require.NoError(t, i.Cancel(later))
		assert.Equal(t, invite.StatusCancelled, i.Status())
		assert.Nil(t, i.RespondedAt())
	})

	t.Run("expire retires a lapsed pending invite", func(t *testing.T) {
		i := mustBuildInvite(t, now)
		later := now.Add(invite.DefaultTTL + time.Hour)

		require.NoError(t, i.Expire(later))
		assert.Equal(t, invite.StatusExpired, i.Status())
		assert.Nil(t, i.RespondedAt())
		require.ErrorIs(t, i.Expire(later), invite.ErrAlreadyResolved)
	})
}

func TestStatus(t *testing.T) {
	t.Run("only pending is non-terminal", func(t *testing.T) {
		assert.False(t, invite.StatusPending.IsTerminal())
		assert.True(t, invite.StatusAccepted.IsTerminal())
		assert.True(t, invite.StatusDeclined.IsTerminal())
		assert.True(t, invite.StatusExpired.IsTerminal())
		assert.True(t, invite.StatusCancelled.IsTerminal())
	})
}

func mustBuildInvite(t *testing.T, now time.Time) *invite.GroupInvite {
	t.Helper()
	i, err := builder.NewInviteBuilder().WithNow(now).BuildDomain()
	require.NoError(t, err)
	return i
}
