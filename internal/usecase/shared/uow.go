package shared

import (
	"context"
	"time"

	"nomaddesk/internal/domain/booking"
	"nomaddesk/internal/domain/invite"
	"nomaddesk/internal/domain/notification"
	"nomaddesk/internal/domain/user"
	"nomaddesk/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Invites() InviteRepository
	Notifications() NotificationRepository
	Users() UserRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	UserByEmail(ctx context.Context, email string) (*UserSnapshot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	OverlappingBookingExists(ctx context.Context, workspaceID uuid.UUID, date time.Time, startMinutes, endMinutes int) (bool, error)
	InviteCodeExists(ctx context.Context, code string) (bool, error)
	InviteByID(ctx context.Context, id uuid.UUID) (*InviteSnapshot, error)
	// PendingInviteByBookingAndInvitee reports NOT_FOUND when no pending
	// invite links the pair.
	PendingInviteByBookingAndInvitee(ctx context.Context, bookingID, inviteeID uuid.UUID) (*InviteSnapshot, error)
}

// Minimal snapshots for command read operations

type UserSnapshot struct {
	ID    uuid.UUID
	Email string
	Name  string
	Role  user.Role
}

type BookingSnapshot struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Status       booking.Status
	IsGroup      bool
	Date         time.Time
	StartMinutes int
	EndMinutes   int
	GroupName    string
	InviteCode   *string
}

type InviteSnapshot struct {
	ID         uuid.UUID
	BookingID  uuid.UUID
	InviterID  uuid.UUID
	InviteeID  uuid.UUID
	Status     invite.Status
	ExpiresAt  time.Time
	InviteCode string
}

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.GroupBooking) (uuid.UUID, error)
	// LockByID loads the booking row FOR UPDATE together with its
	// participants, serializing concurrent membership changes.
	LockByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*booking.GroupBooking, error)
	LockByInviteCode(ctx context.Context, tx db.DBTX, code string) (*booking.GroupBooking, error)
	UpdateGroup(ctx context.Context, tx db.DBTX, b *booking.GroupBooking) error
	// AddParticipant re-checks capacity server-side in the insert
	// predicate, so an over-capacity write fails even without the lock.
	AddParticipant(ctx context.Context, tx db.DBTX, bookingID uuid.UUID, p booking.Participant, maxParticipants int) error
	UpdateParticipant(ctx context.Context, tx db.DBTX, bookingID uuid.UUID, p booking.Participant) error
	RemoveParticipant(ctx context.Context, tx db.DBTX, bookingID, userID uuid.UUID) error
}

type InviteRepository interface {
	Create(ctx context.Context, tx db.DBTX, inv *invite.GroupInvite) (uuid.UUID, error)
	LockByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*invite.GroupInvite, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status invite.Status, respondedAt *time.Time) error
	CancelPendingByBooking(ctx context.Context, tx db.DBTX, bookingID uuid.UUID) (int64, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, tx db.DBTX, n *notification.Notification) (uuid.UUID, error)
	MarkRead(ctx context.Context, tx db.DBTX, id, userID uuid.UUID) error
	MarkAllRead(ctx context.Context, tx db.DBTX, userID uuid.UUID) (int64, error)
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, email, passwordHash, name string, role user.Role) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error
}
