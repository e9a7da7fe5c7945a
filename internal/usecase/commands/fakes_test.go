//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	dombooking "nomaddesk/internal/domain/booking"
	dominvite "nomaddesk/internal/domain/invite"
	"nomaddesk/internal/domain/notification"
	"nomaddesk/internal/domain/user"
	"nomaddesk/internal/infra"
	"nomaddesk/internal/infra/db"
	"nomaddesk/internal/pkg/clock"
	"nomaddesk/internal/usecase/commands"
	"nomaddesk/internal/usecase/queries"
	"nomaddesk/internal/usecase/shared"
	"nomaddesk/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// In-memory unit of work backing the command scenario tests. Entities
// returned by the lock methods are the stored pointers, so domain
// mutations take effect directly and the write methods are bookkeeping
// only. Good enough for single-goroutine scenarios; locking semantics
// are exercised against a real database in integration environments.

var scenarioNow = time.Date(2026, 5, 11, 9, 0, 0, 0, time.UTC)

type memStore struct {
	bookings map[uuid.UUID]*dombooking.GroupBooking
	invites  map[uuid.UUID]*dominvite.GroupInvite
	users    map[uuid.UUID]shared.UserSnapshot

	// createDupKeyTimes makes the next N booking inserts fail with a
	// duplicate-key error, simulating a lost invite-code race.
	createDupKeyTimes int
}

func newMemStore() *memStore {
	return &memStore{
		bookings: make(map[uuid.UUID]*dombooking.GroupBooking),
		invites:  make(map[uuid.UUID]*dominvite.GroupInvite),
		users:    make(map[uuid.UUID]shared.UserSnapshot),
	}
}

func (s *memStore) pendingInvite(bookingID, inviteeID uuid.UUID) *dominvite.GroupInvite {
	for _, inv := range s.invites {
		if inv.BookingID() == bookingID && inv.InviteeID() == inviteeID && inv.Status() == dominvite.StatusPending {
			return inv
		}
	}
	return nil
}

func notFound(msg string) error {
	return infra.WrapRepoErr(infra.KindNotFound, msg, nil)
}

// ---- unit of work ----

type memUoW struct {
	store *memStore
}

func (u *memUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, memTx{store: u.store})
}

func (u *memUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *memUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *memUoW) CommandReads() shared.CommandReads {
	return memReads{store: u.store}
}

type memTx struct {
	store *memStore
}

func (t memTx) Bookings() shared.BookingRepository           { return memBookingRepo{store: t.store} }
func (t memTx) Invites() shared.InviteRepository             { return memInviteRepo{store: t.store} }
func (t memTx) Notifications() shared.NotificationRepository { return memNotificationRepo{} }
func (t memTx) Users() shared.UserRepository                 { return memUserRepo{} }
func (t memTx) Reads() shared.CommandReads                   { return memReads{store: t.store} }
func (t memTx) DB() db.DBTX                                  { return nil }

// ---- command reads ----

type memReads struct {
	store *memStore
}

func (r memReads) UserByID(_ context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	if u, ok := r.store.users[id]; ok {
		snapshot := u
		return &snapshot, nil
	}
	return nil, notFound("user not found")
}

func (r memReads) UserByEmail(_ context.Context, email string) (*shared.UserSnapshot, error) {
	for _, u := range r.store.users {
		if u.Email == email {
			snapshot := u
			return &snapshot, nil
		}
	}
	return nil, notFound("user not found")
}

func (r memReads) BookingByID(_ context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	b, ok := r.store.bookings[id]
	if !ok {
		return nil, notFound("booking not found")
	}
	code := b.InviteCode()
	slot := b.Slot()
	return &shared.BookingSnapshot{
		ID:           b.ID(),
		UserID:       b.OrganizerID(),
		Status:       b.Status(),
		IsGroup:      true,
		Date:         slot.Date(),
		StartMinutes: slot.StartMinutes(),
		EndMinutes:   slot.EndMinutes(),
		GroupName:    b.GroupName().String(),
		InviteCode:   &code,
	}, nil
}

func (r memReads) OverlappingBookingExists(_ context.Context, workspaceID uuid.UUID, date time.Time, startMinutes, endMinutes int) (bool, error) {
	for _, b := range r.store.bookings {
		if b.Workspace().ID != workspaceID || b.Status() == dombooking.StatusCancelled {
			continue
		}
		slot := b.Slot()
		if !slot.Date().Equal(date) {
			continue
		}
		if startMinutes < slot.EndMinutes() && endMinutes > slot.StartMinutes() {
			return true, nil
		}
	}
	return false, nil
}

func (r memReads) InviteCodeExists(_ context.Context, code string) (bool, error) {
	for _, b := range r.store.bookings {
		if b.InviteCode() == code {
			return true, nil
		}
	}
	return false, nil
}

func (r memReads) InviteByID(_ context.Context, id uuid.UUID) (*shared.InviteSnapshot, error) {
	inv, ok := r.store.invites[id]
	if !ok {
		return nil, notFound("invite not found")
	}
	return inviteSnapshot(inv), nil
}

func (r memReads) PendingInviteByBookingAndInvitee(_ context.Context, bookingID, inviteeID uuid.UUID) (*shared.InviteSnapshot, error) {
	if inv := r.store.pendingInvite(bookingID, inviteeID); inv != nil {
		return inviteSnapshot(inv), nil
	}
	return nil, notFound("pending invite not found")
}

func inviteSnapshot(inv *dominvite.GroupInvite) *shared.InviteSnapshot {
	return &shared.InviteSnapshot{
		ID:        inv.ID(),
		BookingID: inv.BookingID(),
		InviterID: inv.InviterID(),
		InviteeID: inv.InviteeID(),
		Status:    inv.Status(),
		ExpiresAt: inv.ExpiresAt(),
	}
}

// ---- repositories ----

type memBookingRepo struct {
	store *memStore
}

func (r memBookingRepo) Create(_ context.Context, _ db.DBTX, b *dombooking.GroupBooking) (uuid.UUID, error) {
	if r.store.createDupKeyTimes > 0 {
		r.store.createDupKeyTimes--
		return uuid.Nil, infra.WrapRepoErr(infra.KindDuplicateKey, "invite code already exists", nil)
	}
	r.store.bookings[b.ID()] = b
	return b.ID(), nil
}

func (r memBookingRepo) LockByID(_ context.Context, _ db.DBTX, id uuid.UUID) (*dombooking.GroupBooking, error) {
	if b, ok := r.store.bookings[id]; ok {
		return b, nil
	}
	return nil, notFound("booking not found")
}

func (r memBookingRepo) LockByInviteCode(_ context.Context, _ db.DBTX, code string) (*dombooking.GroupBooking, error) {
	for _, b := range r.store.bookings {
		if b.InviteCode() == code {
			return b, nil
		}
	}
	return nil, notFound("booking not found")
}

func (r memBookingRepo) UpdateGroup(context.Context, db.DBTX, *dombooking.GroupBooking) error {
	return nil
}

func (r memBookingRepo) AddParticipant(_ context.Context, _ db.DBTX, bookingID uuid.UUID, _ dombooking.Participant, maxParticipants int) error {
	b, ok := r.store.bookings[bookingID]
	if !ok {
		return notFound("booking not found")
	}
	// The entity already holds the new participant; mirror the insert
	// predicate's post-condition.
	if b.ReservedCount() > maxParticipants {
		return infra.WrapRepoErr(infra.KindConflict, "group is full", nil)
	}
	return nil
}

func (r memBookingRepo) UpdateParticipant(context.Context, db.DBTX, uuid.UUID, dombooking.Participant) error {
	return nil
}

func (r memBookingRepo) RemoveParticipant(context.Context, db.DBTX, uuid.UUID, uuid.UUID) error {
	return nil
}

type memInviteRepo struct {
	store *memStore
}

func (r memInviteRepo) Create(_ context.Context, _ db.DBTX, inv *dominvite.GroupInvite) (uuid.UUID, error) {
	r.store.invites[inv.ID()] = inv
	return inv.ID(), nil
}

func (r memInviteRepo) LockByID(_ context.Context, _ db.DBTX, id uuid.UUID) (*dominvite.GroupInvite, error) {
	if inv, ok := r.store.invites[id]; ok {
		return inv, nil
	}
	return nil, notFound("invite not found")
}

// UpdateStatus is a no-op on purpose: the commands mutate the locked
// entity before persisting, and the store holds that same pointer.
func (r memInviteRepo) UpdateStatus(_ context.Context, _ db.DBTX, id uuid.UUID, _ dominvite.Status, _ *time.Time) error {
	if _, ok := r.store.invites[id]; !ok {
		return notFound("invite not found")
	}
	return nil
}

func (r memInviteRepo) CancelPendingByBooking(_ context.Context, _ db.DBTX, bookingID uuid.UUID) (int64, error) {
	var n int64
	for _, inv := range r.store.invites {
		if inv.BookingID() == bookingID && inv.Status() == dominvite.StatusPending {
			if err := inv.Cancel(time.Now()); err == nil {
				n++
			}
		}
	}
	return n, nil
}

type memNotificationRepo struct{}

func (memNotificationRepo) Create(_ context.Context, _ db.DBTX, n *notification.Notification) (uuid.UUID, error) {
	return uuid.New(), nil
}

func (memNotificationRepo) MarkRead(context.Context, db.DBTX, uuid.UUID, uuid.UUID) error {
	return nil
}

func (memNotificationRepo) MarkAllRead(context.Context, db.DBTX, uuid.UUID) (int64, error) {
	return 0, nil
}

type memUserRepo struct{}

func (memUserRepo) Create(_ context.Context, _ db.DBTX, _, _, _ string, _ user.Role) (uuid.UUID, error) {
	return uuid.New(), nil
}

func (memUserRepo) UpdateLastLogin(context.Context, db.DBTX, uuid.UUID) error {
	return nil
}

// ---- supporting fakes ----

type recordingNotifier struct {
	events []commands.NotificationEvent
}

func (n *recordingNotifier) Notify(_ context.Context, event commands.NotificationEvent) error {
	n.events = append(n.events, event)
	return nil
}

func (n *recordingNotifier) byAction(action notification.Action) []commands.NotificationEvent {
	var out []commands.NotificationEvent
	for _, e := range n.events {
		if e.Action == action {
			out = append(out, e)
		}
	}
	return out
}

func (n *recordingNotifier) reset() {
	n.events = nil
}

type memStatsCache struct {
	invalidations int
}

func (c *memStatsCache) Get(context.Context, uuid.UUID) (*queries.GroupStatsView, error) {
	return nil, nil
}

func (c *memStatsCache) Set(context.Context, uuid.UUID, *queries.GroupStatsView) error {
	return nil
}

func (c *memStatsCache) Invalidate(context.Context, uuid.UUID) error {
	c.invalidations++
	return nil
}

type memBookingQueries struct {
	store *memStore
}

func (q *memBookingQueries) GetByID(_ context.Context, _, id uuid.UUID) (*queries.GroupBookingView, error) {
	return q.GetByIDSystem(context.Background(), id)
}

func (q *memBookingQueries) GetByIDSystem(_ context.Context, id uuid.UUID) (*queries.GroupBookingView, error) {
	b, ok := q.store.bookings[id]
	if !ok {
		return nil, queries.ErrBookingNotFound
	}
	code := b.InviteCode()
	return &queries.GroupBookingView{
		ID:              b.ID(),
		Status:          b.Status().String(),
		OrganizerID:     b.OrganizerID(),
		GroupName:       b.GroupName().String(),
		MaxParticipants: b.Capacity().Max(),
		MinParticipants: b.Capacity().Min(),
		InviteCode:      &code,
		Participants:    q.participantViews(b),
		Stats:           statsView(b.ComputeStats()),
	}, nil
}

func (q *memBookingQueries) Participants(_ context.Context, _, id uuid.UUID) ([]queries.ParticipantView, error) {
	b, ok := q.store.bookings[id]
	if !ok {
		return nil, queries.ErrBookingNotFound
	}
	return q.participantViews(b), nil
}

func (q *memBookingQueries) Stats(_ context.Context, _, id uuid.UUID) (*queries.GroupStatsView, error) {
	b, ok := q.store.bookings[id]
	if !ok {
		return nil, queries.ErrBookingNotFound
	}
	return statsView(b.ComputeStats()), nil
}

func (q *memBookingQueries) participantViews(b *dombooking.GroupBooking) []queries.ParticipantView {
	views := make([]queries.ParticipantView, 0, len(b.Participants()))
	for _, p := range b.Participants() {
		views = append(views, queries.ParticipantView{
			UserID:      p.UserID,
			Status:      p.Status.String(),
			InvitedAt:   p.InvitedAt,
			RespondedAt: p.RespondedAt,
		})
	}
	return views
}

func statsView(s dombooking.Stats) *queries.GroupStatsView {
	return &queries.GroupStatsView{
		CurrentParticipants: s.CurrentParticipants,
		AvailableSpots:      s.AvailableSpots,
		MaxParticipants:     s.MaxParticipants,
		MinParticipants:     s.MinParticipants,
		Invited:             s.Invited,
		Pending:             s.Pending,
		Accepted:            s.Accepted,
		MinimumReached:      s.MinimumReached,
	}
}

// ---- harness ----

type commandHarness struct {
	store    *memStore
	notifier *recordingNotifier
	cache    *memStatsCache
	clk      *clock.MockClock
	bookings commands.GroupBookingCommands
	invites  commands.InvitationCommands
}

func newCommandHarness() *commandHarness {
	store := newMemStore()
	uow := &memUoW{store: store}
	notifier := &recordingNotifier{}
	cache := &memStatsCache{}
	clk := clock.NewMockClock(scenarioNow)
	bookingQueries := &memBookingQueries{store: store}
	return &commandHarness{
		store:    store,
		notifier: notifier,
		cache:    cache,
		clk:      clk,
		bookings: commands.NewGroupBookingCommands(uow, bookingQueries, notifier, cache, clk),
		invites:  commands.NewInvitationCommands(uow, bookingQueries, notifier, cache, 0, clk),
	}
}

func (h *commandHarness) addUser(name, email string) uuid.UUID {
	id := uuid.New()
	h.store.users[id] = shared.UserSnapshot{ID: id, Email: email, Name: name, Role: user.RoleMember}
	return id
}

func (h *commandHarness) seedBooking(t *testing.T, b *builder.GroupBookingBuilder) *dombooking.GroupBooking {
	t.Helper()
	entity, err := b.WithNow(scenarioNow).WithDate(scenarioNow.AddDate(0, 0, 1)).BuildDomain()
	require.NoError(t, err)
	h.store.bookings[entity.ID()] = entity
	return entity
}
