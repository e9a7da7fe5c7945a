package booking

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidTimeSlot    = errors.New("start time must be before end time")
	ErrInvalidTimeFormat  = errors.New("time must be in HH:MM format")
	ErrMissingDate        = errors.New("booking date is required")
	ErrEmptyGroupName     = errors.New("group name is required")
	ErrGroupNameTooLong   = errors.New("group name exceeds maximum length")
	ErrDescriptionTooLong = errors.New("group description exceeds maximum length")
	ErrInvalidCapacity    = errors.New("max participants must not be below min participants")
	ErrGroupTooSmall      = errors.New("group bookings require at least 2 participants")
	ErrMissingWorkspace   = errors.New("workspace id, name and address are required")
	ErrTooManyTags        = errors.New("too many tags")
	ErrTagTooLong         = errors.New("tag exceeds maximum length")
)

const (
	MaxGroupNameLength   = 100
	MaxDescriptionLength = 500
	MaxTags              = 10
	MaxTagLength         = 30
)

// TimeSlot is a same-day wall-clock interval on a calendar day.
type TimeSlot struct {
	date  time.Time
	start int // minutes since midnight
	end   int
}

func NewTimeSlot(date time.Time, startTime, endTime string) (TimeSlot, error) {
	if date.IsZero() {
		return TimeSlot{}, ErrMissingDate
	}

	start, err := parseWallClock(startTime)
	if err != nil {
		return TimeSlot{}, err
	}
	end, err := parseWallClock(endTime)
	if err != nil {
		return TimeSlot{}, err
	}
	if start >= end {
		return TimeSlot{}, ErrInvalidTimeSlot
	}

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return TimeSlot{date: day, start: start, end: end}, nil
}

// ReconstructTimeSlot rebuilds a slot from stored minute offsets.
func ReconstructTimeSlot(date time.Time, startMinutes, endMinutes int) TimeSlot {
	return TimeSlot{date: date, start: startMinutes, end: endMinutes}
}

func parseWallClock(s string) (int, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return 0, ErrInvalidTimeFormat
	}
	return t.Hour()*60 + t.Minute(), nil
}

func (ts TimeSlot) Date() time.Time {
	return ts.date
}

func (ts TimeSlot) StartMinutes() int {
	return ts.start
}

func (ts TimeSlot) EndMinutes() int {
	return ts.end
}

func (ts TimeSlot) StartTime() string {
	return formatWallClock(ts.start)
}

func (ts TimeSlot) EndTime() string {
	return formatWallClock(ts.end)
}

func (ts TimeSlot) Duration() time.Duration {
	return time.Duration(ts.end-ts.start) * time.Minute
}

// Overlaps uses the half-open interval test: new.start < existing.end AND
// new.end > existing.start, on the same calendar day.
func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	if !ts.date.Equal(other.date) {
		return false
	}
	return ts.start < other.end && ts.end > other.start
}

func formatWallClock(minutes int) string {
	return time.Date(0, 1, 1, minutes/60, minutes%60, 0, 0, time.UTC).Format("15:04")
}

type GroupName struct {
	value string
}

func NewGroupName(s string) (GroupName, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return GroupName{}, ErrEmptyGroupName
	}
	if len(s) > MaxGroupNameLength {
		return GroupName{}, ErrGroupNameTooLong
	}
	return GroupName{value: s}, nil
}

func (n GroupName) String() string {
	return n.value
}

// ReconstructGroupName trusts a value already validated at write time.
func ReconstructGroupName(s string) GroupName {
	return GroupName{value: s}
}

type GroupDescription struct {
	value string
}

func NewGroupDescription(s string) (GroupDescription, error) {
	s = strings.TrimSpace(s)
	if len(s) > MaxDescriptionLength {
		return GroupDescription{}, ErrDescriptionTooLong
	}
	return GroupDescription{value: s}, nil
}

func (d GroupDescription) String() string {
	return d.value
}

func (d GroupDescription) IsEmpty() bool {
	return d.value == ""
}

func ReconstructGroupDescription(s string) GroupDescription {
	return GroupDescription{value: s}
}

// Capacity bounds the reserved-or-filled participant slots.
type Capacity struct {
	min int
	max int
}

func NewCapacity(min, max int) (Capacity, error) {
	if min < GroupMinParticipants {
		return Capacity{}, ErrGroupTooSmall
	}
	if max < min {
		return Capacity{}, ErrInvalidCapacity
	}
	return Capacity{min: min, max: max}, nil
}

func DefaultCapacity() Capacity {
	return Capacity{min: DefaultMinParticipants, max: DefaultMaxParticipants}
}

func ReconstructCapacity(min, max int) Capacity {
	return Capacity{min: min, max: max}
}

func (c Capacity) Min() int {
	return c.min
}

func (c Capacity) Max() int {
	return c.max
}

// WorkspaceSnapshot is the workspace identity captured at booking time.
// It is intentionally denormalized: the booking keeps displaying the
// name and address as of when it was made.
type WorkspaceSnapshot struct {
	ID      uuid.UUID
	Name    string
	Address string
	Type    string
	Photo   string
}

func NewWorkspaceSnapshot(id uuid.UUID, name, address, wsType, photo string) (WorkspaceSnapshot, error) {
	name = strings.TrimSpace(name)
	address = strings.TrimSpace(address)
	if id == uuid.Nil || name == "" || address == "" {
		return WorkspaceSnapshot{}, ErrMissingWorkspace
	}
	return WorkspaceSnapshot{
		ID:      id,
		Name:    name,
		Address: address,
		Type:    strings.TrimSpace(wsType),
		Photo:   strings.TrimSpace(photo),
	}, nil
}

type GroupSettings struct {
	AllowParticipantInvites bool
	RequireApproval         bool
	SendReminders           bool
}

func DefaultGroupSettings() GroupSettings {
	return GroupSettings{
		AllowParticipantInvites: false,
		RequireApproval:         false,
		SendReminders:           true,
	}
}

type Tags struct {
	values []string
}

func NewTags(values []string) (Tags, error) {
	if len(values) > MaxTags {
		return Tags{}, ErrTooManyTags
	}
	cleaned := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if len(v) > MaxTagLength {
			return Tags{}, ErrTagTooLong
		}
		cleaned = append(cleaned, v)
	}
	return Tags{values: cleaned}, nil
}

func (t Tags) Values() []string {
	return t.values
}

func ReconstructTags(values []string) Tags {
	return Tags{values: values}
}
