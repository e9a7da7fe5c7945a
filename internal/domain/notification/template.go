package notification

import (
	"fmt"
	"strings"
)

// Action keys the template table. Group actions describe what a user
// did to a group booking; booking actions describe the booking itself;
// capacity actions fire when the participant count crosses a bound.
type Action string

const (
	ActionInvited         Action = "invited"
	ActionJoined          Action = "joined"
	ActionLeft            Action = "left"
	ActionRemoved         Action = "removed"
	ActionAccepted        Action = "accepted"
	ActionDeclined        Action = "declined"
	ActionRequestedToJoin Action = "requested_to_join"
	ActionUpdated         Action = "updated"
	ActionCancelled       Action = "cancelled"

	ActionBookingConfirmed Action = "booking_confirmed"
	ActionBookingCancelled Action = "booking_cancelled"
	ActionBookingReminder  Action = "booking_reminder"
	ActionBookingUpdated   Action = "booking_updated"

	ActionMinimumReached Action = "minimum_reached"
	ActionMaximumReached Action = "maximum_reached"
	ActionBelowMinimum   Action = "below_minimum"
)

// TemplateContext carries everything a template may interpolate.
// Detail is action-specific: the personal message on invites, the
// responder's message on accept/decline, the changed field list on
// updates, the cancellation reason on cancels.
type TemplateContext struct {
	ActorName     string
	GroupName     string
	WorkspaceName string
	Detail        string
}

type template struct {
	title   string
	message func(c TemplateContext) string
}

var templates = map[Action]template{
	ActionInvited: {
		title: "Group booking invitation",
		message: func(c TemplateContext) string {
			msg := fmt.Sprintf("%s invited you to join %q at %s.", c.ActorName, c.GroupName, c.WorkspaceName)
			if c.Detail != "" {
				msg += fmt.Sprintf(" Message: %q", c.Detail)
			}
			return msg
		},
	},
	ActionJoined: {
		title: "New group member",
		message: func(c TemplateContext) string {
			return fmt.Sprintf("%s joined your group %q.", c.ActorName, c.GroupName)
		},
	},
	ActionLeft: {
		title: "Member left your group",
		message: func(c TemplateContext) string {
			return fmt.Sprintf("%s left your group %q.", c.ActorName, c.GroupName)
		},
	},
	ActionRemoved: {
		title: "Removed from group",
		message: func(c TemplateContext) string {
			return fmt.Sprintf("You have been removed from the group %q at %s.", c.GroupName, c.WorkspaceName)
		},
	},
	ActionAccepted: {
		title: "Invitation accepted",
		message: func(c TemplateContext) string {
			msg := fmt.Sprintf("%s accepted your invitation to %q.", c.ActorName, c.GroupName)
			if c.Detail != "" {
				msg += fmt.Sprintf(" Message: %q", c.Detail)
			}
			return msg
		},
	},
	ActionDeclined: {
		title: "Invitation declined",
		message: func(c TemplateContext) string {
			msg := fmt.Sprintf("%s declined your invitation to %q.", c.ActorName, c.GroupName)
			if c.Detail != "" {
				msg += fmt.Sprintf(" Message: %q", c.Detail)
			}
			return msg
		},
	},
	ActionRequestedToJoin: {
		title: "Join request",
		message: func(c TemplateContext) string {
			return fmt.Sprintf("%s requested to join your group %q and is awaiting your approval.", c.ActorName, c.GroupName)
		},
	},
	ActionUpdated: {
		title: "Group booking updated",
		message: func(c TemplateContext) string {
			if c.Detail != "" {
				return fmt.Sprintf("The group %q was updated: %s.", c.GroupName, c.Detail)
			}
			return fmt.Sprintf("The group %q was updated.", c.GroupName)
		},
	},
	ActionCancelled: {
		title: "Group booking cancelled",
		message: func(c TemplateContext) string {
			msg := fmt.Sprintf("The group %q at %s has been cancelled.", c.GroupName, c.WorkspaceName)
			if c.Detail != "" {
				msg += fmt.Sprintf(" Reason: %s.", c.Detail)
			}
			return msg
		},
	},
	ActionBookingConfirmed: {
		title: "Booking confirmed",
		message: func(c TemplateContext) string {
			return fmt.Sprintf("Your booking at %s is confirmed.", c.WorkspaceName)
		},
	},
	ActionBookingCancelled: {
		title: "Booking cancelled",
		message: func(c TemplateContext) string {
			return fmt.Sprintf("Your booking at %s has been cancelled.", c.WorkspaceName)
		},
	},
	ActionBookingReminder: {
		title: "Upcoming booking",
		message: func(c TemplateContext) string {
			return fmt.Sprintf("Reminder: you have an upcoming booking at %s.", c.WorkspaceName)
		},
	},
	ActionBookingUpdated: {
		title: "Booking updated",
		message: func(c TemplateContext) string {
			return fmt.Sprintf("Your booking at %s was updated.", c.WorkspaceName)
		},
	},
	ActionMinimumReached: {
		title: "Minimum group size reached",
		message: func(c TemplateContext) string {
			return fmt.Sprintf("Your group %q has reached its minimum size and is good to go.", c.GroupName)
		},
	},
	ActionMaximumReached: {
		title: "Group is full",
		message: func(c TemplateContext) string {
			return fmt.Sprintf("Your group %q has reached its maximum capacity.", c.GroupName)
		},
	},
	ActionBelowMinimum: {
		title: "Group below minimum size",
		message: func(c TemplateContext) string {
			return fmt.Sprintf("Your group %q has dropped below its minimum size.", c.GroupName)
		},
	},
}

// Render resolves the template for an action. Unknown actions get a
// generic system notification rather than an error; the sink must never
// fail the triggering operation.
func Render(action Action, c TemplateContext) (title, message string) {
	t, ok := templates[action]
	if !ok {
		return "Nomad Desk", strings.TrimSpace(fmt.Sprintf("%s %s", c.ActorName, c.Detail))
	}
	return t.title, t.message(c)
}

// TypeFor maps an action to the notification type stored on the record.
func TypeFor(action Action) Type {
	switch action {
	case ActionBookingConfirmed, ActionBookingCancelled, ActionBookingReminder, ActionBookingUpdated:
		return TypeBooking
	case ActionMinimumReached, ActionMaximumReached, ActionBelowMinimum:
		return TypeSystem
	default:
		return TypeBooking
	}
}
