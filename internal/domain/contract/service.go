package contract

import (
	"context"

	"github.com/mlemaire/gymbot/internal/domain/entity"
)

type PlanningService interface {
	// Reconcile converges the guild's planning channels to the rolling
	// window. Delete phase runs before create phase.
	Reconcile(ctx context.Context) (entity.ReconcileResult, error)
}

type ReminderService interface {
	// CollectRecipients returns the deduplicated user ids signed up for the
	// rule's relevant slots in the channel named slug. Missing category,
	// channel or placeholder messages degrade to a smaller (possibly empty)
	// result, not an error.
	CollectRecipients(rule entity.ReminderRule, slug string) ([]string, error)

	// SendReminder evaluates the rule for today and posts the reminder to
	// the reminders channel, mentions or not.
	SendReminder(ctx context.Context, rule entity.ReminderRule) error
}

type StatusService interface {
	// Publish deletes the previously tracked status message (best effort)
	// and posts a fresh one in channelID.
	Publish(channelID string) error

	// UpdateStatus mutates the in-memory state only.
	UpdateStatus(state entity.GymState, actorName string)

	// Refresh reposts the tracked status message in its channel.
	Refresh() error

	// State returns the current state and last actor.
	State() (entity.GymState, string)
}

type GateService interface {
	// RequestOpen fans one SMS out per configured destination and logs the
	// request. Returns ErrGateUnavailable when the feature is not
	// configured.
	RequestOpen(requesterName string) (entity.GateReport, error)
}

type RulesService interface {
	// Accept grants the member role to the user and logs the acceptance.
	// Returns ErrRoleNotFound when the configured role does not exist.
	Accept(userID, userTag string) error
}
