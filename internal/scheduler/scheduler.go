package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mlemaire/gymbot/internal/domain/contract"
	"github.com/mlemaire/gymbot/internal/domain/entity"
	"github.com/robfig/cron/v3"
)

// Scheduler owns the recurring timers: one planning maintenance entry plus
// one entry per reminder rule, all evaluated in the configured timezone.
type Scheduler struct {
	planning     contract.PlanningService
	reminder     contract.ReminderService
	planningCron string
	rules        []entity.ReminderRule
	loc          *time.Location

	cron *cron.Cron
}

func New(planning contract.PlanningService, reminder contract.ReminderService, planningCron string, rules []entity.ReminderRule, loc *time.Location) *Scheduler {
	return &Scheduler{
		planning:     planning,
		reminder:     reminder,
		planningCron: planningCron,
		rules:        rules,
		loc:          loc,
	}
}

// Initialize schedules every timer. A previously scheduled runner is stopped
// and discarded first, so re-initialization never leaves duplicate fires.
func (s *Scheduler) Initialize() error {
	if s.cron != nil {
		s.cron.Stop()
		s.cron = nil
	}

	c := cron.New(cron.WithLocation(s.loc))

	if _, err := c.AddFunc(s.planningCron, s.runMaintenance); err != nil {
		return fmt.Errorf("invalid maintenance schedule %q: %w", s.planningCron, err)
	}

	for _, rule := range s.rules {
		rule := rule
		spec := fmt.Sprintf("0 %d * * %d", rule.Hour, int(rule.Weekday))
		if _, err := c.AddFunc(spec, func() { s.runReminder(rule) }); err != nil {
			return fmt.Errorf("invalid reminder schedule for %q: %w", rule.TrashType, err)
		}
	}

	c.Start()
	s.cron = c
	slog.Info("scheduler started", "maintenance", s.planningCron, "reminderRules", len(s.rules))
	return nil
}

func (s *Scheduler) Stop() {
	if s.cron == nil {
		return
	}
	s.cron.Stop()
	s.cron = nil
	slog.Info("scheduler stopped")
}

// runMaintenance never lets an error stop future fires.
func (s *Scheduler) runMaintenance() {
	result, err := s.planning.Reconcile(context.Background())
	if err != nil {
		slog.Error("scheduled reconciliation failed", "error", err)
		return
	}
	slog.Info("scheduled reconciliation done",
		"created", len(result.Created), "deleted", len(result.Deleted), "failed", len(result.Failed))
}

// runReminder isolates failures per rule: one rule failing never blocks the
// others.
func (s *Scheduler) runReminder(rule entity.ReminderRule) {
	if err := s.reminder.SendReminder(context.Background(), rule); err != nil {
		slog.Error("scheduled reminder failed", "trashType", rule.TrashType, "error", err)
	}
}
