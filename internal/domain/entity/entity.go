package entity

import "time"

// PlanningDay is one entry of the rolling planning window.
type PlanningDay struct {
	Date  time.Time
	Label string // e.g. "lundi 2 septembre"
	Slug  string // e.g. "lundi-2-septembre"
}

// ReminderRule drives one scheduled trash reminder. Static configuration,
// never mutated at runtime.
type ReminderRule struct {
	TrashType string       `json:"trashType"`
	Weekday   time.Weekday `json:"weekday"`
	Hour      int          `json:"hour"`
	Slots     []string     `json:"slots"`
}

// GymState is the open/closed state of the facility.
type GymState int

const (
	StateClosed GymState = iota
	StateOpen
)

func (s GymState) String() string {
	if s == StateOpen {
		return "ouverte"
	}
	return "fermée"
}

// ReconcileResult reports what a reconciliation pass did. Failed holds the
// names of channels whose create or delete call errored.
type ReconcileResult struct {
	Created []string
	Deleted []string
	Failed  []string
}

// GateReport is the per-number outcome of a gate-open request.
type GateReport struct {
	Sent   []string
	Failed []string
}
