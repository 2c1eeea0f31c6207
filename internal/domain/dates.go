package domain

import (
	"strconv"
	"strings"
	"time"

	"github.com/mlemaire/gymbot/internal/domain/entity"
)

// French calendar names. The planning channel slugs are derived from these
// labels, so the tables are part of the slot-lookup contract: changing a
// spelling breaks matching against channels created before the change.
var frenchWeekdays = [7]string{
	"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi",
}

var frenchMonths = [12]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

// DayLabel renders a date as a French "weekday day month" string,
// e.g. "lundi 2 septembre".
func DayLabel(t time.Time) string {
	var b strings.Builder
	b.WriteString(frenchWeekdays[t.Weekday()])
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(t.Day()))
	b.WriteByte(' ')
	b.WriteString(frenchMonths[int(t.Month())-1])
	return b.String()
}

// Slugify lowercases a label and collapses internal whitespace runs to a
// single hyphen, matching the channel-name form of the chat platform.
func Slugify(label string) string {
	return strings.Join(strings.Fields(strings.ToLower(label)), "-")
}

// PlanningWindow computes the rolling window of planning days starting at
// today. It is a pure function of its arguments: same inputs, same output.
func PlanningWindow(today time.Time, daysAhead int) []entity.PlanningDay {
	if daysAhead <= 0 {
		return nil
	}
	days := make([]entity.PlanningDay, 0, daysAhead)
	for i := 0; i < daysAhead; i++ {
		date := today.AddDate(0, 0, i)
		label := DayLabel(date)
		days = append(days, entity.PlanningDay{
			Date:  date,
			Label: label,
			Slug:  Slugify(label),
		})
	}
	return days
}
