// Package logbook writes the flat append-only event logs (gate requests,
// rule acceptances). One line per event, localized timestamp first, no
// rotation and no read path.
package logbook

import (
	"fmt"
	"os"
	"time"
)

const timestampLayout = "02/01/2006 15:04:05"

type Logbook struct {
	path string
	loc  *time.Location
	now  func() time.Time
}

func New(path string, loc *time.Location) *Logbook {
	return &Logbook{
		path: path,
		loc:  loc,
		now:  time.Now,
	}
}

// Append writes "[timestamp] event\n" at the end of the file, creating it on
// first use. Each call opens and closes the file; append order within the
// process follows call order.
func (l *Logbook) Append(event string) error {
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log %s: %w", l.path, err)
	}
	defer f.Close()

	line := fmt.Sprintf("[%s] %s\n", l.now().In(l.loc).Format(timestampLayout), event)
	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("failed to append to log %s: %w", l.path, err)
	}
	return nil
}
