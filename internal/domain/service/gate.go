package service

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mlemaire/gymbot/internal/domain/contract"
	"github.com/mlemaire/gymbot/internal/domain/entity"
)

// ErrGateUnavailable means the SMS gate feature is not configured. A mode,
// not a failure: callers answer with an "unavailable" message.
var ErrGateUnavailable = errors.New("gate feature not configured")

type gateService struct {
	sms     contract.SMSSender // nil when the feature is disabled
	numbers []string
	logbook contract.Logbook
	loc     *time.Location
	now     func() time.Time
}

func newGate(sms contract.SMSSender, numbers []string, logbook contract.Logbook, loc *time.Location) *gateService {
	return &gateService{
		sms:     sms,
		numbers: numbers,
		logbook: logbook,
		loc:     loc,
		now:     time.Now,
	}
}

// RequestOpen sends one SMS per configured destination number. A failing
// number is recorded and the remaining sends still go out; the request is
// logged afterwards either way. No retries.
func (s *gateService) RequestOpen(requesterName string) (entity.GateReport, error) {
	var report entity.GateReport
	if s.sms == nil || len(s.numbers) == 0 {
		return report, ErrGateUnavailable
	}

	body := fmt.Sprintf("%s demande l'ouverture du portail (%s)", requesterName, s.now().In(s.loc).Format("15:04 le 02/01/2006"))

	for _, number := range s.numbers {
		if err := s.sms.Send(number, body); err != nil {
			slog.Error("failed to send gate SMS", "to", number, "error", err)
			report.Failed = append(report.Failed, number)
			continue
		}
		report.Sent = append(report.Sent, number)
	}

	if err := s.logbook.Append(fmt.Sprintf("Demande d'ouverture du portail par %s", requesterName)); err != nil {
		slog.Error("failed to append gate request log", "error", err)
	}

	return report, nil
}
