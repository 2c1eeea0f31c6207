package service

import (
	"testing"
	"time"

	"github.com/mlemaire/gymbot/mocks"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockDiscord *mocks.MockDiscordClient
	mockSMS     *mocks.MockSMSSender
	mockLogbook *mocks.MockLogbook
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	m = allMocks{
		mockDiscord: mocks.NewMockDiscordClient(ctrl),
		mockSMS:     mocks.NewMockSMSSender(ctrl),
		mockLogbook: mocks.NewMockLogbook(ctrl),
	}

	return
}

// fixedNow pins a service clock for deterministic window computation.
func fixedNow(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
