package service

import (
	"testing"

	"github.com/dapoades/slack-roster-bot/mocks"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockDataManager     *mocks.MockDataManager
	mockChannelRepo     *mocks.MockChannelRepo
	mockParticipantRepo *mocks.MockParticipantRepo
	mockRotationRepo    *mocks.MockRotationRepo
	mockSlackClient     *mocks.MockSlackAPI
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	channelRepo := mocks.NewMockChannelRepo(ctrl)
	dm.EXPECT().Channel().Return(channelRepo).AnyTimes()

	participantRepo := mocks.NewMockParticipantRepo(ctrl)
	dm.EXPECT().Participant().Return(participantRepo).AnyTimes()

	rotationRepo := mocks.NewMockRotationRepo(ctrl)
	dm.EXPECT().Rotation().Return(rotationRepo).AnyTimes()

	slackClient := mocks.NewMockSlackAPI(ctrl)

	m = allMocks{
		mockDataManager:     dm,
		mockChannelRepo:     channelRepo,
		mockParticipantRepo: participantRepo,
		mockRotationRepo:    rotationRepo,
		mockSlackClient:     slackClient,
	}

	return m, ctrl
}
