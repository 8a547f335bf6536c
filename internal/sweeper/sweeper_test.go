package sweeper

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/pawhaven/fundraising/internal/config"
	"github.com/pawhaven/fundraising/internal/domain"
	"github.com/pawhaven/fundraising/internal/notify"
	"github.com/pawhaven/fundraising/internal/service/campaignservice"
)

func NewMock(t *testing.T) (*Service, *campaignservice.MockCampaignRepo, *notify.MockNotifier) {
	cfg := &config.Config{SweepInterval: time.Hour}
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	campaignRepo := campaignservice.NewMockCampaignRepo(ctrl)
	notifier := notify.NewMockNotifier(ctrl)
	service := New(cfg, campaignRepo, notifier)
	return service, campaignRepo, notifier
}

func TestService_Start(t *testing.T) {
	service, _, _ := NewMock(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	service.Start(ctx)
	time.Sleep(20 * time.Millisecond)
	cancel()
}

func TestService_RunSweep(t *testing.T) {
	owner := 1

	t.Run("Expired campaigns are completed", func(t *testing.T) {
		service, campaignRepo, notifier := NewMock(t)

		campaignRepo.EXPECT().FindExpiredOngoing(gomock.Any(), gomock.Any(), uint32(1000)).
			Return([]domain.Campaign{
				{ID: 1, Status: campaignservice.OngoingStatus, CreatedBy: &owner},
				{ID: 2, Status: campaignservice.OngoingStatus},
			}, nil)
		campaignRepo.EXPECT().UpdateStatus(gomock.Any(), 1, campaignservice.OngoingStatus, campaignservice.CompleteStatus).
			Return(true, nil)
		campaignRepo.EXPECT().UpdateStatus(gomock.Any(), 2, campaignservice.OngoingStatus, campaignservice.CompleteStatus).
			Return(true, nil)
		notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Times(2)

		result, err := service.RunSweep(context.Background())
		assert.NoError(t, err)
		assert.ElementsMatch(t, []int{1, 2}, result.Completed)
		assert.Empty(t, result.Failed)
	})

	t.Run("Already transitioned campaign is skipped silently", func(t *testing.T) {
		service, campaignRepo, _ := NewMock(t)

		campaignRepo.EXPECT().FindExpiredOngoing(gomock.Any(), gomock.Any(), uint32(1000)).
			Return([]domain.Campaign{{ID: 3, Status: campaignservice.OngoingStatus}}, nil)
		campaignRepo.EXPECT().UpdateStatus(gomock.Any(), 3, campaignservice.OngoingStatus, campaignservice.CompleteStatus).
			Return(false, nil)

		result, err := service.RunSweep(context.Background())
		assert.NoError(t, err)
		assert.Empty(t, result.Completed)
		assert.Empty(t, result.Failed)
	})

	t.Run("Campaigns fail independently", func(t *testing.T) {
		service, campaignRepo, notifier := NewMock(t)

		campaignRepo.EXPECT().FindExpiredOngoing(gomock.Any(), gomock.Any(), uint32(1000)).
			Return([]domain.Campaign{
				{ID: 4, Status: campaignservice.OngoingStatus},
				{ID: 5, Status: campaignservice.OngoingStatus},
			}, nil)
		campaignRepo.EXPECT().UpdateStatus(gomock.Any(), 4, campaignservice.OngoingStatus, campaignservice.CompleteStatus).
			Return(false, errors.New("deadlock detected"))
		campaignRepo.EXPECT().UpdateStatus(gomock.Any(), 5, campaignservice.OngoingStatus, campaignservice.CompleteStatus).
			Return(true, nil)
		notifier.EXPECT().Notify(gomock.Any(), gomock.Any())

		result, err := service.RunSweep(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, []int{5}, result.Completed)
		assert.Len(t, result.Failed, 1)
		assert.Equal(t, 4, result.Failed[0].CampaignID)
		assert.Equal(t, "deadlock detected", result.Failed[0].Reason)
	})

	t.Run("Run with no expirations returns empty sets", func(t *testing.T) {
		service, campaignRepo, _ := NewMock(t)

		campaignRepo.EXPECT().FindExpiredOngoing(gomock.Any(), gomock.Any(), uint32(1000)).
			Return(nil, nil)

		result, err := service.RunSweep(context.Background())
		assert.NoError(t, err)
		assert.Empty(t, result.Completed)
		assert.Empty(t, result.Failed)
	})

	t.Run("Fetch error aborts the run", func(t *testing.T) {
		service, campaignRepo, _ := NewMock(t)

		campaignRepo.EXPECT().FindExpiredOngoing(gomock.Any(), gomock.Any(), uint32(1000)).
			Return(nil, errors.New("some error"))

		result, err := service.RunSweep(context.Background())
		assert.Error(t, err)
		assert.Nil(t, result)
	})
}
