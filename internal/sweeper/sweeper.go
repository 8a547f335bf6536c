package sweeper

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pawhaven/fundraising/internal/config"
	"github.com/pawhaven/fundraising/internal/notify"
	"github.com/pawhaven/fundraising/internal/service/campaignservice"
)

var processingCampaigns sync.Map

type Failure struct {
	CampaignID int    `json:"campaign_id"`
	Reason     string `json:"reason"`
}

// Result itemizes one sweep run. Campaigns succeed or fail independently.
type Result struct {
	Completed []int     `json:"completed"`
	Failed    []Failure `json:"failed"`
}

// Service periodically completes ongoing campaigns whose end date has
// passed. It can also be triggered on demand through RunSweep.
type Service struct {
	campaignRepo  campaignservice.CampaignRepo
	notifier      notify.Notifier
	limit         uint32
	workerPool    WorkerPoolI
	sweepInterval time.Duration
}

func New(cfg *config.Config, campaignRepo campaignservice.CampaignRepo, notifier notify.Notifier) *Service {
	return &Service{
		campaignRepo:  campaignRepo,
		notifier:      notifier,
		limit:         1000,
		workerPool:    NewWorkerPool(10),
		sweepInterval: cfg.SweepInterval,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Auto-completion sweeper started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping sweeper")
			return
		case <-ticker.C:
			if _, err := s.RunSweep(ctx); err != nil {
				zap.L().Error("Scheduled sweep failed", zap.Error(err))
			}
		}
	}
}

// RunSweep selects every ongoing campaign whose end date has passed
// (calendar date, not timestamp) and transitions each to COMPLETE. A second
// run with no new expirations finds nothing and returns empty sets.
func (s *Service) RunSweep(ctx context.Context) (*Result, error) {
	today := time.Now()
	campaigns, err := s.campaignRepo.FindExpiredOngoing(ctx, today, s.limit)
	if err != nil {
		zap.L().Error("Failed to fetch expired campaigns", zap.Error(err))
		return nil, err
	}

	result := &Result{
		Completed: make([]int, 0, len(campaigns)),
		Failed:    make([]Failure, 0),
	}
	var mu sync.Mutex
	var wg sync.WaitGroup

	var g errgroup.Group
	for _, campaign := range campaigns {
		campaign := campaign

		if _, loaded := processingCampaigns.LoadOrStore(campaign.ID, struct{}{}); loaded {
			continue
		}
		wg.Add(1)

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer wg.Done()
				defer processingCampaigns.Delete(campaign.ID)

				changed, err := s.campaignRepo.UpdateStatus(ctx, campaign.ID,
					campaignservice.OngoingStatus, campaignservice.CompleteStatus)

				mu.Lock()
				defer mu.Unlock()
				switch {
				case err != nil:
					result.Failed = append(result.Failed, Failure{CampaignID: campaign.ID, Reason: err.Error()})
				case !changed:
					// Someone else transitioned it first; nothing to do.
					zap.L().Info("Campaign already transitioned", zap.Int("campaignID", campaign.ID))
				default:
					result.Completed = append(result.Completed, campaign.ID)
					s.notifier.Notify(ctx, notify.Event{
						Type:        notify.EventCampaignCompleted,
						CampaignID:  campaign.ID,
						RecipientID: campaign.CreatedBy,
					})
				}
				return nil
			})
			if err != nil {
				wg.Done()
				processingCampaigns.Delete(campaign.ID)
				return err
			}
			return nil
		})
	}

	dispatchErr := g.Wait()
	wg.Wait()
	if dispatchErr != nil {
		zap.L().Error("Error dispatching sweep tasks", zap.Error(dispatchErr))
		return result, dispatchErr
	}

	if len(result.Completed) > 0 || len(result.Failed) > 0 {
		zap.L().Info("Sweep finished",
			zap.Int("completed", len(result.Completed)),
			zap.Int("failed", len(result.Failed)),
		)
	}
	return result, nil
}
