package job

import (
	"context"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/xxxsen/notelink/internal/pkg/timeutil"
	"github.com/xxxsen/notelink/internal/repo"
)

// ShareSweepJob purges share rows whose expiry has passed. Resolution
// checks expiry on every lookup, so the sweep only reclaims storage.
type ShareSweepJob struct {
	shares *repo.ShareRepo
}

func NewShareSweepJob(shares *repo.ShareRepo) *ShareSweepJob {
	return &ShareSweepJob{shares: shares}
}

func (j *ShareSweepJob) Name() string {
	return "share_sweep"
}

func (j *ShareSweepJob) Run(ctx context.Context) error {
	if j.shares == nil {
		return nil
	}
	deleted, err := j.shares.DeleteExpired(ctx, timeutil.NowUnix())
	if err != nil {
		return err
	}
	if deleted > 0 {
		logutil.GetLogger(ctx).Info("expired shares purged", zap.Int64("count", deleted))
	}
	return nil
}
