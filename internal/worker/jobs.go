package worker

import (
	"context"
	"fmt"
)

// MasteryRefresher rebuilds a learner's derived metrics from the record
// store. Implemented by the insights service; declared here so the job does
// not depend on the services package.
type MasteryRefresher interface {
	RefreshMastery(ctx context.Context, userID string) error
}

// MasteryRefreshJob recomputes category mastery and retention for one
// learner after a session.
type MasteryRefreshJob struct {
	Refresher MasteryRefresher
	UserID    string
}

func (j *MasteryRefreshJob) Name() string {
	return fmt.Sprintf("mastery-refresh:%s", j.UserID)
}

func (j *MasteryRefreshJob) Run(ctx context.Context) error {
	return j.Refresher.RefreshMastery(ctx, j.UserID)
}
