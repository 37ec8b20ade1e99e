package jobs

import "github.com/skillpulse/skillpulse/internal/worker"

// WorkerQueue implements JobQueue using the worker pool
type WorkerQueue struct {
	pool      *worker.Pool
	refresher worker.MasteryRefresher
}

// NewWorkerQueue creates a new WorkerQueue implementation
func NewWorkerQueue(pool *worker.Pool, refresher worker.MasteryRefresher) JobQueue {
	return &WorkerQueue{pool: pool, refresher: refresher}
}

func (q *WorkerQueue) EnqueueMasteryRefresh(userID string) error {
	return q.pool.Submit(&worker.MasteryRefreshJob{
		Refresher: q.refresher,
		UserID:    userID,
	})
}
