// Package reindex rebuilds the Meilisearch listings index on a schedule.
// Incremental updates on write are best-effort; the nightly rebuild is what
// guarantees the index converges with Postgres.
package reindex

import (
	"context"
	"log/slog"
	"time"

	"github.com/m-alharbi/aqarbook/services/catalog-service/internal/search"
	"github.com/m-alharbi/aqarbook/services/catalog-service/internal/storage"
	"github.com/robfig/cron/v3"
)

const pageSize = 200

type Job struct {
	repo   *storage.PropertyRepository
	index  *search.Index
	logger *slog.Logger
	cron   *cron.Cron
	spec   string
}

// New prepares the job with a standard 5-field cron spec, e.g. "0 3 * * *".
func New(repo *storage.PropertyRepository, index *search.Index, logger *slog.Logger, spec string) *Job {
	return &Job{
		repo:   repo,
		index:  index,
		logger: logger,
		cron:   cron.New(),
		spec:   spec,
	}
}

func (j *Job) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Minute)
		defer cancel()
		if err := j.RunNow(ctx); err != nil {
			j.logger.Error("scheduled reindex failed", "err", err)
		}
	})
	if err != nil {
		return err
	}
	j.cron.Start()
	j.logger.Info("reindex scheduled", "spec", j.spec)
	return nil
}

func (j *Job) Stop() {
	j.cron.Stop()
}

// RunNow pages through every active listing and re-upserts it.
func (j *Job) RunNow(ctx context.Context) error {
	start := time.Now()
	total := 0
	afterID := ""
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		props, err := j.repo.ListActive(ctx, pageSize, afterID)
		if err != nil {
			return err
		}
		if len(props) == 0 {
			break
		}
		if err := j.index.Upsert(props...); err != nil {
			return err
		}
		total += len(props)
		afterID = props[len(props)-1].ID
	}
	j.logger.Info("reindex complete", "listings", total, "took", time.Since(start).String())
	return nil
}
