package watcher

import (
	"context"
	"time"

	"github.com/scripturecast/scripture-backend/internal/config"
	"github.com/scripturecast/scripture-backend/internal/videos"
	"github.com/scripturecast/scripture-backend/internal/videos/usecase"
	"github.com/scripturecast/scripture-backend/pkg/logger"
)

// Watcher sweeps jobs stuck generating, usually because the server that
// started them restarted before their watch loop finished, and runs a
// status check for each so they still converge to a terminal state.
type Watcher struct {
	videoRepo  videos.Repository
	poller     *usecase.Poller
	interval   time.Duration
	staleAfter time.Duration
	logger     logger.Logger
}

func NewWatcher(cfg *config.Config, videoRepo videos.Repository, poller *usecase.Poller, log logger.Logger) *Watcher {
	return &Watcher{
		videoRepo:  videoRepo,
		poller:     poller,
		interval:   time.Duration(cfg.Veo.WatchIntervalSeconds) * time.Second,
		staleAfter: time.Duration(cfg.Veo.StaleAfterMinutes) * time.Minute,
		logger:     log,
	}
}

// Run sweeps until the context is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Infof("watcher started, sweeping every %s for jobs older than %s", w.interval, w.staleAfter)
	for {
		select {
		case <-ctx.Done():
			w.logger.Info("watcher stopped")
			return ctx.Err()
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *Watcher) sweep(ctx context.Context) {
	stale, err := w.videoRepo.GetStaleGenerating(ctx, w.staleAfter)
	if err != nil {
		w.logger.Errorf("sweep - failed to list stale jobs: %v", err)
		return
	}
	if len(stale) == 0 {
		return
	}
	w.logger.Infof("sweep - found %d stale generating job(s)", len(stale))
	for _, video := range stale {
		updated, err := w.poller.PollOnce(ctx, video)
		if err != nil {
			w.logger.Errorf("sweep - poll failed for book %d chapter %d: %v",
				video.BookNumber, video.Chapter, err)
			continue
		}
		if updated.Status.IsTerminal() {
			w.logger.Infof("sweep - job for book %d chapter %d settled as %s",
				video.BookNumber, video.Chapter, updated.Status)
		}
	}
}
