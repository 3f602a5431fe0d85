package jobs

import (
	"context"
	"log"
	"time"

	"merchant-portal.backend/internal/metrics"
)

type staleReviewCounter interface {
	CountInReviewBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// ReviewReminderJob periodically counts records stuck in review longer than
// the configured threshold. It is read-only: it logs the backlog and updates
// the gauge, it never touches record status.
type ReviewReminderJob struct {
	repo       staleReviewCounter
	interval   time.Duration
	staleAfter time.Duration
	stop       chan struct{}
}

func NewReviewReminderJob(repo staleReviewCounter, interval, staleAfter time.Duration) *ReviewReminderJob {
	return &ReviewReminderJob{
		repo:       repo,
		interval:   interval,
		staleAfter: staleAfter,
		stop:       make(chan struct{}),
	}
}

func (j *ReviewReminderJob) Start(ctx context.Context) {
	log.Println("🕐 Starting review reminder job...")

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("⏹️ Review reminder job stopped (context cancelled)")
			return
		case <-j.stop:
			log.Println("⏹️ Review reminder job stopped")
			return
		case <-ticker.C:
			j.checkBacklog(ctx)
		}
	}
}

func (j *ReviewReminderJob) Stop() {
	close(j.stop)
}

func (j *ReviewReminderJob) checkBacklog(ctx context.Context) {
	cutoff := time.Now().Add(-j.staleAfter)
	count, err := j.repo.CountInReviewBefore(ctx, cutoff)
	if err != nil {
		log.Printf("❌ Error counting stale reviews: %v", err)
		return
	}

	metrics.ReviewBacklogStale.Set(float64(count))

	if count > 0 {
		log.Printf("🔔 %d registration(s) waiting in review for more than %s", count, j.staleAfter)
	}
}
