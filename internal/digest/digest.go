// Package digest periodically logs waitlist growth.
package digest

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"UltraNova/internal/metrics"
)

// CountFunc returns signups per role and the number since the given time.
type CountFunc func(ctx context.Context, since time.Time) (map[string]int, int, error)

type Summary struct {
	Total  int
	Recent int
	ByRole map[string]int
}

type Job struct {
	count   CountFunc
	logger  *zap.Logger
	now     func() time.Time
	timeout time.Duration

	mu      sync.Mutex
	lastRun time.Time
}

func NewJob(count CountFunc, logger *zap.Logger) *Job {
	return &Job{
		count:   count,
		logger:  logger.Named("digest"),
		now:     time.Now,
		timeout: 30 * time.Second,
	}
}

// Run counts signups since the previous run, logs them and updates the
// waitlist gauges.
func (j *Job) Run(ctx context.Context) (Summary, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	now := j.now()
	since := j.lastRun
	if since.IsZero() {
		since = now.Add(-24 * time.Hour)
	}

	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	byRole, recent, err := j.count(ctx, since)
	if err != nil {
		return Summary{}, fmt.Errorf("count waitlist: %w", err)
	}
	j.lastRun = now

	s := Summary{Recent: recent, ByRole: byRole}
	roles := make([]string, 0, len(byRole))
	for role, n := range byRole {
		s.Total += n
		roles = append(roles, role)
		metrics.WaitlistSize.WithLabelValues(role).Set(float64(n))
	}
	sort.Strings(roles)

	fields := []zap.Field{zap.Int("total", s.Total), zap.Int("new", s.Recent), zap.Time("since", since)}
	for _, role := range roles {
		fields = append(fields, zap.Int("role_"+role, byRole[role]))
	}
	j.logger.Info("waitlist digest", fields...)
	return s, nil
}

type Scheduler struct {
	cron   *cron.Cron
	logger *zap.Logger
}

// Schedule registers job under spec. An empty spec returns nil.
func Schedule(spec string, job *Job, logger *zap.Logger) (*Scheduler, error) {
	if spec == "" {
		return nil, nil
	}
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		if _, err := job.Run(context.Background()); err != nil {
			logger.Error("waitlist digest failed", zap.Error(err))
		}
	})
	if err != nil {
		return nil, fmt.Errorf("invalid digest schedule %q: %w", spec, err)
	}
	return &Scheduler{cron: c, logger: logger}, nil
}

// Run starts the scheduler and blocks until ctx is done, then waits for a
// running job to finish.
func (s *Scheduler) Run(ctx context.Context) error {
	s.cron.Start()
	s.logger.Info("digest scheduler started", zap.Int("entries", len(s.cron.Entries())))
	<-ctx.Done()
	<-s.cron.Stop().Done()
	s.logger.Info("digest scheduler stopped")
	return nil
}
