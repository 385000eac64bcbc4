package scheduler

import (
	"context"
	"sync"
	"time"

	"hackathon-portal-backend/internal/database/models"
	"hackathon-portal-backend/internal/logger"

	"github.com/go-co-op/gocron/v2"
)

const jobName = "apply-registration-schedule"

// ScheduleApplier flips registration when a pending schedule is due.
type ScheduleApplier interface {
	ApplyDueSchedule(ctx context.Context, now time.Time) (*models.Settings, bool, error)
}

// RegistrationScheduler polls for due registration toggles on a fixed interval.
type RegistrationScheduler struct {
	applier  ScheduleApplier
	interval time.Duration
	timeout  time.Duration
	now      func() time.Time

	mu        sync.Mutex
	scheduler gocron.Scheduler
	ctx       context.Context
	cancel    context.CancelFunc
}

// NewRegistrationScheduler creates a scheduler; call Start to run it.
func NewRegistrationScheduler(applier ScheduleApplier, interval time.Duration) *RegistrationScheduler {
	if interval <= 0 {
		interval = time.Minute
	}
	timeout := interval
	if timeout > 30*time.Second {
		timeout = 30 * time.Second
	}
	return &RegistrationScheduler{
		applier:  applier,
		interval: interval,
		timeout:  timeout,
		now:      time.Now,
	}
}

// Start registers the job and starts the underlying gocron scheduler. The
// first run happens immediately so a schedule that fell due while the
// process was down is applied at boot.
func (r *RegistrationScheduler) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.scheduler != nil {
		return nil
	}

	s, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	r.ctx, r.cancel = context.WithCancel(context.Background())

	_, err = s.NewJob(
		gocron.DurationJob(r.interval),
		gocron.NewTask(func() { r.RunOnce(r.ctx) }),
		gocron.WithName(jobName),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		r.cancel()
		_ = s.Shutdown()
		return err
	}

	s.Start()
	r.scheduler = s
	logger.New().WithField("interval", r.interval.String()).Info("registration scheduler started")
	return nil
}

// RunOnce applies a due schedule, if any. Errors are logged; the next tick
// retries.
func (r *RegistrationScheduler) RunOnce(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	log := logger.New().WithField("job", jobName)
	settings, applied, err := r.applier.ApplyDueSchedule(ctx, r.now())
	if err != nil {
		log.WithError(err).Error("failed to apply registration schedule")
		return
	}
	if applied {
		log.WithField("enabled", settings.Enabled).Info("registration schedule applied")
	}
}

// Shutdown stops the job and waits for a running tick to finish.
func (r *RegistrationScheduler) Shutdown() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.scheduler == nil {
		return nil
	}
	r.cancel()
	err := r.scheduler.Shutdown()
	r.scheduler = nil
	return err
}
