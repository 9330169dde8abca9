package taskkeeper

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultSettleDelay  = 2 * time.Second
	DefaultScanInterval = time.Minute
)

// Scanner runs the overdue scan of a TaskList. Every change to the list (or a
// Trigger call) schedules a scan after the settle delay; a change during the
// wait restarts it. With a non-zero interval the scan also runs periodically.
type Scanner struct {
	list     *TaskList
	settle   time.Duration
	interval time.Duration
	logger   *zap.Logger
	now      func() time.Time

	trigger chan struct{}
	changes <-chan struct{}

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewScanner creates a stopped scanner for list
func NewScanner(list *TaskList, settle, interval time.Duration, logger *zap.Logger) *Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scanner{
		list:     list,
		settle:   settle,
		interval: interval,
		logger:   logger,
		now:      list.now,
		trigger:  make(chan struct{}, 1),
		changes:  list.Subscribe(),
	}
}

// Start launches the scan loop. It is a no-op if the scanner is already running.
// A first scan is scheduled right away.
func (s *Scanner) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})

	go s.run(ctx, s.changes, s.done)
	s.Trigger()
}

// Trigger schedules a scan after the settle delay
func (s *Scanner) Trigger() {
	select {
	case s.trigger <- struct{}{}:
	default:
	}
}

// Stop cancels the loop and waits for an in-flight scan to finish
func (s *Scanner) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (s *Scanner) run(ctx context.Context, changes <-chan struct{}, done chan struct{}) {
	defer close(done)

	timer := time.NewTimer(s.settle)
	timer.Stop()
	defer timer.Stop()
	var settled <-chan time.Time

	var tick <-chan time.Time
	if s.interval > 0 {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-changes:
			timer.Reset(s.settle)
			settled = timer.C
		case <-s.trigger:
			timer.Reset(s.settle)
			settled = timer.C
		case <-settled:
			settled = nil
			s.scan(ctx)
		case <-tick:
			s.scan(ctx)
		}
	}
}

func (s *Scanner) scan(ctx context.Context) {
	created := s.list.ScanOverdue(ctx, s.now())
	if len(created) > 0 {
		s.logger.Info("overdue tasks notified", zap.Int("count", len(created)))
	}
}
