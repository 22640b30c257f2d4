package suite

import (
	"sync"
	"time"
)

// ManualScheduler - holds scheduled tasks until the test runs them.
type ManualScheduler struct {
	mu     sync.Mutex
	tasks  []*manualTask
	delays []time.Duration
}

type manualTask struct {
	run       func()
	cancelled bool
}

func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (that *ManualScheduler) Schedule(delay time.Duration, task func()) func() {
	that.mu.Lock()
	defer that.mu.Unlock()

	scheduled := &manualTask{run: task}
	that.tasks = append(that.tasks, scheduled)
	that.delays = append(that.delays, delay)

	return func() {
		that.mu.Lock()
		defer that.mu.Unlock()

		scheduled.cancelled = true
	}
}

// Pending - number of tasks that are queued and not cancelled.
func (that *ManualScheduler) Pending() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	pending := 0
	for _, task := range that.tasks {
		if !task.cancelled {
			pending++
		}
	}

	return pending
}

// Delays - every delay tasks were scheduled with, in order.
func (that *ManualScheduler) Delays() []time.Duration {
	that.mu.Lock()
	defer that.mu.Unlock()

	return append([]time.Duration(nil), that.delays...)
}

// RunPending - runs the queued tasks that were not cancelled and reports how many ran.
func (that *ManualScheduler) RunPending() int {
	that.mu.Lock()
	tasks := that.tasks
	that.tasks = nil
	that.mu.Unlock()

	ran := 0
	for _, task := range tasks {
		that.mu.Lock()
		cancelled := task.cancelled
		that.mu.Unlock()

		if cancelled {
			continue
		}

		task.run()
		ran++
	}

	return ran
}

